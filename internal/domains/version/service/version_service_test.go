package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiki-backend/internal/domains/page"
	pageRepo "wiki-backend/internal/domains/page/repository"
	pageService "wiki-backend/internal/domains/page/service"
	"wiki-backend/internal/domains/version"
	versionRepo "wiki-backend/internal/domains/version/repository"
)

type fixture struct {
	pages    page.Service
	versions version.Service
	ctx      context.Context
}

func newFixture() *fixture {
	pr := pageRepo.NewMemoryRepository()
	vr := versionRepo.NewMemoryRepository()
	return &fixture{
		pages:    pageService.NewPageService(pr, vr),
		versions: NewVersionService(vr, pr),
		ctx:      context.Background(),
	}
}

func (f *fixture) createPage(t *testing.T, title, text, creator string) *page.PageDTO {
	t.Helper()
	p, err := f.pages.Create(f.ctx, page.CreatePageRequest{Title: title, Text: text}, creator)
	require.NoError(t, err)
	return p
}

func TestAddNewVersion_HistoryIncludesCreation(t *testing.T) {
	f := newFixture()
	p := f.createPage(t, "Hamlet", "v1", "alice")

	// Spread timestamps so ordering is unambiguous.
	time.Sleep(2 * time.Millisecond)
	_, err := f.versions.AddNewVersion(f.ctx, p.ID, version.AddVersionRequest{Text: "v2"}, "alice")
	require.NoError(t, err)
	time.Sleep(2 * time.Millisecond)
	_, err = f.versions.AddNewVersion(f.ctx, p.ID, version.AddVersionRequest{Text: "v3"}, "bob")
	require.NoError(t, err)

	history, err := f.versions.FindPageVersionsByPageID(f.ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 3)

	assert.Equal(t, "v3", history[0].Text)
	assert.Equal(t, "v2", history[1].Text)
	assert.Equal(t, "v1", history[2].Text)

	latest, err := f.versions.GetLatestVersion(f.ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, history[0].ID, latest.ID)
	assert.Equal(t, "v3", latest.Text)
}

func TestAddNewVersion_MissingPage(t *testing.T) {
	f := newFixture()

	_, err := f.versions.AddNewVersion(f.ctx, 42, version.AddVersionRequest{Text: "orphan"}, "alice")
	assert.ErrorIs(t, err, page.ErrPageNotFound)
}

func TestAddNewVersion_EmptyText(t *testing.T) {
	f := newFixture()
	p := f.createPage(t, "Hamlet", "v1", "alice")

	_, err := f.versions.AddNewVersion(f.ctx, p.ID, version.AddVersionRequest{}, "alice")
	assert.Error(t, err)
}

func TestUpdateExistingVersion_RefetchReturnsNewFields(t *testing.T) {
	f := newFixture()
	p := f.createPage(t, "Hamlet", "draft", "alice")

	latest, err := f.versions.GetLatestVersion(f.ctx, p.ID)
	require.NoError(t, err)

	updated, err := f.versions.UpdateExistingVersion(f.ctx, latest.ID, version.UpdateVersionRequest{
		Text:   "revised",
		Author: "bob",
	})
	require.NoError(t, err)
	assert.Equal(t, latest.ID, updated.ID)

	got, err := f.versions.GetByID(f.ctx, latest.ID)
	require.NoError(t, err)
	assert.Equal(t, "revised", got.Text)
	assert.Equal(t, "bob", got.Author)
	assert.Equal(t, p.ID, got.PageID)
}

func TestUpdateExistingVersion_MissingID(t *testing.T) {
	f := newFixture()

	_, err := f.versions.UpdateExistingVersion(f.ctx, uuid.New(), version.UpdateVersionRequest{
		Text:   "x",
		Author: "y",
	})
	assert.ErrorIs(t, err, version.ErrVersionNotFound)
}

func TestDeleteVersion_SiblingsSurvive(t *testing.T) {
	f := newFixture()
	p := f.createPage(t, "Hamlet", "v1", "alice")

	v2, err := f.versions.AddNewVersion(f.ctx, p.ID, version.AddVersionRequest{Text: "v2"}, "alice")
	require.NoError(t, err)
	v3, err := f.versions.AddNewVersion(f.ctx, p.ID, version.AddVersionRequest{Text: "v3"}, "alice")
	require.NoError(t, err)

	require.NoError(t, f.versions.DeleteVersion(f.ctx, v3.ID))

	got, err := f.versions.GetByID(f.ctx, v2.ID)
	require.NoError(t, err)
	assert.Equal(t, "v2", got.Text)
}

func TestFindPageVersionsByAuthor_CaseInsensitive(t *testing.T) {
	f := newFixture()
	p := f.createPage(t, "Sonnets", "v1", "Shakespeare jr")

	_, err := f.versions.AddNewVersion(f.ctx, p.ID, version.AddVersionRequest{Text: "v2"}, "shakespeare jr")
	require.NoError(t, err)

	upper, err := f.versions.FindPageVersionsByAuthor(f.ctx, "SHAKESPEARE jr")
	require.NoError(t, err)
	lower, err := f.versions.FindPageVersionsByAuthor(f.ctx, "shakespeare jr")
	require.NoError(t, err)

	require.Len(t, upper, 2)
	assert.Equal(t, upper, lower)
}

func TestAllVersions_CountsAcrossPages(t *testing.T) {
	f := newFixture()
	p1 := f.createPage(t, "One", "a", "alice")
	f.createPage(t, "Two", "b", "bob")

	_, err := f.versions.AddNewVersion(f.ctx, p1.ID, version.AddVersionRequest{Text: "a2"}, "alice")
	require.NoError(t, err)

	all, err := f.versions.AllVersions(f.ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
