package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wiki-backend/internal/domains/page"
	pageRepo "wiki-backend/internal/domains/page/repository"
	"wiki-backend/internal/domains/version"
	versionRepo "wiki-backend/internal/domains/version/repository"
)

func newService() (page.Service, version.Repository) {
	vr := versionRepo.NewMemoryRepository()
	return NewPageService(pageRepo.NewMemoryRepository(), vr), vr
}

func TestCreate_WritesInitialVersion(t *testing.T) {
	svc, versions := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, page.CreatePageRequest{
		Title: "Hamlet",
		Tags:  []string{"drama"},
		Text:  "To be, or not to be",
	}, "alice@example.com")
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	history, err := versions.FindByPageID(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, "To be, or not to be", history[0].Text)
	assert.Equal(t, "alice@example.com", history[0].Author)
	assert.Equal(t, p.CreatedAt, history[0].CreatedAt)
}

func TestCreate_AssignsSequentialIDs(t *testing.T) {
	svc, _ := newService()
	ctx := context.Background()

	p1, err := svc.Create(ctx, page.CreatePageRequest{Title: "One", Text: "a"}, "alice")
	require.NoError(t, err)
	p2, err := svc.Create(ctx, page.CreatePageRequest{Title: "Two", Text: "b"}, "alice")
	require.NoError(t, err)

	assert.Equal(t, p1.ID+1, p2.ID)
}

func TestCreate_DeduplicatesTags(t *testing.T) {
	svc, _ := newService()

	p, err := svc.Create(context.Background(), page.CreatePageRequest{
		Title: "Hamlet",
		Tags:  []string{"drama", "Drama", " drama ", "tragedy", ""},
		Text:  "text",
	}, "alice")
	require.NoError(t, err)

	assert.Equal(t, []string{"drama", "tragedy"}, p.Tags)
}

// brokenVersionRepo fails every append, simulating a document-store
// outage between the page write and the initial version write.
type brokenVersionRepo struct {
	version.Repository
}

func (b *brokenVersionRepo) Add(context.Context, *version.PageVersion) error {
	return errors.New("connection reset")
}

func TestCreate_RollsBackPageWhenVersionWriteFails(t *testing.T) {
	pages := pageRepo.NewMemoryRepository()
	svc := NewPageService(pages, &brokenVersionRepo{versionRepo.NewMemoryRepository()})
	ctx := context.Background()

	_, err := svc.Create(ctx, page.CreatePageRequest{Title: "Hamlet", Text: "v1"}, "alice")
	require.Error(t, err)

	// No page without its creation revision.
	list, err := pages.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestCreate_MissingTitle(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Create(context.Background(), page.CreatePageRequest{Text: "text"}, "alice")
	assert.Error(t, err)
}

func TestUpdate_ChangesMetadataOnly(t *testing.T) {
	svc, versions := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, page.CreatePageRequest{Title: "Draft", Text: "v1"}, "alice")
	require.NoError(t, err)

	updated, err := svc.Update(ctx, p.ID, page.UpdatePageRequest{Title: "Final", Tags: []string{"done"}})
	require.NoError(t, err)
	assert.Equal(t, "Final", updated.Title)
	assert.Equal(t, p.ID, updated.ID)

	history, err := versions.FindByPageID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestUpdate_MissingPage(t *testing.T) {
	svc, _ := newService()

	_, err := svc.Update(context.Background(), 42, page.UpdatePageRequest{Title: "X"})
	assert.ErrorIs(t, err, page.ErrPageNotFound)
}

func TestDelete_HistorySurvives(t *testing.T) {
	svc, versions := newService()
	ctx := context.Background()

	p, err := svc.Create(ctx, page.CreatePageRequest{Title: "Hamlet", Text: "v1"}, "alice")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, p.ID))

	_, err = svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, page.ErrPageNotFound)

	history, err := versions.FindByPageID(ctx, p.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestDelete_MissingPage(t *testing.T) {
	svc, _ := newService()

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, page.ErrPageNotFound)
}
