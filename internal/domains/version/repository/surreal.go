package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"wiki-backend/internal/domains/version"
)

const versionTable = "page_versions"

// versionRecord is the stored document. page_id is a plain int64
// matching the page record id, kept as a field so the author and
// page queries can filter on it directly.
type versionRecord struct {
	ID        *models.RecordID `json:"id,omitempty"`
	PageID    int64            `json:"page_id"`
	Text      string           `json:"text"`
	Author    string           `json:"author"`
	CreatedAt time.Time        `json:"created_at"`
}

type surrealRepository struct {
	db *surrealdb.DB
}

func NewSurrealRepository(db *surrealdb.DB) version.Repository {
	return &surrealRepository{db: db}
}

func versionRID(id uuid.UUID) models.RecordID {
	return models.RecordID{Table: versionTable, ID: id.String()}
}

func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Expected a single or multiple results but got 0") ||
		strings.Contains(msg, "cannot unmarshal array into Go value")
}

func (r *versionRecord) toDomain() (version.PageVersion, error) {
	v := version.PageVersion{
		PageID:    r.PageID,
		Text:      r.Text,
		Author:    r.Author,
		CreatedAt: r.CreatedAt,
	}
	if r.ID != nil {
		s, ok := r.ID.ID.(string)
		if !ok {
			return v, fmt.Errorf("unexpected version record id type %T", r.ID.ID)
		}
		id, err := uuid.Parse(s)
		if err != nil {
			return v, fmt.Errorf("parse version record id: %w", err)
		}
		v.ID = id
	}
	return v, nil
}

func rowsToDomain(rows []versionRecord) ([]version.PageVersion, error) {
	versions := make([]version.PageVersion, 0, len(rows))
	for i := range rows {
		v, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}

func (r *surrealRepository) Add(ctx context.Context, v *version.PageVersion) error {
	rid := versionRID(v.ID)
	rec := versionRecord{
		ID:        &rid,
		PageID:    v.PageID,
		Text:      v.Text,
		Author:    v.Author,
		CreatedAt: v.CreatedAt,
	}

	if _, err := surrealdb.Create[versionRecord](ctx, r.db, versionTable, rec); err != nil {
		return fmt.Errorf("create page version: %w", err)
	}
	return nil
}

func (r *surrealRepository) Update(ctx context.Context, v *version.PageVersion) error {
	result, err := surrealdb.Query[[]versionRecord](ctx, r.db,
		"UPDATE $id SET text = $text, author = $author RETURN AFTER",
		map[string]any{
			"id":     versionRID(v.ID),
			"text":   v.Text,
			"author": v.Author,
		})
	if err != nil {
		return fmt.Errorf("update page version: %w", err)
	}
	if result == nil || len(*result) == 0 || len((*result)[0].Result) == 0 {
		return version.ErrVersionNotFound
	}
	return nil
}

func (r *surrealRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := surrealdb.Delete[versionRecord](ctx, r.db, versionRID(id)); err != nil {
		return fmt.Errorf("delete page version: %w", err)
	}
	return nil
}

func (r *surrealRepository) GetByID(ctx context.Context, id uuid.UUID) (*version.PageVersion, error) {
	rec, err := surrealdb.Select[versionRecord](ctx, r.db, versionRID(id))
	if err != nil {
		if isNotFound(err) {
			return nil, version.ErrVersionNotFound
		}
		return nil, fmt.Errorf("get page version: %w", err)
	}
	if rec == nil || rec.ID == nil {
		return nil, version.ErrVersionNotFound
	}

	v, err := rec.toDomain()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *surrealRepository) All(ctx context.Context) ([]version.PageVersion, error) {
	result, err := surrealdb.Query[[]versionRecord](ctx, r.db,
		"SELECT * FROM page_versions", nil)
	if err != nil {
		return nil, fmt.Errorf("list page versions: %w", err)
	}
	if result == nil || len(*result) == 0 {
		return nil, nil
	}
	return rowsToDomain((*result)[0].Result)
}

func (r *surrealRepository) FindByPageID(ctx context.Context, pageID int64) ([]version.PageVersion, error) {
	result, err := surrealdb.Query[[]versionRecord](ctx, r.db,
		"SELECT * FROM page_versions WHERE page_id = $page_id ORDER BY created_at DESC",
		map[string]any{"page_id": pageID})
	if err != nil {
		return nil, fmt.Errorf("find versions by page: %w", err)
	}
	if result == nil || len(*result) == 0 {
		return nil, nil
	}
	return rowsToDomain((*result)[0].Result)
}

func (r *surrealRepository) FindByAuthor(ctx context.Context, author string) ([]version.PageVersion, error) {
	result, err := surrealdb.Query[[]versionRecord](ctx, r.db,
		"SELECT * FROM page_versions WHERE string::lowercase(author) = string::lowercase($author) ORDER BY created_at DESC",
		map[string]any{"author": author})
	if err != nil {
		return nil, fmt.Errorf("find versions by author: %w", err)
	}
	if result == nil || len(*result) == 0 {
		return nil, nil
	}
	return rowsToDomain((*result)[0].Result)
}

func (r *surrealRepository) GetLatest(ctx context.Context, pageID int64) (*version.PageVersion, error) {
	result, err := surrealdb.Query[[]versionRecord](ctx, r.db,
		"SELECT * FROM page_versions WHERE page_id = $page_id ORDER BY created_at DESC LIMIT 1",
		map[string]any{"page_id": pageID})
	if err != nil {
		return nil, fmt.Errorf("get latest version: %w", err)
	}
	if result == nil || len(*result) == 0 || len((*result)[0].Result) == 0 {
		return nil, version.ErrVersionNotFound
	}

	v, err := (*result)[0].Result[0].toDomain()
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *surrealRepository) Wipe(ctx context.Context) error {
	if _, err := surrealdb.Query[any](ctx, r.db, "DELETE page_versions", nil); err != nil {
		return fmt.Errorf("wipe page versions: %w", err)
	}
	return nil
}
