package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"wiki-backend/internal/domains/page"
)

const pageTable = "pages"

// pageRecord is the stored document. The record id carries the integer
// page id, so version documents can reference pages by a plain int64.
type pageRecord struct {
	ID        *models.RecordID `json:"id,omitempty"`
	Title     string           `json:"title"`
	Tags      []string         `json:"tags"`
	Creator   string           `json:"creator"`
	CreatedAt time.Time        `json:"created_at"`
}

type surrealRepository struct {
	db *surrealdb.DB
}

func NewSurrealRepository(db *surrealdb.DB) page.Repository {
	return &surrealRepository{db: db}
}

func pageRID(id int64) models.RecordID {
	return models.RecordID{Table: pageTable, ID: id}
}

// isNotFound matches the driver errors raised when a record lookup
// produces no result.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Expected a single or multiple results but got 0") ||
		strings.Contains(msg, "cannot unmarshal array into Go value")
}

func recordToInt64(rid *models.RecordID) int64 {
	if rid == nil {
		return 0
	}
	switch v := rid.ID.(type) {
	case int64:
		return v
	case uint64:
		return int64(v)
	case int:
		return int64(v)
	case float64:
		return int64(v)
	}
	return 0
}

func (r *pageRecord) toDomain() page.Page {
	return page.Page{
		ID:        recordToInt64(r.ID),
		Title:     r.Title,
		Tags:      r.Tags,
		Creator:   r.Creator,
		CreatedAt: r.CreatedAt,
	}
}

// nextID increments the page counter document and returns the new
// value. UPSERT creates the counter on first use.
func (r *surrealRepository) nextID(ctx context.Context) (int64, error) {
	type counterRow struct {
		Value int64 `json:"value"`
	}

	result, err := surrealdb.Query[[]counterRow](ctx, r.db,
		"UPSERT counter:pages SET value += 1 RETURN AFTER", nil)
	if err != nil {
		return 0, fmt.Errorf("increment page counter: %w", err)
	}
	if result == nil || len(*result) == 0 || len((*result)[0].Result) == 0 {
		return 0, fmt.Errorf("increment page counter: empty result")
	}
	return (*result)[0].Result[0].Value, nil
}

func (r *surrealRepository) Create(ctx context.Context, p *page.Page) error {
	id, err := r.nextID(ctx)
	if err != nil {
		return err
	}

	rid := pageRID(id)
	rec := pageRecord{
		ID:        &rid,
		Title:     p.Title,
		Tags:      p.Tags,
		Creator:   p.Creator,
		CreatedAt: p.CreatedAt,
	}

	if _, err := surrealdb.Create[pageRecord](ctx, r.db, pageTable, rec); err != nil {
		return fmt.Errorf("create page: %w", err)
	}

	p.ID = id
	return nil
}

func (r *surrealRepository) GetByID(ctx context.Context, id int64) (*page.Page, error) {
	rec, err := surrealdb.Select[pageRecord](ctx, r.db, pageRID(id))
	if err != nil {
		if isNotFound(err) {
			return nil, page.ErrPageNotFound
		}
		return nil, fmt.Errorf("get page: %w", err)
	}
	if rec == nil || rec.ID == nil {
		return nil, page.ErrPageNotFound
	}

	p := rec.toDomain()
	return &p, nil
}

func (r *surrealRepository) List(ctx context.Context) ([]page.Page, error) {
	result, err := surrealdb.Query[[]pageRecord](ctx, r.db,
		"SELECT * FROM pages ORDER BY created_at DESC", nil)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}

	var pages []page.Page
	if result != nil && len(*result) > 0 {
		for i := range (*result)[0].Result {
			pages = append(pages, (*result)[0].Result[i].toDomain())
		}
	}
	return pages, nil
}

func (r *surrealRepository) Update(ctx context.Context, p *page.Page) error {
	result, err := surrealdb.Query[[]pageRecord](ctx, r.db,
		"UPDATE $id SET title = $title, tags = $tags RETURN AFTER",
		map[string]any{
			"id":    pageRID(p.ID),
			"title": p.Title,
			"tags":  p.Tags,
		})
	if err != nil {
		return fmt.Errorf("update page: %w", err)
	}
	if result == nil || len(*result) == 0 || len((*result)[0].Result) == 0 {
		return page.ErrPageNotFound
	}
	return nil
}

func (r *surrealRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	if _, err := surrealdb.Delete[pageRecord](ctx, r.db, pageRID(id)); err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	return nil
}

func (r *surrealRepository) Wipe(ctx context.Context) error {
	if _, err := surrealdb.Query[any](ctx, r.db, "DELETE pages", nil); err != nil {
		return fmt.Errorf("wipe pages: %w", err)
	}
	return nil
}
