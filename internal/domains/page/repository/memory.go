package repository

import (
	"context"
	"sort"
	"sync"

	"wiki-backend/internal/domains/page"
)

// memoryRepository is the in-memory page store used by tests and
// local development.
type memoryRepository struct {
	mu     sync.RWMutex
	pages  map[int64]page.Page
	nextID int64
}

func NewMemoryRepository() page.Repository {
	return &memoryRepository{pages: make(map[int64]page.Page)}
}

func (r *memoryRepository) Create(_ context.Context, p *page.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	p.ID = r.nextID
	r.pages[p.ID] = *p
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id int64) (*page.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pages[id]
	if !ok {
		return nil, page.ErrPageNotFound
	}
	return &p, nil
}

func (r *memoryRepository) List(_ context.Context) ([]page.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pages := make([]page.Page, 0, len(r.pages))
	for _, p := range r.pages {
		pages = append(pages, p)
	}
	sort.Slice(pages, func(i, j int) bool {
		return pages[i].CreatedAt.After(pages[j].CreatedAt)
	})
	return pages, nil
}

func (r *memoryRepository) Update(_ context.Context, p *page.Page) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.pages[p.ID]
	if !ok {
		return page.ErrPageNotFound
	}
	existing.Title = p.Title
	existing.Tags = p.Tags
	r.pages[p.ID] = existing
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pages[id]; !ok {
		return page.ErrPageNotFound
	}
	delete(r.pages, id)
	return nil
}

func (r *memoryRepository) Wipe(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pages = make(map[int64]page.Page)
	return nil
}
