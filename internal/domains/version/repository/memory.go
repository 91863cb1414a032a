package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"wiki-backend/internal/domains/version"
)

// memoryEntry pairs a revision with its insertion sequence number. The
// sequence breaks CreatedAt ties the way the document store's assigned
// ordering does, so both implementations order identically.
type memoryEntry struct {
	v   version.PageVersion
	seq uint64
}

// memoryRepository is the in-memory version store used by tests and
// local development. Ordering guarantees match the document-backed
// implementation.
type memoryRepository struct {
	mu       sync.RWMutex
	versions map[uuid.UUID]memoryEntry
	nextSeq  uint64
}

func NewMemoryRepository() version.Repository {
	return &memoryRepository{versions: make(map[uuid.UUID]memoryEntry)}
}

func (r *memoryRepository) Add(_ context.Context, v *version.PageVersion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextSeq++
	r.versions[v.ID] = memoryEntry{v: *v, seq: r.nextSeq}
	return nil
}

func (r *memoryRepository) Update(_ context.Context, v *version.PageVersion) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.versions[v.ID]
	if !ok {
		return version.ErrVersionNotFound
	}
	entry.v.Text = v.Text
	entry.v.Author = v.Author
	r.versions[v.ID] = entry
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.versions[id]; !ok {
		return version.ErrVersionNotFound
	}
	delete(r.versions, id)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uuid.UUID) (*version.PageVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.versions[id]
	if !ok {
		return nil, version.ErrVersionNotFound
	}

	v := entry.v
	return &v, nil
}

func (r *memoryRepository) All(_ context.Context) ([]version.PageVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	versions := make([]version.PageVersion, 0, len(r.versions))
	for _, entry := range r.versions {
		versions = append(versions, entry.v)
	}
	return versions, nil
}

func (r *memoryRepository) FindByPageID(_ context.Context, pageID int64) ([]version.PageVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(e memoryEntry) bool {
		return e.v.PageID == pageID
	}), nil
}

func (r *memoryRepository) FindByAuthor(_ context.Context, author string) ([]version.PageVersion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.collect(func(e memoryEntry) bool {
		return strings.EqualFold(e.v.Author, author)
	}), nil
}

func (r *memoryRepository) GetLatest(_ context.Context, pageID int64) (*version.PageVersion, error) {
	versions, err := r.FindByPageID(context.Background(), pageID)
	if err != nil {
		return nil, err
	}
	if len(versions) == 0 {
		return nil, version.ErrVersionNotFound
	}
	return &versions[0], nil
}

func (r *memoryRepository) Wipe(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.versions = make(map[uuid.UUID]memoryEntry)
	return nil
}

// collect returns matching revisions ordered descending by CreatedAt,
// equal timestamps broken by insertion order (later first). Callers
// must hold at least the read lock.
func (r *memoryRepository) collect(match func(memoryEntry) bool) []version.PageVersion {
	var entries []memoryEntry
	for _, entry := range r.versions {
		if match(entry) {
			entries = append(entries, entry)
		}
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].v.CreatedAt.Equal(entries[j].v.CreatedAt) {
			return entries[i].seq > entries[j].seq
		}
		return entries[i].v.CreatedAt.After(entries[j].v.CreatedAt)
	})

	versions := make([]version.PageVersion, 0, len(entries))
	for _, entry := range entries {
		versions = append(versions, entry.v)
	}
	return versions
}
