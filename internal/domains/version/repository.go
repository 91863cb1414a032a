package version

import (
	"context"

	"github.com/google/uuid"
)

// Repository persists page revisions. Lookups that miss return
// ErrVersionNotFound; infrastructure failures are wrapped and
// propagated as-is.
type Repository interface {
	// Add persists a new revision. The caller assigns the identity and
	// timestamp; page existence is enforced one layer up.
	Add(ctx context.Context, v *PageVersion) error

	// Update overwrites Text and Author of an existing revision. ID and
	// PageID never change.
	Update(ctx context.Context, v *PageVersion) error

	// Delete removes exactly one revision. Sibling revisions of the
	// same page are untouched.
	Delete(ctx context.Context, id uuid.UUID) error

	GetByID(ctx context.Context, id uuid.UUID) (*PageVersion, error)

	// All returns every stored revision across all pages. Order is
	// unspecified.
	All(ctx context.Context) ([]PageVersion, error)

	// FindByPageID returns the page's revisions ordered descending by
	// CreatedAt. The creation revision is the last element.
	FindByPageID(ctx context.Context, pageID int64) ([]PageVersion, error)

	// FindByAuthor matches the author case-insensitively, ordered
	// descending by CreatedAt.
	FindByAuthor(ctx context.Context, author string) ([]PageVersion, error)

	// GetLatest returns the revision with the maximum CreatedAt for
	// the page.
	GetLatest(ctx context.Context, pageID int64) (*PageVersion, error)

	// Wipe clears the whole collection. Test isolation only.
	Wipe(ctx context.Context) error
}
