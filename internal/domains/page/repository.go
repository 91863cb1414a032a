package page

import "context"

// Repository persists page metadata. Create assigns the integer ID
// from a store-managed counter before returning.
type Repository interface {
	Create(ctx context.Context, p *Page) error
	GetByID(ctx context.Context, id int64) (*Page, error)
	List(ctx context.Context) ([]Page, error)
	Update(ctx context.Context, p *Page) error
	Delete(ctx context.Context, id int64) error

	// Wipe clears the whole collection. Test isolation only.
	Wipe(ctx context.Context) error
}
