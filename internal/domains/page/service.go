package page

import "context"

// Service exposes page metadata operations. Creation also records the
// initial revision so version history always includes the original
// text as its oldest entry.
type Service interface {
	Create(ctx context.Context, req CreatePageRequest, creator string) (*PageDTO, error)
	GetByID(ctx context.Context, id int64) (*PageDTO, error)
	List(ctx context.Context) ([]PageDTO, error)
	Update(ctx context.Context, id int64, req UpdatePageRequest) (*PageDTO, error)
	Delete(ctx context.Context, id int64) error
}
