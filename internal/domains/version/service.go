package version

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes the revision history operations consumed by the
// HTTP handlers.
type Service interface {
	// AddNewVersion appends a revision to an existing page with the
	// current time as its timestamp. Missing page -> page.ErrPageNotFound.
	AddNewVersion(ctx context.Context, pageID int64, req AddVersionRequest, author string) (*VersionDTO, error)

	// UpdateExistingVersion overwrites text and author of a stored
	// revision. Identity and page binding are preserved.
	UpdateExistingVersion(ctx context.Context, id uuid.UUID, req UpdateVersionRequest) (*VersionDTO, error)

	DeleteVersion(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*VersionDTO, error)
	AllVersions(ctx context.Context) ([]VersionDTO, error)
	FindPageVersionsByPageID(ctx context.Context, pageID int64) ([]VersionDTO, error)
	FindPageVersionsByAuthor(ctx context.Context, author string) ([]VersionDTO, error)
	GetLatestVersion(ctx context.Context, pageID int64) (*VersionDTO, error)
}
