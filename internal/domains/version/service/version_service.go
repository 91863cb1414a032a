package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wiki-backend/internal/domains/page"
	"wiki-backend/internal/domains/version"
)

type versionService struct {
	versions version.Repository
	pages    page.Repository
}

func NewVersionService(versions version.Repository, pages page.Repository) version.Service {
	return &versionService{versions: versions, pages: pages}
}

func (s *versionService) AddNewVersion(ctx context.Context, pageID int64, req version.AddVersionRequest, author string) (*version.VersionDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Revisions are only appended to pages that still exist; history
	// of deleted pages stays readable but frozen.
	if _, err := s.pages.GetByID(ctx, pageID); err != nil {
		return nil, err
	}

	v := &version.PageVersion{
		ID:        uuid.New(),
		PageID:    pageID,
		Text:      req.Text,
		Author:    author,
		CreatedAt: time.Now(),
	}
	if err := s.versions.Add(ctx, v); err != nil {
		return nil, err
	}

	return v.ToDTO(), nil
}

func (s *versionService) UpdateExistingVersion(ctx context.Context, id uuid.UUID, req version.UpdateVersionRequest) (*version.VersionDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.versions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Text = req.Text
	existing.Author = req.Author
	if err := s.versions.Update(ctx, existing); err != nil {
		return nil, err
	}

	return existing.ToDTO(), nil
}

func (s *versionService) DeleteVersion(ctx context.Context, id uuid.UUID) error {
	return s.versions.Delete(ctx, id)
}

func (s *versionService) GetByID(ctx context.Context, id uuid.UUID) (*version.VersionDTO, error) {
	v, err := s.versions.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return v.ToDTO(), nil
}

func (s *versionService) AllVersions(ctx context.Context) ([]version.VersionDTO, error) {
	versions, err := s.versions.All(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(versions), nil
}

func (s *versionService) FindPageVersionsByPageID(ctx context.Context, pageID int64) ([]version.VersionDTO, error) {
	versions, err := s.versions.FindByPageID(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return toDTOs(versions), nil
}

func (s *versionService) FindPageVersionsByAuthor(ctx context.Context, author string) ([]version.VersionDTO, error) {
	versions, err := s.versions.FindByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	return toDTOs(versions), nil
}

func (s *versionService) GetLatestVersion(ctx context.Context, pageID int64) (*version.VersionDTO, error) {
	v, err := s.versions.GetLatest(ctx, pageID)
	if err != nil {
		return nil, err
	}
	return v.ToDTO(), nil
}

func toDTOs(versions []version.PageVersion) []version.VersionDTO {
	dtos := make([]version.VersionDTO, 0, len(versions))
	for i := range versions {
		dtos = append(dtos, *versions[i].ToDTO())
	}
	return dtos
}
