package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wiki-backend/internal/domains/page"
	"wiki-backend/internal/domains/version"
	"wiki-backend/pkg/logger"
)

type pageService struct {
	pages    page.Repository
	versions version.Repository
}

func NewPageService(pages page.Repository, versions version.Repository) page.Service {
	return &pageService{pages: pages, versions: versions}
}

func (s *pageService) Create(ctx context.Context, req page.CreatePageRequest, creator string) (*page.PageDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &page.Page{
		Title:     req.Title,
		Tags:      page.NormalizeTags(req.Tags),
		Creator:   creator,
		CreatedAt: time.Now(),
	}
	if err := s.pages.Create(ctx, p); err != nil {
		return nil, err
	}

	// The creation itself is version one. History queries rely on this
	// revision being present as the oldest entry, so a page without it
	// must not survive: roll the page back if the write fails.
	initial := &version.PageVersion{
		ID:        uuid.New(),
		PageID:    p.ID,
		Text:      req.Text,
		Author:    creator,
		CreatedAt: p.CreatedAt,
	}
	if err := s.versions.Add(ctx, initial); err != nil {
		if delErr := s.pages.Delete(ctx, p.ID); delErr != nil {
			logger.Error("rollback page after version write failure", delErr)
		}
		return nil, err
	}

	return p.ToDTO(), nil
}

func (s *pageService) GetByID(ctx context.Context, id int64) (*page.PageDTO, error) {
	p, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.ToDTO(), nil
}

func (s *pageService) List(ctx context.Context) ([]page.PageDTO, error) {
	pages, err := s.pages.List(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]page.PageDTO, 0, len(pages))
	for i := range pages {
		dtos = append(dtos, *pages[i].ToDTO())
	}
	return dtos, nil
}

func (s *pageService) Update(ctx context.Context, id int64, req page.UpdatePageRequest) (*page.PageDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p, err := s.pages.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	p.Title = req.Title
	p.Tags = page.NormalizeTags(req.Tags)
	if err := s.pages.Update(ctx, p); err != nil {
		return nil, err
	}

	return p.ToDTO(), nil
}

func (s *pageService) Delete(ctx context.Context, id int64) error {
	// Metadata only. Historical revisions of the page remain stored
	// and retrievable through the version endpoints.
	return s.pages.Delete(ctx, id)
}
