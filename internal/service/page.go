// internal/service/page.go
package service

import (
	"context"
	"fmt"

	"github.com/Braham27/churchflow-sub002/internal/audit"
	"github.com/Braham27/churchflow-sub002/internal/domain"
	"github.com/Braham27/churchflow-sub002/internal/identifier"
	"github.com/Braham27/churchflow-sub002/internal/model"
	"github.com/Braham27/churchflow-sub002/internal/repository"
	"github.com/Braham27/churchflow-sub002/internal/tenant"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type PageService struct {
	repo     repository.PageRepositoryIface
	recorder audit.Recorder
	validate *validator.Validate
}

func NewPageService(repo repository.PageRepositoryIface, recorder audit.Recorder) *PageService {
	return &PageService{
		repo:     repo,
		recorder: recorder,
		validate: validator.New(),
	}
}

type PageInput struct {
	Title     string `json:"title" validate:"required"`
	Body      string `json:"body"`
	Published bool   `json:"published"`
}

// Create publishes a CMS page. Gated: owner/admin only. The slug is derived
// from the title and allocated within the church's page namespace.
func (s *PageService) Create(ctx context.Context, id tenant.Identity, input PageInput) (*model.WebPage, error) {
	if err := tenant.Authorize(id, tenant.ActionCreatePage); err != nil {
		return nil, err
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	page := &model.WebPage{
		ChurchID:  id.ChurchID,
		Title:     input.Title,
		Body:      input.Body,
		Published: input.Published,
		CreatedBy: id.UserID,
	}

	scope := id.Scope()
	ns := identifier.NamespaceFunc(func(ctx context.Context, candidate string) (bool, error) {
		return s.repo.SlugExists(ctx, scope, candidate)
	})
	slug, err := identifier.Slug(ctx, input.Title, ns, func(ctx context.Context, candidate string) error {
		page.Slug = candidate
		return s.repo.Create(ctx, page)
	})
	if err != nil {
		return nil, err
	}
	page.Slug = slug

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionCreate, "page", page.ID, model.Details{
		"title": page.Title,
		"slug":  page.Slug,
	})

	return page, nil
}

func (s *PageService) Get(ctx context.Context, id tenant.Identity, pageID uuid.UUID) (*model.WebPage, error) {
	return s.repo.FindByID(ctx, id.Scope(), pageID)
}

func (s *PageService) List(ctx context.Context, id tenant.Identity) ([]*model.WebPage, error) {
	return s.repo.FindAll(ctx, id.Scope())
}

func (s *PageService) Update(ctx context.Context, id tenant.Identity, pageID uuid.UUID, input PageInput) (*model.WebPage, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	page, err := s.repo.FindByID(ctx, id.Scope(), pageID)
	if err != nil {
		return nil, err
	}

	page.Title = input.Title
	page.Body = input.Body
	page.Published = input.Published

	// Slug stays as allocated; retitling a page must not break its URL.

	if err := s.repo.Update(ctx, page); err != nil {
		return nil, err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionUpdate, "page", page.ID, nil)

	return page, nil
}

func (s *PageService) Delete(ctx context.Context, id tenant.Identity, pageID uuid.UUID) error {
	page, err := s.repo.FindByID(ctx, id.Scope(), pageID)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id.Scope(), page.ID); err != nil {
		return err
	}

	s.recorder.Record(ctx, id.ChurchID, id.UserID, model.ActionDelete, "page", page.ID, nil)

	return nil
}
