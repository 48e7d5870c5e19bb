package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veloxrent/rental-admin/internal/model"
)

// PageRepositoryInterface defines the interface for page/translation data access.
type PageRepositoryInterface interface {
	InsertPage(ctx context.Context, page *model.Page) error
	GetPageByID(ctx context.Context, id uuid.UUID) (*model.Page, error)
	ListPages(ctx context.Context) ([]model.Page, error)
	ListMessages(ctx context.Context, pageID uuid.UUID) ([]model.PageMessage, error)
	UpsertMessage(ctx context.Context, m *model.PageMessage) error
	SoftDeleteMessage(ctx context.Context, id uuid.UUID) error
}

// PageService manages UI pages and their translated message keys.
type PageService struct {
	repo PageRepositoryInterface
}

// NewPageService creates a new PageService with the given repository.
func NewPageService(repo PageRepositoryInterface) *PageService {
	return &PageService{repo: repo}
}

// CreatePage registers a new UI page.
func (s *PageService) CreatePage(ctx context.Context, req *model.CreatePageRequest) (*model.Page, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	now := time.Now().UTC()
	page := &model.Page{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertPage(ctx, page); err != nil {
		return nil, err
	}
	return page, nil
}

// ListPages returns all non-deleted pages.
func (s *PageService) ListPages(ctx context.Context) ([]model.Page, error) {
	return s.repo.ListPages(ctx)
}

// ListMessages returns the message keys of a page.
// Returns ErrPageNotFound when the page doesn't exist or is deleted.
func (s *PageService) ListMessages(ctx context.Context, pageID uuid.UUID) ([]model.PageMessage, error) {
	page, err := s.repo.GetPageByID(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	if page == nil {
		return nil, ErrPageNotFound
	}
	return s.repo.ListMessages(ctx, pageID)
}

// UpsertMessage inserts or overwrites the translations for a message key.
// Returns ErrPageNotFound when the page doesn't exist or is deleted.
func (s *PageService) UpsertMessage(ctx context.Context, pageID uuid.UUID, req *model.UpsertMessageRequest) (*model.PageMessage, error) {
	if req == nil {
		return nil, ErrInvalidRequest
	}

	page, err := s.repo.GetPageByID(ctx, pageID)
	if err != nil {
		return nil, fmt.Errorf("get page: %w", err)
	}
	if page == nil {
		return nil, ErrPageNotFound
	}

	now := time.Now().UTC()
	msg := &model.PageMessage{
		ID:        uuid.New(),
		PageID:    pageID,
		Key:       strings.TrimSpace(req.Key),
		TextEN:    req.TextEN,
		TextAR:    req.TextAR,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.UpsertMessage(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// DeleteMessage soft-deletes a message key.
// Returns ErrMessageNotFound when the id does not resolve to a non-deleted message.
func (s *PageService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDeleteMessage(ctx, id)
}
