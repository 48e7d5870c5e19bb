package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloxrent/rental-admin/internal/model"
)

type mockPageRepository struct {
	insertPageFn        func(ctx context.Context, page *model.Page) error
	getPageByIDFn       func(ctx context.Context, id uuid.UUID) (*model.Page, error)
	listPagesFn         func(ctx context.Context) ([]model.Page, error)
	listMessagesFn      func(ctx context.Context, pageID uuid.UUID) ([]model.PageMessage, error)
	upsertMessageFn     func(ctx context.Context, m *model.PageMessage) error
	softDeleteMessageFn func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPageRepository) InsertPage(ctx context.Context, page *model.Page) error {
	if m.insertPageFn != nil {
		return m.insertPageFn(ctx, page)
	}
	return nil
}

func (m *mockPageRepository) GetPageByID(ctx context.Context, id uuid.UUID) (*model.Page, error) {
	if m.getPageByIDFn != nil {
		return m.getPageByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockPageRepository) ListPages(ctx context.Context) ([]model.Page, error) {
	if m.listPagesFn != nil {
		return m.listPagesFn(ctx)
	}
	return []model.Page{}, nil
}

func (m *mockPageRepository) ListMessages(ctx context.Context, pageID uuid.UUID) ([]model.PageMessage, error) {
	if m.listMessagesFn != nil {
		return m.listMessagesFn(ctx, pageID)
	}
	return []model.PageMessage{}, nil
}

func (m *mockPageRepository) UpsertMessage(ctx context.Context, msg *model.PageMessage) error {
	if m.upsertMessageFn != nil {
		return m.upsertMessageFn(ctx, msg)
	}
	return nil
}

func (m *mockPageRepository) SoftDeleteMessage(ctx context.Context, id uuid.UUID) error {
	if m.softDeleteMessageFn != nil {
		return m.softDeleteMessageFn(ctx, id)
	}
	return nil
}

func TestPageService_CreatePage_Success(t *testing.T) {
	var captured *model.Page
	repo := &mockPageRepository{
		insertPageFn: func(ctx context.Context, page *model.Page) error {
			captured = page
			return nil
		},
	}

	svc := NewPageService(repo)
	page, err := svc.CreatePage(context.Background(), &model.CreatePageRequest{Name: "  Checkout  "})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "Checkout", captured.Name)
	assert.NotEqual(t, uuid.Nil, captured.ID)
	assert.Equal(t, captured, page)
}

func TestPageService_ListMessages_PageNotFound(t *testing.T) {
	repo := &mockPageRepository{
		getPageByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Page, error) {
			return nil, nil
		},
		listMessagesFn: func(ctx context.Context, pageID uuid.UUID) ([]model.PageMessage, error) {
			t.Fatal("messages must not be listed for an unknown page")
			return nil, nil
		},
	}

	svc := NewPageService(repo)
	_, err := svc.ListMessages(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestPageService_UpsertMessage_Success(t *testing.T) {
	pageID := uuid.New()
	var captured *model.PageMessage
	repo := &mockPageRepository{
		getPageByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Page, error) {
			return &model.Page{ID: pageID, Name: "Checkout"}, nil
		},
		upsertMessageFn: func(ctx context.Context, msg *model.PageMessage) error {
			captured = msg
			return nil
		},
	}

	svc := NewPageService(repo)
	msg, err := svc.UpsertMessage(context.Background(), pageID, &model.UpsertMessageRequest{
		Key:    " title ",
		TextEN: "Checkout",
		TextAR: "الدفع",
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, pageID, captured.PageID)
	assert.Equal(t, "title", captured.Key)
	assert.Equal(t, "Checkout", captured.TextEN)
	assert.Equal(t, "الدفع", captured.TextAR)
	assert.Equal(t, captured, msg)
}

func TestPageService_UpsertMessage_PageNotFound(t *testing.T) {
	repo := &mockPageRepository{
		getPageByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Page, error) {
			return nil, nil
		},
	}

	svc := NewPageService(repo)
	_, err := svc.UpsertMessage(context.Background(), uuid.New(), &model.UpsertMessageRequest{Key: "title"})

	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestPageService_DeleteMessage_NotFound(t *testing.T) {
	repo := &mockPageRepository{
		softDeleteMessageFn: func(ctx context.Context, id uuid.UUID) error {
			return ErrMessageNotFound
		},
	}

	svc := NewPageService(repo)
	err := svc.DeleteMessage(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrMessageNotFound)
}
