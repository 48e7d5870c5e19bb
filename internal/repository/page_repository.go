package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veloxrent/rental-admin/internal/model"
	"github.com/veloxrent/rental-admin/internal/service"
)

// PageRepository provides data access for UI pages and their translated
// message keys.
type PageRepository struct {
	pool PoolInterface
}

// NewPageRepository creates a new PageRepository with the given pool.
func NewPageRepository(pool *pgxpool.Pool) *PageRepository {
	return &PageRepository{pool: pool}
}

// NewPageRepositoryWithPool creates a new PageRepository with a custom pool
// interface. This is primarily used for testing.
func NewPageRepositoryWithPool(pool PoolInterface) *PageRepository {
	return &PageRepository{pool: pool}
}

// InsertPage inserts a new page.
func (r *PageRepository) InsertPage(ctx context.Context, page *model.Page) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO pages (id, name, created_at, updated_at) VALUES ($1, $2, $3, $4)`,
		page.ID, page.Name, page.CreatedAt, page.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert page: %w", err)
	}
	return nil
}

// GetPageByID retrieves a non-deleted page by id.
// Returns nil, nil if the page is not found.
func (r *PageRepository) GetPageByID(ctx context.Context, id uuid.UUID) (*model.Page, error) {
	query := `SELECT id, name, is_deleted, created_at, updated_at FROM pages WHERE id = $1 AND NOT is_deleted`

	var p model.Page
	err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get page by id %s: %w", id, err)
	}
	return &p, nil
}

// ListPages returns all non-deleted pages, freshest first.
func (r *PageRepository) ListPages(ctx context.Context) ([]model.Page, error) {
	query := `SELECT id, name, is_deleted, created_at, updated_at FROM pages
		WHERE NOT is_deleted ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	defer rows.Close()

	pages := []model.Page{}
	for rows.Next() {
		var p model.Page
		if err := rows.Scan(&p.ID, &p.Name, &p.IsDeleted, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan page row: %w", err)
		}
		pages = append(pages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate page rows: %w", err)
	}
	return pages, nil
}

// ListMessages returns the non-deleted message keys of a page in key order.
func (r *PageRepository) ListMessages(ctx context.Context, pageID uuid.UUID) ([]model.PageMessage, error) {
	query := `SELECT id, page_id, msg_key, text_en, text_ar, is_deleted, created_at, updated_at
		FROM page_messages WHERE page_id = $1 AND NOT is_deleted ORDER BY msg_key`

	rows, err := r.pool.Query(ctx, query, pageID)
	if err != nil {
		return nil, fmt.Errorf("list messages for page %s: %w", pageID, err)
	}
	defer rows.Close()

	msgs := []model.PageMessage{}
	for rows.Next() {
		var m model.PageMessage
		if err := rows.Scan(&m.ID, &m.PageID, &m.Key, &m.TextEN, &m.TextAR,
			&m.IsDeleted, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan message row: %w", err)
		}
		msgs = append(msgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate message rows: %w", err)
	}
	return msgs, nil
}

// UpsertMessage inserts a message key or, when the key already exists on the
// page, overwrites its translation texts.
func (r *PageRepository) UpsertMessage(ctx context.Context, m *model.PageMessage) error {
	query := `INSERT INTO page_messages (id, page_id, msg_key, text_en, text_ar, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (page_id, msg_key) WHERE NOT is_deleted
		DO UPDATE SET text_en = EXCLUDED.text_en, text_ar = EXCLUDED.text_ar, updated_at = now()`

	_, err := r.pool.Exec(ctx, query,
		m.ID, m.PageID, m.Key, m.TextEN, m.TextAR, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert message %s: %w", m.Key, err)
	}
	return nil
}

// SoftDeleteMessage marks a currently non-deleted message as deleted.
// Returns service.ErrMessageNotFound when no such message exists.
func (r *PageRepository) SoftDeleteMessage(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE page_messages SET is_deleted = true, updated_at = now() WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return fmt.Errorf("soft delete message %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrMessageNotFound
	}
	return nil
}
