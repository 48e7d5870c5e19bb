package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veloxrent/rental-admin/internal/listing"
	"github.com/veloxrent/rental-admin/internal/model"
	"github.com/veloxrent/rental-admin/internal/service"
)

// PoolInterface defines the database operations needed by repositories.
// This allows for easier testing with mocks.
type PoolInterface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// uniqueViolation is the PostgreSQL error code for a unique constraint breach.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

const couponColumns = `c.id, c.code, c.discount_rate, c.company_id, c.description, c.banner_ref, c.is_deleted, c.created_at, c.updated_at`

// couponListFields whitelists the columns the admin listing may search and
// sort by. Client-supplied names outside this map are ignored.
var couponListFields = map[string]listing.Field{
	"code":          {Expr: "c.code"},
	"discount_rate": {Expr: "c.discount_rate", Numeric: true},
	"description":   {Expr: "c.description"},
	"company_name":  {Expr: "co.name"},
}

var couponListBuilder = listing.Builder{
	Fields:          couponListFields,
	GlobalScopeExpr: "c.company_id IS NULL",
	DefaultOrder:    "c.created_at DESC",
}

// CouponRepository provides data access for coupons using pgx.
type CouponRepository struct {
	pool PoolInterface
}

// NewCouponRepository creates a new CouponRepository with the given pool.
func NewCouponRepository(pool *pgxpool.Pool) *CouponRepository {
	return &CouponRepository{pool: pool}
}

// NewCouponRepositoryWithPool creates a new CouponRepository with a custom
// pool interface. This is primarily used for testing.
func NewCouponRepositoryWithPool(pool PoolInterface) *CouponRepository {
	return &CouponRepository{pool: pool}
}

// Insert inserts a new coupon. The partial unique index on lower(code) makes
// the case-insensitive uniqueness check atomic; a violation is reported as
// service.ErrCodeTaken.
func (r *CouponRepository) Insert(ctx context.Context, coupon *model.Coupon) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO coupons (id, code, discount_rate, company_id, description, banner_ref, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		coupon.ID, coupon.Code, coupon.DiscountRate, coupon.CompanyID,
		coupon.Description, coupon.BannerRef, coupon.CreatedAt, coupon.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return service.ErrCodeTaken
		}
		return fmt.Errorf("insert coupon: %w", err)
	}
	return nil
}

// GetByID retrieves a non-deleted coupon by id.
// Returns nil, nil if the coupon is not found (service layer handles this).
func (r *CouponRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons c WHERE c.id = $1 AND NOT c.is_deleted`

	coupon, err := r.scanCoupon(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get coupon by id %s: %w", id, err)
	}
	return coupon, nil
}

// GetByCode retrieves a non-deleted coupon by EXACT code match. Redemption
// lookups are case-sensitive, unlike the write-time uniqueness check.
// Returns nil, nil if the coupon is not found.
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons c WHERE c.code = $1 AND NOT c.is_deleted`

	coupon, err := r.scanCoupon(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get coupon by code %s: %w", code, err)
	}
	return coupon, nil
}

// CodeExists reports whether a non-deleted coupon other than exclude already
// uses the code, compared case-insensitively.
func (r *CouponRepository) CodeExists(ctx context.Context, code string, exclude *uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM coupons
		WHERE lower(code) = lower($1) AND NOT is_deleted
		  AND ($2::uuid IS NULL OR id <> $2)
	)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, code, exclude).Scan(&exists); err != nil {
		return false, fmt.Errorf("check coupon code %s: %w", code, err)
	}
	return exists, nil
}

// Update applies the field changes in a single UPDATE statement, so a
// company-scope clear and other field sets are atomic. Returns
// service.ErrCouponNotFound when the id does not resolve to a non-deleted
// coupon and service.ErrCodeTaken on a code collision.
func (r *CouponRepository) Update(ctx context.Context, id uuid.UUID, up model.CouponUpdate) error {
	sets := []string{"updated_at = now()"}
	var args []any

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if up.Code != nil {
		sets = append(sets, "code = "+arg(*up.Code))
	}
	if up.DiscountRate != nil {
		sets = append(sets, "discount_rate = "+arg(*up.DiscountRate))
	}
	if up.Description != nil {
		sets = append(sets, "description = "+arg(*up.Description))
	}
	if up.Company.IsClear() {
		sets = append(sets, "company_id = NULL")
	} else if v, ok := up.Company.Value(); ok {
		sets = append(sets, "company_id = "+arg(v))
	}
	if up.Banner.IsClear() {
		sets = append(sets, "banner_ref = NULL")
	} else if v, ok := up.Banner.Value(); ok {
		sets = append(sets, "banner_ref = "+arg(v))
	}

	query := fmt.Sprintf("UPDATE coupons SET %s WHERE id = %s AND NOT is_deleted",
		strings.Join(sets, ", "), arg(id))

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return service.ErrCodeTaken
		}
		return fmt.Errorf("update coupon %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrCouponNotFound
	}
	return nil
}

// SoftDelete marks a currently non-deleted coupon as deleted. Returns
// service.ErrCouponNotFound when no such coupon exists.
func (r *CouponRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE coupons SET is_deleted = true, updated_at = now() WHERE id = $1 AND NOT is_deleted`, id)
	if err != nil {
		return fmt.Errorf("soft delete coupon %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return service.ErrCouponNotFound
	}
	return nil
}

// List returns one page of coupons plus the total count of rows matching the
// filter ignoring pagination. Rows are joined with the company display name.
func (r *CouponRepository) List(ctx context.Context, req listing.Request) (*model.CouponPage, error) {
	from := ` FROM coupons c LEFT JOIN companies co ON co.id = c.company_id AND NOT co.is_deleted`
	where := ` WHERE NOT c.is_deleted`

	frag, args := couponListBuilder.Filter(req, 1)
	if frag != "" {
		where += " AND " + frag
	}

	var total int
	if err := r.pool.QueryRow(ctx, `SELECT count(*)`+from+where, args...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count coupons: %w", err)
	}

	pageQuery := fmt.Sprintf(`SELECT %s, co.name%s%s ORDER BY %s OFFSET $%d LIMIT $%d`,
		couponColumns, from, where, couponListBuilder.Order(req), len(args)+1, len(args)+2)
	pageArgs := append(args, req.Offset, req.Limit)

	rows, err := r.pool.Query(ctx, pageQuery, pageArgs...)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	items := []model.CouponListItem{}
	for rows.Next() {
		var item model.CouponListItem
		if err := rows.Scan(
			&item.ID, &item.Code, &item.DiscountRate, &item.CompanyID,
			&item.Description, &item.BannerRef, &item.IsDeleted,
			&item.CreatedAt, &item.UpdatedAt, &item.CompanyName,
		); err != nil {
			return nil, fmt.Errorf("scan coupon row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coupon rows: %w", err)
	}

	return &model.CouponPage{TotalCount: total, Coupons: items}, nil
}

// ListForCompany returns the coupons usable with the given company: global
// coupons plus those scoped to it, freshest first.
func (r *CouponRepository) ListForCompany(ctx context.Context, companyID uuid.UUID) ([]model.Coupon, error) {
	query := `SELECT ` + couponColumns + ` FROM coupons c
		WHERE NOT c.is_deleted AND (c.company_id IS NULL OR c.company_id = $1)
		ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list coupons for company %s: %w", companyID, err)
	}
	defer rows.Close()

	coupons := []model.Coupon{}
	for rows.Next() {
		var c model.Coupon
		if err := rows.Scan(
			&c.ID, &c.Code, &c.DiscountRate, &c.CompanyID,
			&c.Description, &c.BannerRef, &c.IsDeleted,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan coupon row: %w", err)
		}
		coupons = append(coupons, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate coupon rows: %w", err)
	}
	return coupons, nil
}

func (r *CouponRepository) scanCoupon(row pgx.Row) (*model.Coupon, error) {
	var c model.Coupon
	err := row.Scan(
		&c.ID, &c.Code, &c.DiscountRate, &c.CompanyID,
		&c.Description, &c.BannerRef, &c.IsDeleted,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
