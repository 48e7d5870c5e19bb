package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/veloxrent/rental-admin/internal/model"
	"github.com/veloxrent/rental-admin/internal/service"
)

// RedemptionRepository provides data access for coupon redemptions.
type RedemptionRepository struct {
	pool PoolInterface
}

// NewRedemptionRepository creates a new RedemptionRepository with the given pool.
func NewRedemptionRepository(pool *pgxpool.Pool) *RedemptionRepository {
	return &RedemptionRepository{pool: pool}
}

// NewRedemptionRepositoryWithPool creates a new RedemptionRepository with a
// custom pool interface. This is primarily used for testing.
func NewRedemptionRepositoryWithPool(pool PoolInterface) *RedemptionRepository {
	return &RedemptionRepository{pool: pool}
}

// Exists reports whether a non-deleted redemption already exists for the
// (user, coupon) pair.
func (r *RedemptionRepository) Exists(ctx context.Context, userID string, couponID uuid.UUID) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM redemptions WHERE user_id = $1 AND coupon_id = $2 AND NOT is_deleted
	)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, couponID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check redemption for user %s: %w", userID, err)
	}
	return exists, nil
}

// Insert persists a redemption record. The partial unique index on
// (user_id, coupon_id) closes the check-then-act race: a second concurrent
// insert for the same pair is rejected and reported as
// service.ErrAlreadyApplied.
func (r *RedemptionRepository) Insert(ctx context.Context, red *model.Redemption) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO redemptions (id, coupon_id, user_id, applied, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		red.ID, red.CouponID, red.UserID, red.Applied, red.CreatedAt, red.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return service.ErrAlreadyApplied
		}
		return fmt.Errorf("insert redemption: %w", err)
	}
	return nil
}
