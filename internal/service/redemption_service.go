package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/veloxrent/rental-admin/internal/metrics"
	"github.com/veloxrent/rental-admin/internal/model"
)

// RedemptionRepositoryInterface defines the interface for redemption data access.
type RedemptionRepositoryInterface interface {
	Exists(ctx context.Context, userID string, couponID uuid.UUID) (bool, error)
	Insert(ctx context.Context, red *model.Redemption) error
}

// CouponLookupInterface is the slice of coupon data access the redemption
// flow needs.
type CouponLookupInterface interface {
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
}

// RedemptionService enforces the one-redemption-per-user-per-coupon rule and
// returns the applicable discount.
type RedemptionService struct {
	couponRepo     CouponLookupInterface
	redemptionRepo RedemptionRepositoryInterface
}

// NewRedemptionService creates a new RedemptionService with the given repositories.
func NewRedemptionService(couponRepo CouponLookupInterface, redemptionRepo RedemptionRepositoryInterface) *RedemptionService {
	return &RedemptionService{
		couponRepo:     couponRepo,
		redemptionRepo: redemptionRepo,
	}
}

// Apply redeems a coupon code for a user and returns the stored discount rate.
// The code lookup is an exact, case-sensitive match; only the write-time
// uniqueness check is case-insensitive.
// Returns:
//   - ErrInvalidCode if no non-deleted coupon carries the code
//   - ErrAlreadyApplied if the user has already redeemed this coupon
//
// A redemption record is always persisted on success; the partial unique
// index on (user_id, coupon_id) keeps the rule atomic under concurrency, so
// the prior-record check here only serves the common fast path.
func (s *RedemptionService) Apply(ctx context.Context, userID, code string) (float64, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		metrics.RecordRedemption("error")
		return 0, fmt.Errorf("lookup coupon: %w", err)
	}
	if coupon == nil {
		metrics.RecordRedemption("invalid_code")
		return 0, ErrInvalidCode
	}

	applied, err := s.redemptionRepo.Exists(ctx, userID, coupon.ID)
	if err != nil {
		metrics.RecordRedemption("error")
		return 0, fmt.Errorf("check redemption: %w", err)
	}
	if applied {
		metrics.RecordRedemption("already_applied")
		return 0, ErrAlreadyApplied
	}

	now := time.Now().UTC()
	red := &model.Redemption{
		ID:        uuid.New(),
		CouponID:  coupon.ID,
		UserID:    userID,
		Applied:   true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.redemptionRepo.Insert(ctx, red); err != nil {
		if errors.Is(err, ErrAlreadyApplied) {
			metrics.RecordRedemption("already_applied")
			return 0, ErrAlreadyApplied
		}
		metrics.RecordRedemption("error")
		return 0, fmt.Errorf("insert redemption: %w", err)
	}

	metrics.RecordRedemption("success")
	return coupon.DiscountRate, nil
}
