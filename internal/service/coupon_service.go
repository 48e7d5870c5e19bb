package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veloxrent/rental-admin/internal/listing"
	"github.com/veloxrent/rental-admin/internal/model"
	"github.com/veloxrent/rental-admin/pkg/patch"
)

// CouponRepositoryInterface defines the interface for coupon data access.
type CouponRepositoryInterface interface {
	Insert(ctx context.Context, coupon *model.Coupon) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error)
	GetByCode(ctx context.Context, code string) (*model.Coupon, error)
	CodeExists(ctx context.Context, code string, exclude *uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, up model.CouponUpdate) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, req listing.Request) (*model.CouponPage, error)
	ListForCompany(ctx context.Context, companyID uuid.UUID) ([]model.Coupon, error)
}

// CouponService provides business logic for coupon lifecycle operations.
type CouponService struct {
	repo CouponRepositoryInterface
}

// NewCouponService creates a new CouponService with the given repository.
func NewCouponService(repo CouponRepositoryInterface) *CouponService {
	return &CouponService{repo: repo}
}

// Create creates a new coupon from the request.
// Returns ErrCodeTaken if another non-deleted coupon already uses the code
// under case-insensitive comparison. The pre-check gives a friendly error;
// the partial unique index on lower(code) is the authority under concurrency.
func (s *CouponService) Create(ctx context.Context, req *model.CreateCouponRequest) (*model.Coupon, error) {
	if req == nil || req.DiscountRate == nil {
		return nil, ErrInvalidRequest
	}

	code := strings.TrimSpace(req.Code)

	taken, err := s.repo.CodeExists(ctx, code, nil)
	if err != nil {
		return nil, fmt.Errorf("check code: %w", err)
	}
	if taken {
		return nil, ErrCodeTaken
	}

	now := time.Now().UTC()
	coupon := &model.Coupon{
		ID:           uuid.New(),
		Code:         code,
		DiscountRate: *req.DiscountRate,
		CompanyID:    req.CompanyID,
		Description:  req.Description,
		BannerRef:    req.BannerRef,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Insert(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// Update applies a partial update to a coupon. The company scope and banner
// reference are tri-state: cleared, set, or left untouched.
// Returns ErrCodeTaken when the new code collides with another coupon and
// ErrCouponNotFound when the id does not resolve to a non-deleted coupon.
func (s *CouponService) Update(ctx context.Context, id uuid.UUID, req *model.UpdateCouponRequest) error {
	if req == nil {
		return ErrInvalidRequest
	}

	up := model.CouponUpdate{
		DiscountRate: req.DiscountRate,
		Description:  req.Description,
		Company:      triState(req.ClearCompany, req.CompanyID),
		Banner:       triState(req.ClearBanner, req.BannerRef),
	}

	if req.Code != nil {
		code := strings.TrimSpace(*req.Code)
		taken, err := s.repo.CodeExists(ctx, code, &id)
		if err != nil {
			return fmt.Errorf("check code: %w", err)
		}
		if taken {
			return ErrCodeTaken
		}
		up.Code = &code
	}

	return s.repo.Update(ctx, id, up)
}

// Delete soft-deletes a coupon. Returns ErrCouponNotFound when the id does
// not resolve to a non-deleted coupon.
func (s *CouponService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.SoftDelete(ctx, id)
}

// GetByID retrieves a non-deleted coupon.
// Returns ErrCouponNotFound if the coupon doesn't exist or is deleted.
func (s *CouponService) GetByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error) {
	coupon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get coupon: %w", err)
	}
	if coupon == nil {
		return nil, ErrCouponNotFound
	}
	return coupon, nil
}

// List returns one page of coupons plus the total count for the filter.
func (s *CouponService) List(ctx context.Context, req listing.Request) (*model.CouponPage, error) {
	return s.repo.List(ctx, req)
}

// ListForCompany returns the coupons usable with the given company.
func (s *CouponService) ListForCompany(ctx context.Context, companyID uuid.UUID) ([]model.Coupon, error) {
	return s.repo.ListForCompany(ctx, companyID)
}

// CodeAvailable reports whether a code is free to use, optionally ignoring
// one coupon id. Exposed for live validation while an admin types.
func (s *CouponService) CodeAvailable(ctx context.Context, code string, exclude *uuid.UUID) (bool, error) {
	taken, err := s.repo.CodeExists(ctx, strings.TrimSpace(code), exclude)
	if err != nil {
		return false, fmt.Errorf("check code: %w", err)
	}
	return !taken, nil
}

// triState maps the clear-flag + optional-value wire shape onto a
// patch.Field. Clear wins over a supplied value.
func triState[T any](clear bool, value *T) patch.Field[T] {
	if clear {
		return patch.Clear[T]()
	}
	if value != nil {
		return patch.Set(*value)
	}
	return patch.Unchanged[T]()
}
