package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veloxrent/rental-admin/internal/listing"
	"github.com/veloxrent/rental-admin/internal/model"
)

// mockCouponRepository is a mock implementation of CouponRepositoryInterface.
type mockCouponRepository struct {
	insertFn         func(ctx context.Context, coupon *model.Coupon) error
	getByIDFn        func(ctx context.Context, id uuid.UUID) (*model.Coupon, error)
	getByCodeFn      func(ctx context.Context, code string) (*model.Coupon, error)
	codeExistsFn     func(ctx context.Context, code string, exclude *uuid.UUID) (bool, error)
	updateFn         func(ctx context.Context, id uuid.UUID, up model.CouponUpdate) error
	softDeleteFn     func(ctx context.Context, id uuid.UUID) error
	listFn           func(ctx context.Context, req listing.Request) (*model.CouponPage, error)
	listForCompanyFn func(ctx context.Context, companyID uuid.UUID) ([]model.Coupon, error)
}

func (m *mockCouponRepository) Insert(ctx context.Context, coupon *model.Coupon) error {
	if m.insertFn != nil {
		return m.insertFn(ctx, coupon)
	}
	return nil
}

func (m *mockCouponRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockCouponRepository) GetByCode(ctx context.Context, code string) (*model.Coupon, error) {
	if m.getByCodeFn != nil {
		return m.getByCodeFn(ctx, code)
	}
	return nil, nil
}

func (m *mockCouponRepository) CodeExists(ctx context.Context, code string, exclude *uuid.UUID) (bool, error) {
	if m.codeExistsFn != nil {
		return m.codeExistsFn(ctx, code, exclude)
	}
	return false, nil
}

func (m *mockCouponRepository) Update(ctx context.Context, id uuid.UUID, up model.CouponUpdate) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, up)
	}
	return nil
}

func (m *mockCouponRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if m.softDeleteFn != nil {
		return m.softDeleteFn(ctx, id)
	}
	return nil
}

func (m *mockCouponRepository) List(ctx context.Context, req listing.Request) (*model.CouponPage, error) {
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return &model.CouponPage{}, nil
}

func (m *mockCouponRepository) ListForCompany(ctx context.Context, companyID uuid.UUID) ([]model.Coupon, error) {
	if m.listForCompanyFn != nil {
		return m.listForCompanyFn(ctx, companyID)
	}
	return []model.Coupon{}, nil
}

func ratePtr(f float64) *float64 { return &f }
func strPtr(s string) *string    { return &s }

func TestCouponService_Create_Success(t *testing.T) {
	var captured *model.Coupon
	repo := &mockCouponRepository{
		insertFn: func(ctx context.Context, coupon *model.Coupon) error {
			captured = coupon
			return nil
		},
	}

	svc := NewCouponService(repo)
	coupon, err := svc.Create(context.Background(), &model.CreateCouponRequest{
		Code:         "  SAVE10  ",
		DiscountRate: ratePtr(10),
		Description:  "ten percent off",
	})

	require.NoError(t, err)
	require.NotNil(t, captured)
	assert.Equal(t, "SAVE10", captured.Code, "code should be trimmed")
	assert.Equal(t, 10.0, captured.DiscountRate)
	assert.NotEqual(t, uuid.Nil, captured.ID)
	assert.False(t, captured.CreatedAt.IsZero())
	assert.Equal(t, captured.CreatedAt, captured.UpdatedAt, "timestamps should match on creation")
	assert.Equal(t, captured, coupon)
}

func TestCouponService_Create_DuplicateCode(t *testing.T) {
	repo := &mockCouponRepository{
		codeExistsFn: func(ctx context.Context, code string, exclude *uuid.UUID) (bool, error) {
			assert.Equal(t, "SAVE10", code)
			assert.Nil(t, exclude)
			return true, nil
		},
		insertFn: func(ctx context.Context, coupon *model.Coupon) error {
			t.Fatal("insert must not be called when the code is taken")
			return nil
		},
	}

	svc := NewCouponService(repo)
	_, err := svc.Create(context.Background(), &model.CreateCouponRequest{
		Code:         "SAVE10",
		DiscountRate: ratePtr(20),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCodeTaken)
}

func TestCouponService_Create_ConstraintBackstop(t *testing.T) {
	// Pre-check misses a concurrent create; the unique index reports the
	// duplicate through Insert.
	repo := &mockCouponRepository{
		insertFn: func(ctx context.Context, coupon *model.Coupon) error {
			return ErrCodeTaken
		},
	}

	svc := NewCouponService(repo)
	_, err := svc.Create(context.Background(), &model.CreateCouponRequest{
		Code:         "SAVE10",
		DiscountRate: ratePtr(10),
	})

	assert.ErrorIs(t, err, ErrCodeTaken)
}

func TestCouponService_Create_NilRequest(t *testing.T) {
	svc := NewCouponService(&mockCouponRepository{})

	_, err := svc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidRequest)

	_, err = svc.Create(context.Background(), &model.CreateCouponRequest{Code: "SAVE10"})
	assert.ErrorIs(t, err, ErrInvalidRequest, "nil discount rate should be rejected")
}

func TestCouponService_Update_ClearCompanyScope(t *testing.T) {
	var captured model.CouponUpdate
	repo := &mockCouponRepository{
		updateFn: func(ctx context.Context, id uuid.UUID, up model.CouponUpdate) error {
			captured = up
			return nil
		},
	}

	svc := NewCouponService(repo)
	companyID := uuid.New()
	err := svc.Update(context.Background(), uuid.New(), &model.UpdateCouponRequest{
		CompanyID:    &companyID,
		ClearCompany: true,
	})

	require.NoError(t, err)
	assert.True(t, captured.Company.IsClear(), "clear flag should win over a supplied value")
}

func TestCouponService_Update_SetCompanyScope(t *testing.T) {
	var captured model.CouponUpdate
	repo := &mockCouponRepository{
		updateFn: func(ctx context.Context, id uuid.UUID, up model.CouponUpdate) error {
			captured = up
			return nil
		},
	}

	svc := NewCouponService(repo)
	companyID := uuid.New()
	err := svc.Update(context.Background(), uuid.New(), &model.UpdateCouponRequest{
		CompanyID: &companyID,
	})

	require.NoError(t, err)
	v, ok := captured.Company.Value()
	require.True(t, ok)
	assert.Equal(t, companyID, v)
}

func TestCouponService_Update_LeaveCompanyScopeUntouched(t *testing.T) {
	var captured model.CouponUpdate
	repo := &mockCouponRepository{
		updateFn: func(ctx context.Context, id uuid.UUID, up model.CouponUpdate) error {
			captured = up
			return nil
		},
	}

	svc := NewCouponService(repo)
	err := svc.Update(context.Background(), uuid.New(), &model.UpdateCouponRequest{
		Description: strPtr("new text"),
	})

	require.NoError(t, err)
	assert.True(t, captured.Company.IsUnchanged())
	assert.True(t, captured.Banner.IsUnchanged())
	require.NotNil(t, captured.Description)
	assert.Equal(t, "new text", *captured.Description)
}

func TestCouponService_Update_DuplicateCodeExcludesSelf(t *testing.T) {
	id := uuid.New()
	repo := &mockCouponRepository{
		codeExistsFn: func(ctx context.Context, code string, exclude *uuid.UUID) (bool, error) {
			require.NotNil(t, exclude)
			assert.Equal(t, id, *exclude)
			return true, nil
		},
		updateFn: func(ctx context.Context, _ uuid.UUID, _ model.CouponUpdate) error {
			t.Fatal("update must not be called when the code is taken")
			return nil
		},
	}

	svc := NewCouponService(repo)
	err := svc.Update(context.Background(), id, &model.UpdateCouponRequest{
		Code: strPtr("SAVE10"),
	})

	assert.ErrorIs(t, err, ErrCodeTaken)
}

func TestCouponService_Update_NotFound(t *testing.T) {
	repo := &mockCouponRepository{
		updateFn: func(ctx context.Context, _ uuid.UUID, _ model.CouponUpdate) error {
			return ErrCouponNotFound
		},
	}

	svc := NewCouponService(repo)
	err := svc.Update(context.Background(), uuid.New(), &model.UpdateCouponRequest{
		Description: strPtr("x"),
	})

	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestCouponService_GetByID_NotFound(t *testing.T) {
	repo := &mockCouponRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Coupon, error) {
			return nil, nil
		},
	}

	svc := NewCouponService(repo)
	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrCouponNotFound)
}

func TestCouponService_GetByID_RepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")
	repo := &mockCouponRepository{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*model.Coupon, error) {
			return nil, repoErr
		},
	}

	svc := NewCouponService(repo)
	_, err := svc.GetByID(context.Background(), uuid.New())

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCouponNotFound)
}

func TestCouponService_CodeAvailable(t *testing.T) {
	repo := &mockCouponRepository{
		codeExistsFn: func(ctx context.Context, code string, exclude *uuid.UUID) (bool, error) {
			return code == "TAKEN", nil
		},
	}

	svc := NewCouponService(repo)

	available, err := svc.CodeAvailable(context.Background(), "TAKEN", nil)
	require.NoError(t, err)
	assert.False(t, available)

	available, err = svc.CodeAvailable(context.Background(), "FREE", nil)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestCouponService_Delete_NotFound(t *testing.T) {
	repo := &mockCouponRepository{
		softDeleteFn: func(ctx context.Context, id uuid.UUID) error {
			return ErrCouponNotFound
		},
	}

	svc := NewCouponService(repo)
	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrCouponNotFound)
}
