package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/veloxrent/rental-admin/pkg/patch"
)

// Coupon represents a discount code, optionally scoped to a single company.
// A nil CompanyID means the coupon is global and usable with any company.
type Coupon struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	DiscountRate float64    `json:"discount_rate"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	Description  string     `json:"description"`
	BannerRef    *string    `json:"banner_ref,omitempty"`
	IsDeleted    bool       `json:"-"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// CouponListItem is a Coupon joined with its company's display name for
// the admin listing screen.
type CouponListItem struct {
	Coupon
	CompanyName *string `json:"company_name,omitempty"`
}

// CouponPage is the result of a listing query: one page of rows plus the
// total number of rows matching the filter ignoring pagination.
type CouponPage struct {
	TotalCount int              `json:"total_count"`
	Coupons    []CouponListItem `json:"coupons"`
}

// CouponUpdate carries the field changes for a coupon update. Optional
// references use patch.Field so the caller can distinguish "clear",
// "set to value" and "leave as is".
type CouponUpdate struct {
	Code         *string
	DiscountRate *float64
	Description  *string
	Company      patch.Field[uuid.UUID]
	Banner       patch.Field[string]
}

// CreateCouponRequest is the DTO for creating a coupon.
type CreateCouponRequest struct {
	Code         string     `json:"code" validate:"required,notblank,max=64"`
	DiscountRate *float64   `json:"discount_rate" validate:"required,gte=0,lte=100"`
	Description  string     `json:"description" validate:"max=500"`
	CompanyID    *uuid.UUID `json:"company_id"`
	BannerRef    *string    `json:"banner_ref"`
}

// UpdateCouponRequest is the DTO for updating a coupon. ClearCompany and
// ClearBanner take precedence over the corresponding value fields; when
// neither the flag nor the value is supplied the field is left untouched.
type UpdateCouponRequest struct {
	Code         *string    `json:"code" validate:"omitempty,notblank,max=64"`
	DiscountRate *float64   `json:"discount_rate" validate:"omitempty,gte=0,lte=100"`
	Description  *string    `json:"description" validate:"omitempty,max=500"`
	CompanyID    *uuid.UUID `json:"company_id"`
	ClearCompany bool       `json:"clear_company"`
	BannerRef    *string    `json:"banner_ref"`
	ClearBanner  bool       `json:"clear_banner"`
}

// ApplyCouponRequest is the DTO for redeeming a coupon code.
type ApplyCouponRequest struct {
	UserID string `json:"user_id" validate:"required,notblank,max=255"`
	Code   string `json:"code" validate:"required,notblank,max=64"`
}

// ApplyCouponResponse is returned on a successful redemption.
type ApplyCouponResponse struct {
	DiscountRate float64 `json:"discount_rate"`
}

// ListColumn names one column of the admin listing grid.
type ListColumn struct {
	Name string `json:"name"`
}

// ListSort selects the grid column to order by, by index into Columns.
type ListSort struct {
	ColumnIndex int    `json:"column_index" validate:"gte=0"`
	Direction   string `json:"direction" validate:"omitempty,oneof=asc desc"`
}

// ListSearch carries the search term typed into the grid.
type ListSearch struct {
	Value string `json:"value"`
}

// ListCouponsRequest is the listing descriptor the admin console sends:
// pagination bounds, the visible columns, and optional sort/search.
type ListCouponsRequest struct {
	Offset  int          `json:"offset" validate:"gte=0"`
	Limit   int          `json:"limit" validate:"required,gte=1,lte=200"`
	Columns []ListColumn `json:"columns"`
	Sort    *ListSort    `json:"sort"`
	Search  *ListSearch  `json:"search"`
}

// CheckCodeRequest is the DTO for the standalone code-availability probe.
type CheckCodeRequest struct {
	Code      string     `json:"code" validate:"required,notblank,max=64"`
	ExcludeID *uuid.UUID `json:"exclude_id"`
}

// Redemption records a user having applied a specific coupon. At most one
// non-deleted redemption exists per (user, coupon) pair.
type Redemption struct {
	ID        uuid.UUID `json:"id"`
	CouponID  uuid.UUID `json:"coupon_id"`
	UserID    string    `json:"user_id"`
	Applied   bool      `json:"applied"`
	IsDeleted bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
