package service

import "errors"

var (
	// ErrCodeTaken is returned when a coupon code collides, case-insensitively,
	// with another non-deleted coupon.
	ErrCodeTaken = errors.New("coupon code already taken")

	// ErrCouponNotFound is returned when a coupon id does not resolve to a
	// non-deleted coupon.
	ErrCouponNotFound = errors.New("coupon not found")

	// ErrInvalidCode is returned at redemption time when no non-deleted coupon
	// carries the exact code supplied.
	ErrInvalidCode = errors.New("invalid coupon code")

	// ErrAlreadyApplied is returned when a user attempts to apply a coupon
	// they have already redeemed.
	ErrAlreadyApplied = errors.New("coupon already applied by user")

	// ErrPageNotFound is returned when a page id does not resolve to a
	// non-deleted page.
	ErrPageNotFound = errors.New("page not found")

	// ErrMessageNotFound is returned when a message id does not resolve to a
	// non-deleted page message.
	ErrMessageNotFound = errors.New("page message not found")

	// ErrInvalidRequest is returned when request data reaching a service is
	// nil or incomplete.
	ErrInvalidRequest = errors.New("invalid request")
)
