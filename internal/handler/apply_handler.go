package handler

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/veloxrent/rental-admin/internal/model"
	"github.com/veloxrent/rental-admin/internal/service"
)

// RedemptionServiceInterface defines the interface for redemption business logic.
type RedemptionServiceInterface interface {
	Apply(ctx context.Context, userID, code string) (float64, error)
}

// CouponBrowseInterface is the app-facing slice of coupon reads.
type CouponBrowseInterface interface {
	ListForCompany(ctx context.Context, companyID uuid.UUID) ([]model.Coupon, error)
}

// ApplyHandler handles the end-user app's coupon endpoints.
type ApplyHandler struct {
	redemptions RedemptionServiceInterface
	coupons     CouponBrowseInterface
	validator   *validator.Validate
}

// NewApplyHandler creates a new ApplyHandler with the given services and validator.
func NewApplyHandler(red RedemptionServiceInterface, coupons CouponBrowseInterface, v *validator.Validate) *ApplyHandler {
	return &ApplyHandler{redemptions: red, coupons: coupons, validator: v}
}

// ApplyCoupon handles POST /app/coupons/apply.
func (h *ApplyHandler) ApplyCoupon(c *fiber.Ctx) error {
	var req model.ApplyCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return failed(c, fiber.StatusBadRequest, formatValidationError(err))
	}

	rate, err := h.redemptions.Apply(c.Context(), req.UserID, req.Code)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCode) {
			return failed(c, fiber.StatusBadRequest, "invalid coupon code")
		}
		if errors.Is(err, service.ErrAlreadyApplied) {
			return failed(c, fiber.StatusBadRequest, "coupon already applied")
		}
		log.Error().
			Err(err).
			Str("request_id", c.GetRespHeader("X-Request-ID")).
			Str("user_id", req.UserID).
			Str("code", req.Code).
			Msg("failed to apply coupon")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}

	log.Info().
		Str("request_id", c.GetRespHeader("X-Request-ID")).
		Str("user_id", req.UserID).
		Str("code", req.Code).
		Float64("discount_rate", rate).
		Msg("coupon applied")

	return success(c, "coupon applied", model.ApplyCouponResponse{DiscountRate: rate})
}

// ListCompanyCoupons handles GET /app/companies/:id/coupons: the global
// coupons plus those scoped to the company.
func (h *ApplyHandler) ListCompanyCoupons(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid company id")
	}

	coupons, err := h.coupons.ListForCompany(c.Context(), companyID)
	if err != nil {
		log.Error().Err(err).Str("company_id", companyID.String()).Msg("failed to list company coupons")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}

	return success(c, "coupons retrieved", coupons)
}
