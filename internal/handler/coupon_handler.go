package handler

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/veloxrent/rental-admin/internal/listing"
	"github.com/veloxrent/rental-admin/internal/model"
	"github.com/veloxrent/rental-admin/internal/service"
)

// CouponServiceInterface defines the interface for coupon business logic.
type CouponServiceInterface interface {
	Create(ctx context.Context, req *model.CreateCouponRequest) (*model.Coupon, error)
	Update(ctx context.Context, id uuid.UUID, req *model.UpdateCouponRequest) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Coupon, error)
	List(ctx context.Context, req listing.Request) (*model.CouponPage, error)
	CodeAvailable(ctx context.Context, code string, exclude *uuid.UUID) (bool, error)
}

// CouponHandler handles the admin console's coupon endpoints.
type CouponHandler struct {
	service   CouponServiceInterface
	validator *validator.Validate
}

// NewCouponHandler creates a new CouponHandler with the given service and validator.
func NewCouponHandler(svc CouponServiceInterface, v *validator.Validate) *CouponHandler {
	return &CouponHandler{service: svc, validator: v}
}

// CreateCoupon handles POST /admin/coupons.
func (h *CouponHandler) CreateCoupon(c *fiber.Ctx) error {
	var req model.CreateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return failed(c, fiber.StatusBadRequest, formatValidationError(err))
	}

	coupon, err := h.service.Create(c.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCodeTaken) {
			return failed(c, fiber.StatusBadRequest, "coupon code already taken")
		}
		if errors.Is(err, service.ErrInvalidRequest) {
			return failed(c, fiber.StatusBadRequest, "invalid request")
		}
		log.Error().Err(err).Str("code", req.Code).Msg("failed to create coupon")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}

	return success(c, "coupon created", coupon)
}

// UpdateCoupon handles PUT /admin/coupons/:id.
func (h *CouponHandler) UpdateCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid coupon id")
	}

	var req model.UpdateCouponRequest
	if err := c.BodyParser(&req); err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return failed(c, fiber.StatusBadRequest, formatValidationError(err))
	}

	if err := h.service.Update(c.Context(), id, &req); err != nil {
		switch {
		case errors.Is(err, service.ErrCodeTaken):
			return failed(c, fiber.StatusBadRequest, "coupon code already taken")
		case errors.Is(err, service.ErrCouponNotFound):
			return failed(c, fiber.StatusBadRequest, "coupon not found")
		case errors.Is(err, service.ErrInvalidRequest):
			return failed(c, fiber.StatusBadRequest, "invalid request")
		}
		log.Error().Err(err).Str("coupon_id", id.String()).Msg("failed to update coupon")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}

	return success(c, "coupon updated", nil)
}

// DeleteCoupon handles DELETE /admin/coupons/:id (soft delete).
func (h *CouponHandler) DeleteCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid coupon id")
	}

	if err := h.service.Delete(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			return failed(c, fiber.StatusBadRequest, "coupon not found")
		}
		log.Error().Err(err).Str("coupon_id", id.String()).Msg("failed to delete coupon")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}

	return success(c, "coupon deleted", nil)
}

// GetCoupon handles GET /admin/coupons/:id.
func (h *CouponHandler) GetCoupon(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid coupon id")
	}

	coupon, err := h.service.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCouponNotFound) {
			return failed(c, fiber.StatusBadRequest, "coupon not found")
		}
		log.Error().Err(err).Str("coupon_id", id.String()).Msg("failed to get coupon")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}

	return success(c, "coupon retrieved", coupon)
}

// ListCoupons handles POST /admin/coupons/list. The body is the grid's
// listing descriptor; column names are resolved server-side against a
// whitelist, so arbitrary names are ignored rather than queried.
func (h *CouponHandler) ListCoupons(c *fiber.Ctx) error {
	var req model.ListCouponsRequest
	if err := c.BodyParser(&req); err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return failed(c, fiber.StatusBadRequest, formatValidationError(err))
	}

	page, err := h.service.List(c.Context(), toListingRequest(req))
	if err != nil {
		log.Error().Err(err).Msg("failed to list coupons")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}

	return success(c, "coupons retrieved", page)
}

// CheckCode handles POST /admin/coupons/check-code, the live-validation probe.
func (h *CouponHandler) CheckCode(c *fiber.Ctx) error {
	var req model.CheckCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return failed(c, fiber.StatusBadRequest, formatValidationError(err))
	}

	available, err := h.service.CodeAvailable(c.Context(), req.Code, req.ExcludeID)
	if err != nil {
		log.Error().Err(err).Str("code", req.Code).Msg("failed to check coupon code")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}

	return success(c, "code checked", fiber.Map{"available": available})
}

// toListingRequest resolves the wire descriptor into the listing request:
// the sort column index is dereferenced into a column name and the search
// scope becomes a plain name list.
func toListingRequest(req model.ListCouponsRequest) listing.Request {
	out := listing.Request{
		Offset: req.Offset,
		Limit:  req.Limit,
	}
	names := make([]string, 0, len(req.Columns))
	for _, col := range req.Columns {
		names = append(names, col.Name)
	}
	out.Columns = names

	if req.Sort != nil && req.Sort.ColumnIndex < len(req.Columns) {
		out.Sort = &listing.Sort{
			Column: req.Columns[req.Sort.ColumnIndex].Name,
			Desc:   req.Sort.Direction == "desc",
		}
	}
	if req.Search != nil {
		out.Search = req.Search.Value
	}
	return out
}
