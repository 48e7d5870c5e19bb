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

// PageServiceInterface defines the interface for page/translation logic.
type PageServiceInterface interface {
	CreatePage(ctx context.Context, req *model.CreatePageRequest) (*model.Page, error)
	ListPages(ctx context.Context) ([]model.Page, error)
	ListMessages(ctx context.Context, pageID uuid.UUID) ([]model.PageMessage, error)
	UpsertMessage(ctx context.Context, pageID uuid.UUID, req *model.UpsertMessageRequest) (*model.PageMessage, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

// PageHandler handles the UI translation endpoints.
type PageHandler struct {
	service   PageServiceInterface
	validator *validator.Validate
}

// NewPageHandler creates a new PageHandler with the given service and validator.
func NewPageHandler(svc PageServiceInterface, v *validator.Validate) *PageHandler {
	return &PageHandler{service: svc, validator: v}
}

// CreatePage handles POST /admin/pages.
func (h *PageHandler) CreatePage(c *fiber.Ctx) error {
	var req model.CreatePageRequest
	if err := c.BodyParser(&req); err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return failed(c, fiber.StatusBadRequest, formatValidationError(err))
	}

	page, err := h.service.CreatePage(c.Context(), &req)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("failed to create page")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}
	return success(c, "page created", page)
}

// ListPages handles GET /admin/pages.
func (h *PageHandler) ListPages(c *fiber.Ctx) error {
	pages, err := h.service.ListPages(c.Context())
	if err != nil {
		log.Error().Err(err).Msg("failed to list pages")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}
	return success(c, "pages retrieved", pages)
}

// ListMessages handles GET /admin/pages/:id/messages.
func (h *PageHandler) ListMessages(c *fiber.Ctx) error {
	pageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid page id")
	}

	msgs, err := h.service.ListMessages(c.Context(), pageID)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			return failed(c, fiber.StatusBadRequest, "page not found")
		}
		log.Error().Err(err).Str("page_id", pageID.String()).Msg("failed to list messages")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}
	return success(c, "messages retrieved", msgs)
}

// UpsertMessage handles PUT /admin/pages/:id/messages.
func (h *PageHandler) UpsertMessage(c *fiber.Ctx) error {
	pageID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid page id")
	}

	var req model.UpsertMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(req); err != nil {
		return failed(c, fiber.StatusBadRequest, formatValidationError(err))
	}

	msg, err := h.service.UpsertMessage(c.Context(), pageID, &req)
	if err != nil {
		if errors.Is(err, service.ErrPageNotFound) {
			return failed(c, fiber.StatusBadRequest, "page not found")
		}
		log.Error().Err(err).Str("page_id", pageID.String()).Str("key", req.Key).Msg("failed to upsert message")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}
	return success(c, "message saved", msg)
}

// DeleteMessage handles DELETE /admin/messages/:id.
func (h *PageHandler) DeleteMessage(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return failed(c, fiber.StatusBadRequest, "invalid message id")
	}

	if err := h.service.DeleteMessage(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrMessageNotFound) {
			return failed(c, fiber.StatusBadRequest, "page message not found")
		}
		log.Error().Err(err).Str("message_id", id.String()).Msg("failed to delete message")
		return failed(c, fiber.StatusInternalServerError, "internal server error")
	}
	return success(c, "message deleted", nil)
}
