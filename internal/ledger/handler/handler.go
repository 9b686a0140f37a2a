package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/optiregistry/framestock-service/internal/ledger"
	"github.com/optiregistry/framestock-service/internal/ledger/dto"
	"github.com/optiregistry/framestock-service/internal/pkg/logger"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type LedgerHandler struct {
	uc     ledger.UseCase
	logger logger.Logger
}

func NewLedgerHandler(uc ledger.UseCase, log logger.Logger) *LedgerHandler {
	return &LedgerHandler{uc: uc, logger: log}
}

func (h *LedgerHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/sales", h.Sell)
	api.Delete("/sales/:id", h.Restore)
}

// Sell handles POST /api/v1/sales. The response body is the sale record
// itself, ready for receipt generation.
func (h *LedgerHandler) Sell(c *fiber.Ctx) error {
	var req dto.SellInput
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_request", Message: "invalid request body",
		})
	}

	sale, err := h.uc.Sell(c.Context(), &req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// Restore handles DELETE /api/v1/sales/:id. Restoring an id that is already
// gone succeeds; the ledger treats it as a no-op.
func (h *LedgerHandler) Restore(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Context(), c.Params("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *LedgerHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrFrameNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "not_found", Message: err.Error(),
		})
	case errors.Is(err, ledger.ErrInvalidQuantity),
		errors.Is(err, ledger.ErrInvalidChannel),
		errors.Is(err, ledger.ErrFrameNotSellable):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_request", Message: err.Error(),
		})
	case errors.Is(err, ledger.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error: "insufficient_stock", Message: err.Error(),
		})
	case errors.Is(err, ledger.ErrDuplicateRequest):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error: "duplicate_request", Message: err.Error(),
		})
	case errors.Is(err, ledger.ErrLedgerBusy):
		return c.Status(fiber.StatusServiceUnavailable).JSON(ErrorResponse{
			Error: "ledger_busy", Message: err.Error(),
		})
	default:
		h.logger.Error("ledger request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_error", Message: "unexpected error",
		})
	}
}
