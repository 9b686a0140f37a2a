package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/optiregistry/framestock-service/internal/frame"
	"github.com/optiregistry/framestock-service/internal/frame/dto"
	"github.com/optiregistry/framestock-service/internal/model"
	"github.com/optiregistry/framestock-service/internal/pkg/logger"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type FrameHandler struct {
	uc     frame.UseCase
	logger logger.Logger
}

func NewFrameHandler(uc frame.UseCase, log logger.Logger) *FrameHandler {
	return &FrameHandler{uc: uc, logger: log}
}

func (h *FrameHandler) RegisterRoutes(api fiber.Router) {
	frames := api.Group("/frames")
	frames.Post("/", h.Intake)
	frames.Post("/bulk", h.BulkIntake)
	frames.Get("/", h.ActiveStock)
	frames.Get("/:id", h.GetByID)
	frames.Put("/:id", h.Update)
	frames.Delete("/:id", h.Delete)

	api.Delete("/channels/:channel/frames", h.ClearChannel)

	api.Get("/sales", h.SoldHistory)
	api.Delete("/sales", h.ClearSold)
}

// Intake handles POST /api/v1/frames
func (h *FrameHandler) Intake(c *fiber.Ctx) error {
	var req dto.IntakeFrameInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "invalid request body")
	}

	f, err := h.uc.Intake(c.Context(), &req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(f)
}

// BulkIntake handles POST /api/v1/frames/bulk, the import collaborator path.
func (h *FrameHandler) BulkIntake(c *fiber.Ctx) error {
	var req []dto.IntakeFrameInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "invalid request body")
	}

	frames, err := h.uc.BulkIntake(c.Context(), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(frames)
}

// ActiveStock handles GET /api/v1/frames?channel=&q=
func (h *FrameHandler) ActiveStock(c *fiber.Ctx) error {
	channel := model.Channel(c.Query("channel", string(model.ChannelInventory)))

	frames, err := h.uc.ActiveStock(c.Context(), channel, c.Query("q"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(frames)
}

// GetByID handles GET /api/v1/frames/:id
func (h *FrameHandler) GetByID(c *fiber.Ctx) error {
	f, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(f)
}

// Update handles PUT /api/v1/frames/:id
func (h *FrameHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateFrameInput
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid_request", "invalid request body")
	}
	req.ID = c.Params("id")

	f, err := h.uc.Update(c.Context(), &req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(f)
}

// Delete handles DELETE /api/v1/frames/:id
func (h *FrameHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ClearChannel handles DELETE /api/v1/channels/:channel/frames
func (h *FrameHandler) ClearChannel(c *fiber.Ctx) error {
	if err := h.uc.ClearChannel(c.Context(), model.Channel(c.Params("channel"))); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// SoldHistory handles GET /api/v1/sales?scope=all|physical|online&q=
func (h *FrameHandler) SoldHistory(c *fiber.Ctx) error {
	search := c.Query("q")

	var (
		frames []model.Frame
		err    error
	)
	switch c.Query("scope", "all") {
	case "all":
		frames, err = h.uc.SoldHistory(c.Context(), search)
	case "physical":
		frames, err = h.uc.PhysicalSales(c.Context(), search)
	case "online":
		frames, err = h.uc.OnlineSales(c.Context(), search)
	default:
		return badRequest(c, "invalid_scope", "scope must be all, physical or online")
	}
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(frames)
}

// ClearSold handles DELETE /api/v1/sales
func (h *FrameHandler) ClearSold(c *fiber.Ctx) error {
	if err := h.uc.ClearSold(c.Context()); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *FrameHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, frame.ErrFrameNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "not_found", Message: err.Error(),
		})
	case errors.Is(err, frame.ErrInvalidChannel):
		return badRequest(c, "invalid_channel", err.Error())
	case errors.Is(err, frame.ErrSaleRecordImmutable):
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error: "sale_record_immutable", Message: err.Error(),
		})
	default:
		h.logger.Error("frame request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_error", Message: "unexpected error",
		})
	}
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: code, Message: msg})
}
