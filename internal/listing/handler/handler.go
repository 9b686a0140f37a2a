package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/optiregistry/framestock-service/internal/listing"
	"github.com/optiregistry/framestock-service/internal/listing/dto"
	"github.com/optiregistry/framestock-service/internal/model"
	"github.com/optiregistry/framestock-service/internal/pkg/logger"
	"github.com/optiregistry/framestock-service/internal/pricing"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// CloneRequest accepts a marketplace channel or "all".
type CloneRequest struct {
	FrameID    string  `json:"frame_id"`
	Channel    string  `json:"channel"`
	Markup     float64 `json:"markup"`
	FeePercent float64 `json:"fee_percent"`
	Shipping   float64 `json:"shipping"`
}

type QuoteResponse struct {
	Cost       float64 `json:"cost"`
	Markup     float64 `json:"markup"`
	FeePercent float64 `json:"fee_percent"`
	Shipping   float64 `json:"shipping"`
	Price      float64 `json:"price"`
}

type ListingHandler struct {
	uc     listing.UseCase
	logger logger.Logger
}

func NewListingHandler(uc listing.UseCase, log logger.Logger) *ListingHandler {
	return &ListingHandler{uc: uc, logger: log}
}

func (h *ListingHandler) RegisterRoutes(api fiber.Router) {
	api.Post("/listings", h.Clone)
	api.Get("/pricing/quote", h.Quote)
}

// Clone handles POST /api/v1/listings
func (h *ListingHandler) Clone(c *fiber.Ctx) error {
	var req CloneRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_request", Message: "invalid request body",
		})
	}

	input := &dto.CloneInput{
		FrameID:    req.FrameID,
		Channel:    model.Channel(req.Channel),
		Markup:     req.Markup,
		FeePercent: req.FeePercent,
		Shipping:   req.Shipping,
	}

	if req.Channel == "all" {
		clones, err := h.uc.CloneToAllChannels(c.Context(), input)
		if err != nil {
			return h.mapError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(clones)
	}

	clone, err := h.uc.CloneToChannel(c.Context(), input)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(clone)
}

// Quote handles GET /api/v1/pricing/quote?cost=&markup=&fee=&shipping=
func (h *ListingHandler) Quote(c *fiber.Ctx) error {
	cost, err := strconv.ParseFloat(c.Query("cost", "0"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_request", Message: "cost must be a number",
		})
	}
	markup := queryFloat(c, "markup", pricing.DefaultMarkup)
	fee := queryFloat(c, "fee", pricing.DefaultFeePercent)
	shipping := queryFloat(c, "shipping", pricing.DefaultShipping)

	return c.JSON(QuoteResponse{
		Cost:       cost,
		Markup:     markup,
		FeePercent: fee,
		Shipping:   shipping,
		Price:      pricing.ChannelPrice(cost, markup, fee, shipping),
	})
}

func (h *ListingHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, listing.ErrFrameNotFound):
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "not_found", Message: err.Error(),
		})
	case errors.Is(err, listing.ErrInvalidChannel),
		errors.Is(err, listing.ErrNotListable):
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "invalid_request", Message: err.Error(),
		})
	default:
		h.logger.Error("listing request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "internal_error", Message: "unexpected error",
		})
	}
}

func queryFloat(c *fiber.Ctx, key string, fallback float64) float64 {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	return fallback
}
