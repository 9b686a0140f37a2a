package dto

import "github.com/optiregistry/framestock-service/internal/model"

// CloneInput lists a frame on a marketplace. Zero-valued pricing knobs fall
// back to the calculator defaults.
type CloneInput struct {
	FrameID string        `json:"frame_id"`
	Channel model.Channel `json:"channel"`

	Markup     float64 `json:"markup"`
	FeePercent float64 `json:"fee_percent"`
	Shipping   float64 `json:"shipping"`
}
