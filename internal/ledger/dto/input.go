package dto

import "github.com/optiregistry/framestock-service/internal/model"

// SellInput records one sale of a listed frame.
type SellInput struct {
	// FrameID is the record being sold, from any channel tab.
	FrameID string `json:"frame_id"`
	// Channel is the surface the sale went through.
	Channel  model.Channel `json:"channel"`
	Quantity int           `json:"quantity"`
	// Buyer is optional contact data for the receipt.
	Buyer model.BuyerInfo `json:"buyer"`
	// RequestID deduplicates retried submissions when set.
	RequestID string `json:"request_id"`
}
