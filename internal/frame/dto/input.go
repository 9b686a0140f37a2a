package dto

import "github.com/optiregistry/framestock-service/internal/model"

// IntakeFrameInput creates a live inventory record. Import collaborators
// (spreadsheet, PDF, AI extraction) produce these; the ledger does not
// validate their provenance.
type IntakeFrameInput struct {
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	ModelCode string `json:"model_code"`
	ColorCode string `json:"color_code"`
	Size      string `json:"size"`
	EAN       string `json:"ean"`
	Gender    string `json:"gender"`

	// Quantity defaults to 1 when absent.
	Quantity int `json:"quantity"`

	Channel model.Channel `json:"channel"`

	PurchasePrice float64 `json:"purchase_price"`
	ChannelPrice  float64 `json:"channel_price"`

	LensWidth      int    `json:"lens_width"`
	LensHeight     int    `json:"lens_height"`
	TempleLength   int    `json:"temple_length"`
	BridgeSize     int    `json:"bridge_size"`
	FrontColor     string `json:"front_color"`
	FrontMaterial  string `json:"front_material"`
	TempleMaterial string `json:"temple_material"`
	LensColor      string `json:"lens_color"`
	LensMaterial   string `json:"lens_material"`
	Polarized      bool   `json:"polarized"`
}

// UpdateFrameInput edits one record. Identity and descriptive fields are
// propagated to every sibling; channel, price and lifecycle state stay local
// to the edited record.
type UpdateFrameInput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Brand     string `json:"brand"`
	ModelCode string `json:"model_code"`
	ColorCode string `json:"color_code"`
	Size      string `json:"size"`
	EAN       string `json:"ean"`
	Gender    string `json:"gender"`

	Quantity int `json:"quantity"`

	PurchasePrice float64 `json:"purchase_price"`
	ChannelPrice  float64 `json:"channel_price"`

	LensWidth      int    `json:"lens_width"`
	LensHeight     int    `json:"lens_height"`
	TempleLength   int    `json:"temple_length"`
	BridgeSize     int    `json:"bridge_size"`
	FrontColor     string `json:"front_color"`
	FrontMaterial  string `json:"front_material"`
	TempleMaterial string `json:"temple_material"`
	LensColor      string `json:"lens_color"`
	LensMaterial   string `json:"lens_material"`
	Polarized      bool   `json:"polarized"`
}
