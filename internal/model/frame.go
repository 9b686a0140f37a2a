package model

import "time"

// Channel is a sales surface: the physical shop or one marketplace.
type Channel string

const (
	ChannelInventory    Channel = "inventory"
	ChannelMercadoLivre Channel = "mercadolivre"
	ChannelShopee       Channel = "shopee"
	ChannelAmazon       Channel = "amazon"
)

// MarketplaceChannels lists every online sales surface.
var MarketplaceChannels = []Channel{ChannelMercadoLivre, ChannelShopee, ChannelAmazon}

func (c Channel) Valid() bool {
	switch c {
	case ChannelInventory, ChannelMercadoLivre, ChannelShopee, ChannelAmazon:
		return true
	}
	return false
}

func (c Channel) IsMarketplace() bool {
	return c.Valid() && c != ChannelInventory
}

// FrameStatus is the explicit lifecycle state of a record. A live record is
// available stock, an exhausted record is a listing whose quantity ran out,
// and a sold record is an immutable entry in the sales ledger.
type FrameStatus string

const (
	StatusLive      FrameStatus = "live"
	StatusExhausted FrameStatus = "exhausted"
	StatusSold      FrameStatus = "sold"
)

// IdentityKey identifies one physical product across channels. Records that
// share a key are siblings: the same frame stocked or listed in different
// places.
type IdentityKey struct {
	Brand     string
	ModelCode string
	ColorCode string
}

// Frame is the single stock-keeping entity. Live listings, exhausted
// sentinels and historical sale records all live in the same collection and
// are told apart by Status.
type Frame struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Brand     string    `db:"brand" json:"brand"`
	ModelCode string    `db:"model_code" json:"model_code"`
	ColorCode string    `db:"color_code" json:"color_code"`
	Size      string    `db:"size" json:"size"`
	EAN       string    `db:"ean" json:"ean"`
	Gender    string    `db:"gender" json:"gender"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`

	Channel  Channel     `db:"channel" json:"channel"`
	Status   FrameStatus `db:"status" json:"status"`
	Quantity int         `db:"quantity" json:"quantity"`

	// Sale ledger fields, meaningful only when Status is StatusSold.
	SoldChannel  Channel    `db:"sold_channel" json:"sold_channel,omitempty"`
	SoldQuantity int        `db:"sold_quantity" json:"sold_quantity,omitempty"`
	SoldAt       *time.Time `db:"sold_at" json:"sold_at,omitempty"`
	Buyer        BuyerInfo  `db:"buyer" json:"buyer"`

	HasChannelListing bool `db:"has_channel_listing" json:"has_channel_listing"`

	PurchasePrice float64 `db:"purchase_price" json:"purchase_price"`
	ChannelPrice  float64 `db:"channel_price" json:"channel_price"`

	// Physical characteristics, opaque to the ledger.
	LensWidth      int    `db:"lens_width" json:"lens_width"`
	LensHeight     int    `db:"lens_height" json:"lens_height"`
	TempleLength   int    `db:"temple_length" json:"temple_length"`
	BridgeSize     int    `db:"bridge_size" json:"bridge_size"`
	FrontColor     string `db:"front_color" json:"front_color"`
	FrontMaterial  string `db:"front_material" json:"front_material"`
	TempleMaterial string `db:"temple_material" json:"temple_material"`
	LensColor      string `db:"lens_color" json:"lens_color"`
	LensMaterial   string `db:"lens_material" json:"lens_material"`
	Polarized      bool   `db:"polarized" json:"polarized"`
}

func (f *Frame) Key() IdentityKey {
	return IdentityKey{Brand: f.Brand, ModelCode: f.ModelCode, ColorCode: f.ColorCode}
}

func (f *Frame) IsLive() bool {
	return f.Status == StatusLive
}

func (f *Frame) IsSold() bool {
	return f.Status == StatusSold
}

// IsSaleRecord reports whether the frame is a historical ledger entry, as
// opposed to an exhausted-stock sentinel.
func (f *Frame) IsSaleRecord() bool {
	return f.Status == StatusSold && f.SoldChannel != ""
}

// Unconsumed reports whether the frame is a live listing that never took
// part in a sale. Only unconsumed siblings are touched by the
// sibling-decrement and restore rules.
func (f *Frame) Unconsumed() bool {
	return f.Status != StatusSold && f.SoldChannel == ""
}
