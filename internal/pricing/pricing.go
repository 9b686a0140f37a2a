// Package pricing computes the channel-facing sale price used when cloning
// an inventory frame into a marketplace listing.
package pricing

// Defaults mirror the pricing panel of the store application.
const (
	DefaultShipping   = 26.94
	DefaultFeePercent = 10.0
	DefaultMarkup     = 2.0
)

// MarkupOptions are the multipliers offered to the operator. The calculator
// itself accepts any non-negative multiplier.
var MarkupOptions = []float64{1.0, 1.5, 2.0, 2.5, 3.0, 3.5}

// ChannelPrice derives a listing price from the cost basis:
// base = cost * markup, fee = base * feePercent/100, price = base + fee + shipping.
// All inputs are assumed non-negative; out-of-range values are a caller concern.
func ChannelPrice(cost, markup, feePercent, shipping float64) float64 {
	base := cost * markup
	fee := base * feePercent / 100
	return base + fee + shipping
}

// DefaultQuote prices a frame with the default marketplace fee and shipping.
func DefaultQuote(cost, markup float64) float64 {
	return ChannelPrice(cost, markup, DefaultFeePercent, DefaultShipping)
}
