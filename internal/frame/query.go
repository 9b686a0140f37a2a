package frame

import (
	"strings"

	"github.com/optiregistry/framestock-service/internal/model"
)

// Pure read projections over the full record set. No mutation; safe to call
// repeatedly and concurrently.

// FilterActive returns the live listings of one channel matching the search
// term. Exhausted sentinels and sale records never appear.
func FilterActive(frames []model.Frame, channel model.Channel, search string) []model.Frame {
	out := make([]model.Frame, 0)
	for _, f := range frames {
		if f.Channel == channel && f.IsLive() && matchesSearch(&f, search) {
			out = append(out, f)
		}
	}
	return out
}

// FilterSold returns sale ledger records regardless of the channel they were
// listed on. Exhausted sentinels carry no sold channel and are excluded.
func FilterSold(frames []model.Frame, search string) []model.Frame {
	out := make([]model.Frame, 0)
	for _, f := range frames {
		if f.IsSaleRecord() && matchesSearch(&f, search) {
			out = append(out, f)
		}
	}
	return out
}

// FilterPhysicalSales returns sales closed at the shop counter.
func FilterPhysicalSales(frames []model.Frame, search string) []model.Frame {
	out := make([]model.Frame, 0)
	for _, f := range FilterSold(frames, search) {
		if f.SoldChannel == model.ChannelInventory {
			out = append(out, f)
		}
	}
	return out
}

// FilterOnlineSales returns sales closed through any marketplace.
func FilterOnlineSales(frames []model.Frame, search string) []model.Frame {
	out := make([]model.Frame, 0)
	for _, f := range FilterSold(frames, search) {
		if f.SoldChannel.IsMarketplace() {
			out = append(out, f)
		}
	}
	return out
}

// AvailableQuantity sums live stock for an identity key within one channel.
func AvailableQuantity(frames []model.Frame, key model.IdentityKey, channel model.Channel) int {
	total := 0
	for _, f := range frames {
		if f.Key() == key && f.Channel == channel && f.IsLive() {
			total += f.Quantity
		}
	}
	return total
}

func matchesSearch(f *model.Frame, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(f.Name), lower) ||
		strings.Contains(strings.ToLower(f.Brand), lower) ||
		strings.Contains(f.EAN, term)
}
