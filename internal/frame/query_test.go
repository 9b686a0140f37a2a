package frame

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/optiregistry/framestock-service/internal/model"
)

func soldAt(t time.Time) *time.Time { return &t }

func testSet() []model.Frame {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	return []model.Frame{
		{ID: "inv-1", Name: "RB3025 G-15", Brand: "Ray-Ban", ModelCode: "RB3025", ColorCode: "G-15",
			EAN: "8053672000409", Channel: model.ChannelInventory, Status: model.StatusLive, Quantity: 5},
		{ID: "ml-1", Name: "RB3025 G-15", Brand: "Ray-Ban", ModelCode: "RB3025", ColorCode: "G-15",
			Channel: model.ChannelMercadoLivre, Status: model.StatusLive, Quantity: 1},
		{ID: "inv-2", Name: "OX8046 Satin", Brand: "Oakley", ModelCode: "OX8046", ColorCode: "01",
			Channel: model.ChannelInventory, Status: model.StatusExhausted, Quantity: 0},
		{ID: "sale-1", Name: "RB3025 G-15", Brand: "Ray-Ban", ModelCode: "RB3025", ColorCode: "G-15",
			Channel: model.ChannelInventory, Status: model.StatusSold, Quantity: 2,
			SoldChannel: model.ChannelInventory, SoldQuantity: 2, SoldAt: soldAt(now)},
		{ID: "sale-2", Name: "OX8046 Satin", Brand: "Oakley", ModelCode: "OX8046", ColorCode: "01",
			Channel: model.ChannelShopee, Status: model.StatusSold, Quantity: 1,
			SoldChannel: model.ChannelShopee, SoldQuantity: 1, SoldAt: soldAt(now)},
	}
}

func ids(frames []model.Frame) []string {
	out := make([]string, 0, len(frames))
	for _, f := range frames {
		out = append(out, f.ID)
	}
	return out
}

func TestFilterActive(t *testing.T) {
	set := testSet()

	assert.Equal(t, []string{"inv-1"}, ids(FilterActive(set, model.ChannelInventory, "")))
	assert.Equal(t, []string{"ml-1"}, ids(FilterActive(set, model.ChannelMercadoLivre, "")))
	assert.Empty(t, FilterActive(set, model.ChannelAmazon, ""))
}

func TestFilterActiveSearch(t *testing.T) {
	set := testSet()

	// Case-insensitive over name and brand, raw substring over EAN.
	assert.Equal(t, []string{"inv-1"}, ids(FilterActive(set, model.ChannelInventory, "ray-ban")))
	assert.Equal(t, []string{"inv-1"}, ids(FilterActive(set, model.ChannelInventory, "rb3025")))
	assert.Equal(t, []string{"inv-1"}, ids(FilterActive(set, model.ChannelInventory, "805367")))
	assert.Empty(t, FilterActive(set, model.ChannelInventory, "persol"))
}

func TestFilterSold(t *testing.T) {
	set := testSet()

	assert.ElementsMatch(t, []string{"sale-1", "sale-2"}, ids(FilterSold(set, "")))
	assert.Equal(t, []string{"sale-1"}, ids(FilterPhysicalSales(set, "")))
	assert.Equal(t, []string{"sale-2"}, ids(FilterOnlineSales(set, "")))
}

func TestFilterSoldExcludesExhaustedSentinels(t *testing.T) {
	set := testSet()
	// inv-2 is exhausted but was never sold; it must not show up in the
	// ledger views nor in active stock.
	for _, f := range FilterSold(set, "") {
		assert.NotEqual(t, "inv-2", f.ID)
	}
	for _, f := range FilterActive(set, model.ChannelInventory, "") {
		assert.NotEqual(t, "inv-2", f.ID)
	}
}

func TestAvailableQuantity(t *testing.T) {
	set := testSet()
	key := model.IdentityKey{Brand: "Ray-Ban", ModelCode: "RB3025", ColorCode: "G-15"}

	// Sale records and exhausted sentinels never count as available.
	assert.Equal(t, 5, AvailableQuantity(set, key, model.ChannelInventory))
	assert.Equal(t, 1, AvailableQuantity(set, key, model.ChannelMercadoLivre))

	other := model.IdentityKey{Brand: "Oakley", ModelCode: "OX8046", ColorCode: "01"}
	assert.Equal(t, 0, AvailableQuantity(set, other, model.ChannelInventory))
}
