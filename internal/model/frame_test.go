package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelValid(t *testing.T) {
	assert.True(t, ChannelInventory.Valid())
	assert.True(t, ChannelMercadoLivre.Valid())
	assert.True(t, ChannelShopee.Valid())
	assert.True(t, ChannelAmazon.Valid())
	assert.False(t, Channel("ebay").Valid())
	assert.False(t, Channel("").Valid())
}

func TestChannelIsMarketplace(t *testing.T) {
	assert.False(t, ChannelInventory.IsMarketplace())
	assert.False(t, Channel("ebay").IsMarketplace())
	for _, c := range MarketplaceChannels {
		assert.True(t, c.IsMarketplace(), "%s", c)
	}
}

func TestFrameDiscriminants(t *testing.T) {
	live := Frame{Status: StatusLive}
	assert.True(t, live.IsLive())
	assert.True(t, live.Unconsumed())
	assert.False(t, live.IsSaleRecord())

	sentinel := Frame{Status: StatusExhausted}
	assert.False(t, sentinel.IsLive())
	assert.True(t, sentinel.Unconsumed())
	assert.False(t, sentinel.IsSaleRecord())

	sale := Frame{Status: StatusSold, SoldChannel: ChannelShopee}
	assert.True(t, sale.IsSold())
	assert.False(t, sale.Unconsumed())
	assert.True(t, sale.IsSaleRecord())
}

func TestIdentityKeySiblings(t *testing.T) {
	a := Frame{Brand: "Ray-Ban", ModelCode: "RB3025", ColorCode: "G-15", Channel: ChannelInventory}
	b := Frame{Brand: "Ray-Ban", ModelCode: "RB3025", ColorCode: "G-15", Channel: ChannelShopee}
	c := Frame{Brand: "Ray-Ban", ModelCode: "RB3025", ColorCode: "001/58"}

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())
}

func TestBuyerInfoValue(t *testing.T) {
	v, err := BuyerInfo{}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = BuyerInfo{Name: "Ana", City: "Curitiba"}.Value()
	require.NoError(t, err)
	require.NotNil(t, v)

	var back BuyerInfo
	require.NoError(t, back.Scan(v))
	assert.Equal(t, "Ana", back.Name)
	assert.Equal(t, "Curitiba", back.City)
}

func TestBuyerInfoScanNull(t *testing.T) {
	b := BuyerInfo{Name: "stale"}
	require.NoError(t, b.Scan(nil))
	assert.True(t, b.IsZero())

	assert.Error(t, b.Scan(42))
}
