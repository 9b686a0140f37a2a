package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiregistry/framestock-service/internal/frame/repository"
	"github.com/optiregistry/framestock-service/internal/listing"
	"github.com/optiregistry/framestock-service/internal/listing/dto"
	"github.com/optiregistry/framestock-service/internal/model"
	"github.com/optiregistry/framestock-service/internal/pkg/logger"
)

var fixedNow = time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, seed ...model.Frame) (*listingUseCase, *repository.MemoryRepository) {
	t.Helper()
	repo := repository.NewMemoryRepository()
	require.NoError(t, repo.ReplaceAll(context.Background(), seed))
	uc := &listingUseCase{
		repo:   repo,
		logger: logger.NewNop(),
		now:    func() time.Time { return fixedNow },
	}
	return uc, repo
}

func inventoryFrame(quantity int, cost float64) model.Frame {
	return model.Frame{
		ID:            uuid.New().String(),
		Name:          "OX8046 Satin Black",
		Brand:         "Oakley",
		ModelCode:     "OX8046",
		ColorCode:     "8046-01",
		Channel:       model.ChannelInventory,
		Status:        model.StatusLive,
		Quantity:      quantity,
		PurchasePrice: cost,
		CreatedAt:     fixedNow.Add(-48 * time.Hour),
	}
}

func TestCloneToChannel(t *testing.T) {
	source := inventoryFrame(4, 100)
	uc, repo := newTestUseCase(t, source)

	clone, err := uc.CloneToChannel(context.Background(), &dto.CloneInput{
		FrameID: source.ID,
		Channel: model.ChannelMercadoLivre,
		Markup:  2.0,
	})
	require.NoError(t, err)
	require.NotNil(t, clone)

	assert.NotEqual(t, source.ID, clone.ID)
	assert.Equal(t, model.ChannelMercadoLivre, clone.Channel)
	assert.Equal(t, model.StatusLive, clone.Status)
	// A listing starts at one unit regardless of physical stock.
	assert.Equal(t, 1, clone.Quantity)
	// (100 * 2) + (200 * 0.10) + 26.94
	assert.InDelta(t, 246.94, clone.ChannelPrice, 1e-9)
	assert.True(t, clone.HasChannelListing)
	assert.Equal(t, fixedNow, clone.CreatedAt)

	// Only the listing flag changes on the source record.
	stored, err := repo.GetByID(context.Background(), source.ID)
	require.NoError(t, err)
	assert.True(t, stored.HasChannelListing)
	assert.Equal(t, 4, stored.Quantity)
	assert.Equal(t, model.ChannelInventory, stored.Channel)
}

func TestCloneIndependence(t *testing.T) {
	source := inventoryFrame(4, 100)
	uc, repo := newTestUseCase(t, source)

	a, err := uc.CloneToChannel(context.Background(), &dto.CloneInput{
		FrameID: source.ID, Channel: model.ChannelShopee,
	})
	require.NoError(t, err)
	b, err := uc.CloneToChannel(context.Background(), &dto.CloneInput{
		FrameID: source.ID, Channel: model.ChannelAmazon,
	})
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)

	// Mutating one listing leaves the other untouched.
	a.Quantity = 9
	require.NoError(t, repo.Update(context.Background(), a))

	gotB, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, gotB.Quantity)
}

func TestCloneToAllChannels(t *testing.T) {
	source := inventoryFrame(2, 50)
	uc, repo := newTestUseCase(t, source)

	clones, err := uc.CloneToAllChannels(context.Background(), &dto.CloneInput{
		FrameID:    source.ID,
		Markup:     3.0,
		FeePercent: 10,
		Shipping:   26.94,
	})
	require.NoError(t, err)
	require.Len(t, clones, len(model.MarketplaceChannels))

	seen := map[model.Channel]bool{}
	for _, clone := range clones {
		seen[clone.Channel] = true
		// (50 * 3) + (150 * 0.10) + 26.94
		assert.InDelta(t, 191.94, clone.ChannelPrice, 1e-9)
		assert.Equal(t, 1, clone.Quantity)
	}
	for _, channel := range model.MarketplaceChannels {
		assert.True(t, seen[channel], "missing clone for %s", channel)
	}

	frames, _ := repo.LoadAll(context.Background())
	assert.Len(t, frames, 1+len(model.MarketplaceChannels))
}

func TestCloneRejectsInventoryTarget(t *testing.T) {
	source := inventoryFrame(1, 100)
	uc, _ := newTestUseCase(t, source)

	_, err := uc.CloneToChannel(context.Background(), &dto.CloneInput{
		FrameID: source.ID,
		Channel: model.ChannelInventory,
	})
	assert.ErrorIs(t, err, listing.ErrInvalidChannel)
}

func TestCloneUnknownSource(t *testing.T) {
	uc, repo := newTestUseCase(t)

	_, err := uc.CloneToChannel(context.Background(), &dto.CloneInput{
		FrameID: "missing",
		Channel: model.ChannelShopee,
	})
	assert.ErrorIs(t, err, listing.ErrFrameNotFound)

	frames, _ := repo.LoadAll(context.Background())
	assert.Empty(t, frames)
}

func TestCloneRejectsNonLiveSource(t *testing.T) {
	sold := inventoryFrame(1, 100)
	sold.Status = model.StatusSold
	sold.SoldChannel = model.ChannelInventory
	uc, _ := newTestUseCase(t, sold)

	_, err := uc.CloneToChannel(context.Background(), &dto.CloneInput{
		FrameID: sold.ID,
		Channel: model.ChannelShopee,
	})
	assert.ErrorIs(t, err, listing.ErrNotListable)
}

func TestCloneDefaultsPricingKnobs(t *testing.T) {
	source := inventoryFrame(1, 100)
	uc, _ := newTestUseCase(t, source)

	clone, err := uc.CloneToChannel(context.Background(), &dto.CloneInput{
		FrameID: source.ID,
		Channel: model.ChannelMercadoLivre,
	})
	require.NoError(t, err)
	// Defaults: markup 2.0, fee 10%, shipping 26.94.
	assert.InDelta(t, 246.94, clone.ChannelPrice, 1e-9)
}
