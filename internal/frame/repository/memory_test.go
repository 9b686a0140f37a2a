package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optiregistry/framestock-service/internal/model"
)

func stockFrame(id string, channel model.Channel, status model.FrameStatus) model.Frame {
	f := model.Frame{
		ID:        id,
		Name:      "RB3025 G-15",
		Brand:     "Ray-Ban",
		ModelCode: "RB3025",
		ColorCode: "G-15",
		Channel:   channel,
		Status:    status,
		Quantity:  2,
	}
	if status == model.StatusSold {
		f.SoldChannel = channel
		f.SoldQuantity = 1
	}
	return f
}

func TestMemoryInsertAndGet(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	f := stockFrame("a", model.ChannelInventory, model.StatusLive)
	require.NoError(t, repo.Insert(ctx, &f))

	got, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, f.Brand, got.Brand)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryReplaceAll(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	a := stockFrame("a", model.ChannelInventory, model.StatusLive)
	require.NoError(t, repo.Insert(ctx, &a))
	require.NoError(t, repo.ReplaceAll(ctx, []model.Frame{
		stockFrame("b", model.ChannelShopee, model.StatusLive),
		stockFrame("c", model.ChannelAmazon, model.StatusLive),
	}))

	frames, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, frames, 2)

	// The returned slice is a copy; callers cannot corrupt the store.
	frames[0].Quantity = 99
	again, _ := repo.LoadAll(ctx)
	assert.Equal(t, 2, again[0].Quantity)
}

func TestMemoryUpdate(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	f := stockFrame("a", model.ChannelInventory, model.StatusLive)
	require.NoError(t, repo.Insert(ctx, &f))

	f.Quantity = 7
	require.NoError(t, repo.Update(ctx, &f))

	got, _ := repo.GetByID(ctx, "a")
	assert.Equal(t, 7, got.Quantity)
}

func TestMemoryDelete(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	a := stockFrame("a", model.ChannelInventory, model.StatusLive)
	require.NoError(t, repo.Insert(ctx, &a))
	require.NoError(t, repo.Delete(ctx, "a"))

	got, _ := repo.GetByID(ctx, "a")
	assert.Nil(t, got)

	// Deleting an id that is already gone is a no-op.
	require.NoError(t, repo.Delete(ctx, "a"))
}

func TestMemoryDeleteByChannel(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.InsertBatch(ctx, []model.Frame{
		stockFrame("live-inv", model.ChannelInventory, model.StatusLive),
		stockFrame("sold-inv", model.ChannelInventory, model.StatusSold),
		stockFrame("live-ml", model.ChannelMercadoLivre, model.StatusLive),
	}))

	require.NoError(t, repo.DeleteByChannel(ctx, model.ChannelInventory))

	frames, _ := repo.LoadAll(ctx)
	require.Len(t, frames, 2)
	left := map[string]bool{}
	for _, f := range frames {
		left[f.ID] = true
	}
	assert.True(t, left["sold-inv"], "sold rows are not part of a channel wipe")
	assert.True(t, left["live-ml"])
}

func TestMemoryDeleteSold(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()

	require.NoError(t, repo.InsertBatch(ctx, []model.Frame{
		stockFrame("live", model.ChannelInventory, model.StatusLive),
		stockFrame("sold-a", model.ChannelInventory, model.StatusSold),
		stockFrame("sold-b", model.ChannelShopee, model.StatusSold),
	}))

	require.NoError(t, repo.DeleteSold(ctx))

	frames, _ := repo.LoadAll(ctx)
	require.Len(t, frames, 1)
	assert.Equal(t, "live", frames[0].ID)
}
