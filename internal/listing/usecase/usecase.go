package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/optiregistry/framestock-service/internal/frame"
	"github.com/optiregistry/framestock-service/internal/listing"
	"github.com/optiregistry/framestock-service/internal/listing/dto"
	"github.com/optiregistry/framestock-service/internal/model"
	"github.com/optiregistry/framestock-service/internal/pkg/logger"
	"github.com/optiregistry/framestock-service/internal/pricing"
	"go.uber.org/zap"
)

// Cache invalidates read-side projections after a listing lands.
type Cache interface {
	DeletePattern(ctx context.Context, pattern string) error
}

type listingUseCase struct {
	repo   frame.Repository
	cache  Cache
	logger logger.Logger
	now    func() time.Time
}

func NewListingUseCase(repo frame.Repository, cache Cache, log logger.Logger) listing.UseCase {
	return &listingUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
		now:    time.Now,
	}
}

func (uc *listingUseCase) CloneToChannel(ctx context.Context, input *dto.CloneInput) (*model.Frame, error) {
	if !input.Channel.IsMarketplace() {
		return nil, listing.ErrInvalidChannel
	}

	source, price, err := uc.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	clone := cloneFrame(*source, input.Channel, price, uc.now())
	if err := uc.repo.Insert(ctx, &clone); err != nil {
		return nil, err
	}
	if err := uc.markListed(ctx, source); err != nil {
		return nil, err
	}
	go uc.invalidateCache(context.Background())

	uc.logger.Info("frame listed",
		zap.String("source_id", source.ID),
		zap.String("listing_id", clone.ID),
		zap.String("channel", string(input.Channel)),
		zap.Float64("price", price))
	return &clone, nil
}

func (uc *listingUseCase) CloneToAllChannels(ctx context.Context, input *dto.CloneInput) ([]model.Frame, error) {
	source, price, err := uc.prepare(ctx, input)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	clones := make([]model.Frame, 0, len(model.MarketplaceChannels))
	for _, channel := range model.MarketplaceChannels {
		clones = append(clones, cloneFrame(*source, channel, price, now))
	}
	if err := uc.repo.InsertBatch(ctx, clones); err != nil {
		return nil, err
	}
	if err := uc.markListed(ctx, source); err != nil {
		return nil, err
	}
	go uc.invalidateCache(context.Background())

	uc.logger.Info("frame listed on all marketplaces",
		zap.String("source_id", source.ID),
		zap.Float64("price", price))
	return clones, nil
}

func (uc *listingUseCase) prepare(ctx context.Context, input *dto.CloneInput) (*model.Frame, float64, error) {
	source, err := uc.repo.GetByID(ctx, input.FrameID)
	if err != nil {
		return nil, 0, err
	}
	if source == nil {
		return nil, 0, listing.ErrFrameNotFound
	}
	if !source.IsLive() {
		return nil, 0, listing.ErrNotListable
	}

	markup := input.Markup
	if markup <= 0 {
		markup = pricing.DefaultMarkup
	}
	feePercent := input.FeePercent
	if feePercent <= 0 {
		feePercent = pricing.DefaultFeePercent
	}
	shipping := input.Shipping
	if shipping <= 0 {
		shipping = pricing.DefaultShipping
	}

	price := pricing.ChannelPrice(source.PurchasePrice, markup, feePercent, shipping)
	return source, price, nil
}

func (uc *listingUseCase) markListed(ctx context.Context, source *model.Frame) error {
	source.HasChannelListing = true
	return uc.repo.Update(ctx, source)
}

func (uc *listingUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, "frames:*"); err != nil {
		uc.logger.Warn("frame cache invalidation failed", zap.Error(err))
	}
}

// cloneFrame derives an independent listing record. A fresh listing always
// starts at a nominal quantity of one; channels are listings, not stock
// pools, until a sale happens.
func cloneFrame(source model.Frame, channel model.Channel, price float64, at time.Time) model.Frame {
	clone := source
	clone.ID = uuid.New().String()
	clone.Channel = channel
	clone.Status = model.StatusLive
	clone.Quantity = 1
	clone.ChannelPrice = price
	clone.HasChannelListing = true
	clone.CreatedAt = at
	clone.SoldChannel = ""
	clone.SoldQuantity = 0
	clone.SoldAt = nil
	clone.Buyer = model.BuyerInfo{}
	return clone
}
