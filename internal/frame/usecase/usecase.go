package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/optiregistry/framestock-service/internal/frame"
	"github.com/optiregistry/framestock-service/internal/frame/dto"
	"github.com/optiregistry/framestock-service/internal/model"
	"github.com/optiregistry/framestock-service/internal/pkg/logger"
	"go.uber.org/zap"
)

const (
	cacheKeyAll  = "frames:all"
	cachePattern = "frames:*"
	cacheListTTL = 2 * time.Minute
)

type frameUseCase struct {
	repo   frame.Repository
	cache  frame.Cache
	logger logger.Logger
	now    func() time.Time
}

func NewFrameUseCase(repo frame.Repository, cache frame.Cache, log logger.Logger) frame.UseCase {
	return &frameUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
		now:    time.Now,
	}
}

func (uc *frameUseCase) Intake(ctx context.Context, input *dto.IntakeFrameInput) (*model.Frame, error) {
	f := buildFrame(input, uc.now())
	if !f.Channel.Valid() {
		return nil, frame.ErrInvalidChannel
	}

	if err := uc.repo.Insert(ctx, &f); err != nil {
		return nil, err
	}
	go uc.invalidateCache(context.Background())

	uc.logger.Info("frame intake",
		zap.String("frame_id", f.ID),
		zap.String("brand", f.Brand),
		zap.String("model_code", f.ModelCode),
		zap.Int("quantity", f.Quantity))
	return &f, nil
}

func (uc *frameUseCase) BulkIntake(ctx context.Context, inputs []dto.IntakeFrameInput) ([]model.Frame, error) {
	if len(inputs) == 0 {
		return []model.Frame{}, nil
	}
	now := uc.now()
	frames := make([]model.Frame, 0, len(inputs))
	for i := range inputs {
		f := buildFrame(&inputs[i], now)
		if !f.Channel.Valid() {
			return nil, frame.ErrInvalidChannel
		}
		frames = append(frames, f)
	}

	if err := uc.repo.InsertBatch(ctx, frames); err != nil {
		return nil, err
	}
	go uc.invalidateCache(context.Background())

	uc.logger.Info("bulk frame intake", zap.Int("count", len(frames)))
	return frames, nil
}

// Update edits one record and propagates the shared product fields to every
// sibling of the record's original identity key. Channel, listing price,
// status and the listing flag stay local to the edited record.
func (uc *frameUseCase) Update(ctx context.Context, input *dto.UpdateFrameInput) (*model.Frame, error) {
	frames, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	var target *model.Frame
	for i := range frames {
		if frames[i].ID == input.ID {
			target = &frames[i]
			break
		}
	}
	if target == nil {
		return nil, frame.ErrFrameNotFound
	}
	if target.IsSold() {
		return nil, frame.ErrSaleRecordImmutable
	}
	origKey := target.Key()

	applyEdit(target, input)
	target.ChannelPrice = input.ChannelPrice

	for i := range frames {
		f := &frames[i]
		if f.ID == input.ID || f.Key() != origKey || f.IsSold() {
			continue
		}
		applyEdit(f, input)
	}

	if err := uc.repo.ReplaceAll(ctx, frames); err != nil {
		return nil, err
	}
	go uc.invalidateCache(context.Background())

	updated := *target
	return &updated, nil
}

func (uc *frameUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	go uc.invalidateCache(context.Background())
	return nil
}

func (uc *frameUseCase) ClearChannel(ctx context.Context, channel model.Channel) error {
	if !channel.Valid() {
		return frame.ErrInvalidChannel
	}
	if err := uc.repo.DeleteByChannel(ctx, channel); err != nil {
		return err
	}
	go uc.invalidateCache(context.Background())

	uc.logger.Info("channel cleared", zap.String("channel", string(channel)))
	return nil
}

func (uc *frameUseCase) ClearSold(ctx context.Context) error {
	if err := uc.repo.DeleteSold(ctx); err != nil {
		return err
	}
	go uc.invalidateCache(context.Background())

	uc.logger.Info("sales history cleared")
	return nil
}

func (uc *frameUseCase) GetByID(ctx context.Context, id string) (*model.Frame, error) {
	f, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, frame.ErrFrameNotFound
	}
	return f, nil
}

func (uc *frameUseCase) ActiveStock(ctx context.Context, channel model.Channel, search string) ([]model.Frame, error) {
	if !channel.Valid() {
		return nil, frame.ErrInvalidChannel
	}
	frames, err := uc.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return frame.FilterActive(frames, channel, search), nil
}

func (uc *frameUseCase) SoldHistory(ctx context.Context, search string) ([]model.Frame, error) {
	frames, err := uc.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return frame.FilterSold(frames, search), nil
}

func (uc *frameUseCase) PhysicalSales(ctx context.Context, search string) ([]model.Frame, error) {
	frames, err := uc.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return frame.FilterPhysicalSales(frames, search), nil
}

func (uc *frameUseCase) OnlineSales(ctx context.Context, search string) ([]model.Frame, error) {
	frames, err := uc.loadAll(ctx)
	if err != nil {
		return nil, err
	}
	return frame.FilterOnlineSales(frames, search), nil
}

// loadAll reads the record set through the cache when one is configured.
func (uc *frameUseCase) loadAll(ctx context.Context) ([]model.Frame, error) {
	if uc.cache != nil {
		var cached []model.Frame
		hit, err := uc.cache.GetJSON(ctx, cacheKeyAll, &cached)
		if err != nil {
			uc.logger.Warn("frame cache read failed", zap.Error(err))
		} else if hit {
			return cached, nil
		}
	}

	frames, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, cacheKeyAll, frames, cacheListTTL); err != nil {
			uc.logger.Warn("frame cache write failed", zap.Error(err))
		}
	}
	return frames, nil
}

func (uc *frameUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, cachePattern); err != nil {
		uc.logger.Warn("frame cache invalidation failed", zap.Error(err))
	}
}

func buildFrame(input *dto.IntakeFrameInput, now time.Time) model.Frame {
	channel := input.Channel
	if channel == "" {
		channel = model.ChannelInventory
	}
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return model.Frame{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Brand:          input.Brand,
		ModelCode:      input.ModelCode,
		ColorCode:      input.ColorCode,
		Size:           input.Size,
		EAN:            input.EAN,
		Gender:         input.Gender,
		CreatedAt:      now,
		Channel:        channel,
		Status:         model.StatusLive,
		Quantity:       quantity,
		PurchasePrice:  input.PurchasePrice,
		ChannelPrice:   input.ChannelPrice,
		LensWidth:      input.LensWidth,
		LensHeight:     input.LensHeight,
		TempleLength:   input.TempleLength,
		BridgeSize:     input.BridgeSize,
		FrontColor:     input.FrontColor,
		FrontMaterial:  input.FrontMaterial,
		TempleMaterial: input.TempleMaterial,
		LensColor:      input.LensColor,
		LensMaterial:   input.LensMaterial,
		Polarized:      input.Polarized,
	}
}

// applyEdit writes the propagated fields: identity, descriptive data,
// physical stock count and cost basis.
func applyEdit(f *model.Frame, input *dto.UpdateFrameInput) {
	f.Name = input.Name
	f.Brand = input.Brand
	f.ModelCode = input.ModelCode
	f.ColorCode = input.ColorCode
	f.Size = input.Size
	f.EAN = input.EAN
	f.Gender = input.Gender
	f.Quantity = input.Quantity
	f.PurchasePrice = input.PurchasePrice
	f.LensWidth = input.LensWidth
	f.LensHeight = input.LensHeight
	f.TempleLength = input.TempleLength
	f.BridgeSize = input.BridgeSize
	f.FrontColor = input.FrontColor
	f.FrontMaterial = input.FrontMaterial
	f.TempleMaterial = input.TempleMaterial
	f.LensColor = input.LensColor
	f.LensMaterial = input.LensMaterial
	f.Polarized = input.Polarized

	// Restocking an exhausted listing through an edit brings it back.
	if f.Status == model.StatusExhausted && input.Quantity > 0 {
		f.Status = model.StatusLive
	}
}
