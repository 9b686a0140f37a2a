package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/optiregistry/framestock-service/internal/frame"
	"github.com/optiregistry/framestock-service/internal/ledger"
	"github.com/optiregistry/framestock-service/internal/ledger/dto"
	"github.com/optiregistry/framestock-service/internal/model"
	"github.com/optiregistry/framestock-service/internal/pkg/logger"
	"go.uber.org/zap"
)

const (
	framesLockKey   = "lock:frames"
	lockTTL         = 5 * time.Second
	lockRetries     = 3
	lockRetryDelay  = 100 * time.Millisecond
	idempotencyTTL  = 24 * time.Hour
	cacheInvalidate = "frames:*"
)

type ledgerUseCase struct {
	repo   frame.Repository
	cache  ledger.Cache
	logger logger.Logger
	now    func() time.Time
}

func NewLedgerUseCase(repo frame.Repository, cache ledger.Cache, log logger.Logger) ledger.UseCase {
	return &ledgerUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
		now:    time.Now,
	}
}

func (uc *ledgerUseCase) Sell(ctx context.Context, input *dto.SellInput) (*model.Frame, error) {
	if input.Quantity < 1 {
		return nil, ledger.ErrInvalidQuantity
	}
	if !input.Channel.Valid() {
		return nil, ledger.ErrInvalidChannel
	}

	if uc.cache != nil && input.RequestID != "" {
		ok, err := uc.cache.SetIdempotency(ctx, "sale:req:"+input.RequestID, idempotencyTTL)
		if err != nil {
			uc.logger.Warn("idempotency check failed", zap.Error(err))
		} else if !ok {
			return nil, ledger.ErrDuplicateRequest
		}
	}

	unlock, err := uc.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	frames, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	target := findByID(frames, input.FrameID)
	if target == nil {
		return nil, ledger.ErrFrameNotFound
	}
	if target.IsSold() {
		return nil, ledger.ErrFrameNotSellable
	}
	if input.Quantity > target.Quantity {
		return nil, ledger.ErrInsufficientStock
	}

	updated, sale := applySale(frames, *target, input.Quantity, input.Channel, input.Buyer, uc.now())

	if err := uc.repo.ReplaceAll(ctx, updated); err != nil {
		return nil, err
	}
	go uc.invalidateCache(context.Background())

	uc.logger.Info("sale recorded",
		zap.String("sale_id", sale.ID),
		zap.String("frame_id", input.FrameID),
		zap.String("channel", string(input.Channel)),
		zap.Int("quantity", input.Quantity))
	return &sale, nil
}

func (uc *ledgerUseCase) Restore(ctx context.Context, saleID string) error {
	unlock, err := uc.lock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	frames, err := uc.repo.LoadAll(ctx)
	if err != nil {
		return err
	}

	target := findByID(frames, saleID)
	if target == nil {
		// Already restored or deleted; the caller re-renders from current
		// state either way.
		uc.logger.Debug("restore skipped, record not found", zap.String("sale_id", saleID))
		return nil
	}

	updated := applyRestore(frames, *target)

	if err := uc.repo.ReplaceAll(ctx, updated); err != nil {
		return err
	}
	go uc.invalidateCache(context.Background())

	uc.logger.Info("sale restored",
		zap.String("sale_id", saleID),
		zap.Int("quantity", target.SoldQuantity))
	return nil
}

// applySale is a pure transform over the full record set. It appends the
// historical sale record and decrements every unconsumed live record of the
// target's identity key, floored at zero. A record reaching zero becomes an
// exhausted sentinel and loses its channel-listing association so it drops
// out of available views.
func applySale(frames []model.Frame, target model.Frame, quantity int, channel model.Channel, buyer model.BuyerInfo, at time.Time) ([]model.Frame, model.Frame) {
	soldAt := at
	sale := target
	sale.ID = uuid.New().String()
	sale.Status = model.StatusSold
	sale.SoldChannel = channel
	sale.SoldQuantity = quantity
	sale.SoldAt = &soldAt
	sale.Quantity = quantity
	sale.Buyer = buyer

	key := target.Key()
	out := make([]model.Frame, 0, len(frames)+1)
	for _, f := range frames {
		if f.Key() == key && f.Unconsumed() {
			next := f.Quantity - quantity
			if next < 0 {
				next = 0
			}
			f.Quantity = next
			if next == 0 {
				f.Status = model.StatusExhausted
				f.HasChannelListing = false
			} else {
				f.Status = model.StatusLive
			}
		}
		out = append(out, f)
	}
	return append(out, sale), sale
}

// applyRestore reverses a sale. A true ledger record is removed and its
// quantity handed back to the unconsumed siblings; an exhausted sentinel
// with no sale history is reset to a single unit of live stock.
func applyRestore(frames []model.Frame, target model.Frame) []model.Frame {
	if target.IsSaleRecord() {
		restored := target.SoldQuantity
		if restored < 1 {
			restored = 1
		}
		key := target.Key()
		out := make([]model.Frame, 0, len(frames))
		for _, f := range frames {
			if f.ID == target.ID {
				continue
			}
			if f.Key() == key && f.Unconsumed() {
				f.Quantity += restored
				f.Status = model.StatusLive
			}
			out = append(out, f)
		}
		return out
	}

	out := make([]model.Frame, 0, len(frames))
	for _, f := range frames {
		if f.ID == target.ID {
			f.Status = model.StatusLive
			f.Quantity = 1
			f.SoldChannel = ""
			f.SoldQuantity = 0
			f.SoldAt = nil
			f.Buyer = model.BuyerInfo{}
		}
		out = append(out, f)
	}
	return out
}

func (uc *ledgerUseCase) lock(ctx context.Context) (func(), error) {
	if uc.cache == nil {
		return func() {}, nil
	}

	lockValue := uuid.New().String()
	for i := 0; i < lockRetries; i++ {
		ok, err := uc.cache.AcquireLock(ctx, framesLockKey, lockValue, lockTTL)
		if err != nil {
			uc.logger.Error("lock acquire failed", zap.Error(err))
		}
		if ok {
			return func() {
				if err := uc.cache.ReleaseLock(context.Background(), framesLockKey, lockValue); err != nil {
					uc.logger.Warn("lock release failed", zap.Error(err))
				}
			}, nil
		}
		time.Sleep(lockRetryDelay)
	}
	return nil, ledger.ErrLedgerBusy
}

func (uc *ledgerUseCase) invalidateCache(ctx context.Context) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePattern(ctx, cacheInvalidate); err != nil {
		uc.logger.Warn("frame cache invalidation failed", zap.Error(err))
	}
}

func findByID(frames []model.Frame, id string) *model.Frame {
	for i := range frames {
		if frames[i].ID == id {
			return &frames[i]
		}
	}
	return nil
}
