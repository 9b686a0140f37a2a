package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/optiregistry/framestock-service/internal/ledger/dto"
	"github.com/optiregistry/framestock-service/internal/model"
)

var (
	ErrFrameNotFound     = errors.New("frame not found")
	ErrFrameNotSellable  = errors.New("frame is a sale record, not live stock")
	ErrInvalidQuantity   = errors.New("quantity must be at least 1")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrInvalidChannel    = errors.New("invalid sale channel")
	ErrDuplicateRequest  = errors.New("duplicate sale request")
	ErrLedgerBusy        = errors.New("ledger busy, try again later")
)

type UseCase interface {
	// Sell turns live stock into an immutable sale record and returns it,
	// so receipt generation never has to re-read state.
	Sell(ctx context.Context, input *dto.SellInput) (*model.Frame, error)

	// Restore reverses a sale (or resets an exhausted sentinel). Restoring
	// an id that is no longer in the set is a no-op.
	Restore(ctx context.Context, saleID string) error
}

// Cache is the coordination contract: request idempotency and the lock that
// serializes read-modify-write cycles over the record set. Nil disables both.
type Cache interface {
	SetIdempotency(ctx context.Context, key string, ttl time.Duration) (bool, error)
	AcquireLock(ctx context.Context, key, value string, ttl time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key, value string) error
	DeletePattern(ctx context.Context, pattern string) error
}
