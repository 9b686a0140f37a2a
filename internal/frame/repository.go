package frame

import (
	"context"

	"github.com/optiregistry/framestock-service/internal/model"
)

// Repository is the persistence boundary shared by the catalog, ledger and
// listing features. The ledger works set-at-a-time (LoadAll/ReplaceAll); the
// targeted helpers serve catalog operations.
type Repository interface {
	LoadAll(ctx context.Context) ([]model.Frame, error)
	ReplaceAll(ctx context.Context, frames []model.Frame) error

	// GetByID returns nil, nil when the id is unknown.
	GetByID(ctx context.Context, id string) (*model.Frame, error)
	Insert(ctx context.Context, f *model.Frame) error
	InsertBatch(ctx context.Context, frames []model.Frame) error
	Update(ctx context.Context, f *model.Frame) error
	Delete(ctx context.Context, id string) error

	// DeleteByChannel removes every non-sold record of a channel. Sale
	// ledger records are only ever removed by restore or DeleteSold.
	DeleteByChannel(ctx context.Context, channel model.Channel) error
	DeleteSold(ctx context.Context) error
}
