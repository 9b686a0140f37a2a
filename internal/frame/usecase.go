package frame

import (
	"context"
	"errors"

	"github.com/optiregistry/framestock-service/internal/frame/dto"
	"github.com/optiregistry/framestock-service/internal/model"
)

var (
	ErrFrameNotFound       = errors.New("frame not found")
	ErrInvalidChannel      = errors.New("invalid channel")
	ErrSaleRecordImmutable = errors.New("sale records cannot be edited")
)

type UseCase interface {
	Intake(ctx context.Context, input *dto.IntakeFrameInput) (*model.Frame, error)
	BulkIntake(ctx context.Context, inputs []dto.IntakeFrameInput) ([]model.Frame, error)
	Update(ctx context.Context, input *dto.UpdateFrameInput) (*model.Frame, error)
	Delete(ctx context.Context, id string) error
	ClearChannel(ctx context.Context, channel model.Channel) error
	ClearSold(ctx context.Context) error

	GetByID(ctx context.Context, id string) (*model.Frame, error)
	ActiveStock(ctx context.Context, channel model.Channel, search string) ([]model.Frame, error)
	SoldHistory(ctx context.Context, search string) ([]model.Frame, error)
	PhysicalSales(ctx context.Context, search string) ([]model.Frame, error)
	OnlineSales(ctx context.Context, search string) ([]model.Frame, error)
}
