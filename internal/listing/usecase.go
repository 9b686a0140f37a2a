package listing

import (
	"context"
	"errors"

	"github.com/optiregistry/framestock-service/internal/listing/dto"
	"github.com/optiregistry/framestock-service/internal/model"
)

var (
	ErrFrameNotFound  = errors.New("source frame not found")
	ErrInvalidChannel = errors.New("invalid listing channel")
	ErrNotListable    = errors.New("only live records can be listed")
)

type UseCase interface {
	// CloneToChannel lists an inventory frame on one marketplace at the
	// computed channel price and returns the new listing record.
	CloneToChannel(ctx context.Context, input *dto.CloneInput) (*model.Frame, error)

	// CloneToAllChannels repeats the clone once per marketplace at the
	// same price. The clones are fully independent records.
	CloneToAllChannels(ctx context.Context, input *dto.CloneInput) ([]model.Frame, error)
}
