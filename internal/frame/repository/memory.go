package repository

import (
	"context"
	"sync"

	"github.com/optiregistry/framestock-service/internal/model"
)

// MemoryRepository keeps the full record set in memory, the way the original
// store application held it in local storage. Used by tests and as a
// zero-dependency run mode.
type MemoryRepository struct {
	mu     sync.RWMutex
	frames []model.Frame
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{frames: []model.Frame{}}
}

func (r *MemoryRepository) LoadAll(ctx context.Context) ([]model.Frame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]model.Frame, len(r.frames))
	copy(out, r.frames)
	return out, nil
}

func (r *MemoryRepository) ReplaceAll(ctx context.Context, frames []model.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = make([]model.Frame, len(frames))
	copy(r.frames, frames)
	return nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*model.Frame, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.frames {
		if r.frames[i].ID == id {
			f := r.frames[i]
			return &f, nil
		}
	}
	return nil, nil
}

func (r *MemoryRepository) Insert(ctx context.Context, f *model.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, *f)
	return nil
}

func (r *MemoryRepository) InsertBatch(ctx context.Context, frames []model.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, frames...)
	return nil
}

func (r *MemoryRepository) Update(ctx context.Context, f *model.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.frames {
		if r.frames[i].ID == f.ID {
			r.frames[i] = *f
			return nil
		}
	}
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.frames[:0]
	for _, f := range r.frames {
		if f.ID != id {
			out = append(out, f)
		}
	}
	r.frames = out
	return nil
}

func (r *MemoryRepository) DeleteByChannel(ctx context.Context, channel model.Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.frames[:0]
	for _, f := range r.frames {
		if f.Channel != channel || f.Status == model.StatusSold {
			out = append(out, f)
		}
	}
	r.frames = out
	return nil
}

func (r *MemoryRepository) DeleteSold(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.frames[:0]
	for _, f := range r.frames {
		if f.Status != model.StatusSold {
			out = append(out, f)
		}
	}
	r.frames = out
	return nil
}
