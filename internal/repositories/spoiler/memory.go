package spoiler

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/zone-rando/internal/entities"
	"github.com/KirkDiggler/zone-rando/internal/errors"
)

type inMemoryRepository struct {
	mu       sync.RWMutex
	spoilers map[string]*entities.Spoiler
}

// NewInMemory creates a repository that keeps spoilers in process memory
func NewInMemory() Repository {
	return &inMemoryRepository{spoilers: make(map[string]*entities.Spoiler)}
}

var _ Repository = (*inMemoryRepository)(nil)

func (r *inMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Spoiler == nil {
		return nil, errors.InvalidArgument(errSpoilerNil)
	}
	if input.Spoiler.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.spoilers[input.Spoiler.ID]; ok {
		return nil, errors.AlreadyExistsf("spoiler with ID %s already exists", input.Spoiler.ID)
	}
	r.spoilers[input.Spoiler.ID] = input.Spoiler.Clone()

	return &CreateOutput{Spoiler: input.Spoiler.Clone()}, nil
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.spoilers[input.ID]
	if !ok {
		return nil, errors.NotFoundf("spoiler with ID %s not found", input.ID)
	}
	return &GetOutput{Spoiler: s.Clone()}, nil
}

func (r *inMemoryRepository) ListBySeed(_ context.Context, input ListBySeedInput) (*ListBySeedOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := &ListBySeedOutput{Spoilers: []*entities.Spoiler{}}
	for _, s := range r.spoilers {
		if s.Seed == input.Seed {
			out.Spoilers = append(out.Spoilers, s.Clone())
		}
	}
	sort.Slice(out.Spoilers, func(i, j int) bool {
		return out.Spoilers[i].ID < out.Spoilers[j].ID
	})
	return out, nil
}

func (r *inMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.spoilers[input.ID]; !ok {
		return nil, errors.NotFoundf("spoiler with ID %s not found", input.ID)
	}
	delete(r.spoilers, input.ID)
	return &DeleteOutput{}, nil
}
