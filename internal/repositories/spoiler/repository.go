// Package spoiler provides storage for generation results
package spoiler

import (
	"context"

	"github.com/KirkDiggler/zone-rando/internal/entities"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=spoilermock github.com/KirkDiggler/zone-rando/internal/repositories/spoiler Repository

// Repository stores spoiler records by run id
type Repository interface {
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)
	Get(ctx context.Context, input GetInput) (*GetOutput, error)
	ListBySeed(ctx context.Context, input ListBySeedInput) (*ListBySeedOutput, error)
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput contains the spoiler to store
type CreateInput struct {
	Spoiler *entities.Spoiler
}

// CreateOutput contains the stored spoiler
type CreateOutput struct {
	Spoiler *entities.Spoiler
}

// GetInput identifies a spoiler
type GetInput struct {
	ID string
}

// GetOutput contains the spoiler
type GetOutput struct {
	Spoiler *entities.Spoiler
}

// ListBySeedInput selects spoilers whose successful attempt used a seed
type ListBySeedInput struct {
	Seed int64
}

// ListBySeedOutput contains the matching spoilers ordered by id
type ListBySeedOutput struct {
	Spoilers []*entities.Spoiler
}

// DeleteInput identifies a spoiler to remove
type DeleteInput struct {
	ID string
}

// DeleteOutput is empty but reserved for future use
type DeleteOutput struct{}
