package generation

import (
	"github.com/KirkDiggler/zone-rando/internal/config"
	"github.com/KirkDiggler/zone-rando/internal/entities"
	"github.com/KirkDiggler/zone-rando/internal/world"
)

// DefaultMaxAttempts bounds the seed retries when the input leaves it unset
const DefaultMaxAttempts = 10

// GenerateInput defines the request for one generation run
type GenerateInput struct {
	Options *config.Options
	// Seed is the base seed. Attempt n runs with Seed+n.
	Seed        int64
	MaxAttempts int
	// Persist stores the spoiler in the repository
	Persist bool
	// CheckReachability walks the finished world and fails if any item
	// location cannot be reached from the menu
	CheckReachability bool
}

// GenerateOutput defines the result of a generation run
type GenerateOutput struct {
	Spoiler *entities.Spoiler
	Graph   *world.Graph
}
