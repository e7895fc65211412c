// Package zone defines the doorway and destination nodes the entrance
// randomizer shuffles.
package zone

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/zone-rando/internal/errors"
)

// Entity types reported through core.Entity
const (
	EntityTypeEntrance = "zone_entrance"
	EntityTypeExit     = "zone_exit"
)

// Category groups entrances and exits that are randomized together
type Category string

// Categories in the order batches are produced when pools are kept separate
const (
	CategoryDungeon         Category = "dungeon"
	CategoryMiniboss        Category = "miniboss"
	CategoryBoss            Category = "boss"
	CategorySecretCave      Category = "secret_cave"
	CategorySecretCaveInner Category = "secret_cave_inner"
	CategoryFairyFountain   Category = "fairy_fountain"
)

var categoryOrder = []Category{
	CategoryDungeon,
	CategoryMiniboss,
	CategoryBoss,
	CategorySecretCave,
	CategorySecretCaveInner,
	CategoryFairyFountain,
}

// Categories returns every category in batch order
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	for _, known := range categoryOrder {
		if c == known {
			return true
		}
	}
	return false
}

// HighestValue reports whether exits of this category hold an objective
// marker. Only these count toward an island's banned content.
func (c Category) HighestValue() bool {
	return c == CategoryDungeon || c == CategoryBoss
}

// Compile-time check that both node types are toolkit entities
var (
	_ core.Entity = (*Exit)(nil)
	_ core.Entity = (*Entrance)(nil)
)

// Exit is a destination node
type Exit struct {
	Name string
	// ZoneName is the overworld zone whose item locations live behind this exit
	ZoneName string
	Category Category
}

// GetID implements core.Entity
func (e *Exit) GetID() string { return e.Name }

// GetType implements core.Entity
func (e *Exit) GetType() string { return EntityTypeExit }

func (e *Exit) String() string { return e.Name }

// Entrance is a doorway node. Exactly one of Island and NestedIn is set.
type Entrance struct {
	Name     string
	Island   string
	NestedIn *Exit
	Category Category

	// Objective names the dungeon whose boss sits behind an island-placed
	// doorway. Empty for ordinary entrances.
	Objective string
}

// GetID implements core.Entity
func (e *Entrance) GetID() string { return e.Name }

// GetType implements core.Entity
func (e *Entrance) GetType() string { return EntityTypeEntrance }

func (e *Entrance) String() string { return e.Name }

// IsNested reports whether the entrance sits inside another exit
func (e *Entrance) IsNested() bool { return e.NestedIn != nil }

// IsObjectiveDoorway reports whether the entrance is an island doorway that
// leads straight to an objective's boss
func (e *Entrance) IsObjectiveDoorway() bool {
	return e.Objective != "" && !e.IsNested()
}

// Validate checks the island/nested exclusivity of the entrance
func (e *Entrance) Validate() error {
	hasIsland := e.Island != ""
	hasNest := e.NestedIn != nil
	if hasIsland == hasNest {
		return errors.Internalf("entrance %q must have exactly one of island or nested_in (island=%q, nested=%t)",
			e.Name, e.Island, hasNest).WithMeta("entrance", e.Name)
	}
	if e.Objective != "" && hasNest {
		return errors.Internalf("entrance %q: only island entrances can name an objective", e.Name).
			WithMeta("entrance", e.Name)
	}
	return nil
}
