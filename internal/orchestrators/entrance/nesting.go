package entrance

import (
	"strings"

	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
)

// ResolutionState tells whether a nesting chain reaches the sea yet
type ResolutionState int

const (
	// Undecided means some exit on the chain has no entrance yet
	Undecided ResolutionState = iota
	// Resolved means the chain ends at an island entrance
	Resolved
)

func (s ResolutionState) String() string {
	if s == Resolved {
		return "resolved"
	}
	return "undecided"
}

// Resolution is the outcome of walking a nesting chain outward
type Resolution struct {
	State ResolutionState
	// Entrance is the island entrance the chain ends at when resolved
	Entrance *zone.Entrance
	// Path holds every entrance visited, innermost first
	Path []*zone.Entrance
}

// Resolved reports whether the chain reaches an island
func (r Resolution) Resolved() bool {
	return r.State == Resolved
}

// Outermost follows en outward through the current assignment until it
// reaches an island entrance. A chain that revisits an entrance is an error.
func Outermost(a *Assignment, en *zone.Entrance) (Resolution, error) {
	var path []*zone.Entrance
	seen := make(map[*zone.Entrance]bool)

	for en.IsNested() {
		if seen[en] {
			names := make([]string, 0, len(path))
			for _, p := range path {
				names = append(names, p.Name)
			}
			return Resolution{}, errors.Internalf("entrances are in an infinite loop: %s", strings.Join(names, ", "))
		}
		seen[en] = true
		path = append(path, en)

		parent, ok := a.EntranceFor(en.NestedIn)
		if !ok {
			return Resolution{State: Undecided, Path: path}, nil
		}
		en = parent
	}

	path = append(path, en)
	return Resolution{State: Resolved, Entrance: en, Path: path}, nil
}

// OutermostForExit resolves the chain leading to an exit
func OutermostForExit(a *Assignment, ex *zone.Exit) (Resolution, error) {
	en, ok := a.EntranceFor(ex)
	if !ok {
		return Resolution{State: Undecided}, nil
	}
	return Outermost(a, en)
}
