package entrance

import (
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/registry"
)

// Assignment holds the entrance to exit connections in both directions
type Assignment struct {
	toExit     map[*zone.Entrance]*zone.Exit
	toEntrance map[*zone.Exit]*zone.Entrance
}

// NewAssignment creates an empty assignment
func NewAssignment() *Assignment {
	return &Assignment{
		toExit:     make(map[*zone.Entrance]*zone.Exit),
		toEntrance: make(map[*zone.Exit]*zone.Entrance),
	}
}

// VanillaAssignment connects every entrance to its unmodified destination
func VanillaAssignment(reg *registry.Registry) (*Assignment, error) {
	a := NewAssignment()
	for _, en := range reg.Entrances() {
		ex := reg.Vanilla(en)
		if ex == nil {
			return nil, errors.Internalf("entrance %q has no vanilla exit", en.Name)
		}
		if err := a.Connect(en, ex); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Connect records a pairing in both directions. Neither side may already be
// connected.
func (a *Assignment) Connect(en *zone.Entrance, ex *zone.Exit) error {
	if cur, ok := a.toExit[en]; ok {
		return errors.Internalf("entrance %q is already connected to %q", en.Name, cur.Name)
	}
	if cur, ok := a.toEntrance[ex]; ok {
		return errors.Internalf("exit %q is already connected from %q", ex.Name, cur.Name)
	}
	a.toExit[en] = ex
	a.toEntrance[ex] = en
	return nil
}

// Release forgets where an entrance leads. The exit side is released
// separately with ReleaseExit.
func (a *Assignment) Release(en *zone.Entrance) {
	delete(a.toExit, en)
}

// ReleaseExit forgets which entrance leads to an exit
func (a *Assignment) ReleaseExit(ex *zone.Exit) {
	delete(a.toEntrance, ex)
}

// ExitFor returns the exit an entrance leads to
func (a *Assignment) ExitFor(en *zone.Entrance) (*zone.Exit, bool) {
	ex, ok := a.toExit[en]
	return ex, ok
}

// EntranceFor returns the entrance that leads to an exit
func (a *Assignment) EntranceFor(ex *zone.Exit) (*zone.Entrance, bool) {
	en, ok := a.toEntrance[ex]
	return en, ok
}

// Len returns the number of connected entrances
func (a *Assignment) Len() int {
	return len(a.toExit)
}

// Verify checks that every registry node is connected exactly once and that
// both directions agree
func (a *Assignment) Verify(reg *registry.Registry) error {
	entrances := reg.Entrances()
	exits := reg.Exits()
	if len(a.toExit) != len(entrances) || len(a.toEntrance) != len(exits) {
		return errors.Internalf("assignment covers %d entrances and %d exits, want %d and %d",
			len(a.toExit), len(a.toEntrance), len(entrances), len(exits))
	}
	for _, en := range entrances {
		ex, ok := a.toExit[en]
		if !ok {
			return errors.Internalf("entrance %q is not connected", en.Name)
		}
		if back := a.toEntrance[ex]; back != en {
			return errors.Internalf("entrance %q leads to %q but the exit points back elsewhere", en.Name, ex.Name)
		}
	}
	return nil
}

// Pairs lists the connections following the given entrance order. Entrances
// without a connection are skipped.
func (a *Assignment) Pairs(order []*zone.Entrance) []Pair {
	out := make([]Pair, 0, len(a.toExit))
	for _, en := range order {
		if ex, ok := a.toExit[en]; ok {
			out = append(out, Pair{Entrance: en.Name, Exit: ex.Name})
		}
	}
	return out
}
