package registry

import (
	"github.com/KirkDiggler/zone-rando/internal/catalogue"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
)

// Entrances returns every entrance in catalogue order
func (r *Registry) Entrances() []*zone.Entrance {
	out := make([]*zone.Entrance, len(r.entrances))
	copy(out, r.entrances)
	return out
}

// Exits returns every exit in catalogue order
func (r *Registry) Exits() []*zone.Exit {
	out := make([]*zone.Exit, len(r.exits))
	copy(out, r.exits)
	return out
}

// EntrancesIn returns the entrances of one category in catalogue order
func (r *Registry) EntrancesIn(category zone.Category) []*zone.Entrance {
	var out []*zone.Entrance
	for _, en := range r.entrances {
		if en.Category == category {
			out = append(out, en)
		}
	}
	return out
}

// ExitsIn returns the exits of one category in catalogue order
func (r *Registry) ExitsIn(category zone.Category) []*zone.Exit {
	var out []*zone.Exit
	for _, ex := range r.exits {
		if ex.Category == category {
			out = append(out, ex)
		}
	}
	return out
}

// Entrance looks up an entrance by name
func (r *Registry) Entrance(name string) (*zone.Entrance, error) {
	en, ok := r.entranceByName[name]
	if !ok {
		return nil, errors.NotFoundf("entrance %q not found", name)
	}
	return en, nil
}

// Exit looks up an exit by name
func (r *Registry) Exit(name string) (*zone.Exit, error) {
	ex, ok := r.exitByName[name]
	if !ok {
		return nil, errors.NotFoundf("exit %q not found", name)
	}
	return ex, nil
}

// Vanilla returns the exit an entrance leads to in the unmodified game
func (r *Registry) Vanilla(en *zone.Entrance) *zone.Exit {
	return r.vanilla[en]
}

// DependentLocations returns the item locations logically gated behind ex
func (r *Registry) DependentLocations(ex *zone.Exit) []string {
	locs := r.dependents[ex]
	out := make([]string, len(locs))
	copy(out, locs)
	return out
}

// ExitForLocation returns the exit a location lives behind, if any
func (r *Registry) ExitForLocation(location string) (*zone.Exit, bool) {
	ex, ok := r.locationToExit[location]
	return ex, ok
}

// Locations returns every item location in catalogue order
func (r *Registry) Locations() []catalogue.Location {
	out := make([]catalogue.Location, len(r.locations))
	copy(out, r.locations)
	return out
}

// Location looks up an item location by name
func (r *Registry) Location(name string) (catalogue.Location, error) {
	loc, ok := r.locationByName[name]
	if !ok {
		return catalogue.Location{}, errors.NotFoundf("location %q not found", name)
	}
	return loc, nil
}

// Objectives returns every objective dungeon in catalogue order
func (r *Registry) Objectives() []catalogue.Objective {
	out := make([]catalogue.Objective, len(r.objectives))
	copy(out, r.objectives)
	return out
}

// DungeonNames returns the name of every objective dungeon
func (r *Registry) DungeonNames() []string {
	out := make([]string, 0, len(r.objectives))
	for _, o := range r.objectives {
		out = append(out, o.Dungeon)
	}
	return out
}

// Objective looks up an objective by dungeon name
func (r *Registry) Objective(dungeon string) (catalogue.Objective, error) {
	o, ok := r.objectiveByName[dungeon]
	if !ok {
		return catalogue.Objective{}, errors.NotFoundf("objective %q not found", dungeon)
	}
	return o, nil
}

// ObjectiveForExit returns the objective owning a dungeon, miniboss or boss exit
func (r *Registry) ObjectiveForExit(ex *zone.Exit) (catalogue.Objective, bool) {
	o, ok := r.objectiveByExit[ex]
	return o, ok
}

// BossExit returns the arena exit of a boss
func (r *Registry) BossExit(boss string) (*zone.Exit, error) {
	for _, o := range r.objectives {
		if o.Boss == boss {
			return r.Exit(o.BossExit)
		}
	}
	return nil, errors.NotFoundf("boss %q not found", boss)
}

// ObjectiveSideLocation returns the objective a location outside any
// dungeon is tied to
func (r *Registry) ObjectiveSideLocation(location string) (string, bool) {
	dungeon, ok := r.objectiveSideLocs[location]
	return dungeon, ok
}
