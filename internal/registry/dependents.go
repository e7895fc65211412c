package registry

import (
	"github.com/KirkDiggler/zone-rando/internal/catalogue"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
)

// Location kinds that sit behind a randomizable exit
var exitGatedFlags = []catalogue.Flag{
	catalogue.FlagDungeon,
	catalogue.FlagBoss,
	catalogue.FlagPuzzleCave,
	catalogue.FlagCombatCave,
	catalogue.FlagSavage,
	catalogue.FlagGreatFairy,
}

func (r *Registry) buildDependents(locations []catalogue.Location) error {
	for _, loc := range locations {
		if _, exists := r.locationByName[loc.Name]; exists {
			return errors.Internalf("duplicate location %q", loc.Name)
		}
		r.locations = append(r.locations, loc)
		r.locationByName[loc.Name] = loc
	}

	for _, loc := range r.locations {
		ex, err := r.exitForLocation(loc)
		if err != nil {
			return err
		}
		if ex != nil {
			r.locationToExit[loc.Name] = ex
			r.dependents[ex] = append(r.dependents[ex], loc.Name)
		}

		for _, subName := range r.sideDependencies[loc.Name] {
			sub, ok := r.locationByName[subName]
			if !ok {
				return errors.Internalf("side dependency of %q names unknown location %q", loc.Name, subName)
			}
			subExit, err := r.exitForLocation(sub)
			if err != nil {
				return err
			}
			if subExit != nil {
				r.dependents[subExit] = append(r.dependents[subExit], loc.Name)
			}
		}
	}
	return nil
}

// exitForLocation returns the exit a location lives behind, or nil when the
// location does not depend on any randomizable exit.
func (r *Registry) exitForLocation(loc catalogue.Location) (*zone.Exit, error) {
	zoneName := loc.Zone()
	if r.ignoredZones.Has(zoneName) {
		return nil, nil
	}
	if r.fixedInteriors.Has(zoneName) && !loc.Has(catalogue.FlagBoss) {
		return nil, nil
	}
	// Big octos share flags with fairy fountains but live out on the sea
	if loc.Has(catalogue.FlagBigOcto) {
		return nil, nil
	}
	if !loc.HasAny(exitGatedFlags...) {
		return nil, nil
	}

	if exitName, ok := r.overrides[loc.Name]; ok {
		ex, found := r.exitByName[exitName]
		if !found {
			return nil, errors.Internalf("override for %q names unknown exit %q", loc.Name, exitName)
		}
		return ex, nil
	}

	candidates := r.exitsByZone[zoneName]
	switch len(candidates) {
	case 0:
		return nil, nil
	case 1:
		return candidates[0], nil
	default:
		return nil, errors.Internalf("multiple exits share zone %q; location %q needs an override", zoneName, loc.Name)
	}
}
