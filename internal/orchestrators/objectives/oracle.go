package objectives

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/zone-rando/internal/catalogue"
	"github.com/KirkDiggler/zone-rando/internal/config"
	"github.com/KirkDiggler/zone-rando/internal/registry"
)

// FlagOracle answers whether a location is excluded from holding progress,
// based on the progression settings and the player's excluded locations.
type FlagOracle struct {
	enabled   mapset.Set[catalogue.Flag]
	excluded  mapset.Set[string]
	locations map[string]catalogue.Location
}

// NewFlagOracle builds the oracle for one set of options
func NewFlagOracle(reg *registry.Registry, opts *config.Options) *FlagOracle {
	o := &FlagOracle{
		enabled:   mapset.New[catalogue.Flag](),
		excluded:  mapset.New[string](),
		locations: make(map[string]catalogue.Location),
	}

	for _, f := range EnabledFlags(opts) {
		o.enabled.Put(f)
	}
	for _, name := range opts.ExcludedLocations {
		o.excluded.Put(name)
	}
	for _, loc := range reg.Locations() {
		o.locations[loc.Name] = loc
	}

	return o
}

// EnabledFlags lists the location flags the settings turn into progress
func EnabledFlags(opts *config.Options) []catalogue.Flag {
	flags := []catalogue.Flag{catalogue.FlagAlways}

	toggles := []struct {
		on    bool
		flags []catalogue.Flag
	}{
		{opts.ProgressionDungeons, []catalogue.Flag{catalogue.FlagDungeon, catalogue.FlagBoss}},
		{opts.ProgressionTingleChests, []catalogue.Flag{catalogue.FlagTingleChest}},
		{opts.ProgressionDungeonSecrets, []catalogue.Flag{catalogue.FlagDungeonSecret}},
		{opts.ProgressionPuzzleSecretCaves, []catalogue.Flag{catalogue.FlagPuzzleCave}},
		{opts.ProgressionCombatSecretCaves, []catalogue.Flag{catalogue.FlagCombatCave}},
		{opts.ProgressionSavageLabyrinth, []catalogue.Flag{catalogue.FlagSavage}},
		{opts.ProgressionGreatFairies, []catalogue.Flag{catalogue.FlagGreatFairy}},
		{opts.ProgressionShortSidequests, []catalogue.Flag{catalogue.FlagShortSidequest}},
		{opts.ProgressionLongSidequests, []catalogue.Flag{catalogue.FlagLongSidequest}},
		{opts.ProgressionExpensivePurchases, []catalogue.Flag{catalogue.FlagExpensive}},
		{opts.ProgressionBigOctosAndGunboats, []catalogue.Flag{catalogue.FlagBigOcto}},
	}
	for _, t := range toggles {
		if t.on {
			flags = append(flags, t.flags...)
		}
	}
	return flags
}

// IsExcluded reports whether a location must not hold progress. A location
// is excluded when any of its flags is disabled, when the player excluded
// it, or when it is unknown.
func (o *FlagOracle) IsExcluded(location string) bool {
	if o.excluded.Has(location) {
		return true
	}
	loc, ok := o.locations[location]
	if !ok {
		return true
	}
	for _, f := range loc.Flags {
		if !o.enabled.Has(f) {
			return true
		}
	}
	return false
}
