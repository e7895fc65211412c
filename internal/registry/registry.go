// Package registry resolves the static catalogue into linked entrance and
// exit nodes. A Registry is immutable once built and safe to share.
package registry

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/zone-rando/internal/catalogue"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
)

// Config holds the data a registry is built from
type Config struct {
	Catalogue *catalogue.Catalogue
}

// Validate ensures the config is usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalogue == nil {
		vb.RequiredField("Catalogue")
	}

	return vb.Build()
}

// Registry is the resolved node catalogue
type Registry struct {
	entrances []*zone.Entrance
	exits     []*zone.Exit

	entranceByName map[string]*zone.Entrance
	exitByName     map[string]*zone.Exit
	exitsByZone    map[string][]*zone.Exit

	vanilla map[*zone.Entrance]*zone.Exit

	objectives        []catalogue.Objective
	objectiveByName   map[string]catalogue.Objective
	objectiveByExit   map[*zone.Exit]catalogue.Objective
	objectiveSideLocs map[string]string

	locations        []catalogue.Location
	locationByName   map[string]catalogue.Location
	dependents       map[*zone.Exit][]string
	locationToExit   map[string]*zone.Exit
	ignoredZones     mapset.Set[string]
	fixedInteriors   mapset.Set[string]
	overrides        map[string]string
	sideDependencies map[string][]string
}

// New builds a registry. Any inconsistency in the catalogue is reported as
// an internal error since the catalogue is fixed data.
func New(cfg *Config) (*Registry, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	cat := cfg.Catalogue
	r := &Registry{
		entranceByName:    make(map[string]*zone.Entrance, len(cat.Entrances)),
		exitByName:        make(map[string]*zone.Exit, len(cat.Exits)),
		exitsByZone:       make(map[string][]*zone.Exit),
		vanilla:           make(map[*zone.Entrance]*zone.Exit, len(cat.Vanilla)),
		objectiveByName:   make(map[string]catalogue.Objective, len(cat.Objectives)),
		objectiveByExit:   make(map[*zone.Exit]catalogue.Objective),
		objectiveSideLocs: make(map[string]string, len(cat.ObjectiveSideLocations)),
		locationByName:    make(map[string]catalogue.Location, len(cat.Locations)),
		dependents:        make(map[*zone.Exit][]string),
		locationToExit:    make(map[string]*zone.Exit),
		ignoredZones:      toSet(cat.IgnoredLocationZones),
		fixedInteriors:    toSet(cat.FixedInteriorZones),
		overrides:         cat.LocationExitOverrides,
		sideDependencies:  cat.SideDependencies,
	}

	if err := r.buildExits(cat.Exits); err != nil {
		return nil, err
	}
	if err := r.buildEntrances(cat.Entrances); err != nil {
		return nil, err
	}
	if err := r.buildVanilla(cat.Vanilla); err != nil {
		return nil, err
	}
	if err := r.buildObjectives(cat.Objectives, cat.ObjectiveSideLocations); err != nil {
		return nil, err
	}
	if err := r.buildDependents(cat.Locations); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Registry) buildExits(specs []catalogue.ExitSpec) error {
	for _, spec := range specs {
		if _, exists := r.exitByName[spec.Name]; exists {
			return errors.Internalf("duplicate exit %q", spec.Name)
		}
		if !spec.Category.Valid() {
			return errors.Internalf("exit %q has unknown category %q", spec.Name, spec.Category)
		}

		ex := &zone.Exit{
			Name:     spec.Name,
			ZoneName: spec.Zone,
			Category: spec.Category,
		}
		r.exits = append(r.exits, ex)
		r.exitByName[ex.Name] = ex
		if ex.ZoneName != "" {
			r.exitsByZone[ex.ZoneName] = append(r.exitsByZone[ex.ZoneName], ex)
		}
	}
	return nil
}

func (r *Registry) buildEntrances(specs []catalogue.EntranceSpec) error {
	for _, spec := range specs {
		if _, exists := r.entranceByName[spec.Name]; exists {
			return errors.Internalf("duplicate entrance %q", spec.Name)
		}
		if !spec.Category.Valid() {
			return errors.Internalf("entrance %q has unknown category %q", spec.Name, spec.Category)
		}

		en := &zone.Entrance{
			Name:      spec.Name,
			Island:    spec.Island,
			Category:  spec.Category,
			Objective: spec.Objective,
		}
		if spec.NestedIn != "" {
			parent, ok := r.exitByName[spec.NestedIn]
			if !ok {
				return errors.Internalf("entrance %q is nested in unknown exit %q", spec.Name, spec.NestedIn)
			}
			en.NestedIn = parent
		}

		if err := en.Validate(); err != nil {
			return errors.Wrap(err, "invalid entrance")
		}

		r.entrances = append(r.entrances, en)
		r.entranceByName[en.Name] = en
	}
	return nil
}

func (r *Registry) buildVanilla(pairs map[string]string) error {
	used := make(map[*zone.Exit]*zone.Entrance, len(pairs))
	for _, en := range r.entrances {
		exitName, ok := pairs[en.Name]
		if !ok {
			return errors.Internalf("entrance %q has no vanilla connection", en.Name)
		}
		ex, ok := r.exitByName[exitName]
		if !ok {
			return errors.Internalf("vanilla connection of %q names unknown exit %q", en.Name, exitName)
		}
		if prev, taken := used[ex]; taken {
			return errors.Internalf("exit %q is the vanilla target of both %q and %q", ex.Name, prev.Name, en.Name)
		}
		used[ex] = en
		r.vanilla[en] = ex
	}

	for name := range pairs {
		if _, ok := r.entranceByName[name]; !ok {
			return errors.Internalf("vanilla connection names unknown entrance %q", name)
		}
	}
	for _, ex := range r.exits {
		if _, ok := used[ex]; !ok {
			return errors.Internalf("exit %q has no vanilla entrance", ex.Name)
		}
	}
	return nil
}

func (r *Registry) buildObjectives(objectives []catalogue.Objective, side map[string]string) error {
	for _, o := range objectives {
		if _, exists := r.objectiveByName[o.Dungeon]; exists {
			return errors.Internalf("duplicate objective %q", o.Dungeon)
		}
		r.objectives = append(r.objectives, o)
		r.objectiveByName[o.Dungeon] = o

		for _, name := range []string{o.DungeonExit, o.MinibossExit, o.BossExit} {
			if name == "" {
				continue
			}
			ex, ok := r.exitByName[name]
			if !ok {
				return errors.Internalf("objective %q names unknown exit %q", o.Dungeon, name)
			}
			r.objectiveByExit[ex] = o
		}
	}

	for _, en := range r.entrances {
		if en.Objective == "" {
			continue
		}
		if _, ok := r.objectiveByName[en.Objective]; !ok {
			return errors.Internalf("entrance %q names unknown objective %q", en.Name, en.Objective)
		}
	}

	for loc, dungeon := range side {
		if _, ok := r.objectiveByName[dungeon]; !ok {
			return errors.Internalf("location %q names unknown objective %q", loc, dungeon)
		}
		r.objectiveSideLocs[loc] = dungeon
	}
	return nil
}

func toSet(values []string) mapset.Set[string] {
	out := mapset.New[string]()
	for _, v := range values {
		out.Put(v)
	}
	return out
}
