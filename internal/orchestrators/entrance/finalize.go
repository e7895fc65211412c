package entrance

import (
	"sort"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/registry"
	"github.com/KirkDiggler/zone-rando/internal/world"
)

// Finalize installs one guarded edge per connection into the graph. Every
// entrance must be connected and reachable from an island before any edge
// is installed. With objectives given, the islands of required and banned
// bosses must not overlap.
func Finalize(reg *registry.Registry, a *Assignment, graph RegionGraph, obj *Objectives) error {
	entrances := reg.Entrances()

	for _, en := range entrances {
		ex, ok := a.ExitFor(en)
		if !ok {
			return errors.Internalf("entrance %s has no exit", en.Name)
		}
		res, err := Outermost(a, en)
		if err != nil {
			return err
		}
		if !res.Resolved() {
			return errors.Internalf("entrance %s cannot be reached from any island", en.Name)
		}
		if !graph.HasRegion(en.Name) {
			return errors.Internalf("no region for entrance %s", en.Name)
		}
		if !graph.HasRegion(ex.Name) {
			return errors.Internalf("no region for exit %s", ex.Name)
		}
	}

	for _, en := range entrances {
		ex, _ := a.ExitFor(en)
		if err := graph.Connect(en.Name, ex.Name, world.CanAccess(en.Name)); err != nil {
			return errors.WrapWithCode(err, errors.CodeInternal, "failed to connect regions")
		}
	}

	if obj == nil || len(obj.BannedBosses) == 0 {
		return nil
	}

	banned, err := bossIslands(reg, a, obj.BannedBosses)
	if err != nil {
		return err
	}
	required, err := bossIslands(reg, a, obj.RequiredBosses)
	if err != nil {
		return err
	}

	var shared []string
	required.Each(func(island string) {
		if banned.Has(island) {
			shared = append(shared, island)
		}
	})
	if len(shared) > 0 {
		sort.Strings(shared)
		return errors.Internalf("required and banned bosses share islands: %v", shared)
	}

	return nil
}

func bossIslands(reg *registry.Registry, a *Assignment, bosses []string) (mapset.Set[string], error) {
	islands := mapset.New[string]()
	for _, boss := range bosses {
		ex, err := reg.BossExit(boss)
		if err != nil {
			return islands, errors.WrapWithCode(err, errors.CodeInternal, "unknown boss")
		}
		res, err := OutermostForExit(a, ex)
		if err != nil {
			return islands, err
		}
		if !res.Resolved() {
			return islands, errors.Internalf("boss %s cannot be reached from any island", boss)
		}
		islands.Put(res.Entrance.Island)
	}
	return islands, nil
}
