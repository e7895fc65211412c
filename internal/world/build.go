package world

import (
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/registry"
)

// Build creates the base world for a registry: the menu and sea regions, one
// region per entrance and exit, the edges leading to every entrance region,
// and every item location placed in its region. Entrance to exit edges are
// added later, once placements are decided.
func Build(reg *registry.Registry) (*Graph, error) {
	if reg == nil {
		return nil, errors.InvalidArgument("registry is required")
	}

	g := NewGraph()
	for _, name := range []string{RegionMenu, RegionGreatSea} {
		if err := g.AddRegion(name); err != nil {
			return nil, err
		}
	}
	for _, en := range reg.Entrances() {
		if err := g.AddRegion(en.Name); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "entrance region clashes")
		}
	}
	for _, ex := range reg.Exits() {
		if err := g.AddRegion(ex.Name); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInternal, "exit region clashes")
		}
	}

	if err := g.Connect(RegionMenu, RegionGreatSea, Always()); err != nil {
		return nil, err
	}

	// Island doorways open from the sea; nested ones from the exit holding them
	for _, en := range reg.Entrances() {
		parent := RegionGreatSea
		if en.IsNested() {
			parent = en.NestedIn.Name
		}
		if err := g.Connect(parent, en.Name, CanAccess(en.Name)); err != nil {
			return nil, err
		}
	}

	for _, loc := range reg.Locations() {
		region := loc.Region
		if !g.HasRegion(region) {
			region = RegionGreatSea
		}
		if err := g.AddLocation(region, loc.Name); err != nil {
			return nil, err
		}
	}

	return g, nil
}
