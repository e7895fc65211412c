package builders

import (
	"github.com/KirkDiggler/zone-rando/internal/catalogue"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/registry"
)

// CatalogueBuilder provides a fluent interface for building small test catalogues
type CatalogueBuilder struct {
	cat *catalogue.Catalogue
}

// NewCatalogueBuilder creates an empty catalogue builder
func NewCatalogueBuilder() *CatalogueBuilder {
	return &CatalogueBuilder{
		cat: &catalogue.Catalogue{
			Vanilla:                map[string]string{},
			LocationExitOverrides:  map[string]string{},
			SideDependencies:       map[string][]string{},
			ObjectiveSideLocations: map[string]string{},
		},
	}
}

// FlagsFor returns the location flags typical of exits in a category
func FlagsFor(category zone.Category) []catalogue.Flag {
	switch category {
	case zone.CategoryDungeon, zone.CategoryMiniboss:
		return []catalogue.Flag{catalogue.FlagDungeon}
	case zone.CategoryBoss:
		return []catalogue.Flag{catalogue.FlagDungeon, catalogue.FlagBoss}
	case zone.CategoryFairyFountain:
		return []catalogue.Flag{catalogue.FlagGreatFairy}
	default:
		return []catalogue.Flag{catalogue.FlagPuzzleCave}
	}
}

// WithExit adds an exit with one item location behind it, named
// "<exit> - Chest" and flagged for its category
func (b *CatalogueBuilder) WithExit(name string, category zone.Category) *CatalogueBuilder {
	return b.WithExitLocations(name, category, catalogue.Location{
		Name:  name + " - Chest",
		Flags: FlagsFor(category),
	})
}

// WithExitLocations adds an exit with the given item locations behind it
func (b *CatalogueBuilder) WithExitLocations(name string, category zone.Category, locs ...catalogue.Location) *CatalogueBuilder {
	b.cat.Exits = append(b.cat.Exits, catalogue.ExitSpec{Name: name, Category: category})
	for _, loc := range locs {
		if loc.Region == "" {
			loc.Region = name
		}
		b.cat.Locations = append(b.cat.Locations, loc)
		b.cat.LocationExitOverrides[loc.Name] = name
	}
	return b
}

// WithIslandEntrance adds an island doorway whose vanilla target is vanillaExit
func (b *CatalogueBuilder) WithIslandEntrance(name, island string, category zone.Category, vanillaExit string) *CatalogueBuilder {
	b.cat.Entrances = append(b.cat.Entrances, catalogue.EntranceSpec{
		Name:     name,
		Island:   island,
		Category: category,
	})
	b.cat.Vanilla[name] = vanillaExit
	return b
}

// WithNestedEntrance adds a doorway inside parentExit
func (b *CatalogueBuilder) WithNestedEntrance(name, parentExit string, category zone.Category, vanillaExit string) *CatalogueBuilder {
	b.cat.Entrances = append(b.cat.Entrances, catalogue.EntranceSpec{
		Name:     name,
		NestedIn: parentExit,
		Category: category,
	})
	b.cat.Vanilla[name] = vanillaExit
	return b
}

// WithObjectiveDoorway adds an island doorway that leads to an objective's boss
func (b *CatalogueBuilder) WithObjectiveDoorway(name, island, objective, vanillaExit string) *CatalogueBuilder {
	b.cat.Entrances = append(b.cat.Entrances, catalogue.EntranceSpec{
		Name:      name,
		Island:    island,
		Category:  zone.CategoryBoss,
		Objective: objective,
	})
	b.cat.Vanilla[name] = vanillaExit
	return b
}

// WithObjective adds an objective dungeon
func (b *CatalogueBuilder) WithObjective(o catalogue.Objective) *CatalogueBuilder {
	b.cat.Objectives = append(b.cat.Objectives, o)
	return b
}

// WithLocation adds a free-standing item location
func (b *CatalogueBuilder) WithLocation(loc catalogue.Location) *CatalogueBuilder {
	b.cat.Locations = append(b.cat.Locations, loc)
	return b
}

// Build returns the catalogue
func (b *CatalogueBuilder) Build() *catalogue.Catalogue {
	return b.cat
}

// BuildRegistry builds a registry from the catalogue
func (b *CatalogueBuilder) BuildRegistry() (*registry.Registry, error) {
	return registry.New(&registry.Config{Catalogue: b.cat})
}
