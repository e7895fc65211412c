package entrance_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zone-rando/internal/catalogue"
	"github.com/KirkDiggler/zone-rando/internal/config"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/orchestrators/entrance"
	"github.com/KirkDiggler/zone-rando/internal/registry"
	"github.com/KirkDiggler/zone-rando/internal/testutils"
	"github.com/KirkDiggler/zone-rando/internal/testutils/builders"
)

// excludedSet is a LocationOracle backed by a fixed list
type excludedSet map[string]bool

func (e excludedSet) IsExcluded(location string) bool { return e[location] }

func defaultRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	cat, err := catalogue.Default()
	require.NoError(t, err)
	reg, err := registry.New(&registry.Config{Catalogue: cat})
	require.NoError(t, err)
	return reg
}

func allCategories(mix string) *config.Options {
	return testutils.CreateTestOptions(mix)
}

// fiveCaveRegistry has five island doorways, each leading to its own cave
func fiveCaveRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	b := builders.NewCatalogueBuilder()
	for _, id := range []string{"A", "B", "C", "D", "E"} {
		b.WithExit("Cave "+id, zone.CategorySecretCave).
			WithIslandEntrance("Entrance "+id, "Island "+id, zone.CategorySecretCave, "Cave "+id)
	}
	reg, err := b.BuildRegistry()
	require.NoError(t, err)
	return reg
}

// isolationRegistry mixes live and dead dungeons, arenas and caves. The
// dead content is excluded by deadOracle.
func isolationRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := builders.NewCatalogueBuilder().
		WithExit("Live Dungeon", zone.CategoryDungeon).
		WithExit("Dead Dungeon", zone.CategoryDungeon).
		WithExit("Live Arena", zone.CategoryMiniboss).
		WithExit("Dead Arena", zone.CategoryMiniboss).
		WithExit("Cave One", zone.CategorySecretCave).
		WithExit("Cave Two", zone.CategorySecretCave).
		WithIslandEntrance("Dungeon Entrance on Alpha", "Alpha", zone.CategoryDungeon, "Live Dungeon").
		WithIslandEntrance("Dungeon Entrance on Beta", "Beta", zone.CategoryDungeon, "Dead Dungeon").
		WithNestedEntrance("Miniboss Entrance in Live Dungeon", "Live Dungeon", zone.CategoryMiniboss, "Live Arena").
		WithNestedEntrance("Miniboss Entrance in Dead Dungeon", "Dead Dungeon", zone.CategoryMiniboss, "Dead Arena").
		WithIslandEntrance("Cave Entrance on Gamma", "Gamma", zone.CategorySecretCave, "Cave One").
		WithIslandEntrance("Cave Entrance on Delta", "Delta", zone.CategorySecretCave, "Cave Two").
		BuildRegistry()
	require.NoError(t, err)
	return reg
}

var deadOracle = excludedSet{
	"Dead Dungeon - Chest": true,
	"Dead Arena - Chest":   true,
	"Cave Two - Chest":     true,
}

var deadExits = map[string]bool{
	"Dead Dungeon": true,
	"Dead Arena":   true,
	"Cave Two":     true,
}

// assignmentFromOutput rebuilds an assignment from the produced mapping
func assignmentFromOutput(t *testing.T, reg *registry.Registry, out *entrance.RandomizeOutput) *entrance.Assignment {
	t.Helper()
	a := entrance.NewAssignment()
	for enName, exName := range out.Connections {
		en, err := reg.Entrance(enName)
		require.NoError(t, err)
		ex, err := reg.Exit(exName)
		require.NoError(t, err)
		require.NoError(t, a.Connect(en, ex))
	}
	return a
}
