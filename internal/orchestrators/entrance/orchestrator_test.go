package entrance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/zone-rando/internal/catalogue"
	"github.com/KirkDiggler/zone-rando/internal/config"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/orchestrators/entrance"
	"github.com/KirkDiggler/zone-rando/internal/orchestrators/objectives"
	"github.com/KirkDiggler/zone-rando/internal/pkg/rng"
	"github.com/KirkDiggler/zone-rando/internal/registry"
	"github.com/KirkDiggler/zone-rando/internal/testutils/builders"
	"github.com/KirkDiggler/zone-rando/internal/world"
)

const seedCount = 40

type RandomizeTestSuite struct {
	suite.Suite
	ctx context.Context
}

func (s *RandomizeTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *RandomizeTestSuite) randomize(reg *registry.Registry, opts *config.Options, oracle entrance.LocationOracle, obj *entrance.Objectives, seed int64) (*entrance.RandomizeOutput, error) {
	svc, err := entrance.NewOrchestrator(&entrance.Config{Registry: reg})
	s.Require().NoError(err)

	graph, err := world.Build(reg)
	s.Require().NoError(err)

	return svc.Randomize(s.ctx, &entrance.RandomizeInput{
		Options:    opts,
		Roller:     rng.NewSeeded(seed),
		Oracle:     oracle,
		Graph:      graph,
		Objectives: obj,
	})
}

// assertBijection checks that every entrance and every exit appears once
func (s *RandomizeTestSuite) assertBijection(reg *registry.Registry, out *entrance.RandomizeOutput) {
	s.Len(out.Connections, len(reg.Entrances()))
	s.Len(out.Pairs, len(reg.Entrances()))

	seen := make(map[string]bool)
	for _, p := range out.Pairs {
		s.False(seen[p.Exit], "exit %s used twice", p.Exit)
		seen[p.Exit] = true
		s.Equal(p.Exit, out.Connections[p.Entrance])
	}
	for _, ex := range reg.Exits() {
		s.True(seen[ex.Name], "exit %s unused", ex.Name)
	}
}

// assertAcyclic checks that every entrance reaches an island
func (s *RandomizeTestSuite) assertAcyclic(reg *registry.Registry, out *entrance.RandomizeOutput) {
	a := assignmentFromOutput(s.T(), reg, out)
	for _, en := range reg.Entrances() {
		res, err := entrance.Outermost(a, en)
		s.Require().NoError(err)
		s.True(res.Resolved(), "entrance %s is not reachable", en.Name)
		s.NotEmpty(res.Entrance.Island)
	}
}

func (s *RandomizeTestSuite) TestFiveIslandEntrances() {
	reg := fiveCaveRegistry(s.T())
	opts := config.Default()
	opts.RandomizeSecretCaveEntrances = true

	for seed := int64(1); seed <= seedCount; seed++ {
		out, err := s.randomize(reg, opts, excludedSet{}, nil, seed)
		s.Require().NoError(err, "seed %d", seed)

		s.assertBijection(reg, out)
		s.Empty(out.IslandsWithBannedContent)
	}
}

func (s *RandomizeTestSuite) TestNothingEnabledKeepsVanilla() {
	reg := defaultRegistry(s.T())

	out, err := s.randomize(reg, config.Default(), objectives.NewFlagOracle(reg, config.Default()), nil, 1)
	s.Require().NoError(err)

	for _, en := range reg.Entrances() {
		s.Equal(reg.Vanilla(en).Name, out.Connections[en.Name])
	}
}

func (s *RandomizeTestSuite) TestFullCatalogue() {
	reg := defaultRegistry(s.T())

	for _, mix := range []string{config.MixSeparatePools, config.MixPools} {
		s.Run(mix, func() {
			opts := allCategories(mix)
			oracle := objectives.NewFlagOracle(reg, opts)

			for seed := int64(1); seed <= seedCount; seed++ {
				out, err := s.randomize(reg, opts, oracle, nil, seed)
				s.Require().NoError(err, "seed %d", seed)

				s.assertBijection(reg, out)
				s.assertAcyclic(reg, out)
			}
		})
	}
}

func (s *RandomizeTestSuite) TestSeparatePoolsStayInCategory() {
	reg := defaultRegistry(s.T())
	opts := allCategories(config.MixSeparatePools)

	out, err := s.randomize(reg, opts, objectives.NewFlagOracle(reg, opts), nil, 11)
	s.Require().NoError(err)

	for _, en := range reg.Entrances() {
		ex, err := reg.Exit(out.Connections[en.Name])
		s.Require().NoError(err)
		s.Equal(en.Category, ex.Category, en.Name)
	}
}

func (s *RandomizeTestSuite) TestDeterminism() {
	reg := defaultRegistry(s.T())
	opts := allCategories(config.MixPools)
	oracle := objectives.NewFlagOracle(reg, opts)

	first, err := s.randomize(reg, opts, oracle, nil, 2024)
	s.Require().NoError(err)
	second, err := s.randomize(reg, opts, oracle, nil, 2024)
	s.Require().NoError(err)

	s.Equal(first.Pairs, second.Pairs)

	other, err := s.randomize(reg, opts, oracle, nil, 2025)
	s.Require().NoError(err)
	s.NotEqual(first.Pairs, other.Pairs)
}

func (s *RandomizeTestSuite) TestIsolation() {
	reg := isolationRegistry(s.T())
	opts := config.Default()
	opts.MixEntrances = config.MixPools
	opts.RandomizeDungeonEntrances = true
	opts.RandomizeMinibossEntrances = true
	opts.RandomizeSecretCaveEntrances = true

	for seed := int64(1); seed <= seedCount; seed++ {
		out, err := s.randomize(reg, opts, deadOracle, nil, seed)
		s.Require().NoError(err, "seed %d", seed)
		s.assertBijection(reg, out)

		islandsToDead := 0
		for _, en := range reg.Entrances() {
			leadsToDead := deadExits[out.Connections[en.Name]]
			if en.IsNested() {
				// whatever sits inside dead content stays dead, and the reverse
				s.Equal(deadExits[en.NestedIn.Name], leadsToDead, "seed %d: %s", seed, en.Name)
				continue
			}
			if leadsToDead {
				islandsToDead++
			}
		}
		s.Equal(2, islandsToDead, "seed %d", seed)
	}
}

func (s *RandomizeTestSuite) TestTerminalSafety() {
	// every dungeon holds a doorway; only one island doorway exists, so a
	// terminal exit taken too early would strand the chain
	reg, err := builders.NewCatalogueBuilder().
		WithExit("D1", zone.CategoryDungeon).
		WithExit("D2", zone.CategoryDungeon).
		WithExit("D3", zone.CategoryDungeon).
		WithExit("End", zone.CategoryDungeon).
		WithIslandEntrance("Sea Door", "Island", zone.CategoryDungeon, "D1").
		WithNestedEntrance("Door in D1", "D1", zone.CategoryDungeon, "D2").
		WithNestedEntrance("Door in D2", "D2", zone.CategoryDungeon, "D3").
		WithNestedEntrance("Door in D3", "D3", zone.CategoryDungeon, "End").
		BuildRegistry()
	s.Require().NoError(err)

	opts := config.Default()
	opts.RandomizeDungeonEntrances = true

	for seed := int64(1); seed <= seedCount; seed++ {
		out, err := s.randomize(reg, opts, excludedSet{}, nil, seed)
		s.Require().NoError(err, "seed %d", seed)
		s.assertBijection(reg, out)
		s.assertAcyclic(reg, out)

		s.NotEqual("End", out.Connections["Sea Door"], "seed %d", seed)
	}
}

func (s *RandomizeTestSuite) TestSplitDeficit() {
	reg, err := builders.NewCatalogueBuilder().
		WithExit("Cave", zone.CategorySecretCave).
		WithExit("Inner Cave", zone.CategorySecretCaveInner).
		WithIslandEntrance("Cave Entrance", "Island", zone.CategorySecretCave, "Cave").
		WithNestedEntrance("Inner Entrance", "Cave", zone.CategorySecretCaveInner, "Inner Cave").
		BuildRegistry()
	s.Require().NoError(err)

	opts := config.Default()
	opts.RandomizeSecretCaveInnerEntrances = true

	_, err = s.randomize(reg, opts, excludedSet{"Inner Cave - Chest": true}, nil, 1)
	s.Require().Error(err)
	s.True(errors.IsPlacementFailure(err))
	s.Contains(err.Error(), "not enough island entrances left to split entrances")
	s.Equal(1, errors.GetMeta(err)["needed"])
	s.Equal(0, errors.GetMeta(err)["available"])
}

func (s *RandomizeTestSuite) TestObjectiveDoorwayNeverSplitAtRandom() {
	reg, err := builders.NewCatalogueBuilder().
		WithExit("Arena One", zone.CategoryBoss).
		WithExit("Arena Two", zone.CategoryBoss).
		WithExit("Dungeon", zone.CategoryDungeon).
		WithIslandEntrance("Dungeon Door", "Island", zone.CategoryDungeon, "Dungeon").
		WithNestedEntrance("Boss Door", "Dungeon", zone.CategoryBoss, "Arena One").
		WithObjectiveDoorway("Fortress Door", "Fortress", "Fortress", "Arena Two").
		WithObjective(catalogue.Objective{Dungeon: "Fortress", Boss: "Boss Two", BossExit: "Arena Two"}).
		BuildRegistry()
	s.Require().NoError(err)

	opts := config.Default()
	opts.RandomizeBossEntrances = true

	// Arena One is dead; the only island doorway in the batch is the
	// objective doorway, which is progress, so nothing can take the dead arena
	oracle := excludedSet{"Arena One - Chest": true}
	_, err = s.randomize(reg, opts, oracle, nil, 1)
	s.Require().Error(err)
	s.True(errors.IsPlacementFailure(err))

	// without dungeon progression the doorway joins the dead side itself
	opts.ProgressionDungeons = false
	for seed := int64(1); seed <= seedCount; seed++ {
		out, err := s.randomize(reg, opts, oracle, nil, seed)
		s.Require().NoError(err, "seed %d", seed)
		s.Equal("Arena One", out.Connections["Fortress Door"])
	}
}

// bannedIsleRegistry puts a cave doorway on the island of a banned dungeon.
// The other cave doorway leads the only way into an inner cave.
func bannedIsleRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := builders.NewCatalogueBuilder().
		WithExit("Sunk Keep", zone.CategoryDungeon).
		WithExit("Sunk Arena", zone.CategoryBoss).
		WithExit("Live Keep", zone.CategoryDungeon).
		WithExit("Live Arena", zone.CategoryBoss).
		WithExit("Terminal Cave", zone.CategorySecretCave).
		WithExit("Hub Cave", zone.CategorySecretCave).
		WithExit("Inner Cave", zone.CategorySecretCaveInner).
		WithIslandEntrance("Dungeon Entrance on Banned Isle", "Banned Isle", zone.CategoryDungeon, "Sunk Keep").
		WithNestedEntrance("Boss Entrance in Sunk Keep", "Sunk Keep", zone.CategoryBoss, "Sunk Arena").
		WithIslandEntrance("Dungeon Entrance on Live Isle", "Live Isle", zone.CategoryDungeon, "Live Keep").
		WithNestedEntrance("Boss Entrance in Live Keep", "Live Keep", zone.CategoryBoss, "Live Arena").
		WithIslandEntrance("Cave Entrance on Banned Isle", "Banned Isle", zone.CategorySecretCave, "Terminal Cave").
		WithIslandEntrance("Cave Entrance on Other Isle", "Other Isle", zone.CategorySecretCave, "Hub Cave").
		WithNestedEntrance("Inner Door in Hub Cave", "Hub Cave", zone.CategorySecretCaveInner, "Inner Cave").
		WithObjective(catalogue.Objective{Dungeon: "Sunk Keep", Boss: "Sunk Boss", DungeonExit: "Sunk Keep", BossExit: "Sunk Arena"}).
		WithObjective(catalogue.Objective{Dungeon: "Live Keep", Boss: "Live Boss", DungeonExit: "Live Keep", BossExit: "Live Arena"}).
		BuildRegistry()
	require.NoError(t, err)
	return reg
}

func (s *RandomizeTestSuite) TestBannedIslandDoorwaysPlaceFirst() {
	reg := bannedIsleRegistry(s.T())

	opts := config.Default()
	opts.MixEntrances = config.MixPools
	opts.RandomizeSecretCaveEntrances = true
	opts.RandomizeSecretCaveInnerEntrances = true
	opts.RequiredBosses = true
	opts.NumRequiredBosses = 1

	obj := &entrance.Objectives{
		RequiredDungeons: []string{"Live Keep"},
		BannedDungeons:   []string{"Sunk Keep"},
		RequiredBosses:   []string{"Live Boss"},
		BannedBosses:     []string{"Sunk Boss"},
	}

	// The Banned Isle doorway may only take a terminal cave. If the Other
	// Isle doorway picked first it could take that cave and leave Banned
	// Isle with nothing legal, so every seed succeeding shows the order.
	for seed := int64(1); seed <= seedCount; seed++ {
		out, err := s.randomize(reg, opts, excludedSet{}, obj, seed)
		s.Require().NoError(err, "seed %d", seed)

		s.Contains([]string{"Terminal Cave", "Inner Cave"}, out.Connections["Cave Entrance on Banned Isle"], "seed %d", seed)
		s.Equal("Hub Cave", out.Connections["Cave Entrance on Other Isle"], "seed %d", seed)
		s.Equal([]string{"Banned Isle"}, out.IslandsWithBannedContent)
		s.Equal("Sunk Keep", out.Connections["Dungeon Entrance on Banned Isle"])
	}
}

func (s *RandomizeTestSuite) TestInvalidOptions() {
	reg := fiveCaveRegistry(s.T())

	opts := config.Default()
	opts.MixEntrances = "chaos"
	_, err := s.randomize(reg, opts, excludedSet{}, nil, 1)
	s.Require().Error(err)
	s.True(errors.IsConfigurationError(err))

	opts = config.Default()
	opts.RequiredBosses = true
	_, err = s.randomize(reg, opts, excludedSet{}, nil, 1)
	s.Require().Error(err)
	s.True(errors.IsConfigurationError(err))
}

func (s *RandomizeTestSuite) TestCanceledContext() {
	reg := fiveCaveRegistry(s.T())
	opts := config.Default()
	opts.RandomizeSecretCaveEntrances = true

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ctx = ctx

	_, err := s.randomize(reg, opts, excludedSet{}, nil, 1)
	s.Require().Error(err)
	s.True(errors.IsCanceled(err))
}

func (s *RandomizeTestSuite) TestRequiredBosses() {
	reg := defaultRegistry(s.T())
	selector, err := objectives.NewOrchestrator(&objectives.Config{Registry: reg})
	s.Require().NoError(err)

	for _, mix := range []string{config.MixSeparatePools, config.MixPools} {
		s.Run(mix, func() {
			opts := allCategories(mix)
			opts.RequiredBosses = true
			opts.NumRequiredBosses = 3
			oracle := objectives.NewFlagOracle(reg, opts)

			succeeded := 0
			for seed := int64(1); seed <= seedCount; seed++ {
				sel, err := selector.Select(s.ctx, &objectives.SelectInput{Options: opts, Roller: rng.NewSeeded(seed)})
				s.Require().NoError(err)
				s.Require().Len(sel.BannedBosses, 3)

				obj := &entrance.Objectives{
					RequiredDungeons: sel.RequiredDungeons,
					BannedDungeons:   sel.BannedDungeons,
					RequiredBosses:   sel.RequiredBosses,
					BannedBosses:     sel.BannedBosses,
					BannedLocations:  sel.BannedLocations,
				}

				out, err := s.randomize(reg, opts, oracle, obj, seed)
				if err != nil {
					s.True(errors.IsPlacementFailure(err), "seed %d: %v", seed, err)
					continue
				}
				succeeded++

				s.assertBijection(reg, out)
				s.assertDisjoint(reg, out)
				s.Equal(sel.BannedBosses, out.BannedBosses)

				// arenas of banned dungeons keep their vanilla doors
				for _, d := range sel.BannedDungeons {
					o, err := reg.Objective(d)
					s.Require().NoError(err)
					for _, en := range reg.Entrances() {
						if reg.Vanilla(en).Name == o.BossExit {
							s.Equal(o.BossExit, out.Connections[en.Name])
						}
					}
				}
			}
			s.Positive(succeeded)
		})
	}
}

// assertDisjoint checks that no island holds both a required and a banned boss
func (s *RandomizeTestSuite) assertDisjoint(reg *registry.Registry, out *entrance.RandomizeOutput) {
	a := assignmentFromOutput(s.T(), reg, out)

	island := func(boss string) string {
		ex, err := reg.BossExit(boss)
		s.Require().NoError(err)
		res, err := entrance.OutermostForExit(a, ex)
		s.Require().NoError(err)
		s.Require().True(res.Resolved())
		return res.Entrance.Island
	}

	banned := make(map[string]bool)
	for _, boss := range out.BannedBosses {
		banned[island(boss)] = true
	}
	for _, boss := range out.RequiredBosses {
		s.False(banned[island(boss)], "required boss %s shares an island with a banned boss", boss)
	}
}

func TestRandomizeTestSuite(t *testing.T) {
	suite.Run(t, new(RandomizeTestSuite))
}

func TestNewOrchestrator(t *testing.T) {
	_, err := entrance.NewOrchestrator(nil)
	require.Error(t, err)

	_, err = entrance.NewOrchestrator(&entrance.Config{})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "Registry")
}
