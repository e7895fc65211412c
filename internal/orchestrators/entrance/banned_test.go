package entrance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/zone-rando/internal/config"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/orchestrators/entrance"
)

func TestComputeBannedContent(t *testing.T) {
	reg := defaultRegistry(t)

	requiredOpts := func() *config.Options {
		opts := config.Default()
		opts.RequiredBosses = true
		opts.NumRequiredBosses = 3
		return opts
	}

	threeBanned := &entrance.Objectives{
		RequiredDungeons: []string{"Dragon Roost Cavern", "Tower of the Gods", "Wind Temple"},
		RequiredBosses:   []string{"Gohma", "Gohdan", "Molgera"},
		BannedDungeons:   []string{"Forbidden Woods", "Forsaken Fortress", "Earth Temple"},
		BannedBosses:     []string{"Kalle Demos", "Helmaroc King", "Jalhalla"},
	}

	t.Run("off outside required bosses", func(t *testing.T) {
		bc, err := entrance.ComputeBannedContent(reg, config.Default(), threeBanned)
		require.NoError(t, err)
		assert.Equal(t, 0, bc.Size())
		assert.Empty(t, bc.SeedIslands())
	})

	t.Run("six objectives three required", func(t *testing.T) {
		bc, err := entrance.ComputeBannedContent(reg, requiredOpts(), threeBanned)
		require.NoError(t, err)

		var bossExits, dungeonExits, minibossExits []string
		for _, ex := range reg.Exits() {
			if !bc.IsBanned(ex) {
				continue
			}
			switch ex.Category {
			case zone.CategoryBoss:
				bossExits = append(bossExits, ex.Name)
			case zone.CategoryDungeon:
				dungeonExits = append(dungeonExits, ex.Name)
			case zone.CategoryMiniboss:
				minibossExits = append(minibossExits, ex.Name)
			}
		}

		assert.ElementsMatch(t, []string{"Kalle Demos Boss Arena", "Helmaroc King Boss Arena", "Jalhalla Boss Arena"}, bossExits)
		// Forsaken Fortress has no shuffled interior
		assert.ElementsMatch(t, []string{"Forbidden Woods", "Earth Temple"}, dungeonExits)
		assert.ElementsMatch(t, []string{"Forbidden Woods Miniboss Arena", "Earth Temple Miniboss Arena"}, minibossExits)
		assert.Equal(t, 7, bc.Size())

		assert.False(t, bc.IsBanned(mustExit(t, reg, "Master Sword Chamber")))
		assert.True(t, bc.HeldVanilla(mustExit(t, reg, "Jalhalla Boss Arena")))
		assert.True(t, bc.HeldVanilla(mustExit(t, reg, "Earth Temple Miniboss Arena")))
		assert.False(t, bc.HeldVanilla(mustExit(t, reg, "Earth Temple")))
		assert.False(t, bc.HeldVanilla(mustExit(t, reg, "Gohma Boss Arena")))
	})

	t.Run("vanilla dungeon islands seed the banned islands", func(t *testing.T) {
		bc, err := entrance.ComputeBannedContent(reg, requiredOpts(), threeBanned)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"Forest Haven", "Headstone Island"}, bc.SeedIslands())

		opts := requiredOpts()
		opts.RandomizeDungeonEntrances = true
		bc, err = entrance.ComputeBannedContent(reg, opts, threeBanned)
		require.NoError(t, err)
		assert.Empty(t, bc.SeedIslands())
	})

	t.Run("unknown boss", func(t *testing.T) {
		_, err := entrance.ComputeBannedContent(reg, requiredOpts(), &entrance.Objectives{BannedBosses: []string{"Ganondorf"}})
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
	})
}
