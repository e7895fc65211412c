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

func TestSelectBatches(t *testing.T) {
	reg := defaultRegistry(t)

	t.Run("separate pools keep category order", func(t *testing.T) {
		opts := config.Default()
		opts.RandomizeFairyFountainEntrances = true
		opts.RandomizeDungeonEntrances = true
		opts.RandomizeSecretCaveEntrances = true

		batches, err := entrance.SelectBatches(reg, opts)
		require.NoError(t, err)
		require.Len(t, batches, 3)

		assert.Equal(t, "dungeon", batches[0].Name)
		assert.Equal(t, "secret_cave", batches[1].Name)
		assert.Equal(t, "fairy_fountain", batches[2].Name)

		assert.Len(t, batches[0].Entrances, 5)
		assert.Len(t, batches[0].Exits, 5)
		assert.Len(t, batches[1].Entrances, 20)
		assert.Len(t, batches[2].Exits, 6)
		for _, b := range batches {
			assert.Len(t, b.Entrances, len(b.Exits))
		}
	})

	t.Run("mixed pools", func(t *testing.T) {
		opts := allCategories(config.MixPools)

		batches, err := entrance.SelectBatches(reg, opts)
		require.NoError(t, err)
		require.Len(t, batches, 1)

		assert.Equal(t, zone.Categories(), batches[0].Categories)
		assert.Len(t, batches[0].Entrances, len(reg.Entrances()))
		assert.Len(t, batches[0].Exits, len(reg.Exits()))
	})

	t.Run("nothing enabled", func(t *testing.T) {
		for _, mix := range []string{config.MixSeparatePools, config.MixPools} {
			opts := config.Default()
			opts.MixEntrances = mix

			batches, err := entrance.SelectBatches(reg, opts)
			require.NoError(t, err)
			assert.Empty(t, batches)
		}
	})

	t.Run("invalid mode", func(t *testing.T) {
		opts := config.Default()
		opts.MixEntrances = "shuffle_everything"

		_, err := entrance.SelectBatches(reg, opts)
		require.Error(t, err)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "invalid entrance randomization option: shuffle_everything")
	})
}
