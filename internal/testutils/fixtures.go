package testutils

import (
	"github.com/KirkDiggler/zone-rando/internal/config"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
)

// Dungeons used by required-bosses fixtures
const (
	DungeonDragonRoostCavern = "Dragon Roost Cavern"
	DungeonForbiddenWoods    = "Forbidden Woods"
	DungeonTowerOfTheGods    = "Tower of the Gods"
	DungeonForsakenFortress  = "Forsaken Fortress"
	DungeonEarthTemple       = "Earth Temple"
	DungeonWindTemple        = "Wind Temple"
)

// CreateTestOptions returns the default settings with every entrance
// category shuffled under the given mix mode
func CreateTestOptions(mix string) *config.Options {
	opts := config.Default()
	opts.MixEntrances = mix
	for _, c := range zone.Categories() {
		opts.SetRandomizes(c, true)
	}
	return opts
}

// CreateTestRequiredBossesOptions returns fully shuffled settings with
// required bosses mode on and num bosses required
func CreateTestRequiredBossesOptions(mix string, num int) *config.Options {
	opts := CreateTestOptions(mix)
	opts.RequiredBosses = true
	opts.NumRequiredBosses = num
	return opts
}
