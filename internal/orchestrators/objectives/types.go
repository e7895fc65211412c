package objectives

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/zone-rando/internal/config"
)

// SelectInput defines the request for choosing required dungeons
type SelectInput struct {
	Options *config.Options
	Roller  dice.Roller
}

// SelectOutput lists the chosen and banned objectives. Every list is empty
// when required-bosses mode is off.
type SelectOutput struct {
	RequiredDungeons      []string
	BannedDungeons        []string
	RequiredBosses        []string
	BannedBosses          []string
	RequiredBossLocations []string
	// BannedLocations can never hold progress once their dungeon is banned
	BannedLocations []string
}

// Active reports whether any objective was banned
func (o *SelectOutput) Active() bool {
	return o != nil && len(o.BannedDungeons) > 0
}
