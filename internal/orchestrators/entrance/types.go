package entrance

import (
	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/zone-rando/internal/config"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/world"
)

// LocationOracle reports whether an item location is excluded from holding
// progress items
type LocationOracle interface {
	IsExcluded(location string) bool
}

// RegionGraph is the traversal graph the finished connections are installed in
type RegionGraph interface {
	HasRegion(name string) bool
	Connect(from, to string, guard world.Guard) error
}

// Objectives carries the required-bosses selection. Empty outside that mode.
type Objectives struct {
	RequiredDungeons []string
	BannedDungeons   []string
	RequiredBosses   []string
	BannedBosses     []string
	BannedLocations  []string
}

// Batch is one set of entrances and exits shuffled together
type Batch struct {
	Name       string
	Categories []zone.Category
	Entrances  []*zone.Entrance
	Exits      []*zone.Exit
}

// Pair is one final entrance to exit connection
type Pair struct {
	Entrance string `json:"entrance"`
	Exit     string `json:"exit"`
}

// RandomizeInput defines the request for shuffling entrances
type RandomizeInput struct {
	Options    *config.Options
	Roller     dice.Roller
	Oracle     LocationOracle
	Graph      RegionGraph
	Objectives *Objectives
}

// RandomizeOutput defines the result of shuffling entrances
type RandomizeOutput struct {
	// Connections maps every entrance name to the exit it now leads to
	Connections map[string]string
	// Pairs lists the same connections in catalogue order
	Pairs []Pair

	IslandsWithBannedContent []string
	RequiredBosses           []string
	BannedBosses             []string
	RequiredDungeons         []string
	BannedDungeons           []string
}
