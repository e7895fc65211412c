package entrance

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/registry"
)

// Classifier decides whether an exit can lead to progress items
type Classifier struct {
	registry *registry.Registry
	oracle   LocationOracle
	banned   mapset.Set[string]
}

// NewClassifier creates a classifier. Banned locations never count as
// progress regardless of what the oracle says.
func NewClassifier(reg *registry.Registry, oracle LocationOracle, bannedLocations []string) *Classifier {
	banned := mapset.New[string]()
	for _, loc := range bannedLocations {
		banned.Put(loc)
	}
	return &Classifier{registry: reg, oracle: oracle, banned: banned}
}

// IsProgress reports whether any location behind ex is neither banned nor
// excluded
func (c *Classifier) IsProgress(ex *zone.Exit) (bool, error) {
	locs := c.registry.DependentLocations(ex)
	if len(locs) == 0 {
		return false, errors.Internalf("could not find any item locations for zone exit: %s", ex.Name)
	}
	for _, loc := range locs {
		if c.banned.Has(loc) {
			continue
		}
		if !c.oracle.IsExcluded(loc) {
			return true, nil
		}
	}
	return false, nil
}
