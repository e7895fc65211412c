package entrance

import (
	"github.com/KirkDiggler/zone-rando/internal/config"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/registry"
)

const mixedBatchName = "mixed"

// SelectBatches groups the enabled categories into batches. Separate pools
// yield one batch per enabled category in fixed order; mixed pools yield a
// single batch holding every enabled category.
func SelectBatches(reg *registry.Registry, opts *config.Options) ([]Batch, error) {
	var enabled []zone.Category
	for _, c := range zone.Categories() {
		if opts.Randomizes(c) {
			enabled = append(enabled, c)
		}
	}

	switch opts.MixEntrances {
	case config.MixSeparatePools:
		batches := make([]Batch, 0, len(enabled))
		for _, c := range enabled {
			batches = append(batches, buildBatch(reg, string(c), c))
		}
		return batches, nil
	case config.MixPools:
		if len(enabled) == 0 {
			return nil, nil
		}
		return []Batch{buildBatch(reg, mixedBatchName, enabled...)}, nil
	default:
		return nil, errors.InvalidArgumentf("invalid entrance randomization option: %s", opts.MixEntrances)
	}
}

func buildBatch(reg *registry.Registry, name string, categories ...zone.Category) Batch {
	b := Batch{Name: name, Categories: categories}
	for _, c := range categories {
		b.Entrances = append(b.Entrances, reg.EntrancesIn(c)...)
		b.Exits = append(b.Exits, reg.ExitsIn(c)...)
	}
	return b
}
