// Package objectives selects which dungeons are required in required-bosses
// mode and which item locations become unusable as a result.
package objectives

//go:generate mockgen -destination=mock/mock_service.go -package=objectivesmock github.com/KirkDiggler/zone-rando/internal/orchestrators/objectives Service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/zone-rando/internal/catalogue"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/pkg/rng"
	"github.com/KirkDiggler/zone-rando/internal/registry"
)

const heartContainerSuffix = " Heart Container"

// Service defines the interface for objective selection
type Service interface {
	Select(ctx context.Context, input *SelectInput) (*SelectOutput, error)
}

// Config holds the dependencies for the objectives orchestrator
type Config struct {
	Registry *registry.Registry
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}

	return vb.Build()
}

type orchestrator struct {
	registry *registry.Registry
}

// NewOrchestrator creates a new objectives orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{registry: cfg.Registry}, nil
}

// Select picks the required dungeons. Dungeons named by included_dungeons
// or holding a priority location are always required; the rest are drawn
// from the dungeons that are not excluded.
func (o *orchestrator) Select(ctx context.Context, input *SelectInput) (*SelectOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Options == nil {
		vb.RequiredField("Options")
	}
	if input.Roller == nil {
		vb.RequiredField("Roller")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	opts := input.Options
	if !opts.RequiredBosses {
		return &SelectOutput{}, nil
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}

	dungeons := o.registry.DungeonNames()
	vb = errors.NewValidationBuilder()
	errors.ValidateSubset("included_dungeons", opts.IncludedDungeons, dungeons, vb)
	errors.ValidateSubset("excluded_dungeons", opts.ExcludedDungeons, dungeons, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	required := mapset.New[string]()
	for _, d := range opts.IncludedDungeons {
		required.Put(d)
	}
	isDungeon := mapset.New[string]()
	for _, d := range dungeons {
		isDungeon.Put(d)
	}
	for _, loc := range opts.PriorityLocations {
		zoneName, _ := catalogue.SplitLocationName(loc)
		if isDungeon.Has(zoneName) {
			required.Put(zoneName)
		}
	}

	if required.Size() > opts.NumRequiredBosses {
		return nil, errors.InvalidArgumentf("could not select required bosses: %d dungeons are forced required but only %d bosses are required",
			required.Size(), opts.NumRequiredBosses)
	}

	excluded := mapset.New[string]()
	for _, d := range opts.ExcludedDungeons {
		excluded.Put(d)
	}
	var remaining []string
	for _, d := range dungeons {
		if !required.Has(d) && !excluded.Has(d) {
			remaining = append(remaining, d)
		}
	}

	needed := opts.NumRequiredBosses - required.Size()
	if len(remaining) < needed {
		return nil, errors.InvalidArgumentf("could not select required bosses: need %d more dungeons but only %d are eligible",
			needed, len(remaining))
	}

	picked, err := rng.Sample(input.Roller, remaining, needed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sample required dungeons")
	}
	for _, d := range picked {
		required.Put(d)
	}

	out := &SelectOutput{}
	banned := mapset.New[string]()
	for _, d := range dungeons {
		if required.Has(d) {
			out.RequiredDungeons = append(out.RequiredDungeons, d)
		} else {
			out.BannedDungeons = append(out.BannedDungeons, d)
			banned.Put(d)
		}
	}

	for _, loc := range o.registry.Locations() {
		zoneName := loc.Zone()
		if banned.Has(zoneName) && loc.Has(catalogue.FlagDungeon) {
			out.BannedLocations = append(out.BannedLocations, loc.Name)
			continue
		}
		if dungeon, ok := o.registry.ObjectiveSideLocation(loc.Name); ok && banned.Has(dungeon) {
			out.BannedLocations = append(out.BannedLocations, loc.Name)
		}
	}

	for _, loc := range o.registry.Locations() {
		if !loc.Has(catalogue.FlagBoss) {
			continue
		}
		dungeon, specific := catalogue.SplitLocationName(loc.Name)
		if !strings.HasSuffix(specific, heartContainerSuffix) {
			return nil, errors.Internalf("boss location %q is not a heart container", loc.Name)
		}
		boss := strings.TrimSuffix(specific, heartContainerSuffix)

		if required.Has(dungeon) {
			out.RequiredBossLocations = append(out.RequiredBossLocations, loc.Name)
			out.RequiredBosses = append(out.RequiredBosses, boss)
		} else {
			out.BannedBosses = append(out.BannedBosses, boss)
		}
	}

	slog.Info("Required dungeons selected",
		"required", out.RequiredDungeons,
		"banned", out.BannedDungeons,
		"banned_locations", len(out.BannedLocations))

	return out, nil
}
