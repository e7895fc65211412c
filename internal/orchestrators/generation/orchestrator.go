// Package generation runs the randomizer end to end: it draws the
// objectives, shuffles the entrances and retries with the next seed when a
// seed cannot be placed.
package generation

//go:generate mockgen -destination=mock/mock_service.go -package=generationmock github.com/KirkDiggler/zone-rando/internal/orchestrators/generation Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/zone-rando/internal/entities"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/orchestrators/entrance"
	"github.com/KirkDiggler/zone-rando/internal/orchestrators/objectives"
	"github.com/KirkDiggler/zone-rando/internal/pkg/clock"
	"github.com/KirkDiggler/zone-rando/internal/pkg/idgen"
	"github.com/KirkDiggler/zone-rando/internal/pkg/rng"
	"github.com/KirkDiggler/zone-rando/internal/registry"
	"github.com/KirkDiggler/zone-rando/internal/repositories/spoiler"
	"github.com/KirkDiggler/zone-rando/internal/world"
)

// Service defines the interface for generation runs
type Service interface {
	Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error)
}

// Config holds the dependencies for the generation orchestrator
type Config struct {
	Registry   *registry.Registry
	Objectives objectives.Service
	Entrances  entrance.Service
	// Repository is optional; without it runs cannot be persisted
	Repository  spoiler.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Registry == nil {
		vb.RequiredField("Registry")
	}
	if c.Objectives == nil {
		vb.RequiredField("Objectives")
	}
	if c.Entrances == nil {
		vb.RequiredField("Entrances")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	registry   *registry.Registry
	objectives objectives.Service
	entrances  entrance.Service
	repository spoiler.Repository
	idGen      idgen.Generator
	clock      clock.Clock
}

// NewOrchestrator creates a new generation orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		registry:   cfg.Registry,
		objectives: cfg.Objectives,
		entrances:  cfg.Entrances,
		repository: cfg.Repository,
		idGen:      cfg.IDGenerator,
		clock:      cfg.Clock,
	}, nil
}

// attempt is the outcome of one seed
type attempt struct {
	seed       int64
	graph      *world.Graph
	objectives *objectives.SelectOutput
	entrances  *entrance.RandomizeOutput
}

// Generate tries consecutive seeds until one places. Only placement
// failures are retried; configuration and consistency errors end the run.
func (o *orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Options == nil {
		vb.RequiredField("Options")
	}
	if input.MaxAttempts < 0 {
		vb.InvalidField("MaxAttempts", "must not be negative")
	}
	if input.Persist && o.repository == nil {
		vb.InvalidField("Persist", "no repository configured")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	maxAttempts := input.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}

	var lastErr error
	for n := 0; n < maxAttempts; n++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "generation canceled")
		}

		seed := input.Seed + int64(n)
		result, err := o.tryOnce(ctx, input, seed)
		if err != nil {
			if !errors.GetCode(err).Retryable() {
				return nil, errors.Wrapf(err, "generation failed for seed %d", seed).
					WithMeta("seed", seed)
			}
			slog.Warn("Seed could not be placed, retrying",
				"seed", seed,
				"attempt", n+1,
				"error", err)
			lastErr = err
			continue
		}

		if input.CheckReachability {
			if err := o.checkReachability(result.graph); err != nil {
				return nil, err
			}
		}

		sp := o.buildSpoiler(input, result, n+1)
		if input.Persist {
			created, err := o.repository.Create(ctx, spoiler.CreateInput{Spoiler: sp})
			if err != nil {
				return nil, errors.Wrapf(err, "failed to store spoiler %s", sp.ID)
			}
			sp = created.Spoiler
		}

		slog.Info("Seed generated",
			"id", sp.ID,
			"seed", seed,
			"attempts", n+1,
			"persisted", input.Persist)

		return &GenerateOutput{Spoiler: sp, Graph: result.graph}, nil
	}

	return nil, errors.WrapWithCodef(lastErr, errors.CodeAborted, "no seed placed after %d attempts", maxAttempts).
		WithMeta("base_seed", input.Seed).
		WithMeta("attempts", maxAttempts)
}

func (o *orchestrator) tryOnce(ctx context.Context, input *GenerateInput, seed int64) (*attempt, error) {
	roller := rng.NewSeeded(seed)

	graph, err := world.Build(o.registry)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build world")
	}

	selected, err := o.objectives.Select(ctx, &objectives.SelectInput{
		Options: input.Options,
		Roller:  roller,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to select objectives")
	}

	out, err := o.entrances.Randomize(ctx, &entrance.RandomizeInput{
		Options: input.Options,
		Roller:  roller,
		Oracle:  objectives.NewFlagOracle(o.registry, input.Options),
		Graph:   graph,
		Objectives: &entrance.Objectives{
			RequiredDungeons: selected.RequiredDungeons,
			BannedDungeons:   selected.BannedDungeons,
			RequiredBosses:   selected.RequiredBosses,
			BannedBosses:     selected.BannedBosses,
			BannedLocations:  selected.BannedLocations,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to randomize entrances")
	}

	return &attempt{
		seed:       seed,
		graph:      graph,
		objectives: selected,
		entrances:  out,
	}, nil
}

// checkReachability confirms every item location can be reached when no
// guard blocks, which holds only if every exit hangs off some island
func (o *orchestrator) checkReachability(graph *world.Graph) error {
	reachable, err := graph.ReachableLocations(world.RegionMenu, world.AllowAll)
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "failed to walk world")
	}

	total := len(o.registry.Locations())
	if len(reachable) != total {
		return errors.Internalf("only %d of %d item locations are reachable", len(reachable), total)
	}
	return nil
}

func (o *orchestrator) buildSpoiler(input *GenerateInput, result *attempt, attempts int) *entities.Spoiler {
	out := result.entrances

	connections := make([]entities.Connection, 0, len(out.Pairs))
	for _, p := range out.Pairs {
		connections = append(connections, entities.Connection{Entrance: p.Entrance, Exit: p.Exit})
	}

	opts := *input.Options

	return &entities.Spoiler{
		ID:                       o.idGen.Generate(),
		Seed:                     result.seed,
		BaseSeed:                 input.Seed,
		Attempts:                 attempts,
		Options:                  &opts,
		Connections:              connections,
		IslandsWithBannedContent: out.IslandsWithBannedContent,
		RequiredDungeons:         out.RequiredDungeons,
		BannedDungeons:           out.BannedDungeons,
		RequiredBosses:           out.RequiredBosses,
		BannedBosses:             out.BannedBosses,
		CreatedAt:                o.clock.Now(),
	}
}
