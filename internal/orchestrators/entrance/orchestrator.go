// Package entrance shuffles which destination each doorway of the Great Sea
// leads to, keeping dead-end content isolated and every destination
// reachable.
package entrance

//go:generate mockgen -destination=mock/mock_service.go -package=entrancemock github.com/KirkDiggler/zone-rando/internal/orchestrators/entrance Service
//go:generate mockgen -destination=mock/mock_collaborators.go -package=entrancemock github.com/KirkDiggler/zone-rando/internal/orchestrators/entrance LocationOracle,RegionGraph

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/zone-rando/internal/config"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/pkg/rng"
	"github.com/KirkDiggler/zone-rando/internal/registry"
)

// Service defines the interface for entrance randomization
type Service interface {
	Randomize(ctx context.Context, input *RandomizeInput) (*RandomizeOutput, error)
}

// Config holds the dependencies for the entrance orchestrator
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

// NewOrchestrator creates a new entrance orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{registry: cfg.Registry}, nil
}

// run is the state of one randomization call
type run struct {
	registry       *registry.Registry
	opts           *config.Options
	roller         dice.Roller
	assignment     *Assignment
	classifier     *Classifier
	banned         *BannedContent
	bannedDungeons mapset.Set[string]
}

// Randomize shuffles every enabled batch, then installs the resulting
// connections in the graph. Categories that are not enabled keep their
// vanilla connections.
func (o *orchestrator) Randomize(ctx context.Context, input *RandomizeInput) (*RandomizeOutput, error) {
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
	if input.Oracle == nil {
		vb.RequiredField("Oracle")
	}
	if input.Graph == nil {
		vb.RequiredField("Graph")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	opts := input.Options
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid options")
	}

	obj := input.Objectives
	if obj == nil {
		obj = &Objectives{}
	}
	if opts.RequiredBosses && len(obj.RequiredDungeons) == 0 {
		return nil, errors.InvalidArgument("required bosses mode needs selected objectives")
	}

	batches, err := SelectBatches(o.registry, opts)
	if err != nil {
		return nil, err
	}

	assignment, err := VanillaAssignment(o.registry)
	if err != nil {
		return nil, err
	}

	banned, err := ComputeBannedContent(o.registry, opts, obj)
	if err != nil {
		return nil, err
	}

	r := &run{
		registry:       o.registry,
		opts:           opts,
		roller:         input.Roller,
		assignment:     assignment,
		classifier:     NewClassifier(o.registry, input.Oracle, obj.BannedLocations),
		banned:         banned,
		bannedDungeons: mapset.New[string](),
	}
	for _, d := range obj.BannedDungeons {
		r.bannedDungeons.Put(d)
	}

	bannedIslands := mapset.New[string]()
	for _, island := range banned.SeedIslands() {
		bannedIslands.Put(island)
	}

	for _, batch := range batches {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "randomization canceled")
		}
		if err := r.randomizeBatch(batch, &bannedIslands); err != nil {
			return nil, errors.Wrapf(err, "failed to randomize batch %s", batch.Name)
		}
	}

	if err := assignment.Verify(o.registry); err != nil {
		return nil, err
	}

	if err := Finalize(o.registry, assignment, input.Graph, obj); err != nil {
		return nil, err
	}

	out := &RandomizeOutput{
		Connections:      make(map[string]string, assignment.Len()),
		Pairs:            assignment.Pairs(o.registry.Entrances()),
		RequiredBosses:   copyStrings(obj.RequiredBosses),
		BannedBosses:     copyStrings(obj.BannedBosses),
		RequiredDungeons: copyStrings(obj.RequiredDungeons),
		BannedDungeons:   copyStrings(obj.BannedDungeons),
	}
	for _, p := range out.Pairs {
		out.Connections[p.Entrance] = p.Exit
	}
	bannedIslands.Each(func(island string) {
		out.IslandsWithBannedContent = append(out.IslandsWithBannedContent, island)
	})
	sort.Strings(out.IslandsWithBannedContent)

	slog.Info("Entrances randomized",
		"batches", len(batches),
		"connections", len(out.Pairs),
		"islands_with_banned_content", out.IslandsWithBannedContent)

	return out, nil
}

// randomizeBatch releases the batch from its vanilla connections and
// matches it again, nonprogress half first
func (r *run) randomizeBatch(batch Batch, bannedIslands *mapset.Set[string]) error {
	var entrances []*zone.Entrance
	for _, en := range batch.Entrances {
		ex, ok := r.assignment.ExitFor(en)
		if ok && r.banned.HeldVanilla(ex) {
			continue
		}
		r.assignment.Release(en)
		entrances = append(entrances, en)
	}

	var exits []*zone.Exit
	for _, ex := range batch.Exits {
		if r.banned.HeldVanilla(ex) {
			continue
		}
		r.assignment.ReleaseExit(ex)
		exits = append(exits, ex)
	}

	if len(entrances) != len(exits) {
		return errors.Internalf("batch has %d entrances but %d exits", len(entrances), len(exits))
	}

	if err := rng.Shuffle(r.roller, entrances); err != nil {
		return errors.Wrap(err, "failed to shuffle entrances")
	}

	// an exit is terminal when no entrance of this batch sits inside it
	nested := mapset.New[*zone.Exit]()
	for _, en := range entrances {
		if en.IsNested() {
			nested.Put(en.NestedIn)
		}
	}
	terminal := mapset.New[*zone.Exit]()
	for _, ex := range exits {
		if !nested.Has(ex) {
			terminal.Put(ex)
		}
	}

	nonprogress, progress, err := r.split(entrances, exits)
	if err != nil {
		return err
	}

	if len(nonprogress.entrances) > 0 {
		if err := r.match(nonprogress, terminal, bannedIslands); err != nil {
			return err
		}
	}
	if err := r.match(progress, terminal, bannedIslands); err != nil {
		return err
	}

	slog.Info("Entrance batch randomized",
		"batch", batch.Name,
		"entrances", len(entrances),
		"nonprogress", len(nonprogress.entrances))

	return nil
}

func copyStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
