package main

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/zone-rando/internal/catalogue"
	"github.com/KirkDiggler/zone-rando/internal/config"
	"github.com/KirkDiggler/zone-rando/internal/entities"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/orchestrators/entrance"
	"github.com/KirkDiggler/zone-rando/internal/orchestrators/generation"
	"github.com/KirkDiggler/zone-rando/internal/orchestrators/objectives"
	"github.com/KirkDiggler/zone-rando/internal/pkg/clock"
	"github.com/KirkDiggler/zone-rando/internal/pkg/idgen"
	"github.com/KirkDiggler/zone-rando/internal/redis"
	"github.com/KirkDiggler/zone-rando/internal/registry"
	"github.com/KirkDiggler/zone-rando/internal/repositories/spoiler"
)

type generateFlags struct {
	settings       string
	seed           int64
	attempts       int
	output         string
	redisURL       string
	ttl            time.Duration
	mix            string
	all            bool
	requiredBosses bool
	numRequired    int
	noReachCheck   bool
}

func newGenerateCmd() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a seed and print its spoiler",
		Long: `Generate draws the required dungeons, shuffles the entrances and prints the
resulting spoiler as JSON. Seeds that cannot be placed are retried with the
next seed up to --attempts times.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runGenerate(ctx, cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.settings, "settings", "s", "", "YAML settings file")
	flags.Int64Var(&f.seed, "seed", 0, "base seed (random when unset)")
	flags.IntVar(&f.attempts, "attempts", generation.DefaultMaxAttempts, "seeds to try before giving up")
	flags.StringVarP(&f.output, "output", "o", "", "write the spoiler to a file instead of stdout")
	flags.StringVar(&f.redisURL, "redis-url", "", "store the spoiler in redis (redis://host:port/db)")
	flags.DurationVar(&f.ttl, "ttl", 0, "expire stored spoilers after this long")
	flags.StringVar(&f.mix, "mix", "", "separate_pools or mix_pools")
	flags.BoolVar(&f.all, "all", false, "randomize every entrance category")
	flags.BoolVar(&f.requiredBosses, "required-bosses", false, "enable required bosses mode")
	flags.IntVar(&f.numRequired, "num-required-bosses", 0, "number of required bosses")
	flags.BoolVar(&f.noReachCheck, "skip-reachability", false, "skip the final reachability walk")

	return cmd
}

// loadOptions reads the settings file, then applies any flag the user set
func loadOptions(cmd *cobra.Command, f *generateFlags) (*config.Options, error) {
	opts := config.Default()
	if f.settings != "" {
		loaded, err := config.LoadFile(f.settings)
		if err != nil {
			return nil, err
		}
		opts = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("mix") {
		opts.MixEntrances = f.mix
	}
	if flags.Changed("all") {
		for _, c := range zone.Categories() {
			opts.SetRandomizes(c, f.all)
		}
	}
	if flags.Changed("required-bosses") {
		opts.RequiredBosses = f.requiredBosses
	}
	if flags.Changed("num-required-bosses") {
		opts.NumRequiredBosses = f.numRequired
	}

	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid settings")
	}
	return opts, nil
}

func runGenerate(ctx context.Context, cmd *cobra.Command, f *generateFlags) error {
	opts, err := loadOptions(cmd, f)
	if err != nil {
		return err
	}

	seed := f.seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}

	var repo spoiler.Repository
	if f.redisURL != "" {
		var client io.Closer
		repo, client, err = newRedisRepository(f.redisURL, f.ttl)
		if err != nil {
			return err
		}
		defer closeLogged(client, "redis client")
	}

	svc, err := newGenerationService(repo)
	if err != nil {
		return err
	}

	out, err := svc.Generate(ctx, &generation.GenerateInput{
		Options:           opts,
		Seed:              seed,
		MaxAttempts:       f.attempts,
		Persist:           repo != nil,
		CheckReachability: !f.noReachCheck,
	})
	if err != nil {
		return err
	}

	if f.output == "" {
		return writeSpoiler(cmd.OutOrStdout(), out.Spoiler)
	}

	file, err := os.Create(f.output) // #nosec G304 -- path comes from the operator
	if err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to create output file")
	}

	if err := writeSpoiler(file, out.Spoiler); err != nil {
		_ = file.Close() // nolint:errcheck // the write error is the one worth reporting
		return err
	}
	if err := file.Close(); err != nil {
		return errors.Wrap(err, "failed to close output file")
	}
	return nil
}

func newRegistry() (*registry.Registry, error) {
	cat, err := catalogue.Default()
	if err != nil {
		return nil, err
	}
	return registry.New(&registry.Config{Catalogue: cat})
}

func newGenerationService(repo spoiler.Repository) (generation.Service, error) {
	reg, err := newRegistry()
	if err != nil {
		return nil, err
	}

	objectivesOrch, err := objectives.NewOrchestrator(&objectives.Config{Registry: reg})
	if err != nil {
		return nil, err
	}
	entranceOrch, err := entrance.NewOrchestrator(&entrance.Config{Registry: reg})
	if err != nil {
		return nil, err
	}

	return generation.NewOrchestrator(&generation.Config{
		Registry:    reg,
		Objectives:  objectivesOrch,
		Entrances:   entranceOrch,
		Repository:  repo,
		IDGenerator: idgen.NewUUID(idgen.RunPrefix),
		Clock:       clock.New(),
	})
}

// newRedisRepository returns the repository and the client backing it; the
// caller owns the client and must close it.
func newRedisRepository(url string, ttl time.Duration) (spoiler.Repository, io.Closer, error) {
	client, err := redis.NewClientFromURL(url)
	if err != nil {
		return nil, nil, err
	}
	repo, err := spoiler.NewRedisRepository(&spoiler.Config{Client: client, TTL: ttl})
	if err != nil {
		closeLogged(client, "redis client")
		return nil, nil, err
	}
	return repo, client, nil
}

func closeLogged(c io.Closer, what string) {
	if err := c.Close(); err != nil {
		slog.Warn("Failed to close "+what, "error", err)
	}
}

func writeSpoiler(w io.Writer, sp *entities.Spoiler) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sp); err != nil {
		return errors.Wrap(err, "failed to encode spoiler")
	}
	return nil
}
