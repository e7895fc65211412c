// Package config holds the player settings that drive a randomization run.
package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
)

// Mix modes
const (
	MixSeparatePools = "separate_pools"
	MixPools         = "mix_pools"
)

// Bounds for the number of required bosses
const (
	MinRequiredBosses = 1
	MaxRequiredBosses = 6
)

// Options are the settings consumed by the randomizer
type Options struct {
	RandomizeDungeonEntrances         bool `yaml:"randomize_dungeon_entrances"`
	RandomizeMinibossEntrances        bool `yaml:"randomize_miniboss_entrances"`
	RandomizeBossEntrances            bool `yaml:"randomize_boss_entrances"`
	RandomizeSecretCaveEntrances      bool `yaml:"randomize_secret_cave_entrances"`
	RandomizeSecretCaveInnerEntrances bool `yaml:"randomize_secret_cave_inner_entrances"`
	RandomizeFairyFountainEntrances   bool `yaml:"randomize_fairy_fountain_entrances"`

	MixEntrances string `yaml:"mix_entrances"`

	RequiredBosses    bool     `yaml:"required_bosses"`
	NumRequiredBosses int      `yaml:"num_required_bosses"`
	IncludedDungeons  []string `yaml:"included_dungeons,omitempty"`
	ExcludedDungeons  []string `yaml:"excluded_dungeons,omitempty"`
	PriorityLocations []string `yaml:"priority_locations,omitempty"`
	ExcludedLocations []string `yaml:"excluded_locations,omitempty"`

	ProgressionDungeons            bool `yaml:"progression_dungeons"`
	ProgressionTingleChests        bool `yaml:"progression_tingle_chests"`
	ProgressionDungeonSecrets      bool `yaml:"progression_dungeon_secrets"`
	ProgressionPuzzleSecretCaves   bool `yaml:"progression_puzzle_secret_caves"`
	ProgressionCombatSecretCaves   bool `yaml:"progression_combat_secret_caves"`
	ProgressionSavageLabyrinth     bool `yaml:"progression_savage_labyrinth"`
	ProgressionGreatFairies        bool `yaml:"progression_great_fairies"`
	ProgressionShortSidequests     bool `yaml:"progression_short_sidequests"`
	ProgressionLongSidequests      bool `yaml:"progression_long_sidequests"`
	ProgressionExpensivePurchases  bool `yaml:"progression_expensive_purchases"`
	ProgressionBigOctosAndGunboats bool `yaml:"progression_big_octos_gunboats"`
}

// Default returns the settings a fresh run starts from
func Default() *Options {
	return &Options{
		MixEntrances:                 MixSeparatePools,
		NumRequiredBosses:            4,
		ProgressionDungeons:          true,
		ProgressionPuzzleSecretCaves: true,
		ProgressionCombatSecretCaves: true,
		ProgressionGreatFairies:      true,
	}
}

// Load decodes settings from YAML on top of the defaults. Unknown keys are
// rejected.
func Load(r io.Reader) (*Options, error) {
	opts := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(opts); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode settings")
	}

	return opts, nil
}

// LoadFile reads settings from a YAML file
func LoadFile(path string) (*Options, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read settings file")
	}
	return Load(bytes.NewReader(data))
}

// Encode writes the settings as YAML
func (o *Options) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(o); err != nil {
		return errors.Wrap(err, "failed to encode settings")
	}
	return enc.Close()
}

// Validate rejects invalid or contradictory settings
func (o *Options) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("mix_entrances", o.MixEntrances, []string{MixSeparatePools, MixPools}, vb)

	if o.RequiredBosses {
		if !o.ProgressionDungeons {
			vb.Field("required_bosses", "cannot make bosses required when progression dungeons are disabled")
		}
		errors.ValidateRange("num_required_bosses", o.NumRequiredBosses, MinRequiredBosses, MaxRequiredBosses, vb)
		errors.ValidateDisjoint("excluded_dungeons", o.IncludedDungeons, o.ExcludedDungeons, vb)
	}

	return vb.Build()
}

// Randomizes reports whether entrances of a category are shuffled
func (o *Options) Randomizes(category zone.Category) bool {
	switch category {
	case zone.CategoryDungeon:
		return o.RandomizeDungeonEntrances
	case zone.CategoryMiniboss:
		return o.RandomizeMinibossEntrances
	case zone.CategoryBoss:
		return o.RandomizeBossEntrances
	case zone.CategorySecretCave:
		return o.RandomizeSecretCaveEntrances
	case zone.CategorySecretCaveInner:
		return o.RandomizeSecretCaveInnerEntrances
	case zone.CategoryFairyFountain:
		return o.RandomizeFairyFountainEntrances
	default:
		return false
	}
}

// SetRandomizes toggles randomization for a category
func (o *Options) SetRandomizes(category zone.Category, on bool) {
	switch category {
	case zone.CategoryDungeon:
		o.RandomizeDungeonEntrances = on
	case zone.CategoryMiniboss:
		o.RandomizeMinibossEntrances = on
	case zone.CategoryBoss:
		o.RandomizeBossEntrances = on
	case zone.CategorySecretCave:
		o.RandomizeSecretCaveEntrances = on
	case zone.CategorySecretCaveInner:
		o.RandomizeSecretCaveInnerEntrances = on
	case zone.CategoryFairyFountain:
		o.RandomizeFairyFountainEntrances = on
	}
}

// RandomizesAny reports whether at least one category is shuffled
func (o *Options) RandomizesAny() bool {
	for _, c := range zone.Categories() {
		if o.Randomizes(c) {
			return true
		}
	}
	return false
}
