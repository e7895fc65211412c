package entrance

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/zone-rando/internal/config"
	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/registry"
)

// BannedContent is the set of exits that lead into banned objectives
type BannedContent struct {
	exits       mapset.Set[*zone.Exit]
	seedIslands []string
}

// ComputeBannedContent collects the boss arenas of banned bosses and the
// dungeon and miniboss exits of banned dungeons. When dungeon entrances stay
// vanilla, the islands of banned dungeons are known up front and returned as
// seed islands.
func ComputeBannedContent(reg *registry.Registry, opts *config.Options, obj *Objectives) (*BannedContent, error) {
	bc := &BannedContent{exits: mapset.New[*zone.Exit]()}
	if !opts.RequiredBosses || obj == nil {
		return bc, nil
	}

	for _, boss := range obj.BannedBosses {
		ex, err := reg.BossExit(boss)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown banned boss")
		}
		bc.exits.Put(ex)
	}

	for _, dungeon := range obj.BannedDungeons {
		o, err := reg.Objective(dungeon)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "unknown banned dungeon")
		}
		for _, name := range []string{o.DungeonExit, o.MinibossExit} {
			if name == "" {
				continue
			}
			ex, err := reg.Exit(name)
			if err != nil {
				return nil, errors.WrapWithCode(err, errors.CodeInternal, "objective names an unknown exit")
			}
			bc.exits.Put(ex)
		}
	}

	if !opts.RandomizeDungeonEntrances {
		for _, en := range reg.EntrancesIn(zone.CategoryDungeon) {
			if en.IsNested() {
				continue
			}
			if bc.exits.Has(reg.Vanilla(en)) {
				bc.seedIslands = append(bc.seedIslands, en.Island)
			}
		}
	}

	return bc, nil
}

// IsBanned reports whether ex leads into a banned objective
func (b *BannedContent) IsBanned(ex *zone.Exit) bool {
	return b.exits.Has(ex)
}

// HeldVanilla reports whether ex keeps its vanilla entrance. Arenas inside
// banned dungeons are never shuffled.
func (b *BannedContent) HeldVanilla(ex *zone.Exit) bool {
	if !b.IsBanned(ex) {
		return false
	}
	return ex.Category == zone.CategoryMiniboss || ex.Category == zone.CategoryBoss
}

// Size returns the number of banned exits
func (b *BannedContent) Size() int {
	return b.exits.Size()
}

// SeedIslands returns the islands known to hold banned content before
// matching starts
func (b *BannedContent) SeedIslands() []string {
	out := make([]string, len(b.seedIslands))
	copy(out, b.seedIslands)
	return out
}
