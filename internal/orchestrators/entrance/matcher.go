package entrance

import (
	"log/slog"

	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
	"github.com/KirkDiggler/zone-rando/internal/pkg/rng"
)

// match connects every entrance of the sub-batch to one of its exits.
// Entrances are processed in order, skipping those whose chain back to an
// island is not decided yet. Islands that receive a banned dungeon or boss
// are added to bannedIslands.
func (r *run) match(sub subBatch, terminal mapset.Set[*zone.Exit], bannedIslands *mapset.Set[string]) error {
	remaining := make([]*zone.Entrance, len(sub.entrances))
	copy(remaining, sub.entrances)
	exitsLeft := make([]*zone.Exit, len(sub.exits))
	copy(exitsLeft, sub.exits)

	doingBanned := false
	for _, ex := range sub.exits {
		if r.banned.IsBanned(ex) {
			doingBanned = true
			break
		}
	}

	restrictIslands := r.opts.RequiredBosses && !doingBanned
	if restrictIslands {
		// islands already holding banned content go first, before their
		// safe options are used up elsewhere
		var front, rest []*zone.Entrance
		for _, en := range remaining {
			if !en.IsNested() && bannedIslands.Has(en.Island) {
				front = append(front, en)
			} else {
				rest = append(rest, en)
			}
		}
		remaining = append(front, rest...)
	}

	for len(remaining) > 0 {
		var resolvable []*zone.Entrance
		for _, en := range remaining {
			res, err := Outermost(r.assignment, en)
			if err != nil {
				return err
			}
			if res.Resolved() {
				resolvable = append(resolvable, en)
			}
		}
		if len(resolvable) == 0 {
			return errors.Aborted("no remaining entrance is reachable from an island").
				WithMeta("remaining", len(remaining))
		}

		en := resolvable[0]
		remaining = removeEntrance(remaining, en)

		candidates := make([]*zone.Exit, len(exitsLeft))
		copy(candidates, exitsLeft)

		if len(resolvable) == 1 && len(remaining) > 0 {
			// a terminal exit here would leave nothing to reach the rest
			candidates = filterExits(candidates, func(ex *zone.Exit) bool {
				return !terminal.Has(ex)
			})
		}

		if restrictIslands && !en.IsNested() && bannedIslands.Has(en.Island) {
			candidates = filterExits(candidates, func(ex *zone.Exit) bool {
				return terminal.Has(ex) && !ex.Category.HighestValue()
			})
		}

		if len(candidates) == 0 {
			return errors.Abortedf("no valid exits to place for entrance: %s", en.Name)
		}

		ex, err := rng.Choice(r.roller, candidates)
		if err != nil {
			return errors.Wrap(err, "failed to choose exit")
		}
		exitsLeft = removeExit(exitsLeft, ex)

		if err := r.assignment.Connect(en, ex); err != nil {
			return err
		}
		slog.Debug("Entrance connected", "entrance", en.Name, "exit", ex.Name)

		if r.banned.IsBanned(ex) && ex.Category.HighestValue() {
			res, err := Outermost(r.assignment, en)
			if err != nil {
				return err
			}
			if !res.Resolved() {
				return errors.Internalf("entrance %s was placed without a path to an island", en.Name)
			}
			bannedIslands.Put(res.Entrance.Island)
		}
	}

	if len(exitsLeft) > 0 {
		return errors.Internalf("%d exits left unmatched", len(exitsLeft))
	}
	return nil
}

func removeEntrance(list []*zone.Entrance, target *zone.Entrance) []*zone.Entrance {
	out := make([]*zone.Entrance, 0, len(list))
	for _, en := range list {
		if en != target {
			out = append(out, en)
		}
	}
	return out
}

func removeExit(list []*zone.Exit, target *zone.Exit) []*zone.Exit {
	out := make([]*zone.Exit, 0, len(list))
	for _, ex := range list {
		if ex != target {
			out = append(out, ex)
		}
	}
	return out
}

func filterExits(list []*zone.Exit, keep func(*zone.Exit) bool) []*zone.Exit {
	out := list[:0]
	for _, ex := range list {
		if keep(ex) {
			out = append(out, ex)
		}
	}
	return out
}
