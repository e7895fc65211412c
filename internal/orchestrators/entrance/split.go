package entrance

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/zone-rando/internal/entities/zone"
	"github.com/KirkDiggler/zone-rando/internal/errors"
)

// subBatch is one half of a split batch
type subBatch struct {
	entrances []*zone.Entrance
	exits     []*zone.Exit
}

// split separates the exits that can never lead to progress, together with
// an equal number of entrances, so the two halves can be matched on their
// own. Entrances must already be shuffled; island entrances are taken from
// the front to fill the nonprogress side.
func (r *run) split(entrances []*zone.Entrance, exits []*zone.Exit) (nonprogress, progress subBatch, err error) {
	inBatch := mapset.New[*zone.Exit]()
	for _, ex := range exits {
		inBatch.Put(ex)
	}

	nonprogressExits := mapset.New[*zone.Exit]()
	for _, ex := range exits {
		isProgress, err := r.classifier.IsProgress(ex)
		if err != nil {
			return subBatch{}, subBatch{}, err
		}
		if !isProgress {
			nonprogress.exits = append(nonprogress.exits, ex)
			nonprogressExits.Put(ex)
		}
	}

	for _, en := range entrances {
		if !en.IsNested() {
			continue
		}
		if nonprogressExits.Has(en.NestedIn) {
			nonprogress.entrances = append(nonprogress.entrances, en)
			continue
		}
		if inBatch.Has(en.NestedIn) {
			continue
		}
		// the containing exit is not shuffled here but may still be dead content
		parentProgress, err := r.classifier.IsProgress(en.NestedIn)
		if err != nil {
			return subBatch{}, subBatch{}, err
		}
		if !parentProgress {
			nonprogress.entrances = append(nonprogress.entrances, en)
		}
	}

	var candidates []*zone.Entrance
	for _, en := range entrances {
		if en.IsNested() {
			continue
		}
		// objective doorways are never picked at random for the nonprogress side
		if en.IsObjectiveDoorway() {
			if !r.objectiveDoorwayIsProgress(en) {
				nonprogress.entrances = append(nonprogress.entrances, en)
			}
			continue
		}
		candidates = append(candidates, en)
	}

	needed := len(nonprogress.exits) - len(nonprogress.entrances)
	if needed > len(candidates) {
		return subBatch{}, subBatch{}, errors.Aborted("not enough island entrances left to split entrances").
			WithMeta("needed", needed).
			WithMeta("available", len(candidates))
	}
	if needed > 0 {
		nonprogress.entrances = append(nonprogress.entrances, candidates[:needed]...)
	}

	if len(nonprogress.entrances) != len(nonprogress.exits) {
		return subBatch{}, subBatch{}, errors.Internalf("split produced %d nonprogress entrances for %d nonprogress exits",
			len(nonprogress.entrances), len(nonprogress.exits))
	}

	claimed := mapset.New[*zone.Entrance]()
	for _, en := range nonprogress.entrances {
		claimed.Put(en)
	}
	for _, en := range entrances {
		if !claimed.Has(en) {
			progress.entrances = append(progress.entrances, en)
		}
	}
	for _, ex := range exits {
		if !nonprogressExits.Has(ex) {
			progress.exits = append(progress.exits, ex)
		}
	}

	return nonprogress, progress, nil
}

// objectiveDoorwayIsProgress reports whether the boss behind an island
// doorway can matter on this seed
func (r *run) objectiveDoorwayIsProgress(en *zone.Entrance) bool {
	if !r.opts.ProgressionDungeons {
		return false
	}
	return !r.bannedDungeons.Has(en.Objective)
}
