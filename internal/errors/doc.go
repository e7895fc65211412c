// Package errors provides the structured error type used across zone-rando.
//
// Every error carries a Code, a message, an optional cause and metadata. The
// randomizer only ever produces three kinds of failure, and each maps onto one
// code so callers can branch on it without string matching:
//
//   - Configuration error (CodeInvalidArgument): settings are invalid or
//     contradictory. The user must fix the settings; retrying is pointless.
//   - Placement infeasibility (CodeAborted): the greedy pass ran out of legal
//     choices for this seed. The generation pipeline may retry with a new seed.
//   - Structural consistency error (CodeInternal): the catalogue or the
//     algorithm broke an invariant (nesting cycle, XOR violation, overlapping
//     required and banned islands). Never expected in correct operation.
//
// # Basic Usage
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("invalid mix mode: %s", mode)
//	err := errors.Abortedf("no valid exits to place for entrance: %s", name)
//
// Adding metadata:
//
//	err := errors.Aborted("not enough island entrances left to split entrances").
//	    WithMeta("needed", needed).
//	    WithMeta("available", available)
//
// Wrapping errors keeps the original code:
//
//	if err := r.matchSubBatch(ctx, sub); err != nil {
//	    return errors.Wrapf(err, "failed to match batch %s", batch.Name)
//	}
//
// # Error Checking
//
//	if errors.GetCode(err).Retryable() {
//	    // try again with another seed
//	}
//
//	code := errors.GetCode(err)
//	meta := errors.GetMeta(err)
//
// # Validation Errors
//
//	vb := errors.NewValidationBuilder()
//	errors.ValidateEnum("mix_entrances", opts.MixEntrances, mixModes, vb)
//	if err := vb.Build(); err != nil {
//	    return err
//	}
package errors
