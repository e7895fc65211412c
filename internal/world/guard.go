package world

import (
	"strings"
)

// GuardKind selects how a guard is evaluated
type GuardKind int

// Guard kinds
const (
	GuardAlways GuardKind = iota
	GuardCanAccess
)

// Guard is the condition on a traversal edge. Guards are plain data and are
// evaluated by whoever walks the graph.
type Guard struct {
	Kind GuardKind
	// Region is the region whose reachability the guard requires
	Region string
}

// Always returns a guard that never blocks
func Always() Guard {
	return Guard{Kind: GuardAlways}
}

// CanAccess returns a guard that requires the current state to be able to
// reach region
func CanAccess(region string) Guard {
	return Guard{Kind: GuardCanAccess, Region: region}
}

// RuleName returns the logic macro name for the guard, e.g.
// "can_access_secret_cave_entrance_on_birds_peak_rock"
func (g Guard) RuleName() string {
	if g.Kind == GuardAlways {
		return "always"
	}
	name := strings.ToLower(g.Region)
	name = strings.ReplaceAll(name, "'", "")
	name = strings.ReplaceAll(name, " ", "_")
	return "can_access_" + name
}

func (g Guard) String() string {
	return g.RuleName()
}

// Evaluator decides whether a guard passes for some collected-item state
type Evaluator interface {
	Allows(g Guard) bool
}

// EvaluatorFunc adapts a function to Evaluator
type EvaluatorFunc func(g Guard) bool

// Allows implements Evaluator
func (f EvaluatorFunc) Allows(g Guard) bool { return f(g) }

type allowAll struct{}

func (allowAll) Allows(Guard) bool { return true }

// AllowAll passes every guard. Useful to check plain connectivity.
var AllowAll Evaluator = allowAll{}
