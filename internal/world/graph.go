// Package world holds the traversal graph of regions that entrance
// placements are installed into.
package world

import (
	"sort"

	"github.com/katalvlaran/lvlath/graph/algorithms"
	"github.com/katalvlaran/lvlath/graph/core"
	"github.com/zyedidia/generic/mapset"

	"github.com/KirkDiggler/zone-rando/internal/errors"
)

// Well-known regions
const (
	RegionMenu     = "Menu"
	RegionGreatSea = "The Great Sea"
)

// Edge is a directed, guarded connection between two regions
type Edge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Guard Guard  `json:"guard"`
}

// Graph is a directed multigraph of named regions. Regions and edges live in
// an lvlath graph; guards sit in a side table so walks can drop the edges a
// guard blocks. It is not safe for concurrent mutation.
type Graph struct {
	regions   []string
	core      *core.Graph
	guarded   map[string][]Edge
	locations map[string][]string
}

// NewGraph creates an empty graph
func NewGraph() *Graph {
	return &Graph{
		core:      core.NewGraph(true, false),
		guarded:   make(map[string][]Edge),
		locations: make(map[string][]string),
	}
}

// AddRegion adds a region
func (g *Graph) AddRegion(name string) error {
	if name == "" {
		return errors.InvalidArgument("region name is required")
	}
	if g.core.HasVertex(name) {
		return errors.AlreadyExistsf("region %q already exists", name)
	}
	g.core.AddVertex(&core.Vertex{ID: name, Metadata: map[string]interface{}{}})
	g.regions = append(g.regions, name)
	return nil
}

// HasRegion reports whether a region exists
func (g *Graph) HasRegion(name string) bool {
	return g.core.HasVertex(name)
}

// Regions returns every region in insertion order
func (g *Graph) Regions() []string {
	out := make([]string, len(g.regions))
	copy(out, g.regions)
	return out
}

// Connect adds a guarded edge from one region to another
func (g *Graph) Connect(from, to string, guard Guard) error {
	if !g.core.HasVertex(from) {
		return errors.NotFoundf("region %q not found", from)
	}
	if !g.core.HasVertex(to) {
		return errors.NotFoundf("region %q not found", to)
	}
	g.core.AddEdge(from, to, 0)
	g.guarded[from] = append(g.guarded[from], Edge{From: from, To: to, Guard: guard})
	return nil
}

// Edges returns the outgoing edges of a region
func (g *Graph) Edges(from string) []Edge {
	out := make([]Edge, len(g.guarded[from]))
	copy(out, g.guarded[from])
	return out
}

// AllEdges returns every edge, grouped by source region in insertion order
func (g *Graph) AllEdges() []Edge {
	var out []Edge
	for _, r := range g.regions {
		out = append(out, g.guarded[r]...)
	}
	return out
}

// AddLocation places an item location in a region
func (g *Graph) AddLocation(region, location string) error {
	if !g.core.HasVertex(region) {
		return errors.NotFoundf("region %q not found", region)
	}
	g.locations[region] = append(g.locations[region], location)
	return nil
}

// Locations returns the item locations held by a region
func (g *Graph) Locations(region string) []string {
	out := make([]string, len(g.locations[region]))
	copy(out, g.locations[region])
	return out
}

// Reachable walks the graph breadth first from start, following only edges
// whose guard the evaluator allows. A nil evaluator allows every edge.
func (g *Graph) Reachable(start string, eval Evaluator) (mapset.Set[string], error) {
	if !g.core.HasVertex(start) {
		return mapset.Set[string]{}, errors.NotFoundf("region %q not found", start)
	}

	walk := g.core
	if _, all := eval.(allowAll); eval != nil && !all {
		walk = g.allowed(eval)
	}

	res, err := algorithms.BFS(walk, start, nil)
	if err != nil {
		return mapset.Set[string]{}, errors.WrapWithCodef(err, errors.CodeInternal, "failed to walk from %q", start)
	}

	visited := mapset.New[string]()
	for _, v := range res.Order {
		visited.Put(v.ID)
	}
	return visited, nil
}

// allowed copies the regions and keeps only the edges eval lets through
func (g *Graph) allowed(eval Evaluator) *core.Graph {
	out := g.core.CloneEmpty()
	for _, r := range g.regions {
		for _, e := range g.guarded[r] {
			if eval.Allows(e.Guard) {
				out.AddEdge(e.From, e.To, 0)
			}
		}
	}
	return out
}

// ReachableLocations lists, sorted, the item locations in every region
// reachable from start
func (g *Graph) ReachableLocations(start string, eval Evaluator) ([]string, error) {
	regions, err := g.Reachable(start, eval)
	if err != nil {
		return nil, err
	}

	var out []string
	regions.Each(func(region string) {
		out = append(out, g.locations[region]...)
	})
	sort.Strings(out)
	return out, nil
}
