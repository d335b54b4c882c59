package netgraph

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/graph/layout"
	"gonum.org/v1/gonum/graph/simple"
)

const (
	// LayoutSeed fixes the force-directed embedding so repeated runs of
	// the same query render identically.
	LayoutSeed = 7

	// LayoutScale bounds coordinates to roughly [-4000, 4000].
	LayoutScale = 4000

	// layoutUpdates is the number of gradient descent iterations.
	layoutUpdates = 100
)

// SpringLayout computes force-directed coordinates for every node and
// stores them on the nodes, scaled to LayoutScale.
func (g *Graph) SpringLayout() {
	if g.IsEmpty() {
		return
	}

	// Map nodes onto contiguous int64 IDs for gonum.
	sg := simple.NewUndirectedGraph()
	index := make(map[string]int64, len(g.Nodes))
	for i, node := range g.Nodes {
		index[node.ID] = int64(i)
		sg.AddNode(simple.Node(int64(i)))
	}
	for _, edge := range g.Edges {
		f, t := index[edge.Source], index[edge.Target]
		if f == t {
			continue
		}
		sg.SetEdge(simple.Edge{F: simple.Node(f), T: simple.Node(t)})
	}

	eades := layout.EadesR2{
		Repulsion: 1,
		Rate:      0.05,
		Updates:   layoutUpdates,
		Theta:     0.1,
		Src:       rand.NewSource(LayoutSeed),
	}
	optimizer := layout.NewOptimizerR2(sg, eades.Update)
	for optimizer.Update() {
	}

	// Rescale so the widest coordinate lands on LayoutScale.
	maxAbs := 0.0
	coords := make([][2]float64, len(g.Nodes))
	for i, node := range g.Nodes {
		vec := optimizer.Coord2(index[node.ID])
		coords[i] = [2]float64{vec.X, vec.Y}
		maxAbs = math.Max(maxAbs, math.Max(math.Abs(vec.X), math.Abs(vec.Y)))
	}

	scale := 1.0
	if maxAbs > 0 {
		scale = LayoutScale / maxAbs
	}
	for i, node := range g.Nodes {
		node.X = coords[i][0] * scale
		node.Y = coords[i][1] * scale
	}
}
