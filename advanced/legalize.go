package advanced

import (
	"go.uber.org/zap"

	"github.com/osuushi/delaunay/geom"
)

// An edge of a triangle to check against the opposite triangle's circumcircle.
type legalizeItem struct {
	triangle *geom.Triangle
	edge     geom.Edge
}

// Restore the Delaunay property around newVertex, the vertex of each item's
// triangle that is not on the item's edge.
//
// Edges are visited depth first, in the same order a recursive formulation
// would visit them: flipping an edge queues the two new outward edges, and the
// first of them is checked before anything queued earlier.
func (t *Triangulator) legalize(newVertex *geom.Point, items ...legalizeItem) {
	budget := t.opts.flipBudget(len(t.points) + 3)
	flips := 0

	stack := make([]legalizeItem, 0, len(items)+8)
	for i := len(items) - 1; i >= 0; i-- {
		stack = append(stack, items[i])
	}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Already flipped away while handling an earlier edge
		if !t.soup.Contains(item.triangle) {
			continue
		}

		neighbour := t.soup.FindNeighbour(item.triangle, item.edge)
		if neighbour == nil || !neighbour.InCircumcircle(newVertex) {
			continue
		}

		flips++
		if flips > budget {
			fatalf(ErrNumericalDegeneracy, "legalizing around %v took more than %d edge flips", *newVertex, budget)
		}

		noneEdgeVertex := neighbour.NoneEdgeVertex(item.edge)

		t.soup.Remove(item.triangle)
		t.soup.Remove(neighbour)

		first := geom.NewTriangle(noneEdgeVertex, item.edge.A, newVertex)
		second := geom.NewTriangle(noneEdgeVertex, item.edge.B, newVertex)

		t.soup.Add(first)
		t.soup.Add(second)

		stack = append(stack,
			legalizeItem{second, geom.NewEdge(noneEdgeVertex, item.edge.B)},
			legalizeItem{first, geom.NewEdge(noneEdgeVertex, item.edge.A)},
		)
	}

	if flips > 0 {
		t.opts.Logger.Debug("legalized", zap.Stringer("vertex", *newVertex), zap.Int("flips", flips))
	}
}
