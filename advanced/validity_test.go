package advanced

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"sort"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/delaunay/geom"
)

// Helper to check that a triangulation of a point set is a valid Delaunay
// triangulation. The rules are:
// 1. No triangle has zero area.
// 2. The set of vertices of the triangles equals the point set.
// 3. No two triangles overlap: an edge shared by two triangles has them on
//    opposite sides, no edge has more than two, and an edge with only one
//    lies on the hull boundary.
// 4. The triangles tile the convex hull of the points, so their areas sum to
//    the hull's area.
// 5. The triangle count is 2n - 2 - h, where h counts the points on the hull
//    boundary.
// 6. No point lies strictly inside the circumcircle of any triangle.
//
// Rule 6 uses a relative tolerance so that cocircular input does not fail on
// rounding noise.
func AssertValidDelaunay(t *testing.T, points []geom.Point, triangles []*geom.Triangle) {
	t.Helper()

	vertices := make(map[geom.Point]struct{})
	var area float64
	for _, tri := range triangles {
		require.NotZero(t, tri.SignedArea(), "degenerate triangle %s", pretty.Sprint(tri))
		area += tri.Area()
		for _, v := range []*geom.Point{tri.A, tri.B, tri.C} {
			vertices[*v] = struct{}{}
		}
	}

	expected := make(map[geom.Point]struct{}, len(points))
	for _, p := range points {
		expected[p] = struct{}{}
	}
	require.Equal(t, expected, vertices, "vertices of the triangles must equal the point set")

	hull := convexHull(points)
	assertNoOverlaps(t, triangles, hull)

	hullArea := polygonArea(hull)
	require.InDelta(t, hullArea, area, 1e-9*math.Max(1, hullArea), "triangles must tile the convex hull")

	h := countOnBoundary(points, hull)
	require.Len(t, triangles, 2*len(points)-2-h, "triangle count for %d points with %d on the hull", len(points), h)

	assertEmptyCircumcircles(t, points, triangles)
}

type edgeKey [2]geom.Point

func newEdgeKey(a, b geom.Point) edgeKey {
	if a.X < b.X || (a.X == b.X && (a.Y < b.Y || (a.Y == b.Y && a.Z < b.Z))) {
		return edgeKey{a, b}
	}
	return edgeKey{b, a}
}

// Which side of the line through the edge p falls on: 1, -1, or 0 on the line.
func (e edgeKey) side(p geom.Point) float64 {
	a, b := e[0], e[1]
	return geom.Signum((b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X))
}

func assertNoOverlaps(t *testing.T, triangles []*geom.Triangle, hull []geom.Point) {
	t.Helper()

	opposite := make(map[edgeKey][]geom.Point)
	for _, tri := range triangles {
		for _, edge := range tri.Edges() {
			key := newEdgeKey(*edge.A, *edge.B)
			opposite[key] = append(opposite[key], *tri.NoneEdgeVertex(edge))
		}
	}

	for key, vertices := range opposite {
		switch len(vertices) {
		case 1:
			require.True(t, onHullBoundary(key, hull), "edge %s has one triangle but is not on the hull", pretty.Sprint(key))
		case 2:
			require.Equal(t, -key.side(vertices[0]), key.side(vertices[1]),
				"triangles on edge %s overlap: %s", pretty.Sprint(key), pretty.Sprint(vertices))
		default:
			require.Fail(t, "edge shared by too many triangles", "edge %s is shared by %d triangles", pretty.Sprint(key), len(vertices))
		}
	}
}

// Both endpoints on the same hull edge.
func onHullBoundary(key edgeKey, hull []geom.Point) bool {
	for j := range hull {
		a, b := hull[j], hull[(j+1)%len(hull)]
		edge := geom.NewEdge(&a, &b)
		tolerance := 1e-9 * math.Max(1, edge.Length())
		if edge.Distance(&key[0]) <= tolerance && edge.Distance(&key[1]) <= tolerance {
			return true
		}
	}
	return false
}

func assertEmptyCircumcircles(t *testing.T, points []geom.Point, triangles []*geom.Triangle) {
	t.Helper()
	for _, tri := range triangles {
		center, radius := circumcircle(tri)
		for _, p := range points {
			if p == *tri.A || p == *tri.B || p == *tri.C {
				continue
			}
			distance := math.Hypot(p.X-center.X, p.Y-center.Y)
			require.GreaterOrEqual(t, distance, radius*(1-1e-9),
				"point %v is inside the circumcircle of %s", p, pretty.Sprint(tri))
		}
	}
}

func circumcircle(tri *geom.Triangle) (geom.Point, float64) {
	a, b, c := tri.A, tri.B, tri.C
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	aa := a.X*a.X + a.Y*a.Y
	bb := b.X*b.X + b.Y*b.Y
	cc := c.X*c.X + c.Y*c.Y
	center := geom.Point{
		X: (aa*(b.Y-c.Y) + bb*(c.Y-a.Y) + cc*(a.Y-b.Y)) / d,
		Y: (aa*(c.X-b.X) + bb*(a.X-c.X) + cc*(b.X-a.X)) / d,
	}
	return center, math.Hypot(a.X-center.X, a.Y-center.Y)
}

// Andrew's monotone chain, dropping collinear points. The result is CCW.
func convexHull(points []geom.Point) []geom.Point {
	sorted := append([]geom.Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	if len(sorted) < 3 {
		return sorted
	}

	cross := func(o, a, b geom.Point) float64 {
		return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
	}

	hull := make([]geom.Point, 0, 2*len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func polygonArea(ring []geom.Point) float64 {
	pointers := make([]*geom.Point, len(ring))
	for i := range ring {
		pointers[i] = &ring[i]
	}
	return geom.NewPolygon(pointers...).Area()
}

// Count points lying on the hull boundary, hull vertices included.
func countOnBoundary(points []geom.Point, hull []geom.Point) int {
	count := 0
	for i := range points {
		p := &points[i]
		for j := range hull {
			a, b := hull[j], hull[(j+1)%len(hull)]
			edge := geom.NewEdge(&a, &b)
			if edge.Distance(p) <= 1e-9*math.Max(1, edge.Length()) {
				count++
				break
			}
		}
	}
	return count
}
