package geom

import (
	"fmt"
	"math"
)

// Edge is stored as an ordered pair, but every comparison treats (A, B) and
// (B, A) as the same edge. Endpoints are compared by identity.
type Edge struct {
	A, B *Point
}

func NewEdge(a, b *Point) Edge {
	return Edge{A: a, B: b}
}

func (e Edge) Has(p *Point) bool {
	return e.A == p || e.B == p
}

func (e Edge) Same(other Edge) bool {
	return (e.A == other.A && e.B == other.B) || (e.A == other.B && e.B == other.A)
}

// Length in the plane. Z plays no part in the mesh.
func (e Edge) Length() float64 {
	return math.Hypot(e.B.X-e.A.X, e.B.Y-e.A.Y)
}

// ClosestPoint projects p onto the segment in the plane, clamping to the
// endpoints. Z is interpolated along the segment.
func (e Edge) ClosestPoint(p *Point) Point {
	ab := NewVector(*e.A, *e.B)
	lengthSquared := ab.Dot(ab)
	if lengthSquared == 0 {
		return *e.A
	}
	t := NewVector(*e.A, *p).Dot(ab) / lengthSquared
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return e.A.Add(ab.Mult(t))
}

// Distance from p to the closest point of the segment, in the plane.
func (e Edge) Distance(p *Point) float64 {
	closest := e.ClosestPoint(p)
	return math.Hypot(p.X-closest.X, p.Y-closest.Y)
}

func (e Edge) String() string {
	return fmt.Sprintf("%v-%v", *e.A, *e.B)
}

// EdgeDistance pairs an edge with its distance to some query point.
type EdgeDistance struct {
	Edge     Edge
	Distance float64
}
