package geom

import "fmt"

// Triangle holds three vertices in an arbitrary but consistent winding.
// Orientation is never cached; predicates that depend on it recompute it.
type Triangle struct {
	A, B, C *Point
}

func NewTriangle(a, b, c *Point) *Triangle {
	return &Triangle{A: a, B: b, C: c}
}

// Contains tests the point against the three edge half planes (Real-Time
// Collision Detection, 5.4.2). Zero cross products only match other zeros, so a
// point lying exactly on an edge is not contained by either triangle sharing
// that edge. Insertion relies on this to route such points to the on-edge case.
func (t *Triangle) Contains(p *Point) bool {
	pab := NewVector(*p, *t.A).PseudoCross(NewVector(*t.B, *t.A))
	pbc := NewVector(*p, *t.B).PseudoCross(NewVector(*t.C, *t.B))

	if Signum(pab) != Signum(pbc) {
		return false
	}

	pca := NewVector(*p, *t.C).PseudoCross(NewVector(*t.A, *t.C))
	return Signum(pab) == Signum(pca)
}

// StrictlyContains is like Contains, but also rejects points on the boundary
// and points of a degenerate triangle.
func (t *Triangle) StrictlyContains(p *Point) bool {
	pab := NewVector(*p, *t.A).PseudoCross(NewVector(*t.B, *t.A))
	if pab == 0 {
		return false
	}
	return t.Contains(p)
}

// InCircumcircle evaluates the lifted paraboloid determinant with every vertex
// translated so that p is the origin. For a CCW triangle a positive
// determinant means p is strictly inside the circle; a CW triangle flips the
// sign. Points exactly on the circle are reported as outside.
func (t *Triangle) InCircumcircle(p *Point) bool {
	a11 := t.A.X - p.X
	a21 := t.B.X - p.X
	a31 := t.C.X - p.X

	a12 := t.A.Y - p.Y
	a22 := t.B.Y - p.Y
	a32 := t.C.Y - p.Y

	a13 := a11*a11 + a12*a12
	a23 := a21*a21 + a22*a22
	a33 := a31*a31 + a32*a32

	det := a11*a22*a33 + a12*a23*a31 + a13*a21*a32 - a13*a22*a31 - a12*a21*a33 - a11*a23*a32

	if t.IsCCW() {
		return det > 0
	}
	return det < 0
}

// IsCCW is true when C lies strictly to the left of the directed line AB.
func (t *Triangle) IsCCW() bool {
	a11 := t.A.X - t.C.X
	a21 := t.B.X - t.C.X

	a12 := t.A.Y - t.C.Y
	a22 := t.B.Y - t.C.Y

	return a11*a22-a12*a21 > 0
}

// SignedArea is positive for CCW triangles and negative for CW ones.
func (t *Triangle) SignedArea() float64 {
	return 0.5 * NewVector(*t.A, *t.B).PseudoCross(NewVector(*t.A, *t.C))
}

func (t *Triangle) Area() float64 {
	return Abs(t.SignedArea())
}

func (t *Triangle) Centroid() Point {
	return Point{
		X: (t.A.X + t.B.X + t.C.X) / 3,
		Y: (t.A.Y + t.B.Y + t.C.Y) / 3,
		Z: (t.A.Z + t.B.Z + t.C.Z) / 3,
	}
}

// IsNeighbour reports whether both endpoints of the edge are vertices of the
// triangle, i.e. whether the triangle is one of the faces incident to it.
func (t *Triangle) IsNeighbour(e Edge) bool {
	return t.HasVertex(e.A) && t.HasVertex(e.B)
}

// NoneEdgeVertex returns the vertex opposite to the edge, or nil if the edge
// does not belong to the triangle.
func (t *Triangle) NoneEdgeVertex(e Edge) *Point {
	switch {
	case !e.Has(t.A):
		return t.A
	case !e.Has(t.B):
		return t.B
	case !e.Has(t.C):
		return t.C
	}
	return nil
}

func (t *Triangle) HasVertex(p *Point) bool {
	return t.A == p || t.B == p || t.C == p
}

func (t *Triangle) PointSet() PointSet {
	return PointSet{t.A: {}, t.B: {}, t.C: {}}
}

// Edges in enumeration order a-b, b-c, c-a.
func (t *Triangle) Edges() [3]Edge {
	return [3]Edge{NewEdge(t.A, t.B), NewEdge(t.B, t.C), NewEdge(t.C, t.A)}
}

// NearestEdge returns the edge closest to p. Ties go to the earlier edge in
// a-b, b-c, c-a order.
func (t *Triangle) NearestEdge(p *Point) EdgeDistance {
	var nearest EdgeDistance
	for i, edge := range t.Edges() {
		distance := edge.Distance(p)
		if i == 0 || distance < nearest.Distance {
			nearest = EdgeDistance{Edge: edge, Distance: distance}
		}
	}
	return nearest
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle[%v, %v, %v]", *t.A, *t.B, *t.C)
}
