package geom

import "fmt"

// Point is a location in the plane. Z is carried along but never takes part in
// any of the planar predicates.
//
// Mesh structures always hold *Point. Two points with equal coordinates are the
// same logical point, but inside a mesh only pointer identity decides whether a
// vertex "is" a given point. Whoever owns the mesh must make sure that a single
// canonical pointer exists for every coordinate triple.
type Point struct {
	X, Y, Z float64
}

func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y, Z: p.Z + v.Z}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g)", p.X, p.Y, p.Z)
}

// PointSet is keyed by pointer, so it answers "is this exact vertex present",
// not "is there a vertex at these coordinates".
type PointSet map[*Point]struct{}

func (s PointSet) Add(p *Point) {
	s[p] = struct{}{}
}

func (s PointSet) Contains(p *Point) bool {
	_, ok := s[p]
	return ok
}

func (s PointSet) Equals(other PointSet) bool {
	if len(s) != len(other) {
		return false
	}
	for p := range s {
		if !other.Contains(p) {
			return false
		}
	}
	return true
}
