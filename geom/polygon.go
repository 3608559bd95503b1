package geom

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Polygon is an ordered ring of points. The closing edge from the last point
// back to the first is implicit.
type Polygon struct {
	Points []*Point
}

func NewPolygon(points ...*Point) Polygon {
	return Polygon{Points: points}
}

// IsInside counts crossings of a ray cast from p in the +X direction. Each
// edge spans the half-open height range (min, max], so a ray through a vertex
// counts one of the two edges meeting there and horizontal edges never count.
// Points exactly on an edge may go either way.
func (poly Polygon) IsInside(p *Point) bool {
	crossings := 0
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		if (vertex.Y > p.Y) == (next.Y > p.Y) {
			continue
		}
		x := (p.Y-vertex.Y)*(next.X-vertex.X)/(next.Y-vertex.Y) + vertex.X
		if x > p.X {
			crossings++
		}
	}
	return crossings%2 == 1
}

// SignedArea by the shoelace formula. Positive for CCW rings.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for i, vertex := range poly.Points {
		next := poly.Points[CircularIndex(i+1, len(poly.Points))]
		sum += vertex.X*next.Y - next.X*vertex.Y
	}
	return sum / 2
}

func (poly Polygon) Area() float64 {
	return Abs(poly.SignedArea())
}

// Edges returns the ring's edges, including the closing one.
func (poly Polygon) Edges() []Edge {
	edges := make([]Edge, len(poly.Points))
	for i, vertex := range poly.Points {
		edges[i] = NewEdge(vertex, poly.Points[CircularIndex(i+1, len(poly.Points))])
	}
	return edges
}

// HasEdge reports whether the segment between the two vertices is one of the
// ring's edges, in either direction.
func (poly Polygon) HasEdge(e Edge) bool {
	for _, edge := range poly.Edges() {
		if edge.Same(e) {
			return true
		}
	}
	return false
}

func (poly Polygon) Rect() r2.Rect {
	rect := r2.EmptyRect()
	for _, p := range poly.Points {
		rect = rect.AddPoint(r2.Point{X: p.X, Y: p.Y})
	}
	return rect
}

// Bound is the polygon's bounding box snapped outward to a grid of the given
// resolution.
func (poly Polygon) Bound(resolution int) (Bound, error) {
	if resolution <= 0 {
		return Bound{}, errors.Errorf("resolution must be positive, got %d", resolution)
	}
	if len(poly.Points) == 0 {
		return Bound{}, errors.New("cannot bound an empty polygon")
	}
	rect := poly.Rect()
	return AdjustBound(rect.X.Lo, rect.Y.Hi, rect.X.Hi, rect.Y.Lo, resolution), nil
}
