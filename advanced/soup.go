package advanced

import (
	"fmt"
	"strings"

	"github.com/osuushi/delaunay/geom"
)

// TriangleSoup is an unindexed bag of triangles. Every query is a linear scan
// in insertion order, which makes "first match" results deterministic. Each
// triangle is its own identity: two triangles with the same vertices are still
// distinct members, and removal is by pointer.
type TriangleSoup struct {
	triangles []*geom.Triangle
	members   map[*geom.Triangle]struct{}
}

func NewTriangleSoup(triangles ...*geom.Triangle) *TriangleSoup {
	s := &TriangleSoup{members: make(map[*geom.Triangle]struct{})}
	s.AddAll(triangles)
	return s
}

func (s *TriangleSoup) Add(t *geom.Triangle) {
	if s.Contains(t) {
		return
	}
	s.triangles = append(s.triangles, t)
	s.members[t] = struct{}{}
}

func (s *TriangleSoup) AddAll(triangles []*geom.Triangle) {
	for _, t := range triangles {
		s.Add(t)
	}
}

// Remove drops the triangle, keeping the order of the remaining ones.
func (s *TriangleSoup) Remove(t *geom.Triangle) {
	if !s.Contains(t) {
		return
	}
	delete(s.members, t)
	for i, member := range s.triangles {
		if member == t {
			s.triangles = append(s.triangles[:i], s.triangles[i+1:]...)
			return
		}
	}
}

func (s *TriangleSoup) RemoveAll(triangles []*geom.Triangle) {
	doomed := make(map[*geom.Triangle]struct{}, len(triangles))
	for _, t := range triangles {
		doomed[t] = struct{}{}
	}
	s.removeWhere(func(t *geom.Triangle) bool {
		_, ok := doomed[t]
		return ok
	})
}

// RemoveTrianglesUsing drops every triangle with the given vertex.
func (s *TriangleSoup) RemoveTrianglesUsing(vertex *geom.Point) {
	s.removeWhere(func(t *geom.Triangle) bool {
		return t.HasVertex(vertex)
	})
}

func (s *TriangleSoup) removeWhere(predicate func(*geom.Triangle) bool) {
	kept := s.triangles[:0]
	for _, t := range s.triangles {
		if predicate(t) {
			delete(s.members, t)
			continue
		}
		kept = append(kept, t)
	}
	// Clear the tail so dropped triangles can be collected
	for i := len(kept); i < len(s.triangles); i++ {
		s.triangles[i] = nil
	}
	s.triangles = kept
}

func (s *TriangleSoup) Contains(t *geom.Triangle) bool {
	_, ok := s.members[t]
	return ok
}

func (s *TriangleSoup) Len() int {
	return len(s.triangles)
}

// Triangles returns a copy of the member list, in soup order.
func (s *TriangleSoup) Triangles() []*geom.Triangle {
	return append([]*geom.Triangle(nil), s.triangles...)
}

// Clone makes a soup holding the same triangle pointers. Mutating one soup
// does not affect the other.
func (s *TriangleSoup) Clone() *TriangleSoup {
	return NewTriangleSoup(s.triangles...)
}

// FindContainingTriangle returns the first triangle containing the point, or
// nil. Points exactly on an edge are contained by no triangle.
func (s *TriangleSoup) FindContainingTriangle(p *geom.Point) *geom.Triangle {
	for _, t := range s.triangles {
		if t.Contains(p) {
			return t
		}
	}
	return nil
}

// FindNeighbour returns the other triangle incident to the edge, or nil when
// the edge is on the boundary of the soup.
func (s *TriangleSoup) FindNeighbour(triangle *geom.Triangle, edge geom.Edge) *geom.Triangle {
	for _, t := range s.triangles {
		if t != triangle && t.IsNeighbour(edge) {
			return t
		}
	}
	return nil
}

// FindOneTriangleSharing returns the first triangle incident to the edge. Use
// FindNeighbour on the result to get the other one.
func (s *TriangleSoup) FindOneTriangleSharing(edge geom.Edge) *geom.Triangle {
	for _, t := range s.triangles {
		if t.IsNeighbour(edge) {
			return t
		}
	}
	return nil
}

// FindNearestEdge returns the edge of the soup closest to the point. The
// boolean is false only for an empty soup.
func (s *TriangleSoup) FindNearestEdge(p *geom.Point) (geom.EdgeDistance, bool) {
	var nearest geom.EdgeDistance
	for i, t := range s.triangles {
		candidate := t.NearestEdge(p)
		if i == 0 || candidate.Distance < nearest.Distance {
			nearest = candidate
		}
	}
	return nearest, len(s.triangles) > 0
}

// FindVertexTriangles returns the star of the vertex.
func (s *TriangleSoup) FindVertexTriangles(p *geom.Point) []*geom.Triangle {
	var star []*geom.Triangle
	for _, t := range s.triangles {
		if t.HasVertex(p) {
			star = append(star, t)
		}
	}
	return star
}

func (s *TriangleSoup) String() string {
	return dbgSoupString(s, nil)
}

func dbgSoupString(s *TriangleSoup, sentinel *geom.Triangle) string {
	names := make([]string, len(s.triangles))
	for i, t := range s.triangles {
		names[i] = DbgTriangleName(t, sentinel)
	}
	return fmt.Sprintf("TriangleSoup (%d) [%s]", len(s.triangles), strings.Join(names, ", "))
}
