// An incremental Delaunay triangulation package for Go.
//
// This package triangulates a set of 2D points so that no point lies inside
// the circumcircle of any triangle. The triangulation can then be edited one
// point at a time, with only the affected region of the mesh repaired. Points
// may carry a Z value, which is passed through untouched.
package delaunay

import (
	"github.com/osuushi/delaunay/advanced"
	"github.com/osuushi/delaunay/geom"
)

type Point = geom.Point
type Vector = geom.Vector
type Edge = geom.Edge
type Triangle = geom.Triangle
type Polygon = geom.Polygon

type Triangulator = advanced.Triangulator
type Options = advanced.Options

var (
	ErrInvalidInput           = advanced.ErrInvalidInput
	ErrGeometricInconsistency = advanced.ErrGeometricInconsistency
	ErrNumericalDegeneracy    = advanced.ErrNumericalDegeneracy
)

// Triangulate a set of points in one go. At least three points with distinct
// X/Y locations are required.
func Triangulate(points ...Point) ([]*Triangle, error) {
	t, err := New(points...)
	if err != nil {
		return nil, err
	}
	return t.Triangles(), nil
}

// New builds a triangulator over the points, ready for AddPoint and
// RemovePoint. Use advanced.NewTriangulator to pass Options.
func New(points ...Point) (*Triangulator, error) {
	t := advanced.NewTriangulator(points)
	if err := t.Triangulate(); err != nil {
		return nil, err
	}
	return t, nil
}
