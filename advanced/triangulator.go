package advanced

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/osuushi/delaunay/geom"
)

// Triangulator incrementally maintains a Delaunay triangulation of a 2D point
// set.
//
// A triangulator is either empty (no super triangle yet) or built. Triangulate
// always rebuilds from scratch and leaves it built. AddPoint and RemovePoint
// repair the mesh locally once it is built.
//
// The mesh lives inside an oversized sentinel "super triangle" so that every
// input point always falls inside some triangle. The sentinel stays in the
// soup across incremental edits and is filtered out of Triangles().
//
// Every logical point is interned as a single *geom.Point. Triangles refer to
// vertices by pointer, so "same vertex" is pointer identity, while membership
// in the point set is by value.
//
// A Triangulator is not safe for concurrent use.
type Triangulator struct {
	points []*geom.Point // Insertion order
	index  map[geom.Point]*geom.Point
	planar map[r2.Point]*geom.Point

	soup          *TriangleSoup
	superTriangle *geom.Triangle

	opts Options
}

// NewTriangulator creates an empty triangulator over the points. Duplicate
// values collapse into one point. Call Triangulate to build the mesh.
func NewTriangulator(points []geom.Point, opts ...Options) *Triangulator {
	o := DefaultOptions()
	if len(opts) > 0 {
		o = opts[0].withDefaults()
	}
	t := &Triangulator{
		index:  make(map[geom.Point]*geom.Point, len(points)),
		planar: make(map[r2.Point]*geom.Point, len(points)),
		soup:   NewTriangleSoup(),
		opts:   o,
	}
	for _, p := range points {
		t.intern(p)
	}
	return t
}

// Triangulate discards any existing mesh and rebuilds it from the point set.
func (t *Triangulator) Triangulate() error {
	return t.transact(func() error {
		t.triangulate()
		return nil
	})
}

// AddPoint inserts a point into the triangulation. Adding a point that is
// already present is a no-op.
//
// Until the set holds three points there is nothing to triangulate; the point
// is kept and ErrInvalidInput is returned. Reaching three points triggers a
// full build, as does a point outside the current super triangle. Otherwise
// the mesh is repaired locally.
func (t *Triangulator) AddPoint(point geom.Point) error {
	if _, ok := t.index[point]; ok {
		return nil
	}
	if !isFinite(point) {
		return errors.Wrapf(ErrInvalidInput, "point %v has non-finite coordinates", point)
	}
	if existing, ok := t.planar[planarKey(point)]; ok {
		return errors.Wrapf(ErrInvalidInput, "point %v coincides in the plane with %v", point, *existing)
	}

	return t.transact(func() error {
		p := t.intern(point)
		switch {
		case len(t.points) < 3:
			return errors.Wrapf(ErrInvalidInput, "need at least three points to triangulate, have %d", len(t.points))
		case len(t.points) == 3 || t.superTriangle == nil:
			t.triangulate()
		case !t.superTriangle.StrictlyContains(p):
			t.opts.Logger.Debug("point escapes the super triangle, rebuilding", zap.Stringer("point", point))
			t.triangulate()
		default:
			t.insertOnePoint(p)
		}
		return nil
	})
}

// RemovePoint deletes a point and retriangulates the hole it leaves behind.
func (t *Triangulator) RemovePoint(point geom.Point) error {
	p, ok := t.index[point]
	if !ok {
		return errors.Wrapf(ErrInvalidInput, "point %v is not in the point set", point)
	}

	return t.transact(func() error {
		if t.superTriangle == nil {
			t.forget(p)
			return nil
		}
		t.removePoint(p)
		return nil
	})
}

// Triangles returns a snapshot of the mesh without the triangles touching the
// super triangle. It returns nil until the triangulator is built.
func (t *Triangulator) Triangles() []*geom.Triangle {
	if t.superTriangle == nil {
		return nil
	}
	view := t.soup.Clone()
	view.RemoveTrianglesUsing(t.superTriangle.A)
	view.RemoveTrianglesUsing(t.superTriangle.B)
	view.RemoveTrianglesUsing(t.superTriangle.C)
	return view.Triangles()
}

// PointSet returns the points in insertion order. The sentinel's vertices are
// never part of it.
func (t *Triangulator) PointSet() []geom.Point {
	points := make([]geom.Point, len(t.points))
	for i, p := range t.points {
		points[i] = *p
	}
	return points
}

func (t *Triangulator) Contains(point geom.Point) bool {
	_, ok := t.index[point]
	return ok
}

func (t *Triangulator) Len() int {
	return len(t.points)
}

func (t *Triangulator) IsBuilt() bool {
	return t.superTriangle != nil
}

func (t *Triangulator) String() string {
	return dbgSoupString(t.soup, t.superTriangle)
}

// Mutations

// Run a mutation so that it either completes or leaves the triangulator as it
// was. Only failures raised through fatalf roll back; an error returned by fn
// is passed through with whatever fn already changed.
func (t *Triangulator) transact(fn func() error) (err error) {
	saved := t.save()
	defer func() {
		recoveredErr := HandleTriangulatePanicRecover(recover())
		if recoveredErr != nil {
			t.restore(saved)
			t.opts.Logger.Debug("rolled back failed mutation", zap.Error(recoveredErr))
			err = recoveredErr
		}
	}()
	return fn()
}

type savepoint struct {
	points        []*geom.Point
	triangles     []*geom.Triangle
	superTriangle *geom.Triangle
}

func (t *Triangulator) save() savepoint {
	return savepoint{
		points:        append([]*geom.Point(nil), t.points...),
		triangles:     t.soup.Triangles(),
		superTriangle: t.superTriangle,
	}
}

func (t *Triangulator) restore(s savepoint) {
	t.points = s.points
	t.rebuildIndex()
	t.soup = NewTriangleSoup(s.triangles...)
	t.superTriangle = s.superTriangle
}

func (t *Triangulator) triangulate() {
	if len(t.points) < 3 {
		fatalf(ErrInvalidInput, "less than three points in point set: %d", len(t.points))
	}
	if len(t.planar) != len(t.points) {
		fatalf(ErrInvalidInput, "%d points share only %d planar locations", len(t.points), len(t.planar))
	}
	for _, p := range t.points {
		if !isFinite(*p) {
			fatalf(ErrInvalidInput, "point %v has non-finite coordinates", *p)
		}
	}

	t.superTriangle = t.generateSuperTriangle()
	t.soup = NewTriangleSoup(t.superTriangle)
	for _, p := range t.points {
		t.insertOnePoint(p)
	}
	t.opts.Logger.Debug("triangulated",
		zap.Int("points", len(t.points)),
		zap.Int("triangles", t.soup.Len()),
	)
}

// The sentinel has to contain every point with room to spare, otherwise its
// vertices take part in circumcircle tests near the hull and the filtered mesh
// stops being convex.
func (t *Triangulator) generateSuperTriangle() *geom.Triangle {
	var maxOfAnyCoordinate float64
	for _, p := range t.points {
		maxOfAnyCoordinate = math.Max(maxOfAnyCoordinate, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	if maxOfAnyCoordinate == 0 {
		maxOfAnyCoordinate = 1
	}
	m := maxOfAnyCoordinate * t.opts.SuperTriangleScale

	return geom.NewTriangle(
		&geom.Point{X: 0, Y: 3 * m},
		&geom.Point{X: 3 * m, Y: 0},
		&geom.Point{X: -3 * m, Y: -3 * m},
	)
}

func (t *Triangulator) insertOnePoint(p *geom.Point) {
	triangle := t.soup.FindContainingTriangle(p)
	if triangle == nil {
		t.pointOnEdge(p)
	} else {
		t.pointInsideTriangle(p, triangle)
	}
}

// Split the containing triangle into three around the new point.
func (t *Triangulator) pointInsideTriangle(p *geom.Point, triangle *geom.Triangle) {
	a, b, c := triangle.A, triangle.B, triangle.C

	t.soup.Remove(triangle)

	first := geom.NewTriangle(a, b, p)
	second := geom.NewTriangle(b, c, p)
	third := geom.NewTriangle(c, a, p)

	t.soup.Add(first)
	t.soup.Add(second)
	t.soup.Add(third)

	t.legalize(p,
		legalizeItem{first, geom.NewEdge(a, b)},
		legalizeItem{second, geom.NewEdge(b, c)},
		legalizeItem{third, geom.NewEdge(c, a)},
	)
}

// No triangle contains the point, so it lies on an edge (exactly, or as far as
// rounding can tell). Take the nearest edge and split both triangles sharing
// it into four.
func (t *Triangulator) pointOnEdge(p *geom.Point) {
	nearest, ok := t.soup.FindNearestEdge(p)
	if !ok {
		fatalf(ErrGeometricInconsistency, "no triangles to insert %v into", *p)
	}
	edge := nearest.Edge
	t.opts.Logger.Debug("inserting point on edge",
		zap.Stringer("point", *p),
		zap.Stringer("edge", edge),
		zap.Float64("distance", nearest.Distance),
	)

	first := t.soup.FindOneTriangleSharing(edge)
	second := t.soup.FindNeighbour(first, edge)
	if second == nil {
		// The sentinel contains every point, so only a broken mesh ends up here
		fatalf(ErrGeometricInconsistency, "edge %v nearest to %v has a single incident triangle", edge, *p)
	}

	firstNoneEdgeVertex := first.NoneEdgeVertex(edge)
	secondNoneEdgeVertex := second.NoneEdgeVertex(edge)

	t.soup.Remove(first)
	t.soup.Remove(second)

	triangle1 := geom.NewTriangle(edge.A, firstNoneEdgeVertex, p)
	triangle2 := geom.NewTriangle(edge.B, firstNoneEdgeVertex, p)
	triangle3 := geom.NewTriangle(edge.A, secondNoneEdgeVertex, p)
	triangle4 := geom.NewTriangle(edge.B, secondNoneEdgeVertex, p)

	t.soup.Add(triangle1)
	t.soup.Add(triangle2)
	t.soup.Add(triangle3)
	t.soup.Add(triangle4)

	t.legalize(p,
		legalizeItem{triangle1, geom.NewEdge(edge.A, firstNoneEdgeVertex)},
		legalizeItem{triangle2, geom.NewEdge(edge.B, firstNoneEdgeVertex)},
		legalizeItem{triangle3, geom.NewEdge(edge.A, secondNoneEdgeVertex)},
		legalizeItem{triangle4, geom.NewEdge(edge.B, secondNoneEdgeVertex)},
	)
}

// Intern a point, returning its canonical pointer.
func (t *Triangulator) intern(point geom.Point) *geom.Point {
	if p, ok := t.index[point]; ok {
		return p
	}
	p := new(geom.Point)
	*p = point
	t.points = append(t.points, p)
	t.index[point] = p
	if _, ok := t.planar[planarKey(point)]; !ok {
		t.planar[planarKey(point)] = p
	}
	return p
}

func (t *Triangulator) forget(p *geom.Point) {
	for i, q := range t.points {
		if q == p {
			t.points = append(t.points[:i], t.points[i+1:]...)
			break
		}
	}
	t.rebuildIndex()
}

func (t *Triangulator) rebuildIndex() {
	t.index = make(map[geom.Point]*geom.Point, len(t.points))
	t.planar = make(map[r2.Point]*geom.Point, len(t.points))
	for _, p := range t.points {
		t.index[*p] = p
		if _, ok := t.planar[planarKey(*p)]; !ok {
			t.planar[planarKey(*p)] = p
		}
	}
}

func planarKey(p geom.Point) r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func isFinite(p geom.Point) bool {
	for _, v := range []float64{p.X, p.Y, p.Z} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
