package advanced

import (
	"math"

	"go.uber.org/zap"

	"github.com/osuushi/delaunay/geom"
)

// Remove a vertex from a built mesh. The triangles around the vertex form a
// star whose outer boundary, the envelope, is a simple polygon. The envelope
// is triangulated on its own, the pieces inside it replace the star, and the
// envelope's edges are legalized against the rest of the mesh.
func (t *Triangulator) removePoint(p *geom.Point) {
	star := t.soup.FindVertexTriangles(p)
	envelope := envelopeOf(p, star)
	patch := t.retriangulate(envelope)

	t.forget(p)
	t.soup.RemoveAll(star)
	t.soup.AddAll(patch)

	for _, triangle := range patch {
		for _, edge := range triangle.Edges() {
			if envelope.HasEdge(edge) {
				t.legalize(triangle.NoneEdgeVertex(edge), legalizeItem{triangle, edge})
			}
		}
	}

	t.opts.Logger.Debug("removed point",
		zap.Stringer("point", *p),
		zap.Int("star", len(star)),
		zap.Int("patch", len(patch)),
	)
}

// Walk the star around center and collect the outer vertices in order.
func envelopeOf(center *geom.Point, star []*geom.Triangle) geom.Polygon {
	if len(star) < 3 {
		fatalf(ErrGeometricInconsistency, "vertex %v has only %d incident triangles", *center, len(star))
	}

	visited := map[*geom.Triangle]bool{star[0]: true}
	first, second := rim(star[0], center)
	ring := []*geom.Point{first, second}

	for len(visited) < len(star) {
		last := ring[len(ring)-1]
		var next *geom.Triangle
		for _, triangle := range star {
			if !visited[triangle] && triangle.HasVertex(last) {
				next = triangle
				break
			}
		}
		if next == nil {
			fatalf(ErrGeometricInconsistency, "triangles around %v do not form a closed fan", *center)
		}
		visited[next] = true

		far := next.NoneEdgeVertex(geom.NewEdge(center, last))
		if len(visited) == len(star) {
			if far != ring[0] {
				fatalf(ErrGeometricInconsistency, "fan around %v does not close", *center)
			}
			break
		}
		ring = append(ring, far)
	}

	return geom.NewPolygon(ring...)
}

// The two vertices of a triangle other than center, in the triangle's order.
func rim(triangle *geom.Triangle, center *geom.Point) (*geom.Point, *geom.Point) {
	switch center {
	case triangle.A:
		return triangle.B, triangle.C
	case triangle.B:
		return triangle.C, triangle.A
	case triangle.C:
		return triangle.A, triangle.B
	}
	fatalf(ErrGeometricInconsistency, "%v is not a vertex of %v", *center, triangle)
	return nil, nil
}

// Triangulate the envelope in isolation and keep the triangles that fall
// inside it. The result refers to the envelope's own vertex pointers.
func (t *Triangulator) retriangulate(envelope geom.Polygon) []*geom.Triangle {
	values := make([]geom.Point, len(envelope.Points))
	canonical := make(map[geom.Point]*geom.Point, len(envelope.Points))
	for i, p := range envelope.Points {
		values[i] = *p
		canonical[*p] = p
	}

	local := NewTriangulator(values, t.opts)
	local.triangulate()

	var patch []*geom.Triangle
	var area float64
	for _, triangle := range local.Triangles() {
		centroid := triangle.Centroid()
		if !envelope.IsInside(&centroid) {
			continue
		}
		patch = append(patch, geom.NewTriangle(
			canonical[*triangle.A],
			canonical[*triangle.B],
			canonical[*triangle.C],
		))
		area += triangle.Area()
	}

	// When an envelope edge is missing from the local triangulation, the kept
	// triangles no longer tile the envelope.
	expected := envelope.Area()
	if math.Abs(area-expected) > geom.Epsilon*math.Max(1, expected) {
		fatalf(ErrGeometricInconsistency, "patch covers area %g of an envelope with area %g", area, expected)
	}
	return patch
}
