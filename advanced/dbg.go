package advanced

import (
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/delaunay/geom"
	"github.com/osuushi/delaunay/internal/dbg"
)

// DbgTriangleName gives a triangle a readable name, colored by kind: cyan when
// it touches the sentinel, red when it is degenerate, green otherwise.
func DbgTriangleName(t *geom.Triangle, sentinel *geom.Triangle) string {
	name := dbg.Name(t)
	switch {
	case sentinel != nil && (sentinel.HasVertex(t.A) || sentinel.HasVertex(t.B) || sentinel.HasVertex(t.C)):
		return aurora.Cyan(name).String()
	case t.SignedArea() == 0:
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
