package advanced

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"

	"github.com/osuushi/delaunay/geom"
)

// Point clouds come from svg fixtures in fixtures/, by name sans extension.
// Every <circle> contributes its center, and every <polygon> its vertices, in
// document order. Anything unexpected is fatal.

//go:embed fixtures
var fixtures embed.FS

func LoadPointFixture(name string) []geom.Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	var points []geom.Point
	for _, circleEl := range rootEl.FindAll("circle") {
		points = append(points, geom.Point{
			X: parseCoordinate(circleEl.Attributes["cx"]),
			Y: parseCoordinate(circleEl.Attributes["cy"]),
		})
	}
	for _, polygonEl := range rootEl.FindAll("polygon") {
		for _, pair := range strings.Fields(polygonEl.Attributes["points"]) {
			coords := strings.Split(pair, ",")
			if len(coords) != 2 {
				log.Fatalf("Invalid point string %q", pair)
			}
			points = append(points, geom.Point{X: parseCoordinate(coords[0]), Y: parseCoordinate(coords[1])})
		}
	}

	if len(points) == 0 {
		log.Fatalf("No points found in fixture %q", name)
	}
	return points
}

func parseCoordinate(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Invalid coordinate %q: %v", s, err)
	}
	return v
}
