package advanced

import (
	"io"
	"math"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

const dbgDrawPadding = 20

// Helper to draw the mesh and print it in the terminal (iTerm only) for
// debugging. Triangles touching the super triangle are left out.
func (t *Triangulator) dbgDraw(scale float64, path string, out io.Writer) error {
	c := t.dbgContext(scale)
	if err := c.SavePNG(path); err != nil {
		return err
	}
	imgcat.CatFile(path, out)
	return nil
}

func (t *Triangulator) dbgContext(scale float64) *gg.Context {
	var minX, minY, maxX, maxY float64
	if len(t.points) > 0 {
		minX = math.Inf(1)
		minY = math.Inf(1)
		maxX = math.Inf(-1)
		maxY = math.Inf(-1)
	}
	for _, p := range t.points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	c.SetLineWidth(1)
	for _, triangle := range t.Triangles() {
		c.MoveTo(triangle.A.X, triangle.A.Y)
		c.LineTo(triangle.B.X, triangle.B.Y)
		c.LineTo(triangle.C.X, triangle.C.Y)
		c.ClosePath()
	}
	c.SetRGB(0, 0.3, 0.1)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, p := range t.points {
		c.DrawCircle(p.X, p.Y, 2/scale)
	}
	c.SetRGB(1, 1, 0)
	c.Fill()
	return c
}
