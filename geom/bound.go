package geom

import "math"

// Bound describes a grid window: the top left corner in world coordinates, the
// number of rows (growing downwards in Y) and columns (growing in X), and the
// size of a cell. It is what a raster consumer needs to allocate storage for a
// polygon.
type Bound struct {
	TopLeftX, TopLeftY    float64
	RowCount, ColumnCount int
	Resolution            int
}

// AdjustBound snaps the top left corner outward onto the grid and counts the
// cells needed to reach the bottom right corner.
func AdjustBound(topLeftX, topLeftY, bottomRightX, bottomRightY float64, resolution int) Bound {
	r := float64(resolution)
	left := math.Floor(topLeftX/r) * r
	top := math.Ceil(topLeftY/r) * r
	return Bound{
		TopLeftX:    left,
		TopLeftY:    top,
		ColumnCount: int((bottomRightX-left)/r) + 1,
		RowCount:    int((top-bottomRightY)/r) + 1,
		Resolution:  resolution,
	}
}
