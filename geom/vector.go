package geom

import "math"

// Vector is a displacement between two points.
type Vector struct {
	X, Y, Z float64
}

// NewVector returns the vector pointing from origin to terminal.
func NewVector(origin, terminal Point) Vector {
	return Vector{
		X: terminal.X - origin.X,
		Y: terminal.Y - origin.Y,
		Z: terminal.Z - origin.Z,
	}
}

func (v Vector) Add(other Vector) Vector {
	return Vector{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

func (v Vector) Sub(other Vector) Vector {
	return Vector{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Mag is the euclidean length of the vector.
func (v Vector) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vector) Mult(scalar float64) Vector {
	return Vector{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar}
}

// Dot is the planar dot product. Z is ignored.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross is the full three dimensional cross product.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// PseudoCross is the 2D "perp dot" product, Dot(Perp(v), other). Its sign tells
// which side of v the other vector points to.
func (v Vector) PseudoCross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Angle between the two vectors in radians, in [0, π].
func (v Vector) Angle(other Vector) float64 {
	cos := v.Dot(other) / (v.Mag() * other.Mag())
	// Rounding can push parallel vectors just outside the domain of Acos
	return math.Acos(math.Max(-1, math.Min(1, cos)))
}
