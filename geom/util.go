package geom

import "golang.org/x/exp/constraints"

// Tolerance used by area comparisons and tests. None of the mesh predicates
// use it; they work on exact signs.
const Epsilon = 1e-9

type Number interface {
	constraints.Signed | constraints.Float
}

// Signum returns -1, 0 or 1 according to the sign of v.
func Signum[T Number](v T) T {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// CircularIndex wraps i into [0, n), so i+1 past the last vertex of a ring is
// the first and -1 is the last.
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}
