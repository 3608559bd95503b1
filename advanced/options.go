package advanced

import (
	"io"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// DefaultSuperTriangleScale multiplies the largest absolute coordinate of the
// input to size the sentinel triangle.
const DefaultSuperTriangleScale = 16

// Options tune a Triangulator. The zero value of any field means "use the
// default".
type Options struct {
	// SuperTriangleScale sizes the sentinel triangle relative to the input.
	// Larger values push the sentinel further out, which keeps it from
	// influencing edges on the convex hull of nearly collinear input.
	SuperTriangleScale float64 `yaml:"super_triangle_scale"`
	// MaxFlips caps the edge flips a single legalization pass may perform. When
	// zero, the cap is derived from the number of points.
	MaxFlips int `yaml:"max_flips"`

	Logger *zap.Logger `yaml:"-"`
}

func DefaultOptions() Options {
	return Options{
		SuperTriangleScale: DefaultSuperTriangleScale,
		Logger:             zap.NewNop(),
	}
}

// LoadOptions reads YAML options over the defaults. Empty input yields the
// defaults.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	if err := yaml.NewDecoder(r).Decode(&opts); err != nil && err != io.EOF {
		return Options{}, errors.Wrap(err, "decoding triangulator options")
	}
	if opts.SuperTriangleScale <= 1 {
		return Options{}, errors.Wrapf(ErrInvalidInput, "super_triangle_scale must be greater than 1, got %g", opts.SuperTriangleScale)
	}
	if opts.MaxFlips < 0 {
		return Options{}, errors.Wrapf(ErrInvalidInput, "max_flips must not be negative, got %d", opts.MaxFlips)
	}
	return opts, nil
}

func (o Options) withDefaults() Options {
	if o.SuperTriangleScale <= 1 {
		o.SuperTriangleScale = DefaultSuperTriangleScale
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

// Each flip during the legalization of one new vertex adds an edge to that
// vertex, so in exact arithmetic a pass never needs more flips than there are
// vertices. The derived cap leaves generous room above that.
func (o Options) flipBudget(vertexCount int) int {
	if o.MaxFlips > 0 {
		return o.MaxFlips
	}
	return 8*vertexCount + 64
}
