package basin

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlath-basins/heightmap"
)

// Sentinel errors for basin discovery.
var (
	// ErrNilMap is returned if a nil heightmap pointer is passed.
	ErrNilMap = errors.New("basin: heightmap is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("basin: invalid option supplied")
)

// DefaultWall is the lowest height that bounds a basin.
const DefaultWall = heightmap.MaxHeight

// Option configures basin discovery via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds parameters for basin discovery.
type Options struct {
	// Wall is the lowest height excluded from every basin; taller cells
	// are excluded too.
	Wall uint8

	err error
}

// DefaultOptions returns Options with Wall=DefaultWall.
func DefaultOptions() Options {
	return Options{Wall: DefaultWall}
}

// WithWall sets the boundary height. Values above heightmap.MaxHeight
// are rejected with ErrOptionViolation.
func WithWall(h uint8) Option {
	return func(o *Options) {
		if h > heightmap.MaxHeight {
			o.err = fmt.Errorf("%w: wall %d above %d", ErrOptionViolation, h, heightmap.MaxHeight)
			return
		}
		o.Wall = h
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o, o.err
}

// Basin is a set of unique grid points.
type Basin struct {
	points map[heightmap.Point]struct{}
}

func newBasin() *Basin {
	return &Basin{points: make(map[heightmap.Point]struct{})}
}

// Len returns the number of cells in the basin.
func (b *Basin) Len() int {
	return len(b.points)
}

// Contains reports whether p belongs to the basin.
func (b *Basin) Contains(p heightmap.Point) bool {
	_, ok := b.points[p]
	return ok
}
