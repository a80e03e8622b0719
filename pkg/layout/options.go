package layout

import (
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pinboard/pkg/errors"
)

// Direction is the flow of a drawing: the axis along which ranks advance.
type Direction string

const (
	// TopBottom stacks ranks vertically; edges dock on top and bottom.
	TopBottom Direction = "TB"
	// LeftRight stacks ranks horizontally; edges dock on left and right.
	LeftRight Direction = "LR"
)

// Horizontal reports whether ranks advance along the x axis.
func (d Direction) Horizontal() bool { return d == LeftRight }

// ParseDirection accepts "TB" or "LR" in any case. An empty string means
// [TopBottom].
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(TopBottom):
		return TopBottom, nil
	case string(LeftRight):
		return LeftRight, nil
	}
	return "", errors.New(errors.ErrCodeInvalidDirection,
		"invalid direction %q (must be TB or LR)", s)
}

const (
	DefaultNodeWidth  = 200.0
	DefaultNodeHeight = 250.0
	DefaultRankSep    = 50.0
	DefaultNodeSep    = 50.0
	DefaultSweeps     = 8

	// DefaultJitter is the amplitude used by the CLI's --jitter flag. It is
	// far below a pixel, enough for a renderer that compares positions to
	// notice a change.
	DefaultJitter = 0.001
)

// Options configures [Compute]. Zero fields take the package defaults.
type Options struct {
	Direction  Direction
	NodeWidth  float64
	NodeHeight float64
	RankSep    float64 // gap between ranks
	NodeSep    float64 // gap between neighbours in a rank
	Sweeps     int     // crossing-reduction sweeps

	// Jitter adds a random offset in [0, Jitter) to every x coordinate.
	// Zero disables it. Seed makes the offsets reproducible; zero draws
	// from the global source.
	Jitter float64
	Seed   uint64

	Logger *log.Logger
}

// DefaultOptions returns the options used by [Layout].
func DefaultOptions() Options {
	var o Options
	o.SetDefaults()
	return o
}

// SetDefaults fills zero fields with defaults.
func (o *Options) SetDefaults() {
	if o.Direction == "" {
		o.Direction = TopBottom
	}
	if o.NodeWidth == 0 {
		o.NodeWidth = DefaultNodeWidth
	}
	if o.NodeHeight == 0 {
		o.NodeHeight = DefaultNodeHeight
	}
	if o.RankSep == 0 {
		o.RankSep = DefaultRankSep
	}
	if o.NodeSep == 0 {
		o.NodeSep = DefaultNodeSep
	}
	if o.Sweeps == 0 {
		o.Sweeps = DefaultSweeps
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate applies defaults and checks the result.
func (o *Options) Validate() error {
	o.SetDefaults()
	if _, err := ParseDirection(string(o.Direction)); err != nil {
		return err
	}
	for _, v := range []float64{o.NodeWidth, o.NodeHeight, o.RankSep, o.NodeSep, o.Jitter} {
		if !finite(v) {
			return errors.New(errors.ErrCodeInvalidInput, "sizes, separations and jitter must be finite (got %g)", v)
		}
	}
	if o.NodeWidth < 0 || o.NodeHeight < 0 {
		return errors.New(errors.ErrCodeInvalidInput,
			"node size must not be negative (got %gx%g)", o.NodeWidth, o.NodeHeight)
	}
	if o.RankSep < 0 || o.NodeSep < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "separation must not be negative")
	}
	if o.Sweeps < 0 || o.Jitter < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "sweeps and jitter must not be negative")
	}
	o.Direction, _ = ParseDirection(string(o.Direction))
	return nil
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
