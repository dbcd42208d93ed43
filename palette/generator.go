// Package palette generates sets of distinguishable colors and orders
// colors so that neighbors look alike.
package palette

import (
	"errors"
	"math/rand"
)

// Generator owns the random source used by the palette and color
// generators. A Generator is not safe for concurrent use; the zero value
// and a nil *Generator draw from the process-wide math/rand functions.
type Generator struct {
	rnd *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator) error

// ErrNilSource is returned by WithSource when given a nil source.
var ErrNilSource = errors.New("palette: nil random source")

// WithSeed makes the generator deterministic.
func WithSeed(seed int64) Option {
	return func(g *Generator) error {
		g.rnd = rand.New(rand.NewSource(seed))
		return nil
	}
}

// WithSource draws random numbers from src.
func WithSource(src rand.Source) Option {
	return func(g *Generator) error {
		if src == nil {
			return ErrNilSource
		}
		g.rnd = rand.New(src)
		return nil
	}
}

// NewGenerator returns a generator, or an error if one of the options
// could not be applied.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{}
	for _, opt := range opts {
		if err := opt(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

var defaultGenerator *Generator

func (g *Generator) float64() float64 {
	if g == nil || g.rnd == nil {
		return rand.Float64()
	}
	return g.rnd.Float64()
}

func (g *Generator) intn(n int) int {
	if g == nil || g.rnd == nil {
		return rand.Intn(n)
	}
	return g.rnd.Intn(n)
}

// between returns a uniformly distributed value in [lo, hi).
func (g *Generator) between(lo, hi float64) float64 {
	return lo + g.float64()*(hi-lo)
}
