package palette

import (
	"errors"
	"fmt"
)

// ErrInsufficientSamples is matched by errors.Is for every
// *InsufficientSamplesError.
var ErrInsufficientSamples = errors.New("palette: insufficient samples")

// InsufficientSamplesError is returned when more colors are requested than
// the constrained color space has samples. Use ManySamples or a looser
// CheckColor function, or ask for fewer colors.
type InsufficientSamplesError struct {
	Requested int
	Available int
}

func (e *InsufficientSamplesError) Error() string {
	return fmt.Sprintf("palette: %d colors requested but only %d samples available", e.Requested, e.Available)
}

func (e *InsufficientSamplesError) Is(target error) bool {
	return target == ErrInsufficientSamples
}
