package algo

import (
	"errors"
	"fmt"
	"math"
)

// MaxGridPoints caps the size of a grid built by Grid.
const MaxGridPoints = 1 << 24

// ErrInvalidGrid is wrapped by every error Grid returns.
var ErrInvalidGrid = errors.New("algo: invalid grid")

// Grid returns from, from+step, from+2·step, ... while the point does not
// exceed to. A point within step/1e9 of to is snapped to to, so a grid
// such as Grid(0, 1, 0.1) ends exactly at 1.
func Grid(from, to, step float64) ([]float64, error) {
	switch {
	case math.IsNaN(from) || math.IsInf(from, 0) || math.IsNaN(to) || math.IsInf(to, 0):
		return nil, fmt.Errorf("%w: bounds [%v, %v] must be finite", ErrInvalidGrid, from, to)
	case !(step > 0) || math.IsInf(step, 1):
		return nil, fmt.Errorf("%w: step %v must be positive and finite", ErrInvalidGrid, step)
	case to < from:
		return nil, fmt.Errorf("%w: upper bound %v below lower bound %v", ErrInvalidGrid, to, from)
	}

	span := (to - from) / step
	if span >= MaxGridPoints {
		return nil, fmt.Errorf("%w: %.0f points exceeds the limit of %d", ErrInvalidGrid, span+1, MaxGridPoints)
	}
	n := int(math.Floor(span + 1e-9))
	points := make([]float64, n+1)
	for i := range points {
		points[i] = from + float64(i)*step
	}
	if math.Abs(points[n]-to) <= step*1e-9 {
		points[n] = to
	}
	return points, nil
}
