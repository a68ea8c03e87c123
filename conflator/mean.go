package conflator

import (
	"golang.org/x/exp/constraints"
)

// Number is the value constraint for the mean policy.
type Number interface {
	constraints.Integer | constraints.Float
}

// MeanState is the running accumulator behind a mean conflator.
type MeanState struct {
	Sum   float64
	Count uint64
}

type meanPolicy[V Number] struct {
	BasePolicy
}

func (meanPolicy[V]) Name() string { return "MeanConflator" }

func (meanPolicy[V]) Init(value V) (float64, MeanState, error) {
	return float64(value), MeanState{Sum: float64(value), Count: 1}, nil
}

// Merge reads only the raw accumulator, never the previous mean, so a key
// retained across a Reset starts a fresh mean on its next write.
func (meanPolicy[V]) Merge(value V, _ float64, raw MeanState) (float64, MeanState, error) {
	raw.Sum += float64(value)
	raw.Count++
	return raw.Sum / float64(raw.Count), raw, nil
}

// NewMean builds a conflator that exposes the running mean of the values
// written per key within the current interval.
func NewMean[K comparable, V Number](withOptions ...WithOptions) (*Conflator[K, V, float64, MeanState], error) {
	return New[K, V, float64, MeanState](meanPolicy[V]{}, withOptions...)
}
