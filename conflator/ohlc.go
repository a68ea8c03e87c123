package conflator

import (
	"golang.org/x/exp/constraints"
)

// OHLC is the Open/High/Low/Close summary of all values observed for a key.
type OHLC[V constraints.Ordered] struct {
	Open  V
	High  V
	Low   V
	Close V
}

type ohlcPolicy[V constraints.Ordered] struct {
	BasePolicy
}

func (ohlcPolicy[V]) Name() string { return "OHLCConflator" }

func (ohlcPolicy[V]) Init(value V) (OHLC[V], struct{}, error) {
	return OHLC[V]{Open: value, High: value, Low: value, Close: value}, struct{}{}, nil
}

func (ohlcPolicy[V]) Merge(value V, acc OHLC[V], _ struct{}) (OHLC[V], struct{}, error) {
	acc.Close = value
	if value > acc.High {
		acc.High = value
	}
	if value < acc.Low {
		acc.Low = value
	}
	return acc, struct{}{}, nil
}

// NewOHLC builds a conflator that tracks the open, high, low and close of the
// values observed per key. The merge folds into the retained summary rather
// than raw state, so for keys kept across a Reset the open/high/low carry the
// key's full history until Delete or Clear.
func NewOHLC[K comparable, V constraints.Ordered](withOptions ...WithOptions) (*Conflator[K, V, OHLC[V], struct{}], error) {
	return New[K, V, OHLC[V], struct{}](ohlcPolicy[V]{}, withOptions...)
}
