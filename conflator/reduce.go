package conflator

import (
	"github.com/pkg/errors"
)

// ReduceFn folds the current value and the past values observed for the key
// since the last reset (oldest first, excluding the value being applied) into
// the conflated value.
type ReduceFn[V any] func(value V, past []V) V

// ReduceErrFn is a ReduceFn that may reject the value, typically with
// ErrTypeMismatch. A rejected value leaves the container untouched.
type ReduceErrFn[V any] func(value V, past []V) (V, error)

type reducePolicy[V any] struct {
	BasePolicy
	name string
	fn   ReduceErrFn[V]
}

func (p *reducePolicy[V]) Name() string { return p.name }

func (p *reducePolicy[V]) Init(value V) (V, []V, error) {
	return p.apply(value, nil)
}

func (p *reducePolicy[V]) Merge(value V, _ V, raw []V) (V, []V, error) {
	return p.apply(value, raw)
}

func (p *reducePolicy[V]) apply(value V, raw []V) (V, []V, error) {
	// fn gets its own copy of the history, it may retain or mutate it freely
	conflated, err := p.fn(value, snapshot(raw))
	if err != nil {
		var ni V
		return ni, nil, err
	}
	return conflated, append(raw, value), nil
}

// NewReducer builds a conflator around a user supplied reduce function. Use
// WithName to override the display name.
func NewReducer[K comparable, V any](fn ReduceFn[V], withOptions ...WithOptions) (*Conflator[K, V, V, []V], error) {
	if fn == nil {
		return nil, errors.Errorf("ReduceFn can't be nil")
	}
	return NewReducerE[K](func(value V, past []V) (V, error) {
		return fn(value, past), nil
	}, withOptions...)
}

// NewReducerE is NewReducer for reduce functions that can reject a value.
func NewReducerE[K comparable, V any](fn ReduceErrFn[V], withOptions ...WithOptions) (*Conflator[K, V, V, []V], error) {
	if fn == nil {
		return nil, errors.Errorf("ReduceErrFn can't be nil")
	}
	return New[K, V, V, []V](&reducePolicy[V]{name: "LambdaConflator", fn: fn}, withOptions...)
}
