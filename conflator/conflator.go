// Package conflator collapses high-frequency keyed updates into one
// representative value per key and interval, so a slower consumer only sees
// the keys that changed since it last drained the container. The merge
// strategy is pluggable via Policy; last-value, OHLC, mean, batch, mode and
// custom-reducer policies are built in.
//
// The container does no locking. It assumes a single writer and a single
// reader per interval; hosts that share it across goroutines must serialize
// Set against Reset and iteration themselves, and treat drain-then-reset as
// one critical section if they need a consistent snapshot.
package conflator

import (
	"fmt"

	"github.com/christianreimer/conflateddict/log"
	"github.com/pkg/errors"
	"github.com/uber-go/tally/v4"
)

// Conflator is a keyed store that merges repeated writes per key through its
// Policy and tracks which keys changed since the last Reset. Reads and
// iteration only expose dirty keys; values retained from earlier intervals
// stay reachable through Data.
type Conflator[K comparable, V, C, R any] struct {
	policy  Policy[V, C, R]
	name    string
	logger  log.Logger
	metrics *metrics

	data  map[K]C
	raw   map[K]R
	dirty map[K]struct{}
}

// New builds a Conflator around the given policy. K must be stated
// explicitly; the per-policy constructors are usually more convenient.
func New[K comparable, V, C, R any](policy Policy[V, C, R], withOptions ...WithOptions) (*Conflator[K, V, C, R], error) {
	if policy == nil {
		return nil, errors.Errorf("Policy can't be nil")
	}
	opts := &options{
		name:   policy.Name(),
		logger: log.Global(),
		scope:  tally.NoopScope,
	}
	for _, withOptionsFn := range withOptions {
		if err := withOptionsFn(opts); err != nil {
			return nil, errors.WithMessage(err, "failed to apply conflator options")
		}
	}
	return &Conflator[K, V, C, R]{
		policy:  policy,
		name:    opts.name,
		logger:  opts.logger.Named(opts.name),
		metrics: newMetrics(opts.scope),
		data:    map[K]C{},
		raw:     map[K]R{},
		dirty:   map[K]struct{}{},
	}, nil
}

// Set conflates value into the entry for key and marks key dirty. The first
// write for a key goes through Policy.Init, every later one through
// Policy.Merge. A policy error is returned before any state is committed, so
// a failed Set leaves the container untouched.
func (c *Conflator[K, V, C, R]) Set(key K, value V) error {
	var (
		conflated C
		raw       R
		err       error
	)
	if acc, ok := c.data[key]; ok {
		conflated, raw, err = c.policy.Merge(value, acc, c.raw[key])
		if err != nil {
			c.metrics.mergeErrors.Inc(1)
			return errors.Wrapf(err, "can't conflate value for key %v", key)
		}
		c.metrics.merges.Inc(1)
	} else {
		conflated, raw, err = c.policy.Init(value)
		if err != nil {
			c.metrics.mergeErrors.Inc(1)
			return errors.Wrapf(err, "can't conflate value for key %v", key)
		}
		c.metrics.inits.Inc(1)
	}
	c.data[key] = conflated
	c.raw[key] = raw
	c.dirty[key] = struct{}{}
	c.report()
	return nil
}

// Get returns the conflated value for key, or ErrKeyNotDirty if key is absent
// or hasn't been written since the last Reset.
func (c *Conflator[K, V, C, R]) Get(key K) (C, error) {
	if _, ok := c.dirty[key]; !ok {
		var ni C
		return ni, errors.Wrapf(ErrKeyNotDirty, "key %v", key)
	}
	return c.data[key], nil
}

// IsDirty reports whether key has been written since the last Reset.
func (c *Conflator[K, V, C, R]) IsDirty(key K) bool {
	_, ok := c.dirty[key]
	return ok
}

// Contains is an alias for IsDirty; membership follows the dirty set, not the
// value store.
func (c *Conflator[K, V, C, R]) Contains(key K) bool {
	return c.IsDirty(key)
}

// Delete removes key from the value store, raw state and dirty set. It
// returns ErrKeyNotFound if key is not currently dirty.
func (c *Conflator[K, V, C, R]) Delete(key K) error {
	if _, ok := c.dirty[key]; !ok {
		return errors.Wrapf(ErrKeyNotFound, "key %v", key)
	}
	delete(c.dirty, key)
	delete(c.data, key)
	delete(c.raw, key)
	c.report()
	return nil
}

// Len returns the number of dirty keys.
func (c *Conflator[K, V, C, R]) Len() int {
	return len(c.dirty)
}

// Keys returns a snapshot of the dirty keys, in no particular order.
func (c *Conflator[K, V, C, R]) Keys() []K {
	keys := make([]K, 0, len(c.dirty))
	for key := range c.dirty {
		keys = append(keys, key)
	}
	return keys
}

// Values returns a snapshot of the conflated values for all dirty keys.
func (c *Conflator[K, V, C, R]) Values() []C {
	values := make([]C, 0, len(c.dirty))
	for key := range c.dirty {
		values = append(values, c.data[key])
	}
	return values
}

// Items returns a snapshot of the dirty entries.
func (c *Conflator[K, V, C, R]) Items() []Item[K, C] {
	items := make([]Item[K, C], 0, len(c.dirty))
	for key := range c.dirty {
		items = append(items, Item[K, C]{Key: key, Value: c.data[key]})
	}
	return items
}

// Range calls fn for every dirty entry until fn returns false.
func (c *Conflator[K, V, C, R]) Range(fn func(key K, value C) bool) {
	for key := range c.dirty {
		if !fn(key, c.data[key]) {
			return
		}
	}
}

// Reset ends the current interval: the dirty set empties, raw state is wiped
// so accumulating policies start over, and the policy's OnReset hook runs.
// Conflated values are retained and stay visible through Data only; whether
// the next write for a retained key continues from them is up to the policy
// (OHLC does, mean/batch/mode don't).
func (c *Conflator[K, V, C, R]) Reset() {
	c.logger.Debugf("reset, clearing %d dirty keys", len(c.dirty))
	c.dirty = map[K]struct{}{}
	c.raw = map[K]R{}
	c.policy.OnReset()
	c.metrics.resets.Inc(1)
	c.report()
}

// Clear wipes the container completely, retained values included.
func (c *Conflator[K, V, C, R]) Clear() {
	c.logger.Debugf("clear, dropping %d entries", len(c.data))
	c.dirty = map[K]struct{}{}
	c.raw = map[K]R{}
	c.data = map[K]C{}
	c.policy.OnReset()
	c.report()
}

// Data returns a copy of the complete value store, dirty and stale entries
// alike. It is an escape hatch for inspection and never mutates state.
func (c *Conflator[K, V, C, R]) Data() map[K]C {
	mm := make(map[K]C, len(c.data))
	for key, value := range c.data {
		mm[key] = value
	}
	return mm
}

// Description is the compact observability summary returned by Describe.
type Description struct {
	Name         string
	DirtyCount   int
	TotalEntries int
}

func (d Description) String() string {
	return fmt.Sprintf("<%s dirty:%d entries:%d>", d.Name, d.DirtyCount, d.TotalEntries)
}

// Describe summarizes the container without mutating it.
func (c *Conflator[K, V, C, R]) Describe() Description {
	return Description{
		Name:         c.name,
		DirtyCount:   len(c.dirty),
		TotalEntries: len(c.data),
	}
}

func (c *Conflator[K, V, C, R]) String() string {
	return c.Describe().String()
}

func (c *Conflator[K, V, C, R]) report() {
	c.metrics.report(len(c.dirty), len(c.data))
}
