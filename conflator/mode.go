package conflator

// Mode is the most frequent value observed for a key within the interval,
// together with how often it was seen.
type Mode[V comparable] struct {
	Value V
	Count int
}

// ModeState holds per-value frequencies plus the current winner. Counts only
// grow within an interval, so the winner changes only on a strictly greater
// count; on a tie the value that reached the maximal count first wins.
type ModeState[V comparable] struct {
	counts map[V]int
	best   V
	bestN  int
}

type modePolicy[V comparable] struct {
	BasePolicy
}

func (modePolicy[V]) Name() string { return "ModeConflator" }

func (p modePolicy[V]) Init(value V) (Mode[V], ModeState[V], error) {
	return p.Merge(value, Mode[V]{}, ModeState[V]{})
}

func (modePolicy[V]) Merge(value V, _ Mode[V], raw ModeState[V]) (Mode[V], ModeState[V], error) {
	if raw.counts == nil {
		raw.counts = map[V]int{}
	}
	raw.counts[value]++
	if raw.counts[value] > raw.bestN {
		raw.best = value
		raw.bestN = raw.counts[value]
	}
	return Mode[V]{Value: raw.best, Count: raw.bestN}, raw, nil
}

// NewMode builds a conflator that exposes the most frequently written value
// per key within the current interval.
func NewMode[K comparable, V comparable](withOptions ...WithOptions) (*Conflator[K, V, Mode[V], ModeState[V]], error) {
	return New[K, V, Mode[V], ModeState[V]](modePolicy[V]{}, withOptions...)
}
