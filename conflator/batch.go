package conflator

type batchPolicy[V any] struct {
	BasePolicy
}

func (batchPolicy[V]) Name() string { return "BatchConflator" }

func (batchPolicy[V]) Init(value V) ([]V, []V, error) {
	raw := []V{value}
	return snapshot(raw), raw, nil
}

func (batchPolicy[V]) Merge(value V, _ []V, raw []V) ([]V, []V, error) {
	raw = append(raw, value)
	return snapshot(raw), raw, nil
}

// snapshot detaches the exposed batch from the internal append buffer so
// slices held by the consumer never change under later writes.
func snapshot[V any](raw []V) []V {
	out := make([]V, len(raw))
	copy(out, raw)
	return out
}

// NewBatch builds a conflator that accumulates every value written per key
// within the current interval, in write order. A Reset starts the buffers
// over; the next write for a key begins a new batch.
func NewBatch[K comparable, V any](withOptions ...WithOptions) (*Conflator[K, V, []V, []V], error) {
	return New[K, V, []V, []V](batchPolicy[V]{}, withOptions...)
}
