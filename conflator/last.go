package conflator

type lastValuePolicy[V any] struct {
	BasePolicy
}

func (lastValuePolicy[V]) Name() string { return "LastValueConflator" }

func (lastValuePolicy[V]) Init(value V) (V, struct{}, error) {
	return value, struct{}{}, nil
}

func (lastValuePolicy[V]) Merge(value V, _ V, _ struct{}) (V, struct{}, error) {
	return value, struct{}{}, nil
}

// NewLastValue builds a conflator that keeps only the most recent value per
// key, discarding intermediate updates.
func NewLastValue[K comparable, V any](withOptions ...WithOptions) (*Conflator[K, V, V, struct{}], error) {
	return New[K, V, V, struct{}](lastValuePolicy[V]{}, withOptions...)
}
