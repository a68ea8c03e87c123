package conflator

// Policy is the conflation strategy plugged into a Conflator. V is the raw
// update type written by the producer, C the conflated value shape exposed to
// the consumer and R the auxiliary state the policy keeps per key between
// merges (running sums, append buffers).
//
// Merge implementations must tolerate a zero value R: the container wipes raw
// state wholesale on Reset, so the first merge of a new interval for a
// retained key sees fresh raw state while acc still holds the previous
// interval's conflated value.
type Policy[V, C, R any] interface {
	Name() string

	//Init builds the conflated value and raw state from the first update of a key.
	Init(value V) (C, R, error)

	//Merge folds the next update into the existing conflated value and raw state.
	Merge(value V, acc C, raw R) (C, R, error)

	//OnReset is called once per Reset, after the dirty set and raw state are cleared.
	OnReset()
}

// BasePolicy provides the no-op OnReset so stateless policies only implement
// Name, Init and Merge.
type BasePolicy struct{}

func (BasePolicy) OnReset() {}

// Item is one dirty entry produced by Items.
type Item[K comparable, C any] struct {
	Key   K
	Value C
}
