package conflator

import "github.com/pkg/errors"

var (
	//ErrKeyNotDirty is returned by Get when the key is absent or hasn't been
	//written since the last reset.
	ErrKeyNotDirty = errors.New("key not found in dirty set")

	//ErrKeyNotFound is returned by Delete when the key is not currently dirty.
	ErrKeyNotFound = errors.New("key not found")

	//ErrTypeMismatch signals that a policy received a value it can't conflate.
	//The built-in policies are constrained at compile time and never return it;
	//it is for validating custom policies and reducers.
	ErrTypeMismatch = errors.New("value type mismatch")
)
