package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlobalDefaultsToNop(t *testing.T) {
	assert.NotNil(t, Global())
	Global().Debugf("discarded %d", 1)
}

func TestNamedReturnsChildLogger(t *testing.T) {
	named := NewNop().Named("child")
	assert.NotNil(t, named)
	named.Infof("discarded")
}
