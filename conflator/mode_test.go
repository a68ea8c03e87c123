package conflator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModeMostFrequent(t *testing.T) {
	c, err := NewMode[string, int]()
	assert.Nil(t, err)
	for _, v := range []int{1, 2, 2, 3, 3, 3} {
		assert.Nil(t, c.Set("k", v))
	}
	value, err := c.Get("k")
	assert.Nil(t, err)
	assert.Equal(t, Mode[int]{Value: 3, Count: 3}, value)

	for i := 0; i < 3; i++ {
		assert.Nil(t, c.Set("k", 1))
	}
	value, _ = c.Get("k")
	assert.Equal(t, Mode[int]{Value: 1, Count: 4}, value)
}

func TestModeTieKeepsFirstToReachCount(t *testing.T) {
	c, _ := NewMode[string, string]()
	assert.Nil(t, c.Set("k", "a"))
	assert.Nil(t, c.Set("k", "b"))
	value, _ := c.Get("k")
	assert.Equal(t, Mode[string]{Value: "a", Count: 1}, value)

	assert.Nil(t, c.Set("k", "b"))
	assert.Nil(t, c.Set("k", "a"))
	// both at two now, b reached two first
	value, _ = c.Get("k")
	assert.Equal(t, Mode[string]{Value: "b", Count: 2}, value)
}

func TestModeStartsFreshAfterReset(t *testing.T) {
	c, _ := NewMode[string, int]()
	assert.Nil(t, c.Set("k", 3))
	assert.Nil(t, c.Set("k", 3))
	c.Reset()

	assert.Nil(t, c.Set("k", 1))
	value, err := c.Get("k")
	assert.Nil(t, err)
	assert.Equal(t, Mode[int]{Value: 1, Count: 1}, value)
}
