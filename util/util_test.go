package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInRange(t *testing.T) {
	assert := assert.New(t)
	assert.True(InRange(0, 0, 127))
	assert.True(InRange(127, 0, 127))
	assert.False(InRange(-1, 0, 127))
	assert.False(InRange(128, 0, 127))
}

func TestSortedKeys(t *testing.T) {
	m := map[string]int{"b": 2, "c": 3, "a": 1}
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(m))
}

func TestGetKeysEmpty(t *testing.T) {
	assert.Empty(t, GetKeys(map[int]bool{}))
}

func TestAbs(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(5, Abs(-5))
	assert.Equal(5, Abs(5))
	assert.Equal(0, Abs(0))
}
