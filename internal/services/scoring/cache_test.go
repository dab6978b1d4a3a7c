package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveCache_PutGet(t *testing.T) {
	c := newMoveCache(3)

	_, ok := c.get(1, 0, 0)
	assert.False(t, ok)

	c.put(1, 0, 0, 42)
	v, ok := c.get(1, 0, 0)
	assert.True(t, ok)
	assert.Equal(t, 42.0, v)
}

func TestMoveCache_EvictsOldestFirst(t *testing.T) {
	c := newMoveCache(2)
	c.put(1, 0, 0, 1)
	c.put(1, 0, 1, 2)
	c.put(1, 0, 2, 3)

	assert.Equal(t, 2, c.len())
	_, ok := c.get(1, 0, 0)
	assert.False(t, ok)
	_, ok = c.get(1, 0, 1)
	assert.True(t, ok)
	_, ok = c.get(1, 0, 2)
	assert.True(t, ok)
}

func TestMoveCache_UpdateDoesNotGrow(t *testing.T) {
	c := newMoveCache(2)
	c.put(1, 0, 0, 1)
	c.put(1, 0, 0, 7)

	assert.Equal(t, 1, c.len())
	v, _ := c.get(1, 0, 0)
	assert.Equal(t, 7.0, v)
}

func TestMoveCache_ZeroCapacityDisabled(t *testing.T) {
	c := newMoveCache(0)
	c.put(1, 0, 0, 1)

	assert.Equal(t, 0, c.len())
	_, ok := c.get(1, 0, 0)
	assert.False(t, ok)
}

func TestMoveCache_DistinguishesBoards(t *testing.T) {
	c := newMoveCache(10)
	c.put(1, 0, 0, 1)
	c.put(2, 0, 0, 2)

	v1, _ := c.get(1, 0, 0)
	v2, _ := c.get(2, 0, 0)
	assert.Equal(t, 1.0, v1)
	assert.Equal(t, 2.0, v2)
}
