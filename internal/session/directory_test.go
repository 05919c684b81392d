package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirectoryFirstWins(t *testing.T) {
	d := NewDirectory()
	first := NewQueue()
	second := NewQueue()

	assert.True(t, d.Insert("u1", first))
	assert.False(t, d.Insert("u1", second))

	got, ok := d.Get("u1")
	assert.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, 1, d.Len())
}

func TestDirectoryRemove(t *testing.T) {
	d := NewDirectory()
	d.Insert("u1", NewQueue())

	d.Remove("u1")

	_, ok := d.Get("u1")
	assert.False(t, ok)
	assert.Equal(t, 0, d.Len())

	// Removing an absent entry is harmless.
	d.Remove("u1")
}

func TestDirectoryReinsertAfterRemove(t *testing.T) {
	d := NewDirectory()
	d.Insert("u1", NewQueue())
	d.Remove("u1")

	replacement := NewQueue()
	assert.True(t, d.Insert("u1", replacement))

	got, _ := d.Get("u1")
	assert.Same(t, replacement, got)
}
