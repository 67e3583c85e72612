package edge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPressedFiresOncePerPress(t *testing.T) {
	d := NewDetector[string]()

	assert.False(t, d.Pressed("t", false))
	assert.True(t, d.Pressed("t", true))
	assert.False(t, d.Pressed("t", true), "held key does not repeat")
	assert.False(t, d.Pressed("t", false))
	assert.True(t, d.Pressed("t", true))
}

func TestAnyRecordsEveryKey(t *testing.T) {
	d := NewDetector[string]()

	// Enter and Space go down in the same frame.
	assert.True(t, d.Any(map[string]bool{"enter": true, "space": true}))

	// Both are held: neither may fire again.
	assert.False(t, d.Pressed("space", true))
	assert.False(t, d.Pressed("enter", true))
}

func TestAnyWithNothingPressed(t *testing.T) {
	d := NewDetector[int]()
	assert.False(t, d.Any(map[int]bool{1: false, 2: false}))
	assert.False(t, d.Any(nil))
}
