package hero

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTypewriter(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tw := NewTypewriter("Hi, I'm パシ", t0)
	at := func(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

	assert.Equal(t, "", tw.Visible(at(0)))
	assert.Equal(t, "", tw.Visible(at(499)))
	assert.Equal(t, "H", tw.Visible(at(500)))
	assert.Equal(t, "H", tw.Visible(at(599)))
	assert.Equal(t, "Hi", tw.Visible(at(600)))
	assert.Equal(t, "Hi, I'm パ", tw.Visible(at(1300)))
	assert.False(t, tw.Done(at(1300)))
	assert.Equal(t, "Hi, I'm パシ", tw.Visible(at(1400)))
	assert.True(t, tw.Done(at(1400)))
	assert.Equal(t, "Hi, I'm パシ", tw.Visible(at(60000)))
}

func TestTypewriterEmpty(t *testing.T) {
	tw := NewTypewriter("", time.Now())
	assert.Equal(t, "", tw.Visible(time.Now().Add(time.Hour)))
}
