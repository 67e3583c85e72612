package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBannerTimeline(t *testing.T) {
	var b Banner
	t0 := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	b.Show(Notification{Text: "Message sent", Kind: Success}, t0)

	at := func(ms int) time.Time { return t0.Add(time.Duration(ms) * time.Millisecond) }

	assert.Equal(t, SlideDistance, b.Offset(at(0)))
	assert.Equal(t, SlideDistance, b.Offset(at(99)))
	assert.InDelta(t, SlideDistance/2, b.Offset(at(250)), 1e-9)
	assert.Equal(t, 0.0, b.Offset(at(400)))
	assert.Equal(t, 0.0, b.Offset(at(2999)))
	assert.InDelta(t, SlideDistance/2, b.Offset(at(3150)), 1e-9)

	n, ok := b.Current(at(3299))
	assert.True(t, ok)
	assert.Equal(t, "Message sent", n.Text)

	_, ok = b.Current(at(3300))
	assert.False(t, ok)
	assert.Equal(t, SlideDistance, b.Offset(at(3300)))
}

func TestBannerShowReplaces(t *testing.T) {
	var b Banner
	t0 := time.Now()
	b.Show(Notification{Text: "first", Kind: Error}, t0)
	b.Show(Notification{Text: "second"}, t0.Add(2*time.Second))

	n, ok := b.Current(t0.Add(4 * time.Second))
	assert.True(t, ok)
	assert.Equal(t, "second", n.Text)
	assert.Equal(t, Info, n.Kind)
}

func TestEmptyBanner(t *testing.T) {
	var b Banner
	_, ok := b.Current(time.Now())
	assert.False(t, ok)
	assert.Equal(t, SlideDistance, b.Offset(time.Now()))
}

func TestKindColor(t *testing.T) {
	assert.Equal(t, uint8(0x10), Success.Color().R)
	assert.Equal(t, uint8(0xef), Error.Color().R)
	assert.Equal(t, uint8(0x3b), Info.Color().R)
	assert.Equal(t, Info.Color(), Kind("other").Color())
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{name: "fits", in: "Sending...", width: 30, want: []string{"Sending..."}},
		{
			name:  "breaks on spaces",
			in:    "Message sent successfully! I will get back to you soon.",
			width: 30,
			want:  []string{"Message sent successfully! I", "will get back to you soon."},
		},
		{name: "long word", in: "abcdefgh ij", width: 3, want: []string{"abc", "def", "gh", "ij"}},
		{name: "empty", in: "", width: 10, want: []string{""}},
		{name: "no width", in: "a b", width: 0, want: []string{"a b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Wrap(tt.in, tt.width))
		})
	}
}
