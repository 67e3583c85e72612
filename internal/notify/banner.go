// Package notify shows transient notification banners.
package notify

import (
	"image/color"
	"strings"
	"time"
)

// Kind selects the banner colour and chime.
type Kind string

const (
	Info    Kind = "info"
	Success Kind = "success"
	Error   Kind = "error"
)

const (
	// SlideDistance is how far off-screen a hidden banner sits.
	SlideDistance = 400.0

	enterDelay = 100 * time.Millisecond
	slideTime  = 300 * time.Millisecond
	hideAt     = 3000 * time.Millisecond
)

// Color returns the banner background for k.
func (k Kind) Color() color.RGBA {
	switch k {
	case Success:
		return color.RGBA{R: 0x10, G: 0xb9, B: 0x81, A: 0xff}
	case Error:
		return color.RGBA{R: 0xef, G: 0x44, B: 0x44, A: 0xff}
	default:
		return color.RGBA{R: 0x3b, G: 0x82, B: 0xf6, A: 0xff}
	}
}

// Notification is one banner message.
type Notification struct {
	Text string
	Kind Kind
}

// Banner holds at most one notification and computes its slide animation.
type Banner struct {
	current Notification
	shownAt time.Time
	active  bool
}

// Show replaces any current banner with n, starting its timeline at now.
func (b *Banner) Show(n Notification, now time.Time) {
	if n.Kind == "" {
		n.Kind = Info
	}
	b.current = n
	b.shownAt = now
	b.active = true
}

// Current returns the banner text and whether one is still on screen.
func (b *Banner) Current(now time.Time) (Notification, bool) {
	if !b.active {
		return Notification{}, false
	}
	if now.Sub(b.shownAt) >= hideAt+slideTime {
		b.active = false
		return Notification{}, false
	}
	return b.current, true
}

// Offset is the horizontal slide offset at now: SlideDistance while waiting
// to enter or after leaving, 0 while fully shown.
func (b *Banner) Offset(now time.Time) float64 {
	if _, ok := b.Current(now); !ok {
		return SlideDistance
	}
	elapsed := now.Sub(b.shownAt)
	switch {
	case elapsed < enterDelay:
		return SlideDistance
	case elapsed < enterDelay+slideTime:
		p := float64(elapsed-enterDelay) / float64(slideTime)
		return SlideDistance * (1 - ease(p))
	case elapsed < hideAt:
		return 0
	default:
		p := float64(elapsed-hideAt) / float64(slideTime)
		return SlideDistance * ease(p)
	}
}

// ease approximates the CSS "ease" timing curve with smoothstep.
func ease(p float64) float64 {
	if p <= 0 {
		return 0
	}
	if p >= 1 {
		return 1
	}
	return p * p * (3 - 2*p)
}

// Wrap breaks s into lines of at most width runes, splitting on spaces.
// Words longer than width are split.
func Wrap(s string, width int) []string {
	if width <= 0 {
		return []string{s}
	}
	var (
		lines []string
		line  []rune
	)
	for _, word := range strings.Fields(s) {
		w := []rune(word)
		for len(w) > width {
			if len(line) > 0 {
				lines = append(lines, string(line))
				line = nil
			}
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		switch {
		case len(line) == 0:
			line = w
		case len(line)+1+len(w) <= width:
			line = append(append(line, ' '), w...)
		default:
			lines = append(lines, string(line))
			line = w
		}
	}
	if len(line) > 0 || len(lines) == 0 {
		lines = append(lines, string(line))
	}
	return lines
}
