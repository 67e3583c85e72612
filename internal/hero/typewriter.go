// Package hero animates the landing headline.
package hero

import (
	"time"
	"unicode/utf8"
)

const (
	startDelay = 500 * time.Millisecond
	perRune    = 100 * time.Millisecond
)

// Typewriter reveals a title one rune at a time.
type Typewriter struct {
	text    string
	started time.Time
	n       int
}

// NewTypewriter starts revealing text at now.
func NewTypewriter(text string, now time.Time) *Typewriter {
	return &Typewriter{text: text, started: now, n: utf8.RuneCountInString(text)}
}

// Visible returns the revealed prefix at now.
func (t *Typewriter) Visible(now time.Time) string {
	elapsed := now.Sub(t.started) - startDelay
	if elapsed < 0 {
		return ""
	}
	shown := int(elapsed/perRune) + 1
	if shown >= t.n {
		return t.text
	}
	i := 0
	for pos := range t.text {
		if i == shown {
			return t.text[:pos]
		}
		i++
	}
	return t.text
}

// Done reports whether the whole title is shown.
func (t *Typewriter) Done(now time.Time) bool {
	return now.Sub(t.started) >= startDelay+time.Duration(t.n-1)*perRune
}
