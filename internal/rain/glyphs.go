package rain

import (
	"math/rand/v2"
	"strings"
)

// DefaultGlyphs is the katakana block followed by the owner's name, twice,
// so latin letters show up about as often as kana.
const DefaultGlyphs = "アイウエオカキクケコサシスセソタチツテトナニヌネノ" +
	"ハヒフヘホマミムメモヤユヨラリルレロワヲン" +
	"pasindukumarasinghe" +
	"pasindukumarasinghe"

// Rand is the subset of *rand.Rand the controller needs.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand uses the math/rand/v2 top-level source. Visual noise only.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

func (c *Controller) buildGlyphs() {
	c.glyphs = strings.Split(c.glyphSource, "")
}

func (c *Controller) glyph() string {
	return c.glyphs[c.rnd.IntN(len(c.glyphs))]
}
