// Package typeface loads font data and reports which runes a face can draw.
package typeface

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/sfnt"
)

// Face is parsed font data. The raw bytes are kept for renderers that parse
// the font themselves.
type Face struct {
	Data []byte
	font *sfnt.Font
}

// Load reads the TTF, OTF or TTC file at path. An empty path selects the
// embedded Go Mono face. Collections use their first font.
func Load(path string) (*Face, error) {
	data := gomono.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading font %s: %w", path, err)
		}
		data = b
	}
	return Parse(data)
}

// Parse parses font data.
func Parse(data []byte) (*Face, error) {
	var (
		f   *sfnt.Font
		err error
	)
	if bytes.HasPrefix(data, []byte("ttcf")) {
		var c *sfnt.Collection
		if c, err = sfnt.ParseCollection(data); err == nil {
			f, err = c.Font(0)
		}
	} else {
		f, err = sfnt.Parse(data)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	return &Face{Data: data, font: f}, nil
}

// Has reports whether the face maps r to a real glyph.
func (f *Face) Has(r rune) bool {
	var buf sfnt.Buffer
	idx, err := f.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// Covered returns the runes of s the face can draw, in order.
func (f *Face) Covered(s string) string {
	var (
		buf sfnt.Buffer
		b   strings.Builder
	)
	for _, r := range s {
		if idx, err := f.font.GlyphIndex(&buf, r); err == nil && idx != 0 {
			b.WriteRune(r)
		}
	}
	return b.String()
}
