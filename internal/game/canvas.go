package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-rain/internal/rain"
)

// canvas is an offscreen image the rain controller draws into. It is
// composited onto the screen in Draw while the hacker theme is active.
type canvas struct {
	img  *ebiten.Image
	font *text.GoTextFaceSource

	scale float64
	face  *text.GoTextFace
}

func newCanvas(font *text.GoTextFaceSource) *canvas {
	return &canvas{font: font, scale: 1}
}

func (c *canvas) SetSize(w, h int) {
	if c.img != nil {
		if b := c.img.Bounds(); b.Dx() == w && b.Dy() == h {
			c.img.Clear()
			return
		}
		c.img.Deallocate()
		c.img = nil
	}
	if w <= 0 || h <= 0 {
		return
	}
	c.img = ebiten.NewImage(w, h)
}

func (c *canvas) Context() (rain.Context, bool) {
	if c.img == nil || c.font == nil {
		return nil, false
	}
	return c, true
}

// image returns the backing image, or nil when none is allocated.
func (c *canvas) image() *ebiten.Image { return c.img }

func (c *canvas) SetTransform(scale float64) {
	c.scale = scale
	c.face = nil
}

func (c *canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

func (c *canvas) FillRect(x, y, w, h float64, clr color.NRGBA) {
	s := c.scale
	vector.DrawFilledRect(c.img, float32(x*s), float32(y*s), float32(w*s), float32(h*s), clr, false)
}

func (c *canvas) SetFont(size float64) {
	px := size * c.scale
	if c.face != nil && c.face.Size == px {
		return
	}
	c.face = &text.GoTextFace{Source: c.font, Size: px}
}

func (c *canvas) FillText(s string, x, y float64, clr color.NRGBA) {
	if c.face == nil {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x*c.scale, y*c.scale)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.img, s, c.face, op)
}
