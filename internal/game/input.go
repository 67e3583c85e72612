package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/portfolio-rain/internal/config"
	"github.com/iburimskiy/portfolio-rain/internal/contact"
	"github.com/iburimskiy/portfolio-rain/internal/theme"
)

// button is a clickable page control. Geometry is in device-independent
// pixels.
type button struct {
	x, y, w, h int
	label      func() string
	active     func() bool
	disabled   func() bool
	onClick    func()

	hovered bool
	pressed bool
}

func (b *button) contains(x, y int) bool {
	return x >= b.x && x <= b.x+b.w && y >= b.y && y <= b.y+b.h
}

func (b *button) isDisabled() bool {
	return b.disabled != nil && b.disabled()
}

func (g *Game) newButtons() []*button {
	x := config.ButtonX
	next := func() int {
		cur := x
		x += config.ButtonWidth + config.ButtonGap
		return cur
	}
	lightDark := &button{
		x: next(), y: config.ButtonY, w: config.ButtonWidth, h: config.ButtonHeight,
		label:   func() string { return "Theme: " + theme.Icon(g.themes.Current()) },
		active:  func() bool { return !theme.HackerToggleActive(g.themes.Current()) },
		onClick: func() { g.themes.Toggle() },
	}
	hacker := &button{
		x: next(), y: config.ButtonY, w: config.ButtonWidth, h: config.ButtonHeight,
		label:   func() string { return "Hacker" },
		active:  func() bool { return theme.HackerToggleActive(g.themes.Current()) },
		onClick: func() { g.themes.ToggleHacker() },
	}
	send := &button{
		x: next(), y: config.ButtonY, w: config.ButtonWidth, h: config.ButtonHeight,
		label: func() string {
			if g.sending {
				return contact.MsgSending
			}
			return "Contact me"
		},
		active:   func() bool { return false },
		disabled: func() bool { return g.sending || g.asking },
		onClick:  g.openContact,
	}
	return []*button{lightDark, hacker, send}
}

// updateButtons tracks hover and press state; a click fires when the mouse
// is released over the button it was pressed on.
func (g *Game) updateButtons() {
	mx, my := ebiten.CursorPosition()
	// Layout reports physical pixels; buttons live in logical ones.
	x := int(float64(mx) / g.view.DeviceScaleFactor())
	y := int(float64(my) / g.view.DeviceScaleFactor())

	for i, b := range g.buttons {
		b.hovered = b.contains(x, y)
		if b.hovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			b.pressed = true
			g.focus = i
		}
		if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
			if b.pressed && b.hovered && !b.isDisabled() {
				b.onClick()
			}
			b.pressed = false
		}
	}
}
