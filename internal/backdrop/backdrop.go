// Package backdrop ties the rain animation to the page theme and the window
// geometry reported by the host.
package backdrop

import (
	"math"

	"github.com/iburimskiy/portfolio-rain/internal/rain"
	"github.com/iburimskiy/portfolio-rain/internal/theme"
)

// Viewport tracks the window size in device-independent pixels as last
// reported by the host. It implements rain.Viewport.
type Viewport struct {
	w, h float64
	dpr  float64
}

// NewViewport returns a viewport of w×h logical pixels at scale 1.
func NewViewport(w, h int) *Viewport {
	return &Viewport{w: float64(w), h: float64(h), dpr: 1}
}

func (v *Viewport) Size() (float64, float64)   { return v.w, v.h }
func (v *Viewport) DeviceScaleFactor() float64 { return v.dpr }

// Update records new geometry and reports whether anything changed. Scales
// below 1 are treated as 1.
func (v *Viewport) Update(w, h int, dpr float64) bool {
	dpr = math.Max(1, dpr)
	fw, fh := float64(w), float64(h)
	if fw == v.w && fh == v.h && dpr == v.dpr {
		return false
	}
	v.w, v.h, v.dpr = fw, fh, dpr
	return true
}

// Pixels returns the physical size matching the current geometry.
func (v *Viewport) Pixels() (int, int) {
	return int(math.Floor(v.w * v.dpr)), int(math.Floor(v.h * v.dpr))
}

// Backdrop runs the rain while the hacker theme is applied.
type Backdrop struct {
	rain   *rain.Controller
	view   *Viewport
	hacker bool
}

// New returns a backdrop driving r. view must be the viewport r was built
// with.
func New(r *rain.Controller, view *Viewport) *Backdrop {
	return &Backdrop{rain: r, view: view}
}

// OnTheme is a theme.Listener: the hacker theme starts the rain, any other
// theme stops it.
func (b *Backdrop) OnTheme(n theme.Name) {
	b.hacker = n == theme.Hacker
	if b.hacker {
		b.rain.Activate()
		return
	}
	b.rain.Deactivate()
}

// Layout records the window geometry, resizes the rain if it changed while
// the hacker theme is applied, and returns the screen size in pixels (at
// least 1×1).
func (b *Backdrop) Layout(w, h int, dpr float64) (int, int) {
	if b.view.Update(w, h, dpr) && b.hacker {
		b.rain.Resize()
	}
	pw, ph := b.view.Pixels()
	return max(pw, 1), max(ph, 1)
}

// Running reports whether the rain is animating.
func (b *Backdrop) Running() bool { return b.rain.Running() }
