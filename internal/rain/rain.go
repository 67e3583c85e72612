// Package rain renders the falling-glyph background shown behind the hacker
// theme. The Controller owns all animation state; the drawing surface, the
// viewport geometry and the frame scheduler are supplied by the host.
package rain

import (
	"image/color"
	"math"
	"time"

	"go.uber.org/zap"
)

const (
	// Narrow viewports (below narrowWidth) get the smaller glyph size.
	narrowWidth      = 480
	narrowGlyphSize  = 14
	defaultGlyphSize = 16

	minSpeedFactor   = 0.6
	speedFactorRange = 1.6

	trailOffset = 1.4
	resetChance = 0.985

	// Frames closer together than this are skipped (30 Hz cap).
	minFrameInterval = time.Second / 30
)

var (
	overlayColor = color.NRGBA{R: 0, G: 0, B: 0, A: 15}
	leadColor    = color.NRGBA{R: 209, G: 250, B: 229, A: 230}
	trailColor   = color.NRGBA{R: 34, G: 197, B: 94, A: 217}
)

// Canvas is the resizable drawing surface.
type Canvas interface {
	// SetSize sets the backing pixel dimensions.
	SetSize(w, h int)
	// Context returns the 2D drawing context, or false if none is available.
	Context() (Context, bool)
}

// Context draws onto a Canvas. Coordinates are device-independent and
// mapped to pixels by the scale set with SetTransform.
type Context interface {
	SetTransform(scale float64)
	Clear()
	FillRect(x, y, w, h float64, c color.NRGBA)
	SetFont(size float64)
	FillText(s string, x, y float64, c color.NRGBA)
}

// Viewport reports current window geometry.
type Viewport interface {
	Size() (w, h float64)
	DeviceScaleFactor() float64
}

// FrameID identifies a scheduled frame. Zero means no frame.
type FrameID uint64

// Scheduler runs a callback on the next display refresh.
type Scheduler interface {
	Schedule(cb func(ts time.Duration)) FrameID
	Cancel(id FrameID)
}

// Column is one glyph lane.
type Column struct {
	Y     float64
	Speed float64
}

// Controller drives the animation. It is not safe for concurrent use; all
// methods and frame callbacks must run on the host's UI goroutine.
type Controller struct {
	canvas   Canvas
	ctx      Context
	viewport Viewport
	sched    Scheduler
	rnd      Rand
	log      *zap.Logger

	glyphSource   string
	glyphs        []string
	reducedMotion bool

	columns   []Column
	glyphSize float64
	frame     FrameID
	lastFrame time.Duration
}

// Option configures a Controller.
type Option func(*Controller)

// WithRand sets the random source used for lanes, speeds and glyph choice.
func WithRand(r Rand) Option {
	return func(c *Controller) { c.rnd = r }
}

// WithGlyphs replaces the default glyph set. An empty set is ignored.
func WithGlyphs(glyphs string) Option {
	return func(c *Controller) {
		if glyphs != "" {
			c.glyphSource = glyphs
		}
	}
}

// WithReducedMotion suppresses activation for the lifetime of the controller.
func WithReducedMotion(reduce bool) Option {
	return func(c *Controller) { c.reducedMotion = reduce }
}

// WithLogger sets the debug logger.
func WithLogger(log *zap.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// New creates an idle controller. canvas may be nil, in which case every
// operation is a no-op.
func New(canvas Canvas, viewport Viewport, sched Scheduler, opts ...Option) *Controller {
	c := &Controller{
		canvas:      canvas,
		viewport:    viewport,
		sched:       sched,
		rnd:         globalRand{},
		log:         zap.NewNop(),
		glyphSource: DefaultGlyphs,
		glyphSize:   defaultGlyphSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Running reports whether a frame is outstanding.
func (c *Controller) Running() bool { return c.frame != 0 }

// GlyphSize returns the glyph size chosen by the last resize.
func (c *Controller) GlyphSize() float64 { return c.glyphSize }

// Columns returns a copy of the lane state.
func (c *Controller) Columns() []Column {
	out := make([]Column, len(c.columns))
	copy(out, c.columns)
	return out
}

// Activate starts the animation. It does nothing if the animation is already
// running, reduced motion was requested, or no surface is available.
func (c *Controller) Activate() {
	if c.canvas == nil || c.frame != 0 || c.reducedMotion {
		return
	}
	if c.glyphs == nil {
		c.buildGlyphs()
	}
	c.Resize()
	if c.ctx == nil {
		return
	}
	c.lastFrame = 0
	c.frame = c.sched.Schedule(c.step)
	c.log.Debug("rain activated", zap.Int("columns", len(c.columns)), zap.Float64("glyph_size", c.glyphSize))
}

// Deactivate cancels any pending frame and blanks the surface.
func (c *Controller) Deactivate() {
	if c.frame != 0 {
		c.sched.Cancel(c.frame)
		c.frame = 0
		c.log.Debug("rain deactivated")
	}
	if c.ctx != nil && c.canvas != nil {
		c.ctx.Clear()
	}
}

// Resize recomputes surface dimensions, glyph size and lanes from the
// current viewport. Lanes are rebuilt wholesale.
func (c *Controller) Resize() {
	if c.canvas == nil {
		return
	}
	w, h := c.viewport.Size()
	dpr := math.Max(1, c.viewport.DeviceScaleFactor())

	c.canvas.SetSize(int(math.Floor(w*dpr)), int(math.Floor(h*dpr)))
	ctx, ok := c.canvas.Context()
	if !ok {
		c.ctx = nil
		return
	}
	c.ctx = ctx
	c.ctx.SetTransform(dpr)

	c.glyphSize = glyphSizeFor(w)
	n := int(math.Ceil(w / c.glyphSize))
	if n < 0 {
		n = 0
	}
	columns := make([]Column, n)
	for i := range columns {
		columns[i] = Column{
			Y:     math.Floor(c.rnd.Float64() * h),
			Speed: c.newSpeed(),
		}
	}
	c.columns = columns
}

func glyphSizeFor(width float64) float64 {
	if width < narrowWidth {
		return narrowGlyphSize
	}
	return defaultGlyphSize
}

func (c *Controller) newSpeed() float64 {
	return c.glyphSize * (minSpeedFactor + c.rnd.Float64()*speedFactorRange)
}
