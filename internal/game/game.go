// Package game hosts the portfolio page in an ebiten window: page chrome,
// theme switching, the contact form and the hacker-theme rain.
package game

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"go.uber.org/zap"

	"github.com/iburimskiy/portfolio-rain/internal/backdrop"
	"github.com/iburimskiy/portfolio-rain/internal/config"
	"github.com/iburimskiy/portfolio-rain/internal/contact"
	"github.com/iburimskiy/portfolio-rain/internal/edge"
	"github.com/iburimskiy/portfolio-rain/internal/frame"
	"github.com/iburimskiy/portfolio-rain/internal/hero"
	"github.com/iburimskiy/portfolio-rain/internal/notify"
	"github.com/iburimskiy/portfolio-rain/internal/rain"
	"github.com/iburimskiy/portfolio-rain/internal/sound"
	"github.com/iburimskiy/portfolio-rain/internal/theme"
	"github.com/iburimskiy/portfolio-rain/internal/typeface"
)

// Game implements ebiten.Game.
type Game struct {
	cfg *config.Config
	log *zap.Logger

	themes *theme.Manager
	rain   *rain.Controller
	frames *frame.Loop
	canvas *canvas
	view   *backdrop.Viewport
	back   *backdrop.Backdrop
	start  time.Time

	pageFont *text.GoTextFaceSource
	title    *hero.Typewriter
	banner   notify.Banner
	chime    *sound.Chime

	// contact flow
	client  *contact.Client
	forms   chan formInput
	results <-chan contact.Result
	draft   contact.Form
	asking  bool
	sending bool
	cancel  context.CancelFunc

	// input edge detection
	buttons []*button
	focus   int
	keys    *edge.Detector[ebiten.Key]
}

// New builds the page. store holds the saved theme.
func New(cfg *config.Config, store theme.Store, log *zap.Logger) (*Game, error) {
	if log == nil {
		log = zap.NewNop()
	}
	pageFace, err := typeface.Load("")
	if err != nil {
		return nil, err
	}
	glyphFace := pageFace
	if cfg.Rain.Font != "" {
		if glyphFace, err = typeface.Load(cfg.Rain.Font); err != nil {
			return nil, err
		}
	}
	pageFont, err := faceSource(pageFace)
	if err != nil {
		return nil, err
	}
	glyphFont, err := faceSource(glyphFace)
	if err != nil {
		return nil, err
	}

	glyphs := cfg.Rain.Glyphs
	if glyphs == "" {
		glyphs = rain.DefaultGlyphs
	}
	drawable := glyphFace.Covered(glyphs)
	if drawable != glyphs {
		log.Info("skipping glyphs the font cannot draw",
			zap.Int("kept", len([]rune(drawable))),
			zap.Int("wanted", len([]rune(glyphs))))
	}
	if drawable == "" {
		return nil, fmt.Errorf("rain font has none of the glyphs %q", glyphs)
	}

	g := &Game{
		cfg:      cfg,
		log:      log,
		frames:   frame.NewLoop(),
		canvas:   newCanvas(glyphFont),
		view:     backdrop.NewViewport(cfg.Window.Width, cfg.Window.Height),
		start:    time.Now(),
		pageFont: pageFont,
		chime:    sound.NewChime(cfg.Sound, log.Named("sound")),
		forms:    make(chan formInput, 1),
		keys:     edge.NewDetector[ebiten.Key](),
		focus:    -1,
	}
	g.title = hero.NewTypewriter(cfg.Title, g.start)
	g.rain = rain.New(g.canvas, g.view, g.frames,
		rain.WithGlyphs(drawable),
		rain.WithReducedMotion(cfg.Rain.ReducedMotion),
		rain.WithLogger(log.Named("rain")),
	)
	g.back = backdrop.New(g.rain, g.view)
	opts := []contact.Option{
		contact.WithMethod(cfg.Contact.Method),
		contact.WithLogger(log.Named("contact")),
	}
	if cfg.Contact.TimeoutSeconds > 0 {
		opts = append(opts, contact.WithHTTPClient(&http.Client{
			Timeout: time.Duration(cfg.Contact.TimeoutSeconds) * time.Second,
		}))
	}
	g.client = contact.NewClient(cfg.Contact.Endpoint, opts...)
	g.buttons = g.newButtons()

	g.themes = theme.NewManager(store, log.Named("theme"), g.back.OnTheme)
	if n, err := theme.Parse(cfg.Theme.Default); err == nil {
		g.themes.SetFallback(n)
	}
	g.themes.Init()
	return g, nil
}

// Theme returns the applied theme.
func (g *Game) Theme() theme.Name { return g.themes.Current() }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		return g.keys.Pressed(k, ebiten.IsKeyPressed(k))
	}
	anyPressed := func(ks ...ebiten.Key) bool {
		states := make(map[ebiten.Key]bool, len(ks))
		for _, k := range ks {
			states[k] = ebiten.IsKeyPressed(k)
		}
		return g.keys.Any(states)
	}

	g.updateButtons()

	var (
		toggle   = justPressed(ebiten.KeyT)
		hacker   = justPressed(ebiten.KeyH)
		form     = justPressed(ebiten.KeyC)
		tab      = justPressed(ebiten.KeyTab)
		activate = anyPressed(ebiten.KeyEnter, ebiten.KeySpace)
		quit     = anyPressed(ebiten.KeyEscape, ebiten.KeyQ)
	)
	if quit {
		return ebiten.Termination
	}
	switch {
	case toggle:
		g.themes.Toggle()
	case hacker:
		g.themes.ToggleHacker()
	case form:
		g.openContact()
	case tab:
		g.focus = (g.focus + 1) % len(g.buttons)
	case activate && g.focus >= 0:
		g.buttons[g.focus].onClick()
	}

	g.pollContact()
	g.frames.Tick(time.Since(g.start))
	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.back.Layout(outsideWidth, outsideHeight, ebiten.Monitor().DeviceScaleFactor())
}

// Close releases audio and cancels any submission in flight.
func (g *Game) Close() {
	if g.cancel != nil {
		g.cancel()
	}
	g.rain.Deactivate()
	g.chime.Close()
}

// show displays a banner with its chime.
func (g *Game) show(n notify.Notification) {
	g.banner.Show(n, time.Now())
	g.chime.Play(n.Kind)
}

// Open builds the page and runs it until the window is closed.
func Open(cfg *config.Config, store theme.Store, log *zap.Logger) error {
	g, err := New(cfg, store, log)
	if err != nil {
		return err
	}
	g.log.Info("opening window",
		zap.String("theme", string(g.Theme())),
		zap.Bool("reduced_motion", cfg.Rain.ReducedMotion))
	return Run(g)
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	defer g.Close()

	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
