// Package theme holds the page's presentation theme and switches between
// light, dark and the decorative hacker theme.
package theme

import (
	"errors"
	"fmt"
	"image/color"

	"go.uber.org/zap"
)

// Name is a theme identifier as persisted in the preference store.
type Name string

const (
	Light  Name = "light"
	Dark   Name = "dark"
	Hacker Name = "hacker"

	// Default applies when nothing was saved.
	Default = Dark

	// StoreKey is the preference key holding the theme name.
	StoreKey = "theme"
)

// ErrUnknownTheme is returned for names outside Light, Dark and Hacker.
var ErrUnknownTheme = errors.New("unknown theme")

// Parse validates a theme name.
func Parse(s string) (Name, error) {
	switch n := Name(s); n {
	case Light, Dark, Hacker:
		return n, nil
	}
	return "", fmt.Errorf("%w %q: must be one of light, dark, hacker", ErrUnknownTheme, s)
}

// Store persists one string value per key.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Listener is notified after every theme change, including the initial one.
type Listener func(Name)

// Manager owns the current theme.
type Manager struct {
	store     Store
	current   Name
	fallback  Name
	listeners []Listener
	log       *zap.Logger
}

// NewManager returns a manager with no theme applied yet; call Init.
func NewManager(store Store, log *zap.Logger, listeners ...Listener) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{store: store, fallback: Default, listeners: listeners, log: log}
}

// OnChange registers another listener.
func (m *Manager) OnChange(l Listener) {
	m.listeners = append(m.listeners, l)
}

// Current returns the applied theme.
func (m *Manager) Current() Name { return m.current }

// SetFallback changes the theme Init applies when nothing is saved.
func (m *Manager) SetFallback(n Name) {
	m.fallback = n
}

// Init applies the saved theme, or the fallback (Default unless changed)
// when none is saved. A saved value that is not a known theme is still
// applied as-is, like a stale attribute.
func (m *Manager) Init() {
	saved, ok := m.store.Get(StoreKey)
	if !ok || saved == "" {
		saved = string(m.fallback)
	}
	m.apply(Name(saved))
}

// Toggle flips light to dark; any other theme becomes light.
func (m *Manager) Toggle() {
	next := Light
	if m.current == Light {
		next = Dark
	}
	m.change(next)
}

// ToggleHacker flips hacker to dark; any other theme becomes hacker.
func (m *Manager) ToggleHacker() {
	next := Hacker
	if m.current == Hacker {
		next = Dark
	}
	m.change(next)
}

// Set applies and saves an explicit theme.
func (m *Manager) Set(name string) error {
	n, err := Parse(name)
	if err != nil {
		return err
	}
	m.change(n)
	return nil
}

func (m *Manager) change(n Name) {
	m.apply(n)
	if err := m.store.Set(StoreKey, string(n)); err != nil {
		m.log.Warn("saving theme preference failed", zap.String("theme", string(n)), zap.Error(err))
	}
}

func (m *Manager) apply(n Name) {
	m.current = n
	m.log.Debug("theme applied", zap.String("theme", string(n)))
	for _, l := range m.listeners {
		l(n)
	}
}

// Icon is the glyph name shown on the light/dark toggle.
func Icon(n Name) string {
	if n == Dark {
		return "sun"
	}
	return "moon"
}

// HackerToggleActive reports which toggle is marked active: the hacker
// toggle for the hacker theme, the light/dark toggle otherwise.
func HackerToggleActive(n Name) bool {
	return n == Hacker
}

// Palette is the page colours for a theme.
type Palette struct {
	Background color.RGBA
	Surface    color.RGBA
	Text       color.RGBA
	Accent     color.RGBA
}

var palettes = map[Name]Palette{
	Light: {
		Background: color.RGBA{R: 248, G: 250, B: 252, A: 255},
		Surface:    color.RGBA{R: 226, G: 232, B: 240, A: 255},
		Text:       color.RGBA{R: 15, G: 23, B: 42, A: 255},
		Accent:     color.RGBA{R: 37, G: 99, B: 235, A: 255},
	},
	Dark: {
		Background: color.RGBA{R: 15, G: 23, B: 42, A: 255},
		Surface:    color.RGBA{R: 30, G: 41, B: 59, A: 255},
		Text:       color.RGBA{R: 226, G: 232, B: 240, A: 255},
		Accent:     color.RGBA{R: 96, G: 165, B: 250, A: 255},
	},
	Hacker: {
		Background: color.RGBA{R: 0, G: 0, B: 0, A: 255},
		Surface:    color.RGBA{R: 0, G: 26, B: 10, A: 230},
		Text:       color.RGBA{R: 209, G: 250, B: 229, A: 255},
		Accent:     color.RGBA{R: 34, G: 197, B: 94, A: 255},
	},
}

// PaletteFor returns the colours for n, falling back to Default.
func PaletteFor(n Name) Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[Default]
}
