package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/iburimskiy/portfolio-rain/internal/theme"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Button dimensions
	ButtonWidth  = 140
	ButtonHeight = 36
	ButtonX      = 20
	ButtonY      = 60
	ButtonGap    = 12

	// Notification banner
	BannerWidth  = 300
	BannerHeight = 48
	BannerTop    = 100
	BannerRight  = 20

	envPrefix = "PORTFOLIO_"
)

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  WindowWidth,
			Height: WindowHeight,
			Title:  "Pasindu Kumarasinghe | Portfolio",
		},
		Title: "Hi, I'm Pasindu Kumarasinghe",
		Theme: ThemeConfig{
			Default: string(theme.Default),
		},
		Rain: RainConfig{},
		Contact: ContactConfig{
			Method:         "POST",
			TimeoutSeconds: 15,
		},
		Sound: true,
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (PORTFOLIO_*, nested keys joined by "__").
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	// PORTFOLIO_CONTACT__ENDPOINT -> contact.endpoint
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if _, err := theme.Parse(c.Theme.Default); err != nil {
		return fmt.Errorf("theme.default: %w", err)
	}
	if c.Contact.TimeoutSeconds < 0 {
		return fmt.Errorf("contact.timeout_seconds must be non-negative")
	}
	switch strings.ToUpper(c.Contact.Method) {
	case "", "POST", "PUT":
	default:
		return fmt.Errorf("invalid contact.method %q: must be POST or PUT", c.Contact.Method)
	}
	if c.Rain.Font != "" {
		if _, err := os.Stat(c.Rain.Font); err != nil {
			return fmt.Errorf("rain.font: %w", err)
		}
	}
	return nil
}
