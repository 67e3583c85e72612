package config

// Config is the top-level configuration, corresponding to portfolio.yml.
type Config struct {
	Window  WindowConfig  `yaml:"window" koanf:"window"`
	Title   string        `yaml:"title" koanf:"title"`
	Theme   ThemeConfig   `yaml:"theme" koanf:"theme"`
	Rain    RainConfig    `yaml:"rain" koanf:"rain"`
	Contact ContactConfig `yaml:"contact" koanf:"contact"`
	// PrefsFile overrides where the theme preference is saved.
	PrefsFile string `yaml:"prefs_file" koanf:"prefs_file"`
	NoPersist bool   `yaml:"no_persist" koanf:"no_persist"`
	Sound     bool   `yaml:"sound" koanf:"sound"`
}

// WindowConfig holds the initial window geometry.
type WindowConfig struct {
	Width  int    `yaml:"width" koanf:"width"`
	Height int    `yaml:"height" koanf:"height"`
	Title  string `yaml:"title" koanf:"title"`
}

// ThemeConfig holds theme settings.
type ThemeConfig struct {
	// Default is used when no preference has been saved yet.
	Default string `yaml:"default" koanf:"default"`
}

// RainConfig tunes the hacker-theme background.
type RainConfig struct {
	// Glyphs replaces the built-in glyph set.
	Glyphs string `yaml:"glyphs" koanf:"glyphs"`
	// Font is a TTF/OTF/TTC file used for glyphs. Glyphs the font cannot
	// draw are left out; the built-in Go Mono face draws only the latin ones.
	Font          string `yaml:"font" koanf:"font"`
	ReducedMotion bool   `yaml:"reduced_motion" koanf:"reduced_motion"`
}

// ContactConfig points the contact form at a form-handling endpoint.
type ContactConfig struct {
	Endpoint       string `yaml:"endpoint" koanf:"endpoint"`
	Method         string `yaml:"method" koanf:"method"`
	TimeoutSeconds int    `yaml:"timeout_seconds" koanf:"timeout_seconds"`
}
