package cmd

import (
	"github.com/iburimskiy/portfolio-rain/internal/config"
	"github.com/iburimskiy/portfolio-rain/internal/prefs"
	"github.com/iburimskiy/portfolio-rain/internal/theme"
)

// openStore returns the theme preference store selected by c.
func openStore(c *config.Config) (theme.Store, error) {
	if c.NoPersist {
		return prefs.NewMemoryStore(), nil
	}
	path := c.PrefsFile
	if path == "" {
		p, err := prefs.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}
	return prefs.OpenFile(path)
}
