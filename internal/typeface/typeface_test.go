package typeface

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/iburimskiy/portfolio-rain/internal/rain"
)

func TestLoadDefaultIsGoMono(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, gomono.TTF, f.Data)
	assert.True(t, f.Has('p'))
	assert.False(t, f.Has('ア'))
}

func TestCoveredDropsMissingRunes(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)

	got := f.Covered(rain.DefaultGlyphs)

	assert.Equal(t, strings.Repeat("pasindukumarasinghe", 2), got)
	for _, r := range got {
		assert.True(t, f.Has(r), "%q", r)
	}
}

func TestCoveredKeepsEverythingDrawable(t *testing.T) {
	f, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "01abc", f.Covered("01abc"))
	assert.Empty(t, f.Covered("アイウ"))
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	require.NoError(t, os.WriteFile(path, gomono.TTF, 0o644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.True(t, f.Has('0'))
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.ttf"))
	assert.Error(t, err)

	_, err = Parse([]byte("not a font"))
	assert.ErrorContains(t, err, "parsing font")
}
