package game

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/portfolio-rain/internal/typeface"
)

func faceSource(f *typeface.Face) (*text.GoTextFaceSource, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(f.Data))
	if err != nil {
		return nil, fmt.Errorf("loading face: %w", err)
	}
	return src, nil
}
