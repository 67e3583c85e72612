package game

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/portfolio-rain/internal/config"
	"github.com/iburimskiy/portfolio-rain/internal/notify"
	"github.com/iburimskiy/portfolio-rain/internal/theme"
)

const (
	titleSize  = 32
	titleY     = 140
	labelSize  = 14
	bannerSize = 14
	bannerLine = 18

	// bannerColumns fits Go Mono at bannerSize inside BannerWidth.
	bannerColumns = 30
)

func (g *Game) Draw(screen *ebiten.Image) {
	now := time.Now()
	p := theme.PaletteFor(g.themes.Current())

	screen.Fill(p.Background)
	if img := g.canvas.image(); img != nil && g.back.Running() {
		screen.DrawImage(img, nil)
	}

	g.drawTitle(screen, p, now)
	for i, b := range g.buttons {
		g.drawButton(screen, p, b, i == g.focus)
	}
	g.drawBanner(screen, now)

	help := "T: light/dark  H: hacker  C: contact  Tab/Enter: focus/activate  Q: quit"
	ebitenutil.DebugPrintAt(screen, help, 12, 12)
}

// px converts logical pixels to screen pixels.
func (g *Game) px(v float64) float64 { return v * g.view.DeviceScaleFactor() }

func (g *Game) face(size float64) *text.GoTextFace {
	return &text.GoTextFace{Source: g.pageFont, Size: g.px(size)}
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(g.px(x), g.px(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, g.face(size), op)
}

func (g *Game) drawTitle(screen *ebiten.Image, p theme.Palette, now time.Time) {
	shown := g.title.Visible(now)
	if !g.title.Done(now) && now.UnixMilli()/500%2 == 0 {
		shown += "_"
	}
	g.drawText(screen, shown, config.ButtonX, titleY, titleSize, p.Text)
}

func (g *Game) drawButton(screen *ebiten.Image, p theme.Palette, b *button, focused bool) {
	var bg color.RGBA
	switch {
	case b.isDisabled():
		bg = withAlpha(p.Surface, 0.5)
	case b.pressed:
		bg = withAlpha(p.Accent, 0.6)
	case b.hovered:
		bg = withAlpha(p.Accent, 0.35)
	case b.active():
		bg = withAlpha(p.Accent, 0.2)
	default:
		bg = p.Surface
	}

	x, y := float32(g.px(float64(b.x))), float32(g.px(float64(b.y)))
	w, h := float32(g.px(float64(b.w))), float32(g.px(float64(b.h)))
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)

	border := p.Surface
	if b.active() || focused {
		border = p.Accent
	}
	vector.StrokeRect(screen, x, y, w, h, float32(g.px(2)), border, false)

	label := b.label()
	tw, th := text.Measure(label, g.face(labelSize), 0)
	lx := float64(b.x) + (float64(b.w)-tw/g.view.DeviceScaleFactor())/2
	ly := float64(b.y) + (float64(b.h)-th/g.view.DeviceScaleFactor())/2
	g.drawText(screen, label, lx, ly, labelSize, p.Text)
}

func (g *Game) drawBanner(screen *ebiten.Image, now time.Time) {
	n, ok := g.banner.Current(now)
	if !ok {
		return
	}
	offset := g.banner.Offset(now)
	if offset >= notify.SlideDistance {
		return
	}

	lines := notify.Wrap(n.Text, bannerColumns)
	w, _ := g.view.Size()
	x := w - config.BannerRight - config.BannerWidth + offset
	y := float64(config.BannerTop)
	h := float64(config.BannerHeight) + float64(len(lines)-1)*bannerLine

	vector.DrawFilledRect(screen,
		float32(g.px(x)), float32(g.px(y)),
		float32(g.px(config.BannerWidth)), float32(g.px(h)),
		n.Kind.Color(), false)
	for i, line := range lines {
		g.drawText(screen, line, x+16, y+15+float64(i)*bannerLine, bannerSize, color.White)
	}
}
