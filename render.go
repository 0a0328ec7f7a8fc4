package main

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const strokeWidth = 1

// Draw runs one engine frame onto the screen and the optional debug overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.engine.Frame(ebitenSurface{dst: screen})

	if *debugFlag {
		tps := ebiten.ActualTPS()
		if tps < 0 {
			tps = 0
		}
		p := g.engine.Player()
		debugMsg := fmt.Sprintf("FPS: %.1f (%.1f TPS)\nPos: %.1f, %.1f\nAngle: %.1f deg\nRays: %d  Hit tiles: %d",
			ebiten.ActualFPS(), tps, p.X, p.Y, p.Angle*180/math.Pi, len(g.engine.Rays()), g.engine.HitTiles())
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten: the map extent.
func (g *Game) Layout(_, _ int) (int, int) {
	grid := g.engine.Grid()
	return int(grid.Width()), int(grid.Height())
}

// ebitenSurface draws engine primitives onto an Ebiten image.
type ebitenSurface struct {
	dst *ebiten.Image
}

func (s ebitenSurface) Clear(x, y, w, h float64) {
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	if sub, ok := s.dst.SubImage(r).(*ebiten.Image); ok {
		sub.Clear()
	}
}

func (s ebitenSurface) FillRect(x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), clr, false)
}

func (s ebitenSurface) StrokeRect(x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(s.dst, float32(x), float32(y), float32(w), float32(h), strokeWidth, clr, false)
}

func (s ebitenSurface) FillCircle(cx, cy, r float64, clr color.Color) {
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), clr, true)
}

func (s ebitenSurface) StrokeCircle(cx, cy, r float64, clr color.Color) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), strokeWidth, clr, true)
}

func (s ebitenSurface) StrokeLine(x0, y0, x1, y1 float64, clr color.Color) {
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), strokeWidth, clr, true)
}
