package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	skyColor     = color.RGBA{15, 18, 32, 255}
	groundColor  = color.RGBA{110, 80, 50, 255}
	shellColor   = color.RGBA{240, 240, 240, 255}
	liveTraceCol = color.RGBA{255, 255, 255, 160}
	oldTraceCol  = color.RGBA{160, 160, 160, 90}
)

// Draw implements ebiten.Game. The simulation is y-up; everything is
// flipped through flipY on the way to the screen.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	a.drawTerrain(screen)
	a.drawTraces(screen)
	a.drawTanks(screen)
	a.drawShell(screen)
	a.drawHUD(screen)
}

func (a *App) flipY(y float64) float32 {
	return float32(float64(a.height) - y)
}

func (a *App) drawTerrain(screen *ebiten.Image) {
	if a.terrain == nil {
		return
	}
	for x, col := range a.terrain.Columns {
		for i := 0; i < len(col)/2; i++ {
			bot, top := col[2*i], col[2*i+1]
			vector.FillRect(screen, float32(x), a.flipY(top), 1, float32(top-bot), groundColor, false)
		}
	}
}

func (a *App) drawTanks(screen *ebiten.Image) {
	for _, p := range a.match.Players {
		a.drawRect(screen, p.Tank.BodyRect(), p.Color)
		a.drawRect(screen, p.Tank.BarrelRect(), p.Color)
	}
}

// drawRect strokes an oriented rect as its four edges.
func (a *App) drawRect(screen *ebiten.Image, r OrientedRect, col color.RGBA) {
	cs := r.Corners()
	for i := range cs {
		p0, p1 := cs[i], cs[(i+1)%4]
		vector.StrokeLine(screen,
			float32(p0.X), a.flipY(p0.Y),
			float32(p1.X), a.flipY(p1.Y),
			1.5, col, false)
	}
}

func (a *App) drawShell(screen *ebiten.Image) {
	sh := a.match.Shell()
	if sh == nil {
		return
	}
	a.drawRect(screen, sh.Rect(), shellColor)
}

func (a *App) drawTraces(screen *ebiten.Image) {
	if a.shownTrace != nil {
		a.drawTracePoints(screen, a.shownTrace.Points, oldTraceCol)
	}
	a.drawTracePoints(screen, a.livePoints, liveTraceCol)
}

func (a *App) drawTracePoints(screen *ebiten.Image, pts []Vec2, col color.RGBA) {
	for _, p := range pts {
		vector.FillCircle(screen, float32(p.X), a.flipY(p.Y), 1.2, col, false)
	}
}

func (a *App) drawHUD(screen *ebiten.Image) {
	vector.FillRect(screen, 8, 8, 10, 10, a.statusColor, false)
	ebitenutil.DebugPrintAt(screen, a.statusLine, 24, 8)
	if a.lastKillName != "" {
		ebitenutil.DebugPrintAt(screen, a.lastKillName+" eliminated", 8, 24)
	}
	if a.over && len(a.scores.Results) > 0 {
		res := a.scores.Results[len(a.scores.Results)-1]
		ebitenutil.DebugPrintAt(screen, res.Winner+" wins! press N for a new match", 8, 40)
	}
}
