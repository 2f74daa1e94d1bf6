package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/neon-snake/components"
	"github.com/lixenwraith/neon-snake/constants"
	"github.com/lixenwraith/neon-snake/engine"
)

// Glyphs
const (
	runeGrid       = '·'
	runeSnake      = '█'
	runeFood       = '●'
	runeTracer     = '░'
	runeWave       = '∘'
	runeParticle   = '•'
	runeSmallDot   = '·'
	runeSpark      = '*'
	runeSmallSpark = '+'
)

// TerminalRenderer draws snapshots onto a tcell screen
// One grid cell spans CellColumns terminal columns; the field starts under the HUD
type TerminalRenderer struct {
	screen tcell.Screen
	clock  engine.TimeProvider
	start  time.Time
}

// NewTerminalRenderer creates a new terminal renderer
// clock drives the grid and food animations; nil uses the monotonic clock
func NewTerminalRenderer(screen tcell.Screen, clock engine.TimeProvider) *TerminalRenderer {
	if clock == nil {
		clock = engine.NewMonotonicTimeProvider()
	}
	return &TerminalRenderer{
		screen: screen,
		clock:  clock,
		start:  clock.Now(),
	}
}

// Render draws the entire game frame
func (r *TerminalRenderer) Render(snap *engine.Snapshot) {
	elapsed := r.clock.Now().Sub(r.start)
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)

	r.screen.SetStyle(defaultStyle)
	r.screen.Clear()

	// Back to front
	r.drawGrid(snap.Viewport, elapsed, defaultStyle)
	r.drawTracers(snap, defaultStyle)
	r.drawShockwaves(snap, defaultStyle)
	r.drawParticles(snap, defaultStyle)
	r.drawSparks(snap, defaultStyle)
	r.drawFood(snap, elapsed, defaultStyle)
	r.drawSnake(snap, defaultStyle)
	r.drawHUD(snap, defaultStyle)

	switch {
	case snap.Phase == engine.PhaseStart:
		r.drawStartOverlay(snap, defaultStyle)
	case snap.Phase == engine.PhaseGameOver:
		r.drawGameOverOverlay(snap, defaultStyle)
	case snap.Paused:
		r.drawPausedOverlay(snap, defaultStyle)
	}

	r.screen.Show()
}

// CellOrigin returns the terminal position of the left column of a grid cell
func CellOrigin(c components.Cell) (int, int) {
	return c.X * constants.CellColumns, c.Y + constants.HUDHeight
}

// pixelToScreen maps a logical pixel to a terminal position at half-cell horizontal resolution
func pixelToScreen(vp engine.Viewport, x, y float64) (int, int) {
	if vp.GridSize <= 0 {
		return 0, 0
	}
	g := float64(vp.GridSize)
	sx := int(math.Floor(x * constants.CellColumns / g))
	sy := int(math.Floor(y/g)) + constants.HUDHeight
	return sx, sy
}

// inField reports whether a terminal position lies on the drawn play field
func inField(vp engine.Viewport, sx, sy int) bool {
	return sx >= 0 && sx < vp.Cols()*constants.CellColumns &&
		sy >= constants.HUDHeight && sy < vp.Rows()+constants.HUDHeight
}

func (r *TerminalRenderer) setCell(sx, sy int, ch rune, style tcell.Style) {
	r.screen.SetContent(sx, sy, ch, nil, style)
}

// drawGrid draws one dim dot per cell with the slowly cycling grid hue
func (r *TerminalRenderer) drawGrid(vp engine.Viewport, elapsed time.Duration, defaultStyle tcell.Style) {
	style := defaultStyle.Foreground(ToTcell(GridColor(elapsed)))
	for y := 0; y < vp.Rows(); y++ {
		for x := 0; x < vp.Cols(); x++ {
			sx, sy := CellOrigin(components.Cell{X: x, Y: y})
			r.setCell(sx, sy, runeGrid, style)
		}
	}
}

func (r *TerminalRenderer) drawTracers(snap *engine.Snapshot, defaultStyle tcell.Style) {
	for _, tr := range snap.Tracers {
		cell := snap.Viewport.PixelToCell(tr.X, tr.Y)
		sx, sy := CellOrigin(cell)
		if !inField(snap.Viewport, sx, sy) {
			continue
		}
		// Tracers glow at a third of their remaining life
		style := defaultStyle.Foreground(ToTcell(Fade(Neon(tr.Color), tr.Alpha()*0.3)))
		for i := 0; i < constants.CellColumns; i++ {
			r.setCell(sx+i, sy, runeTracer, style)
		}
	}
}

// drawShockwaves samples each ring at roughly half-cell spacing
func (r *TerminalRenderer) drawShockwaves(snap *engine.Snapshot, defaultStyle tcell.Style) {
	vp := snap.Viewport
	step := float64(vp.GridSize) / constants.CellColumns
	if step <= 0 {
		return
	}
	for _, w := range snap.Shockwaves {
		if w.Radius <= 0 {
			continue
		}
		style := defaultStyle.Foreground(ToTcell(Fade(Neon(w.Color), w.Alpha())))
		points := int(2*math.Pi*w.Radius/step) + 8
		for i := 0; i < points; i++ {
			a := 2 * math.Pi * float64(i) / float64(points)
			sx, sy := pixelToScreen(vp, w.X+math.Cos(a)*w.Radius, w.Y+math.Sin(a)*w.Radius)
			if inField(vp, sx, sy) {
				r.setCell(sx, sy, runeWave, style)
			}
		}
	}
}

func (r *TerminalRenderer) drawParticles(snap *engine.Snapshot, defaultStyle tcell.Style) {
	for _, p := range snap.Particles {
		ch := runeSmallDot
		if p.Size > 3 {
			ch = runeParticle
		}
		r.drawPoint(snap.Viewport, p, ch, defaultStyle)
	}
}

func (r *TerminalRenderer) drawSparks(snap *engine.Snapshot, defaultStyle tcell.Style) {
	for _, p := range snap.Sparks {
		ch := runeSmallSpark
		if p.Size > 4 {
			ch = runeSpark
		}
		r.drawPoint(snap.Viewport, p, ch, defaultStyle)
	}
}

func (r *TerminalRenderer) drawPoint(vp engine.Viewport, p components.Particle, ch rune, defaultStyle tcell.Style) {
	sx, sy := pixelToScreen(vp, p.X, p.Y)
	if !inField(vp, sx, sy) {
		return
	}
	style := defaultStyle.Foreground(ToTcell(Fade(Neon(p.Color), p.Alpha())))
	r.setCell(sx, sy, ch, style)
}

func (r *TerminalRenderer) drawFood(snap *engine.Snapshot, elapsed time.Duration, defaultStyle tcell.Style) {
	if snap.Phase == engine.PhaseStart {
		return
	}
	sx, sy := CellOrigin(snap.Food.Cell)
	if !inField(snap.Viewport, sx, sy) {
		return
	}
	style := defaultStyle.Foreground(ToTcell(Fade(Neon(snap.Food.Color), FoodPulse(elapsed)))).Bold(true)
	r.setCell(sx, sy, runeFood, style)
	for i := 1; i < constants.CellColumns; i++ {
		r.setCell(sx+i, sy, ' ', defaultStyle)
	}
}

// drawSnake draws tail first so the head wins on overlap
func (r *TerminalRenderer) drawSnake(snap *engine.Snapshot, defaultStyle tcell.Style) {
	for i := len(snap.Snake) - 1; i >= 0; i-- {
		sx, sy := CellOrigin(snap.Snake[i])
		if !inField(snap.Viewport, sx, sy) {
			continue
		}
		color := RgbSnakeHead
		if i > 0 {
			color = ToTcell(SnakeSegmentColor(i))
		}
		style := defaultStyle.Foreground(color)
		for c := 0; c < constants.CellColumns; c++ {
			r.setCell(sx+c, sy, runeSnake, style)
		}
	}
}

// HUDText returns the left-aligned HUD line
func HUDText(snap *engine.Snapshot) string {
	return fmt.Sprintf("SCORE %d  LEVEL %d  SPEED %.1fx  FX %d", snap.Score, snap.Level, snap.Speed, snap.Intensity)
}

func (r *TerminalRenderer) drawHUD(snap *engine.Snapshot, defaultStyle tcell.Style) {
	width, _ := r.screen.Size()
	for x := 0; x < width; x++ {
		r.setCell(x, 0, ' ', defaultStyle)
	}

	r.drawText(1, 0, HUDText(snap), defaultStyle.Foreground(RgbHUDValue))

	if snap.Paused {
		label := "[" + constants.PausedText + "]"
		x := width - runewidth.StringWidth(label) - 1
		r.drawText(x, 0, label, defaultStyle.Foreground(RgbHUDPaused).Bold(true))
		return
	}
	title := constants.TitleText
	r.drawText(width-runewidth.StringWidth(title)-1, 0, title, defaultStyle.Foreground(RgbHUDLabel))
}

func (r *TerminalRenderer) drawStartOverlay(snap *engine.Snapshot, defaultStyle tcell.Style) {
	mid := r.fieldMidRow(snap)
	r.drawCentered(mid-1, constants.TitleText, defaultStyle.Foreground(RgbOverlayTitle).Bold(true))
	r.drawCentered(mid+1, constants.StartPromptText, defaultStyle.Foreground(RgbOverlayText))
}

func (r *TerminalRenderer) drawGameOverOverlay(snap *engine.Snapshot, defaultStyle tcell.Style) {
	mid := r.fieldMidRow(snap)
	r.drawCentered(mid-2, constants.GameOverText, defaultStyle.Foreground(RgbGameOver).Bold(true))
	r.drawCentered(mid, FinalScoreText(snap.FinalScore), defaultStyle.Foreground(RgbHUDValue))
	r.drawCentered(mid+2, constants.RestartPromptText, defaultStyle.Foreground(RgbOverlayText))
}

func (r *TerminalRenderer) drawPausedOverlay(snap *engine.Snapshot, defaultStyle tcell.Style) {
	r.drawCentered(r.fieldMidRow(snap), constants.PausedText, defaultStyle.Foreground(RgbHUDPaused).Bold(true))
}

// FinalScoreText formats the game over score line
func FinalScoreText(score int) string {
	return fmt.Sprintf("FINAL SCORE %d", score)
}

func (r *TerminalRenderer) fieldMidRow(snap *engine.Snapshot) int {
	return constants.HUDHeight + snap.Viewport.Rows()/2
}

// drawCentered draws text centered on the screen, padded by one blank column each side
func (r *TerminalRenderer) drawCentered(y int, text string, style tcell.Style) {
	width, _ := r.screen.Size()
	w := runewidth.StringWidth(text)
	x := (width - w) / 2
	if x < 0 {
		x = 0
	}
	_, bg, _ := style.Decompose()
	pad := tcell.StyleDefault.Background(bg)
	r.setCell(x-1, y, ' ', pad)
	r.setCell(x+w, y, ' ', pad)
	r.drawText(x, y, text, style)
}

// drawText writes text at (x, y) honoring wide runes
func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.setCell(x, y, ch, style)
		w := runewidth.RuneWidth(ch)
		if w < 1 {
			w = 1
		}
		x += w
	}
}
