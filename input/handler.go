package input

import (
	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/neon-snake/components"
	"github.com/lixenwraith/neon-snake/constants"
	"github.com/lixenwraith/neon-snake/engine"
)

// Handler translates terminal events into latched intent and UI commands
// Runs on the loop goroutine between frames
type Handler struct {
	ctx  *engine.GameContext
	keys *KeyTable

	// Swipe tracking for button-1 drags
	dragging        bool
	dragX, dragY    int
	swipeThresholdX int
	swipeThresholdY int
}

// NewHandler creates an input handler; a nil table uses the default bindings
func NewHandler(ctx *engine.GameContext, keys *KeyTable) *Handler {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Handler{
		ctx:             ctx,
		keys:            keys,
		swipeThresholdX: constants.SwipeThresholdCells * constants.CellColumns,
		swipeThresholdY: constants.SwipeThresholdCells,
	}
}

// HandleEvent processes a tcell event and returns false if the game should exit
func (h *Handler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)
	case *tcell.EventResize:
		w, ht := ev.Size()
		h.ctx.Resize(ViewportForScreen(w, ht))
		log.WithFields(log.Fields{"cols": h.ctx.Viewport.Cols(), "rows": h.ctx.Viewport.Rows()}).Debug("resized")
	case *tcell.EventMouse:
		h.handleMouse(ev)
	}
	return true
}

// ViewportForScreen sizes the play field to a terminal of w x h characters
func ViewportForScreen(w, h int) engine.Viewport {
	return engine.ViewportForCells(w/constants.CellColumns, h-constants.HUDHeight)
}

func (h *Handler) handleKey(ev *tcell.EventKey) bool {
	action := h.keys.Lookup(ev)
	switch action {
	case ActionQuit:
		return false
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		h.ctx.Intent.SetDirection(action.Direction())
	case ActionStart:
		h.ctx.Intent.RequestStart()
	case ActionPause:
		paused := h.ctx.TogglePause()
		log.WithField("paused", paused).Debug("pause toggled")
	case ActionIntensityUp:
		h.ctx.State.AdjustIntensity(1)
	case ActionIntensityDown:
		h.ctx.State.AdjustIntensity(-1)
	}
	return true
}

// handleMouse starts idle screens on click and turns drags into swipes while playing
func (h *Handler) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !h.dragging:
		h.dragging = true
		h.dragX, h.dragY = x, y
		if h.ctx.State.Phase != engine.PhasePlaying {
			h.ctx.Intent.RequestStart()
		}

	case !pressed && h.dragging:
		h.dragging = false
		if h.ctx.State.Phase != engine.PhasePlaying {
			return
		}
		if dir := SwipeDirection(x-h.dragX, y-h.dragY, h.swipeThresholdX, h.swipeThresholdY); !dir.IsNone() {
			h.ctx.Intent.SetDirection(dir)
		}
	}
}

// SwipeDirection picks the dominant axis of a drag of (dx, dy) terminal cells
// Horizontal distance is compared in grid cells so both axes weigh the same
func SwipeDirection(dx, dy, thresholdX, thresholdY int) components.Direction {
	ax, ay := abs(dx), abs(dy)
	gx := float64(ax) / constants.CellColumns

	if gx >= float64(ay) {
		if ax < thresholdX {
			return components.DirNone
		}
		if dx > 0 {
			return components.DirRight
		}
		return components.DirLeft
	}

	if ay < thresholdY {
		return components.DirNone
	}
	if dy > 0 {
		return components.DirDown
	}
	return components.DirUp
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
