package engine

import "github.com/lixenwraith/neon-snake/components"

// Intent is the latched player intent shared by the input collaborator and the step
//
// The input handler writes it whenever an event arrives; the step reads it once at the
// start of each tick. Both run on the loop goroutine, so no locking is involved.
// The direction persists until overwritten. The start signal is discrete and consumed
// by the first tick that sees it; requesting it forgets the old direction at once, so an
// arrow pressed before that tick carries into the new round.
type Intent struct {
	direction components.Direction
	start     bool
}

// SetDirection latches a requested direction; DirNone is ignored
func (i *Intent) SetDirection(d components.Direction) {
	if d.IsNone() {
		return
	}
	i.direction = d
}

// Direction returns the latched direction
func (i *Intent) Direction() components.Direction {
	return i.direction
}

// RequestStart latches a start or restart signal and clears the latched direction
func (i *Intent) RequestStart() {
	i.start = true
	i.ClearDirection()
}

// StartPending reports a latched start signal without consuming it
func (i *Intent) StartPending() bool {
	return i.start
}

// TakeStart consumes the start signal
func (i *Intent) TakeStart() bool {
	s := i.start
	i.start = false
	return s
}

// ClearDirection forgets the latched direction
func (i *Intent) ClearDirection() {
	i.direction = components.DirNone
}
