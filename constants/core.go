package constants

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// BaseTickDuration is the simulation tick length at speed 1.0
	// Effective tick is BaseTickDuration / speed
	BaseTickDuration = 150 * time.Millisecond

	// InputEventBuffer is the capacity of the terminal event channel
	InputEventBuffer = 256
)

// Grid Geometry (logical pixels)
const (
	// GridSize is the pixel edge of one grid cell on wide play fields
	GridSize = 20

	// GridSizeNarrow is used when the play field is narrower than NarrowWidth
	GridSizeNarrow = 15

	// NarrowWidth is the pixel width under which GridSizeNarrow applies
	NarrowWidth = 500
)
