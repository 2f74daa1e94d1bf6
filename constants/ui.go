package constants

// UI Layout Constants
const (
	// HUDHeight is the number of terminal rows above the play field
	HUDHeight = 1

	// CellColumns is the number of terminal columns one grid cell occupies
	// Terminal cells are roughly twice as tall as wide
	CellColumns = 2

	// SwipeThresholdCells is the drag distance in grid cells that registers a swipe
	SwipeThresholdCells = 2
)

// UI Text
const (
	TitleText         = "NEON SNAKE"
	StartPromptText   = "press SPACE or click to start"
	GameOverText      = "GAME OVER"
	RestartPromptText = "press SPACE or click to restart"
	PausedText        = "PAUSED"
)

// Grid Animation
const (
	// GridHueRate is the grid hue drift in degrees per second
	GridHueRate = 30.0

	// GridLightness is the HSL lightness of grid dots
	GridLightness = 0.2

	// SnakeBaseHue is the hue of the head segment
	SnakeBaseHue = 120.0

	// SnakeHueStep is the hue shift per body segment
	SnakeHueStep = 10.0
)
