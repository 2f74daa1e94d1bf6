package components

// Food is the single pickup on the play field
// It may share a cell with the snake body; nothing prevents that at spawn
type Food struct {
	Cell  Cell
	Color NeonColor
}
