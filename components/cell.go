package components

// Cell is a position on the play field in grid units
type Cell struct {
	X int
	Y int
}

// Add returns the cell offset by one step in direction d
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// Direction is a unit step in grid space; the zero value is DirNone
type Direction struct {
	DX int
	DY int
}

var (
	DirNone  = Direction{}
	DirUp    = Direction{DX: 0, DY: -1}
	DirDown  = Direction{DX: 0, DY: 1}
	DirLeft  = Direction{DX: -1, DY: 0}
	DirRight = Direction{DX: 1, DY: 0}
)

// IsNone reports whether the direction carries no motion
func (d Direction) IsNone() bool {
	return d.DX == 0 && d.DY == 0
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return Direction{DX: -d.DX, DY: -d.DY}
}

// CanTurnTo applies the axis lock: vertical moves are accepted only while not moving
// vertically, horizontal moves only while not moving horizontally.
// Reversal is therefore rejected; a repeat of the current direction is accepted.
func (d Direction) CanTurnTo(next Direction) bool {
	switch {
	case next.IsNone():
		return false
	case next.DX == 0:
		return d.DY == 0 || d == next
	default:
		return d.DX == 0 || d == next
	}
}

// String returns the direction name for logs and debugging
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	default:
		return "invalid"
	}
}
