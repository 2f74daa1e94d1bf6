package components

// Snake is the ordered body, head at index 0 and tail last
// While alive no two cells coincide
type Snake struct {
	Body []Cell
}

// NewSnake creates a one-segment snake at head
func NewSnake(head Cell) Snake {
	return Snake{Body: []Cell{head}}
}

// Head returns the first segment
func (s *Snake) Head() Cell {
	return s.Body[0]
}

// Len returns the segment count
func (s *Snake) Len() int {
	return len(s.Body)
}

// Contains reports whether any segment occupies c
func (s *Snake) Contains(c Cell) bool {
	for _, seg := range s.Body {
		if seg == c {
			return true
		}
	}
	return false
}

// Advance computes the next head cell for direction d without mutating the snake
// Cells are in grid units so one grid size equals one unit step
func (s *Snake) Advance(d Direction) Cell {
	return s.Head().Add(d)
}

// PushHead inserts c as the new head
func (s *Snake) PushHead(c Cell) {
	s.Body = append(s.Body, Cell{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = c
}

// DropTail removes the last segment; a one-segment snake keeps its head
func (s *Snake) DropTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}

// Cells returns a copy of the body safe to hand to readers
func (s *Snake) Cells() []Cell {
	out := make([]Cell, len(s.Body))
	copy(out, s.Body)
	return out
}
