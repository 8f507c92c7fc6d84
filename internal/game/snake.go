package game

// Snake is the player entity: an ordered body with the head at index 0,
// a movement direction, and a pending-growth flag. Growth is two-phase:
// RequestGrowth marks it, the next Move consumes it by keeping the tail.
type Snake struct {
	body    []Cell
	dir     Cell
	growing bool

	spawnHead Cell
	spawnLen  int
}

// NewSnake creates a snake with its head at the given cell and the body
// extending left, heading right.
func NewSnake(head Cell, length int) *Snake {
	if length < 1 {
		length = 1
	}
	s := &Snake{spawnHead: head, spawnLen: length}
	s.Reset()
	return s
}

// Reset restores the initial body and the initial rightward direction.
func (s *Snake) Reset() {
	s.body = make([]Cell, s.spawnLen)
	for i := range s.body {
		s.body[i] = Cell{X: s.spawnHead.X - i, Y: s.spawnHead.Y}
	}
	s.dir = DirRight
	s.growing = false
}

// Move advances the snake one cell in its current direction. The tail is
// kept (net length +1) iff growth was requested since the previous move;
// the request is consumed either way.
func (s *Snake) Move() {
	newHead := s.body[0].Add(s.dir)
	s.body = append([]Cell{newHead}, s.body...)
	if s.growing {
		s.growing = false
	} else {
		s.body = s.body[:len(s.body)-1]
	}
}

// RequestGrowth marks the snake to grow on its next Move.
func (s *Snake) RequestGrowth() {
	s.growing = true
}

// GrowthPending reports whether a growth request is waiting to be consumed.
func (s *Snake) GrowthPending() bool {
	return s.growing
}

// SetDirection replaces the movement direction. Reversal into the neck
// (the exact opposite of the current direction) is rejected and reported
// with a false return.
func (s *Snake) SetDirection(d Cell) bool {
	if d == s.dir.Neg() {
		return false
	}
	s.dir = d
	return true
}

// Direction returns the current movement direction.
func (s *Snake) Direction() Cell {
	return s.dir
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Body returns the body cells, head first. The slice is owned by the snake
// and must not be mutated.
func (s *Snake) Body() []Cell {
	return s.body
}

// Len returns the current body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Occupies reports whether any body segment is at the given cell.
func (s *Snake) Occupies(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head overlaps any other body segment.
func (s *Snake) HitsSelf() bool {
	head := s.body[0]
	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
