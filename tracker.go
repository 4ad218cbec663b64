package cubeviz

// Tracker holds the authoritative cube and the turns committed to it.
type Tracker struct {
	cube          *Cube
	history       bool
	moves         []Move
	wasSolved     bool
	solveCallback func(moves int)
}

// NewTracker creates a new tracker starting from a solved state.
func NewTracker() *Tracker {
	return &Tracker{
		cube:      NewCube(),
		history:   true,
		wasSolved: true,
	}
}

// SetHistory enables or disables move history tracking.
func (t *Tracker) SetHistory(enabled bool) {
	t.history = enabled
	if !enabled {
		t.moves = nil
	}
}

// SetSolvedCallback sets a callback that fires when a turn brings the cube
// back to a solved state.
func (t *Tracker) SetSolvedCallback(cb func(moves int)) {
	t.solveCallback = cb
}

// Reset resets the tracker to a solved cube state.
func (t *Tracker) Reset() {
	t.cube = NewCube()
	t.moves = nil
	t.wasSolved = true
}

// ApplyMove commits a move and records it.
func (t *Tracker) ApplyMove(m Move) {
	t.cube = t.cube.ApplyMove(m)
	if t.history {
		t.moves = append(t.moves, m)
	}
	t.checkSolved()
}

// ApplyMoves applies multiple moves.
func (t *Tracker) ApplyMoves(moves []Move) {
	for _, m := range moves {
		t.ApplyMove(m)
	}
}

// Undo reverts the last recorded move. It returns false when there is
// nothing to undo.
func (t *Tracker) Undo() (Move, bool) {
	last, ok := t.LastMove()
	if !ok {
		return Move{}, false
	}
	t.cube = t.cube.ApplyMove(last.Inverse())
	t.moves = t.moves[:len(t.moves)-1]
	t.checkSolved()
	return last, true
}

// LastMove returns the most recent recorded move.
func (t *Tracker) LastMove() (Move, bool) {
	if len(t.moves) == 0 {
		return Move{}, false
	}
	return t.moves[len(t.moves)-1], true
}

// checkSolved fires the solved callback on a transition into solved.
func (t *Tracker) checkSolved() {
	solved := t.cube.IsSolved()
	if solved && !t.wasSolved && t.solveCallback != nil {
		t.solveCallback(len(t.moves))
	}
	t.wasSolved = solved
}

// Moves returns a copy of the recorded moves.
func (t *Tracker) Moves() []Move {
	out := make([]Move, len(t.moves))
	copy(out, t.moves)
	return out
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the current cube. Cubes are immutable, so the caller may keep it.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
