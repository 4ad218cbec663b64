package cubeviz

import (
	"errors"
	"math/rand"
	"testing"
)

var axes = []Axis{AxisX, AxisY, AxisZ}
var layers = []int{-1, 0, 1}

func TestNewCubeIsSolved(t *testing.T) {
	c := NewCube()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if err := c.Validate(); err != nil {
		t.Errorf("New cube should be valid: %v", err)
	}
}

func TestSingleTurnBreaksSolved(t *testing.T) {
	c := NewCube().ApplyMove(R)
	if c.IsSolved() {
		t.Error("Cube should not be solved after R")
	}
}

func TestFourTurns_ReturnToStart(t *testing.T) {
	for _, a := range axes {
		for _, layer := range layers {
			for _, d := range []Direction{Clockwise, CounterClockwise} {
				start := NewCube().ApplyMoves(SexyMove)
				c := start
				for i := 0; i < 4; i++ {
					c = c.Turn(a, layer, d)
				}
				if !c.Equal(start) {
					t.Errorf("4 x (%v, %d, %v) should restore the cube", a, layer, d)
					t.Log(c.String())
				}
			}
		}
	}
}

func TestClockwiseThenCounter_IsIdentity(t *testing.T) {
	for _, a := range axes {
		for _, layer := range layers {
			start := NewCube().ApplyMoves([]Move{F, L, DPrime})
			c := start.Turn(a, layer, Clockwise).Turn(a, layer, CounterClockwise)
			if !c.Equal(start) {
				t.Errorf("(%v, %d) cw then ccw should be the identity", a, layer)
			}
			c = start.Turn(a, layer, CounterClockwise).Turn(a, layer, Clockwise)
			if !c.Equal(start) {
				t.Errorf("(%v, %d) ccw then cw should be the identity", a, layer)
			}
		}
	}
}

func TestUpThenUpPrime_EqualsSolved(t *testing.T) {
	c := NewCube().ApplyMove(U).ApplyMove(UPrime)
	if !c.Equal(NewCube()) {
		t.Error("U U' should equal the solved cube")
		t.Log(c.String())
	}
	if c.Cubies() != NewCube().Cubies() {
		t.Error("U U' should leave every cubie identical")
	}
}

func TestRightClockwise_MovesCorner(t *testing.T) {
	c := NewCube().ApplyMove(R)

	// x-axis clockwise maps (x,y,z) to (x,-z,y): (1,1,1) -> (1,-1,1).
	q := c.At(Vec{1, -1, 1})
	want := map[Dir]Label{
		DirFront: LabelU, // up (0,1,0) -> (0,0,1)
		DirDown:  LabelF, // front (0,0,1) -> (0,-1,0)
		DirRight: LabelR, // along the axis
	}
	for d, l := range want {
		got, ok := q.Sticker(d)
		if !ok || got != l {
			t.Errorf("sticker %v: got %v, want %v", d, got, l)
		}
	}
	if len(q.Stickers()) != 3 {
		t.Errorf("corner should keep 3 stickers, got %d", len(q.Stickers()))
	}

	// Cubies outside the layer are untouched.
	for _, v := range Coords() {
		if v.X != 1 && c.At(v) != NewCube().At(v) {
			t.Errorf("cubie at %v should not move", v)
		}
	}
}

func TestTurnDoesNotMutateReceiver(t *testing.T) {
	c := NewCube()
	_ = c.Turn(AxisY, 1, Clockwise)
	if !c.Equal(NewCube()) {
		t.Error("Turn should leave the original cube unchanged")
	}
}

func TestInvariantsAfterRandomTurns(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := NewCube()
	for i := 0; i < 500; i++ {
		a := axes[rng.Intn(3)]
		layer := layers[rng.Intn(3)]
		d := Direction(rng.Intn(2))
		c = c.Turn(a, layer, d)

		if err := c.Validate(); err != nil {
			t.Fatalf("after %d turns: %v", i+1, err)
		}
	}

	counts := c.LabelCounts()
	for _, l := range Labels {
		if counts[l] != 9 {
			t.Errorf("label %v appears %d times, want 9", l, counts[l])
		}
	}

	seen := make(map[Vec]bool)
	for _, q := range c.Cubies() {
		if seen[q.Pos()] {
			t.Errorf("duplicate coordinate %v", q.Pos())
		}
		seen[q.Pos()] = true
	}
	if len(seen) != 27 {
		t.Errorf("got %d coordinates, want 27", len(seen))
	}
}

func TestTurnRejectsInvalidLayer(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("Turn with layer 2 should panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrInvalidLayer) {
			t.Errorf("unexpected panic value: %v", r)
		}
	}()
	NewCube().Turn(AxisX, 2, Clockwise)
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	c := NewCube()
	for i := 0; i < 6; i++ {
		c = c.ApplyMoves(SexyMove)
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestScrambleAndReverse(t *testing.T) {
	scramble := []Move{R, U, RPrime, UPrime, F, D, L, L, BPrime}

	c := NewCube().ApplyMoves(scramble)
	if c.IsSolved() {
		t.Error("Cube should be scrambled after moves")
	}

	for i := len(scramble) - 1; i >= 0; i-- {
		c = c.ApplyMove(scramble[i].Inverse())
	}
	if !c.Equal(NewCube()) {
		t.Error("Cube should be solved after reversing scramble")
		t.Log(c.String())
	}
}

func TestMiddleLayerTurnKeepsFacesSingleColored(t *testing.T) {
	// Turning all three x layers the same way reorients the whole cube.
	c := NewCube()
	for _, layer := range layers {
		c = c.Turn(AxisX, layer, Clockwise)
	}
	if !c.IsSolved() {
		t.Error("Whole-cube rotation should still look solved")
		t.Log(c.String())
	}
	if c.Equal(NewCube()) {
		t.Error("Whole-cube rotation should change the sticker directions")
	}
}

func TestStringShowsNet(t *testing.T) {
	want := "" +
		"      W W W \n" +
		"      W W W \n" +
		"      W W W \n" +
		"O O O G G G R R R B B B \n" +
		"O O O G G G R R R B B B \n" +
		"O O O G G G R R R B B B \n" +
		"      Y Y Y \n" +
		"      Y Y Y \n" +
		"      Y Y Y \n"
	if got := NewCube().String(); got != want {
		t.Errorf("unexpected net:\n%s", got)
	}
}

func TestFaceletsAfterUpTurn(t *testing.T) {
	// y clockwise maps (x,y,z) to (z,y,-x): the front row moves to the right.
	c := NewCube().ApplyMove(U)
	right := c.Facelets(BasisFor(DirRight))
	for i := 0; i < 3; i++ {
		if right[i] != LabelF {
			t.Errorf("right face top row [%d] = %v, want F", i, right[i])
		}
	}
	for i := 3; i < 9; i++ {
		if right[i] != LabelR {
			t.Errorf("right face [%d] = %v, want R", i, right[i])
		}
	}
}
