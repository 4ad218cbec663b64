package cubeviz

import (
	"fmt"
	"strings"
)

// Cube is the full 27-cubie assembly. Slot i always holds the cubie whose
// coordinate encodes to i, so the table is a bijection over {-1,0,1}^3.
//
// A Cube is never modified after construction: Turn returns a new Cube.
type Cube struct {
	cubies [27]Cubie
}

// index encodes a grid coordinate as (x+1)*9 + (y+1)*3 + (z+1).
func index(v Vec) (int, bool) {
	if v.X < -1 || v.X > 1 || v.Y < -1 || v.Y > 1 || v.Z < -1 || v.Z > 1 {
		return 0, false
	}
	return (v.X+1)*9 + (v.Y+1)*3 + (v.Z + 1), true
}

// coord decodes a table index back into a grid coordinate.
func coord(i int) Vec {
	return Vec{i/9 - 1, (i/3)%3 - 1, i%3 - 1}
}

// Coords returns the 27 grid coordinates in table order.
func Coords() [27]Vec {
	var out [27]Vec
	for i := range out {
		out[i] = coord(i)
	}
	return out
}

// NewCube creates a solved cube: white on top, green in front.
func NewCube() *Cube {
	c := &Cube{}
	for i := range c.cubies {
		c.cubies[i] = NewCubie(coord(i))
	}
	return c
}

// At returns the cubie at a grid coordinate.
func (c *Cube) At(v Vec) Cubie {
	i, ok := index(v)
	if !ok {
		panic(fmt.Sprintf("cubeviz: coordinate %v outside the grid", v))
	}
	return c.cubies[i]
}

// Cubies returns a copy of the cubie table in coordinate order.
func (c *Cube) Cubies() [27]Cubie {
	return c.cubies
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	for i, q := range c.cubies {
		clone.cubies[i] = q.Clone()
	}
	return clone
}

// Equal reports whether both cubes hold the same cubies with the same stickers.
func (c *Cube) Equal(o *Cube) bool {
	return c.cubies == o.cubies
}

// InLayer reports whether v lies in the layer selected by axis and layer.
func InLayer(v Vec, a Axis, layer int) bool {
	return v.Component(a) == layer
}

// Turn rotates one layer a quarter turn and returns the resulting cube.
// The nine cubies of the layer are rebuilt at their rotated coordinates with
// rotated sticker directions; all other cubies are copied unchanged.
//
// layer must be -1, 0 or 1. Anything else is a programming error and panics.
func (c *Cube) Turn(a Axis, layer int, d Direction) *Cube {
	if layer < -1 || layer > 1 {
		panic(fmt.Errorf("%w: %d", ErrInvalidLayer, layer))
	}

	next := &Cube{}
	var filled [27]bool
	for i, q := range c.cubies {
		if !InLayer(q.pos, a, layer) {
			next.cubies[i] = q.Clone()
			filled[i] = true
			continue
		}
		moved := q.turned(a, d)
		j, ok := index(moved.pos)
		if !ok || filled[j] {
			panic(fmt.Errorf("%w: %v -> %v", ErrBijection, q.pos, moved.pos))
		}
		next.cubies[j] = moved
		filled[j] = true
	}

	for i, ok := range filled {
		if !ok {
			panic(fmt.Errorf("%w: slot %v empty after turn", ErrBijection, coord(i)))
		}
	}
	return next
}

// ApplyMove returns the cube after a face move.
func (c *Cube) ApplyMove(m Move) *Cube {
	a, layer := m.Face.Layer()
	return c.Turn(a, layer, m.Direction())
}

// ApplyMoves returns the cube after a sequence of moves.
func (c *Cube) ApplyMoves(moves []Move) *Cube {
	out := c
	for _, m := range moves {
		out = out.ApplyMove(m)
	}
	return out
}

// LabelCounts returns how many stickers carry each label.
func (c *Cube) LabelCounts() map[Label]int {
	counts := make(map[Label]int, 6)
	for _, q := range c.cubies {
		for _, s := range q.Stickers() {
			counts[s.Label]++
		}
	}
	return counts
}

// Validate checks the bijection and sticker invariants.
func (c *Cube) Validate() error {
	for i, q := range c.cubies {
		if q.pos != coord(i) {
			return fmt.Errorf("%w: slot %v holds cubie at %v", ErrBijection, coord(i), q.pos)
		}
		for _, s := range q.Stickers() {
			n := s.Dir.Vec()
			// a sticker always faces out of the cube
			if q.pos.Add(n).Component(axisOf(s.Dir)) != 2*n.Component(axisOf(s.Dir)) {
				return fmt.Errorf("%w: %v has %v facing inward", ErrStickerCount, q.pos, s.Label)
			}
		}
	}

	counts := c.LabelCounts()
	for _, l := range Labels {
		if counts[l] != 9 {
			return fmt.Errorf("%w: label %v appears %d times", ErrStickerCount, l, counts[l])
		}
	}
	return nil
}

func axisOf(d Dir) Axis {
	switch d {
	case DirRight, DirLeft:
		return AxisX
	case DirUp, DirDown:
		return AxisY
	default:
		return AxisZ
	}
}

// Basis lays out one face as a 3x3 grid. Facelet i sits at
// Normal + (i/3-1)*Row + (i%3-1)*Col.
type Basis struct {
	Normal Vec
	Row    Vec // step to the next row down
	Col    Vec // step to the next column right
}

// Pos returns the grid coordinate of facelet i.
func (b Basis) Pos(i int) Vec {
	return b.Normal.Add(b.Row.Scale(i/3 - 1)).Add(b.Col.Scale(i%3 - 1))
}

// BasisFor returns the standard unfolded-net layout of a face.
func BasisFor(d Dir) Basis {
	switch d {
	case DirUp:
		return Basis{Normal: Vec{0, 1, 0}, Row: Vec{0, 0, 1}, Col: Vec{1, 0, 0}}
	case DirDown:
		return Basis{Normal: Vec{0, -1, 0}, Row: Vec{0, 0, -1}, Col: Vec{1, 0, 0}}
	case DirFront:
		return Basis{Normal: Vec{0, 0, 1}, Row: Vec{0, -1, 0}, Col: Vec{1, 0, 0}}
	case DirBack:
		return Basis{Normal: Vec{0, 0, -1}, Row: Vec{0, -1, 0}, Col: Vec{-1, 0, 0}}
	case DirRight:
		return Basis{Normal: Vec{1, 0, 0}, Row: Vec{0, -1, 0}, Col: Vec{0, 0, -1}}
	default:
		return Basis{Normal: Vec{-1, 0, 0}, Row: Vec{0, -1, 0}, Col: Vec{0, 0, 1}}
	}
}

// Facelets returns the nine labels of the face described by b.
func (c *Cube) Facelets(b Basis) [9]Label {
	d, ok := DirOf(b.Normal)
	if !ok {
		panic(fmt.Sprintf("cubeviz: face normal %v is not a unit axis vector", b.Normal))
	}
	var out [9]Label
	for i := range out {
		out[i], _ = c.At(b.Pos(i)).Sticker(d)
	}
	return out
}

// IsSolved returns true if every face shows a single label.
func (c *Cube) IsSolved() bool {
	for _, d := range Dirs {
		f := c.Facelets(BasisFor(d))
		for _, l := range f {
			if l != f[4] {
				return false
			}
		}
	}
	return true
}

// String returns the cube as an unfolded net of colors.
func (c *Cube) String() string {
	var b strings.Builder

	row := func(f [9]Label, r int) {
		for col := 0; col < 3; col++ {
			b.WriteString(f[r*3+col].Color().String())
			b.WriteString(" ")
		}
	}

	up := c.Facelets(BasisFor(DirUp))
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(up, r)
		b.WriteString("\n")
	}

	// L, F, R, B side by side
	sides := [4][9]Label{
		c.Facelets(BasisFor(DirLeft)),
		c.Facelets(BasisFor(DirFront)),
		c.Facelets(BasisFor(DirRight)),
		c.Facelets(BasisFor(DirBack)),
	}
	for r := 0; r < 3; r++ {
		for _, f := range sides {
			row(f, r)
		}
		b.WriteString("\n")
	}

	down := c.Facelets(BasisFor(DirDown))
	for r := 0; r < 3; r++ {
		b.WriteString("      ")
		row(down, r)
		b.WriteString("\n")
	}

	return b.String()
}

// Debug lists every cubie with the label facing each of its directions.
func (c *Cube) Debug() string {
	var b strings.Builder
	for _, q := range c.cubies {
		b.WriteString(q.pos.String())
		for _, s := range q.Stickers() {
			fmt.Fprintf(&b, " %s:%s", s.Dir, s.Label)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Solved: %v\n", c.IsSolved())
	return b.String()
}
