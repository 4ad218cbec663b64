package cubeviz

// Cubie is one of the 27 sub-cubes. It knows its grid coordinate and the
// label shown in each outward direction. Cubies are values: copying one
// never shares sticker storage.
type Cubie struct {
	pos      Vec
	stickers [6]Label // indexed by Dir, NoLabel where no sticker faces
}

// NewCubie creates the solved cubie for a grid coordinate. Every axis on
// which the coordinate sits at ±1 gets the sticker of that face.
func NewCubie(pos Vec) Cubie {
	c := Cubie{pos: pos}
	for _, d := range Dirs {
		n := d.Vec()
		for _, a := range [3]Axis{AxisX, AxisY, AxisZ} {
			if n.Component(a) != 0 && pos.Component(a) == n.Component(a) {
				c.stickers[d] = d.Label()
			}
		}
	}
	return c
}

// Pos returns the cubie's grid coordinate.
func (c Cubie) Pos() Vec {
	return c.pos
}

// Sticker returns the label facing direction d, if any.
func (c Cubie) Sticker(d Dir) (Label, bool) {
	l := c.stickers[d]
	return l, l != NoLabel
}

// Sticker is a direction and the label facing it.
type Sticker struct {
	Dir   Dir
	Label Label
}

// Stickers returns the cubie's stickers in direction order.
func (c Cubie) Stickers() []Sticker {
	out := make([]Sticker, 0, 3)
	for _, d := range Dirs {
		if l := c.stickers[d]; l != NoLabel {
			out = append(out, Sticker{Dir: d, Label: l})
		}
	}
	return out
}

// Clone returns an independent copy of the cubie.
func (c Cubie) Clone() Cubie {
	return c
}

// turned returns the cubie moved a quarter turn about a: its position and
// every sticker direction go through the same rotation.
func (c Cubie) turned(a Axis, d Direction) Cubie {
	n := Cubie{pos: Rotate(c.pos, a, d)}
	for _, from := range Dirs {
		n.stickers[from.Rotate(a, d)] = c.stickers[from]
	}
	return n
}
