package tui

import "github.com/SeamusWaldron/cubeviz"

// View is the viewpoint: a whole-cube orientation built from quarter turns.
// It stores where each screen axis points in cube coordinates, so drawing a
// screen face means asking the cube for the matching world face. Turning
// the view never touches the cube state.
type View struct {
	x, y, z cubeviz.Vec
}

// NewView returns the front-on viewpoint.
func NewView() View {
	return View{
		x: cubeviz.Vec{X: 1},
		y: cubeviz.Vec{Y: 1},
		z: cubeviz.Vec{Z: 1},
	}
}

// ToWorld maps a screen-space vector into cube coordinates.
func (v View) ToWorld(s cubeviz.Vec) cubeviz.Vec {
	return v.x.Scale(s.X).Add(v.y.Scale(s.Y)).Add(v.z.Scale(s.Z))
}

// Turn rotates the whole cube on screen a quarter turn about a screen axis.
func (v View) Turn(a cubeviz.Axis, d cubeviz.Direction) View {
	inv := d.Inverse()
	return View{
		x: v.ToWorld(cubeviz.Rotate(cubeviz.Vec{X: 1}, a, inv)),
		y: v.ToWorld(cubeviz.Rotate(cubeviz.Vec{Y: 1}, a, inv)),
		z: v.ToWorld(cubeviz.Rotate(cubeviz.Vec{Z: 1}, a, inv)),
	}
}

// TurnN applies n quarter turns about a; negative n turns the other way.
func (v View) TurnN(a cubeviz.Axis, n int) View {
	d := cubeviz.Clockwise
	if n < 0 {
		d, n = cubeviz.CounterClockwise, -n
	}
	for i := 0; i < n%4; i++ {
		v = v.Turn(a, d)
	}
	return v
}

// Basis returns the cube-space layout of the face shown on screen side d.
func (v View) Basis(d cubeviz.Dir) cubeviz.Basis {
	b := cubeviz.BasisFor(d)
	return cubeviz.Basis{
		Normal: v.ToWorld(b.Normal),
		Row:    v.ToWorld(b.Row),
		Col:    v.ToWorld(b.Col),
	}
}
