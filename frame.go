package cubeviz

import "fmt"

// CubieView is one cubie as a renderer should draw it: either static at its
// coordinate, or rotating about Axis through Angle degrees while nominally
// at its coordinate.
type CubieView struct {
	Cubie    Cubie
	Rotating bool
	Axis     Axis
	Angle    float64 // signed, clamped to ±90
}

// Pos returns the nominal grid coordinate.
func (v CubieView) Pos() Vec {
	return v.Cubie.Pos()
}

// Frame is everything a presentation adapter needs for one frame.
type Frame struct {
	Cubies   [27]CubieView
	Active   *Move   // turn in flight, nil when idle
	Progress float64 // fraction of the active turn in [0,1]
}

// Frame resolves the per-cubie transforms for the current moment.
func (e *Engine) Frame() Frame {
	var f Frame
	cube := e.tracker.Cube()
	for i, q := range cube.Cubies() {
		f.Cubies[i] = CubieView{Cubie: q}
	}
	if e.anim == nil {
		return f
	}

	m := e.anim.Move()
	f.Active = &m
	f.Progress = e.anim.Progress()
	angle := e.anim.RenderAngle()
	for i := range f.Cubies {
		if e.anim.Contains(f.Cubies[i].Pos()) {
			f.Cubies[i].Rotating = true
			f.Cubies[i].Axis = e.anim.Axis()
			f.Cubies[i].Angle = angle
		}
	}
	return f
}

// At returns the view of the cubie at v.
func (f Frame) At(v Vec) CubieView {
	i, ok := index(v)
	if !ok {
		panic(fmt.Sprintf("cubeviz: coordinate %v outside the grid", v))
	}
	return f.Cubies[i]
}

// Facelet is one sticker slot of a rendered face.
type Facelet struct {
	Label  Label
	Moving bool
}

// Facelets returns the nine facelets of the face described by b, marking
// those whose cubie is part of the turn in flight.
func (f Frame) Facelets(b Basis) [9]Facelet {
	d, ok := DirOf(b.Normal)
	if !ok {
		panic(fmt.Sprintf("cubeviz: face normal %v is not a unit axis vector", b.Normal))
	}
	var out [9]Facelet
	for i := range out {
		v := f.At(b.Pos(i))
		out[i].Label, _ = v.Cubie.Sticker(d)
		out[i].Moving = v.Rotating
	}
	return out
}
