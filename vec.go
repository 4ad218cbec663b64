package cubeviz

import "fmt"

// Axis is one of the three principal axes.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Direction is the rotational sense of a quarter turn, as seen from the
// positive end of the axis.
type Direction int

const (
	Clockwise Direction = iota
	CounterClockwise
)

// Inverse returns the opposite rotational sense.
func (d Direction) Inverse() Direction {
	if d == Clockwise {
		return CounterClockwise
	}
	return Clockwise
}

func (d Direction) String() string {
	if d == Clockwise {
		return "cw"
	}
	return "ccw"
}

// Vec is an integer 3-vector. Grid coordinates and face directions share
// this lattice and rotate identically.
type Vec struct {
	X, Y, Z int
}

// Component returns the component of v along axis a.
func (v Vec) Component(a Axis) int {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// Add returns v + o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Scale returns v * k.
func (v Vec) Scale(k int) Vec {
	return Vec{v.X * k, v.Y * k, v.Z * k}
}

func (v Vec) String() string {
	return fmt.Sprintf("(%d,%d,%d)", v.X, v.Y, v.Z)
}

// Rotate turns v by 90 degrees about axis a. The component along a is kept,
// the other two are swapped and one of them negated.
func Rotate(v Vec, a Axis, d Direction) Vec {
	x, y, z := v.X, v.Y, v.Z
	cw := d == Clockwise
	switch a {
	case AxisX:
		if cw {
			return Vec{x, -z, y}
		}
		return Vec{x, z, -y}
	case AxisY:
		if cw {
			return Vec{z, y, -x}
		}
		return Vec{-z, y, x}
	case AxisZ:
		if cw {
			return Vec{-y, x, z}
		}
		return Vec{y, -x, z}
	}
	return v
}
