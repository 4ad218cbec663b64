package cubeviz

import "testing"

func TestRotateFormulas(t *testing.T) {
	v := Vec{1, 2, 3}
	tests := []struct {
		axis Axis
		dir  Direction
		want Vec
	}{
		{AxisX, Clockwise, Vec{1, -3, 2}},
		{AxisX, CounterClockwise, Vec{1, 3, -2}},
		{AxisY, Clockwise, Vec{3, 2, -1}},
		{AxisY, CounterClockwise, Vec{-3, 2, 1}},
		{AxisZ, Clockwise, Vec{-2, 1, 3}},
		{AxisZ, CounterClockwise, Vec{2, -1, 3}},
	}

	for _, tt := range tests {
		if got := Rotate(v, tt.axis, tt.dir); got != tt.want {
			t.Errorf("Rotate(%v, %v, %v) = %v, want %v", v, tt.axis, tt.dir, got, tt.want)
		}
	}
}

func TestRotateOrderFour(t *testing.T) {
	for _, v := range Coords() {
		for _, a := range axes {
			for _, d := range []Direction{Clockwise, CounterClockwise} {
				r := v
				for i := 0; i < 4; i++ {
					r = Rotate(r, a, d)
				}
				if r != v {
					t.Errorf("4 x Rotate(%v, %v, %v) = %v", v, a, d, r)
				}
				if back := Rotate(Rotate(v, a, d), a, d.Inverse()); back != v {
					t.Errorf("Rotate then inverse of %v about %v = %v", v, a, back)
				}
			}
		}
	}
}

func TestRotateKeepsAxisComponent(t *testing.T) {
	for _, v := range Coords() {
		for _, a := range axes {
			if Rotate(v, a, Clockwise).Component(a) != v.Component(a) {
				t.Errorf("Rotate(%v, %v) changed the %v component", v, a, a)
			}
		}
	}
}

func TestDirRotateMatchesVectors(t *testing.T) {
	for _, d := range Dirs {
		for _, a := range axes {
			got := d.Rotate(a, Clockwise).Vec()
			want := Rotate(d.Vec(), a, Clockwise)
			if got != want {
				t.Errorf("%v about %v: got %v, want %v", d, a, got, want)
			}
		}
	}
}

func TestDirOf(t *testing.T) {
	for _, d := range Dirs {
		got, ok := DirOf(d.Vec())
		if !ok || got != d {
			t.Errorf("DirOf(%v) = %v, %v", d.Vec(), got, ok)
		}
	}
	if _, ok := DirOf(Vec{1, 1, 0}); ok {
		t.Error("DirOf should reject a non-axis vector")
	}
}

func TestLabelColors(t *testing.T) {
	want := map[Label]Color{
		LabelU: White,
		LabelD: Yellow,
		LabelF: Green,
		LabelB: Blue,
		LabelL: Orange,
		LabelR: Red,
	}
	for l, c := range want {
		if l.Color() != c {
			t.Errorf("%v.Color() = %v, want %v", l, l.Color(), c)
		}
	}
}
