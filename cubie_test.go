package cubeviz

import "testing"

func TestNewCubieStickerCounts(t *testing.T) {
	tests := []struct {
		pos  Vec
		want int
	}{
		{Vec{0, 0, 0}, 0},
		{Vec{0, 1, 0}, 1},
		{Vec{1, 1, 0}, 2},
		{Vec{1, 1, 1}, 3},
		{Vec{-1, -1, -1}, 3},
	}

	for _, tt := range tests {
		if got := len(NewCubie(tt.pos).Stickers()); got != tt.want {
			t.Errorf("NewCubie(%v) has %d stickers, want %d", tt.pos, got, tt.want)
		}
	}
}

func TestNewCubieBindsFixedLabels(t *testing.T) {
	c := NewCubie(Vec{-1, 1, -1})
	want := map[Dir]Label{DirLeft: LabelL, DirUp: LabelU, DirBack: LabelB}
	for d, l := range want {
		if got, ok := c.Sticker(d); !ok || got != l {
			t.Errorf("Sticker(%v) = %v, %v; want %v", d, got, ok, l)
		}
	}
	for _, d := range []Dir{DirRight, DirDown, DirFront} {
		if _, ok := c.Sticker(d); ok {
			t.Errorf("Sticker(%v) should be absent", d)
		}
	}
}

func TestCubieCloneIsIndependent(t *testing.T) {
	orig := NewCubie(Vec{1, 1, 1})
	clone := orig.Clone()
	moved := clone.turned(AxisY, Clockwise)

	if orig != NewCubie(Vec{1, 1, 1}) {
		t.Error("turning a clone should not touch the original")
	}
	if moved.Pos() == orig.Pos() {
		t.Error("turned cubie should move")
	}
}
