package cubeviz

import (
	"math"
	"testing"
	"time"
)

func TestAnimatorAngleIncreasesMonotonically(t *testing.T) {
	for _, m := range []Move{R, RPrime} {
		a := NewAnimator(m, DefaultSpeed)
		prev := 0.0
		ticks := 0
		for !a.Done() {
			a.Advance(10 * time.Millisecond)
			ticks++
			cur := math.Abs(a.Angle())
			if cur <= prev {
				t.Fatalf("%v: |angle| went from %v to %v", m, prev, cur)
			}
			prev = cur
			if ticks > 1000 {
				t.Fatal("animator never finished")
			}
		}
	}
}

func TestAnimatorSignFollowsDirection(t *testing.T) {
	cw := NewAnimator(U, 90)
	cw.Advance(500 * time.Millisecond)
	if cw.Angle() != 45 {
		t.Errorf("clockwise angle = %v, want 45", cw.Angle())
	}

	ccw := NewAnimator(UPrime, 90)
	ccw.Advance(500 * time.Millisecond)
	if ccw.Angle() != -45 {
		t.Errorf("counter-clockwise angle = %v, want -45", ccw.Angle())
	}
}

func TestAnimatorIgnoresNonPositiveTime(t *testing.T) {
	a := NewAnimator(F, DefaultSpeed)
	a.Advance(0)
	a.Advance(-time.Second)
	if a.Angle() != 0 {
		t.Errorf("angle = %v, want 0", a.Angle())
	}
}

func TestAnimatorRenderAngleIsClamped(t *testing.T) {
	a := NewAnimator(BPrime, DefaultSpeed)
	if !a.Advance(time.Second) {
		t.Fatal("a full second at 360 deg/s should finish the turn")
	}
	if a.Angle() != -360 {
		t.Errorf("raw angle = %v, want -360", a.Angle())
	}
	if a.RenderAngle() != -90 {
		t.Errorf("render angle = %v, want -90", a.RenderAngle())
	}
	if a.Progress() != 1 {
		t.Errorf("progress = %v, want 1", a.Progress())
	}
}

func TestAnimatorLayer(t *testing.T) {
	a := NewAnimator(L, DefaultSpeed)
	if a.Axis() != AxisX || a.Layer() != -1 {
		t.Errorf("L should turn x layer -1, got %v %d", a.Axis(), a.Layer())
	}
	if !a.Contains(Vec{-1, 0, 1}) || a.Contains(Vec{0, 0, 1}) {
		t.Error("Contains should select the x=-1 layer")
	}
}

func TestAnimatorCommitsOnExactQuarterTurn(t *testing.T) {
	// 25 ticks of 10ms at 360 deg/s is exactly 90 degrees.
	a := NewAnimator(R, DefaultSpeed)
	for i := 1; i < 25; i++ {
		if a.Advance(10 * time.Millisecond) {
			t.Fatalf("turn finished early at tick %d, angle %v", i, a.Angle())
		}
	}
	if !a.Advance(10 * time.Millisecond) {
		t.Errorf("turn should finish on tick 25, angle %v", a.Angle())
	}
	if a.Elapsed() != 250*time.Millisecond {
		t.Errorf("elapsed = %v, want 250ms", a.Elapsed())
	}
	if a.RenderAngle() != 90 {
		t.Errorf("render angle = %v, want 90", a.RenderAngle())
	}
}
