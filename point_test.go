package markup

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(0, 0).Translate(Vec(-10, 0)), Pt(-10, 0))
	diff(t, Pt(1, 2).Midpoint(Pt(3, 6)), Pt(2, 4))
	diff(t, Pt(1, 2).Sub(Pt(3, 6)), Vec(-2, -4))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestTurn90(t *testing.T) {
	diff(t, Vec(1, 0).Turn90(true), Vec(0, -1))
	diff(t, Vec(1, 0).Turn90(false), Vec(0, 1))
	diff(t, Vec(2, 3).Turn90(true).Turn90(false), Vec(2, 3))
}

func TestNormalizeOrZero(t *testing.T) {
	diff(t, Vec(0, 0).NormalizeOrZero(), Vec(0, 0))
	diff(t, Vec(3, 4).NormalizeOrZero(), Vec(0.6, 0.8), approx(1e-12))
	if v := Vec(0, 0).Normalize(); !v.IsNaN() {
		t.Errorf("got %v, want NaN", v)
	}
}

func TestAngleBetween(t *testing.T) {
	tests := []struct {
		a, b Vec2
		want float64
	}{
		{Vec(1, 0), Vec(1, 0), 0},
		{Vec(1, 0), Vec(0, 5), 90},
		{Vec(1, 0), Vec(-2, 0), 180},
		{Vec(1, 1), Vec(1, 0), 45},
		{Vec(0, 0), Vec(1, 0), 0},
	}
	for _, tt := range tests {
		if got := AngleBetween(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AngleBetween(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
