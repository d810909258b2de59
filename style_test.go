package markup

import (
	"errors"
	"math"
	"slices"
	"testing"
)

func regularLine(from, to Point) MarkupLine {
	dir := to.Sub(from).NormalizeOrZero()
	return MarkupLine{
		Kind:  RegularLine,
		Start: LinePoint{Position: from, Direction: dir},
		End:   LinePoint{Position: to, Direction: dir.Negate()},
	}
}

// acrossLine returns a stop line or crosswalk from (0, 0) to (length, 0)
// whose junction lies in +y.
func acrossLine(kind LineKind, length float64) MarkupLine {
	return MarkupLine{
		Kind:  kind,
		Start: LinePoint{Position: Pt(0, 0), Direction: Vec(0, 1)},
		End:   LinePoint{Position: Pt(length, 0), Direction: Vec(0, 1)},
	}
}

func mustDefault(t *testing.T, kind StyleKind) Style {
	t.Helper()
	s, ok := DefaultStyle(kind)
	if !ok {
		t.Fatalf("no default for %v", kind)
	}
	return s
}

func calculate(s Style, line MarkupLine) []Dash {
	return slices.Collect(s.Calculate(line, line.Trajectory()))
}

func TestDashedLineEndToEnd(t *testing.T) {
	line := regularLine(Pt(0, 0), Pt(6, 0))
	dashes := calculate(mustDefault(t, LineDashed), line)
	want := []Dash{
		{Position: Pt(1.5, 0), Length: 1.5, Width: DefaultWidth, Color: DefaultColor},
		{Position: Pt(4.5, 0), Length: 1.5, Width: DefaultWidth, Color: DefaultColor},
	}
	diff(t, want, dashes, approx(1e-12))
}

func TestStyleWrongLineKind(t *testing.T) {
	lines := []MarkupLine{
		regularLine(Pt(0, 0), Pt(10, 0)),
		acrossLine(StopLine, 10),
		acrossLine(CrosswalkLine, 10),
	}
	for kind := LineSolid; kind < lastStyleKind; kind++ {
		s := mustDefault(t, kind)
		for _, line := range lines {
			n := len(calculate(s, line))
			if line.Kind == s.Family().LineKind() {
				continue
			}
			if n != 0 {
				t.Errorf("%v on a %v line produced %d dashes", kind, line.Kind, n)
			}
		}
	}
}

func TestRegularStyles(t *testing.T) {
	line := regularLine(Pt(0, 0), Pt(10, 0))
	off := DefaultOffset

	t.Run("solid", func(t *testing.T) {
		want := []Dash{{Position: Pt(5, 0), Length: 10, Width: DefaultWidth, Color: DefaultColor}}
		diff(t, want, calculate(mustDefault(t, LineSolid), line), approx(1e-12))
	})
	t.Run("double solid", func(t *testing.T) {
		want := []Dash{
			{Position: Pt(5, -off), Length: 10, Width: DefaultWidth, Color: DefaultColor},
			{Position: Pt(5, off), Length: 10, Width: DefaultWidth, Color: DefaultColor},
		}
		diff(t, want, calculate(mustDefault(t, LineDoubleSolid), line), approx(1e-12))
	})
	t.Run("double dashed", func(t *testing.T) {
		dashes := calculate(mustDefault(t, LineDoubleDashed), line)
		if len(dashes) != 6 {
			t.Fatalf("got %d dashes, want 6", len(dashes))
		}
		for i := 0; i < len(dashes); i += 2 {
			diff(t, -off, dashes[i].Position.Y, approx(1e-12))
			diff(t, off, dashes[i+1].Position.Y, approx(1e-12))
			diff(t, dashes[i].Position.X, dashes[i+1].Position.X, approx(1e-12))
		}
	})
	t.Run("solid and dashed", func(t *testing.T) {
		s := mustDefault(t, LineSolidAndDashed)
		sides := func(dashes []Dash) (solid, dashed []float64) {
			for _, d := range dashes {
				if d.Length == 10 {
					solid = append(solid, d.Position.Y)
				} else {
					dashed = append(dashed, d.Position.Y)
				}
			}
			return solid, dashed
		}

		solid, dashed := sides(calculate(s, line))
		diff(t, []float64{-off}, solid, approx(1e-12))
		diff(t, []float64{off, off, off}, dashed, approx(1e-12))

		s.SetInvert(true)
		solid, dashed = sides(calculate(s, line))
		diff(t, []float64{off}, solid, approx(1e-12))
		diff(t, []float64{-off, -off, -off}, dashed, approx(1e-12))
	})
	t.Run("curved solid", func(t *testing.T) {
		curved := MarkupLine{
			Kind:  RegularLine,
			Start: LinePoint{Position: Pt(0, 0), Direction: Vec(1, 0)},
			End:   LinePoint{Position: Pt(10, 10), Direction: Vec(0, -1)},
		}
		tr := curved.Trajectory()
		leaves := slices.Collect(Subdivide(tr, DefaultSubdivideOpts))
		dashes := calculate(mustDefault(t, LineSolid), curved)
		if len(dashes) != len(leaves) {
			t.Fatalf("got %d dashes for %d leaves", len(dashes), len(leaves))
		}
		for i, d := range dashes {
			diff(t, leaves[i].StartPosition().Midpoint(leaves[i].EndPosition()), d.Position, approx(1e-12))
		}
	})
}

func TestStopStyles(t *testing.T) {
	line := acrossLine(StopLine, 10)
	w := DefaultStopWidth

	want := []Dash{{Position: Pt(5, -w/2), Angle: 0, Length: 10, Width: w, Color: DefaultColor}}
	diff(t, want, calculate(mustDefault(t, StopLineSolid), line), approx(1e-12))

	want = append(want, Dash{Position: Pt(5, -(w*1.5 + DefaultStopOffset)), Length: 10, Width: w, Color: DefaultColor})
	diff(t, want, calculate(mustDefault(t, StopLineDoubleSolid), line), approx(1e-12))

	dashes := calculate(mustDefault(t, StopLineDashed), line)
	if len(dashes) != 3 {
		t.Fatalf("got %d dashes, want 3", len(dashes))
	}
	for _, d := range dashes {
		diff(t, -w/2, d.Position.Y, approx(1e-12))
	}
	if n := len(calculate(mustDefault(t, StopLineDoubleDashed), line)); n != 6 {
		t.Errorf("got %d dashes, want 6", n)
	}
}

func TestCrosswalkStyles(t *testing.T) {
	line := acrossLine(CrosswalkLine, 10)
	across := -math.Pi / 2

	t.Run("existent", func(t *testing.T) {
		if dashes := calculate(mustDefault(t, CrosswalkExistent), line); len(dashes) != 0 {
			t.Errorf("got %d dashes, want none", len(dashes))
		}
	})
	t.Run("zebra", func(t *testing.T) {
		dashes := calculate(mustDefault(t, CrosswalkZebra), line)
		if len(dashes) != 10 {
			t.Fatalf("got %d stripes, want 10", len(dashes))
		}
		for i, d := range dashes {
			want := Dash{
				Position: Pt(0.6+float64(i), -1.3),
				Angle:    across,
				Length:   DefaultCrosswalkWidth,
				Width:    DefaultCrosswalkDashLength,
				Color:    DefaultColor,
			}
			diff(t, want, d, approx(1e-9))
		}
	})
	t.Run("zebra across base line", func(t *testing.T) {
		s := mustDefault(t, CrosswalkZebra)
		s.SetParallel(false)
		for _, d := range calculate(s, line) {
			diff(t, across, d.Angle, approx(1e-12))
		}
	})
	t.Run("double zebra", func(t *testing.T) {
		dashes := calculate(mustDefault(t, CrosswalkDoubleZebra), line)
		if len(dashes) != 20 {
			t.Fatalf("got %d stripes, want 20", len(dashes))
		}
		diff(t, -1.3, dashes[0].Position.Y, approx(1e-12))
		diff(t, -3.6, dashes[10].Position.Y, approx(1e-12))
	})
	t.Run("parallel lines", func(t *testing.T) {
		want := []Dash{
			{Position: Pt(5, -0.375), Length: 10, Width: DefaultWidth, Color: DefaultColor},
			{Position: Pt(5, -2.225), Length: 10, Width: DefaultWidth, Color: DefaultColor},
		}
		diff(t, want, calculate(mustDefault(t, CrosswalkParallelLines), line), approx(1e-12))
	})
}

func TestStyleInvalidLengths(t *testing.T) {
	line := regularLine(Pt(0, 0), Pt(10, 0))
	s := mustDefault(t, LineDashed)
	s.SetDashLength(0)
	if n := len(calculate(s, line)); n != 0 {
		t.Errorf("got %d dashes for zero dash length, want none", n)
	}
	s.SetDashLength(1.5)
	s.SetSpaceLength(-1)
	if n := len(calculate(s, line)); n != 0 {
		t.Errorf("got %d dashes for negative space length, want none", n)
	}
	s.SetSpaceLength(1.5)
	if n := len(calculate(s, line)); n != 3 {
		t.Errorf("got %d dashes after restoring the space length, want 3", n)
	}
}

func TestSolidAndDashedInvalidLengths(t *testing.T) {
	line := regularLine(Pt(0, 0), Pt(10, 0))
	s := mustDefault(t, LineSolidAndDashed)
	s.SetDashLength(0)
	if n := len(calculate(s, line)); n != 0 {
		t.Errorf("got %d dashes for zero dash length, want none", n)
	}
	s.SetDashLength(1.5)
	s.SetSpaceLength(math.NaN())
	if n := len(calculate(s, line)); n != 0 {
		t.Errorf("got %d dashes for NaN space length, want none", n)
	}
}

func TestStyleStop(t *testing.T) {
	line := regularLine(Pt(0, 0), Pt(10, 0))
	n := 0
	for range mustDefault(t, LineDoubleDashed).Calculate(line, line.Trajectory()) {
		n++
		break
	}
	if n != 1 {
		t.Errorf("got %d dashes, want 1", n)
	}
}

func TestStyleKindNames(t *testing.T) {
	for kind := LineSolid; kind < lastStyleKind; kind++ {
		got, err := ParseStyleKind(kind.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != kind {
			t.Errorf("got %v, want %v", got, kind)
		}
	}
	if _, err := ParseStyleKind("Ladder"); !errors.Is(err, ErrUnknownStyle) {
		t.Errorf("got error %v, want %v", err, ErrUnknownStyle)
	}
	if s := StyleKind(99).String(); s != "StyleKind(99)" {
		t.Errorf("got %q", s)
	}
}

func TestCapabilities(t *testing.T) {
	tests := []struct {
		kind StyleKind
		has  Capability
		not  Capability
	}{
		{LineSolid, CapWidth | CapColor, CapDashed | CapDouble},
		{LineDashed, CapDashed, CapDouble | CapAsym},
		{LineSolidAndDashed, CapDashed | CapDouble | CapAsym, CapParallel},
		{StopLineDoubleDashed, CapDashed | CapDouble, CapCrosswalk},
		{CrosswalkExistent, CapWidth | CapCrosswalk, CapColor},
		{CrosswalkZebra, CapDashed | CapParallel | CapCrosswalk, CapDouble},
		{CrosswalkParallelLines, CapLined, CapDashed},
	}
	for _, tt := range tests {
		caps := tt.kind.Capabilities()
		if !caps.Has(tt.has) {
			t.Errorf("%v: got %b, want all of %b", tt.kind, caps, tt.has)
		}
		if caps&tt.not != 0 {
			t.Errorf("%v: got %b, want none of %b", tt.kind, caps, tt.not)
		}
	}
	if caps := StyleKind(0).Capabilities(); caps != 0 {
		t.Errorf("got %b for invalid kind", caps)
	}
}

func TestTotalWidth(t *testing.T) {
	diff(t, 2.6, mustDefault(t, CrosswalkZebra).TotalWidth(), approx(1e-12))
	diff(t, 4.9, mustDefault(t, CrosswalkDoubleZebra).TotalWidth(), approx(1e-12))
	diff(t, 2.6, mustDefault(t, CrosswalkParallelLines).TotalWidth(), approx(1e-12))
	diff(t, 2.0, mustDefault(t, CrosswalkExistent).TotalWidth())
	diff(t, DefaultWidth, mustDefault(t, LineSolid).TotalWidth())
}
