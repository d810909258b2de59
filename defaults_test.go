package markup

import (
	"image/color"
	"sync"
	"testing"
)

func TestDefaultStyle(t *testing.T) {
	s, ok := DefaultStyle(LineDashed)
	if !ok {
		t.Fatal("no default dashed style")
	}
	want := Style{
		Kind:        LineDashed,
		Color:       color.RGBA{136, 136, 136, 224},
		Width:       0.15,
		DashLength:  1.5,
		SpaceLength: 1.5,
	}
	diff(t, want, s)

	zebra, _ := DefaultStyle(CrosswalkZebra)
	diff(t, Style{
		Kind:         CrosswalkZebra,
		Color:        DefaultColor,
		Width:        2,
		DashLength:   0.4,
		SpaceLength:  0.6,
		Parallel:     true,
		OffsetBefore: 0.3,
		OffsetAfter:  0.3,
	}, zebra)
}

func TestDefaultStyleCopies(t *testing.T) {
	a, _ := DefaultStyle(LineDoubleSolid)
	a.SetOffset(5)
	a.SetColor(color.RGBA{A: 255})

	b, _ := DefaultStyle(LineDoubleSolid)
	diff(t, DefaultOffset, b.Offset)
	diff(t, DefaultColor, b.Color)

	c := b.Clone()
	c.SetWidth(1)
	diff(t, DefaultWidth, b.Width)
}

func TestDefaultStyleUnknown(t *testing.T) {
	for _, kind := range []StyleKind{0, lastStyleKind, -3} {
		if s, ok := DefaultStyle(kind); ok {
			t.Errorf("got %+v for %v", s, kind)
		}
	}
}

func TestKinds(t *testing.T) {
	diff(t, []StyleKind{LineSolid, LineDashed, LineDoubleSolid, LineDoubleDashed, LineSolidAndDashed}, Kinds(RegularStyles))
	diff(t, []StyleKind{StopLineSolid, StopLineDashed, StopLineDoubleSolid, StopLineDoubleDashed}, Kinds(StopStyles))
	diff(t, []StyleKind{CrosswalkExistent, CrosswalkZebra, CrosswalkDoubleZebra, CrosswalkParallelLines}, Kinds(CrosswalkStyles))
	if got := Kinds(0); len(got) != 0 {
		t.Errorf("got %v for invalid family", got)
	}

	for _, f := range []StyleFamily{RegularStyles, StopStyles, CrosswalkStyles} {
		for _, k := range Kinds(f) {
			if k.Family() != f {
				t.Errorf("%v is listed under %v but belongs to %v", k, f, k.Family())
			}
		}
	}
}

func TestDefaultStyleConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			InitDefaults()
			for kind := LineSolid; kind < lastStyleKind; kind++ {
				if _, ok := DefaultStyle(kind); !ok {
					t.Errorf("no default for %v", kind)
				}
			}
		}()
	}
	wg.Wait()
}
