package markup

import (
	"fmt"
	"image/color"
	"iter"
)

// StyleKind selects the algorithm a [Style] uses to lay out dashes.
type StyleKind int

const (
	LineSolid StyleKind = iota + 1
	LineDashed
	LineDoubleSolid
	LineDoubleDashed
	LineSolidAndDashed

	StopLineSolid
	StopLineDashed
	StopLineDoubleSolid
	StopLineDoubleDashed

	// CrosswalkExistent keeps the road's own crosswalk and draws nothing.
	CrosswalkExistent
	CrosswalkZebra
	CrosswalkDoubleZebra
	CrosswalkParallelLines

	lastStyleKind
)

var styleKindNames = [...]string{
	LineSolid:              "LineSolid",
	LineDashed:             "LineDashed",
	LineDoubleSolid:        "LineDoubleSolid",
	LineDoubleDashed:       "LineDoubleDashed",
	LineSolidAndDashed:     "LineSolidAndDashed",
	StopLineSolid:          "StopLineSolid",
	StopLineDashed:         "StopLineDashed",
	StopLineDoubleSolid:    "StopLineDoubleSolid",
	StopLineDoubleDashed:   "StopLineDoubleDashed",
	CrosswalkExistent:      "CrosswalkExistent",
	CrosswalkZebra:         "CrosswalkZebra",
	CrosswalkDoubleZebra:   "CrosswalkDoubleZebra",
	CrosswalkParallelLines: "CrosswalkParallelLines",
}

func (k StyleKind) valid() bool { return k > 0 && k < lastStyleKind }

func (k StyleKind) String() string {
	if !k.valid() {
		return fmt.Sprintf("StyleKind(%d)", int(k))
	}
	return styleKindNames[k]
}

// ParseStyleKind returns the style kind with the given name, as returned by
// [StyleKind.String].
func ParseStyleKind(s string) (StyleKind, error) {
	for k := LineSolid; k < lastStyleKind; k++ {
		if styleKindNames[k] == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStyle, s)
}

// StyleFamily groups the style kinds that apply to one [LineKind].
type StyleFamily int

const (
	RegularStyles StyleFamily = iota + 1
	StopStyles
	CrosswalkStyles
)

func (f StyleFamily) String() string {
	switch f {
	case RegularStyles:
		return "regular"
	case StopStyles:
		return "stop"
	case CrosswalkStyles:
		return "crosswalk"
	default:
		return fmt.Sprintf("StyleFamily(%d)", int(f))
	}
}

// LineKind returns the kind of line the family's styles draw on.
func (f StyleFamily) LineKind() LineKind {
	switch f {
	case RegularStyles:
		return RegularLine
	case StopStyles:
		return StopLine
	case CrosswalkStyles:
		return CrosswalkLine
	default:
		return 0
	}
}

// Family returns the family k belongs to, or 0 for invalid kinds.
func (k StyleKind) Family() StyleFamily {
	switch {
	case k >= LineSolid && k <= LineSolidAndDashed:
		return RegularStyles
	case k >= StopLineSolid && k <= StopLineDoubleDashed:
		return StopStyles
	case k >= CrosswalkExistent && k <= CrosswalkParallelLines:
		return CrosswalkStyles
	default:
		return 0
	}
}

// Capability is a set of editable parameter groups.
type Capability uint

const (
	// CapWidth covers Width.
	CapWidth Capability = 1 << iota
	// CapColor covers Color.
	CapColor
	// CapDashed covers DashLength and SpaceLength.
	CapDashed
	// CapDouble covers Offset.
	CapDouble
	// CapAsym covers Invert.
	CapAsym
	// CapParallel covers Parallel.
	CapParallel
	// CapCrosswalk covers OffsetBefore and OffsetAfter.
	CapCrosswalk
	// CapLined covers LineWidth.
	CapLined
)

var styleCaps = [...]Capability{
	LineSolid:              CapWidth | CapColor,
	LineDashed:             CapWidth | CapColor | CapDashed,
	LineDoubleSolid:        CapWidth | CapColor | CapDouble,
	LineDoubleDashed:       CapWidth | CapColor | CapDashed | CapDouble,
	LineSolidAndDashed:     CapWidth | CapColor | CapDashed | CapDouble | CapAsym,
	StopLineSolid:          CapWidth | CapColor,
	StopLineDashed:         CapWidth | CapColor | CapDashed,
	StopLineDoubleSolid:    CapWidth | CapColor | CapDouble,
	StopLineDoubleDashed:   CapWidth | CapColor | CapDashed | CapDouble,
	CrosswalkExistent:      CapWidth | CapCrosswalk,
	CrosswalkZebra:         CapWidth | CapColor | CapCrosswalk | CapDashed | CapParallel,
	CrosswalkDoubleZebra:   CapWidth | CapColor | CapCrosswalk | CapDashed | CapParallel | CapDouble,
	CrosswalkParallelLines: CapWidth | CapColor | CapCrosswalk | CapLined,
}

// Capabilities returns the parameters that affect styles of kind k.
func (k StyleKind) Capabilities() Capability {
	if !k.valid() {
		return 0
	}
	return styleCaps[k]
}

// Has reports whether c includes all of o.
func (c Capability) Has(o Capability) bool { return c&o == o }

// Style is the parameter set of one markup line's appearance. Which fields
// matter depends on Kind, see [StyleKind.Capabilities].
//
// Style is a plain value: assigning it copies every parameter, so editing a
// copy never affects the original.
type Style struct {
	Kind  StyleKind
	Color color.RGBA
	Width float64

	DashLength  float64
	SpaceLength float64
	// Offset is the distance between the two lines of a double style.
	Offset float64
	// Invert swaps the sides of an asymmetric style.
	Invert bool
	// Parallel orients crosswalk stripes along the crosswalk instead of
	// across the local base line.
	Parallel bool

	// OffsetBefore and OffsetAfter are the gaps between a crosswalk's base
	// line and its body, and after its body.
	OffsetBefore float64
	OffsetAfter  float64
	// LineWidth is the width of the edge lines of a lined crosswalk.
	LineWidth float64
}

// Clone returns an independent copy of s.
func (s Style) Clone() Style { return s }

func (s *Style) SetColor(c color.RGBA)     { s.Color = c }
func (s *Style) SetWidth(w float64)        { s.Width = w }
func (s *Style) SetDashLength(l float64)   { s.DashLength = l }
func (s *Style) SetSpaceLength(l float64)  { s.SpaceLength = l }
func (s *Style) SetOffset(o float64)       { s.Offset = o }
func (s *Style) SetInvert(v bool)          { s.Invert = v }
func (s *Style) SetParallel(v bool)        { s.Parallel = v }
func (s *Style) SetOffsetBefore(o float64) { s.OffsetBefore = o }
func (s *Style) SetOffsetAfter(o float64)  { s.OffsetAfter = o }
func (s *Style) SetLineWidth(w float64)    { s.LineWidth = w }

func (s Style) builder() DashBuilder { return DashBuilder{Width: s.Width, Color: s.Color} }

// Capabilities returns the parameters that affect s.
func (s Style) Capabilities() Capability { return s.Kind.Capabilities() }

func (s Style) Family() StyleFamily { return s.Kind.Family() }

// AppliesTo reports whether s draws anything on lines like line.
func (s Style) AppliesTo(line MarkupLine) bool {
	return s.Family() != 0 && s.Family().LineKind() == line.Kind
}

// TotalWidth returns how far a crosswalk extends from its base line. For
// other styles it is the line width.
func (s Style) TotalWidth() float64 {
	switch s.Kind {
	case CrosswalkZebra, CrosswalkParallelLines:
		return s.OffsetBefore + s.Width + s.OffsetAfter
	case CrosswalkDoubleZebra:
		return s.OffsetBefore + 2*s.Width + s.Offset + s.OffsetAfter
	default:
		return s.Width
	}
}

// Calculate lays out the dashes of line along tr using the default
// subdivision options.
func (s Style) Calculate(line MarkupLine, tr Trajectory) iter.Seq[Dash] {
	return s.CalculateWith(line, tr, DefaultSubdivideOpts)
}

// CalculateWith lays out the dashes of line along tr. A style applied to a
// line of another family yields nothing.
func (s Style) CalculateWith(line MarkupLine, tr Trajectory, opts SubdivideOpts) iter.Seq[Dash] {
	return func(yield func(Dash) bool) {
		if !s.AppliesTo(line) {
			return
		}
		emit := func(d Dash, ok bool) bool { return !ok || yield(d) }
		switch s.Family() {
		case RegularStyles:
			s.regular(tr, opts, emit)
		case StopStyles:
			s.stop(line, tr, opts, emit)
		case CrosswalkStyles:
			s.crosswalk(line, tr, opts, emit)
		}
	}
}

// emitFunc receives every dash a builder produced, along with whether it is
// usable. It returns false once the consumer has stopped.
type emitFunc func(d Dash, ok bool) bool
