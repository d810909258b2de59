package markup

import (
	"image/color"
	"maps"
	"slices"
	"sync"
)

// DefaultColor is the grey, slightly transparent paint of new markup.
var DefaultColor = color.RGBA{R: 136, G: 136, B: 136, A: 224}

const (
	DefaultWidth       = 0.15
	DefaultDashLength  = 1.5
	DefaultSpaceLength = 1.5
	DefaultOffset      = 0.15

	DefaultStopWidth  = 0.3
	DefaultStopOffset = 0.3

	DefaultCrosswalkWidth       = 2.0
	DefaultCrosswalkDashLength  = 0.4
	DefaultCrosswalkSpaceLength = 0.6
	DefaultCrosswalkOffset      = 0.3
)

type registry map[StyleFamily]map[StyleKind]Style

var defaults = sync.OnceValue(func() registry {
	regular := map[StyleKind]Style{
		LineSolid:        {Kind: LineSolid, Color: DefaultColor, Width: DefaultWidth},
		LineDashed:       {Kind: LineDashed, Color: DefaultColor, Width: DefaultWidth, DashLength: DefaultDashLength, SpaceLength: DefaultSpaceLength},
		LineDoubleSolid:  {Kind: LineDoubleSolid, Color: DefaultColor, Width: DefaultWidth, Offset: DefaultOffset},
		LineDoubleDashed: {Kind: LineDoubleDashed, Color: DefaultColor, Width: DefaultWidth, DashLength: DefaultDashLength, SpaceLength: DefaultSpaceLength, Offset: DefaultOffset},
		LineSolidAndDashed: {
			Kind:        LineSolidAndDashed,
			Color:       DefaultColor,
			Width:       DefaultWidth,
			DashLength:  DefaultDashLength,
			SpaceLength: DefaultSpaceLength,
			Offset:      DefaultOffset,
		},
	}
	stop := map[StyleKind]Style{
		StopLineSolid:        {Kind: StopLineSolid, Color: DefaultColor, Width: DefaultStopWidth},
		StopLineDashed:       {Kind: StopLineDashed, Color: DefaultColor, Width: DefaultStopWidth, DashLength: DefaultDashLength, SpaceLength: DefaultSpaceLength},
		StopLineDoubleSolid:  {Kind: StopLineDoubleSolid, Color: DefaultColor, Width: DefaultStopWidth, Offset: DefaultStopOffset},
		StopLineDoubleDashed: {Kind: StopLineDoubleDashed, Color: DefaultColor, Width: DefaultStopWidth, DashLength: DefaultDashLength, SpaceLength: DefaultSpaceLength, Offset: DefaultStopOffset},
	}
	zebra := Style{
		Kind:         CrosswalkZebra,
		Color:        DefaultColor,
		Width:        DefaultCrosswalkWidth,
		DashLength:   DefaultCrosswalkDashLength,
		SpaceLength:  DefaultCrosswalkSpaceLength,
		Parallel:     true,
		OffsetBefore: DefaultCrosswalkOffset,
		OffsetAfter:  DefaultCrosswalkOffset,
	}
	doubleZebra := zebra
	doubleZebra.Kind = CrosswalkDoubleZebra
	doubleZebra.Offset = DefaultCrosswalkOffset
	crosswalk := map[StyleKind]Style{
		CrosswalkExistent:    {Kind: CrosswalkExistent, Width: DefaultCrosswalkWidth},
		CrosswalkZebra:       zebra,
		CrosswalkDoubleZebra: doubleZebra,
		CrosswalkParallelLines: {
			Kind:         CrosswalkParallelLines,
			Color:        DefaultColor,
			Width:        DefaultCrosswalkWidth,
			OffsetBefore: DefaultCrosswalkOffset,
			OffsetAfter:  DefaultCrosswalkOffset,
			LineWidth:    DefaultWidth,
		},
	}

	Logger().Debug("markup: default styles initialised",
		"regular", len(regular), "stop", len(stop), "crosswalk", len(crosswalk))
	return registry{
		RegularStyles:   regular,
		StopStyles:      stop,
		CrosswalkStyles: crosswalk,
	}
})

// InitDefaults builds the default style table. Calling it is optional, the
// table is built on first use otherwise. It is safe to call more than once
// and from several goroutines.
func InitDefaults() { defaults() }

// DefaultStyle returns a fresh copy of the default style of the given kind.
// It reports false if kind has no default.
func DefaultStyle(kind StyleKind) (Style, bool) {
	family, ok := defaults()[kind.Family()]
	if !ok {
		return Style{}, false
	}
	s, ok := family[kind]
	return s.Clone(), ok
}

// Kinds returns the style kinds of a family that have defaults, in
// ascending order.
func Kinds(family StyleFamily) []StyleKind {
	return slices.Sorted(maps.Keys(defaults()[family]))
}
