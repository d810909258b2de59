package markup

import "fmt"

// LineKind tells styles what sort of markup line they are applied to.
type LineKind int

const (
	// RegularLine connects two points across a junction.
	RegularLine LineKind = iota + 1
	// StopLine runs across the lanes of one road where it enters the
	// junction.
	StopLine
	// CrosswalkLine is the base line of a crosswalk. The crosswalk's body
	// extends from it away from the junction.
	CrosswalkLine
)

func (k LineKind) String() string {
	switch k {
	case RegularLine:
		return "regular"
	case StopLine:
		return "stop"
	case CrosswalkLine:
		return "crosswalk"
	default:
		return fmt.Sprintf("LineKind(%d)", int(k))
	}
}

// ParseLineKind returns the line kind with the given name, as returned by
// [LineKind.String].
func ParseLineKind(s string) (LineKind, error) {
	for _, k := range []LineKind{RegularLine, StopLine, CrosswalkLine} {
		if k.String() == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLineKind, s)
}

// LinePoint is one end of a markup line.
type LinePoint struct {
	Position Point
	// Direction points from Position into the junction.
	Direction Vec2
}

// MarkupLine is a line drawn between two points of a junction.
type MarkupLine struct {
	Kind  LineKind
	Start LinePoint
	End   LinePoint
}

// Trajectory returns the path the line follows. Regular lines curve
// smoothly through the junction; stop lines and crosswalks are straight.
func (l MarkupLine) Trajectory() Trajectory {
	if l.Kind == RegularLine {
		return NewTrajectory(l.Start.Position, l.Start.Direction, l.End.Position, l.End.Direction)
	}
	return StraightTrajectory{l.Start.Position, l.End.Position}
}

// Normal returns the unit vector pointing away from the junction, across
// the line. If the end directions cancel out, the clockwise normal of the
// chord is used.
func (l MarkupLine) Normal() Vec2 {
	avg := l.Start.Direction.NormalizeOrZero().Add(l.End.Direction.NormalizeOrZero())
	if n := avg.Negate().NormalizeOrZero(); !n.IsZero() {
		return n
	}
	return l.End.Position.Sub(l.Start.Position).Turn90(true).NormalizeOrZero()
}
