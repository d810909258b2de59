package markup

// StraightTrajectory is a line segment from P0 to P1.
type StraightTrajectory struct {
	// The segment's start point.
	P0 Point
	// The segment's end point.
	P1 Point
}

func (l StraightTrajectory) Kind() TrajectoryKind { return Straight }

// Length returns the length of the segment.
func (l StraightTrajectory) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l StraightTrajectory) Magnitude() float64 { return l.Length() }

func (l StraightTrajectory) Position(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l StraightTrajectory) Tangent(t float64) Vec2 {
	return l.P1.Sub(l.P0)
}

// Travel moves distance along the segment. Zero-length segments have
// nowhere to go and always report the end.
func (l StraightTrajectory) Travel(t, distance float64) float64 {
	length := l.Length()
	if length == 0 {
		return 1
	}
	next := t + distance/length
	if next >= 1 {
		return 1
	}
	return next
}

func (l StraightTrajectory) Subsegment(start, end float64) StraightTrajectory {
	return StraightTrajectory{l.Position(start), l.Position(end)}
}

func (l StraightTrajectory) Subdivide() (StraightTrajectory, StraightTrajectory) {
	return l.Subsegment(0.0, 0.5), l.Subsegment(0.5, 1.0)
}

func (l StraightTrajectory) Divide() (Trajectory, Trajectory) {
	return l.Subdivide()
}

// DeltaAngle of a segment is always 0.
func (l StraightTrajectory) DeltaAngle() float64 { return 0 }

func (l StraightTrajectory) StartPosition() Point { return l.P0 }
func (l StraightTrajectory) EndPosition() Point   { return l.P1 }

func (l StraightTrajectory) StartDirection() Vec2 {
	return l.P1.Sub(l.P0).NormalizeOrZero()
}

func (l StraightTrajectory) EndDirection() Vec2 {
	return l.P0.Sub(l.P1).NormalizeOrZero()
}
