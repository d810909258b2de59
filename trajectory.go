package markup

import "math"

// TrajectoryKind selects how dashes are planned along a trajectory.
type TrajectoryKind int

const (
	// Straight trajectories are planned in closed form.
	Straight TrajectoryKind = iota + 1
	// Curved trajectories are planned by walking their arc length.
	Curved
)

func (k TrajectoryKind) String() string {
	switch k {
	case Straight:
		return "Straight"
	case Curved:
		return "Curved"
	default:
		return "InvalidTrajectoryKind"
	}
}

// Trajectory is a parametrized path along which markup is laid out. The
// parameter t runs from 0 at the start to 1 at the end.
//
// Trajectories are immutable. The engine never modifies one, it only derives
// sub-trajectories through Divide.
type Trajectory interface {
	Kind() TrajectoryKind

	// Position evaluates the trajectory at t.
	Position(t float64) Point
	// Tangent returns the derivative at t. It is not normalized.
	Tangent(t float64) Vec2
	// Travel returns the parameter reached after moving the given arc length
	// forward from t. It returns 1 if the end is reached or passed.
	Travel(t, distance float64) float64
	// Divide splits the trajectory at the parameter midpoint.
	Divide() (Trajectory, Trajectory)
	// DeltaAngle returns the total turning of the trajectory in degrees.
	DeltaAngle() float64
	// Magnitude is the length used to decide subdivision.
	Magnitude() float64
	// Length is the arc length.
	Length() float64

	StartPosition() Point
	EndPosition() Point
	// StartDirection is the unit direction leaving the start point.
	StartDirection() Vec2
	// EndDirection is the unit direction leaving the end point back into the
	// trajectory, i.e. the reverse of the travel direction at the end.
	EndDirection() Vec2
}

var _ Trajectory = StraightTrajectory{}
var _ Trajectory = BezierTrajectory{}

// smoothHandle is the length of the Bézier handles of a smooth trajectory,
// relative to the chord.
const smoothHandle = 1.0 / 3.0

// collinearEpsilon is the tolerance, in degrees, under which the directions
// of a smooth trajectory are considered to lie on the chord.
const collinearEpsilon = 1e-3

// NewTrajectory returns a smooth trajectory from start to end.
//
// startDir is the direction the trajectory leaves start with; endDir is the
// direction it leaves end with when travelled backwards. When both lie on the
// chord the result is a [StraightTrajectory], otherwise a [BezierTrajectory]
// whose handles have a third of the chord's length.
func NewTrajectory(start Point, startDir Vec2, end Point, endDir Vec2) Trajectory {
	chord := end.Sub(start)
	d := chord.Hypot()
	startDir = startDir.NormalizeOrZero()
	endDir = endDir.NormalizeOrZero()
	if d == 0 || startDir.IsZero() || endDir.IsZero() {
		return StraightTrajectory{start, end}
	}
	if AngleBetween(startDir, chord) < collinearEpsilon &&
		AngleBetween(endDir, chord.Negate()) < collinearEpsilon {
		return StraightTrajectory{start, end}
	}
	h := d * smoothHandle
	return BezierTrajectory{
		P0: start,
		P1: start.Translate(startDir.Mul(h)),
		P2: end.Translate(endDir.Mul(h)),
		P3: end,
	}
}

// deltaAngle is the turning between a start and an end direction, both
// pointing into the trajectory.
func deltaAngle(startDir, endDir Vec2) float64 {
	if startDir.IsZero() || endDir.IsZero() {
		return 0
	}
	a := 180 - AngleBetween(startDir, endDir)
	if math.IsNaN(a) {
		return 0
	}
	return a
}
