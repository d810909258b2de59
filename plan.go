package markup

import "math"

// DashInterval is a pair of trajectory parameters, Start ≤ End, both in
// [0, 1].
type DashInterval struct {
	Start float64
	End   float64
}

// maxRefinePasses bounds how often the curved planner re-balances the spaces
// at the ends of a trajectory.
const maxRefinePasses = 3

// refineTolerance is the relative difference between the start and end space
// at which the curved planner stops refining.
const refineTolerance = 0.05

// PlanDashes returns the intervals to draw along tr for the given dash and
// space lengths. Straight trajectories use [PlanStraight], curved ones
// [PlanCurved]. Non-positive lengths and trajectories of unknown kind yield
// no intervals.
func PlanDashes(tr Trajectory, dashLength, spaceLength float64) []DashInterval {
	if !(dashLength > 0) || !(spaceLength > 0) {
		return nil
	}
	switch tr.Kind() {
	case Straight:
		return PlanStraight(tr.Length(), dashLength, spaceLength)
	case Curved:
		return PlanCurved(tr, dashLength, spaceLength)
	default:
		Logger().Warn("markup: cannot plan dashes", "kind", tr.Kind())
		return nil
	}
}

// PlanStraight lays out floor(length / (dashLength + spaceLength)) intervals
// along a straight trajectory, centring the pattern so that the leading and
// trailing spaces are equal.
//
// Each interval starts where a dash starts but spans spaceLength, not
// dashLength. Dashed styles draw the intervals as returned; the two lengths
// coincide in every default style.
func PlanStraight(length, dashLength, spaceLength float64) []DashInterval {
	if !(length > 0) || !(dashLength > 0) || !(spaceLength > 0) {
		return nil
	}
	pitch := dashLength + spaceLength
	n := int(length / pitch)
	startSpace := (length + spaceLength - pitch*float64(n)) / 2

	startT := startSpace / length
	dashT := dashLength / length
	spaceT := spaceLength / length

	out := make([]DashInterval, 0, n)
	for i := range n {
		tStart := startT + (dashT+spaceT)*float64(i)
		out = append(out, DashInterval{Start: tStart, End: tStart + spaceT})
	}
	return out
}

// PlanCurved walks tr by arc length, alternating spaces and dashes and
// starting with half a space. Because a whole number of dashes rarely fits,
// the walk is repeated up to three times, each time starting with the average
// of the previous start and end spaces, until both agree within 5%.
func PlanCurved(tr Trajectory, dashLength, spaceLength float64) []DashInterval {
	out, _ := planCurved(tr, dashLength, spaceLength)
	return out
}

// planPass records the spaces at both ends after one walk.
type planPass struct {
	startSpace float64
	endSpace   float64
}

func planCurved(tr Trajectory, dashLength, spaceLength float64) ([]DashInterval, []planPass) {
	if !(dashLength > 0) || !(spaceLength > 0) || !(tr.Length() > 0) {
		return nil, nil
	}

	var out []DashInterval
	var passes []planPass
	end := tr.Position(1)
	startSpace := spaceLength / 2
	for range maxRefinePasses {
		out = out[:0]
		isDash := false

		walkStart := startSpace
		prevT := 0.0
		currentT := 0.0
		nextT := tr.Travel(currentT, startSpace)

		for nextT < 1 {
			if nextT <= currentT {
				// No progress is possible, treat the rest as the end space.
				break
			}
			if isDash {
				out = append(out, DashInterval{Start: currentT, End: nextT})
			}
			isDash = !isDash

			prevT = currentT
			currentT = nextT
			if isDash {
				nextT = tr.Travel(currentT, dashLength)
			} else {
				nextT = tr.Travel(currentT, spaceLength)
			}
		}

		var endSpace float64
		if isDash {
			endSpace = end.Distance(tr.Position(prevT))
		} else if rest := end.Distance(tr.Position(currentT)); rest < spaceLength/2 {
			endSpace = end.Distance(tr.Position(prevT))
		} else {
			endSpace = rest
		}

		startSpace = (startSpace + endSpace) / 2
		passes = append(passes, planPass{startSpace: walkStart, endSpace: endSpace})

		if math.Abs(startSpace-endSpace)/(startSpace+endSpace) < refineTolerance {
			break
		}
	}
	return out, passes
}

// Complement returns the spans of [0, 1] not covered by intervals, which must
// be sorted and non-overlapping. Empty spans are omitted.
func Complement(intervals []DashInterval) []DashInterval {
	var out []DashInterval
	prev := 0.0
	for _, iv := range intervals {
		if iv.Start > prev {
			out = append(out, DashInterval{Start: prev, End: iv.Start})
		}
		prev = max(prev, iv.End)
	}
	if prev < 1 {
		out = append(out, DashInterval{Start: prev, End: 1})
	}
	return out
}
