package markup

func (s Style) regular(tr Trajectory, opts SubdivideOpts, emit emitFunc) bool {
	b := s.builder()
	switch s.Kind {
	case LineSolid:
		return solidLines(tr, opts, func(leaf Trajectory) bool {
			return emit(b.Solid(leaf, 0))
		})
	case LineDashed:
		return dashedLines(tr, s.DashLength, s.SpaceLength, func(iv DashInterval) bool {
			return emit(b.Dashed(tr, iv.Start, iv.End, s.DashLength, 0))
		})
	case LineDoubleSolid:
		return solidLines(tr, opts, func(leaf Trajectory) bool {
			return emit(b.Solid(leaf, s.Offset)) && emit(b.Solid(leaf, -s.Offset))
		})
	case LineDoubleDashed:
		return dashedLines(tr, s.DashLength, s.SpaceLength, func(iv DashInterval) bool {
			return emit(b.Dashed(tr, iv.Start, iv.End, s.DashLength, s.Offset)) &&
				emit(b.Dashed(tr, iv.Start, iv.End, s.DashLength, -s.Offset))
		})
	case LineSolidAndDashed:
		// Without a valid dash pattern neither half is drawn.
		if !(s.DashLength > 0) || !(s.SpaceLength > 0) {
			return true
		}
		// The solid half is on the right of the direction of travel unless
		// inverted.
		solidOffset, dashedOffset := s.Offset, -s.Offset
		if s.Invert {
			solidOffset, dashedOffset = dashedOffset, solidOffset
		}
		return solidLines(tr, opts, func(leaf Trajectory) bool {
			return emit(b.Solid(leaf, solidOffset))
		}) && dashedLines(tr, s.DashLength, s.SpaceLength, func(iv DashInterval) bool {
			return emit(b.Dashed(tr, iv.Start, iv.End, s.DashLength, dashedOffset))
		})
	default:
		return true
	}
}

// solidLines calls fn for every leaf of tr's subdivision until fn returns
// false.
func solidLines(tr Trajectory, opts SubdivideOpts, fn func(leaf Trajectory) bool) bool {
	for leaf := range Subdivide(tr, opts) {
		if !fn(leaf) {
			return false
		}
	}
	return true
}

// dashedLines calls fn for every planned interval along tr until fn returns
// false.
func dashedLines(tr Trajectory, dashLength, spaceLength float64, fn func(iv DashInterval) bool) bool {
	for _, iv := range PlanDashes(tr, dashLength, spaceLength) {
		if !fn(iv) {
			return false
		}
	}
	return true
}
