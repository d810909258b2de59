package markup

// Stop lines are drawn entirely on the road side of their base line, so a
// line of width w is centred w/2 away from it along the line's normal.

func (s Style) stop(line MarkupLine, tr Trajectory, opts SubdivideOpts, emit emitFunc) bool {
	b := s.builder()
	normal := line.Normal()
	first := normal.Mul(s.Width / 2)
	second := normal.Mul(s.Width*1.5 + s.Offset)

	solid := func(offset Vec2) bool {
		return solidLines(tr, opts, func(leaf Trajectory) bool {
			return emit(b.SolidOffset(leaf, offset, offset))
		})
	}
	dashed := func(offset Vec2) bool {
		return dashedLines(tr, s.DashLength, s.SpaceLength, func(iv DashInterval) bool {
			return emit(b.DashedOffset(tr, iv.Start, iv.End, s.DashLength, offset, offset))
		})
	}

	switch s.Kind {
	case StopLineSolid:
		return solid(first)
	case StopLineDashed:
		return dashed(first)
	case StopLineDoubleSolid:
		return solid(first) && solid(second)
	case StopLineDoubleDashed:
		return dashed(first) && dashed(second)
	default:
		return true
	}
}
