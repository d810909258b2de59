package markup

func (s Style) crosswalk(line MarkupLine, tr Trajectory, opts SubdivideOpts, emit emitFunc) bool {
	normal := line.Normal()
	switch s.Kind {
	case CrosswalkExistent:
		return true
	case CrosswalkZebra:
		return s.zebra(tr, normal, s.OffsetBefore+s.Width/2, emit)
	case CrosswalkDoubleZebra:
		return s.zebra(tr, normal, s.OffsetBefore+s.Width/2, emit) &&
			s.zebra(tr, normal, s.OffsetBefore+s.Width+s.Offset+s.Width/2, emit)
	case CrosswalkParallelLines:
		b := s.builder().WithWidth(s.LineWidth)
		near := normal.Mul(s.OffsetBefore + s.LineWidth/2)
		far := normal.Mul(s.OffsetBefore + s.Width - s.LineWidth/2)
		return solidLines(tr, opts, func(leaf Trajectory) bool {
			return emit(b.SolidOffset(leaf, near, near)) && emit(b.SolidOffset(leaf, far, far))
		})
	default:
		return true
	}
}

// zebra draws one row of stripes whose centres lie distance away from the
// base line. Stripes are Width long and DashLength wide.
func (s Style) zebra(tr Trajectory, normal Vec2, distance float64, emit emitFunc) bool {
	b := s.builder().WithWidth(s.DashLength)
	offset := normal.Mul(distance)
	return dashedLines(tr, s.DashLength, s.SpaceLength, func(iv DashInterval) bool {
		return emit(b.DashedAngle(tr, iv.Start, iv.End, s.Width, offset, offset, s.stripeAngle(tr, iv, normal)))
	})
}

func (s Style) stripeAngle(tr Trajectory, iv DashInterval, normal Vec2) float64 {
	if s.Parallel {
		return normal.Angle()
	}
	across := tr.Position(iv.End).Sub(tr.Position(iv.Start)).Turn90(true).NormalizeOrZero()
	if across.IsZero() {
		return normal.Angle()
	}
	if across.Dot(normal) < 0 {
		across = across.Negate()
	}
	return across.Angle()
}
