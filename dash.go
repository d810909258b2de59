package markup

import (
	"image/color"
	"math"
)

// Dash is one rectangular stripe of paint.
type Dash struct {
	// Position is the centre of the stripe.
	Position Point
	// Angle is the direction of the stripe's long axis, in radians.
	Angle float64
	// Length is the extent along Angle.
	Length float64
	// Width is the extent across Angle.
	Width float64
	Color color.RGBA
}

// Direction returns the unit vector along the dash's long axis.
func (d Dash) Direction() Vec2 {
	return VecFromAngle(d.Angle)
}

// Corners returns the four corners of the dash, counter-clockwise in a y-up
// coordinate system, starting at the back right.
func (d Dash) Corners() [4]Point {
	along := d.Direction().Mul(d.Length / 2)
	across := d.Direction().Turn90(false).Mul(d.Width / 2)
	c := d.Position
	return [4]Point{
		c.Translate(along.Negate()).Translate(across.Negate()),
		c.Translate(along).Translate(across.Negate()),
		c.Translate(along).Translate(across),
		c.Translate(along.Negate()).Translate(across),
	}
}

func (d Dash) valid() bool {
	return d.Length > 0 && d.Width > 0 &&
		!math.IsInf(d.Length, 0) && !math.IsInf(d.Width, 0) &&
		!math.IsNaN(d.Angle) && !d.Position.IsNaN()
}

// DashBuilder turns trajectory pieces into dashes of one width and colour.
//
// Every method reports false instead of returning a dash that has no
// direction, no length or no width.
type DashBuilder struct {
	Width float64
	Color color.RGBA
}

func (b DashBuilder) WithWidth(width float64) DashBuilder   { b.Width = width; return b }
func (b DashBuilder) WithColor(c color.RGBA) DashBuilder    { b.Color = c; return b }
func (b DashBuilder) build(d Dash) (Dash, bool)             { return d, checkDash(d) }
func (b DashBuilder) normalOffset(dir Vec2, o float64) Vec2 { return dir.Turn90(true).NormalizeOrZero().Mul(o) }

func checkDash(d Dash) bool {
	if d.valid() {
		return true
	}
	Logger().Debug("markup: skipping degenerate dash",
		"position", d.Position, "length", d.Length, "width", d.Width)
	return false
}

// Dashed builds a dash of dashLength between startT and endT, shifted
// sideways by offset along the normal of the tangent at each end.
func (b DashBuilder) Dashed(tr Trajectory, startT, endT, dashLength, offset float64) (Dash, bool) {
	if offset == 0 {
		return b.DashedOffset(tr, startT, endT, dashLength, Vec2{}, Vec2{})
	}
	startOffset := b.normalOffset(tr.Tangent(startT), offset)
	endOffset := b.normalOffset(tr.Tangent(endT), offset)
	return b.DashedOffset(tr, startT, endT, dashLength, startOffset, endOffset)
}

// DashedOffset builds a dash of dashLength between startT and endT with its
// ends displaced by explicit offsets. The dash points from start to end.
func (b DashBuilder) DashedOffset(tr Trajectory, startT, endT, dashLength float64, startOffset, endOffset Vec2) (Dash, bool) {
	start := tr.Position(startT).Translate(startOffset)
	end := tr.Position(endT).Translate(endOffset)
	dir := end.Sub(start)
	if dir.IsZero() || dir.IsNaN() {
		checkDash(Dash{Position: start})
		return Dash{}, false
	}
	return b.build(Dash{
		Position: start.Midpoint(end),
		Angle:    dir.Angle(),
		Length:   dashLength,
		Width:    b.Width,
		Color:    b.Color,
	})
}

// DashedAngle is like [DashBuilder.DashedOffset] but orients the dash at a
// fixed angle instead of along the trajectory.
func (b DashBuilder) DashedAngle(tr Trajectory, startT, endT, dashLength float64, startOffset, endOffset Vec2, angle float64) (Dash, bool) {
	start := tr.Position(startT).Translate(startOffset)
	end := tr.Position(endT).Translate(endOffset)
	return b.build(Dash{
		Position: start.Midpoint(end),
		Angle:    angle,
		Length:   dashLength,
		Width:    b.Width,
		Color:    b.Color,
	})
}

// Solid builds one dash spanning all of tr, shifted sideways by offset. The
// offsets come from the trajectory's own end directions so that offset lines
// stay parallel to the path.
func (b DashBuilder) Solid(tr Trajectory, offset float64) (Dash, bool) {
	if offset == 0 {
		return b.SolidOffset(tr, Vec2{}, Vec2{})
	}
	startOffset := tr.StartDirection().Turn90(true).NormalizeOrZero().Mul(offset)
	endOffset := tr.EndDirection().Turn90(false).NormalizeOrZero().Mul(offset)
	return b.SolidOffset(tr, startOffset, endOffset)
}

// SolidOffset builds one dash spanning all of tr with its ends displaced by
// explicit offsets. Its length is the distance between the displaced ends.
func (b DashBuilder) SolidOffset(tr Trajectory, startOffset, endOffset Vec2) (Dash, bool) {
	start := tr.StartPosition().Translate(startOffset)
	end := tr.EndPosition().Translate(endOffset)
	dir := end.Sub(start)
	return b.build(Dash{
		Position: start.Midpoint(end),
		Angle:    dir.Angle(),
		Length:   dir.Hypot(),
		Width:    b.Width,
		Color:    b.Color,
	})
}
