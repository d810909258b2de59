package markup

import "math"

// BezierTrajectory is a cubic Bézier trajectory.
type BezierTrajectory struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c BezierTrajectory) Kind() TrajectoryKind { return Curved }

// Arclen returns the length of the trajectory to within accuracy. Pieces
// whose estimated quadrature error is too large are halved.
func (c BezierTrajectory) Arclen(accuracy float64) float64 {
	return c.arclen(accuracy, 0)
}

func (c BezierTrajectory) arclen(accuracy float64, depth int) float64 {
	d03 := c.P3.Sub(c.P0)
	d01 := c.P1.Sub(c.P0)
	d12 := c.P2.Sub(c.P1)
	d23 := c.P3.Sub(c.P2)
	lplc := d01.Hypot() + d12.Hypot() + d23.Hypot() - d03.Hypot()
	dd1 := d12.Sub(d01)
	dd2 := d23.Sub(d12)
	// Scaled first, second and third derivatives at t=0.5.
	dm := d01.Add(d23).Mul(0.25).Add(d12.Mul(0.5))
	dm1 := dd2.Add(dd1).Mul(0.5)
	dm2 := dd2.Sub(dd1).Mul(0.25)

	var est float64
	for _, coeff := range gaussLegendreCoeffs8 {
		wi, xi := coeff[0], coeff[1]
		dNorm2 := dm.Add(dm1.Mul(xi)).Add(dm2.Mul(xi * xi)).Hypot2()
		ddNorm2 := dm1.Add(dm2.Mul(2.0 * xi)).Hypot2()
		f := ddNorm2 / dNorm2
		est += wi * f
	}
	if math.IsNaN(est) {
		// Cusp.
		est = 0
	}

	estGauss8Error := min(math.Pow(est, 3)*2.5e-6, 3e-2) * lplc
	if estGauss8Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs8Half[:], dm, dm1, dm2)
	}
	estGauss16Error := min(math.Pow(est, 6)*1.5e-11, 9e-3) * lplc
	if estGauss16Error < accuracy {
		return arclenQuadratureCore(gaussLegendreCoeffs16Half[:], dm, dm1, dm2)
	}
	estGauss24Error := min(math.Pow(est, 9)*3.5e-16, 3.5e-3) * lplc
	if estGauss24Error < accuracy || depth >= 20 {
		return arclenQuadratureCore(gaussLegendreCoeffs24Half[:], dm, dm1, dm2)
	}
	c0, c1 := c.Subdivide()
	return c0.arclen(accuracy*0.5, depth+1) + c1.arclen(accuracy*0.5, depth+1)
}

func (c BezierTrajectory) subsegmentArclen(t0, t1, accuracy float64) float64 {
	return c.Subsegment(t0, t1).Arclen(accuracy)
}

// SolveForArclen returns the parameter at which the arc length from the start
// equals arclen.
func (c BezierTrajectory) SolveForArclen(arclen float64, accuracy float64) float64 {
	return solveForArclen(c, arclen, accuracy)
}

func (c BezierTrajectory) Length() float64    { return c.Arclen(DefaultAccuracy) }
func (c BezierTrajectory) Magnitude() float64 { return c.Length() }

func (c BezierTrajectory) Position(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// Tangent returns the derivative of the curve at t.
func (c BezierTrajectory) Tangent(t float64) Vec2 {
	mt := 1.0 - t
	d0 := c.P1.Sub(c.P0).Mul(3 * mt * mt)
	d1 := c.P2.Sub(c.P1).Mul(6 * mt * t)
	d2 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

// Travel moves distance along the curve, starting at t.
func (c BezierTrajectory) Travel(t, distance float64) float64 {
	if t >= 1 {
		return 1
	}
	if distance <= 0 {
		return t
	}
	rest := c.Subsegment(t, 1)
	if distance >= rest.Arclen(DefaultAccuracy) {
		return 1
	}
	u := rest.SolveForArclen(distance, DefaultAccuracy)
	next := t + (1-t)*u
	if next >= 1 {
		return 1
	}
	return next
}

// Subdivide subdivides the cubic into halves, using de Casteljau.
func (c BezierTrajectory) Subdivide() (BezierTrajectory, BezierTrajectory) {
	pm := c.Position(0.5)
	return BezierTrajectory{
			c.P0,
			c.P0.Midpoint(c.P1),
			Point(Vec2(c.P0).Add(Vec2(c.P1).Mul(2.0)).Add(Vec2(c.P2)).Mul(0.25)),
			pm,
		},
		BezierTrajectory{
			pm,
			Point(Vec2(c.P1).Add(Vec2(c.P2).Mul(2.0)).Add(Vec2(c.P3)).Mul(0.25)),
			c.P2.Midpoint(c.P3),
			c.P3,
		}
}

func (c BezierTrajectory) Divide() (Trajectory, Trajectory) {
	return c.Subdivide()
}

func (c BezierTrajectory) Subsegment(t0, t1 float64) BezierTrajectory {
	p0 := c.Position(t0)
	p3 := c.Position(t1)
	scale := (t1 - t0) * (1.0 / 3.0)
	p1 := p0.Translate(c.Tangent(t0).Mul(scale))
	p2 := p3.Translate(c.Tangent(t1).Mul(scale).Negate())
	return BezierTrajectory{p0, p1, p2, p3}
}

// Tangents returns the tangents at the start and end of the curve. Coincident
// control points are skipped so that the result is only zero for a curve that
// collapses to a single point.
func (c BezierTrajectory) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	d01 := c.P1.Sub(c.P0)
	var d0, d1 Vec2
	if d01.Hypot2() > epsilon {
		d0 = d01
	} else {
		d02 := c.P2.Sub(c.P0)
		if d02.Hypot2() > epsilon {
			d0 = d02
		} else {
			d0 = c.P3.Sub(c.P0)
		}
	}
	d23 := c.P3.Sub(c.P2)
	if d23.Hypot2() > epsilon {
		d1 = d23
	} else {
		d13 := c.P3.Sub(c.P1)
		if d13.Hypot2() > epsilon {
			d1 = d13
		} else {
			d1 = c.P3.Sub(c.P0)
		}
	}
	return d0, d1
}

func (c BezierTrajectory) StartPosition() Point { return c.P0 }
func (c BezierTrajectory) EndPosition() Point   { return c.P3 }

func (c BezierTrajectory) StartDirection() Vec2 {
	d0, _ := c.Tangents()
	return d0.NormalizeOrZero()
}

func (c BezierTrajectory) EndDirection() Vec2 {
	_, d1 := c.Tangents()
	return d1.Negate().NormalizeOrZero()
}

// DeltaAngle returns how far the curve turns between its ends, in degrees.
func (c BezierTrajectory) DeltaAngle() float64 {
	return deltaAngle(c.StartDirection(), c.EndDirection())
}
