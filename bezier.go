package pathfinding

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

const (
	defaultArcLengthSegments = 50
	defaultClosestSamples    = 50
	closestRefineIterations  = 10
)

// Cubic represents a cubic Bézier curve by its four control points.
type Cubic struct {
	P0, P1, P2, P3 orb.Point
}

// ClosestPointResult describes the point on a curve nearest to a query point.
type ClosestPointResult struct {
	Point    orb.Point
	T        float64
	Distance float64
}

// Eval returns the point on the curve at parameter t using the Bernstein basis.
// t outside [0,1] extrapolates; callers clamp beforehand if they need to.
func (c Cubic) Eval(t float64) orb.Point {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t
	return orb.Point{
		b0*c.P0[0] + b1*c.P1[0] + b2*c.P2[0] + b3*c.P3[0],
		b0*c.P0[1] + b1*c.P1[1] + b2*c.P2[1] + b3*c.P3[1],
	}
}

// Derivative returns the tangent vector of the curve at parameter t.
func (c Cubic) Derivative(t float64) orb.Point {
	u := 1 - t
	return orb.Point{
		3*u*u*(c.P1[0]-c.P0[0]) + 6*u*t*(c.P2[0]-c.P1[0]) + 3*t*t*(c.P3[0]-c.P2[0]),
		3*u*u*(c.P1[1]-c.P0[1]) + 6*u*t*(c.P2[1]-c.P1[1]) + 3*t*t*(c.P3[1]-c.P2[1]),
	}
}

// Polyline samples the curve at segments+1 uniform parameters.
func (c Cubic) Polyline(segments int) orb.LineString {
	if segments < 1 {
		segments = defaultArcLengthSegments
	}
	line := make(orb.LineString, 0, segments+1)
	for i := 0; i <= segments; i++ {
		line = append(line, c.Eval(float64(i)/float64(segments)))
	}
	return line
}

// ArcLength approximates the curve length by summing a uniform polyline.
// The approximation converges from below as segments grows; cost-sensitive
// callers use at least 30 segments.
func (c Cubic) ArcLength(segments int) float64 {
	return planar.Length(c.Polyline(segments))
}

// ClosestPoint finds the point on the curve nearest to query. A coarse uniform
// scan brackets the minimum, then a ternary search refines within one sample
// step either side of the winner. The result is never worse than the coarse pass.
func (c Cubic) ClosestPoint(query orb.Point, samples int) ClosestPointResult {
	if samples < 1 {
		samples = defaultClosestSamples
	}

	bestT := 0.0
	bestDist := planar.Distance(c.Eval(0), query)
	for i := 1; i <= samples; i++ {
		t := float64(i) / float64(samples)
		if d := planar.Distance(c.Eval(t), query); d < bestDist {
			bestT, bestDist = t, d
		}
	}

	lo := math.Max(0, bestT-1/float64(samples))
	hi := math.Min(1, bestT+1/float64(samples))
	for i := 0; i < closestRefineIterations; i++ {
		m1 := lo + (hi-lo)/3
		m2 := hi - (hi-lo)/3
		if planar.Distance(c.Eval(m1), query) < planar.Distance(c.Eval(m2), query) {
			hi = m2
		} else {
			lo = m1
		}
	}

	if t := (lo + hi) / 2; planar.Distance(c.Eval(t), query) < bestDist {
		bestT = t
		bestDist = planar.Distance(c.Eval(t), query)
	}

	return ClosestPointResult{Point: c.Eval(bestT), T: bestT, Distance: bestDist}
}

// Bound returns the axis-aligned bounding box of the curve: the endpoints
// extended by the curve points where the derivative has a root in each axis.
func (c Cubic) Bound() orb.Bound {
	b := orb.MultiPoint{c.P0, c.P3}.Bound()
	for axis := 0; axis < 2; axis++ {
		// Derivative in one axis is the quadratic at² + bt + c.
		qa := 3 * (-c.P0[axis] + 3*c.P1[axis] - 3*c.P2[axis] + c.P3[axis])
		qb := 6 * (c.P0[axis] - 2*c.P1[axis] + c.P2[axis])
		qc := 3 * (c.P1[axis] - c.P0[axis])
		for _, t := range quadraticRoots(qa, qb, qc) {
			if t > 0 && t < 1 {
				b = b.Extend(c.Eval(t))
			}
		}
	}
	return b
}

// Split subdivides the curve at parameter t into two cubics covering [0,t] and
// [t,1], using de Casteljau's construction. Exact, no approximation.
func (c Cubic) Split(t float64) (Cubic, Cubic) {
	p01 := lerp(c.P0, c.P1, t)
	p12 := lerp(c.P1, c.P2, t)
	p23 := lerp(c.P2, c.P3, t)
	p012 := lerp(p01, p12, t)
	p123 := lerp(p12, p23, t)
	mid := lerp(p012, p123, t)
	return Cubic{c.P0, p01, p012, mid}, Cubic{mid, p123, p23, c.P3}
}

// quadraticRoots returns the real roots of a*t² + b*t + c, falling back to the
// linear root when the leading coefficient is near zero.
func quadraticRoots(a, b, c float64) []float64 {
	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) < eps {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// lerp linearly interpolates between two points.
func lerp(a, b orb.Point, t float64) orb.Point {
	return orb.Point{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}
