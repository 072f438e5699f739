package pathkit

import "math"

const pi = math.Pi

// maxSegmentAngle caps the angular span of a single cubic segment when
// decomposing an arc. The small excess over π/2 avoids an extra segment
// for exact quarter turns.
const maxSegmentAngle = pi/2 + 0.001

// ArcTo adds an elliptical arc from the current point to (x, y),
// following the SVG arc parameterization: radii rx and ry, the rotation
// of the ellipse's x-axis in degrees, and the large-arc and sweep
// flags selecting among the four candidate arcs. The arc is
// approximated by one cubic Bézier curve per angular span of at most
// π/2, leaving the current point at (x, y).
//
// Degenerate input (zero radii, coincident endpoints with an
// unsolvable center equation) adds nothing and leaves the current
// point unchanged. Radii too small to span the endpoints are scaled up
// uniformly by the minimal factor that makes the arc solvable.
func (b *Builder) ArcTo(rx, ry, xAxisRotation float64, largeArc, sweep bool, x, y float64) *Builder {
	var x1, y1 float64
	if len(b.points) > 0 {
		last := b.points[len(b.points)-1]
		x1, y1 = last.X, last.Y
	} else {
		x1, y1 = b.current.X, b.current.Y
	}
	x2, y2 := x, y

	phi := xAxisRotation * pi / 180
	sinPhi, cosPhi := math.Sincos(phi)

	rx = math.Abs(rx)
	ry = math.Abs(ry)
	if rx == 0 || ry == 0 {
		return b
	}

	midX := (x1 - x2) / 2
	midY := (y1 - y2) / 2

	// Start point in the ellipse's rotated frame.
	x1_ := cosPhi*midX + sinPhi*midY
	y1_ := -sinPhi*midX + cosPhi*midY

	// Scale up radii that cannot reach between the endpoints.
	lambda := (x1_/rx)*(x1_/rx) + (y1_/ry)*(y1_/ry)
	if lambda > 1 {
		lambda = math.Sqrt(lambda)
		rx *= lambda
		ry *= lambda
	}

	d := (rx*y1_)*(rx*y1_) + (ry*x1_)*(ry*x1_)
	if d == 0 {
		return b
	}

	k := math.Sqrt(math.Abs((rx*ry)*(rx*ry)/d - 1))
	if sweep == largeArc {
		k = -k
	}

	// Ellipse center, first in the rotated frame, then in path space.
	cx_ := k * rx * y1_ / ry
	cy_ := -k * ry * x1_ / rx

	cx := cosPhi*cx_ - sinPhi*cy_ + (x1+x2)/2
	cy := sinPhi*cx_ + cosPhi*cy_ + (y1+y2)/2

	// Start angle from the unit vector pointing at the start point.
	ux := (x1_ - cx_) / rx
	uy := (y1_ - cy_) / ry
	uLen := math.Hypot(ux, uy)
	if uLen == 0 {
		return b
	}

	cosTheta1 := clamp(ux/uLen, -1, 1)
	theta1 := math.Acos(cosTheta1)
	if uy < 0 {
		theta1 = -theta1
	}

	// Sweep angle between the start and end unit vectors, with its
	// sign corrected to match the sweep flag.
	vx := (-x1_ - cx_) / rx
	vy := (-y1_ - cy_) / ry
	vLen := math.Hypot(vx, vy)
	if vLen == 0 {
		return b
	}

	cosDelta := clamp((ux*vx+uy*vy)/(uLen*vLen), -1, 1)
	deltaTheta := math.Acos(cosDelta)
	if ux*vy-uy*vx < 0 {
		deltaTheta = -deltaTheta
	}
	if sweep && deltaTheta < 0 {
		deltaTheta += 2 * pi
	} else if !sweep && deltaTheta > 0 {
		deltaTheta -= 2 * pi
	}

	b.arcSegments(cx, cy, rx, ry, sinPhi, cosPhi, theta1, deltaTheta)
	return b
}

// arcSegments appends cubic segments sweeping the ellipse centered at
// (cx, cy) from angle theta1 over deltaTheta, in the frame rotated by
// phi (given as sine/cosine).
func (b *Builder) arcSegments(cx, cy, rx, ry, sinPhi, cosPhi, theta1, deltaTheta float64) {
	nSegs := int(math.Ceil(math.Abs(deltaTheta / maxSegmentAngle)))
	dTheta := deltaTheta / float64(nSegs)

	// Tangent length coefficient for a cubic approximating an arc of
	// dTheta radians.
	thHalf := dTheta / 2
	t := (8.0 / 3.0) * math.Sin(thHalf/2) * math.Sin(thHalf/2) / math.Sin(thHalf)

	sinTh1, cosTh1 := math.Sincos(theta1)
	for i := 0; i < nSegs; i++ {
		theta1 += dTheta
		sinTh0, cosTh0 := sinTh1, cosTh1
		sinTh1, cosTh1 = math.Sincos(theta1)
		b.arcSegment(cx, cy, rx, ry, sinPhi, cosPhi, sinTh0, cosTh0, sinTh1, cosTh1, t)
	}
}

// arcSegment appends one cubic segment between the angles given by
// their sines/cosines. Control points are derived in the unrotated
// ellipse frame and mapped into path space.
func (b *Builder) arcSegment(cx, cy, rx, ry, sinPhi, cosPhi, sinTh0, cosTh0, sinTh1, cosTh1, t float64) {
	x1 := rx * (cosTh0 - t*sinTh0)
	y1 := ry * (sinTh0 + t*cosTh0)
	x3 := rx * cosTh1
	y3 := ry * sinTh1
	x2 := x3 + rx*(t*sinTh1)
	y2 := y3 + ry*(-t*cosTh1)

	b.CubicTo(
		cx+cosPhi*x1-sinPhi*y1,
		cy+sinPhi*x1+cosPhi*y1,
		cx+cosPhi*x2-sinPhi*y2,
		cy+sinPhi*x2+cosPhi*y2,
		cx+cosPhi*x3-sinPhi*y3,
		cy+sinPhi*x3+cosPhi*y3,
	)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
