package twirl

import "math"

const degToRad = math.Pi / 180

// rotatePoint rotates p by deltaDeg degrees clockwise about pivot. In the
// Y-down coordinate space a positive angle turns from +x toward +y, which is
// clockwise on screen. Composition is exact: rotating by a then b about the
// same pivot equals rotating by a+b, up to float error.
func rotatePoint(p Point, deltaDeg float64, pivot Point) Point {
	sin, cos := math.Sincos(deltaDeg * degToRad)
	dx := p.X - pivot.X
	dy := p.Y - pivot.Y
	return Point{
		X: pivot.X + dx*cos - dy*sin,
		Y: pivot.Y + dx*sin + dy*cos,
	}
}

// scalePoint scales p's offset from pivot by factor, uniformly in both axes.
func scalePoint(p Point, factor float64, pivot Point) Point {
	return Point{
		X: pivot.X + (p.X-pivot.X)*factor,
		Y: pivot.Y + (p.Y-pivot.Y)*factor,
	}
}

// angleDeg returns the angle of the vector from origin to p, in degrees
// clockwise from the +x axis through origin. Range (-180, 180].
func angleDeg(origin, p Point) float64 {
	return math.Atan2(p.Y-origin.Y, p.X-origin.X) / degToRad
}

// dist returns the euclidean distance between a and b.
func dist(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// snapDeg rounds deg to the nearest multiple of step. step <= 0 disables
// snapping and returns deg unchanged.
func snapDeg(deg, step float64) float64 {
	if step <= 0 {
		return deg
	}
	return math.Round(deg/step) * step
}
