package geom

import (
	"math"
)

// Tolerance is the width of the band around a point inside of which a facet
// vertex is not considered to be clear of that point.
const Tolerance = 1e-9

// AxisClear returns true if the three facet vertices f0, f1, f2 all lie more
// than Tolerance above pt along the given axis, or all lie more than
// Tolerance below it. If it returns true, pt cannot lie on the facet.
func AxisClear(pt, f0, f1, f2 *Vec, axis Axis) bool {
	below := f0[axis] > pt[axis]+Tolerance &&
		f1[axis] > pt[axis]+Tolerance &&
		f2[axis] > pt[axis]+Tolerance
	above := f0[axis] < pt[axis]-Tolerance &&
		f1[axis] < pt[axis]-Tolerance &&
		f2[axis] < pt[axis]-Tolerance
	return below || above
}

// Cross2D returns the z-component of (b - a) x (c - a) for 2D points a, b, c.
// It is positive when c is to the left of the directed line a -> b.
func Cross2D(ax, ay, bx, by, cx, cy float64) float64 {
	return (bx-ax)*(cy-ay) - (by-ay)*(cx-ax)
}

// Plane is the plane A*x + B*y + C*z + D = 0. Planes built with NewPlane
// have a unit normal (A, B, C).
type Plane struct {
	A, B, C, D float64
}

// NewPlane returns the plane through r0, r1, and r2, with its normal pointing
// along (r1 - r0) x (r2 - r0). Collinear points give the plane x = 0.
func NewPlane(r0, r1, r2 *Vec) Plane {
	p := Plane{}
	p.A = (r1[1]-r0[1])*(r2[2]-r0[2]) - (r1[2]-r0[2])*(r2[1]-r0[1])
	p.B = (r1[2]-r0[2])*(r2[0]-r0[0]) - (r1[0]-r0[0])*(r2[2]-r0[2])
	p.C = (r1[0]-r0[0])*(r2[1]-r0[1]) - (r1[1]-r0[1])*(r2[0]-r0[0])
	p.D = -(p.A*r0[0] + p.B*r0[1] + p.C*r0[2])

	mag := math.Sqrt(p.A*p.A + p.B*p.B + p.C*p.C)
	if mag == 0 {
		p.A = 1
		return p
	}

	p.A /= mag
	p.B /= mag
	p.C /= mag
	p.D /= mag
	return p
}

// Normal returns the plane's normal vector.
func (p *Plane) Normal() Vec {
	return Vec{p.A, p.B, p.C}
}

// Eval returns A*x + B*y + C*z + D at the given point. For unit normals this
// is the signed distance from the plane.
func (p *Plane) Eval(pt *Vec) float64 {
	return p.A*pt[0] + p.B*pt[1] + p.C*pt[2] + p.D
}

// FacetContains returns true if pt, which is assumed to lie on the given
// plane, falls within the triangular facet. The test is done in the 2D
// projection which drops the dominant component of the plane normal. Planes
// with no normal component above 0.5 never contain a point.
func FacetContains(pt *Vec, plane *Plane, facet *[3]Vec) bool {
	var u, v Axis
	switch {
	case math.Abs(plane.C) > 0.5:
		u, v = X, Y
	case math.Abs(plane.B) > 0.5:
		u, v = Z, X
	case math.Abs(plane.A) > 0.5:
		u, v = Y, Z
	default:
		// Only possible for non-unit normals. Nothing to project onto.
		return false
	}

	f0, f1, f2 := &facet[0], &facet[1], &facet[2]
	if AxisClear(pt, f0, f1, f2, u) || AxisClear(pt, f0, f1, f2, v) {
		return false
	}

	c0 := Cross2D(f0[u], f0[v], f1[u], f1[v], pt[u], pt[v])
	c1 := Cross2D(f1[u], f1[v], f2[u], f2[v], pt[u], pt[v])
	c2 := Cross2D(f2[u], f2[v], f0[u], f0[v], pt[u], pt[v])

	tol := Tolerance * math.Abs(c0+c1+c2)
	inside := c0 > -tol && c1 > -tol && c2 > -tol
	flipped := c0 < tol && c1 < tol && c2 < tol
	return inside || flipped
}
