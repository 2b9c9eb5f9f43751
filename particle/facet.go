package particle

import (
	"math"

	"github.com/phil-mansfield/mctransport/geom"
	"github.com/phil-mansfield/mctransport/physics"
)

// planeTolerance is multiplied by the squared distance of the particle from
// the origin to get the squared distance behind a plane at which the
// particle still counts as being on it.
const planeTolerance = 1e-16

// DistanceToFacet returns the distance along p's direction to the facet
// lying on plane, whose normal points out of p's cell. The distance is
// negative if p is already past the plane by no more than a rounding error.
// c.HugeDouble is returned if p is moving away from the plane, is further
// past it, or would hit the plane outside of the facet.
func (p *Particle) DistanceToFacet(
	plane *geom.Plane, facet *[3]geom.Vec, c *physics.Constants,
) float64 {
	x, d := &p.Coordinate, p.Direction.Vec()

	numerator := -plane.Eval(x)
	normalDotDir := plane.A*d[0] + plane.B*d[1] + plane.C*d[2]

	tol := planeTolerance * x.Dot(x)
	if normalDotDir <= 0 || (numerator < 0 && numerator*numerator > tol) {
		return c.HugeDouble
	}

	dist := numerator / normalDotDir
	hit := d
	hit.ScaleSelf(dist).AddSelf(x)
	if !geom.FacetContains(&hit, plane, facet) {
		return c.HugeDouble
	}

	return dist
}

// NearestFacet returns the index of and distance to the closest facet ahead
// of p. Ties go to the later facet. Facets p has just passed are only used
// if none are ahead, in which case the one p is least far past is returned
// with a distance of 0. If p can't reach any facet the index is -1 and the
// distance is c.HugeDouble.
func (p *Particle) NearestFacet(
	planes []geom.Plane, facets [][3]geom.Vec, c *physics.Constants,
) (idx int, dist float64) {
	idx, dist = -1, c.HugeDouble
	behind, behindDist := -1, -c.HugeDouble
	for i := range planes {
		di := p.DistanceToFacet(&planes[i], &facets[i], c)
		switch {
		case di >= c.HugeDouble:
		case di > 0:
			if di <= dist {
				idx, dist = i, di
			}
		case di > behindDist:
			behind, behindDist = i, di
		}
	}

	if idx == -1 && behind != -1 {
		idx, dist = behind, behindDist
	}
	return idx, math.Max(dist, 0)
}
