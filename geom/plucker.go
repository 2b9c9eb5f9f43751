package geom

// PluckerVec represents a line. If P is a point on the line and L is its
// direction, then U = L and V = L cross P.
type PluckerVec struct {
	U, V Vec
}

func NewPluckerVec(P, L *Vec) *PluckerVec {
	p := &PluckerVec{}
	p.Init(P, L)
	return p
}

// Init initializes a Plucker vector given a point on the line, P, and a
// direction, L.
func (p *PluckerVec) Init(P, L *Vec) {
	// Don't reverse this order, p.U could alias L.
	L.CrossAt(P, &p.V)
	p.U = *L
}

// InitFromSegment initializes a Plucker vector for the line running from P1
// to P2. The direction is not normalized.
func (p *PluckerVec) InitFromSegment(P1, P2 *Vec) {
	P2.SubAt(P1, &p.U)
	p.U.CrossAt(P1, &p.V)
}

// Dot computes the permuted inner product of two Plucker vectors,
// p1.U*p2.V + p2.U*p1.V. Its sign gives the side on which the two lines
// pass each other and it is zero if they intersect.
func (p1 *PluckerVec) Dot(p2 *PluckerVec) float64 {
	return p1.U.Dot(&p2.V) + p2.U.Dot(&p1.V)
}

// CrossesFacet returns true if the line p passes through the triangle
// facet, including its edges. The facet's winding doesn't matter, but lines
// lying in the facet's plane are never counted as crossing it.
func (p *PluckerVec) CrossesFacet(facet *[3]Vec) bool {
	edge := PluckerVec{}
	var pos, neg int
	for i := 0; i < 3; i++ {
		edge.InitFromSegment(&facet[i], &facet[(i+1)%3])
		switch d := p.Dot(&edge); {
		case d > 0:
			pos++
		case d < 0:
			neg++
		}
	}
	if pos == 0 && neg == 0 {
		return false
	}
	return pos == 0 || neg == 0
}
