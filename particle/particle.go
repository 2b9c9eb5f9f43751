package particle

import (
	"github.com/phil-mansfield/mctransport/geom"
	"github.com/phil-mansfield/mctransport/rand"
)

// Particle is the state of one tracked neutron. A Particle and its Seed are
// owned by exactly one track and must not be shared between goroutines.
type Particle struct {
	Coordinate geom.Vec
	Velocity   geom.Vec
	Direction  DirectionCosine

	KineticEnergy float64
	// NumMeanFreePaths is the distance to the next collision in units of
	// the local mean free path.
	NumMeanFreePaths float64
	Weight           float64

	// Seed is the state of this particle's random stream.
	Seed       uint64
	Identifier uint64
}

// New returns a particle at rest at the origin with unit weight, using seed
// as both its stream state and its identifier.
func New(seed uint64) *Particle {
	return &Particle{Weight: 1, Seed: seed, Identifier: seed}
}

// SampleIsotropic points the particle in a random direction drawn from its
// own stream.
func (p *Particle) SampleIsotropic() {
	p.Direction.SampleIsotropic(&p.Seed)
}

// MoveAlongSegment moves the particle a distance length along its direction.
func (p *Particle) MoveAlongSegment(length float64) {
	d := p.Direction.Vec()
	p.Coordinate.AddSelf(d.ScaleSelf(length))
}

// Reflect mirrors the particle's direction off a reflecting facet. Particles
// already moving away from the facet are left alone. Energy is unchanged.
func (p *Particle) Reflect(plane *geom.Plane) {
	n := plane.Normal()
	d := p.Direction.Vec()
	dot := 2 * d.Dot(&n)
	if dot <= 0 {
		return
	}
	d.SubSelf(n.ScaleSelf(dot))
	p.Direction = DirectionCosine{d[0], d[1], d[2]}
}

// SpawnSecondary returns a copy of p with its own spawned random stream. The
// copy's identifier is its new seed. p's stream is advanced.
func (p *Particle) SpawnSecondary() *Particle {
	sec := *p
	sec.Seed = rand.Spawn(&p.Seed)
	sec.Identifier = sec.Seed
	return &sec
}
