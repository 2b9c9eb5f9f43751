package particle

import (
	"math"

	"github.com/phil-mansfield/mctransport/physics"
	"github.com/phil-mansfield/mctransport/rand"
)

// UpdateTrajectory applies the outcome of a collision to p: its energy
// becomes energy and its direction is deflected by the polar angle with
// cosine cosTheta, at an azimuth drawn from p's stream. The velocity is
// recomputed from the new energy and direction, and a new distance to
// collision is sampled. Two numbers are drawn from p.Seed.
func UpdateTrajectory(energy, cosTheta float64, p *Particle, c *physics.Constants) {
	p.KineticEnergy = energy

	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)
	phi := 2 * math.Pi * rand.Sample(&p.Seed)
	sinPhi, cosPhi := math.Sincos(phi)

	p.Direction.Rotate3D(sinTheta, cosTheta, sinPhi, cosPhi)

	speed := c.Speed(energy)
	p.Velocity[0] = speed * p.Direction.Alpha
	p.Velocity[1] = speed * p.Direction.Beta
	p.Velocity[2] = speed * p.Direction.Gamma

	p.SampleNumMeanFreePaths()
}

// SampleNumMeanFreePaths draws the number of mean free paths to the next
// collision from the unit exponential distribution.
func (p *Particle) SampleNumMeanFreePaths() {
	p.NumMeanFreePaths = -1.0 * math.Log(rand.Sample(&p.Seed))
}

// Scatter samples an elastic scatter off a nucleus of mass materialMass (in
// neutron masses) and applies it with UpdateTrajectory. The outgoing energy
// is E*(1 - u/A) and the scattering cosine is uniform on [-1, 1]. Four
// numbers are drawn from p.Seed.
func (p *Particle) Scatter(materialMass float64, c *physics.Constants) {
	energy := p.KineticEnergy * (1.0 - rand.Sample(&p.Seed)*(1.0/materialMass))
	cosTheta := rand.Sample(&p.Seed)*2.0 - 1.0
	UpdateTrajectory(energy, cosTheta, p, c)
}
