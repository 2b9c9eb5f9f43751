/*package physics holds the physical constants used by the transport kernels.
Values are in cm, s and MeV. They are never derived from one another: a run
configures them once and hands the same *Constants to every kernel.
*/
package physics

import (
	"math"
)

const (
	// SpeedOfLight is c in cm/s.
	SpeedOfLight = 2.99792458e+10
	// NeutronRestMassEnergy is the neutron rest mass in MeV.
	NeutronRestMassEnergy = 9.395656981095e+2

	SmallDouble = 1e-10
	TinyDouble  = 1e-13
	HugeDouble  = 1e75
)

// Constants is a set of constants for one run.
type Constants struct {
	SpeedOfLight          float64
	NeutronRestMassEnergy float64

	// SmallDouble sets the step used to nudge stuck particles.
	SmallDouble float64
	// TinyDouble is configured and validated with the other cutoffs so that
	// a run's constants are complete, but no kernel reads it.
	TinyDouble  float64
	// HugeDouble is returned as the distance to an unreachable facet.
	HugeDouble  float64
}

// Default is the reference set of constants.
var Default = Constants{
	SpeedOfLight:          SpeedOfLight,
	NeutronRestMassEnergy: NeutronRestMassEnergy,
	SmallDouble:           SmallDouble,
	TinyDouble:            TinyDouble,
	HugeDouble:            HugeDouble,
}

// Speed returns the relativistic speed of a neutron with the given kinetic
// energy, c*sqrt(1 - (m/(E+m))^2).
func (c *Constants) Speed(energy float64) float64 {
	m := c.NeutronRestMassEnergy
	return c.SpeedOfLight * math.Sqrt(1.0-(m*m)/((energy+m)*(energy+m)))
}
