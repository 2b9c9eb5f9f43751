/*package particle contains the per-particle kernels of the transport loop:
direction sampling and rotation, and the trajectory update applied after each
collision. Every routine works on a particle owned by the caller and advances
that particle's private random stream in place.

Nothing here returns errors. Out-of-range inputs, such as a scattering cosine
with magnitude above one, produce NaNs which propagate to the caller.
*/
package particle

import (
	"math"

	"github.com/phil-mansfield/mctransport/geom"
	"github.com/phil-mansfield/mctransport/rand"
)

// poleThreshold is the sine of the polar angle below which a direction is
// treated as lying on the z axis when it is rotated.
const poleThreshold = 1e-6

// DirectionCosine is a unit vector given by its direction cosines with the
// x, y, and z axes. The unit norm is assumed, not enforced.
type DirectionCosine struct {
	Alpha, Beta, Gamma float64
}

// Vec returns the direction as a vector.
func (dc *DirectionCosine) Vec() geom.Vec {
	return geom.Vec{dc.Alpha, dc.Beta, dc.Gamma}
}

// NormSquared returns Alpha^2 + Beta^2 + Gamma^2, which is one for valid
// directions.
func (dc *DirectionCosine) NormSquared() float64 {
	return dc.Alpha*dc.Alpha + dc.Beta*dc.Beta + dc.Gamma*dc.Gamma
}

// SampleIsotropic sets dc to a direction drawn uniformly from the unit
// sphere. It consumes exactly two numbers from seed: the first sets Gamma,
// the second the azimuth.
func (dc *DirectionCosine) SampleIsotropic(seed *uint64) {
	dc.Gamma = 1.0 - 2.0*rand.Sample(seed)
	sinGamma := math.Sqrt(1.0 - dc.Gamma*dc.Gamma)
	phi := 2 * math.Pi * rand.Sample(seed)

	dc.Alpha = sinGamma * math.Cos(phi)
	dc.Beta = sinGamma * math.Sin(phi)
}

// Rotate3D rotates dc by a polar angle Theta and an azimuthal angle Phi
// measured in the frame of the current direction: Theta from the current
// direction and Phi about it. Only the sines and cosines are needed.
//
// The current direction's own azimuth is undefined on the poles, so when
// the sine of its polar angle is below 1e-6 the azimuth is taken to be zero.
func (dc *DirectionCosine) Rotate3D(sinTheta, cosTheta, sinPhi, cosPhi float64) {
	cosTheta0 := dc.Gamma
	sinTheta0 := math.Sqrt(1.0 - cosTheta0*cosTheta0)

	var cosPhi0, sinPhi0 float64
	if sinTheta0 < poleThreshold {
		cosPhi0, sinPhi0 = 1.0, 0.0
	} else {
		cosPhi0 = dc.Alpha / sinTheta0
		sinPhi0 = dc.Beta / sinTheta0
	}

	dc.Alpha = cosTheta0*cosPhi0*(sinTheta*cosPhi) -
		sinPhi0*(sinTheta*sinPhi) +
		sinTheta0*cosPhi0*cosTheta
	dc.Beta = cosTheta0*sinPhi0*(sinTheta*cosPhi) +
		cosPhi0*(sinTheta*sinPhi) +
		sinTheta0*sinPhi0*cosTheta
	dc.Gamma = -sinTheta0*(sinTheta*cosPhi) + cosTheta0*cosTheta
}
