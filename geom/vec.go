/*package geom contains the geometric kernels used while tracking particles
through a tetrahedral mesh: a 3D vector type, tetrahedron volumes, and the
tolerance-banded facet containment tests. */
package geom

import (
	"math"
)

// Vec represents a 3D vector. All vector methods which return vectors will
// also contain *Self() and *At() variants which compute the operation in-place
// and at the specified location, respectively. All output vectors are valid
// unless they overlap with an input vector but are not equal to that vector.
type Vec [3]float64

// Axis selects one of the three coordinates of a Vec.
type Axis int

const (
	X Axis = iota
	Y
	Z
)

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return "Axis(?)"
}

// Scale multiplies all components of a vector by a constant.
func (v *Vec) Scale(k float64) *Vec {
	return v.ScaleAt(k, &Vec{})
}

func (v *Vec) ScaleSelf(k float64) *Vec {
	return v.ScaleAt(k, v)
}

func (v *Vec) ScaleAt(k float64, out *Vec) *Vec {
	for i := 0; i < 3; i++ {
		out[i] = v[i] * k
	}
	return out
}

// Div divides all components of a vector by a constant. Dividing by zero
// gives the usual IEEE infinities.
func (v *Vec) Div(k float64) *Vec {
	return v.DivAt(k, &Vec{})
}

func (v *Vec) DivSelf(k float64) *Vec {
	return v.DivAt(k, v)
}

func (v *Vec) DivAt(k float64, out *Vec) *Vec {
	for i := 0; i < 3; i++ {
		out[i] = v[i] / k
	}
	return out
}

// Add adds two vectors together.
func (v1 *Vec) Add(v2 *Vec) *Vec {
	return v1.AddAt(v2, &Vec{})
}

func (v1 *Vec) AddSelf(v2 *Vec) *Vec {
	return v1.AddAt(v2, v1)
}

func (v1 *Vec) AddAt(v2, out *Vec) *Vec {
	for i := 0; i < 3; i++ {
		out[i] = v1[i] + v2[i]
	}
	return out
}

// Sub computes the displacement vector v1 - v2.
func (v1 *Vec) Sub(v2 *Vec) *Vec {
	return v1.SubAt(v2, &Vec{})
}

func (v1 *Vec) SubSelf(v2 *Vec) *Vec {
	return v1.SubAt(v2, v1)
}

func (v1 *Vec) SubAt(v2, out *Vec) *Vec {
	for i := 0; i < 3; i++ {
		out[i] = v1[i] - v2[i]
	}
	return out
}

// Equal returns true if the two vectors are identical. There is no tolerance.
func (v1 *Vec) Equal(v2 *Vec) bool {
	return v1[0] == v2[0] && v1[1] == v2[1] && v1[2] == v2[2]
}

// Norm computes the length of a vector.
func (v *Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// Distance computes the Euclidean distance between two points.
func (v1 *Vec) Distance(v2 *Vec) float64 {
	dx, dy, dz := v1[0]-v2[0], v1[1]-v2[1], v1[2]-v2[2]
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Dot computes the dot product of two vectors.
func (v1 *Vec) Dot(v2 *Vec) float64 {
	return v1[0]*v2[0] + v1[1]*v2[1] + v1[2]*v2[2]
}

// Cross computes the cross product v1 x v2.
func (v1 *Vec) Cross(v2 *Vec) *Vec {
	return v1.CrossAt(v2, &Vec{})
}

func (v1 *Vec) CrossSelf(v2 *Vec) *Vec {
	return v1.CrossAt(v2, v1)
}

func (v1 *Vec) CrossAt(v2, out *Vec) *Vec {
	out0 := v1[1]*v2[2] - v1[2]*v2[1]
	out1 := v1[2]*v2[0] - v1[0]*v2[2]
	out2 := v1[0]*v2[1] - v1[1]*v2[0]
	out[0], out[1], out[2] = out0, out1, out2
	return out
}

// MoveToward shifts v a fraction of the way toward target. The tracking
// loop uses this with a tiny factor to push a point off a facet it is stuck
// on.
func (v *Vec) MoveToward(target *Vec, factor float64) *Vec {
	for i := 0; i < 3; i++ {
		v[i] += factor * (target[i] - v[i])
	}
	return v
}
