package geom

import (
	"math"
)

// Tetra is a tetrahedron given by its four corners.
type Tetra [4]Vec

const (
	eps = 1e-6
)

// TetDet returns six times the signed volume of the tetrahedron (v0, v1, v2,
// v3). The determinant is evaluated in the frame of v3 and the factor of six
// is not divided out. The sign gives the handedness of the corner ordering:
// swapping any two corners flips it.
func TetDet(v0, v1, v2, v3 *Vec) float64 {
	var a, b, c Vec
	v0.SubAt(v3, &a)
	v1.SubAt(v3, &b)
	v2.SubAt(v3, &c)

	return a[2]*(b[0]*c[1]-b[1]*c[0]) +
		a[1]*(b[2]*c[0]-b[0]*c[2]) +
		a[0]*(b[1]*c[2]-b[2]*c[1])
}

// Volume computes the volume of a tetrahedron.
func (t *Tetra) Volume() float64 {
	return math.Abs(TetDet(&t[0], &t[1], &t[2], &t[3])) / 6
}

// Contains returns true if a tetrahedron contains the given point and false
// otherwise. Points on a face count as contained.
func (t *Tetra) Contains(v *Vec) bool {
	vol := 6 * t.Volume()
	if vol == 0 {
		return false
	}

	faces := [4][3]int{{0, 1, 2}, {1, 3, 2}, {0, 3, 1}, {0, 2, 3}}

	volSum := 0.0
	sign := 0
	for _, f := range faces {
		vi := TetDet(v, &t[f[0]], &t[f[1]], &t[f[2]])
		volSum += math.Abs(vi)
		if volSum > vol*(1+eps) {
			return false
		}

		// Sub-volumes in the eps band are coplanar with the point and carry
		// no orientation.
		if math.Abs(vi) <= vol*eps {
			continue
		}
		s := 1
		if vi < 0 {
			s = -1
		}
		if sign == 0 {
			sign = s
		} else if s != sign {
			return false
		}
	}

	return true
}

// Barycenter returns the mean of the four corners.
func (t *Tetra) Barycenter() *Vec {
	out := &Vec{}
	for i := 0; i < 4; i++ {
		out.AddSelf(&t[i])
	}
	return out.ScaleSelf(0.25)
}

// Faces returns the four faces of t along with their planes. Face i is
// opposite corner i and is wound so that its plane's normal points out of
// the tetrahedron.
func (t *Tetra) Faces() (planes [4]Plane, faces [4][3]Vec) {
	for i := range faces {
		f := &faces[i]
		for j, k := 0, 0; j < 4; j++ {
			if j != i {
				f[k] = t[j]
				k++
			}
		}

		planes[i] = NewPlane(&f[0], &f[1], &f[2])
		if planes[i].Eval(&t[i]) > 0 {
			f[1], f[2] = f[2], f[1]
			planes[i] = NewPlane(&f[0], &f[1], &f[2])
		}
	}
	return planes, faces
}
