package diag

import (
	"fmt"
	"math"

	mcio "github.com/phil-mansfield/mctransport/io"
)

// Mismatch is a kernel output which differs from its reference value.
type Mismatch struct {
	Name      string
	Got, Want string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s: got %s, want %s", m.Name, m.Got, m.Want)
}

// Compare checks got against want. Integer and boolean outputs must match
// exactly. Floats must agree to within a relative tolerance tol, measured
// against max(|want|, 1).
func Compare(got, want *mcio.KernelValues, tol float64) []Mismatch {
	c := &comparison{tol: tol}

	c.uint("spawn.child", got.Spawn.Child, want.Spawn.Child)
	c.uint("spawn.parent", got.Spawn.Parent, want.Spawn.Parent)
	for i := range got.PseudoDES {
		c.uint(fmt.Sprintf("pseudo_des[%d]", i),
			uint64(got.PseudoDES[i]), uint64(want.PseudoDES[i]))
	}

	c.vec("isotropic", &got.Isotropic, &want.Isotropic)
	c.vec("rotate", &got.Rotate, &want.Rotate)

	gt, wt := &got.Trajectory, &want.Trajectory
	c.float("trajectory.energy", gt.Energy, wt.Energy)
	c.float("trajectory.angle", gt.Angle, wt.Angle)
	c.vec("trajectory.direction", &gt.Direction, &wt.Direction)
	c.vec("trajectory.velocity", &gt.Velocity, &wt.Velocity)
	c.float("trajectory.num_mean_free_paths",
		gt.NumMeanFreePaths, wt.NumMeanFreePaths)
	c.uint("trajectory.seed", gt.Seed, wt.Seed)

	c.vec("move", &got.Move, &want.Move)
	c.float("volume", got.Volume, want.Volume)
	for i := range got.AxisClear {
		if got.AxisClear[i] != want.AxisClear[i] {
			c.add(fmt.Sprintf("axis_clear[%d]", i),
				fmt.Sprint(got.AxisClear[i]), fmt.Sprint(want.AxisClear[i]))
		}
	}
	c.vec("cross", &got.Cross, &want.Cross)

	return c.out
}

type comparison struct {
	tol float64
	out []Mismatch
}

func (c *comparison) add(name, got, want string) {
	c.out = append(c.out, Mismatch{name, got, want})
}

func (c *comparison) uint(name string, got, want uint64) {
	if got != want {
		c.add(name, fmt.Sprint(got), fmt.Sprint(want))
	}
}

func (c *comparison) float(name string, got, want float64) {
	if !(math.Abs(got-want) <= c.tol*math.Max(math.Abs(want), 1)) {
		c.add(name, fmt.Sprintf("%.17g", got), fmt.Sprintf("%.17g", want))
	}
}

func (c *comparison) vec(name string, got, want *[3]float64) {
	for i := range got {
		c.float(fmt.Sprintf("%s[%d]", name, i), got[i], want[i])
	}
}
