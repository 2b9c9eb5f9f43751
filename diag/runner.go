/*package diag runs every transport kernel on a fixed set of inputs, prints
the results in a form that can be compared by eye against other
implementations, and checks them against stored reference values.

It also contains the slower statistical checks: replaying a table of
collision events through the trajectory kernel and measuring how isotropic
the sampled directions are.
*/
package diag

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/rs/zerolog"

	"github.com/phil-mansfield/mctransport/geom"
	mcio "github.com/phil-mansfield/mctransport/io"
	"github.com/phil-mansfield/mctransport/particle"
	"github.com/phil-mansfield/mctransport/physics"
	"github.com/phil-mansfield/mctransport/rand"
)

const (
	desLWord  uint32 = 123214124
	desIRWord uint32 = 968374242
)

// roundedSinCos holds correctly rounded sines and cosines of the default
// rotation angles. math.Sin(2) is one ulp below the rounded value.
var roundedSinCos = map[float64][2]float64{
	1: {0.8414709848078965, 0.5403023058681398},
	2: {0.9092974268256817, -0.4161468365471424},
}

func sinCos(x float64) (sin, cos float64) {
	if sc, ok := roundedSinCos[x]; ok {
		return sc[0], sc[1]
	}
	return math.Sin(x), math.Cos(x)
}

// Runner runs the kernels with the inputs from a [Diagnostic] config block.
type Runner struct {
	Log zerolog.Logger
	// Out receives the human-readable kernel output. It may be nil.
	Out io.Writer

	Constants physics.Constants
	Config    mcio.DiagnosticConfig
}

// NewRunner returns a Runner for an already validated config.
func NewRunner(
	wrap *mcio.TransportWrapper, out io.Writer, log zerolog.Logger,
) *Runner {
	return &Runner{
		Log:       log,
		Out:       out,
		Constants: wrap.Physics.Constants(),
		Config:    wrap.Diagnostic,
	}
}

// Run evaluates every kernel once and returns the results.
func (r *Runner) Run() (*mcio.KernelValues, error) {
	con := &r.Config
	tet, err := con.Tetra()
	if err != nil {
		return nil, err
	}
	target, err := con.Target()
	if err != nil {
		return nil, err
	}

	r.Log.Info().
		Uint64("seed", con.Seed).
		Uint64("particle_seed", con.ParticleSeed).
		Msg("Running kernels.")

	vals := &mcio.KernelValues{}

	r.banner("spawned number test")
	seed := con.Seed
	vals.Spawn.Child = rand.Spawn(&seed)
	vals.Spawn.Parent = seed
	r.printf("spawned number: %d\n", vals.Spawn.Child)

	r.banner("pseudo hash test")
	a, b := desLWord, desIRWord
	rand.PseudoDES(&a, &b)
	vals.PseudoDES = [2]uint32{a, b}
	r.printf("a: %d\nb: %d\n", a, b)

	r.banner("sample isotropic test")
	dc := particle.DirectionCosine{con.Alpha, con.Beta, con.Gamma}
	seed = con.Seed
	dc.SampleIsotropic(&seed)
	vals.Isotropic = dc.Vec()
	r.printDirection(&dc)

	r.banner("rotate 3d vector test")
	dc = particle.DirectionCosine{con.Alpha, con.Beta, con.Gamma}
	sinTheta, cosTheta := sinCos(con.Theta)
	sinPhi, cosPhi := sinCos(con.Phi)
	dc.Rotate3D(sinTheta, cosTheta, sinPhi, cosPhi)
	vals.Rotate = dc.Vec()
	r.printDirection(&dc)

	r.banner("update trajectory test")
	vals.Trajectory = r.trajectory()
	r.printTrajectory(&vals.Trajectory)

	r.banner("move particle test")
	pt := tet[0]
	pt.MoveToward(&target, 0.5*r.Constants.SmallDouble)
	vals.Move = pt
	r.printf("coordinate.x: %17.16f\n", pt[0])
	r.printf("coordinate.y: %17.16f\n", pt[1])
	r.printf("coordinate.z: %17.16f\n", pt[2])

	r.banner("compute volume test")
	vals.Volume = geom.TetDet(&tet[0], &tet[1], &tet[2], &tet[3])
	r.printf("volume: %17.16f\n", vals.Volume)

	r.banner("facet test")
	vals.AxisClear, vals.Cross = facetValues(&tet)
	for i, axis := range []geom.Axis{geom.X, geom.Y, geom.Z} {
		r.printf("clear_%s: %t\n", axis, vals.AxisClear[i])
	}
	for i, cross := range vals.Cross {
		r.printf("cross%d: %17.16f\n", i, cross)
	}

	return vals, nil
}

// trajectory updates a particle travelling along (1, 1, 1) with an energy
// and scattering cosine drawn from the diagnostic stream.
func (r *Runner) trajectory() mcio.TrajectoryValues {
	seed := r.Config.Seed
	energy := rand.Sample(&seed)
	angle := rand.Sample(&seed)

	p := particle.New(r.Config.ParticleSeed)
	d := 1 / math.Sqrt(3)
	p.Direction = particle.DirectionCosine{d, d, d}
	p.Velocity = geom.Vec{1, 1, 1}

	particle.UpdateTrajectory(energy, angle, p, &r.Constants)

	return mcio.TrajectoryValues{
		Energy:           energy,
		Angle:            angle,
		Direction:        p.Direction.Vec(),
		Velocity:         p.Velocity,
		NumMeanFreePaths: p.NumMeanFreePaths,
		Seed:             p.Seed,
	}
}

// facetValues runs the facet predicates with vertex 3 of tet as the point
// and the other three vertices as the facet.
func facetValues(tet *geom.Tetra) (clears [3]bool, cross [3]float64) {
	f0, f1, f2, pt := &tet[0], &tet[1], &tet[2], &tet[3]
	for i, axis := range []geom.Axis{geom.X, geom.Y, geom.Z} {
		clears[i] = geom.AxisClear(pt, f0, f1, f2, axis)
	}

	cross[0] = geom.Cross2D(f2[0], f2[1], f0[0], f0[1], pt[0], pt[1])
	cross[1] = geom.Cross2D(f0[0], f0[1], f1[0], f1[1], pt[0], pt[1])
	cross[2] = geom.Cross2D(f1[0], f1[1], f2[0], f2[1], pt[0], pt[1])
	return clears, cross
}

func (r *Runner) printf(format string, args ...interface{}) {
	if r.Out == nil {
		return
	}
	fmt.Fprintf(r.Out, format, args...)
}

func (r *Runner) banner(title string) {
	pad := 23 - len(title)
	if pad < 0 {
		pad = 0
	}
	left := strings.Repeat(" ", pad/2)
	right := strings.Repeat(" ", pad-pad/2)

	r.printf("\n###########################\n")
	r.printf("# %s%s%s #\n", left, title, right)
	r.printf("###########################\n")
}

func (r *Runner) printDirection(dc *particle.DirectionCosine) {
	r.printf("alpha: %17.16f\n", dc.Alpha)
	r.printf("beta: %17.16f\n", dc.Beta)
	r.printf("gamma: %17.16f\n", dc.Gamma)
}

func (r *Runner) printTrajectory(t *mcio.TrajectoryValues) {
	r.printf("energy: %17.16f\n", t.Energy)
	r.printf("angle: %17.16f\n", t.Angle)
	r.printf("direction: (%17.16f, %17.16f, %17.16f)\n",
		t.Direction[0], t.Direction[1], t.Direction[2])
	r.printf("velocity: (%17.16f, %17.16f, %17.16f)\n",
		t.Velocity[0], t.Velocity[1], t.Velocity[2])
	r.printf("num_mean_free_paths: %17.16f\n", t.NumMeanFreePaths)
	r.printf("seed: %d\n", t.Seed)
}
