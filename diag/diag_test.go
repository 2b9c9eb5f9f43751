package diag

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcio "github.com/phil-mansfield/mctransport/io"
	"github.com/phil-mansfield/mctransport/particle"
	"github.com/phil-mansfield/mctransport/physics"
)

const compareTol = 1e-12

func defaultRunner(out *bytes.Buffer) *Runner {
	r := NewRunner(mcio.DefaultTransportWrapper(), nil, zerolog.Nop())
	if out != nil {
		r.Out = out
	}
	return r
}

func readReference(t *testing.T) *mcio.KernelValues {
	ref, err := mcio.ReadReference(filepath.Join("testdata", "reference.yaml"))
	require.NoError(t, err)
	return ref
}

func TestRunMatchesReference(t *testing.T) {
	got, err := defaultRunner(nil).Run()
	require.NoError(t, err)
	ref := readReference(t)

	for _, m := range Compare(got, ref, compareTol) {
		t.Errorf("%s", m)
	}
	assert.Equal(t, ref.Rotate, got.Rotate, "rotation must match to the last bit")

	opt := cmpopts.EquateApprox(compareTol, 0)
	if diff := cmp.Diff(ref, got, opt); diff != "" {
		t.Errorf("kernel values differ from reference (-want +got):\n%s", diff)
	}
}

func TestRunOutput(t *testing.T) {
	out := &bytes.Buffer{}
	_, err := defaultRunner(out).Run()
	require.NoError(t, err)

	text := out.String()
	for _, line := range []string{
		"spawned number: 3246986314100353546\n",
		"a: 702007026\nb: 3221367323\n",
		"seed: 7130919190303094438\n",
		"alpha: -1.0369691350703922\nbeta: 0.3496694784021821\n" +
			"gamma: 0.6407833194623658\n",
		"clear_X: true\n",
		"clear_Y: false\n",
		"clear_Z: false\n",
		"#   spawned number test   #\n",
	} {
		assert.Contains(t, text, line)
	}
}

func TestRunLogs(t *testing.T) {
	logBuf := &bytes.Buffer{}
	r := defaultRunner(nil)
	r.Log = zerolog.New(logBuf)

	_, err := r.Run()
	require.NoError(t, err)
	assert.Contains(t, logBuf.String(), `"seed":90374384094798327`)
}

func TestRunBadConfig(t *testing.T) {
	r := defaultRunner(nil)
	r.Config.Vertex = []string{"0 0 0"}
	_, err := r.Run()
	assert.Error(t, err)

	r = defaultRunner(nil)
	r.Config.MoveTarget = "nowhere"
	_, err = r.Run()
	assert.Error(t, err)
}

func TestRunUsesConstants(t *testing.T) {
	base, err := defaultRunner(nil).Run()
	require.NoError(t, err)

	r := defaultRunner(nil)
	r.Constants.SpeedOfLight *= 2
	got, err := r.Run()
	require.NoError(t, err)

	for i := range got.Trajectory.Velocity {
		assert.Equal(t, 2*base.Trajectory.Velocity[i],
			got.Trajectory.Velocity[i])
	}
	assert.Equal(t, base.Trajectory.Direction, got.Trajectory.Direction)
}

func TestCompare(t *testing.T) {
	ref := readReference(t)
	assert.Empty(t, Compare(ref, ref, 0))

	got := *ref
	got.Volume += 1e-6
	got.Spawn.Child++
	got.AxisClear[1] = true
	got.Rotate[2] *= 1 + 1e-15

	ms := Compare(&got, ref, compareTol)
	names := make([]string, len(ms))
	for i := range ms {
		names[i] = ms[i].Name
	}
	assert.Equal(t, []string{"spawn.child", "volume", "axis_clear[1]"}, names)

	got = *ref
	got.Trajectory.NumMeanFreePaths = math.NaN()
	ms = Compare(&got, ref, compareTol)
	require.Len(t, ms, 1)
	assert.Equal(t, "trajectory.num_mean_free_paths", ms[0].Name)
}

func TestReplay(t *testing.T) {
	events, err := mcio.ReadEvents(filepath.Join("testdata", "events.txt"))
	require.NoError(t, err)

	r := defaultRunner(nil)
	first := r.Replay(events)
	second := r.Replay(events)
	require.Len(t, first, len(events))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("replay is not deterministic (-first +second):\n%s", diff)
	}

	p := particle.New(r.Config.ParticleSeed)
	p.Direction = particle.DirectionCosine{Gamma: 1}
	for _, e := range events {
		particle.UpdateTrajectory(e.Energy, e.CosTheta, p, &physics.Default)
	}
	last := first[len(first)-1]
	assert.Equal(t, p.Seed, last.Seed)
	assert.Equal(t, [3]float64(p.Velocity), last.Velocity)

	for i, v := range first {
		speed := math.Sqrt(v.Velocity[0]*v.Velocity[0] +
			v.Velocity[1]*v.Velocity[1] + v.Velocity[2]*v.Velocity[2])
		assert.InEpsilon(t, physics.Default.Speed(events[i].Energy), speed,
			1e-12, "event %d", i)
	}

	assert.Empty(t, r.Replay(nil))
}

func TestIsotropy(t *testing.T) {
	n := 100000
	if testing.Short() {
		n = 10000
	}
	stats := Isotropy(90374384094798327, n)

	assert.Equal(t, n, stats.Samples)
	for j := 0; j < 3; j++ {
		assert.InDelta(t, 0.0, stats.Mean[j], 0.02, "mean %d", j)
		assert.InDelta(t, 1.0/3, stats.MeanSquare[j], 0.02, "mean square %d", j)
	}
	assert.Less(t, stats.MaxNormError, 1e-12)
	assert.InDelta(t, 1.0, stats.MeanFreePath, 0.03)
}

func TestExits(t *testing.T) {
	r := defaultRunner(nil)
	r.Config.Samples = 2000

	stats, err := r.Exits()
	require.NoError(t, err)
	assert.Equal(t, 2000, stats.Tracks)
	assert.Zero(t, stats.Lost)
	assert.Zero(t, stats.Disagreements)
	assert.Greater(t, stats.MeanDistance, 0.0)

	// The mean distance is scale-invariant relative to the cell size.
	tet, err := r.Config.Tetra()
	require.NoError(t, err)
	big := tet
	for i := range big {
		big[i].ScaleSelf(2)
	}
	bigStats := Exits(&big, r.Config.Seed, 2000, &r.Constants)
	assert.InDelta(t, 2*stats.MeanDistance, bigStats.MeanDistance, 1e-9)

	r.Config.Vertex = []string{"0 0 0"}
	_, err = r.Exits()
	assert.Error(t, err)
}

func TestSampleDirections(t *testing.T) {
	dirs := SampleDirections(90374384094798327, 3)
	require.Len(t, dirs, 3)
	assert.Equal(t, 0.2026699815455325, dirs[0].Gamma)
	assert.InDelta(t, -0.9083218129645693, dirs[0].Alpha, 1e-13)
	assert.NotEqual(t, dirs[0], dirs[1])
}

func TestHistogram(t *testing.T) {
	xs := []float64{-1, -0.5, 0, 0.25, 0.999, 1, 2, -3}
	centers, ratios := histogram(xs, -1, 1, 4)

	assert.Equal(t, []float64{-0.75, -0.25, 0.25, 0.75}, centers)

	// Eight values, so a flat bin would hold two.
	assert.Equal(t, []float64{0.5, 0.5, 1, 1}, ratios)
}

func BenchmarkRun(b *testing.B) {
	r := defaultRunner(nil)
	for i := 0; i < b.N; i++ {
		r.Run()
	}
}
