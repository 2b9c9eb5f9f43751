package io

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/mctransport/geom"
	"github.com/phil-mansfield/mctransport/physics"
)

func TestDefaultTransportWrapper(t *testing.T) {
	wrap := DefaultTransportWrapper()
	require.NoError(t, wrap.Check())

	c := wrap.Physics.Constants()
	if diff := cmp.Diff(physics.Default, c); diff != "" {
		t.Errorf("default constants differ (-want +got):\n%s", diff)
	}

	tet, err := wrap.Diagnostic.Tetra()
	require.NoError(t, err)
	assert.Equal(t, referenceVertices, tet)

	target, err := wrap.Diagnostic.Target()
	require.NoError(t, err)
	assert.Equal(t, geom.Vec{4.0, 0.241, 7.902}, target)
}

func TestExampleTransportFile(t *testing.T) {
	// Everything in the example is commented out, so it must give the
	// defaults back.
	wrap, warns, err := ParseConfig(ExampleTransportFile)
	require.NoError(t, err)
	assert.Empty(t, warns)
	if diff := cmp.Diff(DefaultTransportWrapper(), wrap); diff != "" {
		t.Errorf("example config differs from defaults (-want +got):\n%s", diff)
	}

	// Uncommenting every variable must also give the defaults back.
	lines := strings.Split(ExampleTransportFile, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, " = ") {
			lines[i] = strings.TrimPrefix(line, "# ")
		}
	}
	wrap, warns, err = ParseConfig(strings.Join(lines, "\n"))
	require.NoError(t, err)
	assert.Empty(t, warns)

	tet, err := wrap.Diagnostic.Tetra()
	require.NoError(t, err)
	assert.Equal(t, referenceVertices, tet)
	assert.Equal(t, uint64(90374384094798327), wrap.Diagnostic.Seed)
	assert.Equal(t, physics.Default, wrap.Physics.Constants())
}

func TestReadConfig(t *testing.T) {
	wrap, warns, err := ReadConfig(filepath.Join("testdata", "transport.cfg"))
	require.NoError(t, err)
	assert.Empty(t, warns)

	phys := wrap.Physics
	assert.Equal(t, 3e10, phys.SpeedOfLight)
	assert.Equal(t, 1e70, phys.HugeDouble)
	assert.Equal(t, physics.NeutronRestMassEnergy, phys.NeutronRestMassEnergy)

	diag := wrap.Diagnostic
	assert.Equal(t, uint64(12345), diag.Seed)
	assert.Equal(t, uint64(7), diag.ParticleSeed)
	assert.Equal(t, 0.5, diag.Theta)
	assert.Equal(t, 2.0, diag.Phi)
	assert.Equal(t, 0.2140, diag.Alpha)
	assert.Equal(t, 1000, diag.Samples)

	tet, err := diag.Tetra()
	require.NoError(t, err)
	assert.Equal(t, geom.Tetra{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {0, 0, 1}}, tet)
	assert.InDelta(t, 1.0/6, tet.Volume(), 1e-15)

	target, err := diag.Target()
	require.NoError(t, err)
	assert.Equal(t, geom.Vec{1, 1, 1}, target)
}

func TestReadConfigWarnings(t *testing.T) {
	wrap, warns, err := ReadConfig(filepath.Join("testdata", "unknown.cfg"))
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.Contains(t, strings.ToLower(warns[0].Error()), "lightspeed")
	assert.Equal(t, 3e10, wrap.Physics.SpeedOfLight)
}

func TestReadConfigErrors(t *testing.T) {
	_, _, err := ReadConfig(filepath.Join("testdata", "does_not_exist.cfg"))
	assert.Error(t, err)

	_, _, err = ReadConfig(filepath.Join("testdata", "bad_vertex.cfg"))
	assert.Error(t, err)

	table := []string{
		"[Physics]\nSpeedOfLight = -1",
		"[Physics]\nNeutronRestMassEnergy = 0",
		"[Physics]\nTinyDouble = 1e-9\nSmallDouble = 1e-10",
		"[Diagnostic]\nSamples = 0",
		"[Diagnostic]\nMoveTarget = 1 2",
		"[Diagnostic]\nVertex = 1 2 x\nVertex = 0 0 0\n" +
			"Vertex = 0 0 0\nVertex = 0 0 0",
		"[Diagnostic]\nSeed = banana",
		"[Diagnostic",
	}

	for i, text := range table {
		if _, _, err := ParseConfig(text); err == nil {
			t.Errorf("%d) expected an error for config:\n%s", i, text)
		}
	}
}

func TestConfigPredicates(t *testing.T) {
	wrap := DefaultTransportWrapper()
	diag := &wrap.Diagnostic
	assert.True(t, diag.ValidVertex())
	assert.True(t, diag.ValidMoveTarget())

	diag.Vertex = []string{"0 0 0", "1 1 1", "2 2 2"}
	assert.False(t, diag.ValidVertex())
	diag.MoveTarget = ""
	assert.False(t, diag.ValidMoveTarget())

	phys := &wrap.Physics
	assert.True(t, phys.ValidCutoffs())
	phys.HugeDouble = phys.SmallDouble
	assert.False(t, phys.ValidCutoffs())
}

func TestReference(t *testing.T) {
	vals := &KernelValues{
		Spawn:     SpawnValues{3246986314100353546, 7354071396357837896},
		PseudoDES: [2]uint32{702007026, 3221367323},
		Isotropic: [3]float64{-0.9083218129645693, 0.3658911896631175,
			0.2026699815455325},
		Trajectory: TrajectoryValues{
			Energy:           0.39866500922723375,
			Velocity:         [3]float64{541536626.4526254, 0, -1e-300},
			NumMeanFreePaths: 0.9504477371306876,
			Seed:             16127330271062048800,
		},
		Volume:    -44.197674792000015,
		AxisClear: [3]bool{true, false, true},
	}

	fname := filepath.Join(t.TempDir(), "reference.yaml")
	require.NoError(t, WriteReference(fname, vals))

	read, err := ReadReference(fname)
	require.NoError(t, err)
	if diff := cmp.Diff(vals, read); diff != "" {
		t.Errorf("reference changed on disk (-want +got):\n%s", diff)
	}

	_, err = ReadReference(filepath.Join("testdata", "does_not_exist.yaml"))
	assert.Error(t, err)
	_, err = ReadReference(filepath.Join("testdata", "transport.cfg"))
	assert.Error(t, err)
}

func TestReadEvents(t *testing.T) {
	events, err := ReadEvents(filepath.Join("testdata", "events.txt"))
	require.NoError(t, err)

	want := []Event{{2.0, 0.5}, {1.5, -0.25}, {0.75, 1.0}, {0.1, -1.0}}
	assert.Equal(t, want, events)

	_, err = ReadEvents(filepath.Join("testdata", "bad_events.txt"))
	assert.Error(t, err)
	_, err = ReadEvents(filepath.Join("testdata", "does_not_exist.txt"))
	assert.Error(t, err)
}
