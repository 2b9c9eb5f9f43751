package io

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/xerrors"
	"gopkg.in/gcfg.v1"
	"gopkg.in/warnings.v0"

	"github.com/phil-mansfield/mctransport/geom"
	"github.com/phil-mansfield/mctransport/physics"
)

const (
	ExampleTransportFile = `[Physics]

#######################
# Optional Parameters #
#######################

# Physical constants used by the trajectory kernels. The defaults are the
# reference values and there is rarely a reason to change them except to
# check how sensitive a result is to one of them.

# Speed of light in cm/s.
# SpeedOfLight = 2.99792458e+10
# Neutron rest-mass energy in MeV.
# NeutronRestMassEnergy = 939.5656981095

# Numerical cutoffs. SmallDouble also sets the nudge used when moving a
# stuck particle toward a cell centre (0.5 * SmallDouble).
# SmallDouble = 1e-10
# TinyDouble = 1e-13
# HugeDouble = 1e75

[Diagnostic]

#######################
# Optional Parameters #
#######################

# Seed of the random stream used by the spawn, isotropic sampling, and
# trajectory checks.
# Seed = 90374384094798327

# Seed of the particle whose trajectory is updated. Particles start at 0.
# ParticleSeed = 0

# Direction cosine which is resampled and rotated, followed by the polar and
# azimuthal rotation angles in radians.
# Alpha = 0.2140
# Beta = 0.8621
# Gamma = 0.7821
# Theta = 1.0
# Phi = 2.0

# The four vertices of the test tetrahedron, one per line. Vertex 3 is also
# the point used in the facet checks against the other three. Either give
# all four or none.
# Vertex = 1.923 -2.45 5.013
# Vertex = 3.041 1.368 9.143
# Vertex = 6.235 0.325 2.502
# Vertex = 1.634 -1.34 3.873

# Point which vertex 0 is nudged toward.
# MoveTarget = 4.0 0.241 7.902

# Number of directions drawn for the isotropy statistics and plot.
# Samples = 100000`
)

// referenceVertices is the tetrahedron used when the config gives none.
var referenceVertices = geom.Tetra{
	{1.923, -2.45, 5.013},
	{3.041, 1.368, 9.143},
	{6.235, 0.325, 2.502},
	{1.634, -1.34, 3.873},
}

type PhysicsConfig struct {
	SpeedOfLight, NeutronRestMassEnergy float64
	SmallDouble, TinyDouble, HugeDouble float64
}

type DiagnosticConfig struct {
	Seed, ParticleSeed uint64

	Alpha, Beta, Gamma float64
	Theta, Phi         float64

	Vertex     []string
	MoveTarget string

	Samples int
}

type TransportWrapper struct {
	Physics    PhysicsConfig
	Diagnostic DiagnosticConfig
}

func DefaultTransportWrapper() *TransportWrapper {
	wrap := &TransportWrapper{}

	c := physics.Default
	wrap.Physics = PhysicsConfig{
		SpeedOfLight:          c.SpeedOfLight,
		NeutronRestMassEnergy: c.NeutronRestMassEnergy,
		SmallDouble:           c.SmallDouble,
		TinyDouble:            c.TinyDouble,
		HugeDouble:            c.HugeDouble,
	}

	d := &wrap.Diagnostic
	d.Seed = 90374384094798327
	d.Alpha, d.Beta, d.Gamma = 0.2140, 0.8621, 0.7821
	d.Theta, d.Phi = 1.0, 2.0
	d.MoveTarget = "4.0 0.241 7.902"
	d.Samples = 100000

	return wrap
}

func (con *PhysicsConfig) ValidSpeedOfLight() bool {
	return con.SpeedOfLight > 0
}
func (con *PhysicsConfig) ValidNeutronRestMassEnergy() bool {
	return con.NeutronRestMassEnergy > 0
}
func (con *PhysicsConfig) ValidCutoffs() bool {
	return con.TinyDouble > 0 && con.TinyDouble <= con.SmallDouble &&
		con.SmallDouble < con.HugeDouble
}

// Constants returns the physical constants described by con.
func (con *PhysicsConfig) Constants() physics.Constants {
	return physics.Constants{
		SpeedOfLight:          con.SpeedOfLight,
		NeutronRestMassEnergy: con.NeutronRestMassEnergy,
		SmallDouble:           con.SmallDouble,
		TinyDouble:            con.TinyDouble,
		HugeDouble:            con.HugeDouble,
	}
}

func (con *DiagnosticConfig) ValidDirection() bool {
	return isFinite(con.Alpha) && isFinite(con.Beta) && isFinite(con.Gamma)
}
func (con *DiagnosticConfig) ValidAngles() bool {
	return isFinite(con.Theta) && isFinite(con.Phi)
}
func (con *DiagnosticConfig) ValidVertex() bool {
	_, err := con.Tetra()
	return err == nil
}
func (con *DiagnosticConfig) ValidMoveTarget() bool {
	_, err := parseVec(con.MoveTarget)
	return err == nil
}
func (con *DiagnosticConfig) ValidSamples() bool {
	return con.Samples > 0
}

// Tetra returns the test tetrahedron, falling back to the reference
// tetrahedron if no vertices were given.
func (con *DiagnosticConfig) Tetra() (geom.Tetra, error) {
	if len(con.Vertex) == 0 {
		return referenceVertices, nil
	} else if len(con.Vertex) != 4 {
		return geom.Tetra{}, fmt.Errorf(
			"Need exactly four 'Vertex' values, but %d were given.",
			len(con.Vertex),
		)
	}

	tet := geom.Tetra{}
	for i, str := range con.Vertex {
		v, err := parseVec(str)
		if err != nil {
			return geom.Tetra{}, xerrors.Errorf("Vertex %d: %w", i, err)
		}
		tet[i] = v
	}
	return tet, nil
}

// Target returns the point the diagnostic nudges vertex 0 toward.
func (con *DiagnosticConfig) Target() (geom.Vec, error) {
	return parseVec(con.MoveTarget)
}

func parseVec(str string) (geom.Vec, error) {
	v := geom.Vec{}
	fields := strings.Fields(str)
	if len(fields) != 3 {
		return v, fmt.Errorf(
			"'%s' does not have exactly three components.", str,
		)
	}

	n, err := fmt.Sscan(str, &v[0], &v[1], &v[2])
	if err != nil || n != 3 {
		return v, fmt.Errorf("Could not parse '%s' as a vector.", str)
	}
	return v, nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// ReadConfig reads a [Physics]/[Diagnostic] configuration file. Variables
// which gcfg doesn't recognize do not cause a failure: they are returned
// as warnings.
func ReadConfig(fname string) (*TransportWrapper, []error, error) {
	wrap := DefaultTransportWrapper()
	err := gcfg.ReadFileInto(wrap, fname)
	return finishConfig(wrap, fname, err)
}

// ParseConfig is ReadConfig for a configuration held in memory.
func ParseConfig(text string) (*TransportWrapper, []error, error) {
	wrap := DefaultTransportWrapper()
	err := gcfg.ReadStringInto(wrap, text)
	return finishConfig(wrap, "<string>", err)
}

func finishConfig(
	wrap *TransportWrapper, name string, err error,
) (*TransportWrapper, []error, error) {
	if fatal := warnings.FatalOnly(err); fatal != nil {
		return nil, nil, xerrors.Errorf("reading config %s: %w", name, fatal)
	}
	warns := warnings.WarningsOnly(err)

	if err := wrap.Check(); err != nil {
		return nil, warns, xerrors.Errorf("config %s: %w", name, err)
	}
	return wrap, warns, nil
}

// Check returns an error describing the first invalid value in wrap.
func (wrap *TransportWrapper) Check() error {
	phys, diag := &wrap.Physics, &wrap.Diagnostic

	if !phys.ValidSpeedOfLight() {
		return fmt.Errorf("Invalid 'SpeedOfLight' value, %g.", phys.SpeedOfLight)
	} else if !phys.ValidNeutronRestMassEnergy() {
		return fmt.Errorf(
			"Invalid 'NeutronRestMassEnergy' value, %g.",
			phys.NeutronRestMassEnergy,
		)
	} else if !phys.ValidCutoffs() {
		return fmt.Errorf(
			"Need 0 < TinyDouble <= SmallDouble < HugeDouble, but got "+
				"%g, %g, and %g.",
			phys.TinyDouble, phys.SmallDouble, phys.HugeDouble,
		)
	}

	if !diag.ValidDirection() {
		return fmt.Errorf("Invalid 'Alpha', 'Beta', or 'Gamma' value.")
	} else if !diag.ValidAngles() {
		return fmt.Errorf("Invalid 'Theta' or 'Phi' value.")
	} else if !diag.ValidSamples() {
		return fmt.Errorf("Invalid 'Samples' value, %d.", diag.Samples)
	} else if _, err := diag.Tetra(); err != nil {
		return err
	} else if _, err := diag.Target(); err != nil {
		return xerrors.Errorf("MoveTarget: %w", err)
	}

	return nil
}
