package io

import (
	"io/ioutil"

	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// KernelValues holds the output of every kernel for one set of diagnostic
// inputs. A stored copy is used as the reference that later runs are
// checked against.
type KernelValues struct {
	Spawn      SpawnValues      `yaml:"spawn"`
	PseudoDES  [2]uint32        `yaml:"pseudo_des"`
	Isotropic  [3]float64       `yaml:"isotropic"`
	Rotate     [3]float64       `yaml:"rotate"`
	Trajectory TrajectoryValues `yaml:"trajectory"`
	Move       [3]float64       `yaml:"move"`
	Volume     float64          `yaml:"volume"`
	AxisClear  [3]bool          `yaml:"axis_clear"`
	Cross      [3]float64       `yaml:"cross"`
}

type SpawnValues struct {
	Child  uint64 `yaml:"child"`
	Parent uint64 `yaml:"parent"`
}

type TrajectoryValues struct {
	Energy           float64    `yaml:"energy"`
	Angle            float64    `yaml:"angle"`
	Direction        [3]float64 `yaml:"direction"`
	Velocity         [3]float64 `yaml:"velocity"`
	NumMeanFreePaths float64    `yaml:"num_mean_free_paths"`
	Seed             uint64     `yaml:"seed"`
}

// ReadReference reads a KernelValues file written by WriteReference.
func ReadReference(fname string) (*KernelValues, error) {
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, xerrors.Errorf("reading reference: %w", err)
	}

	vals := &KernelValues{}
	if err := yaml.Unmarshal(data, vals); err != nil {
		return nil, xerrors.Errorf("yaml unmarshal %s: %w", fname, err)
	}
	return vals, nil
}

// WriteReference writes vals to fname as YAML. Floats are written with
// enough digits to be read back exactly.
func WriteReference(fname string, vals *KernelValues) error {
	data, err := yaml.Marshal(vals)
	if err != nil {
		return xerrors.Errorf("yaml marshal: %w", err)
	}
	if err := ioutil.WriteFile(fname, data, 0644); err != nil {
		return xerrors.Errorf("writing reference: %w", err)
	}
	return nil
}
