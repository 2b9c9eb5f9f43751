package io

import (
	"math"

	"github.com/phil-mansfield/table"
	"golang.org/x/xerrors"
)

const (
	eventEnergyCol   = 0
	eventCosThetaCol = 1
)

// Event is one collision outcome: the outgoing kinetic energy and the cosine
// of the scattering angle.
type Event struct {
	Energy, CosTheta float64
}

// ReadEvents reads a whitespace-separated table of collision outcomes. The
// first column is the energy in MeV and the second is the scattering
// cosine. Lines starting with '#' are comments.
//
// Events are checked here since the trajectory kernels propagate NaNs
// instead of failing on bad input.
func ReadEvents(fname string) ([]Event, error) {
	cols, err := table.ReadTable(
		fname, []int{eventEnergyCol, eventCosThetaCol}, nil,
	)
	if err != nil {
		return nil, xerrors.Errorf("reading events from %s: %w", fname, err)
	}

	energies, cosThetas := cols[0], cols[1]
	events := make([]Event, len(energies))
	for i := range events {
		e, mu := energies[i], cosThetas[i]
		if !(e >= 0) || math.IsInf(e, 0) {
			return nil, xerrors.Errorf(
				"event %d in %s has invalid energy %g", i, fname, e,
			)
		} else if !(math.Abs(mu) <= 1) {
			return nil, xerrors.Errorf(
				"event %d in %s has scattering cosine %g outside [-1, 1]",
				i, fname, mu,
			)
		}
		events[i] = Event{e, mu}
	}

	return events, nil
}
