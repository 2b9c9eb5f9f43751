package diag

import (
	mcio "github.com/phil-mansfield/mctransport/io"
	"github.com/phil-mansfield/mctransport/particle"
	"github.com/phil-mansfield/mctransport/physics"
)

// Replay applies a sequence of collision events to p in order and returns
// the particle's state after each one. The outputs are a pure function of
// p's starting state and the events.
func Replay(
	p *particle.Particle, events []mcio.Event, c *physics.Constants,
) []mcio.TrajectoryValues {
	out := make([]mcio.TrajectoryValues, len(events))
	for i, e := range events {
		particle.UpdateTrajectory(e.Energy, e.CosTheta, p, c)
		out[i] = mcio.TrajectoryValues{
			Energy:           e.Energy,
			Angle:            e.CosTheta,
			Direction:        p.Direction.Vec(),
			Velocity:         p.Velocity,
			NumMeanFreePaths: p.NumMeanFreePaths,
			Seed:             p.Seed,
		}
	}
	return out
}

// Replay runs events through a particle seeded with the diagnostic particle
// seed and moving along +z, logging the final state.
func (r *Runner) Replay(events []mcio.Event) []mcio.TrajectoryValues {
	p := particle.New(r.Config.ParticleSeed)
	p.Direction = particle.DirectionCosine{Gamma: 1}

	out := Replay(p, events, &r.Constants)
	if len(out) > 0 {
		last := out[len(out)-1]
		r.Log.Info().
			Int("events", len(events)).
			Floats64("direction", last.Direction[:]).
			Float64("num_mean_free_paths", last.NumMeanFreePaths).
			Uint64("seed", last.Seed).
			Msg("Replayed events.")
	}
	return out
}
