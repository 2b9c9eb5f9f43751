package diag

import (
	"github.com/rs/zerolog"

	"github.com/phil-mansfield/mctransport/geom"
	"github.com/phil-mansfield/mctransport/particle"
	"github.com/phil-mansfield/mctransport/physics"
	"github.com/phil-mansfield/mctransport/rand"
)

// ExitStats counts the outcomes of tracking particles out of a cell.
type ExitStats struct {
	Tracks int
	// Lost tracks found no facet to leave through.
	Lost int
	// Disagreements are tracks whose exit facet is not crossed by the line
	// of flight, as judged by a Plucker test.
	Disagreements int
	MeanDistance  float64
}

// Exits starts n particles at the barycenter of tet in isotropic directions
// drawn from seed, finds the facet each leaves through, and checks each
// choice against a Plucker line-facet test.
func Exits(
	tet *geom.Tetra, seed uint64, n int, c *physics.Constants,
) ExitStats {
	planes, faces := tet.Faces()
	stats := ExitStats{Tracks: n}
	gen := rand.New(seed)
	line := geom.PluckerVec{}

	for i := 0; i < n; i++ {
		p := particle.New(gen.Spawn().Seed())
		p.Coordinate = *tet.Barycenter()
		p.SampleIsotropic()

		idx, dist := p.NearestFacet(planes[:], faces[:], c)
		if idx == -1 {
			stats.Lost++
			continue
		}
		stats.MeanDistance += dist

		d := p.Direction.Vec()
		line.Init(&p.Coordinate, &d)
		if !line.CrossesFacet(&faces[idx]) {
			stats.Disagreements++
		}
	}

	if found := n - stats.Lost; found > 0 {
		stats.MeanDistance /= float64(found)
	}
	return stats
}

// Exits runs Exits on the configured tetrahedron and logs the result.
func (r *Runner) Exits() (ExitStats, error) {
	tet, err := r.Config.Tetra()
	if err != nil {
		return ExitStats{}, err
	}

	stats := Exits(&tet, r.Config.Seed, r.Config.Samples, &r.Constants)
	level := zerolog.InfoLevel
	if stats.Lost > 0 || stats.Disagreements > 0 {
		level = zerolog.WarnLevel
	}
	r.Log.WithLevel(level).
		Int("tracks", stats.Tracks).
		Int("lost", stats.Lost).
		Int("disagreements", stats.Disagreements).
		Float64("mean_distance", stats.MeanDistance).
		Msg("Tracked particles out of the cell.")
	return stats, nil
}
