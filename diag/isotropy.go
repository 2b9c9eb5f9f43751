package diag

import (
	"fmt"
	"math"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/mctransport/particle"
	"github.com/phil-mansfield/mctransport/rand"
)

const plotBins = 50

// IsotropyStats summarizes a set of sampled directions. For an isotropic
// distribution every mean is zero, every mean square is 1/3 and the mean
// exponential draw is one.
type IsotropyStats struct {
	Samples      int
	Mean         [3]float64
	MeanSquare   [3]float64
	MaxNormError float64
	MeanFreePath float64
}

// SampleDirections draws n directions from the stream starting at seed.
func SampleDirections(seed uint64, n int) []particle.DirectionCosine {
	dirs := make([]particle.DirectionCosine, n)
	gen := rand.New(seed)
	for i := range dirs {
		dirs[i].SampleIsotropic(gen.State())
	}
	return dirs
}

// Isotropy draws n directions and n mean free path counts from a particle
// seeded with seed and returns their moments.
func Isotropy(seed uint64, n int) IsotropyStats {
	stats := IsotropyStats{Samples: n}
	p := particle.New(seed)

	for i := 0; i < n; i++ {
		p.SampleIsotropic()
		p.SampleNumMeanFreePaths()

		v := p.Direction.Vec()
		for j := 0; j < 3; j++ {
			stats.Mean[j] += v[j]
			stats.MeanSquare[j] += v[j] * v[j]
		}
		stats.MeanFreePath += p.NumMeanFreePaths

		err := math.Abs(p.Direction.NormSquared() - 1)
		if err > stats.MaxNormError {
			stats.MaxNormError = err
		}
	}

	for j := 0; j < 3; j++ {
		stats.Mean[j] /= float64(n)
		stats.MeanSquare[j] /= float64(n)
	}
	stats.MeanFreePath /= float64(n)

	return stats
}

// Isotropy logs the isotropy statistics for the configured seed and sample
// count.
func (r *Runner) Isotropy() IsotropyStats {
	stats := Isotropy(r.Config.Seed, r.Config.Samples)
	r.Log.Info().
		Int("samples", stats.Samples).
		Floats64("mean", stats.Mean[:]).
		Floats64("mean_square", stats.MeanSquare[:]).
		Float64("max_norm_error", stats.MaxNormError).
		Float64("mean_free_path", stats.MeanFreePath).
		Msg("Isotropy statistics.")
	return stats
}

// histogram bins xs into n equal bins spanning [lo, hi] and returns the bin
// centers and the counts divided by the count expected from a flat
// distribution. Values outside the range are dropped and hi itself falls in
// the last bin.
func histogram(xs []float64, lo, hi float64, n int) (centers, ratios []float64) {
	centers, ratios = make([]float64, n), make([]float64, n)
	dx := (hi - lo) / float64(n)
	for i := range centers {
		centers[i] = lo + dx*(float64(i)+0.5)
	}

	for _, x := range xs {
		if x < lo || x > hi {
			continue
		}
		i := int((x - lo) / dx)
		if i == n {
			i--
		}
		ratios[i]++
	}

	flat := float64(len(xs)) / float64(n)
	for i := range ratios {
		ratios[i] /= flat
	}
	return centers, ratios
}

// PlotIsotropic queues plots of the distributions of Gamma and of the
// azimuth for dirs, normalized so that an isotropic sample is flat at one.
// The plots are written to gammaFile and phiFile once plt.Execute is called.
func PlotIsotropic(dirs []particle.DirectionCosine, gammaFile, phiFile string) {
	gammas, phis := make([]float64, len(dirs)), make([]float64, len(dirs))
	for i := range dirs {
		gammas[i] = dirs[i].Gamma
		phis[i] = math.Atan2(dirs[i].Beta, dirs[i].Alpha)
	}

	plotFlat(gammas, -1, +1, `$\gamma$`, gammaFile, len(dirs))
	plotFlat(phis, -math.Pi, +math.Pi, `$\phi$`, phiFile, len(dirs))
}

func plotFlat(xs []float64, lo, hi float64, label, fname string, n int) {
	centers, ratios := histogram(xs, lo, hi, plotBins)

	plt.Figure()
	plt.Plot([]float64{lo, hi}, []float64{1, 1}, "k", plt.LW(2))
	plt.Plot(centers, ratios, plt.LW(3), plt.C("r"))
	plt.Title(fmt.Sprintf("%d samples", n))
	plt.XLabel(label, plt.FontSize(16))
	plt.YLabel(`$N/N_{\rm flat}$`, plt.FontSize(16))
	plt.XLim(lo, hi)
	plt.YLim(0.8, 1.2)
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(fname)
}
