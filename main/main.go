package main

import (
	"flag"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/rs/zerolog"

	"github.com/phil-mansfield/mctransport/diag"
	"github.com/phil-mansfield/mctransport/io"
)

const compareTol = 1e-12

func main() {
	// The main function only handles input sanitization. Every kernel call
	// happens inside of diag.

	var (
		config, reference, writeReference string
		events, plotDir                   string
		exampleConfig, quiet              bool
	)

	flag.StringVar(
		&config, "Config", "",
		"Configuration file with [Physics] and [Diagnostic] blocks. If not "+
			"given, the reference inputs are used.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example configuration file to stdout and exits.",
	)
	flag.StringVar(
		&reference, "Reference", "",
		"YAML file of reference kernel values to check the run against.",
	)
	flag.StringVar(
		&writeReference, "WriteReference", "",
		"Writes the kernel values from this run to the given YAML file.",
	)
	flag.StringVar(
		&events, "Events", "",
		"Table of collision events (energy, scattering cosine) to replay "+
			"through the trajectory kernel.",
	)
	flag.StringVar(
		&plotDir, "Plot", "",
		"Directory to write plots of the sampled direction distributions to.",
	)
	flag.BoolVar(
		&quiet, "Quiet", false,
		"Don't print kernel output to stdout.",
	)

	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{
		Out: os.Stderr, TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()

	if exampleConfig {
		fmt.Println(io.ExampleTransportFile)
		return
	}

	wrap := io.DefaultTransportWrapper()
	if config != "" {
		var warns []error
		var err error
		wrap, warns, err = io.ReadConfig(config)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not read config.")
		}
		for _, w := range warns {
			log.Warn().Err(w).Str("config", config).Msg("Ignored config value.")
		}
	}

	r := diag.NewRunner(wrap, os.Stdout, log)
	if quiet {
		r.Out = nil
	}

	vals, err := r.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("Kernel run failed.")
	}

	if writeReference != "" {
		if err := io.WriteReference(writeReference, vals); err != nil {
			log.Fatal().Err(err).Msg("Could not write reference values.")
		}
		log.Info().Str("file", writeReference).Msg("Wrote reference values.")
	}

	if reference != "" {
		ref, err := io.ReadReference(reference)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not read reference values.")
		}

		ms := diag.Compare(vals, ref, compareTol)
		for _, m := range ms {
			log.Error().Str("value", m.Name).
				Str("got", m.Got).Str("want", m.Want).
				Msg("Reference mismatch.")
		}
		if len(ms) > 0 {
			log.Fatal().Int("mismatches", len(ms)).Msg("Reference check failed.")
		}
		log.Info().Str("file", reference).Msg("All values match reference.")
	}

	if events != "" {
		evs, err := io.ReadEvents(events)
		if err != nil {
			log.Fatal().Err(err).Msg("Could not read events.")
		}
		r.Replay(evs)
	}

	r.Isotropy()
	if _, err := r.Exits(); err != nil {
		log.Fatal().Err(err).Msg("Exit check failed.")
	}

	if plotDir != "" {
		if err := os.MkdirAll(plotDir, 0777); err != nil {
			log.Fatal().Err(err).Msg("Could not create plot directory.")
		}
		dirs := diag.SampleDirections(wrap.Diagnostic.Seed, wrap.Diagnostic.Samples)
		diag.PlotIsotropic(
			dirs, path.Join(plotDir, "gamma.png"), path.Join(plotDir, "phi.png"),
		)
		plt.Execute()
		log.Info().
			Str("files", strings.Join([]string{"gamma.png", "phi.png"}, ", ")).
			Str("dir", plotDir).
			Msg("Wrote isotropy plots.")
	}
}
