/*
Featurize reads a CSV table, standardizes its columns and appends a
row-average feature, then writes the transformed table back as CSV.

	featurize -in iris.csv.xz -shrink 2 -normalize -out features.csv
*/
package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go-ml.dev/pkg/feature"
	"go-ml.dev/pkg/feature/tables"
	"go-ml.dev/pkg/iokit"
)

func main() {
	in := flag.String("in", "", "input CSV file, .xz decompressed transparently")
	out := flag.String("out", "", "output CSV file, stdout if empty")
	shrink := flag.Float64("shrink", 1, "standardizer shrink factor")
	normalize := flag.Bool("normalize", false, "divide row averages by the row maximum")
	debug := flag.Bool("debug", false, "sets log level to debug")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *in == "" {
		log.Fatal().Msg("-in is required")
	}
	t, err := tables.ReadFile(*in)
	if err != nil {
		log.Fatal().Err(err).Str("path", *in).Msg("failed to read input")
	}

	u := feature.NewUnion(
		feature.Component{Name: "scale", Transformer: &feature.Standardizer{Shrink: *shrink}},
		feature.Component{Name: "average", Transformer: feature.Averager{Normalize: *normalize}},
	)
	q, err := feature.FitTransform(u, t)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to transform")
	}

	if *out == "" {
		err = q.WriteCSV(os.Stdout)
	} else {
		err = q.WriteFile(iokit.File(*out))
	}
	if err != nil {
		log.Fatal().Err(err).Msg("failed to write output")
	}
	log.Info().Int("rows", q.Len()).Int("columns", q.Width()).Msg("done")
}
