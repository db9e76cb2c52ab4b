package main

// Resample a fixed-width survey data file and write the result as
// CSV to standard output.  With -year, an independent bootstrap is
// drawn within each year; with -weights, rows are drawn with
// probability proportional to the named weight column; otherwise a
// uniform bootstrap of -n rows is drawn.

import (
	"flag"
	"os"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	surveydata "github.com/Aisosaibi/Practice-Data-Science"
	"github.com/Aisosaibi/Practice-Data-Science/commands"
)

func main() {

	dictfile := flag.String("dict", "", "A dictionary file describing the data layout")
	datafile := flag.String("data", "", "A fixed-width data file")
	n := flag.Int("n", 0, "Number of rows to draw (defaults to the row count)")
	seed := flag.Uint64("seed", 1, "Random number generator seed")
	year := flag.String("year", "", "Stratify the bootstrap by this column")
	weights := flag.String("weights", "", "Draw rows in proportion to this column")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if *dictfile == "" || *datafile == "" {
		log.Fatal("usage: fwfresample -dict=file -data=file [-n=rows] [-seed=s] [-year=col | -weights=col]")
	}

	data, err := surveydata.ReadFixedWidthFile(*dictfile, *datafile)
	if err != nil {
		log.Fatalw("unable to read data", "error", err)
	}

	nrow, err := data.NumRows()
	if err != nil {
		log.Fatalw("invalid dataset", "error", err)
	}
	if *n <= 0 {
		*n = nrow
	}
	log.Infow("read dataset", "rows", nrow, "columns", len(data))

	rnd := rand.New(rand.NewSource(*seed))

	var out surveydata.SeriesArray
	switch {
	case *year != "":
		out, err = surveydata.ResampleByYear(data, *year, rnd)
	case *weights != "":
		ser := data.Column(*weights)
		if ser == nil {
			log.Fatalw("no such column", "column", *weights)
		}
		w, _, werr := ser.ForceNumeric().AsFloat64Slice()
		if werr != nil {
			log.Fatalw("weight column is not numeric", "error", werr)
		}
		out, err = surveydata.ResampleRowsWeighted(data, w, *n, rnd)
	default:
		out, err = surveydata.ResampleRows(data, *n, rnd)
	}
	if err != nil {
		log.Fatalw("resampling failed", "error", err)
	}

	if err := commands.WriteCSV(out, os.Stdout); err != nil {
		log.Fatalw("unable to write output", "error", err)
	}
}
