package main

// Convert a fixed-width survey data file to a CSV file.  The layout
// of the data file is given by a Stata-style dictionary file.  The
// CSV contents are sent to standard output.

import (
	"flag"
	"os"

	"go.uber.org/zap"

	surveydata "github.com/Aisosaibi/Practice-Data-Science"
	"github.com/Aisosaibi/Practice-Data-Science/commands"
)

func main() {

	dictfile := flag.String("dict", "", "A dictionary file describing the data layout")
	datafile := flag.String("data", "", "A fixed-width data file")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()

	if *dictfile == "" || *datafile == "" {
		log.Fatal("usage: fwftocsv -dict=file -data=file")
	}

	layout, err := surveydata.ReadDictionaryFile(*dictfile)
	if err != nil {
		log.Fatalw("unable to read dictionary", "file", *dictfile, "error", err)
	}
	log.Infow("parsed dictionary", "file", *dictfile, "columns", layout.Len())

	fid, err := os.Open(*datafile)
	if err != nil {
		log.Fatalw("unable to open data file", "file", *datafile, "error", err)
	}
	defer fid.Close()

	rdr, err := surveydata.NewFixedWidthReader(fid, layout)
	if err != nil {
		log.Fatalw("unable to create reader", "error", err)
	}

	if err := commands.FwfToCSV(rdr, os.Stdout); err != nil {
		log.Fatalw("conversion failed", "error", err)
	}
}
