// Package commands holds the reusable bodies of the command line
// tools in cmd/.
package commands

import (
	"encoding/csv"
	"fmt"
	"io"

	surveydata "github.com/Aisosaibi/Practice-Data-Science"
)

// FwfToCSV converts fixed-width data to CSV.  The reader's records
// are read in chunks and written to w with one header row of column
// names.  Missing values become empty fields.
func FwfToCSV(rdr surveydata.StatfileReader, w io.Writer) error {

	wtr := csv.NewWriter(w)

	ncol := len(rdr.ColumnNames())
	if err := wtr.Write(rdr.ColumnNames()); err != nil {
		return err
	}

	row := make([]string, ncol)

	for {
		chunk, err := rdr.Read(1000)
		if err == io.EOF || chunk == nil {
			break
		} else if err != nil {
			return err
		}

		nrow := chunk[0].Length()

		numbercols := make([][]float64, ncol)
		stringcols := make([][]string, ncol)
		missing := make([][]bool, ncol)

		for j := 0; j < ncol; j++ {
			chunk[j] = chunk[j].UpcastNumeric()
			missing[j] = chunk[j].Missing()
			switch dcol := chunk[j].Data().(type) {
			case []float64:
				numbercols[j] = dcol
			case []string:
				stringcols[j] = dcol
			default:
				return fmt.Errorf("unknown type %T in column %d", dcol, j)
			}
		}

		for i := 0; i < nrow; i++ {
			for j := 0; j < ncol; j++ {
				switch {
				case missing[j] != nil && missing[j][i]:
					row[j] = ""
				case numbercols[j] != nil:
					row[j] = fmt.Sprintf("%v", numbercols[j][i])
				default:
					row[j] = stringcols[j][i]
				}
			}
			if err := wtr.Write(row); err != nil {
				return err
			}
		}
	}

	wtr.Flush()
	return wtr.Error()
}

// WriteCSV writes an in-memory dataset to w in CSV format, with one
// header row of column names.  Missing values become empty fields.
func WriteCSV(data surveydata.SeriesArray, w io.Writer) error {

	nrow, err := data.NumRows()
	if err != nil {
		return err
	}

	wtr := csv.NewWriter(w)
	if err := wtr.Write(data.Names()); err != nil {
		return err
	}

	row := make([]string, len(data))
	for i := 0; i < nrow; i++ {
		for j, ser := range data {
			if ser.IsMissing(i) {
				row[j] = ""
				continue
			}
			switch dcol := ser.Data().(type) {
			case []float64:
				row[j] = fmt.Sprintf("%v", dcol[i])
			case []int64:
				row[j] = fmt.Sprintf("%d", dcol[i])
			case []string:
				row[j] = dcol[i]
			default:
				return fmt.Errorf("unknown type %T in column %s", dcol, ser.Name)
			}
		}
		if err := wtr.Write(row); err != nil {
			return err
		}
	}

	wtr.Flush()
	return wtr.Error()
}
