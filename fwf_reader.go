package surveydata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	xencoding "golang.org/x/text/encoding"
)

// ErrEmptyLayout is returned when a fixed-width reader is constructed
// from a layout with no columns.
var ErrEmptyLayout = fmt.Errorf("layout specification has no columns")

// A FixedWidthReader reads a fixed-width data file into an array of
// Series objects, one per column of the layout.  Each record
// occupies one line, and each field occupies the character range
// given by its column specification.
type FixedWidthReader struct {

	// If true, leading and trailing whitespace is removed from
	// string values.
	TrimStrings bool

	// User-specified data types (maps column name to type name),
	// overriding the dictionary type directives.
	TypeHintsName map[string]string

	// If non-nil, string fields are decoded with this decoder,
	// for data files that are not UTF-8.  Field positions always
	// refer to bytes of the undecoded record.
	TextDecoder *xencoding.Decoder

	// The data type for each column.
	dataTypes []string

	// The column layout.
	layout *Layout

	// Has the init method been run yet?
	initRun bool

	// Cached lines, used for type inference.
	lines []string

	// The line scanner over the caller's reader.
	scanner *bufio.Scanner

	// Set when the underlying reader is exhausted.
	done bool

	// The number of rows of data that have been read.
	rowsRead int
}

// NewFixedWidthReader returns a reader for fixed-width data with the
// given column layout, reading from the given io channel.
func NewFixedWidthReader(r io.Reader, layout *Layout) (*FixedWidthReader, error) {

	if layout == nil || layout.Len() == 0 {
		return nil, ErrEmptyLayout
	}

	rdr := new(FixedWidthReader)
	rdr.TrimStrings = true
	rdr.layout = layout
	rdr.scanner = bufio.NewScanner(r)

	return rdr, nil
}

// ColumnNames returns the names of the columns, in layout order.
func (rdr *FixedWidthReader) ColumnNames() []string {
	names := make([]string, rdr.layout.Len())
	for j, cs := range rdr.layout.Columns() {
		names[j] = cs.Name
	}
	return names
}

// ColumnTypes returns the data type of each column.  The types are
// not resolved until the first call to Read, since inferred columns
// require a pass over the data.
func (rdr *FixedWidthReader) ColumnTypes() []string {
	return rdr.dataTypes
}

// nextLine returns the next line of the data file, preferring the
// cached lines read during initialization.
func (rdr *FixedWidthReader) nextLine() (string, bool, error) {

	if len(rdr.lines) > 0 {
		line := rdr.lines[0]
		rdr.lines = rdr.lines[1:]
		return line, true, nil
	}

	if rdr.done {
		return "", false, nil
	}

	if !rdr.scanner.Scan() {
		rdr.done = true
		if err := rdr.scanner.Err(); err != nil {
			return "", false, err
		}
		return "", false, nil
	}

	return rdr.scanner.Text(), true, nil
}

// field returns the raw text of one field of a record, and a flag
// indicating that the record is too short to contain the field.
func field(line string, cs ColumnSpec) (string, bool) {

	if len(line) < cs.End {
		return "", true
	}
	return line[cs.Start-1 : cs.End], false
}

// init caches the first lines of the file and resolves the data
// types of the columns.
func (rdr *FixedWidthReader) init() error {

	// Read up to 100 lines for type inference.
	rdr.lines = make([]string, 0, 100)
	for k := 0; k < 100; k++ {
		if !rdr.scanner.Scan() {
			rdr.done = true
			if err := rdr.scanner.Err(); err != nil {
				return err
			}
			break
		}
		rdr.lines = append(rdr.lines, rdr.scanner.Text())
	}

	rdr.sniffTypes()
	rdr.initRun = true

	return nil
}

// sniffTypes resolves the data type of every column.  A type hint
// takes precedence, then the dictionary directive; remaining columns
// are numeric if every non-blank cached value parses as a number.
func (rdr *FixedWidthReader) sniffTypes() {

	specs := rdr.layout.Columns()
	rdr.dataTypes = make([]string, len(specs))

	for j, cs := range specs {

		t := cs.Type
		if tm, ok := rdr.TypeHintsName[cs.Name]; ok {
			t = tm
		}

		if t != "infer" && t != "" {
			rdr.dataTypes[j] = t
			continue
		}

		nFloats, nObs := 0, 0
		for _, line := range rdr.lines {
			raw, short := field(line, cs)
			if short {
				continue
			}
			raw = strings.TrimSpace(raw)
			if len(raw) == 0 {
				continue
			}
			nObs++
			if _, err := strconv.ParseFloat(raw, 64); err == nil {
				nFloats++
			}
		}

		if nFloats == nObs && nObs > 0 {
			rdr.dataTypes[j] = "float64"
		} else {
			rdr.dataTypes[j] = "string"
		}
	}
}

// Read reads up to lines rows of data and returns the results as an
// array of Series objects.  If lines is negative the whole file is
// read.  After the file is exhausted, Read returns nil, io.EOF.
func (rdr *FixedWidthReader) Read(lines int) ([]*Series, error) {

	if !rdr.initRun {
		if err := rdr.init(); err != nil {
			return nil, err
		}
	}

	specs := rdr.layout.Columns()
	ncol := len(specs)

	dataArray := make([]interface{}, ncol)
	miss := make([][]bool, ncol)
	for j := range specs {
		switch rdr.dataTypes[j] {
		case "float64":
			dataArray[j] = make([]float64, 0, 100)
		case "string":
			dataArray[j] = make([]string, 0, 100)
		default:
			return nil, fmt.Errorf("unknown column type %q for %s", rdr.dataTypes[j], specs[j].Name)
		}
		miss[j] = make([]bool, 0, 100)
	}

	nrow := 0
	for lines < 0 || nrow < lines {

		line, ok, err := rdr.nextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}

		for j, cs := range specs {
			raw, short := field(line, cs)
			switch rdr.dataTypes[j] {
			case "float64":
				raw = strings.TrimSpace(raw)
				if short || len(raw) == 0 {
					dataArray[j] = append(dataArray[j].([]float64), 0)
					miss[j] = append(miss[j], true)
					continue
				}
				x, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					dataArray[j] = append(dataArray[j].([]float64), 0)
					miss[j] = append(miss[j], true)
				} else {
					dataArray[j] = append(dataArray[j].([]float64), x)
					miss[j] = append(miss[j], false)
				}
			case "string":
				if rdr.TextDecoder != nil && !short {
					raw, err = rdr.TextDecoder.String(raw)
					if err != nil {
						return nil, err
					}
				}
				if rdr.TrimStrings {
					raw = strings.TrimSpace(raw)
				}
				dataArray[j] = append(dataArray[j].([]string), raw)
				miss[j] = append(miss[j], short)
			}
		}

		nrow++
	}

	if nrow == 0 {
		return nil, io.EOF
	}
	rdr.rowsRead += nrow

	dataSeries := make([]*Series, ncol)
	for j, cs := range specs {
		var err error
		dataSeries[j], err = NewSeries(cs.Name, dataArray[j], miss[j])
		if err != nil {
			panic(fmt.Sprintf("%v", err))
		}
	}
	return dataSeries, nil
}

// ReadFixedWidthFile reads an entire fixed-width data file using the
// layout in the given dictionary file, returning the dataset.
func ReadFixedWidthFile(dictPath, dataPath string) (SeriesArray, error) {

	layout, err := ReadDictionaryFile(dictPath)
	if err != nil {
		return nil, err
	}

	fid, err := os.Open(dataPath)
	if err != nil {
		return nil, err
	}
	defer fid.Close()

	rdr, err := NewFixedWidthReader(fid, layout)
	if err != nil {
		return nil, err
	}

	data, err := rdr.Read(-1)
	if err == io.EOF {
		// An empty data file gives an empty dataset with the
		// layout's columns.
		return emptyDataset(layout, rdr), nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// emptyDataset returns a zero-row dataset matching the layout.
func emptyDataset(layout *Layout, rdr *FixedWidthReader) SeriesArray {

	out := make(SeriesArray, layout.Len())
	for j, cs := range layout.Columns() {
		ty := "string"
		if rdr.dataTypes != nil {
			ty = rdr.dataTypes[j]
		}
		switch ty {
		case "float64":
			out[j], _ = NewSeries(cs.Name, []float64{}, nil)
		default:
			out[j], _ = NewSeries(cs.Name, []string{}, nil)
		}
	}
	return out
}
