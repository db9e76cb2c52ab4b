package surveydata

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A ColumnSpec describes where one variable is located within each
// record of a fixed-width data file.  Start and End are 1-based
// inclusive character positions, as written in the dictionary file.
type ColumnSpec struct {

	// The variable name.
	Name string

	// The first character position of the field (1-based, inclusive).
	Start int

	// The last character position of the field (1-based, inclusive).
	End int

	// The data type for the column: "float64", "string", or
	// "infer".  Set from the dictionary format token when one is
	// present, e.g. %3f gives "float64" and %9s gives "string".
	Type string
}

// A Layout is an ordered collection of column specifications parsed
// from a dictionary file.  Column order follows the dictionary;
// names are unique, with the last occurrence of a repeated name
// taking effect.
type Layout struct {
	specs []ColumnSpec
	index map[string]int
}

// Columns returns the column specifications in dictionary order.
func (ly *Layout) Columns() []ColumnSpec {
	return ly.specs
}

// Len returns the number of columns in the layout.
func (ly *Layout) Len() int {
	return len(ly.specs)
}

// Column returns the specification for the named column, if present.
func (ly *Layout) Column(name string) (ColumnSpec, bool) {
	j, ok := ly.index[name]
	if !ok {
		return ColumnSpec{}, false
	}
	return ly.specs[j], true
}

// add records a column specification, overwriting any earlier entry
// with the same name.
func (ly *Layout) add(cs ColumnSpec) {
	if j, ok := ly.index[cs.Name]; ok {
		ly.specs[j] = cs
		return
	}
	ly.index[cs.Name] = len(ly.specs)
	ly.specs = append(ly.specs, cs)
}

// typeFromFormat maps a dictionary format token such as %3f or %9.2g
// to a column type.  Tokens that are not recognized formats give
// "infer".
func typeFromFormat(tok string) string {

	if !strings.HasPrefix(tok, "%") || len(tok) < 2 {
		return "infer"
	}

	switch tok[len(tok)-1] {
	case 'f', 'g', 'e':
		return "float64"
	case 's':
		return "string"
	}
	return "infer"
}

// ReadDictionary parses a Stata-style dictionary describing the
// layout of a fixed-width data file.  A line defines a column when it
// has at least four whitespace-separated tokens and the second and
// third tokens are non-negative integers, giving the 1-based start
// and end positions of the field.  All other lines are comments or
// headers and are skipped.  A repeated column name replaces the
// earlier definition.
func ReadDictionary(r io.Reader) (*Layout, error) {

	ly := &Layout{index: make(map[string]int)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		toks := strings.Fields(scanner.Text())
		if len(toks) < 4 {
			continue
		}

		start, err := strconv.Atoi(toks[1])
		if err != nil || start < 1 {
			continue
		}
		end, err := strconv.Atoi(toks[2])
		if err != nil || end < start {
			continue
		}

		ly.add(ColumnSpec{
			Name:  toks[0],
			Start: start,
			End:   end,
			Type:  typeFromFormat(toks[3]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dictionary - %w", err)
	}

	return ly, nil
}

// ReadDictionaryFile parses the dictionary in the named file.
func ReadDictionaryFile(path string) (*Layout, error) {

	fid, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fid.Close()

	return ReadDictionary(fid)
}
