package surveydata

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// A Series is a fixed-type one-dimensional sequence of data
// values, with an optional mask for missing values.
type Series struct {

	// A name describing what is in this series.
	Name string

	// The length of the series.
	length int

	// The data, must be a slice of primitives, one of []float64,
	// []int64, or []string.
	data interface{}

	// Indicators that data values are missing.  If nil, there are
	// no missing values.
	missing []bool
}

// ilen returns the length of a slice, held in an interface value.
// If the interface does not hold a slice of a known type, an error
// is returned.
func ilen(data interface{}) (int, error) {

	switch data := data.(type) {
	case []float64:
		return len(data), nil
	case []int64:
		return len(data), nil
	case []string:
		return len(data), nil
	default:
		return 0, fmt.Errorf("unknown data type %T", data)
	}
}

// NewSeries returns a new Series value with the given name and data
// contents.  The data slice parameter is not copied.
func NewSeries(name string, data interface{}, missing []bool) (*Series, error) {

	length, err := ilen(data)
	if err != nil {
		return nil, err
	}

	ser := Series{
		Name:    name,
		length:  length,
		data:    data,
		missing: missing,
	}

	return &ser, nil
}

// Write writes the entire Series to the given writer.
func (ser *Series) Write(w io.Writer) {
	ser.WriteRange(w, 0, ser.length)
}

// WriteRange writes the given subinterval of the Series to the given writer.
func (ser *Series) WriteRange(w io.Writer, first, last int) {

	fmt.Fprintf(w, "Name: %s\n", ser.Name)
	ty := fmt.Sprintf("%T", ser.data)
	fmt.Fprintf(w, "Type: %s\n", ty[2:])

	for j := first; j < last; j++ {
		if ser.missing != nil && ser.missing[j] {
			fmt.Fprintf(w, "%d:\n", j)
			continue
		}
		switch data := ser.data.(type) {
		case []float64:
			fmt.Fprintf(w, "%d:  %f\n", j, data[j])
		case []int64:
			fmt.Fprintf(w, "%d:  %d\n", j, data[j])
		case []string:
			fmt.Fprintf(w, "%d:  %s\n", j, data[j])
		default:
			panic("unknown type in WriteRange")
		}
	}
}

// Print prints the entire Series to the standard output.
func (ser *Series) Print() {
	ser.Write(os.Stdout)
}

// Data returns the data component of the Series.
func (ser *Series) Data() interface{} {
	return ser.data
}

// Missing returns the array of missing value indicators.
func (ser *Series) Missing() []bool {
	return ser.missing
}

// Length returns the number of elements in a Series.
func (ser *Series) Length() int {
	return ser.length
}

// IsMissing returns true if the value at position i is missing.
func (ser *Series) IsMissing(i int) bool {
	return ser.missing != nil && ser.missing[i]
}

// AllClose returns true, 0 if the Series is within tol of the other
// series.  If the Series have different lengths, AllClose returns
// false, -1.  If the Series have different types, AllClose returns
// false, -2.  If the Series have the same type and the same length
// but are not equal, AllClose returns false, j, where j is the index
// of the first position where the two series differ.
func (ser *Series) AllClose(other *Series, tol float64) (bool, int) {

	if ser.length != other.length {
		return false, -1
	}

	// Utility function for missing mask
	cmiss := func(j int) int {
		f1 := (ser.missing == nil) || !ser.missing[j]
		f2 := (other.missing == nil) || !other.missing[j]
		if f1 != f2 {
			return 0 // inconsistent
		} else if f1 {
			return 1 // both non-missing
		}
		return 2 // both missing
	}

	switch u := ser.data.(type) {
	default:
		panic(fmt.Sprintf("unknown type %T in Series.AllClose", ser.data))
	case []float64:
		v, ok := other.data.([]float64)
		if !ok {
			return false, -2
		}
		for j := 0; j < ser.length; j++ {
			c := cmiss(j)
			if c == 0 {
				return false, j
			}
			if (c == 1) && (math.Abs(u[j]-v[j]) > tol) {
				return false, j
			}
		}
	case []int64:
		v, ok := other.data.([]int64)
		if !ok {
			return false, -2
		}
		for j := 0; j < ser.length; j++ {
			c := cmiss(j)
			if c == 0 {
				return false, j
			}
			if (c == 1) && (math.Abs(float64(u[j]-v[j])) > tol) {
				return false, j
			}
		}
	case []string:
		v, ok := other.data.([]string)
		if !ok {
			return false, -2
		}
		for j := 0; j < ser.length; j++ {
			c := cmiss(j)
			if c == 0 {
				return false, j
			}
			if (c == 1) && (u[j] != v[j]) {
				return false, j
			}
		}
	}
	return true, 0
}

// AllEqual is equivalent to AllClose with tol=0.
func (ser *Series) AllEqual(other *Series) (bool, int) {
	return ser.AllClose(other, 0.0)
}

// UpcastNumeric returns a Series in which integer data are converted
// to float64 values.  Non-integer data are not affected.
func (ser *Series) UpcastNumeric() *Series {

	d, ok := ser.data.([]int64)
	if !ok {
		return ser
	}

	a := make([]float64, len(d))
	for i, v := range d {
		a[i] = float64(v)
	}
	s, _ := NewSeries(ser.Name, a, copyMask(ser.missing))
	return s
}

// ForceNumeric converts string values to float64 values, creating
// missing values where the conversion is not possible.  If the data
// is not string type, it is unaffected.
func (ser *Series) ForceNumeric() *Series {

	y, ok := ser.data.([]string)
	if !ok {
		return ser
	}

	n := ser.length
	cmiss := make([]bool, n)
	if ser.missing != nil {
		copy(cmiss, ser.missing)
	}

	x := make([]float64, n)
	for i := 0; i < n; i++ {
		if !cmiss[i] {
			v, err := strconv.ParseFloat(y[i], 64)
			if err != nil {
				cmiss[i] = true
			} else {
				x[i] = v
			}
		}
	}
	s, _ := NewSeries(ser.Name, x, cmiss)
	return s
}

// CountMissing returns the number of missing values in the Series.
func (ser *Series) CountMissing() int {

	m := 0
	for i := 0; i < ser.length; i++ {
		if ser.IsMissing(i) {
			m++
		}
	}

	return m
}

// StringFunc applies the given function to all values in the series,
// if the series holds string values.  Otherwise calling this method has
// no effect.
func (ser *Series) StringFunc(f func(string) string) *Series {

	x, ok := ser.data.([]string)
	if !ok {
		return ser
	}

	y := make([]string, ser.length)
	for i, v := range x {
		y[i] = f(v)
	}
	s, _ := NewSeries(ser.Name, y, copyMask(ser.missing))
	return s
}

// NullStringMissing returns a copy of a string series in which
// zero-length strings are treated as missing values.  If the
// method is applied to a series that is not of string type,
// the series is returned unchanged.
func (ser *Series) NullStringMissing() *Series {

	y, ok := ser.data.([]string)
	if !ok {
		return ser
	}

	n := ser.length
	cmiss := make([]bool, n)
	if ser.missing != nil {
		copy(cmiss, ser.missing)
	}
	x := make([]string, n)
	copy(x, y)
	for i := 0; i < n; i++ {
		if len(x[i]) == 0 {
			cmiss[i] = true
		}
	}
	s, _ := NewSeries(ser.Name, x, cmiss)
	return s
}

// Subset returns a new Series holding the values of the receiver at
// the given positions, in the given order.  Positions may repeat.
func (ser *Series) Subset(indices []int) *Series {

	var cmiss []bool
	if ser.missing != nil {
		cmiss = make([]bool, len(indices))
		for i, ix := range indices {
			cmiss[i] = ser.missing[ix]
		}
	}

	var s *Series
	switch data := ser.data.(type) {
	default:
		panic(fmt.Sprintf("unknown type %T in Series.Subset", ser.data))
	case []float64:
		x := make([]float64, len(indices))
		for i, ix := range indices {
			x[i] = data[ix]
		}
		s, _ = NewSeries(ser.Name, x, cmiss)
	case []int64:
		x := make([]int64, len(indices))
		for i, ix := range indices {
			x[i] = data[ix]
		}
		s, _ = NewSeries(ser.Name, x, cmiss)
	case []string:
		x := make([]string, len(indices))
		for i, ix := range indices {
			x[i] = data[ix]
		}
		s, _ = NewSeries(ser.Name, x, cmiss)
	}
	return s
}

// AsFloat64Slice returns the data of the series as a float64 slice,
// and a boolean slice for the missing value indicators.
func (ser *Series) AsFloat64Slice() ([]float64, []bool, error) {

	v, ok := ser.data.([]float64)
	if !ok {
		return nil, nil, fmt.Errorf("can't convert %T to []float64", ser.data)
	}

	return v, ser.missing, nil
}

// AsStringSlice returns the series data as slices for the values,
// and the missing data indicators.
func (ser *Series) AsStringSlice() ([]string, []bool, error) {

	v, ok := ser.data.([]string)
	if !ok {
		return nil, nil, fmt.Errorf("can't convert %T to []string", ser.data)
	}

	return v, ser.missing, nil
}

// copyMask returns a copy of a missing value mask, or nil if the mask
// is nil.
func copyMask(m []bool) []bool {
	if m == nil {
		return nil
	}
	c := make([]bool, len(m))
	copy(c, m)
	return c
}

// SeriesArray is an array of pointers to Series objects.  It represents
// a dataset consisting of several variables, aligned by row.
type SeriesArray []*Series

// AllClose returns (true, 0, 0) if all numeric values in
// corresponding columns of the two arrays of Series objects are
// within the given tolerance.  If any corresponding columns are not
// identically equal, returns (false, j, i), where j is the index of a
// column and i is the index of a row where the two Series are not
// identical.  If the two SeriesArray objects have different numbers
// of columns, returns (false, -1, -1).  If column j of the two
// SeriesArray objects have different lengths, returns (false, j, -1).
// If column j of the two SeriesArray objects have different types,
// returns (false, j, -2)
func (ser SeriesArray) AllClose(other []*Series, tol float64) (bool, int, int) {

	if len(ser) != len(other) {
		return false, -1, -1
	}

	for j := 0; j < len(ser); j++ {
		f, i := ser[j].AllClose(other[j], tol)
		if !f {
			return false, j, i
		}
	}

	return true, 0, 0
}

// AllEqual is equivalent to AllClose with tol = 0.
func (ser SeriesArray) AllEqual(other []*Series) (bool, int, int) {
	return ser.AllClose(other, 0.0)
}

// Names returns the column names of the dataset.
func (ser SeriesArray) Names() []string {
	names := make([]string, len(ser))
	for j, s := range ser {
		names[j] = s.Name
	}
	return names
}

// Position returns the index of the column with the given name, or -1
// if there is no such column.
func (ser SeriesArray) Position(name string) int {
	for j, s := range ser {
		if s.Name == name {
			return j
		}
	}
	return -1
}

// Column returns the column with the given name, or nil if there is
// no such column.
func (ser SeriesArray) Column(name string) *Series {
	j := ser.Position(name)
	if j == -1 {
		return nil
	}
	return ser[j]
}

// NumRows returns the common length of the columns of the dataset.
// An error is returned if the dataset has no columns, or if the
// columns do not all have the same length.
func (ser SeriesArray) NumRows() (int, error) {

	if len(ser) == 0 {
		return 0, fmt.Errorf("dataset has no columns")
	}

	n := ser[0].Length()
	for _, s := range ser[1:] {
		if s.Length() != n {
			return 0, fmt.Errorf("column %s has length %d, expected %d", s.Name, s.Length(), n)
		}
	}

	return n, nil
}

// Subset returns a new dataset holding the rows of the receiver at
// the given positions, in the given order.  Positions may repeat.
func (ser SeriesArray) Subset(indices []int) SeriesArray {
	out := make(SeriesArray, len(ser))
	for j, s := range ser {
		out[j] = s.Subset(indices)
	}
	return out
}
