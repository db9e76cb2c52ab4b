package surveydata

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// ErrAllMissing is returned when imputation is attempted on a column
// with no observed values.
var ErrAllMissing = fmt.Errorf("column has no observed values")

// FillMissing returns a copy of the dataset in which every missing
// value of the named column has been replaced by a value drawn
// uniformly at random, with replacement, from the column's observed
// values.  The pool of observed values is fixed before any
// replacement, so filled entries never feed back into later draws.
// Columns other than the named one are shared with the input.
func FillMissing(data SeriesArray, column string, rnd *rand.Rand) (SeriesArray, error) {

	j := data.Position(column)
	if j == -1 {
		return nil, fmt.Errorf("no column named %s", column)
	}

	filled, err := fillSeries(data[j], rnd)
	if err != nil {
		return nil, err
	}

	out := make(SeriesArray, len(data))
	copy(out, data)
	out[j] = filled
	return out, nil
}

// FillMissingInPlace replaces the named column of the dataset with
// its imputed version, with the same draw semantics as FillMissing.
// The caller's dataset is mutated.
func FillMissingInPlace(data SeriesArray, column string, rnd *rand.Rand) error {

	j := data.Position(column)
	if j == -1 {
		return fmt.Errorf("no column named %s", column)
	}

	filled, err := fillSeries(data[j], rnd)
	if err != nil {
		return err
	}

	data[j] = filled
	return nil
}

// fillSeries returns a copy of the series with missing values drawn
// from the observed values.
func fillSeries(ser *Series, rnd *rand.Rand) (*Series, error) {

	if ser.CountMissing() == 0 {
		return ser, nil
	}

	// Positions of the observed values, fixed before any draws.
	var pool []int
	for i := 0; i < ser.Length(); i++ {
		if !ser.IsMissing(i) {
			pool = append(pool, i)
		}
	}
	if len(pool) == 0 {
		return nil, fmt.Errorf("column %s: %w", ser.Name, ErrAllMissing)
	}

	var s *Series
	switch data := ser.Data().(type) {
	default:
		return nil, fmt.Errorf("unknown data type %T in fillSeries", data)
	case []float64:
		x := make([]float64, len(data))
		copy(x, data)
		for i := range x {
			if ser.IsMissing(i) {
				x[i] = data[pool[rnd.Intn(len(pool))]]
			}
		}
		s, _ = NewSeries(ser.Name, x, nil)
	case []int64:
		x := make([]int64, len(data))
		copy(x, data)
		for i := range x {
			if ser.IsMissing(i) {
				x[i] = data[pool[rnd.Intn(len(pool))]]
			}
		}
		s, _ = NewSeries(ser.Name, x, nil)
	case []string:
		x := make([]string, len(data))
		copy(x, data)
		for i := range x {
			if ser.IsMissing(i) {
				x[i] = data[pool[rnd.Intn(len(pool))]]
			}
		}
		s, _ = NewSeries(ser.Name, x, nil)
	}

	return s, nil
}
