package surveydata

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// ErrInvalidWeights is returned when a weight vector passed to
// ResampleRowsWeighted is unusable.
var ErrInvalidWeights = fmt.Errorf("invalid sampling weights")

// SampleRows returns a uniformly-random subset of min(n, rows)
// distinct rows of the dataset, drawn without replacement.  The
// order of the returned rows is arbitrary.
func SampleRows(data SeriesArray, n int, rnd *rand.Rand) (SeriesArray, error) {

	nrow, err := data.NumRows()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative sample size %d", n)
	}
	if n > nrow {
		n = nrow
	}

	return data.Subset(rnd.Perm(nrow)[0:n]), nil
}

// ResampleRows returns n rows of the dataset drawn independently and
// uniformly with replacement.
func ResampleRows(data SeriesArray, n int, rnd *rand.Rand) (SeriesArray, error) {

	nrow, err := data.NumRows()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative sample size %d", n)
	}
	if nrow == 0 && n > 0 {
		return nil, fmt.Errorf("cannot resample from an empty dataset")
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = rnd.Intn(nrow)
	}

	return data.Subset(indices), nil
}

// ResampleRowsWeighted returns n rows drawn with replacement, each
// row being selected with probability proportional to its weight.
// The weights must align with the rows of the dataset, be
// non-negative, and not sum to zero; they need not be normalized.
func ResampleRowsWeighted(data SeriesArray, weights []float64, n int, rnd *rand.Rand) (SeriesArray, error) {

	nrow, err := data.NumRows()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative sample size %d", n)
	}
	if len(weights) != nrow {
		return nil, fmt.Errorf("%w: %d weights for %d rows", ErrInvalidWeights, len(weights), nrow)
	}
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("%w: negative weight at position %d", ErrInvalidWeights, i)
		}
		if math.IsNaN(w) || math.IsInf(w, 1) {
			return nil, fmt.Errorf("%w: non-finite weight at position %d", ErrInvalidWeights, i)
		}
	}

	cum := make([]float64, len(weights))
	floats.CumSum(cum, weights)
	total := 0.0
	if len(cum) > 0 {
		total = cum[len(cum)-1]
	}
	if total <= 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrInvalidWeights)
	}

	indices := make([]int, n)
	for i := range indices {
		u := rnd.Float64() * total
		indices[i] = sort.Search(len(cum), func(j int) bool { return cum[j] > u })
	}

	return data.Subset(indices), nil
}

// ResampleByYear partitions the rows of the dataset by the distinct
// values of the named column, then draws an independent
// with-replacement resample within each partition, of the same size
// as the partition.  The results are concatenated, grouped by
// stratum in order of first appearance.  Rows where the stratum
// column is missing form their own stratum.
func ResampleByYear(data SeriesArray, yearColumn string, rnd *rand.Rand) (SeriesArray, error) {

	nrow, err := data.NumRows()
	if err != nil {
		return nil, err
	}

	ser := data.Column(yearColumn)
	if ser == nil {
		return nil, fmt.Errorf("no column named %s", yearColumn)
	}

	// Group row positions by stratum, keyed on the formatted value.
	groups := make(map[string][]int)
	var order []string
	for i := 0; i < nrow; i++ {
		key := stratumKey(ser, i)
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}
		groups[key] = append(groups[key], i)
	}

	indices := make([]int, 0, nrow)
	for _, key := range order {
		rows := groups[key]
		for k := 0; k < len(rows); k++ {
			indices = append(indices, rows[rnd.Intn(len(rows))])
		}
	}

	return data.Subset(indices), nil
}

// stratumKey formats the value of a series at one position for use as
// a grouping key.  Observed values are prefixed so that the missing
// key cannot collide with any data value.
func stratumKey(ser *Series, i int) string {

	if ser.IsMissing(i) {
		return "m"
	}

	switch data := ser.Data().(type) {
	case []float64:
		return fmt.Sprintf("v%v", data[i])
	case []int64:
		return fmt.Sprintf("v%d", data[i])
	case []string:
		return "v" + data[i]
	default:
		panic(fmt.Sprintf("unknown type %T in stratumKey", data))
	}
}
