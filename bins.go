package surveydata

import (
	"fmt"
	"math"
	"sort"
)

// RoundIntoBins maps each value to the 0-based index of the half-open
// bin [bins[i], bins[i+1]) containing it.  The lowest boundary is
// inclusive, so the minimum of the bin range falls in bin 0; a value
// equal to the last boundary, outside the bin range, or NaN maps to a
// missing index rather than an error.  The missing argument may be
// nil.  The boundaries must be strictly increasing and there must be
// at least two of them.
func RoundIntoBins(values []float64, missing []bool, bins []float64) ([]float64, []bool, error) {

	if len(bins) < 2 {
		return nil, nil, fmt.Errorf("need at least two bin boundaries, got %d", len(bins))
	}
	for i := 1; i < len(bins); i++ {
		if bins[i] <= bins[i-1] {
			return nil, nil, fmt.Errorf("bin boundaries are not increasing")
		}
	}

	indices := make([]float64, len(values))
	omiss := make([]bool, len(values))

	for i, v := range values {
		if missing != nil && missing[i] {
			omiss[i] = true
			continue
		}
		if math.IsNaN(v) || v < bins[0] || v >= bins[len(bins)-1] {
			omiss[i] = true
			continue
		}

		// Smallest j with bins[j] >= v; v on a boundary starts
		// that boundary's bin, otherwise it belongs to the bin
		// before.
		j := sort.SearchFloat64s(bins, v)
		if bins[j] != v {
			j--
		}
		indices[i] = float64(j)
	}

	return indices, omiss, nil
}

// BinSeries applies RoundIntoBins to a numeric series, returning a
// series of bin indices with the same name.
func BinSeries(ser *Series, bins []float64) (*Series, error) {

	values, missing, err := ser.AsFloat64Slice()
	if err != nil {
		return nil, err
	}

	indices, omiss, err := RoundIntoBins(values, missing, bins)
	if err != nil {
		return nil, err
	}

	return NewSeries(ser.Name, indices, omiss)
}
