package surveydata

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// DefaultLowessFrac is the fraction of points used in each local
// regression window when no fraction is given.
const DefaultLowessFrac = 0.3

// Lowess computes a locally weighted scatterplot smooth of y on x.
// For each point, the frac*n nearest points by x-distance are fit
// with a tricube-weighted linear regression, and the fitted value at
// that point is returned.  A frac that is not in (0, 1] is replaced
// by DefaultLowessFrac.  The x values need not be sorted; the
// returned fitted values align with the input order.
func Lowess(x, y []float64, frac float64) ([]float64, error) {

	n := len(x)
	if n == 0 {
		return nil, fmt.Errorf("no data to smooth")
	}
	if len(y) != n {
		return nil, fmt.Errorf("x has length %d but y has length %d", n, len(y))
	}

	if frac <= 0 || frac > 1 {
		frac = DefaultLowessFrac
	}

	window := int(math.Ceil(frac * float64(n)))
	if window < 2 {
		window = 2
	}
	if window > n {
		window = n
	}

	fitted := make([]float64, n)
	dist := make([]float64, n)
	wgt := make([]float64, n)

	for i := 0; i < n; i++ {

		for j := 0; j < n; j++ {
			dist[j] = math.Abs(x[j] - x[i])
		}

		// Bandwidth is the distance to the window'th nearest point.
		sorted := append([]float64(nil), dist...)
		sort.Float64s(sorted)
		h := sorted[window-1]

		if h == 0 {
			// All in-window points share this x value; use
			// their mean response.
			sum, m := 0.0, 0
			for j := 0; j < n; j++ {
				if dist[j] == 0 {
					sum += y[j]
					m++
				}
			}
			fitted[i] = sum / float64(m)
			continue
		}

		pos := 0
		for j := 0; j < n; j++ {
			wgt[j] = tricube(dist[j] / h)
			if wgt[j] > 0 {
				pos++
			}
		}

		// The weighted fit degenerates when fewer than two
		// distinct x values carry weight.
		if v := stat.Variance(x, wgt); pos < 2 || v == 0 || math.IsNaN(v) {
			fitted[i] = stat.Mean(y, wgt)
			continue
		}

		alpha, beta := stat.LinearRegression(x, y, wgt, false)
		fitted[i] = alpha + beta*x[i]
	}

	return fitted, nil
}

// tricube is the standard LOWESS weight kernel, (1-|u|^3)^3 on
// [0, 1) and zero beyond.
func tricube(u float64) float64 {
	if u >= 1 {
		return 0
	}
	w := 1 - u*u*u
	return w * w * w
}

