package surveydata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLowessLinear(t *testing.T) {

	// A local linear fit reproduces an exactly linear signal.
	n := 20
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
		y[i] = 2*float64(i) + 1
	}

	fitted, err := Lowess(x, y, 0.5)
	require.NoError(t, err)
	require.Len(t, fitted, n)

	for i := 0; i < n; i++ {
		assert.InDelta(t, y[i], fitted[i], 1e-8)
	}
}

func TestLowessConstant(t *testing.T) {

	x := []float64{1, 2, 3, 4, 5}
	y := []float64{7, 7, 7, 7, 7}

	fitted, err := Lowess(x, y, 0)
	require.NoError(t, err)
	for _, v := range fitted {
		assert.InDelta(t, 7.0, v, 1e-8)
	}
}

func TestLowessTiedX(t *testing.T) {

	// Repeated x values must not break the fit.
	x := []float64{1, 1, 1, 2, 2, 2}
	y := []float64{3, 3, 3, 5, 5, 5}

	fitted, err := Lowess(x, y, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, fitted[0], 1e-8)
	assert.InDelta(t, 5.0, fitted[5], 1e-8)
}

func TestLowessErrors(t *testing.T) {

	_, err := Lowess(nil, nil, 0.3)
	assert.Error(t, err)

	_, err = Lowess([]float64{1, 2}, []float64{1}, 0.3)
	assert.Error(t, err)
}

func TestLowessDefaultFrac(t *testing.T) {

	x := []float64{1, 2, 3, 4}
	y := []float64{1, 2, 3, 4}

	f1, err := Lowess(x, y, 0)
	require.NoError(t, err)
	f2, err := Lowess(x, y, DefaultLowessFrac)
	require.NoError(t, err)

	assert.Equal(t, f2, f1)
}
