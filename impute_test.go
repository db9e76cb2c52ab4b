package surveydata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestFillMissing(t *testing.T) {

	miss := []bool{false, true, false, true, true, false}
	ser, err := NewSeries("x", []float64{1, 0, 2, 0, 0, 3}, miss)
	require.NoError(t, err)
	data := SeriesArray{ser}

	rnd := rand.New(rand.NewSource(42))
	out, err := FillMissing(data, "x", rnd)
	require.NoError(t, err)

	filled := out.Column("x")
	assert.Equal(t, 0, filled.CountMissing())

	// Every filled value comes from the observed pool {1, 2, 3}.
	v, _, err := filled.AsFloat64Slice()
	require.NoError(t, err)
	for i, x := range v {
		if miss[i] {
			assert.Contains(t, []float64{1, 2, 3}, x)
		}
	}

	// Non-missing values are untouched.
	assert.Equal(t, 1.0, v[0])
	assert.Equal(t, 2.0, v[2])
	assert.Equal(t, 3.0, v[5])

	// The input dataset is unchanged.
	assert.Equal(t, 3, data.Column("x").CountMissing())
}

func TestFillMissingString(t *testing.T) {

	ser, err := NewSeries("s", []string{"a", "", "b"}, []bool{false, true, false})
	require.NoError(t, err)
	data := SeriesArray{ser}

	rnd := rand.New(rand.NewSource(42))
	out, err := FillMissing(data, "s", rnd)
	require.NoError(t, err)

	v, _, err := out.Column("s").AsStringSlice()
	require.NoError(t, err)
	assert.Contains(t, []string{"a", "b"}, v[1])
}

func TestFillMissingInPlace(t *testing.T) {

	ser, err := NewSeries("x", []float64{5, 0}, []bool{false, true})
	require.NoError(t, err)
	data := SeriesArray{ser}

	rnd := rand.New(rand.NewSource(42))
	require.NoError(t, FillMissingInPlace(data, "x", rnd))

	assert.Equal(t, 0, data.Column("x").CountMissing())
	v, _, err := data.Column("x").AsFloat64Slice()
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 5}, v)
}

func TestFillMissingAllMissing(t *testing.T) {

	ser, err := NewSeries("x", []float64{0, 0}, []bool{true, true})
	require.NoError(t, err)
	data := SeriesArray{ser}

	rnd := rand.New(rand.NewSource(42))
	_, err = FillMissing(data, "x", rnd)
	assert.ErrorIs(t, err, ErrAllMissing)

	err = FillMissingInPlace(data, "x", rnd)
	assert.ErrorIs(t, err, ErrAllMissing)
}

func TestFillMissingNoSuchColumn(t *testing.T) {

	ser, err := NewSeries("x", []float64{1}, nil)
	require.NoError(t, err)

	rnd := rand.New(rand.NewSource(42))
	_, err = FillMissing(SeriesArray{ser}, "y", rnd)
	assert.Error(t, err)
}

func TestFillMissingNothingToDo(t *testing.T) {

	ser, err := NewSeries("x", []float64{1, 2}, nil)
	require.NoError(t, err)
	data := SeriesArray{ser}

	rnd := rand.New(rand.NewSource(42))
	out, err := FillMissing(data, "x", rnd)
	require.NoError(t, err)

	f, _, _ := out.AllEqual(data)
	assert.True(t, f)
}
