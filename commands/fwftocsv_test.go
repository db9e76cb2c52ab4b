package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	surveydata "github.com/Aisosaibi/Practice-Data-Science"
)

func TestFwfToCSV(t *testing.T) {

	dict := "age 1 3 %3f x\nsex 4 4 %1s x\n"
	ly, err := surveydata.ReadDictionary(strings.NewReader(dict))
	require.NoError(t, err)

	rdr, err := surveydata.NewFixedWidthReader(strings.NewReader("034M\n047F\n   M\n"), ly)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, FwfToCSV(rdr, &buf))

	expected := "age,sex\n34,M\n47,F\n,M\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteCSV(t *testing.T) {

	a, err := surveydata.NewSeries("x", []float64{1.5, 0}, []bool{false, true})
	require.NoError(t, err)
	b, err := surveydata.NewSeries("name", []string{"u", "v"}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(surveydata.SeriesArray{a, b}, &buf))

	expected := "x,name\n1.5,u\n,v\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteCSVEmptyDataset(t *testing.T) {

	var buf bytes.Buffer
	err := WriteCSV(surveydata.SeriesArray{}, &buf)
	assert.Error(t, err)
}
