package surveydata

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDict = `dictionary using survey.dat {
* Variable positions are 1-based and inclusive.
age      1   3  %3f  "Age of respondent"
sex      4   4  %1s  "Sex"
income   5  10  %6f  "Household income"
year    11  14  %4f  "Survey year"
}
`

func TestReadDictionary(t *testing.T) {

	ly, err := ReadDictionary(strings.NewReader(testDict))
	require.NoError(t, err)

	expected := []ColumnSpec{
		{Name: "age", Start: 1, End: 3, Type: "float64"},
		{Name: "sex", Start: 4, End: 4, Type: "string"},
		{Name: "income", Start: 5, End: 10, Type: "float64"},
		{Name: "year", Start: 11, End: 14, Type: "float64"},
	}

	assert.Equal(t, expected, ly.Columns())
	assert.Equal(t, 4, ly.Len())

	cs, ok := ly.Column("income")
	require.True(t, ok)
	assert.Equal(t, 5, cs.Start)
	assert.Equal(t, 10, cs.End)

	_, ok = ly.Column("missing")
	assert.False(t, ok)
}

func TestReadDictionaryIdempotent(t *testing.T) {

	ly1, err := ReadDictionary(strings.NewReader(testDict))
	require.NoError(t, err)
	ly2, err := ReadDictionary(strings.NewReader(testDict))
	require.NoError(t, err)

	assert.Equal(t, ly1.Columns(), ly2.Columns())
}

func TestReadDictionarySkipsNoise(t *testing.T) {

	dict := `infile dictionary {
this line is noise
x not 3 %f
short 1 2
age 1 3 %3f comment
}
`
	ly, err := ReadDictionary(strings.NewReader(dict))
	require.NoError(t, err)

	// Only the age line has the required shape: "short 1 2" has
	// three tokens, "x not 3 %f" has a non-integer start.
	require.Equal(t, 1, ly.Len())
	assert.Equal(t, ColumnSpec{Name: "age", Start: 1, End: 3, Type: "float64"}, ly.Columns()[0])
}

func TestReadDictionaryDuplicateNames(t *testing.T) {

	dict := `age 1 3 %3f first
sex 4 4 %1s sex
age 5 8 %4f second
`
	ly, err := ReadDictionary(strings.NewReader(dict))
	require.NoError(t, err)

	// Last occurrence wins, without any error.
	require.Equal(t, 2, ly.Len())
	cs, ok := ly.Column("age")
	require.True(t, ok)
	assert.Equal(t, 5, cs.Start)
	assert.Equal(t, 8, cs.End)
}

func TestReadDictionaryTypeDirectives(t *testing.T) {

	dict := `a 1 2 %2f x
b 3 4 %9.2g x
c 5 6 %2s x
d 7 8 str2 x
`
	ly, err := ReadDictionary(strings.NewReader(dict))
	require.NoError(t, err)

	types := make(map[string]string)
	for _, cs := range ly.Columns() {
		types[cs.Name] = cs.Type
	}

	assert.Equal(t, "float64", types["a"])
	assert.Equal(t, "float64", types["b"])
	assert.Equal(t, "string", types["c"])
	assert.Equal(t, "infer", types["d"])
}
