package surveydata

// A StatfileReader can produce a dataset by reading records in
// chunks.  The fixed-width reader satisfies this interface.
type StatfileReader interface {
	ColumnNames() []string
	ColumnTypes() []string
	Read(int) ([]*Series, error)
}
