package dataset

import "fmt"

// ColumnKind describes the semantic type of a schema column
type ColumnKind int

const (
	KindTimestamp ColumnKind = iota
	KindCategory             // small integer code (season, weather)
	KindFlag                 // 0/1 flag (holiday, workingday)
	KindNumeric              // continuous measurement
	KindCount                // non-negative rental count
)

// Column is a single entry in the expected input schema
type Column struct {
	Name string
	Kind ColumnKind
}

// Schema is the set of columns a loaded CSV must provide
type Schema struct {
	Columns []Column
}

// DefaultSchema returns the bike sharing dataset schema
func DefaultSchema() Schema {
	return Schema{Columns: []Column{
		{Name: "datetime", Kind: KindTimestamp},
		{Name: "season", Kind: KindCategory},
		{Name: "holiday", Kind: KindFlag},
		{Name: "workingday", Kind: KindFlag},
		{Name: "weather", Kind: KindCategory},
		{Name: "temp", Kind: KindNumeric},
		{Name: "atemp", Kind: KindNumeric},
		{Name: "humidity", Kind: KindNumeric},
		{Name: "windspeed", Kind: KindNumeric},
		{Name: "casual", Kind: KindCount},
		{Name: "registered", Kind: KindCount},
		{Name: "count", Kind: KindCount},
	}}
}

// ColumnNames returns the schema column names in order
func (s Schema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, c := range s.Columns {
		names[i] = c.Name
	}
	return names
}

// SchemaError reports a missing or malformed column in the input data.
// Row is the 1-based data row number, or 0 when the column itself is absent.
type SchemaError struct {
	Column string
	Row    int
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("column %q, row %d: %s", e.Column, e.Row, e.Reason)
	}
	return fmt.Sprintf("column %q: %s", e.Column, e.Reason)
}

// MissingColumnErr reports a required column absent from the header
func MissingColumnErr(column string) *SchemaError {
	return &SchemaError{Column: column, Reason: "required column missing"}
}

// MalformedValueErr reports a cell that could not be parsed
func MalformedValueErr(column string, row int, value string) *SchemaError {
	return &SchemaError{Column: column, Row: row, Reason: fmt.Sprintf("malformed value %q", value)}
}

// UnknownColumnErr reports a column name the table does not carry
func UnknownColumnErr(column string) *SchemaError {
	return &SchemaError{Column: column, Reason: "unknown column"}
}
