package domain

// Cell is one named value of a row. Categorical cells carry Text, numeric cells Number.
type Cell struct {
	Column      string
	Number      float64
	Text        string
	Categorical bool
}

// NumericCell builds a numeric cell.
func NumericCell(column string, v float64) Cell {
	return Cell{Column: column, Number: v}
}

// CategoricalCell builds a categorical cell.
func CategoricalCell(column, v string) Cell {
	return Cell{Column: column, Text: v, Categorical: true}
}

// Row is a single ordered record of named cells.
type Row []Cell

// ColumnNames lists the row's column names in order.
func (r Row) ColumnNames() []string {
	names := make([]string, len(r))
	for i, c := range r {
		names[i] = c.Column
	}
	return names
}
