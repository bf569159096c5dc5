/*
Package tables implements an ordered collection of named numeric columns
used as the input and output representation of feature transformers.
*/
package tables

import (
	"go-ml.dev/pkg/zorros"
	"gonum.org/v1/gonum/mat"
)

/*
Column is a sequence of float64 samples belonging to a Table
*/
type Column struct {
	data []float64
}

/*
Col wraps a float64 slice into a Column

	tables.Col([]float64{1, 2, 3})
*/
func Col(v []float64) *Column {
	data := make([]float64, len(v))
	copy(data, v)
	return &Column{data: data}
}

// Len returns the count of samples in the column
func (c *Column) Len() int { return len(c.data) }

// Float returns the i-th sample
func (c *Column) Float(i int) float64 { return c.data[i] }

// Values returns a copy of the column samples
func (c *Column) Values() []float64 {
	v := make([]float64, len(c.data))
	copy(v, c.data)
	return v
}

/*
Table is an ordered collection of named columns with equal lengths.
Row order is significant and preserved by all operations.
*/
type Table struct {
	names   []string
	columns []*Column
}

/*
New creates a table from a list of names and columns of the same order.
It panics if the counts differ or the columns have unequal lengths.
*/
func New(names []string, columns []*Column) *Table {
	if len(names) != len(columns) {
		panic(zorros.Panic(zorros.Errorf("got %v names for %v columns", len(names), len(columns))))
	}
	for i, c := range columns {
		if c.Len() != columns[0].Len() {
			panic(zorros.Panic(zorros.Errorf("column %v has length %v, expected %v", names[i], c.Len(), columns[0].Len())))
		}
	}
	t := &Table{names: make([]string, len(names)), columns: make([]*Column, len(columns))}
	copy(t.names, names)
	copy(t.columns, columns)
	return t
}

/*
FromMatrix creates a table from row-major data; every row must have
exactly one value per name. It panics on ragged rows.
*/
func FromMatrix(names []string, rows [][]float64) *Table {
	columns := make([]*Column, len(names))
	for j := range columns {
		columns[j] = &Column{data: make([]float64, len(rows))}
	}
	for i, row := range rows {
		if len(row) != len(names) {
			panic(zorros.Panic(zorros.Errorf("row %v has %v values, expected %v", i, len(row), len(names))))
		}
		for j, x := range row {
			columns[j].data[i] = x
		}
	}
	return New(names, columns)
}

// Len returns the count of rows
func (t *Table) Len() int {
	if len(t.columns) == 0 {
		return 0
	}
	return t.columns[0].Len()
}

// Width returns the count of columns
func (t *Table) Width() int { return len(t.columns) }

// Names returns a copy of the ordered column names
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Col returns the named column or nil if the table does not have it
func (t *Table) Col(name string) *Column {
	for i, n := range t.names {
		if n == name {
			return t.columns[i]
		}
	}
	return nil
}

/*
With returns a new table with the named column replaced, or appended
if the table does not have it yet. The receiver is left unchanged.
It panics if the column length differs from the table row count.
*/
func (t *Table) With(c *Column, name string) *Table {
	if len(t.columns) > 0 && c.Len() != t.Len() {
		panic(zorros.Panic(zorros.Errorf("column %v has length %v, expected %v", name, c.Len(), t.Len())))
	}
	names := t.Names()
	columns := make([]*Column, len(t.columns))
	copy(columns, t.columns)
	for i, n := range names {
		if n == name {
			columns[i] = c
			return New(names, columns)
		}
	}
	return New(append(names, name), append(columns, c))
}

// Except returns a new table without the listed columns
func (t *Table) Except(names ...string) *Table {
	skip := map[string]bool{}
	for _, n := range names {
		skip[n] = true
	}
	var rn []string
	var rc []*Column
	for i, n := range t.names {
		if !skip[n] {
			rn = append(rn, n)
			rc = append(rc, t.columns[i])
		}
	}
	return New(rn, rc)
}

/*
Concat returns a new table with the other table's columns appended
after the receiver's. Both tables must have the same row count and
no column name may occur twice.
*/
func (t *Table) Concat(o *Table) (*Table, error) {
	if t.Len() != o.Len() {
		return nil, zorros.Errorf("cannot concat %v rows with %v rows", t.Len(), o.Len())
	}
	for _, n := range o.names {
		if t.Col(n) != nil {
			return nil, zorros.Errorf("duplicate column %v", n)
		}
	}
	names := append(t.Names(), o.Names()...)
	columns := make([]*Column, 0, len(t.columns)+len(o.columns))
	columns = append(columns, t.columns...)
	columns = append(columns, o.columns...)
	return New(names, columns), nil
}

// Row fills dst with the i-th row and returns it; dst is allocated if nil
func (t *Table) Row(dst []float64, i int) []float64 {
	if dst == nil {
		dst = make([]float64, len(t.columns))
	}
	for j, c := range t.columns {
		dst[j] = c.Float(i)
	}
	return dst
}

// Matrix returns the table values as row-major [][]float64
func (t *Table) Matrix() [][]float64 {
	rows := make([][]float64, t.Len())
	for i := range rows {
		rows[i] = t.Row(nil, i)
	}
	return rows
}

// Dense returns the table values as a gonum dense matrix, nil if the table is empty
func (t *Table) Dense() *mat.Dense {
	if t.Len() == 0 || t.Width() == 0 {
		return nil
	}
	d := mat.NewDense(t.Len(), t.Width(), nil)
	for i := 0; i < t.Len(); i++ {
		d.SetRow(i, t.Row(nil, i))
	}
	return d
}
