package tables_test

import (
	"testing"

	"go-ml.dev/pkg/feature/tables"
	"gotest.tools/assert"
)

func abc() *tables.Table {
	return tables.New([]string{"A", "B", "C"}, []*tables.Column{
		tables.Col([]float64{1, 2, 3}),
		tables.Col([]float64{4, 5, 6}),
		tables.Col([]float64{7, 8, 9}),
	})
}

func Test_Col(t *testing.T) {
	v := []float64{1, 2, 3}
	c := tables.Col(v)
	v[0] = 100
	assert.Equal(t, c.Len(), 3)
	assert.Equal(t, c.Float(0), 1.0)
	w := c.Values()
	w[1] = 100
	assert.Equal(t, c.Float(1), 2.0)
}

func Test_Table(t *testing.T) {
	q := abc()
	assert.Equal(t, q.Len(), 3)
	assert.Equal(t, q.Width(), 3)
	assert.DeepEqual(t, q.Names(), []string{"A", "B", "C"})
	assert.Equal(t, q.Col("B").Float(2), 6.0)
	assert.Assert(t, q.Col("X") == nil)
}

func Test_With(t *testing.T) {
	q := abc().With(tables.Col([]float64{0, 0, 1}), "D")
	assert.Equal(t, q.Width(), 4)
	assert.Equal(t, q.Col("D").Float(2), 1.0)
	r := q.With(tables.Col([]float64{9, 9, 9}), "A")
	assert.Equal(t, r.Width(), 4)
	assert.Equal(t, r.Col("A").Float(0), 9.0)
	// the source table is unchanged
	assert.Equal(t, q.Col("A").Float(0), 1.0)
	assert.Equal(t, abc().Width(), 3)
}

func Test_Except(t *testing.T) {
	q := abc().Except("B")
	assert.DeepEqual(t, q.Names(), []string{"A", "C"})
	assert.Equal(t, q.Len(), 3)
}

func Test_Concat(t *testing.T) {
	q, err := abc().Except("B", "C").Concat(abc().Except("A", "C"))
	assert.NilError(t, err)
	assert.DeepEqual(t, q.Names(), []string{"A", "B"})

	_, err = abc().Concat(tables.FromMatrix([]string{"D"}, [][]float64{{1}}))
	assert.ErrorContains(t, err, "rows")

	_, err = abc().Concat(abc().Except("B", "C"))
	assert.ErrorContains(t, err, "duplicate")
}

func Test_Matrix(t *testing.T) {
	m := abc().Matrix()
	assert.DeepEqual(t, m, [][]float64{{1, 4, 7}, {2, 5, 8}, {3, 6, 9}})
	q := tables.FromMatrix([]string{"A", "B", "C"}, m)
	assert.DeepEqual(t, q.Matrix(), m)
	assert.DeepEqual(t, q.Names(), []string{"A", "B", "C"})
}

func Test_Dense(t *testing.T) {
	d := abc().Dense()
	r, c := d.Dims()
	assert.Equal(t, r, 3)
	assert.Equal(t, c, 3)
	assert.Equal(t, d.At(1, 2), 8.0)
	assert.Assert(t, tables.New(nil, nil).Dense() == nil)
}

func Test_Row(t *testing.T) {
	q := abc()
	assert.DeepEqual(t, q.Row(nil, 1), []float64{2, 5, 8})
	dst := make([]float64, 3)
	assert.DeepEqual(t, q.Row(dst, 2), []float64{3, 6, 9})
}

func Test_NewPanics(t *testing.T) {
	defer func() {
		assert.Assert(t, recover() != nil)
	}()
	tables.New([]string{"A", "B"}, []*tables.Column{
		tables.Col([]float64{1, 2}),
		tables.Col([]float64{1}),
	})
}
