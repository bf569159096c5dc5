package feature

import (
	"go-ml.dev/pkg/feature/fu"
	"go-ml.dev/pkg/feature/tables"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultAverageColumn is the output column name of Averager if As is empty
const DefaultAverageColumn = "Average"

/*
Averager derives a single column holding the arithmetic mean of every
input row, or mean/max of the row when Normalize is set. It learns no
parameters: Fit is a no-op kept for chaining compatibility, and
Transform works on an unfitted instance.

Output depends only on the row itself; a zero row maximum under
Normalize fails with ErrDegenerateInput.
*/
type Averager struct {
	Normalize bool   // divide the row mean by the row maximum
	As        string // output column name, DefaultAverageColumn if empty
}

// Fit does nothing and never fails
func (a Averager) Fit(*tables.Table) error { return nil }

// Transform returns a single-column table of per-row averages
func (a Averager) Transform(t *tables.Table) (*tables.Table, error) {
	if t.Width() == 0 {
		return nil, usagef("cannot average rows without columns")
	}
	out := make([]float64, t.Len())
	row := make([]float64, t.Width())
	for i := range out {
		t.Row(row, i)
		m := stat.Mean(row, nil)
		if a.Normalize {
			max := floats.Max(row)
			if max == 0 {
				return nil, degeneratef("zero maximum in row %v", i)
			}
			m /= max
		}
		out[i] = m
	}
	name := fu.Fnzs(a.As, DefaultAverageColumn)
	return tables.New([]string{name}, []*tables.Column{tables.Col(out)}), nil
}
