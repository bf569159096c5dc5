/*
Package feature implements column transformers over tables: a z-score
standardizer with a shrink factor, a row averager, and a union composing
several transformers over the same input.
*/
package feature

import (
	"go-ml.dev/pkg/feature/tables"
	"go-ml.dev/pkg/zorros"
)

/*
Transformer is a fittable mapper from tables to tables.

Fit learns whatever parameters the transformer needs from a training
table; Transform applies them to any table with the same column set.
*/
type Transformer interface {
	Fit(t *tables.Table) error
	Transform(t *tables.Table) (*tables.Table, error)
}

/*
InverseTransformer is a Transformer with an inverse mapping recovering
original-scale values from transformed ones.
*/
type InverseTransformer interface {
	Transformer
	InverseTransform(t *tables.Table) (*tables.Table, error)
}

// FitTransform fits the transformer on the table and transforms the same table
func FitTransform(tr Transformer, t *tables.Table) (*tables.Table, error) {
	if err := tr.Fit(t); err != nil {
		return nil, err
	}
	return tr.Transform(t)
}

/*
LuckyFitTransform is like FitTransform but throws any occurred error as a panic
*/
func LuckyFitTransform(tr Transformer, t *tables.Table) *tables.Table {
	r, err := FitTransform(tr, t)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return r
}
