package feature_test

import (
	"errors"
	"testing"

	"go-ml.dev/pkg/feature"
	"go-ml.dev/pkg/feature/tables"
	"gonum.org/v1/gonum/floats"
	"gotest.tools/assert"
)

func scaleAndAverage() *feature.Union {
	return feature.NewUnion(
		feature.Component{Name: "scale", Transformer: &feature.Standardizer{}},
		feature.Component{Name: "average", Transformer: feature.Averager{}},
	)
}

func Test_UnionTransform(t *testing.T) {
	u := scaleAndAverage()
	q, err := feature.FitTransform(u, trainTable())
	assert.NilError(t, err)
	assert.Equal(t, q.Width(), 4)
	assert.Equal(t, q.Len(), 3)
	assert.DeepEqual(t, q.Names(), []string{"A", "B", "C", "Average"})
	assert.Assert(t, floats.EqualApprox(q.Col("A").Values(), []float64{-zed, 0, zed}, 1e-9))
	assert.Assert(t, floats.EqualApprox(q.Col("Average").Values(), []float64{4, 5, 6}, 1e-9))
}

func Test_UnionRowCount(t *testing.T) {
	u := scaleAndAverage()
	assert.NilError(t, u.Fit(trainTable()))
	two := tables.FromMatrix([]string{"A", "B", "C"}, [][]float64{{1, 4, 7}, {3, 6, 9}})
	q, err := u.Transform(two)
	assert.NilError(t, err)
	assert.Equal(t, q.Len(), 2)
	assert.Equal(t, q.Width(), 4)
}

func Test_UnionUnfitted(t *testing.T) {
	_, err := scaleAndAverage().Transform(trainTable())
	assert.Assert(t, errors.Is(err, feature.ErrUsage))
}

func Test_UnionNoComponents(t *testing.T) {
	assert.Assert(t, errors.Is(feature.NewUnion().Fit(trainTable()), feature.ErrUsage))
}

func Test_UnionFitFailure(t *testing.T) {
	u := feature.NewUnion(
		feature.Component{Name: "scale", Transformer: &feature.Standardizer{Shrink: -1}},
		feature.Component{Name: "average", Transformer: feature.Averager{}},
	)
	assert.Assert(t, errors.Is(u.Fit(trainTable()), feature.ErrUsage))
	_, err := u.Transform(trainTable())
	assert.Assert(t, errors.Is(err, feature.ErrUsage))
}

func Test_UnionRefitFailureUnfits(t *testing.T) {
	u := scaleAndAverage()
	assert.NilError(t, u.Fit(trainTable()))
	empty := tables.New([]string{"A"}, []*tables.Column{tables.Col(nil)})
	assert.Assert(t, errors.Is(u.Fit(empty), feature.ErrDegenerateInput))
	_, err := u.Transform(trainTable())
	assert.Assert(t, errors.Is(err, feature.ErrUsage))
}

// truncating drops all rows but the first, to exercise shape checking
type truncating struct{}

func (truncating) Fit(*tables.Table) error { return nil }

func (truncating) Transform(t *tables.Table) (*tables.Table, error) {
	return tables.New([]string{"T"}, []*tables.Column{tables.Col([]float64{0})}), nil
}

func Test_UnionShapeMismatch(t *testing.T) {
	u := feature.NewUnion(
		feature.Component{Name: "average", Transformer: feature.Averager{}},
		feature.Component{Name: "broken", Transformer: truncating{}},
	)
	assert.NilError(t, u.Fit(trainTable()))
	_, err := u.Transform(trainTable())
	assert.Assert(t, errors.Is(err, feature.ErrShape))
}

func Test_UnionDuplicateColumns(t *testing.T) {
	u := feature.NewUnion(
		feature.Component{Name: "mean", Transformer: feature.Averager{}},
		feature.Component{Name: "ratio", Transformer: feature.Averager{Normalize: true}},
	)
	assert.NilError(t, u.Fit(trainTable()))
	_, err := u.Transform(trainTable())
	assert.Assert(t, errors.Is(err, feature.ErrUsage))
}
