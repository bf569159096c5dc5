package feature

import (
	"go-ml.dev/pkg/feature/fu"
	"go-ml.dev/pkg/feature/tables"
	"gonum.org/v1/gonum/stat"
)

/*
ColumnStats is the immutable record of per-column location and scale
statistics learned by Standardizer.Fit. Std holds the population
standard deviation (divisor N, not N-1).
*/
type ColumnStats struct {
	Names []string
	Mean  []float64
	Std   []float64
}

func (s *ColumnStats) clone() *ColumnStats {
	r := &ColumnStats{
		Names: make([]string, len(s.Names)),
		Mean:  make([]float64, len(s.Mean)),
		Std:   make([]float64, len(s.Std)),
	}
	copy(r.Names, s.Names)
	copy(r.Mean, s.Mean)
	copy(r.Std, s.Std)
	return r
}

/*
Standardizer learns per-column mean and population standard deviation
at fit time and rescales values as (x-mean)/std/shrink.

A column with zero standard deviation fits successfully but makes
Transform and InverseTransform fail with ErrDegenerateInput; non-finite
values never propagate silently.

	z := &feature.Standardizer{Shrink: 2}
	q := feature.LuckyFitTransform(z, t)
*/
type Standardizer struct {
	Shrink float64 // positive divisor on top of the std scaling, 1 if zero
	stats  *ColumnStats
}

// Stats returns a copy of the fitted statistics, nil before fit
func (z *Standardizer) Stats() *ColumnStats {
	if z.stats == nil {
		return nil
	}
	return z.stats.clone()
}

func (z *Standardizer) shrink() (float64, error) {
	k := fu.Fnzd(z.Shrink, 1)
	if !(k > 0) {
		return 0, usagef("shrink factor %v is not positive", z.Shrink)
	}
	return k, nil
}

/*
Fit computes mean and population standard deviation of every column
and stores them keyed by column name. A second Fit replaces the prior
statistics wholesale.
*/
func (z *Standardizer) Fit(t *tables.Table) error {
	if _, err := z.shrink(); err != nil {
		return err
	}
	if t.Len() == 0 || t.Width() == 0 {
		return degeneratef("cannot fit on an empty dataset")
	}
	names := t.Names()
	stats := &ColumnStats{
		Names: names,
		Mean:  make([]float64, len(names)),
		Std:   make([]float64, len(names)),
	}
	for i, name := range names {
		v := t.Col(name).Values()
		if !fu.Finite(v) {
			return degeneratef("column %v contains non-numeric values", name)
		}
		stats.Mean[i] = stat.Mean(v, nil)
		stats.Std[i] = stat.PopStdDev(v, nil)
	}
	z.stats = stats
	return nil
}

// match verifies the table carries exactly the fitted column set
func (z *Standardizer) match(t *tables.Table, op string) error {
	if z.stats == nil {
		return usagef("%v before fit", op)
	}
	if t.Width() != len(z.stats.Names) {
		return usagef("%v expects %v columns, got %v", op, len(z.stats.Names), t.Width())
	}
	for _, name := range z.stats.Names {
		if t.Col(name) == nil {
			return usagef("%v input has no column %v", op, name)
		}
	}
	return nil
}

func (z *Standardizer) apply(t *tables.Table, op string, f func(x, mean, scale float64) float64) (*tables.Table, error) {
	if err := z.match(t, op); err != nil {
		return nil, err
	}
	k, err := z.shrink()
	if err != nil {
		return nil, err
	}
	columns := make([]*tables.Column, len(z.stats.Names))
	for i, name := range z.stats.Names {
		std := z.stats.Std[i]
		if std == 0 {
			return nil, degeneratef("zero standard deviation in column %v", name)
		}
		mean := z.stats.Mean[i]
		src := t.Col(name)
		out := make([]float64, src.Len())
		for j := range out {
			out[j] = f(src.Float(j), mean, std*k)
		}
		columns[i] = tables.Col(out)
	}
	return tables.New(z.stats.Names, columns), nil
}

/*
Transform rescales every fitted column as (x-mean)/std/shrink. Output
columns follow the fitted order and keep their names.
*/
func (z *Standardizer) Transform(t *tables.Table) (*tables.Table, error) {
	return z.apply(t, "transform", func(x, mean, scale float64) float64 {
		return (x - mean) / scale
	})
}

/*
InverseTransform maps standardized values back to the original scale
as x*std*shrink+mean.
*/
func (z *Standardizer) InverseTransform(t *tables.Table) (*tables.Table, error) {
	return z.apply(t, "inverse transform", func(x, mean, scale float64) float64 {
		return x*scale + mean
	})
}
