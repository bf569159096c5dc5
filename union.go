package feature

import (
	"github.com/rs/zerolog/log"
	"go-ml.dev/pkg/feature/tables"
	"golang.org/x/xerrors"
)

/*
Component is a named member of a Union
*/
type Component struct {
	Name string
	Transformer
}

/*
Union runs every component on the same input and concatenates their
output columns in component order. Components are independent: none
observes another's output, and all must produce exactly as many rows
as the input.

	u := feature.NewUnion(
		feature.Component{Name: "scale", Transformer: &feature.Standardizer{}},
		feature.Component{Name: "average", Transformer: feature.Averager{}},
	)
*/
type Union struct {
	Components []Component
	fitted     bool
}

// NewUnion creates a union of the given components
func NewUnion(components ...Component) *Union {
	return &Union{Components: components}
}

/*
Fit fits every component on the same training table. The union becomes
fitted only if every component fit succeeds.
*/
func (u *Union) Fit(t *tables.Table) error {
	if len(u.Components) == 0 {
		return usagef("union has no components")
	}
	u.fitted = false
	for _, c := range u.Components {
		if err := c.Fit(t); err != nil {
			return xerrors.Errorf("fit %v: %w", c.Name, err)
		}
	}
	u.fitted = true
	return nil
}

/*
Transform transforms the table with every component and concatenates
the outputs column-wise. Component output names are kept untouched;
a name occurring in two outputs is a usage error.
*/
func (u *Union) Transform(t *tables.Table) (*tables.Table, error) {
	if !u.fitted {
		return nil, usagef("transform before fit")
	}
	var r *tables.Table
	for _, c := range u.Components {
		q, err := c.Transform(t)
		if err != nil {
			return nil, xerrors.Errorf("transform %v: %w", c.Name, err)
		}
		if q.Len() != t.Len() {
			return nil, shapef("component %v produced %v rows for %v input rows", c.Name, q.Len(), t.Len())
		}
		if r == nil {
			r = q
			continue
		}
		for _, n := range q.Names() {
			if r.Col(n) != nil {
				return nil, usagef("duplicate column %v produced by component %v", n, c.Name)
			}
		}
		if r, err = r.Concat(q); err != nil {
			return nil, err
		}
	}
	log.Debug().Int("rows", r.Len()).Int("columns", r.Width()).Msg("union transformed")
	return r, nil
}
