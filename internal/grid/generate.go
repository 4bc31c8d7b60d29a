package grid

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/KaramelBytes/datagen-cli/internal/column"
	"github.com/sirupsen/logrus"
)

// Options tunes a generation run. The zero value draws from a randomly seeded source.
type Options struct {
	// Rand is the random source for every draw in the run. It is owned by the
	// run and must not be shared with a concurrent one.
	Rand *rand.Rand
	// OnCell, when set, receives each cell as soon as it is final. A returned
	// error aborts the run.
	OnCell func(row, col int, v column.Value) error
	Logger logrus.FieldLogger
}

// NewRand returns a deterministic source for seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// step is a column's dependency resolved to absolute column indexes.
type step struct {
	spec *column.Spec
	dep  column.DependencyKind
	src  int // DependsOnSource
	from int // first column read by DependsOnPreceding
}

// Generate builds a grid of rows data rows for specs. Columns are produced in
// declared order and each column top to bottom; every dependency reads a cell
// that is already final in that order.
func Generate(specs []*column.Spec, rows int, opt Options) (*Grid, error) {
	if rows < 1 {
		return nil, &RowCountError{Rows: rows}
	}
	plan, err := resolve(specs)
	if err != nil {
		return nil, err
	}
	rng := opt.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	log := opt.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	g := newGrid(len(specs), rows)
	for c, st := range plan {
		var state column.State
		for r := 0; r <= rows; r++ {
			var v column.Value
			if r == 0 {
				v = column.String(st.spec.Header())
			} else {
				v, err = st.spec.Value(rng, &state, g.inputs(st, r, c))
				if err != nil {
					return nil, fmt.Errorf("generate column %q row %d: %w", st.spec.Name(), r, err)
				}
			}
			g.append(v)
			if opt.OnCell != nil {
				if err := opt.OnCell(r, c, v); err != nil {
					return nil, fmt.Errorf("emit column %q row %d: %w", st.spec.Name(), r, err)
				}
			}
		}
		log.WithFields(logrus.Fields{
			"column": st.spec.Name(),
			"kind":   st.spec.Kind().String(),
			"rows":   rows,
		}).Debug("column generated")
	}
	return g, nil
}

// resolve checks every dependency against the columns declared before it.
func resolve(specs []*column.Spec) ([]step, error) {
	plan := make([]step, len(specs))
	for i, s := range specs {
		dep := s.Dependency()
		st := step{spec: s, dep: dep.Kind}
		switch dep.Kind {
		case column.DependsOnSource:
			st.src = -1
			for j := i - 1; j >= 0; j-- {
				if specs[j].Name() == dep.Source {
					st.src = j
					break
				}
			}
			if st.src < 0 {
				return nil, &DependencyRangeError{Column: s.Name(), Source: dep.Source, Have: i}
			}
		case column.DependsOnPreceding:
			if dep.Count > i {
				return nil, &DependencyRangeError{Column: s.Name(), Need: dep.Count, Have: i}
			}
			st.from = i - dep.Count
		}
		plan[i] = st
	}
	return plan, nil
}

// inputs looks up the finalized cells step reads for data row r of column c.
func (g *Grid) inputs(st step, r, c int) column.Inputs {
	switch st.dep {
	case column.DependsOnPreviousRow:
		if r == 1 {
			// the cell above is the header
			return column.Inputs{}
		}
		return column.Inputs{Ref: g.At(r-1, c), HasRef: true}
	case column.DependsOnSource:
		return column.Inputs{Ref: g.At(r, st.src), HasRef: true}
	case column.DependsOnPreceding:
		vals := make([]column.Value, 0, c-st.from)
		for j := st.from; j < c; j++ {
			vals = append(vals, g.At(r, j))
		}
		return column.Inputs{Preceding: vals}
	}
	return column.Inputs{}
}
