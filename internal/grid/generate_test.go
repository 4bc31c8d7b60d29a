package grid_test

import (
	"errors"
	"testing"

	"github.com/KaramelBytes/datagen-cli/internal/column"
	"github.com/KaramelBytes/datagen-cli/internal/grid"
	"github.com/google/go-cmp/cmp"
)

// must unwraps a constructor result for specs that are valid by construction.
func must(s *column.Spec, err error) *column.Spec {
	if err != nil {
		panic(err)
	}
	return s
}

func TestScenarioCombineJoinsSameRow(t *testing.T) {
	specs := []*column.Spec{
		must(column.List("Project", []string{"P1", "P2"})),
		must(column.List("Site", []string{"S1", "S2"})),
		must(column.Combine("WBS", 2, ".")),
	}
	g, err := grid.Generate(specs, 3, grid.Options{Rand: grid.NewRand(1)})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if diff := cmp.Diff([]string{"Project", "Site", "WBS"}, g.Header()); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	if g.Rows() != 4 || g.DataRows() != 3 || g.Columns() != 3 {
		t.Fatalf("unexpected shape %dx%d", g.Rows(), g.Columns())
	}
	for r := 1; r <= 3; r++ {
		want := g.At(r, 0).S + "." + g.At(r, 1).S
		if got := g.At(r, 2).S; got != want {
			t.Fatalf("row %d: WBS %q, want %q", r, got, want)
		}
	}
}

func TestScenarioIntegerIncreasing(t *testing.T) {
	g, err := grid.Generate([]*column.Spec{column.IntegerIncreasing("Order", 100)}, 4, grid.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := [][]string{{"Order"}, {"100"}, {"101"}, {"102"}, {"103"}}
	if diff := cmp.Diff(want, g.Strings()); diff != "" {
		t.Fatalf("grid mismatch (-want +got):\n%s", diff)
	}
	for _, v := range g.Column(0) {
		if v.Type != column.TypeInt {
			t.Fatalf("expected integer cells, got %s", v.Type)
		}
	}
}

func TestScenarioDateIncreasing(t *testing.T) {
	s := must(column.DateIncreasing("Date", column.MustDay("2020-01-01"), 2))
	g, err := grid.Generate([]*column.Spec{s}, 5, grid.Options{})
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, v := range g.Column(0) {
		if !v.IsDate() {
			t.Fatalf("expected date cell, got %s", v.Type)
		}
		got = append(got, v.String())
	}
	want := []string{"2020-01-01", "2020-01-01", "2020-01-02", "2020-01-02", "2020-01-03"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("dates mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioDictionaryLookup(t *testing.T) {
	specs := []*column.Spec{
		must(column.List("Priority", []string{"2"})),
		must(column.Dictionary("Text", "Priority", map[string]string{"1": "High", "2": "Low"})),
	}
	g, err := grid.Generate(specs, 3, grid.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for r := 1; r <= 3; r++ {
		if got := g.At(r, 1).S; got != "Low" {
			t.Fatalf("row %d: got %q, want Low", r, got)
		}
	}

	specs[0] = must(column.List("Priority", []string{"3"}))
	_, err = grid.Generate(specs, 3, grid.Options{})
	var le *column.LookupError
	if !errors.As(err, &le) {
		t.Fatalf("expected *LookupError, got %v", err)
	}
}

func TestRowCountError(t *testing.T) {
	// The spec list is invalid too; the row count must be rejected first.
	bad := must(column.Combine("WBS", 5, "."))
	for _, rows := range []int{0, -1, -100} {
		_, err := grid.Generate([]*column.Spec{bad}, rows, grid.Options{})
		var rce *grid.RowCountError
		if !errors.As(err, &rce) {
			t.Fatalf("rows=%d: expected *RowCountError, got %v", rows, err)
		}
	}
}

func TestDependencyRangeErrors(t *testing.T) {
	cases := []struct {
		name  string
		specs func() []*column.Spec
	}{
		{"combine past first column", func() []*column.Spec {
			return []*column.Spec{
				column.Fixed("A"),
				must(column.Combine("WBS", 2, ".")),
			}
		}},
		{"unknown source", func() []*column.Spec {
			return []*column.Spec{
				column.Fixed("A"),
				must(column.Dictionary("Text", "Missing", nil)),
			}
		}},
		{"forward source", func() []*column.Spec {
			return []*column.Spec{
				must(column.IntegerDeltaFrom("Actual", "Estimated", 10)),
				must(column.IntegerRange("Estimated", 1, 10)),
			}
		}},
		{"self source", func() []*column.Spec {
			return []*column.Spec{
				must(column.DateDeltaFrom("Finish", "Finish", 3)),
			}
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			_, err := grid.Generate(tc.specs(), 2, grid.Options{OnCell: func(int, int, column.Value) error {
				calls++
				return nil
			}})
			var de *grid.DependencyRangeError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DependencyRangeError, got %v", err)
			}
			if calls != 0 {
				t.Fatalf("no cell should be produced before dependency errors, got %d", calls)
			}
		})
	}
}

func TestDeltaReadsPreviousRow(t *testing.T) {
	s := must(column.IntegerDelta("Price", 10, 1000))
	g, err := grid.Generate([]*column.Spec{s}, 50, grid.Options{Rand: grid.NewRand(3)})
	if err != nil {
		t.Fatal(err)
	}
	prev := int64(1000)
	for r := 1; r <= 50; r++ {
		v := g.At(r, 0).I
		d := 0.10 * float64(prev)
		lo, hi := int64(float64(prev)-d), int64(float64(prev)+d)
		if lo < hi && (v < lo || v >= hi) {
			t.Fatalf("row %d: %d outside [%d, %d) of previous %d", r, v, lo, hi, prev)
		}
		prev = v
	}
}

func TestSourcedDeltaReadsSameRow(t *testing.T) {
	specs := []*column.Spec{
		must(column.IntegerRange("Estimated", 1000, 5000)),
		must(column.IntegerDeltaFrom("Actual", "Estimated", 25)),
		must(column.DateRange("Start", column.MustDay("2020-01-01"), column.MustDay("2020-01-04"))),
		must(column.DateDeltaFrom("Finish", "Start", 5)),
	}
	g, err := grid.Generate(specs, 20, grid.Options{Rand: grid.NewRand(9)})
	if err != nil {
		t.Fatal(err)
	}
	for r := 1; r <= 20; r++ {
		est, act := g.At(r, 0).I, g.At(r, 1).I
		if act < est*3/4 || act >= est*5/4+1 {
			t.Fatalf("row %d: actual %d not within 25%% of estimated %d", r, act, est)
		}
		start, finish := g.At(r, 2).D, g.At(r, 3).D
		if finish.Before(start) || !finish.Before(start.AddDate(0, 0, 5)) {
			t.Fatalf("row %d: finish %s not within 5 days after start %s", r, finish, start)
		}
	}
}

func TestHeaderRowForEveryKind(t *testing.T) {
	jan1 := column.MustDay("2020-01-01")
	specs := []*column.Spec{
		column.Fixed("Description"),
		must(column.List("Priority", []string{"1"})),
		must(column.Dictionary("Priority Text", "Priority", map[string]string{"1": "Emergency"})),
		must(column.IntegerRange("Estimated", 1, 9)),
		column.IntegerIncreasing("Order", 1),
		must(column.IntegerDelta("Actual", 5, 100)),
		must(column.DateRange("Start", jan1, jan1.AddDate(0, 1, 0))),
		must(column.DateDelta("Finish", 3, jan1)),
		must(column.DateIncreasing("Date", jan1, 3)),
		must(column.Combine("Key", 2, "/")),
	}
	g, err := grid.Generate(specs, 2, grid.Options{})
	if err != nil {
		t.Fatal(err)
	}
	for c, s := range specs {
		if got := g.At(0, c); got.Type != column.TypeString || got.S != s.Name() {
			t.Fatalf("column %d header %+v, want %q", c, got, s.Name())
		}
	}
}

func TestSameSeedSameGrid(t *testing.T) {
	build := func() []*column.Spec {
		return []*column.Spec{
			must(column.List("Project", []string{"P1", "P2", "P3"})),
			must(column.IntegerRange("Cost", 0, 1_000_000)),
			must(column.Combine("Key", 2, "-")),
		}
	}
	a, err := grid.Generate(build(), 25, grid.Options{Rand: grid.NewRand(42)})
	if err != nil {
		t.Fatal(err)
	}
	b, err := grid.Generate(build(), 25, grid.Options{Rand: grid.NewRand(42)})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(a.Strings(), b.Strings()); diff != "" {
		t.Fatalf("same seed produced different grids:\n%s", diff)
	}
}

func TestSpecsReusableAcrossRuns(t *testing.T) {
	specs := []*column.Spec{column.IntegerIncreasing("Order", 7)}
	for i := 0; i < 2; i++ {
		g, err := grid.Generate(specs, 2, grid.Options{})
		if err != nil {
			t.Fatal(err)
		}
		if got := g.At(1, 0).I; got != 7 {
			t.Fatalf("run %d: state leaked across runs, first value %d", i, got)
		}
	}
}

func TestOnCellSeesColumnMajorOrder(t *testing.T) {
	specs := []*column.Spec{column.Fixed("A"), column.Fixed("B")}
	type pos struct{ R, C int }
	var got []pos
	_, err := grid.Generate(specs, 2, grid.Options{OnCell: func(r, c int, _ column.Value) error {
		got = append(got, pos{r, c})
		return nil
	}})
	if err != nil {
		t.Fatal(err)
	}
	want := []pos{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestOnCellErrorAborts(t *testing.T) {
	stop := errors.New("disk full")
	_, err := grid.Generate([]*column.Spec{column.Fixed("A")}, 3, grid.Options{OnCell: func(r, _ int, _ column.Value) error {
		if r == 2 {
			return stop
		}
		return nil
	}})
	if !errors.Is(err, stop) {
		t.Fatalf("expected wrapped hook error, got %v", err)
	}
}
