package presets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KaramelBytes/datagen-cli/internal/column"
)

// Default is the preset used when none is configured.
const Default = "project"

type preset struct {
	summary string
	build   func() ([]*column.Spec, error)
}

var catalog = map[string]preset{
	"project": {
		summary: "project cost tracking: WBS codes, estimates, actuals, schedule and priority",
		build:   projectColumns,
	},
	"classic": {
		summary: "six-column layout: project, site, WBS, description, cost, start",
		build:   classicColumns,
	},
	"orders": {
		summary: "order log: increasing order numbers, daily batches, regions and a drifting price",
		build:   orderColumns,
	},
}

// Names returns the preset names in sorted order.
func Names() []string {
	out := make([]string, 0, len(catalog))
	for k := range catalog {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Summary returns the one-line description of a preset.
func Summary(name string) (string, bool) {
	p, ok := catalog[strings.ToLower(name)]
	return p.summary, ok
}

// Columns builds a fresh column list for the named preset.
func Columns(name string) ([]*column.Spec, error) {
	p, ok := catalog[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	cols, err := p.build()
	if err != nil {
		return nil, fmt.Errorf("preset %s: %w", name, err)
	}
	return cols, nil
}

// builder collects constructor results and keeps the first error.
type builder struct {
	cols []*column.Spec
	err  error
}

func (b *builder) add(s *column.Spec, err error) {
	if b.err != nil {
		return
	}
	if err != nil {
		b.err = err
		return
	}
	b.cols = append(b.cols, s)
}

func (b *builder) fixed(s *column.Spec) { b.add(s, nil) }

func (b *builder) done() ([]*column.Spec, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.cols, nil
}

var (
	projects = []string{"Project1", "Project2", "Project3"}
	sites    = []string{"Site1", "Site2", "Site3"}
)

func projectColumns() ([]*column.Spec, error) {
	early := column.MustDay("2020-01-01")
	late := column.MustDay("2020-01-04")
	var b builder
	b.add(column.List("Project", projects))
	b.add(column.List("Site", sites))
	b.add(column.Combine("WBS", 2, "."))
	b.fixed(column.Fixed("Description"))
	b.add(column.IntegerRange("Estimated", 1000, 5000))
	b.add(column.IntegerDeltaFrom("Actual", "Estimated", 25))
	b.add(column.DateRange("Start", early, late))
	b.add(column.DateDeltaFrom("Finish", "Start", 5))
	b.add(column.List("Priority", []string{"1", "2", "3", "4"}))
	b.add(column.Dictionary("Priority Text", "Priority", map[string]string{
		"1": "Emergency",
		"2": "High",
		"3": "Medium",
		"4": "Low",
	}))
	b.add(column.DateIncreasing("Date", early, 5))
	b.fixed(column.IntegerIncreasing("Order", 400000))
	return b.done()
}

func classicColumns() ([]*column.Spec, error) {
	var b builder
	b.add(column.List("Project", projects))
	b.add(column.List("Site", sites))
	b.add(column.Combine("WBS", 2, ""))
	b.fixed(column.Fixed("Description"))
	b.add(column.IntegerRange("Cost", 1000, 5000))
	b.add(column.DateRange("Start", column.MustDay("2020-01-01"), column.MustDay("2020-04-21")))
	return b.done()
}

func orderColumns() ([]*column.Spec, error) {
	var b builder
	b.fixed(column.IntegerIncreasing("Order", 100000))
	b.add(column.DateIncreasing("Date", column.MustDay("2024-01-01"), 20))
	b.add(column.List("Region", []string{"North", "South", "East", "West"}))
	b.add(column.List("Channel", []string{"Web", "Store", "Phone"}))
	b.add(column.Combine("Segment", 2, "/"))
	b.add(column.IntegerRange("Quantity", 1, 50))
	b.add(column.IntegerDelta("Unit Price", 3, 2500))
	b.add(column.DateDelta("Ship By", 3, column.MustDay("2024-01-03")))
	return b.done()
}
