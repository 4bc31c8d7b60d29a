package analysis

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// Column kinds inferred from cell text.
const (
	KindNumeric     = "numeric"
	KindDate        = "date"
	KindCategorical = "categorical"
	KindText        = "text"
	KindEmpty       = "empty"
)

// Report is a markdown-friendly profile of a generated table.
type Report struct {
	Name string
	Rows int
	Cols []ColumnSummary
}

// ColumnSummary captures inferred type and statistics per column.
type ColumnSummary struct {
	Name    string
	Kind    string
	NonNull int
	Missing int
	Unique  int
	// Numeric stats
	Min  float64
	Max  float64
	Mean float64
	// Date span
	First time.Time
	Last  time.Time
	// Categorical top values
	TopValues []CategoryCount
}

type CategoryCount struct {
	Value string
	Count int
}

// topN caps the categorical values kept per column.
const topN = 5

// Profile summarizes rows whose first row is the header.
func Profile(name string, rows [][]string) *Report {
	r := &Report{Name: name}
	if len(rows) == 0 {
		return r
	}
	header, data := rows[0], rows[1:]
	r.Rows = len(data)
	for j, h := range header {
		cells := make([]string, 0, len(data))
		for _, row := range data {
			if j < len(row) {
				cells = append(cells, strings.TrimSpace(row[j]))
			} else {
				cells = append(cells, "")
			}
		}
		r.Cols = append(r.Cols, summarize(h, cells))
	}
	return r
}

func summarize(name string, cells []string) ColumnSummary {
	s := ColumnSummary{Name: name}
	counts := map[string]int{}
	nums := make([]float64, 0, len(cells))
	dates := make([]time.Time, 0, len(cells))
	for _, v := range cells {
		if v == "" {
			s.Missing++
			continue
		}
		s.NonNull++
		counts[v]++
		if x, err := strconv.ParseFloat(v, 64); err == nil {
			nums = append(nums, x)
		}
		if t, err := time.Parse("2006-01-02", v); err == nil {
			dates = append(dates, t)
		}
	}
	s.Unique = len(counts)

	switch {
	case s.NonNull == 0:
		s.Kind = KindEmpty
	case len(nums) == s.NonNull:
		s.Kind = KindNumeric
		s.Min, s.Max = math.Inf(1), math.Inf(-1)
		var sum float64
		for _, x := range nums {
			s.Min = math.Min(s.Min, x)
			s.Max = math.Max(s.Max, x)
			sum += x
		}
		s.Mean = sum / float64(len(nums))
	case len(dates) == s.NonNull:
		s.Kind = KindDate
		s.First, s.Last = dates[0], dates[0]
		for _, t := range dates[1:] {
			if t.Before(s.First) {
				s.First = t
			}
			if t.After(s.Last) {
				s.Last = t
			}
		}
	case s.Unique < s.NonNull && s.Unique <= max(topN*2, s.NonNull/2):
		s.Kind = KindCategorical
		s.TopValues = topValues(counts)
	default:
		s.Kind = KindText
	}
	return s
}

func topValues(counts map[string]int) []CategoryCount {
	tops := make([]CategoryCount, 0, len(counts))
	for k, v := range counts {
		tops = append(tops, CategoryCount{Value: k, Count: v})
	}
	sort.Slice(tops, func(i, j int) bool {
		if tops[i].Count == tops[j].Count {
			return tops[i].Value < tops[j].Value
		}
		return tops[i].Count > tops[j].Count
	})
	if len(tops) > topN {
		tops = tops[:topN]
	}
	return tops
}

// Markdown renders the report as a compact schema listing.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Cols)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Cols {
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, unique %d)", c.Name, c.Kind, c.NonNull, c.Unique))
		switch c.Kind {
		case KindNumeric:
			b.WriteString(fmt.Sprintf(": min %.6g, max %.6g, mean %.6g", c.Min, c.Max, c.Mean))
		case KindDate:
			b.WriteString(fmt.Sprintf(": %s to %s", c.First.Format("2006-01-02"), c.Last.Format("2006-01-02")))
		case KindCategorical:
			b.WriteString(": top ")
			for i, kv := range c.TopValues {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(fmt.Sprintf("%s(%d)", kv.Value, kv.Count))
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
