package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/datagen-cli/internal/grid"
	"github.com/KaramelBytes/datagen-cli/internal/sheet"
	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// resetFlags clears Changed state and values that persist across Execute calls.
func resetFlags(cmds ...*cobra.Command) {
	for _, c := range cmds {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(fl *pflag.Flag) {
				_ = fl.Value.Set(fl.DefValue)
				fl.Changed = false
			})
		}
	}
}

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd, generateCmd, inspectCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// runCmd is a helper to execute the root command with args and fail on error.
func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
	return out
}

// isolate points HOME at a temp dir so no user config leaks in.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestCLI_GenerateCSV(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, "out")

	out := runCmd(t, "generate", "-r", "5", "-f", "sample.csv", "-d", dir, "--seed", "42")
	path := filepath.Join(dir, "sample.csv")
	if !strings.Contains(out, "✓ Wrote 5 rows x 12 columns to "+path) {
		t.Fatalf("unexpected output: %q", out)
	}
	rows, err := sheet.ReadCSV(path)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 6 {
		t.Fatalf("want header + 5 rows, got %d", len(rows))
	}
	if rows[0][0] != "Project" || rows[0][11] != "Order" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	if rows[5][11] != "400004" {
		t.Fatalf("want last order 400004, got %s", rows[5][11])
	}
}

func TestCLI_SameSeedSameFile(t *testing.T) {
	home := isolate(t)
	runCmd(t, "generate", "-r", "20", "-f", "a.csv", "-d", home, "--seed", "7", "-p", "orders")
	runCmd(t, "generate", "-r", "20", "-f", "b.csv", "-d", home, "--seed", "7", "-p", "orders")
	a, err := os.ReadFile(filepath.Join(home, "a.csv"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(home, "b.csv"))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("same seed produced different output")
	}
}

func TestCLI_GenerateXLSXDefaultSheet(t *testing.T) {
	home := isolate(t)
	runCmd(t, "generate", "-r", "3", "-d", home, "-p", "classic")
	rows, err := sheet.ReadXLSX(filepath.Join(home, "datagen.xlsx"), sheet.DefaultSheet)
	if err != nil {
		t.Fatalf("read xlsx: %v", err)
	}
	want := []string{"Project", "Site", "WBS", "Description", "Cost", "Start"}
	if diff := cmp.Diff(want, rows[0]); diff != "" {
		t.Fatalf("header mismatch (-want +got):\n%s", diff)
	}
	if len(rows) != 4 {
		t.Fatalf("want 4 rows, got %d", len(rows))
	}
}

func TestCLI_FormatOverridesExtension(t *testing.T) {
	home := isolate(t)
	runCmd(t, "generate", "-r", "2", "-d", home, "--format", "parquet")
	if _, err := os.Stat(filepath.Join(home, "datagen.parquet")); err != nil {
		t.Fatalf("expected datagen.parquet: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "datagen.xlsx")); err == nil {
		t.Fatalf("did not expect datagen.xlsx")
	}
}

func TestCLI_RowsMustBePositive(t *testing.T) {
	home := isolate(t)
	_, err := execute(t, "generate", "-r", "0", "-d", home)
	var rce *grid.RowCountError
	if !errors.As(err, &rce) {
		t.Fatalf("want RowCountError, got %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "datagen.xlsx")); err == nil {
		t.Fatalf("no file should be written on error")
	}
}

func TestCLI_UnknownPreset(t *testing.T) {
	home := isolate(t)
	if _, err := execute(t, "generate", "-d", home, "-p", "nope"); err == nil {
		t.Fatalf("expected error for unknown preset")
	}
}

func TestCLI_ConfigSetThenGenerate(t *testing.T) {
	home := isolate(t)
	runCmd(t, "config", "set", "rows", "7")
	runCmd(t, "config", "set", "output_dir", home)
	runCmd(t, "config", "set", "format", "CSV")

	out := runCmd(t, "config", "show")
	for _, want := range []string{"rows: 7", "output_dir: " + home, "format: csv"} {
		if !strings.Contains(out, want) {
			t.Fatalf("config show missing %q:\n%s", want, out)
		}
	}

	runCmd(t, "generate")
	rows, err := sheet.ReadCSV(filepath.Join(home, "datagen.csv"))
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if len(rows) != 8 {
		t.Fatalf("want header + 7 rows, got %d", len(rows))
	}
}

func TestCLI_ConfigSetRejectsBadValues(t *testing.T) {
	isolate(t)
	for _, args := range [][]string{
		{"config", "set", "rows", "0"},
		{"config", "set", "preset", "nope"},
		{"config", "set", "format", "pdf"},
		{"config", "set", "seed", "-1"},
		{"config", "set", "colour", "blue"},
	} {
		if _, err := execute(t, args...); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestCLI_PresetsListing(t *testing.T) {
	isolate(t)
	out := runCmd(t, "presets")
	for _, want := range []string{"* project:", "  classic:", "  orders:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("presets output missing %q:\n%s", want, out)
		}
	}
	out = runCmd(t, "presets", "project")
	for _, want := range []string{"WBS", "combine", "Priority Text", "dictionary"} {
		if !strings.Contains(out, want) {
			t.Fatalf("preset detail missing %q:\n%s", want, out)
		}
	}
}

func TestCLI_Inspect(t *testing.T) {
	home := isolate(t)
	runCmd(t, "generate", "-r", "3", "-d", home, "--seed", "1")
	out := runCmd(t, "inspect", filepath.Join(home, "datagen.xlsx"), "-n", "1")
	if !strings.Contains(out, "... 2 more rows") {
		t.Fatalf("expected truncation note:\n%s", out)
	}
	if !strings.Contains(out, "✓ 3 data rows, 12 columns") {
		t.Fatalf("unexpected inspect summary:\n%s", out)
	}

	out = runCmd(t, "inspect", filepath.Join(home, "datagen.xlsx"), "--stats")
	for _, want := range []string{"[SCHEMA]", "- Order: numeric", "- Start: date"} {
		if !strings.Contains(out, want) {
			t.Fatalf("stats missing %q:\n%s", want, out)
		}
	}
}
