package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/datagen-cli/internal/grid"
	"github.com/KaramelBytes/datagen-cli/internal/utils"
	"github.com/sirupsen/logrus"
)

// DefaultSheet is the worksheet name used when none is configured.
const DefaultSheet = "Data"

// Writer renders a grid into one persisted tabular format.
// Date cells must go through the format's date-aware path.
type Writer interface {
	Name() string
	CanWrite(filename string) bool
	Write(w io.Writer, g *grid.Grid, opt Options) error
}

// Options carries the rendering details that do not belong to the grid itself.
type Options struct {
	Sheet  string
	Title  string
	RunID  string
	Logger logrus.FieldLogger
}

func (o Options) sheet() string {
	if o.Sheet == "" {
		return DefaultSheet
	}
	return o.Sheet
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		return l
	}
	return o.Logger
}

// ErrUnsupported indicates no writer handles the requested format.
var ErrUnsupported = errors.New("unsupported output format")

var registry []Writer

// Register adds a writer implementation to the registry.
func Register(w Writer) {
	registry = append(registry, w)
}

// Formats lists the registered format names in registration order.
func Formats() []string {
	out := make([]string, 0, len(registry))
	for _, w := range registry {
		out = append(out, w.Name())
	}
	return out
}

// Lookup returns the writer registered under format.
func Lookup(format string) (Writer, error) {
	f := strings.ToLower(strings.TrimPrefix(strings.TrimSpace(format), "."))
	for _, w := range registry {
		if w.Name() == f {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnsupported, format, strings.Join(Formats(), ", "))
}

// ForFile selects a writer from the filename extension.
func ForFile(path string) (Writer, error) {
	for _, w := range registry {
		if w.CanWrite(path) {
			return w, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnsupported, filepath.Ext(path), strings.Join(Formats(), ", "))
}

// WriteFile renders g with the writer for format (or, when format is empty,
// the writer matching path's extension) and writes it atomically to path.
func WriteFile(path, format string, g *grid.Grid, opt Options) error {
	var (
		w   Writer
		err error
	)
	if format != "" {
		w, err = Lookup(format)
	} else {
		w, err = ForFile(path)
	}
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := w.Write(&buf, g, opt); err != nil {
		return fmt.Errorf("render %s: %w", w.Name(), err)
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return err
	}
	opt.logger().WithFields(logrus.Fields{
		"path":   path,
		"format": w.Name(),
		"bytes":  buf.Len(),
		"run_id": opt.RunID,
	}).Debug("sheet written")
	return nil
}

func hasExt(filename string, exts ...string) bool {
	name := strings.ToLower(filename)
	for _, e := range exts {
		if strings.HasSuffix(name, e) {
			return true
		}
	}
	return false
}

func init() {
	Register(xlsxWriter{})
	Register(csvWriter{})
	Register(parquetWriter{})
}
