package sheet

import (
	"fmt"
	"io"

	"github.com/KaramelBytes/datagen-cli/internal/column"
	"github.com/KaramelBytes/datagen-cli/internal/grid"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet"
	"github.com/apache/arrow-go/v18/parquet/compress"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"
)

// RunIDKey is the schema metadata key holding the generation run ID.
const RunIDKey = "datagen.run_id"

type parquetWriter struct{}

func (parquetWriter) Name() string { return "parquet" }

func (parquetWriter) CanWrite(filename string) bool { return hasExt(filename, ".parquet") }

// Write stores the header row as field names and the data rows as one record batch.
func (parquetWriter) Write(w io.Writer, g *grid.Grid, opt Options) error {
	schema := parquetSchema(g, opt.RunID)

	b := array.NewRecordBuilder(memory.DefaultAllocator, schema)
	defer b.Release()
	for c := 0; c < g.Columns(); c++ {
		fb := b.Field(c)
		for _, v := range g.Column(c) {
			switch bld := fb.(type) {
			case *array.Int64Builder:
				bld.Append(v.I)
			case *array.Date32Builder:
				bld.Append(arrow.Date32FromTime(v.D))
			case *array.StringBuilder:
				bld.Append(v.String())
			default:
				return fmt.Errorf("column %d: unexpected builder %T", c, fb)
			}
		}
	}
	rec := b.NewRecord()
	defer rec.Release()

	props := parquet.NewWriterProperties(parquet.WithCompression(compress.Codecs.Snappy))
	arrowProps := pqarrow.NewArrowWriterProperties(pqarrow.WithStoreSchema())
	pw, err := pqarrow.NewFileWriter(schema, w, props, arrowProps)
	if err != nil {
		return fmt.Errorf("create parquet writer: %w", err)
	}
	if err := pw.Write(rec); err != nil {
		_ = pw.Close()
		return fmt.Errorf("write record: %w", err)
	}
	if err := pw.Close(); err != nil {
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return nil
}

// parquetSchema types each field from its data cells; mixed columns become strings.
func parquetSchema(g *grid.Grid, runID string) *arrow.Schema {
	fields := make([]arrow.Field, g.Columns())
	header := g.Header()
	for c := range fields {
		fields[c] = arrow.Field{Name: header[c], Type: columnType(g.Column(c))}
	}
	md := arrow.NewMetadata([]string{RunIDKey}, []string{runID})
	return arrow.NewSchema(fields, &md)
}

func columnType(cells []column.Value) arrow.DataType {
	if len(cells) == 0 {
		return arrow.BinaryTypes.String
	}
	t := cells[0].Type
	for _, v := range cells[1:] {
		if v.Type != t {
			return arrow.BinaryTypes.String
		}
	}
	switch t {
	case column.TypeInt:
		return arrow.PrimitiveTypes.Int64
	case column.TypeDate:
		return arrow.FixedWidthTypes.Date32
	default:
		return arrow.BinaryTypes.String
	}
}
