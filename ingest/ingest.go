// Package ingest decodes uploaded order-export files into the row maps the
// classification engine consumes. The engine is agnostic to the source
// format; everything format-specific lives here.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"orderdash/models"
)

// ErrUnsupportedFormat reports an upload with a file extension the decoder
// does not handle.
var ErrUnsupportedFormat = fmt.Errorf("unsupported file format")

// DecodeFile decodes an uploaded export by extension: .csv, or .xlsx/.xlsm
// via excelize. The first row is the header; each following row becomes a
// header->cell map.
func DecodeFile(filename string, r io.Reader) ([]models.Row, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return DecodeCSV(r)
	case ".xlsx", ".xlsm":
		return DecodeXLSX(r)
	default:
		return nil, ErrUnsupportedFormat
	}
}

// DecodeCSV reads a headed CSV stream into rows.
func DecodeCSV(r io.Reader) ([]models.Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // exports pad rows unevenly

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	var rows []models.Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv record: %w", err)
		}
		rows = append(rows, rowFromRecord(header, record))
	}
	return rows, nil
}

// DecodeXLSX reads the first sheet of an XLSX workbook into rows.
func DecodeXLSX(r io.Reader) ([]models.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}
	if len(cells) == 0 {
		return nil, nil
	}

	header := cells[0]
	var rows []models.Row
	for _, record := range cells[1:] {
		row := rowFromRecord(header, record)
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// rowFromRecord zips a header with one record. excelize trims trailing
// empty cells, so records may be shorter than the header; missing and
// empty cells are omitted from the map.
func rowFromRecord(header, record []string) models.Row {
	row := make(models.Row, len(header))
	for i, col := range header {
		if col == "" || i >= len(record) {
			continue
		}
		if record[i] == "" {
			continue
		}
		row[col] = record[i]
	}
	return row
}
