// Package pdftable extracts raw statement tables from PDF documents.
//
// It implements the extractor.TableSource boundary: PDF decoding and table
// geometry detection happen here, and the parsing pipeline only ever sees
// ordered rows of header-to-cell mappings.
package pdftable

import (
	"strings"

	"github.com/dslipak/pdf"

	"bankparse/statement-extract/internal/logging"
	"bankparse/statement-extract/internal/models"
	"bankparse/statement-extract/internal/parsererror"
)

// colGap is the minimum horizontal gap (in PDF points) between text fragments
// for them to be treated as separate header cells.
const colGap = 12.0

// colTolerance allows body cell text to start slightly left of its column's
// header, which happens with ragged table layouts.
const colTolerance = 6.0

// Source reads tables from PDF files using text positions: the first row of a
// page containing a "Date" header defines the columns, and subsequent row
// text is assigned to columns by X coordinate.
type Source struct {
	log logging.Logger
}

// New creates a PDF-backed table source.
func New(logger logging.Logger) *Source {
	return &Source{log: logger}
}

// Tables returns at most one table per page, in page order. Pages without a
// recognizable header row contribute nothing. Rows whose cells are all empty
// are dropped before they reach the parser.
func (s *Source) Tables(path string) ([]models.Table, error) {
	reader, err := pdf.Open(path)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "PDF",
			Msg:            "file is not a valid PDF",
		}
	}

	var tables []models.Table
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		rows, err := page.GetTextByRow()
		if err != nil {
			s.log.WithError(err).Warn("Failed to read text rows from page",
				logging.Field{Key: "page", Value: pageNum})
			continue
		}

		table := buildTable(rows)
		if len(table) > 0 {
			tables = append(tables, table)
		}
	}

	s.log.Debug("Extracted tables from PDF",
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "tables", Value: len(tables)})
	return tables, nil
}

// column describes one table column by its header label and the X coordinate
// where the header cell starts.
type column struct {
	name string
	x    float64
}

// buildTable locates the header row and maps every later row's text to
// columns by position.
func buildTable(rows pdf.Rows) models.Table {
	headerIdx := -1
	var columns []column
	for i, row := range rows {
		cols := groupCells(row.Content)
		if containsHeader(cols, "Date") {
			headerIdx = i
			columns = cols
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	var table models.Table
	for _, row := range rows[headerIdx+1:] {
		raw := assignCells(columns, row.Content)
		if len(raw) > 0 {
			table = append(table, raw)
		}
	}
	return table
}

// groupCells splits one text row into cells on horizontal gaps.
func groupCells(texts []pdf.Text) []column {
	var cells []column
	var current strings.Builder
	var startX, lastEnd float64

	flush := func() {
		name := strings.TrimSpace(current.String())
		if name != "" {
			cells = append(cells, column{name: name, x: startX})
		}
		current.Reset()
	}

	for i, t := range texts {
		if i == 0 {
			startX = t.X
		} else if t.X-lastEnd > colGap {
			flush()
			startX = t.X
		} else if current.Len() > 0 && t.X > lastEnd {
			current.WriteString(" ")
		}
		current.WriteString(t.S)
		lastEnd = t.X + t.W
	}
	flush()
	return cells
}

// containsHeader reports whether any cell label equals name.
func containsHeader(cells []column, name string) bool {
	for _, c := range cells {
		if c.name == name {
			return true
		}
	}
	return false
}

// assignCells distributes a body row's text fragments to the columns defined
// by the header. Each fragment goes to the rightmost column starting at or
// left of the fragment, within tolerance. Empty cells are omitted from the
// row so fully empty columns never appear.
func assignCells(columns []column, texts []pdf.Text) models.RawRow {
	if len(texts) == 0 {
		return nil
	}

	cells := make([]strings.Builder, len(columns))
	for _, t := range texts {
		idx := 0
		for i, c := range columns {
			if c.x <= t.X+colTolerance {
				idx = i
			}
		}
		if cells[idx].Len() > 0 {
			cells[idx].WriteString(" ")
		}
		cells[idx].WriteString(t.S)
	}

	row := models.RawRow{}
	for i, b := range cells {
		if value := strings.TrimSpace(b.String()); value != "" {
			row[columns[i].name] = value
		}
	}
	if len(row) == 0 {
		return nil
	}
	return row
}
