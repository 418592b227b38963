package pdftable

import (
	"errors"
	"testing"

	"github.com/dslipak/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankparse/statement-extract/internal/models"
)

// text builds a positioned fragment the way GetTextByRow yields them.
func text(s string, x, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w}
}

// row wraps fragments into a pdf.Row at the given vertical position.
func row(position int64, texts ...pdf.Text) *pdf.Row {
	return &pdf.Row{Position: position, Content: texts}
}

func TestBuildTableMapsCellsToHeaders(t *testing.T) {
	rows := pdf.Rows{
		row(800, text("Statement", 50, 45), text("of", 98, 10), text("Account", 111, 38)),
		row(760, text("Date", 50, 20), text("Description", 200, 55), text("Amount", 400, 36)),
		row(740,
			text("30", 50, 12), text("JAN", 65, 18), text("24", 86, 12), text("COFFEE", 101, 36),
			text("IN STORE", 200, 44),
			text("150.00", 400, 32)),
	}

	table := buildTable(rows)
	require.Len(t, table, 1)

	assert.Equal(t, models.RawRow{
		"Date":        "30 JAN 24 COFFEE",
		"Description": "IN STORE",
		"Amount":      "150.00",
	}, table[0])
}

func TestBuildTableWithoutHeaderRow(t *testing.T) {
	rows := pdf.Rows{
		row(800, text("Just", 50, 20), text("prose", 75, 25)),
		row(760, text("no", 50, 12), text("table", 66, 25), text("here", 95, 22)),
	}

	assert.Nil(t, buildTable(rows))
}

func TestBuildTableDropsEmptyRows(t *testing.T) {
	rows := pdf.Rows{
		row(800, text("Date", 50, 20), text("Description", 200, 55)),
		row(780, text("  ", 50, 5)),
		row(760, text("30 JAN 24 RENT 500.00", 50, 120)),
	}

	table := buildTable(rows)
	require.Len(t, table, 1)
	assert.Equal(t, "30 JAN 24 RENT 500.00", table[0]["Date"])
}

func TestGroupCellsSplitsOnGaps(t *testing.T) {
	cells := groupCells([]pdf.Text{
		text("Date", 50, 20),
		// Close fragments merge into one cell.
		text("Value", 200, 26),
		text("Date", 229, 20),
		// A wide gap starts a new cell.
		text("Amount", 400, 36),
	})

	require.Len(t, cells, 3)
	assert.Equal(t, "Date", cells[0].name)
	assert.Equal(t, "Value Date", cells[1].name)
	assert.Equal(t, "Amount", cells[2].name)
	assert.Equal(t, 50.0, cells[0].x)
	assert.Equal(t, 400.0, cells[2].x)
}

func TestAssignCellsTolerance(t *testing.T) {
	columns := []column{{name: "Date", x: 50}, {name: "Amount", x: 400}}

	// Slightly left of the Amount header still lands in Amount.
	raw := assignCells(columns, []pdf.Text{
		text("30 JAN 24", 50, 48),
		text("150.00", 396, 32),
	})

	assert.Equal(t, models.RawRow{"Date": "30 JAN 24", "Amount": "150.00"}, raw)
}

func TestAssignCellsEmpty(t *testing.T) {
	columns := []column{{name: "Date", x: 50}}
	assert.Nil(t, assignCells(columns, nil))
	assert.Nil(t, assignCells(columns, []pdf.Text{text("   ", 50, 10)}))
}

func TestMockSource(t *testing.T) {
	tables := []models.Table{{{"Date": "30 JAN 24 X 1.00 2.00"}}}
	src := NewMockSource(tables, nil)

	got, err := src.Tables("anything.pdf")
	require.NoError(t, err)
	assert.Equal(t, tables, got)

	src = NewMockSource(nil, errors.New("boom"))
	_, err = src.Tables("anything.pdf")
	assert.Error(t, err)
}
