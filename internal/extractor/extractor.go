// Package extractor runs the full transaction extraction pass over a document.
package extractor

import (
	"sort"
	"time"

	"bankparse/statement-extract/internal/logging"
	"bankparse/statement-extract/internal/models"
	"bankparse/statement-extract/internal/rowparser"
)

// TableSource yields the raw tables of a document. PDF decoding and table
// geometry detection live behind this interface so the parsing pipeline is
// testable without PDF fixtures.
type TableSource interface {
	// Tables returns zero or more tables for the document at path, in page
	// order. Rows and columns that are entirely empty are already dropped.
	Tables(path string) ([]models.Table, error)
}

// Extractor applies the row parser to every row of every table and collects
// the results sorted by date descending.
type Extractor struct {
	source TableSource
	parser *rowparser.Parser
	log    logging.Logger
}

// New creates an Extractor reading tables from source.
func New(source TableSource, parser *rowparser.Parser, logger logging.Logger) *Extractor {
	return &Extractor{source: source, parser: parser, log: logger}
}

// Extract parses every table row of the document at path. Malformed rows are
// logged and skipped; they never abort the batch. A document with no
// extractable tables yields an empty list, not an error.
func (e *Extractor) Extract(path string) ([]models.Transaction, error) {
	tables, err := e.source.Tables(path)
	if err != nil {
		return nil, err
	}

	transactions := []models.Transaction{}
	for _, table := range tables {
		for _, row := range table {
			tx, err := e.parser.Parse(row)
			if err != nil {
				e.log.WithError(err).Warn("Error parsing transaction")
				continue
			}
			if tx == nil {
				continue
			}
			transactions = append(transactions, *tx)
		}
	}

	sortByDateDesc(transactions, e.log)

	e.log.Info("Extracted transactions",
		logging.Field{Key: "count", Value: len(transactions)},
		logging.Field{Key: "file", Value: path})
	return transactions, nil
}

// sortByDateDesc orders transactions newest first. The sort is stable so rows
// sharing a date keep their original traversal order, making output
// deterministic across runs. Dates that fail to parse sort last.
func sortByDateDesc(transactions []models.Transaction, log logging.Logger) {
	keys := make([]time.Time, len(transactions))
	for i, tx := range transactions {
		t, err := models.ParseDate(tx.Date)
		if err != nil {
			log.WithError(err).Debug("Unparseable transaction date, sorting last",
				logging.Field{Key: "date", Value: tx.Date})
		}
		keys[i] = t
	}

	// Sort indices, then rebuild, so the precomputed keys stay aligned.
	order := make([]int, len(transactions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return keys[order[a]].After(keys[order[b]])
	})

	sorted := make([]models.Transaction, len(transactions))
	for i, idx := range order {
		sorted[i] = transactions[idx]
	}
	copy(transactions, sorted)
}
