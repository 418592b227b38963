// Package models provides the data structures shared by the extraction pipeline.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the statement date format (e.g. "30 Jan 24"). Month matching
// in time.Parse is case-insensitive, so the uppercase "30 JAN 24" cells found
// in statements parse with the same layout.
const DateLayout = "02 Jan 06"

func init() {
	// The client-facing JSON shape carries Amount and Balance as bare numbers.
	decimal.MarshalJSONWithoutQuotes = true
}

// RawRow is a single table row as produced by PDF table extraction: a mapping
// from column header to cell text, prior to any parsing.
type RawRow map[string]string

// Table is an ordered sequence of raw rows from one extracted table.
type Table []RawRow

// Transaction represents one normalized bank-statement entry.
type Transaction struct {
	Date        string          `json:"Date" csv:"Date"`               // DD MMM YY, verbatim from the statement
	Description string          `json:"Description" csv:"Description"` // cleaned free text
	Amount      decimal.Decimal `json:"Amount" csv:"Amount"`
	Balance     decimal.Decimal `json:"Balance" csv:"Balance"`
}

// ParseDate parses a statement date string in the DD MMM YY layout.
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse(DateLayout, strings.TrimSpace(dateStr))
}

// ParseAmount converts a raw numeric token to a decimal value. Thousands
// separators are stripped before conversion. Absent or unparseable values
// default to zero rather than failing the row.
func ParseAmount(amountStr string) decimal.Decimal {
	amount := strings.TrimSpace(amountStr)
	amount = strings.ReplaceAll(amount, ",", "")
	if amount == "" {
		return decimal.Zero
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero
	}
	return dec
}
