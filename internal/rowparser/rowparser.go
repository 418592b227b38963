// Package rowparser turns raw statement table rows into transactions.
package rowparser

import (
	"regexp"
	"strings"

	"bankparse/statement-extract/internal/cleaner"
	"bankparse/statement-extract/internal/logging"
	"bankparse/statement-extract/internal/models"
	"bankparse/statement-extract/internal/parsererror"
)

// OpeningBalanceMarker identifies the statement's starting-balance row, which
// is not an actual transaction and is always filtered out.
const OpeningBalanceMarker = "STATEMENT OPENING BALANCE"

// numericPattern matches a signed decimal token with 0-2 fraction digits,
// evaluated after thousands-separator commas are stripped.
var numericPattern = regexp.MustCompile(`^-?\d+(\.\d{1,2})?$`)

// Parser parses one raw table row into a Transaction.
type Parser struct {
	cleaner *cleaner.Cleaner
	log     logging.Logger
}

// New creates a Parser using the given description cleaner and logger.
func New(c *cleaner.Cleaner, logger logging.Logger) *Parser {
	return &Parser{cleaner: c, log: logger}
}

// Parse splits a row's composite Date cell into date, description, amount,
// and balance. It returns (nil, nil) for the opening-balance row and a
// *parsererror.RowError for rows that cannot be parsed; neither outcome is
// fatal to the surrounding batch.
//
// The Date cell has the shape "DD MMM YY <free text and numbers>". The first
// three whitespace tokens form the date. Within the cleaned remainder, the
// first token matching the signed-decimal pattern becomes the amount and the
// second the balance; any further numeric tokens are dropped from the
// description but not captured as fields.
func (p *Parser) Parse(row models.RawRow) (*models.Transaction, error) {
	dateCell, ok := row["Date"]
	if !ok {
		return nil, &parsererror.RowError{
			Field:  "Date",
			Reason: "missing Date column",
		}
	}

	// Intentional filter, not an error.
	if strings.Contains(dateCell, OpeningBalanceMarker) {
		p.log.Debug("Skipping opening balance row")
		return nil, nil
	}

	parts := strings.Fields(dateCell)
	if len(parts) < 3 {
		return nil, &parsererror.RowError{
			Field:  "Date",
			Value:  dateCell,
			Reason: "invalid date format: need at least 3 tokens",
		}
	}

	dateStr := strings.Join(parts[:3], " ")
	description := p.cleaner.Clean(strings.Join(parts[3:], " "))

	var amountRaw, balanceRaw string
	var kept []string
	for _, token := range strings.Fields(description) {
		normalized := strings.ReplaceAll(token, ",", "")
		if !numericPattern.MatchString(normalized) {
			kept = append(kept, token)
			continue
		}
		switch {
		case amountRaw == "":
			amountRaw = normalized
		case balanceRaw == "":
			balanceRaw = normalized
		default:
			// Third and later numeric tokens are excluded from the
			// description without being assigned to any field.
			p.log.Debug("Dropping extra numeric token",
				logging.Field{Key: "token", Value: token},
				logging.Field{Key: "date", Value: dateStr})
		}
	}

	description = strings.Join(kept, " ")
	if description == "" {
		if fallback := row["Description"]; fallback != "" {
			description = fallback
		} else {
			description = "N/A"
		}
	}

	return &models.Transaction{
		Date:        dateStr,
		Description: description,
		Amount:      models.ParseAmount(amountRaw),
		Balance:     models.ParseAmount(balanceRaw),
	}, nil
}
