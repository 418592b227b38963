// Package journal appends a human-readable record of each extraction run to a
// flat file.
package journal

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"bankparse/statement-extract/internal/logging"
	"bankparse/statement-extract/internal/models"
)

// headerLayout formats the UTC timestamp of the block header.
const headerLayout = "2006-01-02 15:04:05"

// Journal writes one markdown-like block per extraction run. The file is
// append-only; prior runs are never overwritten. Appends are serialized with
// a mutex so concurrent uploads cannot interleave partial lines.
type Journal struct {
	path string
	mu   sync.Mutex
	log  logging.Logger
	now  func() time.Time
}

// New creates a Journal writing to the file at path.
func New(path string, logger logging.Logger) *Journal {
	return &Journal{path: path, log: logger, now: time.Now}
}

// Append writes a header line with the current UTC timestamp, one line per
// transaction, and a blank separator line. The file is opened and closed per
// invocation.
func (j *Journal) Append(transactions []models.Transaction) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if dir := filepath.Dir(j.path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("error creating journal directory: %w", err)
		}
	}

	file, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("error opening journal file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			j.log.WithError(err).Warn("Failed to close journal file",
				logging.Field{Key: "file", Value: j.path})
		}
	}()

	var block strings.Builder
	block.WriteString(fmt.Sprintf("### Log Date: %s\n", j.now().UTC().Format(headerLayout)))
	for _, tx := range transactions {
		block.WriteString(fmt.Sprintf("- **Date:** %s **Description:** %s **Amount:** %s **Balance:** %s\n",
			tx.Date, tx.Description, tx.Amount.StringFixed(2), tx.Balance.StringFixed(2)))
	}
	block.WriteString("\n")

	if _, err := file.WriteString(block.String()); err != nil {
		return fmt.Errorf("error writing journal block: %w", err)
	}

	j.log.Debug("Appended extraction run to journal",
		logging.Field{Key: "file", Value: j.path},
		logging.Field{Key: "count", Value: len(transactions)})
	return nil
}
