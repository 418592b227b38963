package journal

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankparse/statement-extract/internal/logging"
	"bankparse/statement-extract/internal/models"
)

var headerRE = regexp.MustCompile(`^### Log Date: \d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{Date: "30 JAN 24", Description: "COFFEE SHOP", Amount: models.ParseAmount("150.00"), Balance: models.ParseAmount("2450.75")},
		{Date: "29 JAN 24", Description: "N/A", Amount: models.ParseAmount(""), Balance: models.ParseAmount("")},
	}
}

func TestAppendWritesOneBlock(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transaction_log.md")
	j := New(path, logging.NewMockLogger())
	j.now = func() time.Time { return time.Date(2024, 1, 30, 17, 11, 1, 0, time.UTC) }

	require.NoError(t, j.Append(sampleTransactions()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	// Header, two body lines, blank separator, trailing empty split element.
	require.Len(t, lines, 5)
	assert.Equal(t, "### Log Date: 2024-01-30 17:11:01", lines[0])
	assert.Equal(t, "- **Date:** 30 JAN 24 **Description:** COFFEE SHOP **Amount:** 150.00 **Balance:** 2450.75", lines[1])
	assert.Equal(t, "- **Date:** 29 JAN 24 **Description:** N/A **Amount:** 0.00 **Balance:** 0.00", lines[2])
	assert.Empty(t, lines[3])
	assert.Empty(t, lines[4])
}

func TestAppendNeverTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transaction_log.md")
	j := New(path, logging.NewMockLogger())

	require.NoError(t, j.Append(sampleTransactions()))
	require.NoError(t, j.Append(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	content := string(data)
	assert.Equal(t, 2, strings.Count(content, "### Log Date:"))
	assert.Contains(t, content, "COFFEE SHOP")

	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(line, "### Log Date:") {
			assert.True(t, headerRE.MatchString(line), "malformed header: %q", line)
		}
	}
}

func TestAppendEmptyRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transaction_log.md")
	j := New(path, logging.NewMockLogger())

	require.NoError(t, j.Append(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 3)
	assert.True(t, headerRE.MatchString(lines[0]))
	assert.Empty(t, lines[1])
}

func TestAppendCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "transaction_log.md")
	j := New(path, logging.NewMockLogger())

	require.NoError(t, j.Append(sampleTransactions()))
	assert.FileExists(t, path)
}

func TestConcurrentAppendsDoNotInterleave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transaction_log.md")
	j := New(path, logging.NewMockLogger())

	const runs = 20
	var wg sync.WaitGroup
	for i := 0; i < runs; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, j.Append(sampleTransactions()))
		}()
	}
	wg.Wait()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// Every block is well formed: header, body lines, blank separator.
	content := string(data)
	assert.Equal(t, runs, strings.Count(content, "### Log Date:"))
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		if line == "" {
			continue
		}
		wellFormed := headerRE.MatchString(line) || strings.HasPrefix(line, "- **Date:** ")
		assert.True(t, wellFormed, "interleaved or partial line: %q", line)
	}
}
