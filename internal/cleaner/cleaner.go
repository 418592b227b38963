// Package cleaner strips bank-generated noise out of transaction descriptions.
package cleaner

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Default patterns for the statement layout this extractor targets.
const (
	// DefaultTimestampPattern matches embedded timestamps like "17H11:01".
	DefaultTimestampPattern = `\b\d{2}H\d{2}:\d{2}\b`
	// DefaultDateFragmentPattern matches stray day-month fragments like "30 JAN".
	DefaultDateFragmentPattern = `\b\d{2} [A-Z]{3}\b`
)

// DefaultPhrases is the boilerplate known to be bank-generated noise.
// Matching is exact-substring and case-sensitive.
var DefaultPhrases = []string{
	"CHEQUE CARD PURCHASE",
	"OUTSTANDING CARD AUTHORISATION",
	"IB TRANSFER FROM",
	"IB PAYMENT TO",
	"PENSION",
	"MONTHLY MANAGEMENT FEE",
	"MAGTAPE CREDIT",
}

// Config holds the immutable cleaning rules for one statement format.
// Passing it in rather than relying on package globals keeps per-bank
// configuration possible without shared mutable state.
type Config struct {
	Phrases             []string
	TimestampPattern    string
	DateFragmentPattern string
}

// DefaultConfig returns the built-in rules for the supported statement layout.
func DefaultConfig() Config {
	return Config{
		Phrases:             DefaultPhrases,
		TimestampPattern:    DefaultTimestampPattern,
		DateFragmentPattern: DefaultDateFragmentPattern,
	}
}

// Cleaner removes timestamps, boilerplate phrases, and residual date tokens
// from free-text transaction descriptions.
type Cleaner struct {
	phrases     []string
	timestampRE *regexp.Regexp
	dateFragRE  *regexp.Regexp
}

// New compiles the configured patterns into a Cleaner. Empty pattern fields
// fall back to the defaults.
func New(cfg Config) (*Cleaner, error) {
	tsPattern := cfg.TimestampPattern
	if tsPattern == "" {
		tsPattern = DefaultTimestampPattern
	}
	dfPattern := cfg.DateFragmentPattern
	if dfPattern == "" {
		dfPattern = DefaultDateFragmentPattern
	}

	tsRE, err := regexp.Compile(tsPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp pattern %q: %w", tsPattern, err)
	}
	dfRE, err := regexp.Compile(dfPattern)
	if err != nil {
		return nil, fmt.Errorf("invalid date fragment pattern %q: %w", dfPattern, err)
	}

	phrases := cfg.Phrases
	if phrases == nil {
		phrases = DefaultPhrases
	}

	return &Cleaner{
		phrases:     append([]string{}, phrases...),
		timestampRE: tsRE,
		dateFragRE:  dfRE,
	}, nil
}

// Clean removes embedded timestamps, every occurrence of each boilerplate
// phrase, stray day-month date fragments, and redundant whitespace.
// It is a pure function and idempotent: cleaning already-cleaned text
// returns it unchanged.
func (c *Cleaner) Clean(text string) string {
	text = c.timestampRE.ReplaceAllString(text, "")

	for _, phrase := range c.phrases {
		text = strings.ReplaceAll(text, phrase, "")
	}

	text = c.dateFragRE.ReplaceAllString(text, "")

	return strings.Join(strings.Fields(text), " ")
}

// phraseFile is the YAML shape for an external phrase list.
type phraseFile struct {
	Phrases []string `yaml:"phrases"`
}

// LoadPhrases reads a boilerplate phrase list from a YAML file of the form:
//
//	phrases:
//	  - "CHEQUE CARD PURCHASE"
//	  - "PENSION"
func LoadPhrases(path string) ([]string, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("error reading phrase file: %w", err)
	}

	var pf phraseFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("error parsing phrase file %s: %w", path, err)
	}
	if len(pf.Phrases) == 0 {
		return nil, fmt.Errorf("phrase file %s contains no phrases", path)
	}

	return pf.Phrases, nil
}
