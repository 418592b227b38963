// Package common assembles the extraction pipeline for commands.
package common

import (
	"fmt"

	"bankparse/statement-extract/internal/cleaner"
	"bankparse/statement-extract/internal/config"
	"bankparse/statement-extract/internal/extractor"
	"bankparse/statement-extract/internal/logging"
	"bankparse/statement-extract/internal/pdftable"
	"bankparse/statement-extract/internal/rowparser"
)

// BuildExtractor constructs the full pipeline: description cleaner (with the
// configured phrase list, if any), row parser, PDF table source, extractor.
func BuildExtractor(cfg *config.Config, logger logging.Logger) (*extractor.Extractor, error) {
	cleanerCfg := cleaner.DefaultConfig()
	if cfg.Cleaner.PhraseFile != "" {
		phrases, err := cleaner.LoadPhrases(cfg.Cleaner.PhraseFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load phrase file: %w", err)
		}
		cleanerCfg.Phrases = phrases
		logger.Info("Loaded boilerplate phrases from file",
			logging.Field{Key: "file", Value: cfg.Cleaner.PhraseFile},
			logging.Field{Key: "count", Value: len(phrases)})
	}

	cl, err := cleaner.New(cleanerCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build description cleaner: %w", err)
	}

	parser := rowparser.New(cl, logger)
	source := pdftable.New(logger)
	return extractor.New(source, parser, logger), nil
}
