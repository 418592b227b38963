// Package extract handles one-shot PDF statement conversion commands
package extract

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	cmdcommon "bankparse/statement-extract/cmd/common"
	"bankparse/statement-extract/cmd/root"
	"bankparse/statement-extract/internal/common"
	"bankparse/statement-extract/internal/fileutils"
)

var format string

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract transactions from a PDF statement",
	Long: `Extract transactions from a bank-statement PDF on disk and write them to a
CSV or JSON file.`,
	Run: extractFunc,
}

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "csv", "Output format: csv or json")
}

func extractFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	root.Log.Info("Extract command called")
	root.Log.Infof("Input file: %s", root.SharedFlags.Input)
	root.Log.Infof("Output file: %s", root.SharedFlags.Output)

	if root.SharedFlags.Input == "" || root.SharedFlags.Output == "" {
		root.Log.Fatal("Both --input and --output are required")
	}
	if !fileutils.FileExists(root.SharedFlags.Input) {
		root.Log.Fatalf("Input file does not exist: %s", root.SharedFlags.Input)
	}

	ext, err := cmdcommon.BuildExtractor(root.Cfg, logger)
	if err != nil {
		root.Log.Fatalf("Error building extraction pipeline: %v", err)
	}

	transactions, err := ext.Extract(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error extracting transactions: %v", err)
	}

	switch strings.ToLower(format) {
	case "csv":
		if err := common.WriteTransactionsToCSV(transactions, root.SharedFlags.Output, logger); err != nil {
			root.Log.Fatalf("Error writing CSV: %v", err)
		}
	case "json":
		data, err := json.MarshalIndent(transactions, "", "  ")
		if err != nil {
			root.Log.Fatalf("Error encoding JSON: %v", err)
		}
		if err := os.WriteFile(root.SharedFlags.Output, data, 0600); err != nil {
			root.Log.Fatalf("Error writing JSON file: %v", err)
		}
	default:
		root.Log.Fatalf("Unknown output format: %s (must be csv or json)", format)
	}

	root.Log.Infof("Extracted %d transactions successfully!", len(transactions))
}
