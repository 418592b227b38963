// Package serve runs the HTTP upload service
package serve

import (
	"github.com/spf13/cobra"

	cmdcommon "bankparse/statement-extract/cmd/common"
	"bankparse/statement-extract/cmd/root"
	"bankparse/statement-extract/internal/journal"
	"bankparse/statement-extract/internal/server"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the statement upload HTTP service",
	Long: `Start an HTTP server exposing POST /upload. Each uploaded PDF statement is
parsed synchronously and the normalized transactions are returned as JSON.`,
	Run: serveFunc,
}

func serveFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()
	root.Log.Info("Serve command called")

	ext, err := cmdcommon.BuildExtractor(root.Cfg, logger)
	if err != nil {
		root.Log.Fatalf("Error building extraction pipeline: %v", err)
	}

	jrnl := journal.New(root.Cfg.Journal.Path, logger)
	srv := server.New(root.Cfg, ext, jrnl, logger)

	if err := srv.ListenAndServe(); err != nil {
		root.Log.Fatalf("HTTP server failed: %v", err)
	}
}
