// Package main provides the entry point for the statement-extract CLI application.
package main

import (
	"os"

	"bankparse/statement-extract/cmd/extract"
	"bankparse/statement-extract/cmd/root"
	"bankparse/statement-extract/cmd/serve"
)

func main() {
	root.Init()
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(serve.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		root.Log.Error(err)
		os.Exit(1)
	}
}
