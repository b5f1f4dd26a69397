// Package main provides the entry point for the budget-tracker CLI application.
package main

import (
	"fmt"
	"os"

	"github.com/Saphereye/budget-tracker/cmd/export"
	"github.com/Saphereye/budget-tracker/cmd/root"
)

func main() {
	root.Init()
	root.Cmd.AddCommand(export.Cmd)

	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
