// Package export handles the CSV summary export command
package export

import (
	"os"

	"github.com/Saphereye/budget-tracker/cmd/root"
	"github.com/Saphereye/budget-tracker/internal/report"

	"github.com/spf13/cobra"
)

var (
	outputFile string

	// Cmd represents the export command
	Cmd = &cobra.Command{
		Use:   "export",
		Short: "Write a per-category spend/income summary as quoted CSV",
		Long: `Export aggregates the expense store into one row per category
(spent, earned, net) and writes it as standard quoted CSV, suitable for
spreadsheets. Unlike the store file itself this output escapes embedded
commas.`,
		RunE: exportFunc,
	}
)

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (defaults to stdout)")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	s, err := root.NewStore()
	if err != nil {
		return err
	}

	expenses, err := s.ReadAll()
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputFile != "" {
		file, err := os.Create(outputFile)
		if err != nil {
			return err
		}
		defer func() {
			if err := file.Close(); err != nil {
				root.Log.WithError(err).Warn("Failed to close output file")
			}
		}()
		out = file
	}

	if err := report.WriteSummaryCSV(out, expenses); err != nil {
		return err
	}
	root.Log.WithField("categories", len(report.Summarize(expenses))).Info("Exported category summary")
	return nil
}
