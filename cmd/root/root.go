// Package root contains the root command for the application
package root

import (
	"errors"
	"fmt"
	"os"

	"github.com/Saphereye/budget-tracker/internal/apperror"
	"github.com/Saphereye/budget-tracker/internal/config"
	"github.com/Saphereye/budget-tracker/internal/prompt"
	"github.com/Saphereye/budget-tracker/internal/search"
	"github.com/Saphereye/budget-tracker/internal/store"
	"github.com/Saphereye/budget-tracker/internal/ui"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg holds the loaded application configuration
	Cfg *config.Config

	flagAdd    bool
	flagEdit   bool
	flagLogs   bool
	flagSearch string

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "budget-tracker",
		Short: "Track personal expenses from the terminal",
		Long: `budget-tracker keeps expense records in a flat CSV file under
~/.local/share/budget-tracker and shows them in an interactive table with
spend/income charts. Without flags it opens the viewer; use --add to record
an expense and --edit to open the store in your $EDITOR.`,
		SilenceUsage:      true,
		PersistentPreRunE: initialize,
		RunE:              run,
	}
)

// Init initializes the root command flags
func Init() {
	Cmd.Flags().BoolVarP(&flagAdd, "add", "a", false, "Add an expense record interactively, then exit")
	Cmd.Flags().BoolVarP(&flagEdit, "edit", "e", false, "Open the expense store in the external editor, then exit")
	Cmd.Flags().BoolVarP(&flagLogs, "logs", "l", false, "Follow the application log file, then exit")
	Cmd.Flags().StringVarP(&flagSearch, "search", "s", "", "Fuzzy-filter records by description or category before viewing")
}

func initialize(cmd *cobra.Command, args []string) error {
	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	Cfg = cfg
	Log = config.ConfigureLogging(cfg)

	store.SetLogger(Log)
	prompt.SetLogger(Log)
	return nil
}

// NewStore builds the store from configuration, resolving the default data
// directory when none is configured.
func NewStore() (*store.Store, error) {
	dataDir := Cfg.Data.Directory
	if dataDir == "" {
		var err error
		dataDir, err = store.DefaultDataDir()
		if err != nil {
			return nil, err
		}
	}
	return store.New(dataDir, Cfg.Data.File), nil
}

func run(cmd *cobra.Command, args []string) error {
	s, err := NewStore()
	if err != nil {
		return err
	}

	switch {
	case flagAdd:
		return runAdd(s)
	case flagEdit:
		if err := s.Init(); err != nil {
			return err
		}
		attachFileLogging(s)
		return s.OpenInEditor(Cfg.Editor.Command)
	case flagLogs:
		if err := s.Init(); err != nil {
			return err
		}
		attachFileLogging(s)
		return s.TailLog()
	}

	return runViewer(s)
}

func runAdd(s *store.Store) error {
	if err := s.Init(); err != nil {
		return err
	}
	attachFileLogging(s)

	extras, err := s.LoadCustomCategories()
	if err != nil {
		Log.WithError(err).Warn("Ignoring unreadable custom categories file")
	}

	p := prompt.New(os.Stdin, os.Stdout)
	expense, err := p.Expense(extras)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	if err := s.Append(expense); err != nil {
		return err
	}
	fmt.Println("Added your data to the db!")
	return nil
}

func runViewer(s *store.Store) error {
	expenses, err := s.ReadAll()
	if err != nil {
		var storageErr *apperror.StorageError
		if !errors.As(err, &storageErr) {
			// A malformed record aborts the whole read.
			return err
		}
		Log.WithError(err).Warn("Store unavailable, attempting initialization")
		if err := s.Init(); err != nil {
			return err
		}
		expenses = nil
	}
	attachFileLogging(s)

	if flagSearch != "" {
		expenses = search.Filter(expenses, flagSearch)
		Log.WithFields(logrus.Fields{
			"query": flagSearch,
			"count": len(expenses),
		}).Info("Filtered records")
	}

	return ui.Run(expenses)
}

// attachFileLogging redirects the logger into expenses.log next to the
// store, keeping the alternate screen clean. Failures fall back to stderr.
func attachFileLogging(s *store.Store) {
	file, err := os.OpenFile(s.LogPath(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		Log.WithError(err).Warn("Could not open log file, logging to stderr")
		return
	}
	Log.SetOutput(file)
}
