// Package store provides the append-only CSV persistence layer for expense
// records, plus the external-editor escape hatch for manual edits.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Saphereye/budget-tracker/internal/apperror"
	"github.com/Saphereye/budget-tracker/internal/config"
	"github.com/Saphereye/budget-tracker/internal/models"

	"github.com/sirupsen/logrus"
)

// Header is the fixed first line of the store file. It is written on
// initialization and skipped on read, never validated.
const Header = "date,description,category,amount"

// LogFileName is the log file kept next to the store.
const LogFileName = "expenses.log"

// Use the centralized logger from config package
var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Store manages the single CSV file holding all expense records.
type Store struct {
	DataDir  string
	FileName string
}

// New creates a Store rooted at dataDir. An empty fileName falls back to
// expenses.csv.
func New(dataDir, fileName string) *Store {
	if fileName == "" {
		fileName = "expenses.csv"
	}
	return &Store{DataDir: dataDir, FileName: fileName}
}

// DefaultDataDir returns the per-user application data directory,
// <home>/.local/share/budget-tracker. It fails with ErrHomeDirUnavailable
// when the platform cannot supply a home directory.
func DefaultDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperror.ErrHomeDirUnavailable, err)
	}
	return filepath.Join(homeDir, ".local", "share", "budget-tracker"), nil
}

// FilePath returns the full path of the store file.
func (s *Store) FilePath() string {
	return filepath.Join(s.DataDir, s.FileName)
}

// LogPath returns the full path of the log file next to the store.
func (s *Store) LogPath() string {
	return filepath.Join(s.DataDir, LogFileName)
}

// Init idempotently creates the data directory and a header-only store file.
// An existing store file is left untouched.
func (s *Store) Init() error {
	log.WithField("dir", s.DataDir).Debug("Initializing store")

	if err := os.MkdirAll(s.DataDir, 0750); err != nil {
		return &apperror.StorageError{Op: "mkdir", Path: s.DataDir, Err: err}
	}

	filePath := s.FilePath()
	if _, err := os.Stat(filePath); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return &apperror.StorageError{Op: "stat", Path: filePath, Err: err}
	}

	if err := os.WriteFile(filePath, []byte(Header+"\n"), 0640); err != nil {
		return &apperror.StorageError{Op: "create", Path: filePath, Err: err}
	}

	log.WithField("file", filePath).Info("Created empty expense store")
	return nil
}

// Append writes one serialized record to the end of the store file. It fails
// with a StorageError when the store has not been initialized.
func (s *Store) Append(e models.Expense) error {
	filePath := s.FilePath()

	file, err := os.OpenFile(filePath, os.O_APPEND|os.O_WRONLY, 0640)
	if err != nil {
		return &apperror.StorageError{Op: "open", Path: filePath, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close store file")
		}
	}()

	if _, err := fmt.Fprintln(file, e.MarshalLine()); err != nil {
		return &apperror.StorageError{Op: "write", Path: filePath, Err: err}
	}

	log.WithFields(logrus.Fields{
		"file":     filePath,
		"category": e.Category.String(),
	}).Debug("Appended expense record")
	return nil
}

// ReadAll reads every record from the store in file order. The header line
// is skipped. The whole read fails on the first malformed line; there is no
// partial-recovery mode.
func (s *Store) ReadAll() ([]models.Expense, error) {
	filePath := s.FilePath()

	file, err := os.Open(filePath)
	if err != nil {
		return nil, &apperror.StorageError{Op: "open", Path: filePath, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close store file")
		}
	}()

	var expenses []models.Expense
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if lineNo == 1 {
			continue // Skip header
		}
		expense, err := models.ParseLine(scanner.Text())
		if err != nil {
			var malformedErr *apperror.MalformedRecordError
			if errors.As(err, &malformedErr) {
				malformedErr.Line = lineNo
			}
			return nil, err
		}
		expenses = append(expenses, expense)
	}
	if err := scanner.Err(); err != nil {
		return nil, &apperror.StorageError{Op: "read", Path: filePath, Err: err}
	}

	log.WithField("count", len(expenses)).Debug("Read expense records from store")
	return expenses, nil
}
