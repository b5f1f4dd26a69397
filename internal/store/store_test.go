package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/Saphereye/budget-tracker/internal/apperror"
	"github.com/Saphereye/budget-tracker/internal/models"
	"github.com/Saphereye/budget-tracker/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "budget-tracker"), "expenses.csv")
}

func TestInit_CreatesHeaderOnlyFile(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.Init())

	data, err := os.ReadFile(s.FilePath())
	require.NoError(t, err)
	assert.Equal(t, "date,description,category,amount\n", string(data))
}

func TestInit_Idempotent(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Init())

	e := models.NewExpense("2024-01-15", "Groceries", "Food", decimal.RequireFromString("-54.32"))
	require.NoError(t, s.Append(e))

	// A second Init must not truncate an existing store.
	require.NoError(t, s.Init())

	expenses, err := s.ReadAll()
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}

func TestReadAll_FreshStoreIsEmpty(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Init())

	expenses, err := s.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, expenses)
}

func TestAppend_WithoutInitFails(t *testing.T) {
	s := newTestStore(t)

	e := models.NewExpense("2024-01-15", "Groceries", "Food", decimal.RequireFromString("-54.32"))
	err := s.Append(e)
	require.Error(t, err)

	var storageErr *apperror.StorageError
	assert.True(t, errors.As(err, &storageErr), "expected StorageError, got %T", err)
}

func TestReadAll_WithoutInitFails(t *testing.T) {
	s := newTestStore(t)

	_, err := s.ReadAll()
	require.Error(t, err)

	var storageErr *apperror.StorageError
	assert.True(t, errors.As(err, &storageErr))
}

func TestAppendThenReadAll_PreservesOrder(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Init())

	expenses := []models.Expense{
		models.NewExpense("2024-01-15", "Groceries", "Food", decimal.RequireFromString("-54.32")),
		models.NewExpense("2024-01-20", "Paycheck", "Personal", decimal.RequireFromString("1500.00")),
		models.NewExpense("2024-01-22", "Train ticket", "Travel", decimal.RequireFromString("-19.90")),
	}
	for _, e := range expenses {
		require.NoError(t, s.Append(e))
	}

	got, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, expenses, got)
}

func TestReadAll_HeaderIsSkippedNotValidated(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, os.MkdirAll(s.DataDir, 0750))

	// An arbitrary first line is treated as the header.
	content := "anything at all\n2024-01-15,Groceries,Food,-54.32\n"
	require.NoError(t, os.WriteFile(s.FilePath(), []byte(content), 0640))

	expenses, err := s.ReadAll()
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Groceries", expenses[0].Description)
}

func TestReadAll_FailsFastOnMalformedLine(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{"ThreeFields", "2024-01-16,Lunch,Food"},
		{"FiveFields", "2024-01-16,Lunch, downtown,Food,-12.00"},
		{"BadAmount", "2024-01-16,Lunch,Food,twelve"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestStore(t)
			require.NoError(t, s.Init())
			require.NoError(t, s.Append(models.NewExpense("2024-01-15", "Groceries", "Food", decimal.RequireFromString("-54.32"))))

			f, err := os.OpenFile(s.FilePath(), os.O_APPEND|os.O_WRONLY, 0640)
			require.NoError(t, err)
			_, err = f.WriteString(tc.line + "\n")
			require.NoError(t, err)
			require.NoError(t, f.Close())

			_, err = s.ReadAll()
			require.Error(t, err)

			var malformedErr *apperror.MalformedRecordError
			require.True(t, errors.As(err, &malformedErr))
			assert.Equal(t, 3, malformedErr.Line, "header is line 1, first record line 2")
		})
	}
}

func TestDefaultDataDir(t *testing.T) {
	t.Setenv("HOME", "/home/someone")

	dir, err := store.DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/someone", ".local", "share", "budget-tracker"), dir)
}

func TestDefaultDataDir_NoHome(t *testing.T) {
	t.Setenv("HOME", "")
	os.Unsetenv("HOME")

	_, err := store.DefaultDataDir()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrHomeDirUnavailable)
}
