// Package apperror defines the error types surfaced by the budget tracker.
package apperror

import (
	"errors"
	"fmt"
)

// ErrHomeDirUnavailable is returned when the platform cannot supply a home
// directory, which makes the store path unresolvable.
var ErrHomeDirUnavailable = errors.New("unable to determine user's home directory")

// MalformedRecordError reports a store line that could not be parsed into an
// expense record. Any such line aborts the whole read.
type MalformedRecordError struct {
	Line  int // 1-based line number within the store file, 0 when unknown
	Field string
	Value string
	Err   error
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("malformed record at line %d: failed to parse %s='%s': %v",
			e.Line, e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("malformed record: failed to parse %s='%s': %v",
		e.Field, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// StorageError reports a filesystem failure against the store.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage unavailable: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// EditorError reports an external editor process that failed to spawn or
// exited abnormally.
type EditorError struct {
	Editor string
	Err    error
}

func (e *EditorError) Error() string {
	return fmt.Sprintf("editor '%s' failed: %v", e.Editor, e.Err)
}

func (e *EditorError) Unwrap() error {
	return e.Err
}
