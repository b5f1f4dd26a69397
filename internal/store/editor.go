package store

import (
	"os"
	"os/exec"

	"github.com/Saphereye/budget-tracker/internal/apperror"
)

// OpenInEditor spawns the given editor command on the store file with the
// terminal attached, blocking until the editor exits. A spawn failure or a
// non-zero exit is surfaced as an EditorError.
func (s *Store) OpenInEditor(editor string) error {
	log.WithField("editor", editor).Debug("Opening store in external editor")

	cmd := exec.Command(editor, s.FilePath())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &apperror.EditorError{Editor: editor, Err: err}
	}
	return nil
}

// TailLog follows the log file with tail -f, blocking until the child
// process exits (normally via interrupt).
func (s *Store) TailLog() error {
	cmd := exec.Command("tail", "-f", s.LogPath())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return &apperror.EditorError{Editor: "tail", Err: err}
	}
	return nil
}
