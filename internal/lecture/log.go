package lecture

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// TouchLog creates the log file if it does not exist yet.
func (s *FSStore) TouchLog() error {
	if err := os.MkdirAll(filepath.Dir(s.logPath), dirPerms); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerms)
	if err != nil {
		return fmt.Errorf("creating log: %w", err)
	}

	return f.Close()
}

// AppendLog appends the full serialized record to the append-only log.
// One line per set operation, never deduplicated; the log is history
// for diagnostics, not an index, and is never read back for state.
func (s *FSStore) AppendLog(rec *Record) error {
	if err := os.MkdirAll(filepath.Dir(s.logPath), dirPerms); err != nil {
		return fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(s.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePerms)
	if err != nil {
		return fmt.Errorf("opening log: %w", err)
	}

	_, writeErr := f.WriteString(LogLine(rec) + "\n")
	closeErr := f.Close()

	if writeErr != nil {
		return fmt.Errorf("appending to log: %w", errors.Join(writeErr, closeErr))
	}

	if closeErr != nil {
		return fmt.Errorf("closing log: %w", closeErr)
	}

	return nil
}
