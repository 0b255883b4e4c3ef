package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CLI provides a clean interface for running CLI commands in tests.
// It manages a temp directory and environment variables.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string
}

// NewCLI creates a new test CLI with a temp directory.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:   t,
		Dir: t.TempDir(),
		Env: map[string]string{},
	}
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "lectern" or "--cwd" - those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"lectern", "--cwd", r.Dir}, args...)
	code := Run(nil, &outBuf, &errBuf, fullArgs, r.Env)

	return outBuf.String(), errBuf.String(), code
}

// RunWithInput executes the CLI with stdin and returns stdout, stderr, and exit code.
// stdin must be a string or io.Reader; panics otherwise.
func (r *CLI) RunWithInput(stdin any, args ...string) (string, string, int) {
	var inReader io.Reader
	switch v := stdin.(type) {
	case string:
		inReader = strings.NewReader(v)
	case io.Reader:
		inReader = v
	default:
		panic(fmt.Sprintf("stdin must be string or io.Reader, got %T", stdin))
	}

	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"lectern", "--cwd", r.Dir}, args...)
	code := Run(inReader, &outBuf, &errBuf, fullArgs, r.Env)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command returns non-zero.
// Returns trimmed stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Also fails if stdout is not empty. Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	if stdout != "" {
		r.t.Fatalf("command %v failed but stdout should be empty\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}

// NotesDir returns the path to the notes directory.
func (r *CLI) NotesDir() string {
	return filepath.Join(r.Dir, "notes")
}

// LecturePath returns the path of the lecture file for id.
func (r *CLI) LecturePath(id int) string {
	return filepath.Join(r.NotesDir(), fmt.Sprintf("lec_%02d.tex", id))
}

// ReadLecture reads and returns the content of a lecture file.
func (r *CLI) ReadLecture(id int) string {
	r.t.Helper()

	content, err := os.ReadFile(r.LecturePath(id))
	if err != nil {
		r.t.Fatalf("failed to read lecture %d: %v", id, err)
	}

	return string(content)
}

// WriteLecture writes content to a lecture file, creating the notes
// directory if needed.
func (r *CLI) WriteLecture(id int, content string) {
	r.t.Helper()

	if err := os.MkdirAll(r.NotesDir(), 0o750); err != nil {
		r.t.Fatalf("failed to create notes dir: %v", err)
	}

	if err := os.WriteFile(r.LecturePath(id), []byte(content), 0o600); err != nil {
		r.t.Fatalf("failed to write lecture %d: %v", id, err)
	}
}

// ReadLog reads the lecture log, returning "" if it does not exist.
func (r *CLI) ReadLog() string {
	r.t.Helper()

	content, err := os.ReadFile(filepath.Join(r.NotesDir(), "lectures.log"))
	if err != nil {
		if os.IsNotExist(err) {
			return ""
		}

		r.t.Fatalf("failed to read log: %v", err)
	}

	return string(content)
}

// AssertContains fails the test if content doesn't contain substr.
func AssertContains(t *testing.T, content, substr string) {
	t.Helper()

	if !strings.Contains(content, substr) {
		t.Errorf("content should contain %q\ncontent:\n%s", substr, content)
	}
}

// AssertNotContains fails the test if content contains substr.
func AssertNotContains(t *testing.T, content, substr string) {
	t.Helper()

	if strings.Contains(content, substr) {
		t.Errorf("content should NOT contain %q\ncontent:\n%s", substr, content)
	}
}
