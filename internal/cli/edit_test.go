package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"lectern/internal/cli"
)

// fakeEditor writes an executable script that appends a line to the
// file it is given, standing in for a real editor.
func fakeEditor(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "fake-editor")
	script := "#!/bin/sh\necho 'edited by script' >> \"$1\"\n"

	if err := os.WriteFile(path, []byte(script), 0o700); err != nil {
		t.Fatal(err)
	}

	return path
}

func TestEditRunsConfiguredEditor(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	newLecture(t, c, 1, "2026-01-15", "Cells")

	c.Env["EDITOR"] = fakeEditor(t, c.Dir)

	c.MustRun("edit", "1")

	cli.AssertContains(t, c.ReadLecture(1), "edited by script")
}

func TestEditConfigEditorBeatsEnv(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	newLecture(t, c, 1, "2026-01-15", "Cells")

	configured := fakeEditor(t, c.Dir)

	err := os.WriteFile(filepath.Join(c.Dir, ".lectern.json"),
		[]byte(`{"notes_dir": "notes", "editor": "`+configured+`"}`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	c.Env["EDITOR"] = "/nonexistent/editor"

	c.MustRun("edit", "1")

	cli.AssertContains(t, c.ReadLecture(1), "edited by script")
}

func TestEditMissingLecture(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.Env["EDITOR"] = fakeEditor(t, c.Dir)

	stderr := c.MustFail("edit", "42")
	cli.AssertContains(t, stderr, "lecture not found")
}
