package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"lectern/internal/cli"
)

func TestPrintConfigDefaults(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "effective_cwd="+c.Dir)
	cli.AssertContains(t, stdout, "notes_dir="+c.NotesDir())
	cli.AssertContains(t, stdout, "extension=.tex")
	cli.AssertContains(t, stdout, "log_file="+filepath.Join(c.NotesDir(), "lectures.log"))
	cli.AssertContains(t, stdout, "(defaults only)")
}

func TestPrintConfigShowsProjectSource(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	err := os.WriteFile(filepath.Join(c.Dir, ".lectern.json"),
		[]byte(`{"notes_dir": "lectures", "editor": "nano"}`), 0o600)
	if err != nil {
		t.Fatal(err)
	}

	stdout := c.MustRun("print-config")

	cli.AssertContains(t, stdout, "notes_dir="+filepath.Join(c.Dir, "lectures"))
	cli.AssertContains(t, stdout, "editor=nano")
	cli.AssertContains(t, stdout, "project_config="+filepath.Join(c.Dir, ".lectern.json"))
	cli.AssertNotContains(t, stdout, "(defaults only)")
}
