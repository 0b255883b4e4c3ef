package cli_test

import (
	"testing"

	"lectern/internal/cli"
)

func TestRunNoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, _, exitCode := c.Run()

	if exitCode != 0 {
		t.Errorf("exitCode=%d, want=0", exitCode)
	}

	cli.AssertContains(t, stdout, "Usage: lectern")
	cli.AssertContains(t, stdout, "Commands:")

	for _, name := range []string{
		"init", "new", "set", "get", "ls", "chapters", "due",
		"exam", "tags", "extract", "cards", "edit", "print-config", "shell",
	} {
		cli.AssertContains(t, stdout, name)
	}
}

func TestRunHelp(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, _, exitCode := c.Run("help")
	if exitCode != 0 {
		t.Errorf("exitCode=%d, want=0", exitCode)
	}

	cli.AssertContains(t, stdout, "Usage: lectern")
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	_, stderr, exitCode := c.Run("frobnicate")
	if exitCode != 1 {
		t.Errorf("exitCode=%d, want=1", exitCode)
	}

	cli.AssertContains(t, stderr, "unknown command")
	cli.AssertContains(t, stderr, "frobnicate")
}

func TestRunCommandHelp(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, _, exitCode := c.Run("set", "--help")
	if exitCode != 0 {
		t.Errorf("exitCode=%d, want=0", exitCode)
	}

	cli.AssertContains(t, stdout, "set <id>")
	cli.AssertContains(t, stdout, "--tags")
}

func TestRunGlobalFlagMissingValue(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	_, stderr, exitCode := c.Run("--notes-dir")
	if exitCode != 1 {
		t.Errorf("exitCode=%d, want=1", exitCode)
	}

	cli.AssertContains(t, stderr, "flag requires an argument")
}

func TestRunNotesDirOverride(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	// Global flags come before the command.
	c.MustRun("--notes-dir", "elsewhere", "new", "Intro")

	stdout := c.MustRun("--notes-dir", "elsewhere", "ls")
	cli.AssertContains(t, stdout, "Intro")

	// The default notes directory stays empty.
	if out := c.MustRun("ls"); out != "" {
		t.Errorf("default notes dir should be empty, got: %s", out)
	}
}

func TestRunNotesDirOverrideEqualsForm(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	c.MustRun("--notes-dir=elsewhere", "new", "Intro")

	stdout := c.MustRun("--notes-dir=elsewhere", "ls")
	cli.AssertContains(t, stdout, "Intro")
}

func TestRunIDValidation(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{"missing id", []string{"get"}, "lecture id is required"},
		{"non-numeric id", []string{"get", "abc"}, "invalid lecture id"},
		{"zero id", []string{"get", "0"}, "invalid lecture id"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)

			stderr := c.MustFail(tt.args...)
			cli.AssertContains(t, stderr, tt.wantStderr)
		})
	}
}
