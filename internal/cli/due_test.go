package cli_test

import (
	"strings"
	"testing"

	"lectern/internal/cli"
)

func TestDueListsUpcoming(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	newLecture(t, c, 1, "2026-01-05", "First")
	newLecture(t, c, 2, "2026-01-12", "Second")
	newLecture(t, c, 3, "2026-01-19", "Third")
	c.MustRun("set", "1", "--homework", "Problem set 1", "--due", "2026-02-10")
	c.MustRun("set", "2", "--quiz", "2026-02-05")
	c.MustRun("set", "3", "--homework", "Old reading", "--due", "2026-01-20")

	stdout := c.MustRun("due", "--after", "2026-02-01")
	lines := strings.Split(stdout, "\n")

	if len(lines) != 2 {
		t.Fatalf("lines=%v", lines)
	}

	// Soonest first.
	cli.AssertContains(t, lines[0], "2026-02-05")
	cli.AssertContains(t, lines[0], "quiz")
	cli.AssertContains(t, lines[1], "2026-02-10")
	cli.AssertContains(t, lines[1], "homework")
	cli.AssertContains(t, lines[1], "Problem set 1")

	cli.AssertNotContains(t, stdout, "Old reading")
}

func TestDueSameDateHomeworkFirst(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	newLecture(t, c, 1, "2026-01-05", "First")
	newLecture(t, c, 2, "2026-01-12", "Second")
	c.MustRun("set", "1", "--quiz", "2026-02-10")
	c.MustRun("set", "2", "--homework", "PS2", "--due", "2026-02-10")

	stdout := c.MustRun("due", "--after", "2026-02-01")
	lines := strings.Split(stdout, "\n")

	if len(lines) != 2 {
		t.Fatalf("lines=%v", lines)
	}

	cli.AssertContains(t, lines[0], "homework")
	cli.AssertContains(t, lines[1], "quiz")
}

func TestDueReferenceDateIsExclusive(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	newLecture(t, c, 1, "2026-01-05", "First")
	c.MustRun("set", "1", "--quiz", "2026-02-01")

	if out := c.MustRun("due", "--after", "2026-02-01"); out != "" {
		t.Errorf("due on the reference date should not list, got: %s", out)
	}
}

func TestDueInvalidReference(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("due", "--after", "soon")
	cli.AssertContains(t, stderr, "invalid date")
}
