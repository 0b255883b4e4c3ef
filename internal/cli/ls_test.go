package cli_test

import (
	"strings"
	"testing"

	"lectern/internal/cli"
)

func TestLsCommand(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name       string
		setup      func(t *testing.T, c *cli.CLI)
		args       []string
		wantExit   int
		wantStdout []string
		wantStderr []string
		notStdout  []string
	}{
		{
			name:     "no lectures empty output",
			args:     []string{"ls"},
			wantExit: 0,
		},
		{
			name: "lists all lectures",
			setup: func(t *testing.T, c *cli.CLI) {
				t.Helper()
				newLecture(t, c, 1, "2026-01-05", "First")
				newLecture(t, c, 2, "2026-01-12", "Second")
			},
			args:       []string{"ls"},
			wantExit:   0,
			wantStdout: []string{"lec_01", "lec_02", "[2026-01-05]", "[2026-01-12]", "First", "Second"},
		},
		{
			name: "no date placeholder",
			setup: func(t *testing.T, c *cli.CLI) {
				t.Helper()
				c.WriteLecture(1, "\\lecture{1}{}{Undated}\n% META\n\nbody\n")
			},
			args:       []string{"ls"},
			wantExit:   0,
			wantStdout: []string{"lec_01 [no date] - Undated"},
		},
		{
			name: "tags shown in listing",
			setup: func(t *testing.T, c *cli.CLI) {
				t.Helper()
				newLecture(t, c, 1, "2026-01-05", "First")
				c.MustRun("set", "1", "--tags", "biology,lab")
			},
			args:       []string{"ls"},
			wantExit:   0,
			wantStdout: []string{"(biology,lab)"},
		},
		{
			name: "filter by tag pattern",
			setup: func(t *testing.T, c *cli.CLI) {
				t.Helper()
				newLecture(t, c, 1, "2026-01-05", "Cells")
				newLecture(t, c, 2, "2026-01-12", "Acids")
				c.MustRun("set", "1", "--tags", "cell-signaling")
				c.MustRun("set", "2", "--tags", "chemistry")
			},
			args:       []string{"ls", "--tag", "cell"},
			wantExit:   0,
			wantStdout: []string{"Cells"},
			notStdout:  []string{"Acids"},
		},
		{
			name: "filter by exam",
			setup: func(t *testing.T, c *cli.CLI) {
				t.Helper()
				newLecture(t, c, 1, "2026-01-05", "Covered")
				newLecture(t, c, 2, "2026-01-12", "Uncovered")
				c.MustRun("set", "1", "--exam", "1")
			},
			args:       []string{"ls", "--exam", "1"},
			wantExit:   0,
			wantStdout: []string{"Covered"},
			notStdout:  []string{"Uncovered"},
		},
		{
			name: "lectures with parse warnings still list",
			setup: func(t *testing.T, c *cli.CLI) {
				t.Helper()
				newLecture(t, c, 1, "2026-01-05", "Good")
				c.WriteLecture(2, "\\lecture{2}{}{Iffy}\n% META\n% Time: noonish\n\nbody\n")
			},
			args:       []string{"ls"},
			wantExit:   0,
			wantStdout: []string{"Good", "Iffy"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := cli.NewCLI(t)

			if tt.setup != nil {
				tt.setup(t, c)
			}

			stdout, stderr, exitCode := c.Run(tt.args...)

			if got, want := exitCode, tt.wantExit; got != want {
				t.Errorf("exitCode=%d, want=%d\nstdout: %s\nstderr: %s", got, want, stdout, stderr)
			}

			for _, want := range tt.wantStdout {
				cli.AssertContains(t, stdout, want)
			}

			for _, want := range tt.wantStderr {
				cli.AssertContains(t, stderr, want)
			}

			for _, notWant := range tt.notStdout {
				cli.AssertNotContains(t, stdout, notWant)
			}
		})
	}
}

func TestLsOutputOrder(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	newLecture(t, c, 2, "2026-01-12", "Second")
	newLecture(t, c, 10, "2026-03-01", "Tenth")
	newLecture(t, c, 1, "2026-01-05", "First")

	stdout := c.MustRun("ls")
	lines := strings.Split(stdout, "\n")

	if got, want := len(lines), 3; got != want {
		t.Fatalf("got %d lines, want %d: %v", got, want, lines)
	}

	// Ascending by numeric id, so 10 comes after 2.
	if !strings.HasPrefix(lines[0], "lec_01") {
		t.Errorf("first line: %s", lines[0])
	}

	if !strings.HasPrefix(lines[1], "lec_02") {
		t.Errorf("second line: %s", lines[1])
	}

	if !strings.HasPrefix(lines[2], "lec_10") {
		t.Errorf("third line: %s", lines[2])
	}
}
