package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"lectern/internal/lecture"
)

// ShellCmd starts an interactive prompt that dispatches lectern
// commands without restarting the process between them.
func ShellCmd(in io.Reader, out io.Writer, cfg lecture.Config, env map[string]string) *Command {
	flags := flag.NewFlagSet("shell", flag.ContinueOnError)

	return &Command{
		Flags: flags,
		Usage: "shell",
		Short: "Interactive prompt for running commands",
		Long: `Starts a readline-style prompt. Each line is a lectern command
without the leading binary name, e.g. "set 3 --tags biology".
Type "exit", "quit" or "q" to leave.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			return runShell(ctx, o, in, out, cfg, env)
		},
	}
}

func runShell(ctx context.Context, o *IO, in io.Reader, out io.Writer, cfg lecture.Config, env map[string]string) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var names []string
		for _, cmd := range commandTable(in, out, cfg, env) {
			if name := cmd.Name(); strings.HasPrefix(name, prefix) {
				names = append(names, name)
			}
		}

		return names
	})

	if f, err := os.Open(shellHistoryFile()); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	o.Printf("lectern shell (notes: %s)\n", cfg.NotesDirAbs)
	o.Println("Type 'help' for commands, 'exit' to leave.")

	for {
		input, err := line.Prompt("lectern> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				o.Println()

				break
			}

			return fmt.Errorf("reading input: %w", err)
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		words, err := splitShellLine(input)
		if err != nil {
			o.ErrPrintln("error:", err)

			continue
		}

		if done := dispatchShellLine(ctx, o, in, out, cfg, env, words); done {
			break
		}
	}

	saveShellHistory(line)

	return nil
}

// dispatchShellLine runs one command line. Returns true when the
// shell should exit.
func dispatchShellLine(ctx context.Context, o *IO, in io.Reader, out io.Writer, cfg lecture.Config, env map[string]string, words []string) bool {
	name := words[0]

	switch name {
	case "exit", "quit", "q":
		return true
	case "help", "?":
		printUsage(o, commandTable(in, out, cfg, env))

		return false
	case "shell":
		o.ErrPrintln("error: already in a shell")

		return false
	}

	// Fresh table per line so flag state from a previous invocation
	// cannot bleed into this one.
	cmd := lookupCommand(commandTable(in, out, cfg, env), name)
	if cmd == nil {
		o.ErrPrintln("error:", fmt.Errorf("%w: %s", errUnknownCommand, name))

		return false
	}

	// Each line gets its own IO so warnings print with the line that
	// produced them instead of piling up until the shell exits.
	lineIO := NewIO(o.out, o.errOut)
	if cmd.Run(ctx, lineIO, words[1:]) == 0 {
		lineIO.Finish()
	}

	return false
}

var errUnterminatedQuote = errors.New("unterminated quote")

// splitShellLine splits on whitespace, honoring single and double
// quotes so values with spaces survive, e.g. --notes "revisit proof".
func splitShellLine(input string) ([]string, error) {
	var (
		words   []string
		current strings.Builder
		quote   rune
		inWord  bool
	)

	for _, r := range input {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inWord = true
		case r == ' ' || r == '\t':
			if inWord {
				words = append(words, current.String())
				current.Reset()
				inWord = false
			}
		default:
			current.WriteRune(r)
			inWord = true
		}
	}

	if quote != 0 {
		return nil, errUnterminatedQuote
	}

	if inWord {
		words = append(words, current.String())
	}

	return words, nil
}

func shellHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".lectern_history")
}

func saveShellHistory(line *liner.State) {
	path := shellHistoryFile()
	if path == "" {
		return
	}

	if f, err := os.Create(path); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}
