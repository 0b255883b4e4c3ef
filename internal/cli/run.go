package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"lectern/internal/lecture"
)

const helpFlag = "--help"

var (
	errFlagRequiresArg = errors.New("flag requires an argument")
	errUnknownCommand  = errors.New("unknown command")
)

// Run is the main entry point. Returns exit code.
func Run(in io.Reader, out, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	cfg, err := lecture.LoadConfig(lecture.LoadConfigInput{
		WorkDirOverride:  flags.workDir,
		ConfigPath:       flags.configPath,
		NotesDirOverride: flags.notesDir,
		Env:              env,
	})
	if err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	if len(flags.remaining) == 0 {
		printUsage(o, commandTable(in, out, cfg, env))

		return 0
	}

	name := flags.remaining[0]
	if name == "-h" || name == helpFlag || name == "help" {
		printUsage(o, commandTable(in, out, cfg, env))

		return 0
	}

	cmd := lookupCommand(commandTable(in, out, cfg, env), name)
	if cmd == nil {
		o.ErrPrintln("error:", fmt.Errorf("%w: %s", errUnknownCommand, name))
		printUsage(o, commandTable(in, out, cfg, env))

		return 1
	}

	if code := cmd.Run(context.Background(), o, flags.remaining[1:]); code != 0 {
		return code
	}

	// Finish handles warnings and exit code
	return o.Finish()
}

// commandTable builds a fresh command set. Rebuilt per dispatch so
// pflag Changed state never leaks between shell invocations.
func commandTable(in io.Reader, out io.Writer, cfg lecture.Config, env map[string]string) []*Command {
	store := lecture.NewFSStore(cfg)

	cmds := []*Command{
		InitCmd(store, cfg),
		NewCmd(store),
		SetCmd(store),
		GetCmd(store),
		LsCmd(store),
		ChaptersCmd(store),
		DueCmd(store),
		ExamCmd(store),
		TagsCmd(store),
		ExtractCmd(store),
		CardsCmd(store),
		EditCmd(store, cfg, env),
		PrintConfigCmd(cfg),
	}

	return append(cmds, ShellCmd(in, out, cfg, env))
}

func lookupCommand(cmds []*Command, name string) *Command {
	for _, cmd := range cmds {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func printUsage(o *IO, cmds []*Command) {
	o.Println("Usage: lectern [global flags] <command> [args]")
	o.Println()
	o.Println("Lecture notes metadata toolkit.")
	o.Println()
	o.Println("Commands:")

	width := 0
	for _, cmd := range cmds {
		if len(cmd.Usage) > width {
			width = len(cmd.Usage)
		}
	}

	for _, cmd := range cmds {
		o.Println(cmd.HelpLine(width))
	}

	o.Println()
	o.Println("Global flags:")
	o.Println("  -C, --cwd <dir>            Run as if started in <dir>")
	o.Println("  -c, --config <file>        Explicit config file")
	o.Println("      --notes-dir <dir>      Override the notes directory")
}

type globalFlags struct {
	workDir    string
	configPath string
	notesDir   string
	remaining  []string
}

const (
	consumedNone = 0
	consumedOne  = 1
	consumedTwo  = 2
)

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	targets := []struct {
		short  string
		long   string
		target *string
	}{
		{"-C", "--cwd", &flags.workDir},
		{"-c", "--config", &flags.configPath},
		{"", "--notes-dir", &flags.notesDir},
	}

	for _, t := range targets {
		if arg == t.short && t.short != "" || arg == t.long {
			if idx+1 >= len(args) {
				return consumedNone, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
			}

			*t.target = args[idx+1]

			return consumedTwo, nil
		}

		if after, ok := strings.CutPrefix(arg, t.long+"="); ok {
			*t.target = after

			return consumedOne, nil
		}

		if t.short != "" && len(arg) > len(t.short) {
			if after, ok := strings.CutPrefix(arg, t.short); ok && t.short == "-C" {
				*t.target = after

				return consumedOne, nil
			}
		}
	}

	return consumedNone, nil
}

// parseIDArg extracts the required positional lecture id.
func parseIDArg(args []string) (int, error) {
	if len(args) == 0 {
		return 0, lecture.ErrIDRequired
	}

	id, err := strconv.Atoi(args[0])
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", lecture.ErrInvalidID, args[0])
	}

	return id, nil
}

// warnSkipped reports documents that failed to parse during a batch
// view; listing continues with partial results.
func warnSkipped(o *IO, skipped []lecture.Result) {
	for _, result := range skipped {
		o.Warn(
			fmt.Sprintf("%s: %v", result.Path, result.Err),
			"fix the lecture file or delete it if invalid",
		)
	}
}
