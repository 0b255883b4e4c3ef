package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one subcommand of the lectern binary. The zero value is
// not usable: Flags and Exec must be set.
type Command struct {
	// Usage is the synopsis shown after "lectern" in help output. Its
	// first word is the command name used for dispatch, e.g.
	// "set <id> [flags]" dispatches as "set".
	Usage string

	// Short is the one-line description listed in the global help.
	Short string

	// Long replaces Short in per-command help when set.
	Long string

	// Flags holds the command's own flags. Global flags are stripped
	// before dispatch, so a FlagSet never sees them.
	Flags *flag.FlagSet

	// Exec receives the positional arguments left after flag parsing.
	Exec func(ctx context.Context, o *IO, args []string) error
}

// Name is the dispatch name, the first word of Usage.
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine formats one row of the global command listing. The width is
// the longest Usage across all commands so the Short column lines up.
func (c *Command) HelpLine(width int) string {
	return fmt.Sprintf("  %-*s  %s", width, c.Usage, c.Short)
}

// PrintHelp writes the per-command help shown by "lectern <cmd> --help".
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: lectern", c.Usage)
	o.Println()

	if c.Long != "" {
		o.Println(c.Long)
	} else {
		o.Println(c.Short)
	}

	if c.Flags == nil || !c.Flags.HasFlags() {
		return
	}

	o.Println()
	o.Println("Flags:")

	var buf strings.Builder
	c.Flags.SetOutput(&buf)
	c.Flags.PrintDefaults()
	o.Printf("%s", buf.String())
}

// Run parses args against the command's flags and executes it,
// returning the process exit code. --help short-circuits to PrintHelp,
// and a parse failure prints the error followed by the help text so
// the caller never has to format either.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{}) // pflag must not write to stderr itself

	if err := c.Flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.PrintHelp(o)

			return 0
		}

		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		c.PrintHelp(o)

		return 1
	}

	if err := c.Exec(ctx, o, c.Flags.Args()); err != nil {
		o.ErrPrintln("error:", err)

		return 1
	}

	return 0
}
