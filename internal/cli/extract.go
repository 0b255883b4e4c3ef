package cli

import (
	"context"
	"errors"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

var errExtractMode = errors.New("exactly one of --block or --section is required")

// ExtractCmd returns the extract command.
func ExtractCmd(store *lecture.FSStore) *Command {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	fs.String("block", "", "Extract the interior of every \\begin{KIND}...\\end{KIND} region")
	fs.String("section", "", "Extract the body of the named section until the next section")

	return &Command{
		Flags: fs,
		Usage: "extract <id> [flags]",
		Short: "Extract delimited content",
		Long: "Print the lines inside a named block kind or section of one lecture,\n" +
			"in document order, for the compilation pipeline. An absent region\n" +
			"yields empty output, not an error.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execExtract(o, store, fs, args)
		},
	}
}

func execExtract(o *IO, store *lecture.FSStore, fs *flag.FlagSet, args []string) error {
	id, err := parseIDArg(args)
	if err != nil {
		return err
	}

	block, _ := fs.GetString("block")
	section, _ := fs.GetString("section")

	if (block == "") == (section == "") {
		return errExtractMode
	}

	_, doc, err := store.Read(id)
	if err != nil {
		return err
	}

	var lines []string
	if block != "" {
		lines = lecture.ExtractBlocks(doc.Render(), block)
	} else {
		lines = lecture.ExtractSection(doc.Render(), section)
	}

	for _, line := range lines {
		o.Println(line)
	}

	return nil
}
