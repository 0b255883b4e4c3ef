package cli

import (
	"context"
	"errors"
	"strings"
	"time"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

var errTitleRequired = errors.New("title is required")

// NewCmd returns the new command.
func NewCmd(store *lecture.FSStore) *Command {
	fs := flag.NewFlagSet("new", flag.ContinueOnError)
	fs.StringP("date", "d", "", "Lecture date (YYYY-MM-DD) [default: today]")
	fs.Int("id", 0, "Lecture id [default: next unused]")

	return &Command{
		Flags: fs,
		Usage: "new <title> [flags]",
		Short: "Create the next lecture document",
		Long: "Create a fresh lecture document with a header marker and an empty\n" +
			"metadata block. The record exists as soon as the document does.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execNew(o, store, fs, args)
		},
	}
}

func execNew(o *IO, store *lecture.FSStore, fs *flag.FlagSet, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))
	if title == "" {
		return errTitleRequired
	}

	date, _ := fs.GetString("date")
	if !fs.Changed("date") {
		date = time.Now().Format("2006-01-02")
	}

	id, _ := fs.GetInt("id")
	if !fs.Changed("id") {
		var err error

		id, err = store.NextID()
		if err != nil {
			return err
		}
	}

	path, err := store.Create(id, date, title)
	if err != nil {
		return err
	}

	o.Println(path)

	return nil
}
