package cli

import (
	"context"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

// GetCmd returns the get command.
func GetCmd(store *lecture.FSStore) *Command {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.Bool("raw", false, "Print the raw document instead of the record")

	return &Command{
		Flags: fs,
		Usage: "get <id> [flags]",
		Short: "Show a lecture's record",
		Long:  "Display the metadata record of one lecture. Title is recomputed\nfrom the document's header marker on every read.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execGet(o, store, fs, args)
		},
	}
}

func execGet(o *IO, store *lecture.FSStore, fs *flag.FlagSet, args []string) error {
	id, err := parseIDArg(args)
	if err != nil {
		return err
	}

	rec, doc, err := store.Read(id)
	if err != nil {
		return err
	}

	if raw, _ := fs.GetBool("raw"); raw {
		o.Printf("%s", doc.Render())

		return nil
	}

	o.Printf("Lecture %d: %s\n", rec.ID, rec.Title)

	for _, entry := range rec.Fields() {
		if entry.Field.Present {
			o.Printf("%s: %s\n", entry.Label, entry.Field.Value)
		}
	}

	return nil
}
