package cli

import (
	"context"
	"errors"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

var errPatternRequired = errors.New("tag pattern is required")

// TagsCmd returns the tags command.
func TagsCmd(store *lecture.FSStore) *Command {
	return &Command{
		Flags: flag.NewFlagSet("tags", flag.ContinueOnError),
		Usage: "tags <pattern>",
		Short: "Search lectures by tag",
		Long: "List lectures whose tags match the pattern. Matching is unanchored\n" +
			"containment (regex when the pattern compiles, else literal), so\n" +
			"\"cell\" also matches a tag like \"cell-signaling\".",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execTags(o, store, args)
		},
	}
}

func execTags(o *IO, store *lecture.FSStore, args []string) error {
	if len(args) == 0 {
		return errPatternRequired
	}

	records, skipped, err := lecture.TagSearch(store, args[0])
	if err != nil {
		return err
	}

	warnSkipped(o, skipped)

	for _, rec := range records {
		o.Println(formatLectureLine(rec))
	}

	return nil
}
