package cli

import (
	"context"
	"strconv"
	"strings"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

// ChaptersCmd returns the chapters command.
func ChaptersCmd(store *lecture.FSStore) *Command {
	return &Command{
		Flags: flag.NewFlagSet("chapters", flag.ContinueOnError),
		Usage: "chapters",
		Short: "Chapter index",
		Long:  "Group lecture ids by chapter label, numeric labels first.",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			return execChapters(o, store)
		},
	}
}

func execChapters(o *IO, store *lecture.FSStore) error {
	groups, skipped, err := lecture.ChapterMap(store)
	if err != nil {
		return err
	}

	warnSkipped(o, skipped)

	for _, group := range groups {
		o.Printf("%s: %s\n", group.Chapter, joinIDs(group.IDs))
	}

	return nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for idx, id := range ids {
		parts[idx] = strconv.Itoa(id)
	}

	return strings.Join(parts, ", ")
}
