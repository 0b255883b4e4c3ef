package cli

import (
	"context"
	"fmt"
	"strings"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

// LsCmd returns the ls command.
func LsCmd(store *lecture.FSStore) *Command {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	fs.String("tag", "", "Only lectures whose tags match the pattern (substring/regex)")
	fs.String("exam", "", "Only lectures covered by this exam")

	return &Command{
		Flags: fs,
		Usage: "ls [flags]",
		Short: "List lectures",
		Long:  "List all lectures, ascending by id. The document set is re-scanned\non every call; unparseable documents are reported and skipped.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execLs(o, store, fs)
		},
	}
}

func execLs(o *IO, store *lecture.FSStore, fs *flag.FlagSet) error {
	tagPattern, _ := fs.GetString("tag")
	examFilter, _ := fs.GetString("exam")

	var (
		records []*lecture.Record
		skipped []lecture.Result
		err     error
	)

	if tagPattern != "" {
		records, skipped, err = lecture.TagSearch(store, tagPattern)
	} else {
		var results []lecture.Result

		results, err = store.List()
		if err == nil {
			records, skipped = lecture.Partition(results)
		}
	}

	if err != nil {
		return err
	}

	warnSkipped(o, skipped)

	for _, rec := range records {
		if examFilter != "" && (!rec.Exam.Present || rec.Exam.Value != examFilter) {
			continue
		}

		o.Println(formatLectureLine(rec))
	}

	return nil
}

func formatLectureLine(rec *lecture.Record) string {
	var builder strings.Builder

	// Match the file naming convention's zero padding.
	builder.WriteString(fmt.Sprintf("lec_%02d", rec.ID))

	builder.WriteString(" [")
	if rec.Date.Present && rec.Date.Value != "" {
		builder.WriteString(rec.Date.Value)
	} else {
		builder.WriteString("no date")
	}
	builder.WriteString("] - ")
	builder.WriteString(rec.Title)

	if rec.Tags.Present && rec.Tags.Value != "" {
		builder.WriteString(" (")
		builder.WriteString(rec.Tags.Value)
		builder.WriteString(")")
	}

	return builder.String()
}
