package cli

import (
	"context"
	"time"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

// DueCmd returns the due command.
func DueCmd(store *lecture.FSStore) *Command {
	fs := flag.NewFlagSet("due", flag.ContinueOnError)
	fs.String("after", "", "Reference date (YYYY-MM-DD) [default: today]")

	return &Command{
		Flags: fs,
		Usage: "due [flags]",
		Short: "Upcoming homework and quizzes",
		Long: "List homework due dates and quiz dates strictly after the reference\n" +
			"date, soonest first. Same-date entries order homework before quiz.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execDue(o, store, fs)
		},
	}
}

func execDue(o *IO, store *lecture.FSStore, fs *flag.FlagSet) error {
	after, _ := fs.GetString("after")
	if !fs.Changed("after") {
		after = time.Now().Format("2006-01-02")
	}

	entries, skipped, err := lecture.DueEntries(store, after)
	if err != nil {
		return err
	}

	warnSkipped(o, skipped)

	for _, entry := range entries {
		if entry.Kind == lecture.KindHomework {
			o.Printf("%s  lecture %d  homework  %s\n", entry.Date, entry.ID, entry.Name)
		} else {
			o.Printf("%s  lecture %d  quiz\n", entry.Date, entry.ID)
		}
	}

	return nil
}
