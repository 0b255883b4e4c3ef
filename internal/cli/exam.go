package cli

import (
	"context"
	"errors"
	"strings"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

var errExamRequired = errors.New("exam number or label is required")

// ExamCmd returns the exam command.
func ExamCmd(store *lecture.FSStore) *Command {
	return &Command{
		Flags: flag.NewFlagSet("exam", flag.ContinueOnError),
		Usage: "exam <n>",
		Short: "Exam coverage report",
		Long:  "List the lectures covered by an exam, with their chapters and the\ncombined chapter union.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execExam(o, store, args)
		},
	}
}

func execExam(o *IO, store *lecture.FSStore, args []string) error {
	if len(args) == 0 {
		return errExamRequired
	}

	coverage, skipped, err := lecture.ExamCoverage(store, args[0])
	if err != nil {
		return err
	}

	warnSkipped(o, skipped)

	for _, entry := range coverage.Entries {
		o.Printf("lecture %d: %s\n", entry.ID, strings.Join(entry.Chapters, ", "))
	}

	if len(coverage.Chapters) > 0 {
		o.Printf("chapters: %s\n", strings.Join(coverage.Chapters, ", "))
	}

	return nil
}
