package cli

import (
	"context"
	"errors"
	"fmt"

	"lectern/internal/lecture"

	flag "github.com/spf13/pflag"
)

var errDueWithoutHomework = errors.New("--due requires --homework")

// SetCmd returns the set command.
func SetCmd(store *lecture.FSStore) *Command {
	fs := flag.NewFlagSet("set", flag.ContinueOnError)
	fs.String("date", "", "Lecture date (YYYY-MM-DD); also resyncs the header marker")
	fs.String("time", "", "Lecture time (HH:MM)")
	fs.String("chapters", "", "Comma-separated chapter labels")
	fs.String("reading", "", "Reading assignment")
	fs.String("tags", "", "Comma-separated tags")
	fs.String("homework", "", "Homework name")
	fs.String("due", "", "Homework due date (YYYY-MM-DD)")
	fs.String("quiz", "", "Quiz date (YYYY-MM-DD)")
	fs.String("exam", "", "Exam number or label covering this lecture")
	fs.String("difficulty", "", "Difficulty rating")
	fs.String("notes", "", "Free-text notes")

	return &Command{
		Flags: fs,
		Usage: "set <id> [flags]",
		Short: "Update lecture metadata",
		Long: "Merge the given fields into the lecture's metadata block.\n" +
			"A flag that is not passed leaves the field unchanged; passing a\n" +
			"flag with an empty value clears the field.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execSet(o, store, fs, args)
		},
	}
}

func execSet(o *IO, store *lecture.FSStore, fs *flag.FlagSet, args []string) error {
	id, err := parseIDArg(args)
	if err != nil {
		return err
	}

	overrides, err := overridesFromFlags(fs)
	if err != nil {
		return err
	}

	merged, warnings, err := store.Upsert(id, overrides)
	if err != nil {
		return err
	}

	for _, warning := range warnings {
		o.Warn(fmt.Sprintf("lecture %d: %v", id, warning), "the line was kept verbatim; fix it by hand")
	}

	o.Printf("lecture %d updated\n", merged.ID)

	return nil
}

// overridesFromFlags maps changed flags to field overrides. pflag's
// Changed is what distinguishes "not passed" (leave unchanged) from
// "passed empty" (explicit clear).
func overridesFromFlags(fs *flag.FlagSet) (lecture.Overrides, error) {
	var overrides lecture.Overrides

	fields := []struct {
		flag string
		dst  *lecture.Field
	}{
		{"date", &overrides.Date},
		{"time", &overrides.Time},
		{"chapters", &overrides.Chapters},
		{"reading", &overrides.Reading},
		{"tags", &overrides.Tags},
		{"quiz", &overrides.Quiz},
		{"exam", &overrides.Exam},
		{"difficulty", &overrides.Difficulty},
		{"notes", &overrides.Notes},
	}

	for _, field := range fields {
		if fs.Changed(field.flag) {
			value, _ := fs.GetString(field.flag)
			*field.dst = lecture.NewField(value)
		}
	}

	// Homework is a composite: name plus optional due date, packed
	// into one field at the storage boundary.
	due, _ := fs.GetString("due")
	if fs.Changed("due") && !fs.Changed("homework") {
		return lecture.Overrides{}, errDueWithoutHomework
	}

	if fs.Changed("homework") {
		name, _ := fs.GetString("homework")

		if due != "" && !lecture.ValidDate(due) {
			return lecture.Overrides{}, fmt.Errorf("%w: %q", lecture.ErrInvalidDate, due)
		}

		if name == "" {
			overrides.Homework = lecture.NewField("")
		} else {
			overrides.Homework = lecture.NewField(lecture.Homework{Name: name, Due: due}.String())
		}
	}

	return overrides, nil
}
