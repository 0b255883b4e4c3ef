package lecture

import (
	"fmt"
	"os"
	"strings"

	"github.com/natefinch/atomic"
)

// Overrides carries the per-field updates for one Upsert call. A field
// left non-Present is unchanged; a Present field replaces the stored
// value wholesale (no merge within a field); a Present field with an
// empty value is an explicit clear, which stays distinguishable from
// "never set" across round trips.
type Overrides struct {
	Date       Field
	Time       Field
	Chapters   Field
	Reading    Field
	Tags       Field
	Homework   Field
	Quiz       Field
	Exam       Field
	Difficulty Field
	Notes      Field
}

// Validate checks the formatted fields before anything is written.
func (o *Overrides) Validate() error {
	checks := []struct {
		label string
		field Field
	}{
		{LabelDate, o.Date},
		{LabelTime, o.Time},
		{LabelQuiz, o.Quiz},
	}

	for _, check := range checks {
		if !check.field.Present {
			continue
		}

		if err := validateFieldValue(check.label, check.field.Value); err != nil {
			return err
		}
	}

	return nil
}

// apply overlays the overrides onto existing: override where present,
// existing value otherwise.
func (o *Overrides) apply(existing *Record) *Record {
	merged := *existing

	pairs := []struct {
		dst *Field
		src Field
	}{
		{&merged.Date, o.Date},
		{&merged.Time, o.Time},
		{&merged.Chapters, o.Chapters},
		{&merged.Reading, o.Reading},
		{&merged.Tags, o.Tags},
		{&merged.Homework, o.Homework},
		{&merged.Quiz, o.Quiz},
		{&merged.Exam, o.Exam},
		{&merged.Difficulty, o.Difficulty},
		{&merged.Notes, o.Notes},
	}

	for _, pair := range pairs {
		if pair.src.Present {
			*pair.dst = pair.src
		}
	}

	return &merged
}

// Upsert merges the overrides into document id's record and rewrites
// the document's metadata block in place, keeping all other content
// verbatim. The header marker's date argument is resynced to the
// merged date; the post-merge record is appended to the log. The
// document write is temp-then-rename, so a failed write leaves the
// previous file intact.
func (s *FSStore) Upsert(id int, overrides Overrides) (*Record, []error, error) {
	if err := overrides.Validate(); err != nil {
		return nil, nil, err
	}

	path, err := s.DocumentPath(id)
	if err != nil {
		return nil, nil, err
	}

	existing, doc, err := ReadLecture(path, id)
	if err != nil {
		return nil, nil, err
	}

	merged := overrides.apply(existing)

	content, renderErr := doc.RenderWith(merged)
	if renderErr != nil {
		return nil, doc.Warnings(), fmt.Errorf("rewriting %s: %w", path, renderErr)
	}

	if writeErr := atomic.WriteFile(path, strings.NewReader(content)); writeErr != nil {
		return nil, doc.Warnings(), fmt.Errorf("writing lecture: %w", writeErr)
	}

	if logErr := s.AppendLog(merged); logErr != nil {
		return nil, doc.Warnings(), logErr
	}

	return merged, doc.Warnings(), nil
}

// Create writes a fresh lecture document: header marker, empty
// metadata block, blank body. The record springs into existence with
// the document (all fields empty except id and title).
func (s *FSStore) Create(id int, date, title string) (string, error) {
	if date != "" && !ValidDate(date) {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	if err := os.MkdirAll(s.dir, dirPerms); err != nil {
		return "", fmt.Errorf("creating notes directory: %w", err)
	}

	path := s.Path(id)

	if s.Exists(id) {
		return "", fmt.Errorf("%w: %s", ErrLectureExists, path)
	}

	header := Header{ID: id, Date: date, Title: title}

	var builder strings.Builder

	builder.WriteString(header.Line() + "\n")
	builder.WriteString(metaOpenMarker + "\n")
	if date != "" {
		builder.WriteString(commentPrefix + " " + LabelDate + ": " + date + "\n")
	}
	builder.WriteString("\n")

	if err := atomic.WriteFile(path, strings.NewReader(builder.String())); err != nil {
		return "", fmt.Errorf("writing lecture: %w", err)
	}

	// atomic.WriteFile does not set permissions for new files.
	if err := os.Chmod(path, filePerms); err != nil {
		return "", fmt.Errorf("setting lecture permissions: %w", err)
	}

	return path, nil
}
