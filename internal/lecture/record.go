package lecture

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Field is one optional metadata value. Present distinguishes a field
// that was never set from one that was explicitly cleared; both states
// survive a parse/rewrite round trip.
type Field struct {
	Value   string
	Present bool
}

// NewField returns a present Field holding value.
func NewField(value string) Field {
	return Field{Value: value, Present: true}
}

// Record is the metadata associated with one lecture document.
//
// ID comes from the file name and Title from the document's header
// marker; neither is stored in the metadata block. Everything else
// lives as a "Label: value" comment line inside the block.
type Record struct {
	ID    int
	Title string

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

// Recognized metadata block labels, in serialization order.
const (
	LabelDate       = "Date"
	LabelTime       = "Time"
	LabelChapters   = "Chapters"
	LabelReading    = "Reading"
	LabelTags       = "Tags"
	LabelHomework   = "Homework"
	LabelQuiz       = "Quiz"
	LabelExam       = "Exam"
	LabelDifficulty = "Difficulty"
	LabelNotes      = "Notes"
)

// labelOrder fixes the order fields are written back in.
var labelOrder = []string{
	LabelDate, LabelTime, LabelChapters, LabelReading, LabelTags,
	LabelHomework, LabelQuiz, LabelExam, LabelDifficulty, LabelNotes,
}

// Date layouts.
const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ValidDate reports whether s is an ISO 8601 calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

// ValidTime reports whether s is a wall-clock HH:MM time.
func ValidTime(s string) bool {
	_, err := time.Parse(timeLayout, s)
	return err == nil
}

// field returns a pointer to the Field stored under label, or nil for
// an unrecognized label.
func (r *Record) field(label string) *Field {
	switch label {
	case LabelDate:
		return &r.Date
	case LabelTime:
		return &r.Time
	case LabelChapters:
		return &r.Chapters
	case LabelReading:
		return &r.Reading
	case LabelTags:
		return &r.Tags
	case LabelHomework:
		return &r.Homework
	case LabelQuiz:
		return &r.Quiz
	case LabelExam:
		return &r.Exam
	case LabelDifficulty:
		return &r.Difficulty
	case LabelNotes:
		return &r.Notes
	}

	return nil
}

// validateFieldValue checks a parsed value against the label's format.
// Only dates and times have a format; everything else is free text.
func validateFieldValue(label, value string) error {
	if value == "" {
		return nil // cleared fields carry an empty value
	}

	switch label {
	case LabelDate, LabelQuiz:
		if !ValidDate(value) {
			return fmt.Errorf("%w: %s: %q", ErrInvalidDate, label, value)
		}
	case LabelTime:
		if !ValidTime(value) {
			return fmt.Errorf("%w: %s: %q", ErrInvalidTime, label, value)
		}
	}

	return nil
}

// ChapterList splits the comma-joined chapters field into trimmed,
// non-empty labels, preserving order.
func (r *Record) ChapterList() []string {
	return splitCSV(r.Chapters.Value)
}

// TagList splits the comma-joined tags field into trimmed, non-empty
// tokens, preserving order.
func (r *Record) TagList() []string {
	return splitCSV(r.Tags.Value)
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var out []string

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}

// FieldEntry pairs a block label with its field value.
type FieldEntry struct {
	Label string
	Field Field
}

// Fields returns the record's optional fields in serialization order,
// present or not.
func (r *Record) Fields() []FieldEntry {
	entries := make([]FieldEntry, 0, len(labelOrder))

	for _, label := range labelOrder {
		entries = append(entries, FieldEntry{Label: label, Field: *r.field(label)})
	}

	return entries
}

// Homework is the composite homework field: an assignment name and an
// optional due date. It is packed into a single string at the storage
// boundary.
type Homework struct {
	Name string
	Due  string
}

// homeworkRe matches the packed "name (Due: YYYY-MM-DD)" encoding.
var homeworkRe = regexp.MustCompile(`^(.*?)\s*\(Due:\s*(\d{4}-\d{2}-\d{2})\)$`)

// ParseHomework unpacks the homework storage encoding. A string that
// does not match the "(Due: date)" suffix is treated as all name.
func ParseHomework(s string) Homework {
	m := homeworkRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Homework{Name: strings.TrimSpace(s)}
	}

	return Homework{Name: m[1], Due: m[2]}
}

// String packs the homework back into its storage encoding.
func (h Homework) String() string {
	if h.Due == "" {
		return h.Name
	}

	return fmt.Sprintf("%s (Due: %s)", h.Name, h.Due)
}

// logFieldCount is the fixed column count of an append-only log line.
const logFieldCount = 12

// LogLine serializes a record as one pipe-delimited log line:
// id|date|time|title|chapters|reading|tags|homework|quiz|exam|difficulty|notes.
// Absent and empty fields both serialize as empty columns; the log is
// diagnostic history, not an index.
func LogLine(rec *Record) string {
	cols := [logFieldCount]string{
		fmt.Sprintf("%d", rec.ID),
		rec.Date.Value,
		rec.Time.Value,
		rec.Title,
		rec.Chapters.Value,
		rec.Reading.Value,
		rec.Tags.Value,
		rec.Homework.Value,
		rec.Quiz.Value,
		rec.Exam.Value,
		rec.Difficulty.Value,
		rec.Notes.Value,
	}

	return strings.Join(cols[:], "|")
}
