package lecture

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in   string
		want bool
	}{
		{"2026-01-15", true},
		{"2026-12-31", true},
		{"2026-13-01", false},
		{"2026-1-5", false},
		{"15-01-2026", false},
		{"tomorrow", false},
		{"", false},
	} {
		if got := ValidDate(tt.in); got != tt.want {
			t.Errorf("ValidDate(%q)=%v, want=%v", tt.in, got, tt.want)
		}
	}
}

func TestValidTime(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		in   string
		want bool
	}{
		{"10:00", true},
		{"23:59", true},
		{"24:00", false},
		{"9:00", false},
		{"10am", false},
		{"", false},
	} {
		if got := ValidTime(tt.in); got != tt.want {
			t.Errorf("ValidTime(%q)=%v, want=%v", tt.in, got, tt.want)
		}
	}
}

func TestParseHomework(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name string
		in   string
		want Homework
	}{
		{
			name: "name with due date",
			in:   "Problem set 3 (Due: 2026-02-10)",
			want: Homework{Name: "Problem set 3", Due: "2026-02-10"},
		},
		{
			name: "name only",
			in:   "Read chapter 4",
			want: Homework{Name: "Read chapter 4"},
		},
		{
			name: "parenthetical that is not a due suffix",
			in:   "Essay (draft)",
			want: Homework{Name: "Essay (draft)"},
		},
		{
			name: "empty",
			in:   "",
			want: Homework{},
		},
		{
			name: "surrounding whitespace",
			in:   "  Quiz prep (Due: 2026-03-01)  ",
			want: Homework{Name: "Quiz prep", Due: "2026-03-01"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ParseHomework(tt.in))
		})
	}
}

func TestHomeworkStringRoundTrip(t *testing.T) {
	t.Parallel()

	hw := Homework{Name: "Problem set 3", Due: "2026-02-10"}

	packed := hw.String()
	assert.Equal(t, "Problem set 3 (Due: 2026-02-10)", packed)
	assert.Equal(t, hw, ParseHomework(packed))

	noDue := Homework{Name: "Read chapter 4"}
	assert.Equal(t, "Read chapter 4", noDue.String())
	assert.Equal(t, noDue, ParseHomework(noDue.String()))
}

func TestChapterAndTagLists(t *testing.T) {
	t.Parallel()

	rec := Record{
		Chapters: NewField(" 3 , 4 ,, 5 "),
		Tags:     NewField("biology,cell-signaling"),
	}

	assert.Equal(t, []string{"3", "4", "5"}, rec.ChapterList())
	assert.Equal(t, []string{"biology", "cell-signaling"}, rec.TagList())

	empty := Record{}
	assert.Nil(t, empty.ChapterList())
	assert.Nil(t, empty.TagList())

	cleared := Record{Tags: NewField("")}
	assert.Nil(t, cleared.TagList())
}

func TestFieldsOrder(t *testing.T) {
	t.Parallel()

	rec := Record{
		Date: NewField("2026-01-15"),
		Tags: NewField("biology"),
	}

	entries := rec.Fields()
	assert.Len(t, entries, len(labelOrder))

	for idx, entry := range entries {
		assert.Equal(t, labelOrder[idx], entry.Label)
	}

	assert.True(t, entries[0].Field.Present)
	assert.Equal(t, "2026-01-15", entries[0].Field.Value)
	assert.False(t, entries[1].Field.Present)
}

func TestLogLine(t *testing.T) {
	t.Parallel()

	rec := &Record{
		ID:       3,
		Title:    "Cell structure",
		Date:     NewField("2026-01-15"),
		Time:     NewField("10:00"),
		Chapters: NewField("3,4"),
		Tags:     NewField("biology"),
		Homework: NewField("Problem set 1 (Due: 2026-01-22)"),
	}

	line := LogLine(rec)
	cols := strings.Split(line, "|")

	assert.Len(t, cols, logFieldCount)
	assert.Equal(t, "3", cols[0])
	assert.Equal(t, "2026-01-15", cols[1])
	assert.Equal(t, "10:00", cols[2])
	assert.Equal(t, "Cell structure", cols[3])
	assert.Equal(t, "3,4", cols[4])
	assert.Equal(t, "Problem set 1 (Due: 2026-01-22)", cols[7])
	// Absent fields serialize as empty columns.
	assert.Equal(t, "", cols[11])
}

func TestLogLineEmptyRecord(t *testing.T) {
	t.Parallel()

	line := LogLine(&Record{ID: 7})
	assert.Len(t, strings.Split(line, "|"), logFieldCount)
}
