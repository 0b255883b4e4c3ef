package lecture

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Derived views: read-only projections over a full store snapshot.
// Each view calls List once, skips entries that failed to parse, and
// returns those entries so callers can report partial results.

// ChapterGroup is one chapter label with every lecture that covers it.
type ChapterGroup struct {
	Chapter string
	IDs     []int
}

// ChapterMap groups lecture ids by individual chapter label. Labels
// are split from the comma-joined field and trimmed; duplicates within
// one lecture collapse. Groups are ordered numeric-aware: labels that
// parse as numbers sort numerically and before lexical labels.
func ChapterMap(store Store) ([]ChapterGroup, []Result, error) {
	results, err := store.List()
	if err != nil {
		return nil, nil, err
	}

	valid, skipped := Partition(results)

	byChapter := make(map[string][]int)

	for _, rec := range valid {
		seen := make(map[string]bool)

		for _, chapter := range rec.ChapterList() {
			if seen[chapter] {
				continue
			}

			seen[chapter] = true
			byChapter[chapter] = append(byChapter[chapter], rec.ID)
		}
	}

	groups := make([]ChapterGroup, 0, len(byChapter))
	for chapter, ids := range byChapter {
		groups = append(groups, ChapterGroup{Chapter: chapter, IDs: ids})
	}

	sort.Slice(groups, func(i, j int) bool {
		return chapterLess(groups[i].Chapter, groups[j].Chapter)
	})

	return groups, skipped, nil
}

// chapterLess orders chapter labels: numeric labels compare as
// numbers and sort before non-numeric ones, which compare lexically.
func chapterLess(a, b string) bool {
	numA, errA := strconv.Atoi(a)
	numB, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		return numA < numB
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}

// Due entry kinds. Lexical ordering of the kind names is the
// deliberate tie-break for equal dates: homework before quiz.
const (
	KindHomework = "homework"
	KindQuiz     = "quiz"
)

// DueEntry is one upcoming deadline derived from a record.
type DueEntry struct {
	Date string
	Kind string
	ID   int
	Name string // homework name; empty for quiz entries
}

// DueEntries merges homework due dates and quiz dates across the
// store, keeping only entries strictly after the reference date. The
// reference date is caller-supplied so the view stays pure. Output is
// stable-sorted on (date, kind, id).
func DueEntries(store Store, after string) ([]DueEntry, []Result, error) {
	if !ValidDate(after) {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidDate, after)
	}

	results, err := store.List()
	if err != nil {
		return nil, nil, err
	}

	valid, skipped := Partition(results)

	var entries []DueEntry

	for _, rec := range valid {
		if rec.Homework.Present {
			hw := ParseHomework(rec.Homework.Value)
			if hw.Due != "" && hw.Due > after {
				entries = append(entries, DueEntry{Date: hw.Due, Kind: KindHomework, ID: rec.ID, Name: hw.Name})
			}
		}

		if rec.Quiz.Present && rec.Quiz.Value != "" && rec.Quiz.Value > after {
			entries = append(entries, DueEntry{Date: rec.Quiz.Value, Kind: KindQuiz, ID: rec.ID})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Kind != b.Kind {
			return a.Kind < b.Kind
		}

		return a.ID < b.ID
	})

	return entries, skipped, nil
}

// CoverageEntry is one lecture covered by an exam.
type CoverageEntry struct {
	ID       int
	Chapters []string
}

// Coverage is the exam-coverage report: matching lectures in id order
// plus the deduplicated union of their chapters.
type Coverage struct {
	Exam     string
	Entries  []CoverageEntry
	Chapters []string
}

// ExamCoverage filters records whose exam field equals the requested
// exam number or label.
func ExamCoverage(store Store, exam string) (*Coverage, []Result, error) {
	results, err := store.List()
	if err != nil {
		return nil, nil, err
	}

	valid, skipped := Partition(results)

	coverage := &Coverage{Exam: exam}
	union := make(map[string]bool)

	for _, rec := range valid {
		if !rec.Exam.Present || rec.Exam.Value != exam {
			continue
		}

		chapters := rec.ChapterList()
		coverage.Entries = append(coverage.Entries, CoverageEntry{ID: rec.ID, Chapters: chapters})

		for _, chapter := range chapters {
			union[chapter] = true
		}
	}

	for chapter := range union {
		coverage.Chapters = append(coverage.Chapters, chapter)
	}

	sort.Slice(coverage.Chapters, func(i, j int) bool {
		return chapterLess(coverage.Chapters[i], coverage.Chapters[j])
	})

	return coverage, skipped, nil
}

// TagSearch returns records whose tags match the pattern, ascending by
// id. The pattern is compiled as a regular expression when valid and
// falls back to literal matching otherwise; either way the match is
// unanchored containment against each tag token, so "cell" matches a
// tag that merely contains "cell".
func TagSearch(store Store, pattern string) ([]*Record, []Result, error) {
	re, reErr := regexp.Compile(pattern)

	results, err := store.List()
	if err != nil {
		return nil, nil, err
	}

	valid, skipped := Partition(results)

	var matches []*Record

	for _, rec := range valid {
		for _, tag := range rec.TagList() {
			if tagMatches(tag, pattern, re, reErr == nil) {
				matches = append(matches, rec)
				break
			}
		}
	}

	return matches, skipped, nil
}

func tagMatches(tag, pattern string, re *regexp.Regexp, haveRe bool) bool {
	if haveRe {
		return re.MatchString(tag)
	}

	return strings.Contains(tag, pattern)
}

// Partition splits a snapshot into parsed records and errored results.
// Every view and listing skips errored entries the same way, so the
// split lives here rather than at each call site.
func Partition(results []Result) ([]*Record, []Result) {
	var (
		valid   []*Record
		skipped []Result
	)

	for _, result := range results {
		if result.Err != nil {
			skipped = append(skipped, result)
			continue
		}

		valid = append(valid, result.Record)
	}

	return valid, skipped
}
