package lecture

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
)

// Metadata block markers. The block is a contiguous run of comment
// lines opened by metaOpenMarker and terminated by the first blank
// line (or EOF).
const (
	commentPrefix  = "%"
	metaOpenMarker = "% META"
)

// headerRe matches the structural header marker: \lecture{id}{date}{title}.
// The title argument is greedy so embedded braces survive.
var headerRe = regexp.MustCompile(`^\\lecture\{(\d+)\}\{([^{}]*)\}\{(.*)\}\s*$`)

// Header is the parsed header marker line. It denormalizes the
// record's date: the writer keeps the marker's date argument in sync
// with the metadata block on every rewrite.
type Header struct {
	ID    int
	Date  string
	Title string
}

// Line renders the header marker back to its document form.
func (h Header) Line() string {
	return fmt.Sprintf(`\lecture{%d}{%s}{%s}`, h.ID, h.Date, h.Title)
}

// Document is one lecture file split for structured editing. The
// original lines are kept verbatim; edits remove and re-insert the
// metadata block rather than splicing text in place.
type Document struct {
	lines []string

	// headerIdx is the index of the last header marker line, -1 if
	// the document has none. Later duplicate markers are authoritative.
	headerIdx int
	header    Header

	// metaStart/metaEnd bound the metadata block [start, end), with
	// metaStart == -1 when the document has no block.
	metaStart int
	metaEnd   int

	record   Record
	leftover []string // verbatim block lines the parser could not claim
	warnings []error
}

// ParseDocument splits raw document text into header, metadata block
// and surrounding content. Recognized metadata lines that fail to
// parse are skipped for the record, kept verbatim for rewrite, and
// reported as warnings; the parse itself never fails.
func ParseDocument(raw string) *Document {
	doc := &Document{
		lines:     strings.Split(raw, "\n"),
		headerIdx: -1,
		metaStart: -1,
		metaEnd:   -1,
	}

	for idx, line := range doc.lines {
		if m := headerRe.FindStringSubmatch(line); m != nil {
			id, _ := strconv.Atoi(m[1])
			doc.headerIdx = idx
			doc.header = Header{ID: id, Date: m[2], Title: m[3]}
		}
	}

	doc.parseMetaBlock()

	if doc.headerIdx >= 0 {
		doc.record.Title = doc.header.Title
	}

	return doc
}

// parseMetaBlock locates the block and assigns recognized field lines.
// A header marker line ends the block like a blank line does, so a
// block sitting directly above the marker never swallows it.
func (d *Document) parseMetaBlock() {
	start := -1

	for idx, line := range d.lines {
		if strings.TrimRight(line, " \t") == metaOpenMarker {
			start = idx
			break
		}
	}

	if start == -1 {
		return
	}

	end := start + 1
	for end < len(d.lines) && strings.TrimSpace(d.lines[end]) != "" && !headerRe.MatchString(d.lines[end]) {
		end++
	}

	d.metaStart = start
	d.metaEnd = end

	for _, line := range d.lines[start+1 : end] {
		d.parseMetaLine(line)
	}
}

// parseMetaLine assigns one "% Label: value" block line. Lines that
// are not recognized field lines go to leftover and are re-emitted
// verbatim on rewrite.
func (d *Document) parseMetaLine(line string) {
	rest, ok := strings.CutPrefix(line, commentPrefix)
	if !ok {
		d.leftover = append(d.leftover, line)
		return
	}

	label, value, ok := strings.Cut(rest, ":")
	if !ok {
		d.leftover = append(d.leftover, line)
		return
	}

	label = strings.TrimSpace(label)
	value = strings.TrimSpace(value)

	field := d.record.field(label)
	if field == nil {
		d.leftover = append(d.leftover, line)
		return
	}

	if err := validateFieldValue(label, value); err != nil {
		// Skip the line, keep going, preserve the text.
		d.warnings = append(d.warnings, fmt.Errorf("%w: %v", ErrMalformedRecord, err))
		d.leftover = append(d.leftover, line)

		return
	}

	*field = NewField(value)
}

// Record returns the parsed record with the given document id.
func (d *Document) Record(id int) *Record {
	rec := d.record
	rec.ID = id

	return &rec
}

// Warnings returns non-fatal parse problems (malformed field lines).
func (d *Document) Warnings() []error {
	return d.warnings
}

// HasHeader reports whether the document contains a header marker.
func (d *Document) HasHeader() bool {
	return d.headerIdx >= 0
}

// Header returns the parsed header marker.
func (d *Document) HeaderMarker() Header {
	return d.header
}

// Render re-serializes the document unchanged.
func (d *Document) Render() string {
	return strings.Join(d.lines, "\n")
}

// RenderWith re-serializes the document with rec as its metadata: the
// old block is removed, a fresh block is inserted immediately after
// the header marker line, and the marker's date argument is rewritten
// to the record's date when that field is present. All other lines are
// preserved verbatim.
func (d *Document) RenderWith(rec *Record) (string, error) {
	if d.headerIdx < 0 {
		return "", ErrNoHeaderMarker
	}

	headerIdx := d.headerIdx
	lines := make([]string, 0, len(d.lines))

	for idx, line := range d.lines {
		if d.metaStart >= 0 && idx >= d.metaStart && idx < d.metaEnd {
			if idx < d.headerIdx {
				headerIdx--
			}

			continue
		}

		lines = append(lines, line)
	}

	// Denormalization: the header date follows the metadata block.
	header := d.header
	if rec.Date.Present {
		header.Date = rec.Date.Value
	}

	lines[headerIdx] = header.Line()

	block := formatMetaBlock(rec, d.leftover)

	out := make([]string, 0, len(lines)+len(block)+1)
	out = append(out, lines[:headerIdx+1]...)
	out = append(out, block...)

	rest := lines[headerIdx+1:]

	// The block is terminated by the first blank line; guarantee one
	// unless the following line is already blank or the file ends.
	if len(rest) > 0 && strings.TrimSpace(rest[0]) != "" {
		out = append(out, "")
	}

	out = append(out, rest...)

	return strings.Join(out, "\n"), nil
}

// formatMetaBlock serializes the block: open marker, present fields in
// fixed label order, then any preserved leftover lines.
func formatMetaBlock(rec *Record, leftover []string) []string {
	block := []string{metaOpenMarker}

	for _, label := range labelOrder {
		field := rec.field(label)
		if !field.Present {
			continue
		}

		if field.Value == "" {
			block = append(block, commentPrefix+" "+label+":")
		} else {
			block = append(block, commentPrefix+" "+label+": "+field.Value)
		}
	}

	block = append(block, leftover...)

	return block
}

// ReadLecture reads and parses the document at path. The raw document
// is returned alongside the record so callers can run the content
// extractor without a second read.
func ReadLecture(path string, id int) (*Record, *Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}

		return nil, nil, fmt.Errorf("reading lecture: %w", err)
	}

	doc := ParseDocument(string(data))

	return doc.Record(id), doc, nil
}
