package lecture

import (
	"regexp"
	"strings"
)

// Content extractor: mines delimited regions out of a document for the
// compilation pipeline. The markup is treated as opaque lines; nothing
// here interprets or renders it, and an absent region is an empty
// result, never an error.

// ExtractBlocks returns the lines strictly between \begin{kind} and
// \end{kind}, across every occurrence in the document, concatenated in
// document order. An occurrence with no interior lines contributes
// nothing but is still a valid (empty) occurrence.
func ExtractBlocks(raw, kind string) []string {
	var out []string

	for _, occurrence := range BlockOccurrences(raw, kind) {
		out = append(out, occurrence...)
	}

	return out
}

// BlockOccurrences returns the interior lines of each occurrence of
// the block kind separately, in document order. A present-but-empty
// occurrence yields an empty (not missing) element.
func BlockOccurrences(raw, kind string) [][]string {
	begin := `\begin{` + kind + `}`
	end := `\end{` + kind + `}`

	var (
		occurrences [][]string
		current     []string
		inBlock     bool
	)

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		switch {
		case !inBlock && strings.HasPrefix(trimmed, begin):
			inBlock = true
			current = []string{}
		case inBlock && strings.HasPrefix(trimmed, end):
			inBlock = false
			occurrences = append(occurrences, current)
			current = nil
		case inBlock:
			current = append(current, line)
		}
	}

	return occurrences
}

// sectionRe matches any sectioning line at section level or higher.
var sectionRe = regexp.MustCompile(`^\\(part|chapter|section)\*?\{`)

// ExtractSection returns the lines between the \section{title} (or
// starred variant) line and the next sectioning marker of equal or
// higher level, or end of file when no such marker follows.
func ExtractSection(raw, title string) []string {
	starts := []string{
		`\section{` + title + `}`,
		`\section*{` + title + `}`,
	}

	var (
		out       []string
		inSection bool
	)

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)

		if !inSection {
			for _, start := range starts {
				if trimmed == start {
					inSection = true
					break
				}
			}

			continue
		}

		if sectionRe.MatchString(trimmed) {
			break
		}

		out = append(out, line)
	}

	return out
}
