package lecture

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const theoremDoc = `\lecture{1}{2026-01-15}{Cells}
% META
% Tags: biology

\section{Membranes}
Lipid bilayers.

\begin{theorem}
Every cell has a membrane.
\end{theorem}

Interlude text.

\begin{theorem}
Membranes are selective.
And that is the point.
\end{theorem}

\begin{example}
\end{example}

\section*{Organelles}
Mitochondria.
Ribosomes.
`

func TestExtractBlocks(t *testing.T) {
	t.Parallel()

	got := ExtractBlocks(theoremDoc, "theorem")

	want := []string{
		"Every cell has a membrane.",
		"Membranes are selective.",
		"And that is the point.",
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("blocks mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractBlocksAbsentKind(t *testing.T) {
	t.Parallel()

	if got := ExtractBlocks(theoremDoc, "definition"); len(got) != 0 {
		t.Errorf("absent kind should yield nothing, got %v", got)
	}
}

func TestBlockOccurrences(t *testing.T) {
	t.Parallel()

	got := BlockOccurrences(theoremDoc, "theorem")

	want := [][]string{
		{"Every cell has a membrane."},
		{"Membranes are selective.", "And that is the point."},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("occurrences mismatch (-want +got):\n%s", diff)
	}
}

func TestBlockOccurrencesEmptyInterior(t *testing.T) {
	t.Parallel()

	got := BlockOccurrences(theoremDoc, "example")

	// A present-but-empty block is a valid empty occurrence, not a
	// missing one.
	if len(got) != 1 || len(got[0]) != 0 {
		t.Errorf("got %v, want one empty occurrence", got)
	}
}

func TestBlockOccurrencesIndentedMarkers(t *testing.T) {
	t.Parallel()

	raw := "  \\begin{note}\nindented content\n  \\end{note}\n"

	got := BlockOccurrences(raw, "note")
	if len(got) != 1 || len(got[0]) != 1 || got[0][0] != "indented content" {
		t.Errorf("got %v", got)
	}
}

func TestExtractSection(t *testing.T) {
	t.Parallel()

	got := ExtractSection(theoremDoc, "Membranes")

	if len(got) == 0 {
		t.Fatal("expected section content")
	}

	if got[0] != "Lipid bilayers." {
		t.Errorf("first line=%q", got[0])
	}

	// Stops at the next sectioning marker, starred or not.
	for _, line := range got {
		if line == `\section*{Organelles}` || line == "Mitochondria." {
			t.Errorf("section ran past its boundary: %q", line)
		}
	}
}

func TestExtractSectionStarredRunsToEOF(t *testing.T) {
	t.Parallel()

	got := ExtractSection(theoremDoc, "Organelles")

	want := []string{"Mitochondria.", "Ribosomes.", ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("section mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractSectionAbsent(t *testing.T) {
	t.Parallel()

	if got := ExtractSection(theoremDoc, "Nucleus"); len(got) != 0 {
		t.Errorf("absent section should yield nothing, got %v", got)
	}
}
