// Package docline defines the input contract between document loaders and
// the structure engine: an ordered sequence of plain-text lines with
// optional style hints, already linearized in reading order.
package docline

import "strings"

// Markers inserted by loaders for non-text content. The engine treats them
// as structural signals, never as prose.
const (
	TableStart = "[TABLE START]"
	TableEnd   = "[TABLE END]"
)

// Style carries optional formatting hints from the source document.
type Style struct {
	Bold     bool
	FontSize float64
}

// Line is one source line, paragraph, or table row.
type Line struct {
	Text  string
	Style *Style // nil when the loader has no formatting information
}

// ImageMarker renders the placeholder a loader emits for an embedded image.
func ImageMarker(id string) string {
	return "[IMAGE:" + id + "]"
}

// TableRow renders cells as a pipe-delimited row, the form the engine's
// table rules recognize. The input slice is not modified.
func TableRow(cells []string) string {
	clean := make([]string, len(cells))
	for i, c := range cells {
		clean[i] = strings.TrimSpace(strings.ReplaceAll(c, "|", "/"))
	}
	return "| " + strings.Join(clean, " | ") + " |"
}

// FromText splits raw text into lines with no style hints.
func FromText(text string) []Line {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := make([]Line, len(raw))
	for i, t := range raw {
		lines[i] = Line{Text: t}
	}
	return lines
}

// Texts extracts the plain text of a line sequence.
func Texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, ln := range lines {
		out[i] = ln.Text
	}
	return out
}
