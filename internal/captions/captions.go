// Package captions detects figure and table caption lines and validates
// their numbering sequences for gaps and duplicates.
package captions

import (
	"regexp"
	"strings"
)

// Category distinguishes figure captions from table captions.
type Category int

const (
	Figure Category = iota
	Table
)

func (c Category) String() string {
	if c == Table {
		return "table"
	}
	return "figure"
}

// Entry is one detected caption.
type Entry struct {
	Number   string // leading sequence number, may contain a dot ("4.18")
	Title    string
	Category Category
	Source   string // the full matched text
	Line     int    // source line index, -1 when unknown
}

// pattern pairs a compiled regex with the category it detects. Submatch 1
// is the number, submatch 2 the title.
type pattern struct {
	re       *regexp.Regexp
	category Category
}

// Detection patterns, most specific first. Several patterns can overlap on
// one line; matches are deduplicated by span so a caption is never counted
// twice.
var patterns = []pattern{
	// Standard and decimal sub-figure: "Figure 4: ...", "Figure 4.18: ...".
	{regexp.MustCompile(`(?i)\bfigure\s*(\d+(?:\.\d+)?)\s*[:.\-\x{2013}]\s*(\S.*)`), Figure},
	// Abbreviated and no-space: "Fig. 2: ...", "Fig2: ...".
	{regexp.MustCompile(`(?i)\bfig\.?\s*(\d+(?:\.\d+)?)\s*[:.\-\x{2013}]\s*(\S.*)`), Figure},
	// Other visual labels treated as figures.
	{regexp.MustCompile(`(?i)\b(?:image|chart|graph|diagram|plate|photo)\s*(\d+(?:\.\d+)?)\s*[:.\-\x{2013}]\s*(\S.*)`), Figure},
	// Standard table: "Table 2.1: ...".
	{regexp.MustCompile(`(?i)\btable\s*(\d+(?:\.\d+)?)\s*[:.\-\x{2013}]\s*(\S.*)`), Table},
	// Abbreviated: "Tbl. 3: ...", "Tab 4.5: ...".
	{regexp.MustCompile(`(?i)\btbl\.?\s*(\d+(?:\.\d+)?)\s*[:.\-\x{2013}]\s*(\S.*)`), Table},
	{regexp.MustCompile(`(?i)\btab\.?\s*(\d+(?:\.\d+)?)\s*[:.\-\x{2013}]\s*(\S.*)`), Table},
}

// listPrefix strips an enumeration marker so "1. Figure 3: x" still
// detects as a caption for Figure 3.
var listPrefix = regexp.MustCompile(`^\s*\d+[.)]\s+`)

// Detect returns the caption entry for a line, if any. Only captions that
// start the line (optionally behind a list marker) count; a figure mention
// buried mid-sentence does not.
func Detect(text string) (Entry, bool) {
	trimmed := strings.TrimSpace(text)
	offset := 0
	if loc := listPrefix.FindStringIndex(trimmed); loc != nil {
		offset = loc[1]
	}
	body := trimmed[offset:]

	for _, p := range patterns {
		loc := p.re.FindStringSubmatchIndex(body)
		if loc == nil || loc[0] != 0 {
			continue
		}
		groups := p.re.FindStringSubmatch(body)
		return Entry{
			Number:   groups[1],
			Title:    strings.TrimSpace(groups[2]),
			Category: p.category,
			Source:   body[loc[0]:loc[1]],
			Line:     -1,
		}, true
	}
	return Entry{}, false
}

// DetectFigure is Detect restricted to figure captions.
func DetectFigure(text string) (Entry, bool) {
	e, ok := Detect(text)
	if !ok || e.Category != Figure {
		return Entry{}, false
	}
	return e, true
}

// DetectTable is Detect restricted to table captions.
func DetectTable(text string) (Entry, bool) {
	e, ok := Detect(text)
	if !ok || e.Category != Table {
		return Entry{}, false
	}
	return e, true
}

// Scan collects all caption entries from a line sequence in document order.
// At most one entry is produced per line: overlapping patterns matching the
// same span never double-count a caption.
func Scan(lines []string) []Entry {
	var entries []Entry
	for i, line := range lines {
		if e, ok := Detect(line); ok {
			e.Line = i
			entries = append(entries, e)
		}
	}
	return entries
}
