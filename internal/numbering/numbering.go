// Package numbering assigns hierarchical numbers to document headings.
// A Numberer threads explicit counter state through a sequential stream of
// headings; numbering is deterministic and never fails, headings without
// the context they need simply stay unnumbered.
package numbering

import (
	"fmt"
	"strings"
)

// State holds the counters and context threaded through heading
// numbering. Owned by exactly one Numberer; reset per document.
type State struct {
	Chapter       int
	Section       int
	Subsection    int
	Subsubsection int

	InAppendix     bool
	AppendixLetter byte

	LastHeadingText     string
	OpenParentSection   string // normalized text of the open parent, "" when none
	ParentSectionNumber string
}

// Reset returns the state to its document-start value.
func (s *State) Reset() {
	*s = State{}
}

// Record is the immutable outcome of numbering one heading.
type Record struct {
	OriginalText string
	NumberedText string
	Number       string // "" for unnumbered headings
	Level        int    // 1-3
	Chapter      int
	Renumbered   bool // computed number differs from a pre-existing one
}

// Canonical sections that never receive a number and never touch the
// counters.
var unnumberedSections = map[string]bool{
	"abstract":              true,
	"acknowledgements":      true,
	"acknowledgments":       true,
	"declaration":           true,
	"certification":         true,
	"dedication":            true,
	"approval":              true,
	"table of contents":     true,
	"list of figures":       true,
	"list of tables":        true,
	"list of abbreviations": true,
	"list of acronyms":      true,
	"list of appendices":    true,
	"references":            true,
	"bibliography":          true,
	"works cited":           true,
	"preface":               true,
	"foreword":              true,
	"glossary":              true,
	"summary":               true,
	"executive summary":     true,
}

// Options tunes the numberer.
type Options struct {
	// ChildOverlapMin is the number of shared content words the generic
	// parent/child heuristic requires. The heuristic is fuzzy; raising
	// this makes nesting more conservative.
	ChildOverlapMin int
}

// Numberer numbers a sequential stream of headings for one document.
// Not safe for concurrent use; give each document its own instance.
type Numberer struct {
	state State
	opts  Options
}

// New creates a Numberer with document-start state.
func New(opts Options) *Numberer {
	if opts.ChildOverlapMin <= 0 {
		opts.ChildOverlapMin = 1
	}
	return &Numberer{opts: opts}
}

// Reset clears all counters for a new document.
func (n *Numberer) Reset() {
	n.state.Reset()
}

// State returns a copy of the current counter state.
func (n *Numberer) State() State {
	return n.state
}

// SetChapter forces the chapter context, for callers that number a
// fragment rather than a whole document.
func (n *Numberer) SetChapter(ch int) {
	n.state.Chapter = ch
}

// NumberHeading numbers one heading. targetLevel hints the structural
// level the classifier saw (0 for unknown); semantic rules inside can
// override a level-2 hint to level 3 but never the reverse.
func (n *Numberer) NumberHeading(text string, targetLevel int) Record {
	s := &n.state
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Record{OriginalText: text, NumberedText: text}
	}

	// Chapters open a new top-level context and carry no decimal number.
	if m := chapterRe.FindStringSubmatch(trimmed); m != nil {
		if num, ok := ParseChapterNumber(m[1]); ok {
			s.Chapter = num
		} else {
			s.Chapter++
		}
		s.Section, s.Subsection, s.Subsubsection = 0, 0, 0
		s.InAppendix = false
		s.OpenParentSection = ""
		s.ParentSectionNumber = ""
		s.LastHeadingText = trimmed
		return Record{OriginalText: text, NumberedText: trimmed, Level: 1, Chapter: s.Chapter}
	}

	// Appendices switch to letter-based numbering.
	if m := appendixRe.FindStringSubmatch(trimmed); m != nil {
		s.InAppendix = true
		if len(m[1]) == 1 && m[1][0] >= 'A' && m[1][0] <= 'Z' {
			s.AppendixLetter = m[1][0]
		} else if s.AppendixLetter == 0 {
			s.AppendixLetter = 'A'
		} else {
			s.AppendixLetter++
		}
		s.Section, s.Subsection, s.Subsubsection = 0, 0, 0
		s.OpenParentSection = ""
		s.ParentSectionNumber = ""
		s.LastHeadingText = trimmed
		return Record{OriginalText: text, NumberedText: trimmed, Level: 1, Chapter: s.Chapter}
	}

	// Canonical front and back matter stays unnumbered and leaves the
	// counters alone.
	if unnumberedSections[strings.ToLower(strings.TrimRight(trimmed, ":"))] {
		return Record{OriginalText: text, NumberedText: trimmed, Level: 1, Chapter: s.Chapter}
	}

	// Other level-1 headings (all-caps major sections) start a new
	// unnumbered top-level context.
	if targetLevel == 1 {
		s.Chapter++
		s.Section, s.Subsection, s.Subsubsection = 0, 0, 0
		s.OpenParentSection = ""
		s.ParentSectionNumber = ""
		s.LastHeadingText = trimmed
		return Record{OriginalText: text, NumberedText: trimmed, Level: 1, Chapter: s.Chapter}
	}

	existing, rest := splitNumberPrefix(trimmed)
	level := n.decideLevel(existing, rest, targetLevel)

	// No chapter context yet: recover by leaving the heading unnumbered.
	if s.Chapter == 0 && !s.InAppendix {
		s.LastHeadingText = rest
		return Record{OriginalText: text, NumberedText: trimmed, Level: level}
	}

	prefix := fmt.Sprintf("%d", s.Chapter)
	if s.InAppendix {
		prefix = string(s.AppendixLetter)
	}

	var number string
	parentKey, isParent := matchParentKeyword(rest)

	switch level {
	case 3:
		if s.Section == 0 {
			s.Section = 1
		}
		s.Subsection++
		s.Subsubsection = 0
		number = fmt.Sprintf("%s.%d.%d", prefix, s.Section, s.Subsection)
	default:
		s.Section++
		s.Subsection = 0
		s.Subsubsection = 0
		number = fmt.Sprintf("%s.%d", prefix, s.Section)
		if isParent {
			s.OpenParentSection = parentKey
		} else {
			s.OpenParentSection = strings.ToLower(rest)
		}
		s.ParentSectionNumber = number
	}

	s.LastHeadingText = rest

	return Record{
		OriginalText: text,
		NumberedText: number + " " + rest,
		Number:       number,
		Level:        level,
		Chapter:      s.Chapter,
		Renumbered:   existing != "" && existing != number,
	}
}

// decideLevel picks 2 or 3 for a non-chapter heading. Explicit subsection
// indicators outrank the parent keyword dictionary, which outranks the
// generic overlap heuristic.
func (n *Numberer) decideLevel(existing, rest string, targetLevel int) int {
	if hasSubsectionIndicator(rest) {
		return 3
	}
	if _, ok := matchParentKeyword(rest); ok {
		return 2
	}
	if strings.Count(existing, ".") >= 2 {
		return 3
	}
	if n.state.OpenParentSection != "" && isChildOf(n.state.OpenParentSection, rest, n.opts.ChildOverlapMin) {
		return 3
	}
	if targetLevel == 3 {
		return 3
	}
	return 2
}

// ProcessHeadings numbers an ordered heading list against fresh per-call
// sequencing, without resetting chapter context set via SetChapter.
func (n *Numberer) ProcessHeadings(headings []string) []Record {
	records := make([]Record, 0, len(headings))
	for _, h := range headings {
		records = append(records, n.NumberHeading(h, 0))
	}
	return records
}
