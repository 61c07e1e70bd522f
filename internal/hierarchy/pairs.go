package hierarchy

import (
	"regexp"
	"strings"
)

// pair names a known parent→child relationship: a heading containing the
// parent word is expected to own headings containing the child word.
// Ordered; first match wins.
type pair struct {
	parent string
	child  string
}

var knownPairs = []pair{
	{"WEEK", "DAY"},
	{"UNIT", "LESSON"},
	{"CHAPTER", "SECTION"},
	{"MODULE", "TOPIC"},
	{"PHASE", "STAGE"},
	{"THEORY", "IMPLEMENTATION"},
	{"TYPES", "TYPE"},
	{"ANALYSIS", "FINDING"},
	{"METHOD", "STEP"},
	{"CATEGORY", "SUBCATEGORY"},
	{"OBJECTIVES", "OBJECTIVE"},
	{"QUESTIONS", "QUESTION"},
}

var (
	numberedLineRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)\s+(\S.*)$`)
	numberMarkerRe = regexp.MustCompile(`^\d+[.)]\s+`)
)

var heuristicStopWords = map[string]bool{
	"a": true, "an": true, "and": true, "the": true, "of": true,
	"in": true, "on": true, "for": true, "to": true, "is": true,
	"are": true, "with": true, "by": true,
}

// containsWord reports whether any word of text equals w (case folded).
func containsWord(text, w string) bool {
	for _, t := range strings.Fields(strings.ToUpper(text)) {
		if strings.Trim(t, ".,;:()") == w {
			return true
		}
	}
	return false
}

// isHierarchicalPair decides whether two adjacent same-level headings are
// really parent and child: a known word pair, a lettered parent followed
// by an enumerated child, or the generic short-parent/long-child word
// overlap heuristic.
func isHierarchicalPair(parentText, childText string, overlapMin int) bool {
	for _, p := range knownPairs {
		if containsWord(parentText, p.parent) && containsWord(childText, p.child) {
			return true
		}
	}

	// "PART A" followed by "1. Introduction": the child restarts its own
	// enumeration one level down.
	if containsWord(parentText, "PART") && numberMarkerRe.MatchString(childText) {
		return true
	}

	// Generic heuristic: short parent, long child, shared content word.
	pw := strings.Fields(parentText)
	cw := strings.Fields(childText)
	if len(pw) >= 4 || len(cw) <= 3 {
		return false
	}
	if overlapMin <= 0 {
		overlapMin = 1
	}
	set := make(map[string]bool, len(pw))
	for _, w := range pw {
		w = strings.Trim(strings.ToLower(w), ".,;:()")
		if w != "" && !heuristicStopWords[w] {
			set[w] = true
		}
	}
	shared := 0
	for _, w := range cw {
		w = strings.Trim(strings.ToLower(w), ".,;:()")
		if w != "" && set[w] {
			shared++
		}
	}
	return shared >= overlapMin
}
