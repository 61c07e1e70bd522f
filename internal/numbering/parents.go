package numbering

import "strings"

// Subsection indicator prefixes. A heading starting with one of these is
// always a level-3 child of the open parent section, outranking the
// keyword dictionary.
var subsectionIndicators = []string{
	"main ", "specific ", "general ", "primary ", "secondary ", "overall ",
}

// Parent section keywords. A heading containing one opens a parent context
// at level 2 so following headings can nest under it.
var parentKeywords = []string{
	"research objectives",
	"research questions",
	"objectives of the study",
	"aims and objectives",
	"research hypotheses",
	"study objectives",
}

// parentChildren maps a parent keyword to the child keywords expected
// underneath it. Data, not code: extend the table, not the control flow.
var parentChildren = map[string][]string{
	"research objectives":     {"objective", "main", "specific", "general"},
	"research questions":      {"question", "main", "specific"},
	"objectives of the study": {"objective", "main", "specific", "general"},
	"aims and objectives":     {"aim", "objective"},
	"research hypotheses":     {"hypothesis", "null", "alternative"},
	"study objectives":        {"objective"},
	"analysis":                {"finding"},
	"findings":                {"finding"},
	"method":                  {"step"},
	"methodology":             {"approach", "design", "procedure"},
	"types":                   {"type"},
	"week":                    {"day"},
	"unit":                    {"lesson"},
	"module":                  {"topic"},
}

// stop words skipped by the generic overlap heuristic.
var overlapStopWords = map[string]bool{
	"a": true, "an": true, "and": true, "the": true, "of": true,
	"in": true, "on": true, "for": true, "to": true, "is": true,
	"are": true, "with": true, "by": true,
}

func hasSubsectionIndicator(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range subsectionIndicators {
		if strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

func matchParentKeyword(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, k := range parentKeywords {
		if strings.Contains(lower, k) {
			return k, true
		}
	}
	return "", false
}

// isChildOf decides whether child nests under parent: a dictionary hit, or
// the generic short-parent/long-child heuristic sharing content words.
// overlapMin tunes how many shared words the heuristic demands.
func isChildOf(parent, child string, overlapMin int) bool {
	p := strings.ToLower(parent)
	c := strings.ToLower(child)

	for key, kids := range parentChildren {
		if !strings.Contains(p, key) {
			continue
		}
		for _, kid := range kids {
			if strings.Contains(c, kid) {
				return true
			}
		}
	}

	if len(strings.Fields(p)) >= 4 || len(strings.Fields(c)) <= 3 {
		return false
	}
	pw := splitContentWords(p)
	cw := splitContentWords(c)
	if overlapMin <= 0 {
		overlapMin = 1
	}
	shared := 0
	set := make(map[string]bool, len(pw))
	for _, w := range pw {
		set[w] = true
	}
	for _, w := range cw {
		if set[w] {
			shared++
		}
	}
	return shared >= overlapMin
}

func splitContentWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		w = strings.Trim(w, ".,;:()[]\"'")
		if w != "" && !overlapStopWords[w] {
			out = append(out, w)
		}
	}
	return out
}
