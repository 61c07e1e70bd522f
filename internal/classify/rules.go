package classify

import (
	"regexp"
	"strings"
	"unicode"
)

// Canonical level-1 section names found in academic documents. Matched
// case-insensitively against the whole line.
var canonicalH1 = map[string]bool{
	"abstract":          true,
	"introduction":      true,
	"literature review": true,
	"methodology":       true,
	"methods":           true,
	"results":           true,
	"findings":          true,
	"discussion":        true,
	"conclusion":        true,
	"conclusions":       true,
	"recommendations":   true,
	"references":        true,
	"bibliography":      true,
	"executive summary": true,
	"acknowledgements":  true,
	"acknowledgments":   true,
	"summary":           true,
	"appendix":          true,
	"appendices":        true,
	"glossary":          true,
	"index":             true,
	"preface":           true,
	"foreword":          true,
	"works cited":       true,
}

// Dissertation front matter: canonical sections that outrank every heading
// rule so a stray style never demotes them.
var frontMatter = map[string]bool{
	"declaration":           true,
	"certification":         true,
	"dedication":            true,
	"approval":              true,
	"approval page":         true,
	"table of contents":     true,
	"list of figures":       true,
	"list of tables":        true,
	"list of abbreviations": true,
	"list of acronyms":      true,
	"list of appendices":    true,
}

// Definition-style lead terms: "Term: body".
var definitionTerms = map[string]bool{
	"definition":  true,
	"objective":   true,
	"objectives":  true,
	"method":      true,
	"methods":     true,
	"conclusion":  true,
	"purpose":     true,
	"goal":        true,
	"aim":         true,
	"result":      true,
	"results":     true,
	"note":        true,
	"key point":   true,
	"hypothesis":  true,
	"theorem":     true,
	"example":     true,
	"remark":      true,
	"observation": true,
	"finding":     true,
	"assumption":  true,
}

// Connectives allowed lowercase inside a title-case heading.
var titleConnectives = map[string]bool{
	"a": true, "an": true, "and": true, "at": true, "between": true,
	"by": true, "for": true, "from": true, "in": true, "into": true,
	"of": true, "on": true, "or": true, "over": true, "the": true,
	"to": true, "under": true, "versus": true, "vs": true, "with": true,
	"within": true, "without": true,
}

// Stop words ignored by the word-overlap heuristics.
var stopWords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"in": true, "is": true, "it": true, "of": true, "on": true, "or": true,
	"that": true, "the": true, "this": true, "to": true, "was": true,
	"were": true, "with": true,
}

var (
	tableStartRe = regexp.MustCompile(`(?i)^\[\s*table\s+start\s*\]$`)
	tableEndRe   = regexp.MustCompile(`(?i)^\[\s*table\s+end\s*\]$`)
	tableSepRe   = regexp.MustCompile(`^\|[\s\-:+|]+\|$`)
	tableRowRe   = regexp.MustCompile(`^\|.*\|$`)
	imageRe      = regexp.MustCompile(`^\[IMAGE:([^\]]+)\]$`)

	chapterRe = regexp.MustCompile(`(?i)^CHAPTER\s+([A-Za-z0-9]+)\s*[:.\-]?\s*(.*)$`)
	partRe    = regexp.MustCompile(`(?i)^PART\s+([IVXLCDM]+|\d+)\b\s*[:.\-]?\s*(.*)$`)

	h2NumberRe = regexp.MustCompile(`^(\d+\.\d+)\.?\s+(\S.*)$`)
	h3NumberRe = regexp.MustCompile(`^(\d+\.\d+\.\d+)\.?\s+(\S.*)$`)
	h3LetterRe = regexp.MustCompile(`^\(?([a-z])\)\s+(.+)$`)

	numberedParenRe = regexp.MustCompile(`^(\(\d+\))\s+(.+)$`)
	numberedRe      = regexp.MustCompile(`^(\d+[.)])\s+(.+)$`)
	romanItemRe     = regexp.MustCompile(`^([ivxlc]+[.)])\s+(.+)$`)
	letterItemRe    = regexp.MustCompile(`^([A-Za-z][.)])\s+(.+)$`)
	bulletRe        = regexp.MustCompile(`^([\x{2022}\x{25CF}\x{25CB}\x{25AA}\x{25A0}\x{25E6}\x{2013}\x{2014}*-])\s+(.+)$`)

	definitionRe = regexp.MustCompile(`^([A-Z][A-Za-z ]{0,20}):\s+(\S.*)$`)

	refIEEERe    = regexp.MustCompile(`^\[\d+\]\s+\S`)
	refSurnameRe = regexp.MustCompile(`^[A-Z][A-Za-z'\x{2019}\-]+,\s+[A-Z]\.`)
	refEtAlRe    = regexp.MustCompile(`\bet al\.?,?\s+\(?\d{4}\)?`)
	refYearRe    = regexp.MustCompile(`\(\d{4}\)\.`)
	refURLRe     = regexp.MustCompile(`(?i)(retrieved from\s+\S+|https?://\S+)`)

	quoteRe      = regexp.MustCompile(`^["\x{201C}\x{2018}'].*["\x{201D}\x{2019}']$`)
	blockQuoteRe = regexp.MustCompile(`^>\s+\S`)

	codeFenceRe   = regexp.MustCompile("^```")
	codeKeywordRe = regexp.MustCompile(`^(func|def|class|import|package|return|var|const|public|private)\b.*[{};:]\s*$`)

	equationRe = regexp.MustCompile(`^[A-Za-z]\w*\s*=\s*[^=]+$`)

	citationRe = regexp.MustCompile(`\([A-Z][A-Za-z]+(?:\s+(?:&|and)\s+[A-Z][A-Za-z]+)?(?:\s+et al\.?)?,\s*\d{4}[a-z]?\)`)
	emphasisRe = regexp.MustCompile(`(\*\S[^*]*\*|_\S[^_]*_)`)

	metadataRules = []struct {
		subtype string
		re      *regexp.Regexp
	}{
		{"page", regexp.MustCompile(`(?i)^page\s+\d+(\s+of\s+\d+)?$`)},
		{"author", regexp.MustCompile(`(?i)^(by|author|prepared by|written by)[:\s]\s*\S`)},
		{"submission", regexp.MustCompile(`(?i)^submitted\s+(by|to)\b`)},
		{"supervisor", regexp.MustCompile(`(?i)^(supervisor|supervised by)\b`)},
		{"date", regexp.MustCompile(`(?i)^date[d]?[:\s]\s*\S`)},
		{"student", regexp.MustCompile(`(?i)^(student|matriculation|registration)\s*(id|no|number)?[:\s]`)},
		{"department", regexp.MustCompile(`(?i)^(department|faculty|school|university|institution)\s+of\b`)},
	}
)

// hasLetter reports whether s contains at least one letter.
func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// isAllCaps reports whether s contains letters and none of them lowercase.
func isAllCaps(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
	}
	return hasLetter(s)
}

// contentWords returns lowercased words with stop words removed.
func contentWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(strings.ToLower(s)) {
		w = strings.Trim(w, ".,;:()[]\"'")
		if w != "" && !stopWords[w] {
			out = append(out, w)
		}
	}
	return out
}
