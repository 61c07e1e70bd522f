package numbering

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	chapterRe      = regexp.MustCompile(`(?i)^CHAPTER\s+([A-Za-z0-9]+)\s*[:.\-]?\s*(.*)$`)
	appendixRe     = regexp.MustCompile(`(?i)^APPENDIX(?:\s+([A-Z0-9]+))?\s*[:.\-]?\s*(.*)$`)
	numberPrefixRe = regexp.MustCompile(`^(\d+(?:\.\d+)*)\.?\s+(\S.*)$`)
)

var wordNumbers = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18,
	"nineteen": 19, "twenty": 20,
}

var romanValues = map[byte]int{
	'i': 1, 'v': 5, 'x': 10, 'l': 50, 'c': 100, 'd': 500, 'm': 1000,
}

// ParseChapterNumber interprets a chapter designator written as a word
// ("ONE"), a roman numeral ("I"), or digits ("1"). Returns 0, false when
// the form is not recognized.
func ParseChapterNumber(w string) (int, bool) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" {
		return 0, false
	}
	if n, err := strconv.Atoi(w); err == nil && n > 0 {
		return n, true
	}
	if n, ok := wordNumbers[w]; ok {
		return n, true
	}
	if n, ok := parseRoman(w); ok {
		return n, true
	}
	return 0, false
}

func parseRoman(w string) (int, bool) {
	total := 0
	prev := 0
	for i := len(w) - 1; i >= 0; i-- {
		v, ok := romanValues[w[i]]
		if !ok {
			return 0, false
		}
		if v < prev {
			total -= v
		} else {
			total += v
			prev = v
		}
	}
	if total <= 0 {
		return 0, false
	}
	return total, true
}

// splitNumberPrefix separates a pre-existing decimal number from the
// heading text. Returns "" and the input unchanged when there is none.
func splitNumberPrefix(text string) (number, rest string) {
	if m := numberPrefixRe.FindStringSubmatch(text); m != nil {
		return m[1], m[2]
	}
	return "", text
}
