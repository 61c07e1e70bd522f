// Package hierarchy repairs heading numbers that sit at the wrong level:
// an already-numbered heading pair where the second is semantically a
// child of the first gets renumbered to nest one level under its parent.
package hierarchy

import "strings"

// Corrector rewrites malformed heading numbers in a line sequence. The
// pass is idempotent: a corrected child sits one level below its parent
// and no longer matches the same-level adjacent pair precondition.
type Corrector struct {
	overlapMin int
}

// New creates a Corrector. overlapMin tunes the fuzzy pair heuristic;
// values below 1 fall back to 1.
func New(overlapMin int) *Corrector {
	if overlapMin <= 0 {
		overlapMin = 1
	}
	return &Corrector{overlapMin: overlapMin}
}

// Correct runs the line correction over newline-joined text.
func (c *Corrector) Correct(text string) string {
	return strings.Join(c.CorrectLines(strings.Split(text, "\n")), "\n")
}

// CorrectLines scans adjacent line pairs. When both carry numbers at the
// same depth under the same parent prefix and the texts form a known or
// heuristic parent/child pair, the child is re-emitted as parentNumber.1
// immediately after the parent. Non-matching lines pass through untouched;
// a line is never partially rewritten.
func (c *Corrector) CorrectLines(lines []string) []string {
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		if i+1 >= len(lines) {
			out = append(out, lines[i])
			continue
		}

		pm := numberedLineRe.FindStringSubmatch(strings.TrimSpace(lines[i]))
		cm := numberedLineRe.FindStringSubmatch(strings.TrimSpace(lines[i+1]))
		if pm == nil || cm == nil || !sameLevelSiblings(pm[1], cm[1]) {
			out = append(out, lines[i])
			continue
		}

		if !isHierarchicalPair(pm[2], cm[2], c.overlapMin) {
			out = append(out, lines[i])
			continue
		}

		out = append(out, lines[i])
		out = append(out, pm[1]+".1 "+cm[2])
		i++ // the child's original line is consumed
	}

	return out
}

// sameLevelSiblings reports whether two heading numbers sit at the same
// depth with a common parent prefix ("3.6" and "3.7", not "3.6" and
// "3.6.1").
func sameLevelSiblings(a, b string) bool {
	ap := strings.Split(a, ".")
	bp := strings.Split(b, ".")
	if len(ap) != len(bp) {
		return false
	}
	for i := 0; i < len(ap)-1; i++ {
		if ap[i] != bp[i] {
			return false
		}
	}
	return ap[len(ap)-1] != bp[len(bp)-1]
}
