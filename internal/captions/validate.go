package captions

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// IssueKind classifies a sequence validation finding.
type IssueKind int

const (
	// MissingNumber: a top-level caption number absent from the dense
	// range 1..max.
	MissingNumber IssueKind = iota
	// Duplicate: the same literal number string appears more than once.
	Duplicate
)

func (k IssueKind) String() string {
	if k == Duplicate {
		return "duplicate"
	}
	return "missing_number"
}

// Issue is one numbering problem found in a caption sequence. Issues are
// data, never errors: an incomplete document under editing is a normal
// input.
type Issue struct {
	Kind     IssueKind
	Category Category
	Number   string // for MissingNumber, the decimal of the absent integer
	Count    int    // for Duplicate, how many times the literal appears
}

func (i Issue) String() string {
	switch i.Kind {
	case Duplicate:
		return fmt.Sprintf("%s %s appears %d times", i.Category, i.Number, i.Count)
	default:
		return fmt.Sprintf("%s %s is missing", i.Category, i.Number)
	}
}

// ValidateSequence checks one category's entries for gaps and duplicates.
// Gap detection uses the leading integer of each number (sub-numbers like
// "4.18" count toward 4); duplicate detection compares literal number
// strings. The input is never mutated.
func ValidateSequence(entries []Entry) []Issue {
	var issues []Issue

	seen := make(map[int]bool)
	literals := make(map[string]int)
	max := 0

	for _, e := range entries {
		lead := e.Number
		if i := strings.IndexByte(lead, '.'); i >= 0 {
			lead = lead[:i]
		}
		n, err := strconv.Atoi(lead)
		if err != nil || n <= 0 {
			continue
		}
		seen[n] = true
		if n > max {
			max = n
		}
		literals[e.Number]++
	}

	for n := 1; n <= max; n++ {
		if !seen[n] {
			issues = append(issues, Issue{
				Kind:     MissingNumber,
				Category: categoryOf(entries),
				Number:   strconv.Itoa(n),
			})
		}
	}

	var dups []string
	for lit, count := range literals {
		if count > 1 {
			dups = append(dups, lit)
		}
	}
	sort.Strings(dups)
	for _, lit := range dups {
		issues = append(issues, Issue{
			Kind:     Duplicate,
			Category: categoryOf(entries),
			Number:   lit,
			Count:    literals[lit],
		})
	}

	return issues
}

// Validate splits entries by category and validates each sequence.
func Validate(entries []Entry) []Issue {
	var figures, tables []Entry
	for _, e := range entries {
		if e.Category == Table {
			tables = append(tables, e)
		} else {
			figures = append(figures, e)
		}
	}
	issues := ValidateSequence(figures)
	return append(issues, ValidateSequence(tables)...)
}

func categoryOf(entries []Entry) Category {
	if len(entries) > 0 {
		return entries[0].Category
	}
	return Figure
}
