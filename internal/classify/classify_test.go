package classify

import "testing"

func classifyOne(t *testing.T, line string) Classification {
	t.Helper()
	c := New(Config{})
	return c.Classify(line, "non-blank previous line", "", &Context{})
}

func TestClassify_EmptyLine(t *testing.T) {
	c := New(Config{})
	got := c.Classify("", "", "", nil)
	if got.Kind != Empty {
		t.Errorf("expected Empty, got %v", got.Kind)
	}
	got = c.Classify("   \t  ", "", "", nil)
	if got.Kind != Empty {
		t.Errorf("expected Empty for whitespace-only line, got %v", got.Kind)
	}
}

func TestClassify_Headings(t *testing.T) {
	tests := []struct {
		line  string
		level int
		rule  string
	}{
		{"CHAPTER ONE: INTRODUCTION", 1, "chapter_heading"},
		{"CHAPTER 2: LITERATURE REVIEW", 1, "chapter_heading"},
		{"PART II: ADVANCED TOPICS", 1, "part_heading"},
		{"ABSTRACT", 1, "canonical_h1"},
		{"REFERENCES", 1, "canonical_h1"},
		{"Table of Contents", 1, "front_matter"},
		{"LIST OF FIGURES", 1, "front_matter"},
		{"RESEARCH FINDINGS AND ANALYSIS", 1, "allcaps_h1"},
		{"1.2 Background of the Study", 2, "numbered_h2"},
		{"1.2.3 Specific Objectives", 3, "numbered_h3"},
		{"a) First Subsection", 3, "lettered_h3"},
	}
	c := New(Config{})
	for _, tt := range tests {
		got := c.Classify(tt.line, "previous prose line.", "", &Context{})
		if got.Kind != Heading {
			t.Errorf("%q: expected Heading, got %v (rule %s)", tt.line, got.Kind, got.Rule)
			continue
		}
		if got.Level != tt.level {
			t.Errorf("%q: expected level %d, got %d", tt.line, tt.level, got.Level)
		}
		if got.Rule != tt.rule {
			t.Errorf("%q: expected rule %q, got %q", tt.line, tt.rule, got.Rule)
		}
	}
}

func TestClassify_TitleCaseHeadingNeedsBlankPrev(t *testing.T) {
	c := New(Config{})

	got := c.Classify("Literature Review", "", "", &Context{})
	if got.Kind != Heading || got.Level != 2 {
		t.Fatalf("expected level-2 heading after blank line, got %v level=%d", got.Kind, got.Level)
	}

	got = c.Classify("Literature Review", "The preceding sentence ends here.", "", &Context{})
	if got.Kind == Heading {
		t.Error("expected no heading when the line continues a paragraph")
	}
}

func TestClassify_AllCapsCanonicalOutranksTitleCase(t *testing.T) {
	c := New(Config{})
	got := c.Classify("LITERATURE REVIEW", "", "", &Context{})
	if got.Kind != Heading || got.Level != 1 {
		t.Errorf("expected level-1 heading for all-caps canonical name, got %v level=%d", got.Kind, got.Level)
	}
}

func TestClassify_LongLineIsNotHeading(t *testing.T) {
	line := "THIS EXTREMELY LONG ALL CAPS LINE KEEPS GOING WELL PAST ANY PLAUSIBLE HEADING LENGTH LIMIT AND MORE"
	got := classifyOne(t, line)
	if got.Kind == Heading {
		t.Errorf("expected long line not to be a heading, got rule %s", got.Rule)
	}
}

func TestClassify_ListItems(t *testing.T) {
	tests := []struct {
		line   string
		kind   Kind
		marker string
		bullet string
	}{
		{"• Key point one", Bullet, "", "•"},
		{"- dash item", Bullet, "", "-"},
		{"* starred item", Bullet, "", "*"},
		{"1. Introduction to the topic area", Numbered, "1.", ""},
		{"2) item with paren marker", Numbered, "2)", ""},
		{"(1) parenthesized item", Numbered, "(1)", ""},
		{"i. roman numeral item", Numbered, "i.", ""},
		{"b) lettered item continues with more words here", Numbered, "b)", ""},
	}
	for _, tt := range tests {
		got := classifyOne(t, tt.line)
		if got.Kind != tt.kind {
			t.Errorf("%q: expected %v, got %v (rule %s)", tt.line, tt.kind, got.Kind, got.Rule)
			continue
		}
		if tt.marker != "" && got.Marker != tt.marker {
			t.Errorf("%q: expected marker %q, got %q", tt.line, tt.marker, got.Marker)
		}
		if tt.bullet != "" && got.BulletChar != tt.bullet {
			t.Errorf("%q: expected bullet %q, got %q", tt.line, tt.bullet, got.BulletChar)
		}
	}
}

func TestClassify_Definitions(t *testing.T) {
	got := classifyOne(t, "Definition: A statement of meaning")
	if got.Kind != Definition {
		t.Fatalf("expected Definition, got %v (rule %s)", got.Kind, got.Rule)
	}
	if got.Term != "Definition" || got.Body != "A statement of meaning" {
		t.Errorf("unexpected term/body: %q / %q", got.Term, got.Body)
	}

	// Unknown lead terms stay prose.
	got = classifyOne(t, "Random: not a recognized definition term")
	if got.Kind == Definition {
		t.Error("expected unknown term not to classify as definition")
	}
}

func TestClassify_Captions(t *testing.T) {
	got := classifyOne(t, "Figure 1: System Architecture")
	if got.Kind != FigureCaption || got.Number != "1" || got.Title != "System Architecture" {
		t.Errorf("expected figure caption 1, got %+v", got)
	}

	got = classifyOne(t, "TABLE 2: Results Summary")
	if got.Kind != TableCaption || got.Number != "2" {
		t.Errorf("expected table caption 2, got %+v", got)
	}
}

func TestClassify_TableStructure(t *testing.T) {
	c := New(Config{})
	ctx := &Context{}

	if got := c.Classify("[TABLE START]", "", "", ctx); got.Kind != TableStart {
		t.Errorf("expected TableStart, got %v", got.Kind)
	}
	if got := c.Classify("[TABLE END]", "", "", ctx); got.Kind != TableEnd {
		t.Errorf("expected TableEnd, got %v", got.Kind)
	}
	if got := c.Classify("| --- | --- |", "", "", ctx); got.Kind != TableSeparator {
		t.Errorf("expected TableSeparator, got %v", got.Kind)
	}

	got := c.Classify("| name | score |", "", "", ctx)
	if got.Kind != TableRow {
		t.Fatalf("expected TableRow, got %v", got.Kind)
	}
	if len(got.Cells) != 2 || got.Cells[0] != "name" || got.Cells[1] != "score" {
		t.Errorf("unexpected cells: %v", got.Cells)
	}
}

func TestClassify_TabRowInsideTableContext(t *testing.T) {
	c := New(Config{})

	got := c.Classify("alpha\tbeta\tgamma", "", "", &Context{InTable: true})
	if got.Kind != TableRow {
		t.Fatalf("expected TableRow inside table context, got %v (rule %s)", got.Kind, got.Rule)
	}
	if len(got.Cells) != 3 {
		t.Errorf("expected 3 cells, got %v", got.Cells)
	}

	got = c.Classify("alpha\tbeta\tgamma", "", "", &Context{InTable: false})
	if got.Kind == TableRow {
		t.Error("expected tab-separated line outside a table not to be a row")
	}
}

func TestClassify_ImageMarker(t *testing.T) {
	got := classifyOne(t, "[IMAGE:fig1]")
	if got.Kind != Image || got.Content != "fig1" {
		t.Errorf("expected image marker fig1, got %+v", got)
	}
}

func TestClassify_References(t *testing.T) {
	tests := []string{
		`[1] J. Smith, "A Study of Things," Journal of Examples, 2020.`,
		"Smith, J. (2020). The study of things. Journal of Examples.",
		"Miller et al., 2019 reported similar results in replication.",
	}
	for _, line := range tests {
		got := classifyOne(t, line)
		if got.Kind != Reference {
			t.Errorf("%q: expected Reference, got %v (rule %s)", line, got.Kind, got.Rule)
		}
	}
}

func TestClassify_BareURLNeedsReferenceEvidence(t *testing.T) {
	c := New(Config{})

	got := c.Classify("Retrieved from https://example.com/paper", "prev", "", &Context{})
	if got.Kind != Reference {
		t.Errorf("expected Reference with retrieval phrase, got %v", got.Kind)
	}

	got = c.Classify("See https://example.com for more details on this.", "prev", "", &Context{})
	if got.Kind == Reference {
		t.Error("expected bare URL mention in prose not to be a reference")
	}

	got = c.Classify("https://example.com/archive/item/2817 accessed January 2024", "prev", "", &Context{InReference: true})
	if got.Kind != Reference {
		t.Errorf("expected URL inside reference section to be a reference, got %v", got.Kind)
	}
}

func TestClassify_ReferenceContextSweepsLongLines(t *testing.T) {
	c := New(Config{})
	line := "Proceedings of the 14th Conference on Examples, pp. 101-110."
	got := c.Classify(line, "prev", "", &Context{InReference: true})
	if got.Kind != Reference {
		t.Errorf("expected reference inside references section, got %v (rule %s)", got.Kind, got.Rule)
	}
	got = c.Classify(line, "prev", "", &Context{})
	if got.Kind == Reference {
		t.Error("expected the same line outside references to stay prose")
	}
}

func TestClassify_Quotes(t *testing.T) {
	got := classifyOne(t, "> This is a block quote line")
	if got.Kind != Quote {
		t.Errorf("expected Quote for block quote, got %v", got.Kind)
	}
	got = classifyOne(t, `"A fully quoted line of text."`)
	if got.Kind != Quote {
		t.Errorf("expected Quote for quoted line, got %v (rule %s)", got.Kind, got.Rule)
	}
}

func TestClassify_Code(t *testing.T) {
	tests := []string{
		"```go",
		"func main() {",
		"    indented with four spaces",
		"\ttab indented line",
	}
	for _, line := range tests {
		got := classifyOne(t, line)
		if got.Kind != Code {
			t.Errorf("%q: expected Code, got %v (rule %s)", line, got.Kind, got.Rule)
		}
	}
}

func TestClassify_Equations(t *testing.T) {
	for _, line := range []string{"E = mc2", "x = y + z"} {
		got := classifyOne(t, line)
		if got.Kind != Equation {
			t.Errorf("%q: expected Equation, got %v (rule %s)", line, got.Kind, got.Rule)
		}
	}
	// Sentence-length assignments are prose.
	got := classifyOne(t, "The answer therefore = a long prose sentence that keeps going on and on.")
	if got.Kind == Equation {
		t.Error("expected long line not to be an equation")
	}
}

func TestClassify_Metadata(t *testing.T) {
	tests := []struct {
		line    string
		subtype string
	}{
		{"Page 3 of 10", "page"},
		{"Submitted by John Doe", "submission"},
		{"Supervisor: Dr. Jane Roe", "supervisor"},
		{"Date: 2024-01-15", "date"},
		{"Department of Computer Science", "department"},
	}
	for _, tt := range tests {
		got := classifyOne(t, tt.line)
		if got.Kind != Metadata {
			t.Errorf("%q: expected Metadata, got %v (rule %s)", tt.line, got.Kind, got.Rule)
			continue
		}
		if got.Subtype != tt.subtype {
			t.Errorf("%q: expected subtype %q, got %q", tt.line, tt.subtype, got.Subtype)
		}
	}
}

func TestClassify_StyledHeading(t *testing.T) {
	c := New(Config{})

	got := c.Classify("implementation details overview", "prev line", "", &Context{Bold: true})
	if got.Kind != Heading || got.Level != 2 {
		t.Errorf("expected bold line as level-2 heading, got %v level=%d", got.Kind, got.Level)
	}

	got = c.Classify("implementation details overview", "prev line", "", &Context{Bold: true, FontSize: 18})
	if got.Kind != Heading || got.Level != 1 {
		t.Errorf("expected large bold line as level-1 heading, got %v level=%d", got.Kind, got.Level)
	}

	got = c.Classify("implementation details overview", "prev line", "", &Context{})
	if got.Kind == Heading {
		t.Error("expected unstyled lowercase line to stay prose")
	}
}

func TestClassify_ParagraphAnnotations(t *testing.T) {
	got := classifyOne(t, "The results were significant (Smith, 2020) across trials.")
	if got.Kind != Paragraph {
		t.Fatalf("expected Paragraph, got %v (rule %s)", got.Kind, got.Rule)
	}
	if !got.HasCitation {
		t.Error("expected citation flag")
	}

	got = classifyOne(t, "This outcome was *really* unexpected in practice.")
	if got.Kind != Paragraph || !got.HasEmphasis {
		t.Errorf("expected paragraph with emphasis flag, got %+v", got)
	}
}

func TestClassify_NeverPanicsOnUnusualInput(t *testing.T) {
	inputs := []string{
		"日本語のテキストです。",
		"ΣΥΜΠΕΡΑΣΜΑ",
		"héllo wörld résumé",
		"\x00\x01\x02",
		"🙂 emoji leading line",
		"|||",
		"[",
		"....",
	}
	c := New(Config{})
	for _, line := range inputs {
		got := c.Classify(line, "", "", &Context{})
		if got.Rule == "" {
			t.Errorf("%q: expected a rule name on every classification", line)
		}
	}
}

func TestClassify_IndentRecorded(t *testing.T) {
	got := classifyOne(t, "  indented prose continues the paragraph naturally here")
	if got.Indent != 2 {
		t.Errorf("expected indent 2, got %d", got.Indent)
	}
}
