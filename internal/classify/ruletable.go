package classify

import (
	"strings"
	"unicode"

	"github.com/dgallion1/docstruct/internal/captions"
)

// ruleTable builds the ordered rule list. Priority runs top to bottom:
// table structure > captions > front matter > headings > references >
// lists > definitions > equations > quotes > code > metadata > paragraph.
func ruleTable() []rule {
	return []rule{
		{"table_start", 1.0, matchTableStart},
		{"table_end", 1.0, matchTableEnd},
		{"table_separator", 0.95, matchTableSeparator},
		{"table_row", 0.95, matchTableRow},
		{"image_marker", 1.0, matchImageMarker},
		{"table_caption", 0.9, matchTableCaption},
		{"figure_caption", 0.9, matchFigureCaption},
		{"table_row_context", 0.8, matchTableRowContext},
		{"front_matter", 0.95, matchFrontMatter},
		{"chapter_heading", 0.98, matchChapter},
		{"part_heading", 0.95, matchPart},
		{"canonical_h1", 0.95, matchCanonicalH1},
		{"allcaps_h1", 0.85, matchAllCapsH1},
		{"numbered_h3", 0.9, matchNumberedH3},
		{"numbered_h2", 0.9, matchNumberedH2},
		{"lettered_h3", 0.8, matchLetteredH3},
		{"titlecase_h2", 0.7, matchTitleCaseH2},
		{"styled_heading", 0.65, matchStyledHeading},
		{"reference", 0.85, matchReference},
		{"reference_context", 0.6, matchReferenceContext},
		{"bullet_item", 0.95, matchBullet},
		{"roman_item", 0.9, matchRomanItem},
		{"numbered_item", 0.9, matchNumberedItem},
		{"lettered_item", 0.85, matchLetteredItem},
		{"definition", 0.85, matchDefinition},
		{"equation", 0.7, matchEquation},
		{"quote", 0.75, matchQuote},
		{"code", 0.7, matchCode},
		{"metadata", 0.75, matchMetadata},
		{"paragraph", 0.5, matchParagraph},
	}
}

func matchTableStart(c *Classifier, in input) (Classification, bool) {
	if !tableStartRe.MatchString(in.text) {
		return Classification{}, false
	}
	return Classification{Kind: TableStart}, true
}

func matchTableEnd(c *Classifier, in input) (Classification, bool) {
	if !tableEndRe.MatchString(in.text) {
		return Classification{}, false
	}
	return Classification{Kind: TableEnd}, true
}

func matchTableSeparator(c *Classifier, in input) (Classification, bool) {
	if !tableSepRe.MatchString(in.text) || !strings.Contains(in.text, "-") {
		return Classification{}, false
	}
	return Classification{Kind: TableSeparator}, true
}

func matchTableRow(c *Classifier, in input) (Classification, bool) {
	if !tableRowRe.MatchString(in.text) {
		return Classification{}, false
	}
	inner := strings.Trim(in.text, "|")
	parts := strings.Split(inner, "|")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return Classification{Kind: TableRow, Cells: cells}, true
}

// matchTableRowContext catches tab-separated rows between table markers,
// the form word-processor loaders emit for real tables.
func matchTableRowContext(c *Classifier, in input) (Classification, bool) {
	if !in.ctx.InTable || !strings.Contains(in.raw, "\t") {
		return Classification{}, false
	}
	parts := strings.Split(in.raw, "\t")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return Classification{Kind: TableRow, Cells: cells}, true
}

func matchImageMarker(c *Classifier, in input) (Classification, bool) {
	m := imageRe.FindStringSubmatch(in.text)
	if m == nil {
		return Classification{}, false
	}
	return Classification{Kind: Image, Subtype: "image", Content: m[1]}, true
}

func matchTableCaption(c *Classifier, in input) (Classification, bool) {
	e, ok := captions.DetectTable(in.text)
	if !ok {
		return Classification{}, false
	}
	return Classification{Kind: TableCaption, Number: e.Number, Title: e.Title}, true
}

func matchFigureCaption(c *Classifier, in input) (Classification, bool) {
	e, ok := captions.DetectFigure(in.text)
	if !ok {
		return Classification{}, false
	}
	return Classification{Kind: FigureCaption, Number: e.Number, Title: e.Title}, true
}

func matchFrontMatter(c *Classifier, in input) (Classification, bool) {
	if !frontMatter[strings.ToLower(in.text)] {
		return Classification{}, false
	}
	return Classification{Kind: Heading, Level: 1}, true
}

func matchChapter(c *Classifier, in input) (Classification, bool) {
	if len(in.text) > c.cfg.MaxHeadingLen || !chapterRe.MatchString(in.text) {
		return Classification{}, false
	}
	return Classification{Kind: Heading, Level: 1}, true
}

func matchPart(c *Classifier, in input) (Classification, bool) {
	if len(in.text) > c.cfg.MaxHeadingLen || !partRe.MatchString(in.text) {
		return Classification{}, false
	}
	return Classification{Kind: Heading, Level: 1}, true
}

// matchCanonicalH1 requires all caps: "LITERATURE REVIEW" is a level-1
// section, while title-case "Literature Review" is a level-2 heading.
func matchCanonicalH1(c *Classifier, in input) (Classification, bool) {
	if !isAllCaps(in.text) || !canonicalH1[strings.ToLower(strings.TrimRight(in.text, ":"))] {
		return Classification{}, false
	}
	return Classification{Kind: Heading, Level: 1}, true
}

func matchAllCapsH1(c *Classifier, in input) (Classification, bool) {
	t := in.text
	if len(t) > c.cfg.MaxHeadingLen || len(strings.Fields(t)) > c.cfg.HeadingWordLimit {
		return Classification{}, false
	}
	first, _ := firstRune(t)
	if !unicode.IsUpper(first) {
		return Classification{}, false
	}
	if !isAllCaps(t) || strings.ContainsAny(string(t[len(t)-1]), ".,!?;") {
		return Classification{}, false
	}
	return Classification{Kind: Heading, Level: 1}, true
}

func matchNumberedH3(c *Classifier, in input) (Classification, bool) {
	m := h3NumberRe.FindStringSubmatch(in.text)
	if m == nil || len(in.text) > c.cfg.MaxHeadingLen {
		return Classification{}, false
	}
	return Classification{Kind: Heading, Level: 3, Number: m[1], Content: in.text}, true
}

func matchNumberedH2(c *Classifier, in input) (Classification, bool) {
	m := h2NumberRe.FindStringSubmatch(in.text)
	if m == nil || len(in.text) > c.cfg.MaxHeadingLen {
		return Classification{}, false
	}
	return Classification{Kind: Heading, Level: 2, Number: m[1], Content: in.text}, true
}

// matchLetteredH3 accepts "a) Title Case" style subsection markers. A
// lettered line with long or lowercase content is a list item, handled
// further down the table.
func matchLetteredH3(c *Classifier, in input) (Classification, bool) {
	m := h3LetterRe.FindStringSubmatch(in.text)
	if m == nil {
		return Classification{}, false
	}
	rest := m[2]
	words := strings.Fields(rest)
	if len(words) == 0 || len(words) > 4 {
		return Classification{}, false
	}
	for _, w := range words {
		first, _ := firstRune(w)
		if !unicode.IsUpper(first) {
			return Classification{}, false
		}
	}
	return Classification{Kind: Heading, Level: 3, Marker: m[1] + ")"}, true
}

func matchTitleCaseH2(c *Classifier, in input) (Classification, bool) {
	// Title-case headings are the weakest pattern; require a preceding
	// blank line so mid-paragraph fragments never qualify.
	if in.prev != "" {
		return Classification{}, false
	}
	if !c.isTitleCaseHeading(in.text) {
		return Classification{}, false
	}
	return Classification{Kind: Heading, Level: 2}, true
}

func matchStyledHeading(c *Classifier, in input) (Classification, bool) {
	if !in.ctx.Bold || len(in.text) > c.cfg.MaxHeadingLen {
		return Classification{}, false
	}
	if len(strings.Fields(in.text)) > c.cfg.HeadingWordLimit || strings.ContainsAny(string(in.text[len(in.text)-1]), ".,!?;") {
		return Classification{}, false
	}
	level := 2
	if in.ctx.FontSize >= 16 {
		level = 1
	}
	return Classification{Kind: Heading, Level: level}, true
}

func matchReference(c *Classifier, in input) (Classification, bool) {
	t := in.text
	switch {
	case refIEEERe.MatchString(t),
		refSurnameRe.MatchString(t),
		refEtAlRe.MatchString(t),
		refYearRe.MatchString(t):
		return Classification{Kind: Reference}, true
	case refURLRe.MatchString(t):
		// A bare URL only counts as a reference with supporting
		// evidence; prose can mention links.
		if strings.Contains(strings.ToLower(t), "retrieved from") || in.ctx.InReference {
			return Classification{Kind: Reference}, true
		}
	}
	return Classification{}, false
}

func matchReferenceContext(c *Classifier, in input) (Classification, bool) {
	if !in.ctx.InReference || len(in.text) < 20 {
		return Classification{}, false
	}
	return Classification{Kind: Reference}, true
}

func matchBullet(c *Classifier, in input) (Classification, bool) {
	m := bulletRe.FindStringSubmatch(in.text)
	if m == nil {
		return Classification{}, false
	}
	return Classification{Kind: Bullet, BulletChar: m[1], Content: m[2]}, true
}

func matchRomanItem(c *Classifier, in input) (Classification, bool) {
	m := romanItemRe.FindStringSubmatch(in.text)
	if m == nil {
		return Classification{}, false
	}
	return Classification{Kind: Numbered, Marker: m[1], Content: m[2]}, true
}

func matchNumberedItem(c *Classifier, in input) (Classification, bool) {
	m := numberedRe.FindStringSubmatch(in.text)
	if m == nil {
		m = numberedParenRe.FindStringSubmatch(in.text)
	}
	if m == nil {
		return Classification{}, false
	}
	return Classification{Kind: Numbered, Marker: m[1], Content: m[2]}, true
}

func matchLetteredItem(c *Classifier, in input) (Classification, bool) {
	m := letterItemRe.FindStringSubmatch(in.text)
	if m == nil {
		return Classification{}, false
	}
	return Classification{Kind: Numbered, Marker: m[1], Content: m[2]}, true
}

func matchDefinition(c *Classifier, in input) (Classification, bool) {
	m := definitionRe.FindStringSubmatch(in.text)
	if m == nil || !definitionTerms[strings.ToLower(m[1])] {
		return Classification{}, false
	}
	return Classification{Kind: Definition, Term: m[1], Body: m[2]}, true
}

func matchEquation(c *Classifier, in input) (Classification, bool) {
	t := in.text
	if len(t) > 40 || strings.HasSuffix(t, ".") || !equationRe.MatchString(t) {
		return Classification{}, false
	}
	return Classification{Kind: Equation}, true
}

func matchQuote(c *Classifier, in input) (Classification, bool) {
	if blockQuoteRe.MatchString(in.text) {
		return Classification{Kind: Quote, Content: strings.TrimSpace(strings.TrimPrefix(in.text, ">"))}, true
	}
	if len(in.text) > 2 && quoteRe.MatchString(in.text) {
		return Classification{Kind: Quote, Content: strings.Trim(in.text, "\"'“”‘’")}, true
	}
	return Classification{}, false
}

func matchCode(c *Classifier, in input) (Classification, bool) {
	switch {
	case codeFenceRe.MatchString(in.text),
		strings.HasPrefix(in.raw, "\t"),
		strings.HasPrefix(in.raw, "    "),
		codeKeywordRe.MatchString(in.text):
		return Classification{Kind: Code, Content: in.raw}, true
	}
	return Classification{}, false
}

func matchMetadata(c *Classifier, in input) (Classification, bool) {
	for _, mr := range metadataRules {
		if mr.re.MatchString(in.text) {
			return Classification{Kind: Metadata, Subtype: mr.subtype}, true
		}
	}
	return Classification{}, false
}

func matchParagraph(c *Classifier, in input) (Classification, bool) {
	return Classification{Kind: Paragraph}, true
}

// isTitleCaseHeading reports whether text reads as a short title-case
// heading: every word capitalized apart from connectives, no digits, no
// terminal sentence punctuation.
func (c *Classifier) isTitleCaseHeading(text string) bool {
	if len(text) > c.cfg.MaxHeadingLen {
		return false
	}
	if strings.ContainsAny(string(text[len(text)-1]), ".,:;!?") {
		return false
	}
	words := strings.Fields(text)
	if len(words) == 0 || len(words) > c.cfg.HeadingWordLimit {
		return false
	}
	if len(words) == 1 && len(words[0]) < 4 {
		return false
	}
	for i, w := range words {
		if i > 0 && titleConnectives[w] {
			continue
		}
		first, _ := firstRune(w)
		if !unicode.IsUpper(first) {
			return false
		}
		for _, r := range w {
			if !unicode.IsLetter(r) && r != '-' && r != '\'' && r != '’' {
				return false
			}
		}
	}
	return true
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}
