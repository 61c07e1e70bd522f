// Package questionnaire detects survey-style documents and parses their
// question/option structure, including Likert scale tables.
package questionnaire

import (
	"regexp"
	"strings"
)

// Question is one parsed questionnaire item. Type is "question", "prompt",
// or "likert_table"; Number is empty for unnumbered questions.
type Question struct {
	Number  string   `json:"number"`
	Text    string   `json:"text"`
	Type    string   `json:"type"`
	Options []string `json:"options,omitempty"`

	// Likert table fields.
	Scale        []string `json:"scale,omitempty"`
	SubQuestions []string `json:"sub_questions,omitempty"`
}

// Section groups questions under a "Section N:" header.
type Section struct {
	Title     string     `json:"title"`
	Questions []Question `json:"questions"`
}

// Structure is the parsed questionnaire.
type Structure struct {
	Title    string    `json:"title"`
	Sections []Section `json:"sections"`
}

// Detection summarizes the questionnaire signals found in a text.
type Detection struct {
	IsQuestionnaire bool `json:"is_questionnaire"`
	QuestionCount   int  `json:"question_count"`
	SectionCount    int  `json:"section_count"`
	LikertTables    int  `json:"likert_tables"`
}

var (
	numberedQuestionRe = regexp.MustCompile(`^(\d+)[.)]\s*(.+)$`)
	sectionHeaderRe    = regexp.MustCompile(`(?i)^section\s+(\d+)\s*[:.\-]\s*(.*)$`)
	likertCaptionRe    = regexp.MustCompile(`(?i)^table\s+\d+\s*[:.\-]\s*(.*)$`)
	checkboxRe         = regexp.MustCompile(`\[\s*\]`)
	blankFieldRe       = regexp.MustCompile(`_{3,}`)
)

// Processor detects and parses questionnaires. Stateless; safe for
// concurrent use.
type Processor struct{}

// New creates a Processor.
func New() *Processor {
	return &Processor{}
}

// DetectQuestion recognizes one question line: numbered or bare, ending
// in a question mark or a short colon-terminated prompt.
func (p *Processor) DetectQuestion(line string) (Question, bool) {
	text := strings.TrimSpace(line)
	if text == "" {
		return Question{}, false
	}

	number := ""
	if m := numberedQuestionRe.FindStringSubmatch(text); m != nil {
		number, text = m[1], strings.TrimSpace(m[2])
	}

	switch {
	case strings.HasSuffix(text, "?"):
		return Question{Number: number, Text: text, Type: "question"}, true
	case strings.HasSuffix(text, ":") && len(strings.Fields(text)) <= 8:
		return Question{Number: number, Text: text, Type: "prompt"}, true
	case number != "" && checkboxRe.MatchString(text):
		return Question{Number: number, Text: text, Type: "question"}, true
	}
	return Question{}, false
}

// Detect scans a whole text for questionnaire signals.
func (p *Processor) Detect(text string) Detection {
	var d Detection
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if sectionHeaderRe.MatchString(trimmed) {
			d.SectionCount++
			continue
		}
		if _, ok := p.DetectQuestion(trimmed); ok {
			d.QuestionCount++
		}
		if checkboxRe.MatchString(trimmed) && strings.Contains(line, "\t") {
			d.LikertTables++
		}
	}
	d.IsQuestionnaire = d.QuestionCount >= 5 || (d.SectionCount >= 2 && d.QuestionCount >= 3)
	return d
}

// ParseStructure parses the full questionnaire layout: sections, their
// questions, answer options, and Likert scale tables (a captioned header
// row of scale labels followed by checkbox statement rows).
func (p *Processor) ParseStructure(text string) *Structure {
	s := &Structure{}
	lines := strings.Split(text, "\n")

	current := Section{Title: "General"}
	var open *Question // question currently collecting options
	var likert *Question
	pendingLikertTitle := ""

	closeQuestion := func() {
		if open != nil {
			current.Questions = append(current.Questions, *open)
			open = nil
		}
		if likert != nil {
			current.Questions = append(current.Questions, *likert)
			likert = nil
		}
	}
	closeSection := func() {
		closeQuestion()
		if len(current.Questions) > 0 || current.Title != "General" {
			s.Sections = append(s.Sections, current)
		}
	}

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if i == 0 && s.Title == "" && !sectionHeaderRe.MatchString(line) {
			if _, isQ := p.DetectQuestion(line); !isQ {
				s.Title = line
				continue
			}
		}

		if m := sectionHeaderRe.FindStringSubmatch(line); m != nil {
			closeSection()
			title := strings.TrimSpace(m[2])
			if title == "" {
				title = line
			}
			current = Section{Title: title}
			continue
		}

		if m := likertCaptionRe.FindStringSubmatch(line); m != nil {
			closeQuestion()
			pendingLikertTitle = strings.TrimSpace(m[1])
			continue
		}

		// A tab-separated row after a table caption is the scale header;
		// checkbox rows underneath are the statements.
		if strings.Contains(raw, "\t") {
			cells := splitCells(raw)
			if likert == nil && pendingLikertTitle != "" && len(cells) >= 2 && !checkboxRe.MatchString(raw) {
				likert = &Question{
					Text:  pendingLikertTitle,
					Type:  "likert_table",
					Scale: cells[1:],
				}
				pendingLikertTitle = ""
				continue
			}
			if likert != nil && checkboxRe.MatchString(raw) {
				likert.SubQuestions = append(likert.SubQuestions, strings.TrimSpace(checkboxRe.ReplaceAllString(cells[0], "")))
				continue
			}
		}

		if q, ok := p.DetectQuestion(line); ok {
			closeQuestion()
			open = &q
			continue
		}

		// Short bare lines following a question are its answer options.
		if open != nil && isOptionLine(line) {
			open.Options = append(open.Options, line)
			continue
		}

		closeQuestion()
	}

	closeSection()
	return s
}

func splitCells(raw string) []string {
	parts := strings.Split(raw, "\t")
	cells := make([]string, 0, len(parts))
	for _, p := range parts {
		cells = append(cells, strings.TrimSpace(p))
	}
	return cells
}

// isOptionLine accepts short answer candidates: choice text, fill-in
// blanks, "Other: ____".
func isOptionLine(line string) bool {
	if blankFieldRe.MatchString(line) {
		return true
	}
	return len(strings.Fields(line)) <= 8 && !strings.HasSuffix(line, ".")
}
