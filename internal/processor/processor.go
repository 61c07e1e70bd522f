// Package processor runs the full structuring pipeline over one document:
// hierarchy correction, per-line classification, heading numbering,
// caption sequencing, and section tree assembly. Each Process call builds
// fresh state, so independent documents can be processed in parallel.
package processor

import (
	"strings"

	"github.com/dgallion1/docstruct/internal/captions"
	"github.com/dgallion1/docstruct/internal/classify"
	"github.com/dgallion1/docstruct/internal/docline"
	"github.com/dgallion1/docstruct/internal/doctree"
	"github.com/dgallion1/docstruct/internal/hierarchy"
	"github.com/dgallion1/docstruct/internal/numbering"
	"github.com/dgallion1/docstruct/internal/questionnaire"
)

// Options configures a Processor.
type Options struct {
	Classify classify.Config
	// ChildOverlapMin tunes the fuzzy parent/child heuristics in both
	// hierarchy correction and heading numbering.
	ChildOverlapMin int
}

// Stats counts the structural elements found in one document.
type Stats struct {
	Lines       int `json:"lines"`
	Headings    int `json:"headings"`
	Paragraphs  int `json:"paragraphs"`
	References  int `json:"references"`
	ListItems   int `json:"lists"`
	Definitions int `json:"definitions"`
	Tables      int `json:"tables"`
	Figures     int `json:"figures"`
	Quotes      int `json:"quotes"`
	Questions   int `json:"questions"`
	Renumbered  int `json:"renumbered"`
}

// Result is the complete output for one document.
type Result struct {
	Sections []*doctree.Section `json:"sections"`
	Headings []numbering.Record `json:"headings"`

	// Caption sequences for list-of-figures / list-of-tables generation.
	Figures []captions.Entry `json:"figures"`
	Tables  []captions.Entry `json:"tables"`
	Issues  []captions.Issue `json:"issues"`

	Questionnaire questionnaire.Detection `json:"questionnaire"`

	Stats Stats `json:"stats"`
}

// Processor classifies and numbers documents. Stateless and safe for
// concurrent use across documents.
type Processor struct {
	opts       Options
	classifier *classify.Classifier
	quest      *questionnaire.Processor
}

// New creates a Processor.
func New(opts Options) *Processor {
	if opts.ChildOverlapMin <= 0 {
		opts.ChildOverlapMin = 1
	}
	return &Processor{
		opts:       opts,
		classifier: classify.New(opts.Classify),
		quest:      questionnaire.New(),
	}
}

// ProcessText structures raw text with no style hints.
func (p *Processor) ProcessText(text string) *Result {
	return p.Process(docline.FromText(text))
}

// Process structures one document. All per-document state (numbering
// counters, classifier context, accumulators) is created here, never
// shared between calls.
func (p *Processor) Process(lines []docline.Line) *Result {
	texts := docline.Texts(lines)

	// Pre-pass: repair heading numbers nested at the wrong level.
	corrector := hierarchy.New(p.opts.ChildOverlapMin)
	corrected := corrector.CorrectLines(texts)

	numberer := numbering.New(numbering.Options{ChildOverlapMin: p.opts.ChildOverlapMin})
	ctx := &classify.Context{}

	res := &Result{}
	res.Stats.Lines = len(corrected)

	tree := make([]doctree.Line, 0, len(corrected))
	tableOpen := false

	for i, text := range corrected {
		prev, next := "", ""
		if i > 0 {
			prev = corrected[i-1]
		}
		if i+1 < len(corrected) {
			next = corrected[i+1]
		}

		ctx.LineIndex = i
		ctx.Bold, ctx.FontSize = styleHints(lines, i)
		ctx.InTable = tableOpen

		c := p.classifier.Classify(text, prev, next, ctx)

		dl := doctree.Line{C: c}
		switch c.Kind {
		case classify.Heading:
			rec := numberer.NumberHeading(c.Content, c.Level)
			dl.Heading = &rec
			res.Headings = append(res.Headings, rec)
			res.Stats.Headings++
			if rec.Renumbered {
				res.Stats.Renumbered++
			}
			ctx.InReference = isReferenceHeading(c.Content)
		case classify.Paragraph:
			res.Stats.Paragraphs++
		case classify.Reference:
			res.Stats.References++
		case classify.Bullet, classify.Numbered:
			res.Stats.ListItems++
		case classify.Definition:
			res.Stats.Definitions++
		case classify.Quote:
			res.Stats.Quotes++
		case classify.TableStart:
			tableOpen = true
		case classify.TableEnd:
			tableOpen = false
		}
		if c.Kind != classify.Empty {
			ctx.PrevKind = c.Kind
		}

		tree = append(tree, dl)
	}

	// Caption sequencing over the corrected line stream.
	for _, e := range captions.Scan(corrected) {
		if e.Category == captions.Table {
			res.Tables = append(res.Tables, e)
		} else {
			res.Figures = append(res.Figures, e)
		}
	}
	res.Issues = append(captions.ValidateSequence(res.Figures), captions.ValidateSequence(res.Tables)...)
	res.Stats.Figures = len(res.Figures)
	res.Stats.Tables = countTables(tree, res.Tables)

	res.Sections = doctree.Build(tree)
	res.Questionnaire = p.quest.Detect(strings.Join(corrected, "\n"))
	res.Stats.Questions = res.Questionnaire.QuestionCount

	return res
}

func styleHints(lines []docline.Line, i int) (bool, float64) {
	if i >= len(lines) || lines[i].Style == nil {
		return false, 0
	}
	return lines[i].Style.Bold, lines[i].Style.FontSize
}

func isReferenceHeading(text string) bool {
	switch strings.ToLower(strings.TrimSpace(strings.TrimRight(text, ":"))) {
	case "references", "bibliography", "works cited":
		return true
	}
	return false
}

// countTables prefers structural tables (row blocks) and falls back to
// caption count when the document carries captions without marker-bounded
// rows.
func countTables(tree []doctree.Line, captioned []captions.Entry) int {
	n := 0
	for _, ln := range tree {
		if ln.C.Kind == classify.TableStart {
			n++
		}
	}
	if n == 0 {
		n = rowRunCount(tree)
	}
	if n < len(captioned) {
		n = len(captioned)
	}
	return n
}

// rowRunCount counts maximal runs of table rows, for pipe tables that
// have no explicit start marker.
func rowRunCount(tree []doctree.Line) int {
	n := 0
	inRun := false
	for _, ln := range tree {
		switch ln.C.Kind {
		case classify.TableRow, classify.TableSeparator:
			if !inRun {
				n++
				inRun = true
			}
		case classify.Empty:
			// A blank line does not break a row run.
		default:
			inRun = false
		}
	}
	return n
}
