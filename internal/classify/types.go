package classify

// Kind is the primary structural type assigned to a line.
type Kind int

const (
	Empty Kind = iota
	Heading
	Bullet
	Numbered
	Definition
	FigureCaption
	TableStart
	TableEnd
	TableCaption
	TableRow
	TableSeparator
	Reference
	Quote
	Code
	Equation
	Image
	Metadata
	Paragraph
)

var kindNames = map[Kind]string{
	Empty:          "empty",
	Heading:        "heading",
	Bullet:         "bullet_list",
	Numbered:       "numbered_list",
	Definition:     "definition",
	FigureCaption:  "figure",
	TableStart:     "table_start",
	TableEnd:       "table_end",
	TableCaption:   "table_caption",
	TableRow:       "table_row",
	TableSeparator: "table_separator",
	Reference:      "reference",
	Quote:          "quote",
	Code:           "code",
	Equation:       "equation",
	Image:          "image",
	Metadata:       "metadata",
	Paragraph:      "paragraph",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// Classification is the result of classifying a single line. Every line
// produces exactly one Classification; unmatched lines fall back to
// Paragraph and empty lines to Empty.
type Classification struct {
	Kind       Kind
	Rule       string  // name of the rule that matched
	Confidence float64 // fixed per rule, 0.0-1.0
	Line       int     // index in the source line sequence

	// Content is the line text with structural markers stripped
	// (bullet characters, list markers, caption labels).
	Content string

	// Heading fields.
	Level int // 1-3, headings only

	// List fields.
	BulletChar string // bullet items
	Marker     string // numbered items: "1.", "a)", "(2)", ...
	Indent     int    // leading whitespace width of the original line

	// Definition fields.
	Term string
	Body string

	// Caption fields (figure and table captions).
	Number string // may contain a dot, e.g. "4.18"
	Title  string

	// Table fields.
	Cells []string // table rows

	// Metadata subtype: "author", "date", "page", "image", ...
	Subtype string

	// Soft annotations, set only when Kind is Paragraph.
	HasEmphasis bool
	HasCitation bool
}

// Context is the running state a classifier may consult. It is owned by
// the caller and updated between lines; the classifier never mutates it.
type Context struct {
	InTable     bool // between [TABLE START] and [TABLE END]
	PrevKind    Kind // primary kind of the previous non-empty line
	LineIndex   int
	Bold        bool    // style hint for the current line, if known
	FontSize    float64 // style hint, 0 when unknown
	InReference bool    // inside a references section
}
