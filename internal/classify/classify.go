// Package classify assigns one structural classification to each line of a
// document using an ordered rule table. Rule order encodes priority: the
// first matching rule wins, and an unmatched line is always a paragraph,
// so classification never fails.
package classify

import "strings"

// Config holds the classifier tunables.
type Config struct {
	// MaxHeadingLen excludes long lines from heading consideration so
	// prose is never mistaken for a title.
	MaxHeadingLen int
	// HeadingWordLimit caps the word count of heading candidates.
	HeadingWordLimit int
}

// DefaultConfig returns the classifier defaults.
func DefaultConfig() Config {
	return Config{
		MaxHeadingLen:    80,
		HeadingWordLimit: 8,
	}
}

// Classifier applies the rule table to lines. It is stateless and safe for
// concurrent use; running context travels in the caller-owned Context.
type Classifier struct {
	cfg   Config
	rules []rule
}

type input struct {
	raw  string // original line, indentation preserved
	text string // trimmed line
	prev string // trimmed previous line
	next string // trimmed next line
	ctx  *Context
}

type rule struct {
	name       string
	confidence float64
	match      func(c *Classifier, in input) (Classification, bool)
}

// New creates a classifier with the given config. Zero config fields fall
// back to defaults.
func New(cfg Config) *Classifier {
	def := DefaultConfig()
	if cfg.MaxHeadingLen <= 0 {
		cfg.MaxHeadingLen = def.MaxHeadingLen
	}
	if cfg.HeadingWordLimit <= 0 {
		cfg.HeadingWordLimit = def.HeadingWordLimit
	}
	c := &Classifier{cfg: cfg}
	c.rules = ruleTable()
	return c
}

// Classify returns the classification for one line given its neighbors and
// the running context. ctx may be nil.
func (c *Classifier) Classify(line, prev, next string, ctx *Context) Classification {
	if ctx == nil {
		ctx = &Context{}
	}
	in := input{
		raw:  line,
		text: strings.TrimSpace(line),
		prev: strings.TrimSpace(prev),
		next: strings.TrimSpace(next),
		ctx:  ctx,
	}

	if in.text == "" {
		return Classification{Kind: Empty, Rule: "empty", Confidence: 1.0, Line: ctx.LineIndex}
	}

	for _, r := range c.rules {
		if cl, ok := r.match(c, in); ok {
			cl.Rule = r.name
			if cl.Confidence == 0 {
				cl.Confidence = r.confidence
			}
			cl.Line = ctx.LineIndex
			cl.Indent = indentWidth(in.raw)
			if cl.Content == "" {
				cl.Content = in.text
			}
			if cl.Kind == Paragraph {
				cl.HasEmphasis = emphasisRe.MatchString(in.text)
				cl.HasCitation = citationRe.MatchString(in.text)
			}
			return cl
		}
	}

	// Unreachable: the paragraph rule matches everything.
	return Classification{Kind: Paragraph, Rule: "paragraph", Confidence: 0.5, Line: ctx.LineIndex, Content: in.text}
}

func indentWidth(raw string) int {
	w := 0
	for _, r := range raw {
		switch r {
		case ' ':
			w++
		case '\t':
			w += 4
		default:
			return w
		}
	}
	return w
}
