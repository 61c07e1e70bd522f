package loader

import (
	"io"
	"strings"

	"github.com/dgallion1/docstruct/internal/docline"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownLoader handles Markdown files using goldmark. Headings become
// styled lines; every other block keeps its raw source lines so list
// markers, pipe rows, and quote prefixes survive for the engine.
type MarkdownLoader struct{}

func (l *MarkdownLoader) Load(r io.Reader, filename string) ([]docline.Line, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	doc := md.Parser().Parse(reader)

	var lines []docline.Line
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			lines = append(lines, docline.Line{
				Text:  string(node.Text(src)),
				Style: headingStyle(node.Level),
			})
		default:
			for _, raw := range rawBlockLines(n, src) {
				lines = append(lines, docline.Line{Text: raw})
			}
		}
		// Blocks are separated by blank lines in the source.
		lines = append(lines, docline.Line{})
	}

	return trimTrailingBlank(lines), nil
}

func headingStyle(level int) *docline.Style {
	size := 12.0
	switch level {
	case 1:
		size = 18
	case 2:
		size = 14
	}
	return &docline.Style{Bold: true, FontSize: size}
}

// rawBlockLines returns the original source lines spanned by a block,
// widened to full lines so leading markers are included.
func rawBlockLines(n ast.Node, src []byte) []string {
	start, stop, ok := blockSpan(n, src)
	if !ok {
		return nil
	}
	for start > 0 && src[start-1] != '\n' {
		start--
	}
	for stop < len(src) && src[stop] != '\n' {
		stop++
	}
	return strings.Split(strings.TrimRight(string(src[start:stop]), "\n"), "\n")
}

func blockSpan(n ast.Node, src []byte) (int, int, bool) {
	start, stop := -1, -1
	_ = ast.Walk(n, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering || node.Type() != ast.TypeBlock {
			return ast.WalkContinue, nil
		}
		segments := node.Lines()
		for i := 0; i < segments.Len(); i++ {
			seg := segments.At(i)
			if start == -1 || seg.Start < start {
				start = seg.Start
			}
			if seg.Stop > stop {
				stop = seg.Stop
			}
		}
		return ast.WalkContinue, nil
	})
	if start == -1 {
		return 0, 0, false
	}
	return start, stop, true
}

func trimTrailingBlank(lines []docline.Line) []docline.Line {
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1].Text) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
