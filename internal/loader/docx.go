package loader

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dgallion1/docstruct/internal/docline"
	"github.com/fumiama/go-docx"
)

// DOCXLoader handles .docx files. Paragraph heading styles and bold runs
// become style hints, word-processor tables become marker-bounded row
// blocks, and embedded drawings become image markers.
type DOCXLoader struct{}

func (l *DOCXLoader) Load(r io.Reader, filename string) ([]docline.Line, error) {
	// go-docx needs a ReadSeeker+size, so write to temp file.
	tmp, err := os.CreateTemp("", "docstruct-docx-*.docx")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	size, err := io.Copy(tmp, r)
	if err != nil {
		tmp.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		tmp.Close()
		return nil, fmt.Errorf("seek temp file: %w", err)
	}

	doc, err := docx.Parse(tmp, int64(size))
	tmp.Close()
	if err != nil {
		return nil, fmt.Errorf("parse docx: %w", err)
	}

	var lines []docline.Line
	imageN := 0

	for _, item := range doc.Document.Body.Items {
		switch node := item.(type) {
		case *docx.Paragraph:
			text, bold, hasImage := docxParagraphText(node)
			if hasImage {
				imageN++
				lines = append(lines, docline.Line{Text: docline.ImageMarker(fmt.Sprintf("img%d", imageN))})
			}
			if text == "" {
				continue
			}
			style := docxParagraphStyle(node, bold)
			lines = append(lines, docline.Line{Text: text, Style: style})
			lines = append(lines, docline.Line{})
		case *docx.Table:
			lines = append(lines, docxTableLines(node)...)
			lines = append(lines, docline.Line{})
		}
	}

	return trimTrailingBlank(lines), nil
}

func docxParagraphStyle(para *docx.Paragraph, bold bool) *docline.Style {
	if level := docxHeadingLevel(para); level > 0 {
		return headingStyle(level)
	}
	if bold {
		return &docline.Style{Bold: true}
	}
	return nil
}

func docxHeadingLevel(para *docx.Paragraph) int {
	if para.Properties == nil || para.Properties.Style == nil {
		return 0
	}
	style := strings.ToLower(strings.ReplaceAll(para.Properties.Style.Val, " ", ""))
	if !strings.HasPrefix(style, "heading") {
		return 0
	}
	switch strings.TrimPrefix(style, "heading") {
	case "1":
		return 1
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	case "6":
		return 6
	}
	return 0
}

// docxParagraphText joins a paragraph's run text and reports whether any
// run is bold or carries an embedded drawing.
func docxParagraphText(para *docx.Paragraph) (string, bool, bool) {
	var buf strings.Builder
	bold := false
	hasImage := false
	for _, child := range para.Children {
		run, ok := child.(*docx.Run)
		if !ok {
			continue
		}
		if run.RunProperties != nil && run.RunProperties.Bold != nil {
			bold = true
		}
		for _, rc := range run.Children {
			switch t := rc.(type) {
			case *docx.Text:
				buf.WriteString(t.Text)
			case *docx.Drawing:
				hasImage = true
			}
		}
	}
	return strings.TrimSpace(buf.String()), bold, hasImage
}

func docxTableLines(table *docx.Table) []docline.Line {
	lines := []docline.Line{{Text: docline.TableStart}}
	for _, row := range table.TableRows {
		var cells []string
		for _, cell := range row.TableCells {
			var cb strings.Builder
			for _, para := range cell.Paragraphs {
				text, _, _ := docxParagraphText(para)
				if text == "" {
					continue
				}
				if cb.Len() > 0 {
					cb.WriteString(" ")
				}
				cb.WriteString(text)
			}
			cells = append(cells, cb.String())
		}
		if len(cells) > 0 {
			lines = append(lines, docline.Line{Text: docline.TableRow(cells)})
		}
	}
	return append(lines, docline.Line{Text: docline.TableEnd})
}
