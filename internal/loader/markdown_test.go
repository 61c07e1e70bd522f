package loader

import (
	"strings"
	"testing"

	"github.com/dgallion1/docstruct/internal/docline"
)

func findLine(lines []docline.Line, text string) *docline.Line {
	for i := range lines {
		if lines[i].Text == text {
			return &lines[i]
		}
	}
	return nil
}

func TestMarkdownLoader_HeadingStyles(t *testing.T) {
	input := `# Title

Intro text.

## Section A

Section A content.

### Subsection A1

Subsection A1 content.
`
	l := &MarkdownLoader{}
	lines, err := l.Load(strings.NewReader(input), "doc.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	h1 := findLine(lines, "Title")
	if h1 == nil {
		t.Fatal("expected a line for the h1 heading")
	}
	if h1.Style == nil || !h1.Style.Bold || h1.Style.FontSize < 16 {
		t.Errorf("expected bold large style for h1, got %+v", h1.Style)
	}

	h2 := findLine(lines, "Section A")
	if h2 == nil {
		t.Fatal("expected a line for the h2 heading")
	}
	if h2.Style == nil || !h2.Style.Bold || h2.Style.FontSize >= 16 {
		t.Errorf("expected bold medium style for h2, got %+v", h2.Style)
	}

	if para := findLine(lines, "Intro text."); para == nil {
		t.Error("expected intro paragraph to survive")
	} else if para.Style != nil {
		t.Errorf("expected no style hints on paragraph, got %+v", para.Style)
	}
}

func TestMarkdownLoader_PreservesListMarkers(t *testing.T) {
	input := "Shopping:\n\n- first item\n- second item\n\n1. step one\n2. step two\n"
	l := &MarkdownLoader{}
	lines, err := l.Load(strings.NewReader(input), "list.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"- first item", "- second item", "1. step one", "2. step two"} {
		if findLine(lines, want) == nil {
			t.Errorf("expected raw list line %q to survive", want)
		}
	}
}

func TestMarkdownLoader_CodeBlockContentSurvives(t *testing.T) {
	input := "# API Reference\n\nSome intro.\n\n```\nGET /api/users\nPOST /api/users\n```\n\nMore text after code.\n"
	l := &MarkdownLoader{}
	lines, err := l.Load(strings.NewReader(input), "api.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if findLine(lines, "GET /api/users") == nil {
		t.Error("expected code block content to survive")
	}
	if findLine(lines, "More text after code.") == nil {
		t.Error("expected post-code paragraph to survive")
	}
}

func TestMarkdownLoader_EmptyInput(t *testing.T) {
	l := &MarkdownLoader{}
	lines, err := l.Load(strings.NewReader(""), "empty.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected 0 lines for empty input, got %d", len(lines))
	}
}
