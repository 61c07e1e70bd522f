package loader

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/docstruct/internal/docline"
	"golang.org/x/net/html"
)

// HTMLLoader handles HTML files. Headings carry style hints sized by tag
// level, tables become marker-bounded row blocks, and images become
// placeholder markers.
type HTMLLoader struct{}

func (l *HTMLLoader) Load(r io.Reader, filename string) ([]docline.Line, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var lines []docline.Line
	emit := func(ln docline.Line) {
		lines = append(lines, ln)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				if t := textContent(n); t != "" {
					emit(docline.Line{})
					emit(docline.Line{Text: t, Style: headingStyle(level)})
					emit(docline.Line{})
				}
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "table":
				emitTable(n, emit)
				return
			case "img":
				emit(docline.Line{Text: docline.ImageMarker(imageID(n))})
				return
			case "p", "blockquote", "figcaption", "caption", "pre", "dt", "dd":
				if t := textContent(n); t != "" {
					emit(docline.Line{Text: t})
					emit(docline.Line{})
				}
				return
			case "li":
				if t := textContent(n); t != "" {
					emit(docline.Line{Text: "- " + t})
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	body := findBody(doc)
	if body != nil {
		walk(body)
	} else {
		walk(doc)
	}

	return trimTrailingBlank(lines), nil
}

func emitTable(table *html.Node, emit func(docline.Line)) {
	emit(docline.Line{Text: docline.TableStart})
	var rows func(*html.Node)
	rows = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "tr" {
			var cells []string
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
					cells = append(cells, textContent(c))
				}
			}
			if len(cells) > 0 {
				emit(docline.Line{Text: docline.TableRow(cells)})
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rows(c)
		}
	}
	rows(table)
	emit(docline.Line{Text: docline.TableEnd})
}

func imageID(n *html.Node) string {
	var src, alt string
	for _, a := range n.Attr {
		switch a.Key {
		case "src":
			src = a.Val
		case "alt":
			alt = a.Val
		}
	}
	if alt != "" {
		return alt
	}
	if src != "" {
		return src
	}
	return "image"
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func textContent(n *html.Node) string {
	var buf strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.Join(strings.Fields(buf.String()), " ")
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
