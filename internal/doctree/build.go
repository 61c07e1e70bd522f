package doctree

import (
	"strings"

	"github.com/dgallion1/docstruct/internal/classify"
	"github.com/dgallion1/docstruct/internal/numbering"
)

// builder folds a classified line stream into sections. It keeps one open
// section plus list and table accumulators; a heading flushes both and
// opens a new section.
type builder struct {
	sections []*Section
	current  *Section

	list      []ListItem
	listKind  classify.Kind
	tableRows [][]string
	tableCap  string
	inTable   bool
}

// Build folds classified, numbered lines into an ordered section tree.
// Content before the first heading lands in an unnamed preamble section.
// Unclosed lists and tables at end of stream flush into the final section.
func Build(lines []Line) []*Section {
	b := &builder{
		current: &Section{Heading: numbering.Record{}, Level: 0},
	}

	for _, ln := range lines {
		c := ln.C
		switch c.Kind {
		case classify.Empty:
			// Blank lines close nothing structurally; a table keeps
			// accumulating across them.

		case classify.Heading:
			b.flushList()
			b.flushTable()
			b.pushSection()
			rec := numbering.Record{OriginalText: c.Content, NumberedText: c.Content, Level: c.Level}
			if ln.Heading != nil {
				rec = *ln.Heading
			}
			b.current = &Section{Heading: rec, Level: c.Level}

		case classify.Bullet:
			b.flushTable()
			b.appendListItem(c.Kind, ListItem{Marker: c.BulletChar, Text: c.Content})

		case classify.Numbered:
			b.flushTable()
			b.appendListItem(c.Kind, ListItem{Marker: c.Marker, Text: c.Content})

		case classify.TableStart:
			b.flushList()
			b.flushTable()
			b.inTable = true

		case classify.TableEnd:
			b.flushList()
			b.flushTable()

		case classify.TableRow:
			b.flushList()
			b.tableRows = append(b.tableRows, c.Cells)

		case classify.TableSeparator:
			// Layout only; rows on both sides belong to one table.

		case classify.TableCaption:
			// A caption above its table (or amid accumulating rows) is
			// held for the table flushed next; one below attaches to the
			// table block just emitted.
			b.flushList()
			if blk := b.lastTable(); blk != nil && blk.Caption == "" && !b.inTable && len(b.tableRows) == 0 {
				blk.Caption = captionText(c)
			} else {
				b.tableCap = captionText(c)
			}

		case classify.FigureCaption:
			b.flushList()
			b.flushTable()
			b.append(&Block{Kind: BlockFigure, Number: c.Number, Title: c.Title})

		case classify.Reference:
			b.flushList()
			b.flushTable()
			b.append(&Block{Kind: BlockReference, Text: c.Content})

		case classify.Definition:
			b.flushList()
			b.flushTable()
			b.append(&Block{Kind: BlockDefinition, Term: c.Term, Body: c.Body})

		case classify.Quote:
			b.flushList()
			b.flushTable()
			b.append(&Block{Kind: BlockQuote, Text: c.Content})

		case classify.Code:
			b.flushList()
			b.flushTable()
			b.append(&Block{Kind: BlockCode, Text: c.Content})

		case classify.Equation:
			b.flushList()
			b.flushTable()
			b.append(&Block{Kind: BlockEquation, Text: c.Content})

		case classify.Image:
			b.flushList()
			b.flushTable()
			b.append(&Block{Kind: BlockImage, Text: c.Content})

		case classify.Metadata:
			b.flushList()
			b.flushTable()
			b.append(&Block{Kind: BlockMetadata, Subtype: c.Subtype, Text: c.Content})

		default: // Paragraph
			b.flushList()
			b.flushTable()
			b.append(&Block{Kind: BlockParagraph, Text: c.Content})
		}
	}

	b.flushList()
	b.flushTable()
	b.pushSection()

	return b.sections
}

func captionText(c classify.Classification) string {
	if c.Number == "" {
		return c.Title
	}
	return strings.TrimSpace(c.Number + " " + c.Title)
}

func (b *builder) append(blk *Block) {
	b.current.Content = append(b.current.Content, blk)
}

// appendListItem coalesces consecutive items of the same list kind into
// one open list; a kind switch closes the previous list.
func (b *builder) appendListItem(kind classify.Kind, item ListItem) {
	if len(b.list) > 0 && b.listKind != kind {
		b.flushList()
	}
	b.listKind = kind
	b.list = append(b.list, item)
}

func (b *builder) flushList() {
	if len(b.list) == 0 {
		return
	}
	b.append(&Block{
		Kind:    BlockList,
		Ordered: b.listKind == classify.Numbered,
		Items:   b.list,
	})
	b.list = nil
}

// lastTable returns the newest block of the open section when it is a
// table, nil otherwise.
func (b *builder) lastTable() *Block {
	if n := len(b.current.Content); n > 0 {
		if blk := b.current.Content[n-1]; blk.Kind == BlockTable {
			return blk
		}
	}
	return nil
}

func (b *builder) flushTable() {
	if len(b.tableRows) == 0 {
		if b.inTable {
			b.inTable = false
		}
		return
	}
	b.append(&Block{Kind: BlockTable, Rows: b.tableRows, Caption: b.tableCap})
	b.tableRows = nil
	b.tableCap = ""
	b.inTable = false
}

// Headings flattens the tree back to the ordered heading records, the
// shape list-of-contents generation wants.
func Headings(sections []*Section) []numbering.Record {
	var out []numbering.Record
	for _, s := range sections {
		if s.Heading.OriginalText != "" || s.Heading.NumberedText != "" {
			out = append(out, s.Heading)
		}
	}
	return out
}

// pushSection stores the current section if it has a heading or content.
// A caption still pending with no table to claim it flushes as a
// caption-only table block rather than leaking into the next section.
func (b *builder) pushSection() {
	if b.current == nil {
		return
	}
	if b.tableCap != "" {
		b.append(&Block{Kind: BlockTable, Caption: b.tableCap})
		b.tableCap = ""
	}
	if b.current.Heading.NumberedText == "" && len(b.current.Content) == 0 {
		return
	}
	b.sections = append(b.sections, b.current)
	b.current = nil
}
