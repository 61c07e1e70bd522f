// Package doctree holds the structured output model: a document folded
// into sections of typed content blocks.
package doctree

import (
	"github.com/dgallion1/docstruct/internal/classify"
	"github.com/dgallion1/docstruct/internal/numbering"
)

// BlockKind identifies the type of a content block.
type BlockKind int

const (
	BlockParagraph BlockKind = iota
	BlockList
	BlockTable
	BlockFigure
	BlockQuote
	BlockReference
	BlockDefinition
	BlockCode
	BlockEquation
	BlockMetadata
	BlockImage
)

var blockNames = map[BlockKind]string{
	BlockParagraph:  "paragraph",
	BlockList:       "list",
	BlockTable:      "table",
	BlockFigure:     "figure",
	BlockQuote:      "quote",
	BlockReference:  "reference",
	BlockDefinition: "definition",
	BlockCode:       "code",
	BlockEquation:   "equation",
	BlockMetadata:   "metadata",
	BlockImage:      "image",
}

func (k BlockKind) String() string {
	if s, ok := blockNames[k]; ok {
		return s
	}
	return "unknown"
}

// ListItem is one entry of a list block.
type ListItem struct {
	Marker string `json:"marker,omitempty"` // bullet char or "1.", "a)", ...
	Text   string `json:"text"`
}

// Block is one typed content unit inside a section. Fields are populated
// per kind; a table block holds parsed row arrays, not raw text.
type Block struct {
	Kind BlockKind `json:"kind"`

	Text string `json:"text,omitempty"` // paragraph, quote, reference, code, equation

	Term string `json:"term,omitempty"` // definition
	Body string `json:"body,omitempty"` // definition

	Ordered bool       `json:"ordered,omitempty"` // list
	Items   []ListItem `json:"items,omitempty"`   // list

	Rows    [][]string `json:"rows,omitempty"`    // table
	Caption string     `json:"caption,omitempty"` // table

	Number string `json:"number,omitempty"` // figure/table caption
	Title  string `json:"title,omitempty"`  // figure/table caption

	Subtype string `json:"subtype,omitempty"` // metadata
}

// Section is one heading and the ordered content under it.
type Section struct {
	Heading numbering.Record `json:"heading"`
	Level   int              `json:"level"`
	Content []*Block         `json:"content"`
}

// Line pairs a classification with its numbered heading record, when the
// line is a heading.
type Line struct {
	C       classify.Classification
	Heading *numbering.Record
}
