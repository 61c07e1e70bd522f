package loader

import (
	"bufio"
	"io"

	"github.com/dgallion1/docstruct/internal/docline"
)

// TextLoader handles plain text files. Lines pass through unchanged; the
// engine does all structural interpretation itself.
type TextLoader struct{}

func (l *TextLoader) Load(r io.Reader, filename string) ([]docline.Line, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var lines []docline.Line
	for scanner.Scan() {
		lines = append(lines, docline.Line{Text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
