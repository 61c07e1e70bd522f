package loader

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/dgallion1/docstruct/internal/docline"
)

// CSVLoader handles CSV files. The whole file becomes one marker-bounded
// table, which the engine classifies row by row.
type CSVLoader struct{}

func (l *CSVLoader) Load(r io.Reader, filename string) ([]docline.Line, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	lines := make([]docline.Line, 0, len(records)+2)
	lines = append(lines, docline.Line{Text: docline.TableStart})
	for _, row := range records {
		lines = append(lines, docline.Line{Text: docline.TableRow(row)})
	}
	lines = append(lines, docline.Line{Text: docline.TableEnd})
	return lines, nil
}
