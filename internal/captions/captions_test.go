package captions

import (
	"testing"
)

func TestDetect_StandardForms(t *testing.T) {
	tests := []struct {
		line     string
		number   string
		title    string
		category Category
	}{
		{"Figure 1: System Architecture", "1", "System Architecture", Figure},
		{"Figure 4.18: Detail View", "4.18", "Detail View", Figure},
		{"Fig. 2: Data Flow", "2", "Data Flow", Figure},
		{"Fig2: Compact Label", "2", "Compact Label", Figure},
		{"Table 2.1: Participant Demographics", "2.1", "Participant Demographics", Table},
		{"Tbl. 3: Error Rates", "3", "Error Rates", Table},
		{"Tab 4.5: Summary Statistics", "4.5", "Summary Statistics", Table},
		{"Chart 7 - Quarterly Revenue", "7", "Quarterly Revenue", Figure},
		{"Diagram 2. Network Topology", "2", "Network Topology", Figure},
	}
	for _, tt := range tests {
		e, ok := Detect(tt.line)
		if !ok {
			t.Errorf("%q: expected detection", tt.line)
			continue
		}
		if e.Number != tt.number {
			t.Errorf("%q: expected number %q, got %q", tt.line, tt.number, e.Number)
		}
		if e.Title != tt.title {
			t.Errorf("%q: expected title %q, got %q", tt.line, tt.title, e.Title)
		}
		if e.Category != tt.category {
			t.Errorf("%q: expected category %v, got %v", tt.line, tt.category, e.Category)
		}
	}
}

func TestDetect_CaseInsensitive(t *testing.T) {
	e, ok := Detect("TABLE 2: Results Summary")
	if !ok || e.Category != Table || e.Number != "2" {
		t.Fatalf("expected table caption, got %+v ok=%v", e, ok)
	}
}

func TestDetect_ListPrefixStripped(t *testing.T) {
	e, ok := Detect("3. Figure 3: Annotated Screenshot")
	if !ok {
		t.Fatal("expected detection behind list marker")
	}
	if e.Number != "3" || e.Category != Figure {
		t.Errorf("expected figure 3, got %+v", e)
	}
}

func TestDetect_MidSentenceMentionIgnored(t *testing.T) {
	lines := []string{
		"As shown in Figure 3: the trend continues upward.",
		"See Table 2 for details.",
		"The figure below illustrates this.",
	}
	for _, line := range lines {
		if _, ok := Detect(line); ok {
			t.Errorf("%q: expected no detection for mid-sentence mention", line)
		}
	}
}

func TestDetect_NoSeparatorNoCaption(t *testing.T) {
	if _, ok := Detect("Figure 3"); ok {
		t.Error("expected no detection without separator and title")
	}
}

func TestScan_OnePerLine(t *testing.T) {
	lines := []string{
		"INTRODUCTION",
		"Figure 1: First",
		"Some prose here.",
		"Table 1: Data",
		"Figure 2: Second",
	}
	entries := Scan(lines)
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	if entries[0].Line != 1 || entries[1].Line != 3 || entries[2].Line != 4 {
		t.Errorf("unexpected line indices: %d %d %d", entries[0].Line, entries[1].Line, entries[2].Line)
	}
}

func TestDetectFigure_RejectsTables(t *testing.T) {
	if _, ok := DetectFigure("Table 1: Data"); ok {
		t.Error("expected DetectFigure to reject a table caption")
	}
	if _, ok := DetectTable("Figure 1: Data"); ok {
		t.Error("expected DetectTable to reject a figure caption")
	}
}
