package hierarchy

import (
	"reflect"
	"testing"
)

func TestCorrectLines_KnownPairs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "week day",
			in:   []string{"3.6 WEEK TWO", "3.7 DAY ONE"},
			want: []string{"3.6 WEEK TWO", "3.6.1 DAY ONE"},
		},
		{
			name: "analysis finding",
			in:   []string{"4.1 DATA ANALYSIS", "4.2 FINDING ONE"},
			want: []string{"4.1 DATA ANALYSIS", "4.1.1 FINDING ONE"},
		},
		{
			name: "method step",
			in:   []string{"2.3 RESEARCH METHOD", "2.4 STEP ONE"},
			want: []string{"2.3 RESEARCH METHOD", "2.3.1 STEP ONE"},
		},
		{
			name: "unit lesson",
			in:   []string{"1.1 UNIT ONE", "1.2 LESSON ONE"},
			want: []string{"1.1 UNIT ONE", "1.1.1 LESSON ONE"},
		},
		{
			name: "types type",
			in:   []string{"3.1 TYPES OF ERRORS", "3.2 TYPE ONE"},
			want: []string{"3.1 TYPES OF ERRORS", "3.1.1 TYPE ONE"},
		},
	}
	c := New(1)
	for _, tt := range tests {
		got := c.CorrectLines(tt.in)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCorrectLines_PartWithEnumeratedChild(t *testing.T) {
	in := []string{"2.1 PART A", "2.2 1. Introduction"}
	want := []string{"2.1 PART A", "2.1.1 1. Introduction"}
	got := New(1).CorrectLines(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCorrectLines_GenericOverlapHeuristic(t *testing.T) {
	in := []string{"5.1 Data Analysis", "5.2 Analysis of Survey Data Results"}
	want := []string{"5.1 Data Analysis", "5.1.1 Analysis of Survey Data Results"}
	got := New(1).CorrectLines(in)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestCorrectLines_UnrelatedSiblingsUntouched(t *testing.T) {
	tests := [][]string{
		{"3.6 RESULTS", "3.7 CONCLUSIONS"},
		{"4.0 OTHER"},
		{"3.6 WEEK TWO", "4.1 DAY ONE"}, // different parent prefix
		{"plain prose line", "another prose line"},
	}
	c := New(1)
	for _, in := range tests {
		got := c.CorrectLines(in)
		if !reflect.DeepEqual(got, in) {
			t.Errorf("expected passthrough for %v, got %v", in, got)
		}
	}
}

func TestCorrectLines_Idempotent(t *testing.T) {
	c := New(1)
	in := []string{
		"CHAPTER THREE: TRAINING PLAN",
		"3.6 WEEK TWO",
		"3.7 DAY ONE",
		"3.8 WEEK THREE",
		"prose between headings",
	}
	once := c.CorrectLines(in)
	twice := c.CorrectLines(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected idempotent correction:\nonce:  %v\ntwice: %v", once, twice)
	}
}

func TestCorrectLines_PreservesLength(t *testing.T) {
	in := []string{"", "3.6 WEEK TWO", "3.7 DAY ONE", "", "closing prose"}
	got := New(1).CorrectLines(in)
	if len(got) != len(in) {
		t.Fatalf("expected length %d preserved, got %d", len(in), len(got))
	}
}

func TestCorrect_JoinsText(t *testing.T) {
	in := "3.6 WEEK TWO\n3.7 DAY ONE"
	want := "3.6 WEEK TWO\n3.6.1 DAY ONE"
	if got := New(1).Correct(in); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSameLevelSiblings(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"3.6", "3.7", true},
		{"3.6", "3.6.1", false},
		{"3.6", "4.1", false},
		{"1", "2", true},
		{"3.6", "3.6", false},
	}
	for _, tt := range tests {
		if got := sameLevelSiblings(tt.a, tt.b); got != tt.want {
			t.Errorf("sameLevelSiblings(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}
