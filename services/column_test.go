package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		index int
		want  string
	}{
		{index: -5, want: ""},
		{index: 0, want: ""},
		{index: 1, want: "A"},
		{index: 2, want: "B"},
		{index: 26, want: "Z"},
		{index: 27, want: "AA"},
		{index: 52, want: "AZ"},
		{index: 53, want: "BA"},
		{index: 702, want: "ZZ"},
		{index: 703, want: "AAA"},
		{index: 16384, want: "XFD"},
	}

	for _, tt := range tests {
		if got := ColumnLetter(tt.index); got != tt.want {
			t.Fatalf("ColumnLetter(%d) = %q, want %q", tt.index, got, tt.want)
		}
	}
}

func TestColumnLetterRoundTrip(t *testing.T) {
	for n := 1; n <= 20000; n++ {
		letters := ColumnLetter(n)
		if got := ColumnIndex(letters); got != n {
			t.Fatalf("ColumnIndex(ColumnLetter(%d)) = %d via %q", n, got, letters)
		}
	}
}

func TestColumnLetterMatchesExcelize(t *testing.T) {
	// excelize caps columns at XFD (16384).
	for n := 1; n <= 16384; n++ {
		want, err := excelize.ColumnNumberToName(n)
		if err != nil {
			t.Fatalf("excelize.ColumnNumberToName(%d): %v", n, err)
		}
		if got := ColumnLetter(n); got != want {
			t.Fatalf("ColumnLetter(%d) = %q, excelize says %q", n, got, want)
		}
	}
}

func TestColumnIndexRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "A1", "-", "Ä"} {
		if got := ColumnIndex(input); got != 0 {
			t.Fatalf("ColumnIndex(%q) = %d, want 0", input, got)
		}
	}
	if got := ColumnIndex("ab"); got != 28 {
		t.Fatalf("ColumnIndex is case-insensitive, got %d", got)
	}
}

func TestCellRef(t *testing.T) {
	if got := CellRef(2, 2); got != "B2" {
		t.Fatalf("CellRef(2, 2) = %q", got)
	}
	if got := CellRef(10, 28); got != "AB10" {
		t.Fatalf("CellRef(10, 28) = %q", got)
	}
}
