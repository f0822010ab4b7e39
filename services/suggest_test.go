package services

import (
	"reflect"
	"testing"
)

func TestSuggestNames(t *testing.T) {
	names := []string{"name", "Alice", "Alicia", "Bob", "Zoë", "Robert"}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "case and typo", query: "alise", want: []string{"Alice"}},
		{name: "accent folding", query: "zoe", want: []string{"Zoë"}},
		{name: "no close match", query: "Maximilian", want: []string{}},
		{name: "too short", query: "a", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SuggestNames(tt.query, names)
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("SuggestNames(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSuggestNamesCapsResults(t *testing.T) {
	names := []string{"Anna", "Anne", "Ann", "Anni", "Annu"}
	if got := SuggestNames("Anna ", names); len(got) > maxSuggestions {
		t.Fatalf("expected at most %d suggestions, got %v", maxSuggestions, got)
	}
}
