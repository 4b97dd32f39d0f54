package mapreduce

import (
	"reflect"
	"testing"
)

func TestReduce(t *testing.T) {
	intermediate := []map[string]int{
		{"battery": 2, "solid": 1},
		{"battery": 3, "charge": 4},
	}

	got := Reduce(intermediate)
	want := map[string]int{"battery": 5, "solid": 1, "charge": 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Reduce() = %v, want %v", got, want)
	}
}

func TestIsValidKeyword(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"learning", true},
		{"x_train", true},
		{"word:", false},
		{"foo=", false},
		{"func(", false},
		{"(ok)", true},
		{"slice[", false},
		{`say"`, false},
		{"don't", false},
	}

	for _, tt := range tests {
		if got := isValidKeyword(tt.word); got != tt.want {
			t.Errorf("isValidKeyword(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestTopKeywords(t *testing.T) {
	counts := map[string]int{
		"learning": 10,
		"model":    7,
		"data":     7,
		"bad(":     99,
	}

	got := TopKeywords(counts, 2)
	if len(got) != 2 {
		t.Fatalf("TopKeywords() returned %d entries, want 2", len(got))
	}
	if got[0] != "learning:10" {
		t.Errorf("top keyword = %q, want %q", got[0], "learning:10")
	}
}
