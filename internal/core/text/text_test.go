package text

import "testing"

func TestCountVowels(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 0},
		{"rhythm", 0},
		{"banana", 3},
		{"AEIOU", 5},
		{"Education", 5},
	}

	for _, tt := range tests {
		if got := CountVowels(tt.word); got != tt.want {
			t.Errorf("CountVowels(%q) = %d, want %d", tt.word, got, tt.want)
		}
	}
}

func TestDashSeparate(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"", ""},
		{"a", "a"},
		{"abc", "a-b-c"},
		{"héllo", "h-é-l-l-o"},
	}

	for _, tt := range tests {
		if got := DashSeparate(tt.word); got != tt.want {
			t.Errorf("DashSeparate(%q) = %q, want %q", tt.word, got, tt.want)
		}
	}
}
