package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"user@example.edu", true},
		{"first.last+tag@sub.example.com", true},
		{"  padded@example.com  ", true},
		{"no-at-sign.example.com", false},
		{"user@", false},
		{"user@host", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidEmail(tt.input); got != tt.want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsFilled(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"text", true},
		{" text ", true},
		{"", false},
		{"   ", false},
		{"\t\n", false},
	}

	for _, tt := range tests {
		if got := IsFilled(tt.input); got != tt.want {
			t.Errorf("IsFilled(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.edu/notes.pdf", true},
		{"http://example.edu", true},
		{" https://example.edu ", true},
		{"/relative/path", false},
		{"example.edu/no-scheme", false},
		{"https://", false},
		{"not a url at all", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := IsValidURL(tt.input); got != tt.want {
			t.Errorf("IsValidURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestIsValidRating(t *testing.T) {
	for rating, want := range map[int]bool{0: false, 1: true, 3: true, 5: true, 6: false, -1: false} {
		if got := IsValidRating(rating); got != want {
			t.Errorf("IsValidRating(%d) = %v, want %v", rating, got, want)
		}
	}
}
