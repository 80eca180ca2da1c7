package chart

import "testing"

func TestSafeFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Curve 1", "Curve 1"},
		{"well-A_final", "well-A_final"},
		{"a/b:c", "abc"},
		{"name *", "name"},
		{"  spaced  ", "  spaced"},
		{"πcurve", "πcurve"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SafeFileName(tt.in); got != tt.want {
			t.Errorf("SafeFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
