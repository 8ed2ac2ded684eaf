package filename

import (
	"strings"
	"testing"
)

func TestFromTitle(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{"clean_title", "My Blog", "My Blog"},
		{"illegal_chars", `a*b<c>d:e"f/g\h|i?j`, "a_b_c_d_e_f_g_h_i_j"},
		{"leading_trailing_space", "  spaced out  ", "spaced out"},
		{"leading_trailing_dots", "...dotted...", "dotted"},
		{"reserved_name", "CON", "_CON"},
		{"reserved_name_lowercase", "prn", "_prn"},
		{"collapsed_underscores", "a__b _ c", "a_b_c"},
		{"control_chars", "b\x01\x02eep\x1f", "b_eep"},
		{"empty", "", "feed"},
		{"only_illegal", `<>:"/\|?*`, "feed"},
		{"only_dots_and_spaces", " . . ", "feed"},
		{"long_title", strings.Repeat("a", 300), strings.Repeat("a", 128)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromTitle(tc.input); got != tc.expected {
				t.Errorf("FromTitle(%q) = %q; want %q", tc.input, got, tc.expected)
			}
		})
	}
}
