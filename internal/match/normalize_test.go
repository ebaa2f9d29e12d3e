package match

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hallo", "hallo"},
		{"HALLO", "hallo"},
		{"Hallo.", "hallo"},
		{"  hallo  ", "hallo"},
		{"Wie geht's?", "wie geht's"},
		{"ja, gut!", "ja gut"},
		{"zu Hause", "zu hause"},
		{"auf Wiedersehen", "auf wiedersehen"},
		{"ПРИВЕТ", "привет"},
		{"", ""},
		{"   ", ""},
		{".,;:!?", ""},
		{"e-mail", "e-mail"},
	}

	for _, tc := range tests {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalizeEquivalence(t *testing.T) {
	// All surface variants of the same answer collapse to one form.
	variants := []string{"Hallo.", "hallo", "HALLO", "  Hallo!  "}
	base := Normalize(variants[0])
	for _, v := range variants[1:] {
		if Normalize(v) != base {
			t.Errorf("Normalize(%q) = %q, want %q", v, Normalize(v), base)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Hallo.", "  WIE GEHT'S?  ", "ich bin", ""}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
