package names_test

import (
	"testing"

	"castmerge/internal/names"
)

func TestCanonicalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"initials with periods", "S.S. Rajamouli", "S S Rajamouli"},
		{"lowercase", "mahesh babu", "Mahesh Babu"},
		{"uppercase", "MAHESH BABU", "Mahesh Babu"},
		{"extra whitespace", "  Mahesh   Babu  ", "Mahesh Babu"},
		{"spaced hyphen", "Anne - Marie", "Anne-marie"},
		{"already canonical", "Mahesh Babu", "Mahesh Babu"},
		{"single token", "prabhas", "Prabhas"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := names.Canonicalize(tc.in); got != tc.want {
				t.Fatalf("Canonicalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestCanonicalizeIsIdempotent(t *testing.T) {
	inputs := []string{
		"S.S. Rajamouli",
		"mahesh babu",
		"N.T.R.",
		"Anne - Marie Fernandez",
		"M M Keeravani",
	}
	for _, in := range inputs {
		once := names.Canonicalize(in)
		twice := names.Canonicalize(once)
		if once != twice {
			t.Fatalf("Canonicalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestCanonicalizeEquatesKnownSpellings(t *testing.T) {
	spellings := []string{"S.S. Rajamouli", "s s rajamouli", "S  S  RAJAMOULI", "S. S. Rajamouli"}
	want := names.Canonicalize(spellings[0])
	for _, spelling := range spellings[1:] {
		if got := names.Canonicalize(spelling); got != want {
			t.Fatalf("Canonicalize(%q) = %q, want %q", spelling, got, want)
		}
	}
}
