package ident_test

import (
	"testing"

	"lumen/internal/ident"
)

func TestCanonicalizeStripsRankPrefixAndSuffixes(t *testing.T) {
	base, tag := ident.Canonicalize("R2: Artist_Name_ev-25_points.json")
	if base != "Artist_Name" {
		t.Fatalf("unexpected base id: %q", base)
	}
	if tag != "ev-25" {
		t.Fatalf("unexpected exposure tag: %q", tag)
	}
}

func TestCanonicalizeVariants(t *testing.T) {
	cases := []struct {
		name string
		in   string
		base string
		tag  string
	}{
		{"gzipped points path", "results/ev-00/Vermeer_Girl_ev-00_points.json.gz", "Vermeer_Girl", "ev-00"},
		{"windows path", `C:\renders\Goya_Duel_ev-50.JSON`, "Goya_Duel", "ev-50"},
		{"rank word prefix", "rank 3-Monet_Haystacks", "Monet_Haystacks", ""},
		{"bare digit prefix", "2_Monet_Haystacks", "Monet_Haystacks", ""},
		{"lowercase r prefix", "r1:Monet_Haystacks", "Monet_Haystacks", ""},
		{"spaces and doubled underscores", "  Da Vinci__Last  Supper_ ", "Da_Vinci_Last_Supper", ""},
		{"already canonical", "Artist_Name", "Artist_Name", ""},
		{"empty", "   ", "", ""},
		{"tag only", "ev-25.json", "ev-25", "ev-25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			base, tag := ident.Canonicalize(tc.in)
			if base != tc.base || tag != tc.tag {
				t.Fatalf("Canonicalize(%q) = (%q, %q), want (%q, %q)", tc.in, base, tag, tc.base, tc.tag)
			}
		})
	}
}

func TestCanonicalizeIdempotent(t *testing.T) {
	inputs := []string{
		"R2: Artist_Name_ev-25_points.json",
		"results/ev-00/Vermeer_Girl_ev-00_points.json.gz",
		"rank 3-Monet_Haystacks",
		"  Da Vinci__Last  Supper_ ",
		"Artist_Name",
		"Hopper_Nighthawks_ev-00",
		"",
	}
	for _, in := range inputs {
		first, _ := ident.Canonicalize(in)
		second, _ := ident.Canonicalize(first)
		if second != first {
			t.Fatalf("Canonicalize not idempotent for %q: %q -> %q", in, first, second)
		}
	}
}

// A proper name that legitimately ends in an exposure tag loses that suffix on
// the first pass, but the result is stable from then on.
func TestCanonicalizeExposureSuffixInProperName(t *testing.T) {
	first, tag := ident.Canonicalize("Hopper_Nighthawks_ev-00")
	if first != "Hopper_Nighthawks" {
		t.Fatalf("unexpected base id: %q", first)
	}
	if tag != "ev-00" {
		t.Fatalf("unexpected tag: %q", tag)
	}
	second, _ := ident.Canonicalize(first)
	if second != first {
		t.Fatalf("expected stable id, got %q -> %q", first, second)
	}
}

func TestExposureTagPriority(t *testing.T) {
	// ev-00 is checked first even when another tag appears earlier in the string.
	if tag := ident.ExposureTag("x_ev-25_y_ev-00"); tag != "ev-00" {
		t.Fatalf("unexpected tag: %q", tag)
	}
	if tag := ident.ExposureTag("plain_name"); tag != "" {
		t.Fatalf("expected empty tag, got %q", tag)
	}
}

func TestSafeFileName(t *testing.T) {
	cases := map[string]string{
		"Artist Name: Study #2": "Artist_Name_Study_2",
		"plain-name_1.png":      "plain-name_1.png",
		"///":                   "untitled",
		"":                      "untitled",
	}
	for in, want := range cases {
		if got := ident.SafeFileName(in); got != want {
			t.Fatalf("SafeFileName(%q) = %q, want %q", in, got, want)
		}
	}
}
