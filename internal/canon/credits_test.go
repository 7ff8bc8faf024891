package canon_test

import (
	"reflect"
	"testing"

	"tunecat/internal/canon"
)

func TestSplitMultiValue(t *testing.T) {
	tests := []struct {
		raw   string
		delim string
		want  []string
	}{
		{raw: "Dua Lipa, Elton John", delim: ",", want: []string{"Dua Lipa", "Elton John"}},
		{raw: "Solo Artist", delim: ",", want: []string{"Solo Artist"}},
		{raw: " A ,, B ,", delim: ",", want: []string{"A", "B"}},
		{raw: "", delim: ",", want: []string{}},
		{raw: "A - B", delim: " - ", want: []string{"A", "B"}},
		{raw: "  kept  ", delim: "", want: []string{"kept"}},
		{raw: "   ", delim: "", want: nil},
	}
	for _, tt := range tests {
		got := canon.SplitMultiValue(tt.raw, tt.delim)
		if len(got) == 0 && len(tt.want) == 0 {
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SplitMultiValue(%q, %q) = %#v, want %#v", tt.raw, tt.delim, got, tt.want)
		}
	}
}

func TestCleanArtistCredit(t *testing.T) {
	tests := map[string]string{
		"Taylor Swift":                "Taylor Swift",
		"Post Malone feat. 21 Savage": "Post Malone - 21 Savage",
		"Dua Lipa & Elton John":       "Dua Lipa - Elton John",
		"The Weeknd x Ariana Grande":  "The Weeknd - Ariana Grande",
		"Drake featuring Rihanna":     "Drake - Rihanna",
		"Ed Sheeran, Justin Bieber":   "Ed Sheeran - Justin Bieber",
		`"Billie Eilish"`:             "Billie Eilish",
		"Bad Bunny FEAT Rosalía":      "Bad Bunny - Rosalía",
		"Marshmello  &  Bastille":     "Marshmello - Bastille",
		"Jay-Z":                       "Jay-Z",
	}
	for in, want := range tests {
		if got := canon.CleanArtistCredit(in); got != want {
			t.Errorf("CleanArtistCredit(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMainArtist(t *testing.T) {
	tests := map[string]string{
		"Post Malone - 21 Savage": "Post Malone",
		"Jay-Z":                   "Jay-Z",
		"  Solo  ":                "Solo",
		"":                        "",
	}
	for in, want := range tests {
		if got := canon.MainArtist(in); got != want {
			t.Errorf("MainArtist(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseListLiteral(t *testing.T) {
	got, err := canon.ParseListLiteral(`['Dua Lipa', "Guns N' Roses", 'It\'s Me']`)
	if err != nil {
		t.Fatalf("ParseListLiteral returned error: %v", err)
	}
	want := []string{"Dua Lipa", "Guns N' Roses", "It's Me"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ParseListLiteral = %#v, want %#v", got, want)
	}

	empty, err := canon.ParseListLiteral("[]")
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty list, got %#v err=%v", empty, err)
	}

	for _, bad := range []string{"['a'", "['a' 'b']", "['a',]", "[,'a']", "[a]", "['open]"} {
		if _, err := canon.ParseListLiteral(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestFirstListedArtist(t *testing.T) {
	tests := []struct {
		raw    string
		want   string
		wantOK bool
	}{
		{raw: "['Dua Lipa', 'Elton John']", want: "Dua Lipa", wantOK: true},
		{raw: "  Plain Artist ", want: "Plain Artist", wantOK: true},
		{raw: "[]", want: "", wantOK: false},
		{raw: "", want: "", wantOK: false},
		{raw: "['Broken, 'Literal", want: "Broken", wantOK: true},
	}
	for _, tt := range tests {
		got, ok := canon.FirstListedArtist(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("FirstListedArtist(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}
