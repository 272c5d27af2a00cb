package language

import (
	"sort"
	"testing"
)

func TestParseKnownCodes(t *testing.T) {
	for _, code := range Codes() {
		l, err := Parse(code)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", code, err)
		}
		if l.Code() != code {
			t.Errorf("Parse(%q) returned code %q", code, l.Code())
		}
		if l.Name() == "" {
			t.Errorf("no display name for %q", code)
		}
	}
}

func TestParseEmptyYieldsDefault(t *testing.T) {
	l, err := Parse("")
	if err != nil {
		t.Fatal(err)
	}
	if l != Default {
		t.Errorf("want default %q, got %q", Default, l)
	}
}

func TestParseUnknownCode(t *testing.T) {
	for _, code := range []string{"xx", "en", "english", "FAS"} {
		if _, err := Parse(code); err == nil {
			t.Errorf("Parse(%q) should fail", code)
		}
	}
}

func TestCodesSorted(t *testing.T) {
	codes := Codes()
	if len(codes) == 0 {
		t.Fatal("no codes")
	}
	if !sort.StringsAreSorted(codes) {
		t.Errorf("codes not sorted: %v", codes)
	}
}

func TestSupportedRoundTrip(t *testing.T) {
	m := Supported()
	if m["English"] != "eng" {
		t.Errorf("want English=eng, got %q", m["English"])
	}
	if m["Farsi"] != "fas" {
		t.Errorf("want Farsi=fas, got %q", m["Farsi"])
	}
	if len(m) != len(Codes()) {
		t.Errorf("name map has %d entries, code list %d", len(m), len(Codes()))
	}
}
