// Package language defines the closed set of languages the classical OCR
// backend accepts. Codes are Tesseract traineddata identifiers; the set is
// fixed at compile time and shared by the form and JSON request paths.
package language

import (
	"fmt"
	"sort"
)

// Language is a Tesseract language code, e.g. "eng".
type Language string

const (
	Arabic  Language = "ara"
	German  Language = "deu"
	English Language = "eng"
	Farsi   Language = "fas"
	French  Language = "fra"
	Russian Language = "rus"
	Spanish Language = "spa"
)

// Default is used when a form-based request omits the language field.
const Default = Farsi

var names = map[Language]string{
	Arabic:  "Arabic",
	German:  "German",
	English: "English",
	Farsi:   "Farsi",
	French:  "French",
	Russian: "Russian",
	Spanish: "Spanish",
}

// Parse returns the Language for code, or an error if code is not in the
// supported set. The empty string maps to Default.
func Parse(code string) (Language, error) {
	if code == "" {
		return Default, nil
	}
	l := Language(code)
	if _, ok := names[l]; !ok {
		return "", fmt.Errorf("unsupported language code %q", code)
	}
	return l, nil
}

// Code returns the Tesseract traineddata identifier.
func (l Language) Code() string {
	return string(l)
}

// Name returns the display name, e.g. "English" for "eng".
func (l Language) Name() string {
	return names[l]
}

// Codes returns all supported codes, sorted lexicographically.
func Codes() []string {
	codes := make([]string, 0, len(names))
	for l := range names {
		codes = append(codes, string(l))
	}
	sort.Strings(codes)
	return codes
}

// Supported maps display names to codes, as served by
// GET /get_supported_languages.
func Supported() map[string]string {
	m := make(map[string]string, len(names))
	for l, name := range names {
		m[name] = string(l)
	}
	return m
}
