package i18n_test

import (
	"testing"
	"testing/fstest"

	"github.com/bookstore/backoffice/internal/i18n"
)

func TestPrinters(t *testing.T) {
	dir := fstest.MapFS{
		"en.yml":    {Data: []byte(`"Books": "Books"`)},
		"th.yml":    {Data: []byte("\"Books\": \"หนังสือ\"\n\"Year must be between %s and %s\": \"ปีต้องอยู่ระหว่าง %s ถึง %s\"\n")},
		"README.md": {Data: []byte("not a translation")},
	}

	printers, err := i18n.NewPrinters(dir, "en")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if langs := printers.Languages(); len(langs) != 2 || langs[0] != "en" || langs[1] != "th" {
		t.Errorf("Expected languages [en th], got %v", langs)
	}

	var cases = []struct {
		name     string
		lang     string
		key      string
		values   []any
		expected string
	}{
		{"Translated key", "th", "Books", nil, "หนังสือ"},
		{"Translated key with values", "th", "Year must be between %s and %s", []any{"1000", "2026"}, "ปีต้องอยู่ระหว่าง 1000 ถึง 2026"},
		{"Untranslated key is printed as is", "th", "Contact", nil, "Contact"},
		{"Unknown language uses the fallback", "fr", "Books", nil, "Books"},
		{"Untranslated key with values is formatted", "en", "%d books", []any{3}, "3 books"},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			if got := printers.T(tcase.lang, tcase.key, tcase.values...); got != tcase.expected {
				t.Errorf("Expected %q, got %q", tcase.expected, got)
			}
		})
	}
}

func TestPrintersFallbackLanguageComesFirst(t *testing.T) {
	dir := fstest.MapFS{
		"en.yml": {Data: []byte(`"Books": "Books"`)},
		"th.yml": {Data: []byte(`"Books": "หนังสือ"`)},
	}

	printers, err := i18n.NewPrinters(dir, "th")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if langs := printers.Languages(); len(langs) != 2 || langs[0] != "th" || langs[1] != "en" {
		t.Errorf("Expected languages [th en], got %v", langs)
	}
	if got := printers.T("fr", "Books"); got != "หนังสือ" {
		t.Errorf("Expected the fallback translation, got %q", got)
	}
}
