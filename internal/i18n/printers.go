package i18n

import (
	"io/fs"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Printers holds a message printer for each supported language
type Printers struct {
	printers map[string]*message.Printer
	fallback string
	langs    []string
}

// NewPrinters loads the translations found in dir
func NewPrinters(dir fs.FS, fallbackLang string) (*Printers, error) {
	cat, langs, err := NewCatalogFromFolder(dir, fallbackLang)
	if err != nil {
		return nil, err
	}

	p := &Printers{
		printers: make(map[string]*message.Printer, len(langs)+1),
		fallback: fallbackLang,
		langs:    []string{fallbackLang},
	}
	p.printers[fallbackLang] = message.NewPrinter(language.MustParse(fallbackLang), message.Catalog(cat))
	for _, lang := range langs {
		if lang == fallbackLang {
			continue
		}
		p.printers[lang] = message.NewPrinter(language.MustParse(lang), message.Catalog(cat))
		p.langs = append(p.langs, lang)
	}

	return p, nil
}

// T translates key into lang, formatting values the way fmt.Sprintf does.
// Unknown languages use the fallback one.
func (p *Printers) T(lang, key string, values ...any) string {
	printer, ok := p.printers[lang]
	if !ok {
		printer = p.printers[p.fallback]
	}
	return printer.Sprintf(key, values...)
}

// Languages returns the identifiers of all supported languages, the fallback
// one first and the rest sorted
func (p *Printers) Languages() []string {
	return p.langs
}

func (p *Printers) Fallback() string {
	return p.fallback
}
