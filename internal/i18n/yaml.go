package i18n

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message/catalog"
	"gopkg.in/yaml.v2"
)

type yamlDictionary struct {
	Entries map[string]string
}

func (d *yamlDictionary) Lookup(key string) (data string, ok bool) {
	if value, ok := d.Entries[key]; ok {
		// \x02 is ASCII code for hex 02, which is STX (start of text)
		return "\x02" + value, true
	}
	return "", false
}

// NewCatalogFromFolder reads all translation yml files in the root of dir and generates a
// translation catalog from them. Each file must be named after the two-letter
// identifier of its language, e. g. "th.yml" for thai, "en.yml" for english.
// It also returns the identifiers of the languages found, sorted.
func NewCatalogFromFolder(dir fs.FS, fallbackLang string) (catalog.Catalog, []string, error) {
	files, err := fs.ReadDir(dir, ".")
	if err != nil {
		return nil, nil, err
	}
	translations := map[string]catalog.Dictionary{}
	langs := []string{}
	for _, file := range files {
		if file.IsDir() || (filepath.Ext(file.Name()) != ".yml" && filepath.Ext(file.Name()) != ".yaml") {
			continue
		}
		yamlFile, err := fs.ReadFile(dir, file.Name())
		if err != nil {
			return nil, nil, err
		}
		lang := strings.TrimSuffix(file.Name(), filepath.Ext(file.Name()))
		dict, err := ParseYAMLDict(yamlFile)
		if err != nil {
			return nil, nil, err
		}
		translations[lang] = dict
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	cat, err := catalog.NewFromMap(translations, catalog.Fallback(language.MustParse(fallbackLang)))
	if err != nil {
		return nil, nil, err
	}
	return cat, langs, nil
}

func ParseYAMLDict(file []byte) (*yamlDictionary, error) {
	data := map[string]string{}
	err := yaml.Unmarshal(file, &data)
	if err != nil {
		return nil, err
	}
	return &yamlDictionary{Entries: data}, nil
}
