package view

import (
	"fmt"
	"html/template"
	"net/url"
	"sort"
	"strings"
)

// ToQueryString encodes m as a query string, sorted by key
func ToQueryString(m map[string]string) template.URL {
	if len(m) == 0 {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(m))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", url.QueryEscape(k), url.QueryEscape(m[k])))
	}
	return template.URL(strings.Join(parts, "&"))
}
