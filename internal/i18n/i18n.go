package i18n

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var localeFS embed.FS

// DefaultLang is used when the requested language is unknown.
const DefaultLang = "fr"

// Supported lists the bundled dictionary languages.
var Supported = []string{"fr", "en"}

// Dictionary is a loaded translation table. Lookups walk dotted paths
// through the nested mapping and fail closed: a missing or non-leaf path is
// reported as not found, never panicked on.
type Dictionary struct {
	lang string
	root map[string]any
}

// Load parses the bundled dictionary for lang, falling back to DefaultLang
// for unsupported values.
func Load(lang string) (*Dictionary, error) {
	l := strings.ToLower(lang)
	supported := false
	for _, s := range Supported {
		if s == l {
			supported = true
			break
		}
	}
	if !supported {
		l = DefaultLang
	}

	data, err := localeFS.ReadFile("locales/" + l + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("reading dictionary %q: %w", l, err)
	}

	root := map[string]any{}
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parsing dictionary %q: %w", l, err)
	}
	return &Dictionary{lang: l, root: root}, nil
}

// Lang returns the language the dictionary was resolved to.
func (d *Dictionary) Lang() string {
	return d.lang
}

// Lookup resolves a dotted key path to its string value.
func (d *Dictionary) Lookup(path string) (string, bool) {
	var cur any = d.root
	for _, part := range strings.Split(path, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return "", false
		}
		cur, ok = m[part]
		if !ok {
			return "", false
		}
	}
	s, ok := cur.(string)
	return s, ok
}

// T returns the translation for path, or the path itself when missing so the
// gap is visible instead of silent.
func (d *Dictionary) T(path string) string {
	if s, ok := d.Lookup(path); ok {
		return s
	}
	return path
}

// Tf is T followed by Sprintf.
func (d *Dictionary) Tf(path string, args ...any) string {
	return fmt.Sprintf(d.T(path), args...)
}
