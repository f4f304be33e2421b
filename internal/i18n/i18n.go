// Package i18n supplies the default callout labels for a document language.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLang is the language used when a document language has no table.
const DefaultLang = "en"

//go:embed translations/*.yaml
var translationFS embed.FS

// Translator returns the text for a translation key.
type Translator func(key string) string

// Catalog holds one label table per language. It is immutable once built
// and can be shared between goroutines.
type Catalog struct {
	langs   []string // langs[0] is DefaultLang
	tables  []map[string]string
	matcher language.Matcher
}

var builtin = mustLoad()

// Default returns the catalog built from the embedded tables.
func Default() *Catalog {
	return builtin
}

func mustLoad() *Catalog {
	c, err := Load(translationFS, "translations")
	if err != nil {
		panic(err)
	}
	return c
}

// Load reads every <lang>.yaml file in dir. A table for DefaultLang must exist.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read translations: %w", err)
	}
	tables := map[string]map[string]string{}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", e.Name(), err)
		}
		table := map[string]string{}
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Name(), err)
		}
		tables[strings.TrimSuffix(e.Name(), ".yaml")] = table
	}
	return NewCatalog(tables)
}

// NewCatalog builds a catalog from in-memory tables keyed by BCP 47 tag.
func NewCatalog(tables map[string]map[string]string) (*Catalog, error) {
	if _, ok := tables[DefaultLang]; !ok {
		return nil, fmt.Errorf("missing %q translation table", DefaultLang)
	}
	langs := make([]string, 0, len(tables))
	for lang := range tables {
		if lang != DefaultLang {
			langs = append(langs, lang)
		}
	}
	sort.Strings(langs)
	langs = append([]string{DefaultLang}, langs...)

	c := &Catalog{langs: langs}
	tags := make([]language.Tag, len(langs))
	for i, lang := range langs {
		tag, err := language.Parse(lang)
		if err != nil {
			return nil, fmt.Errorf("translation table %q: %w", lang, err)
		}
		tags[i] = tag
		c.tables = append(c.tables, tables[lang])
	}
	c.matcher = language.NewMatcher(tags)
	return c, nil
}

// Languages lists the languages with a table, DefaultLang first.
func (c *Catalog) Languages() []string {
	return append([]string(nil), c.langs...)
}

// Resolve returns the table language used for lang. Unknown or malformed
// languages resolve to DefaultLang.
func (c *Catalog) Resolve(lang string) string {
	return c.langs[c.index(lang)]
}

func (c *Catalog) index(lang string) int {
	tag, err := language.Parse(lang)
	if err != nil {
		return 0
	}
	_, idx, conf := c.matcher.Match(tag)
	if conf == language.No {
		return 0
	}
	return idx
}

// UseTranslations returns a Translator for lang. Keys missing from the
// language's table fall back to the DefaultLang table, then to the key.
func (c *Catalog) UseTranslations(lang string) Translator {
	table := c.tables[c.index(lang)]
	fallback := c.tables[0]
	return func(key string) string {
		if v, ok := table[key]; ok && v != "" {
			return v
		}
		if v, ok := fallback[key]; ok {
			return v
		}
		return key
	}
}
