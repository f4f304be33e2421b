package i18n

import (
	"path/filepath"
	"strings"
)

// RootLocale is the locale key for documents stored directly in the docs
// directory rather than in a locale subdirectory.
const RootLocale = "root"

// Locale is one locale directory of a docs site.
type Locale struct {
	Label string `toml:"label"`
	Lang  string `toml:"lang"`
}

// Site describes where documents live and which locale directories exist.
type Site struct {
	DocsDir       string
	DefaultLocale string // key into Locales
	Locales       map[string]Locale
}

// PathToLang resolves the language of the document at path. The first path
// segment below DocsDir names the locale; anything else gets the default
// locale's language.
func (s Site) PathToLang(path string) string {
	rel := filepath.ToSlash(path)
	if s.DocsDir != "" {
		if r, err := filepath.Rel(s.DocsDir, path); err == nil && !strings.HasPrefix(r, "..") {
			rel = filepath.ToSlash(r)
		}
	}
	rel = strings.TrimPrefix(rel, "/")
	first, _, _ := strings.Cut(rel, "/")

	if first != RootLocale {
		if loc, ok := s.Locales[first]; ok {
			return langOf(first, loc)
		}
	}
	return s.DefaultLang()
}

// DefaultLang is the language of the default locale.
func (s Site) DefaultLang() string {
	if loc, ok := s.Locales[s.DefaultLocale]; ok {
		if loc.Lang != "" {
			return loc.Lang
		}
		if s.DefaultLocale != RootLocale {
			return s.DefaultLocale
		}
	}
	if s.DefaultLocale != "" && s.DefaultLocale != RootLocale && len(s.Locales) == 0 {
		return s.DefaultLocale
	}
	return DefaultLang
}

func langOf(key string, loc Locale) string {
	if loc.Lang != "" {
		return loc.Lang
	}
	return key
}
