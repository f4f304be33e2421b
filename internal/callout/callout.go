// Package callout turns note, tip, caution and danger container directives
// into styled callout blocks.
//
// For example, this Markdown
//
//	:::tip[Did you know?]
//	Callouts can hold any block content.
//	:::
//
// is rendered as
//
//	<aside aria-label="Did you know?" class="callout callout--tip">
//	  <p class="callout__title" aria-hidden="true"><svg ...>...</svg>Did you know?</p>
//	  <div class="callout__content"><p>Callouts can hold any block content.</p></div>
//	</aside>
package callout

import (
	"fmt"
	"log/slog"

	"github.com/dgallion1/calloutmd/internal/directive"
	"github.com/dgallion1/calloutmd/internal/i18n"
	"github.com/dgallion1/calloutmd/internal/icons"
	"github.com/dgallion1/calloutmd/internal/mdtree"
)

// Options configures a Transformer. Zero fields get the built-in defaults.
type Options struct {
	PathToLang   func(path string) string
	Translations func(lang string) i18n.Translator
	Icons        *icons.Registry
	Logger       *slog.Logger
}

// Transformer is the callout stage. It keeps no per-document state, so one
// Transformer can serve concurrent pipelines.
type Transformer struct {
	pathToLang   func(path string) string
	translations func(lang string) i18n.Translator
	icons        *icons.Registry
	log          *slog.Logger
}

func New(opts Options) *Transformer {
	t := &Transformer{
		pathToLang:   opts.PathToLang,
		translations: opts.Translations,
		icons:        opts.Icons,
		log:          opts.Logger,
	}
	if t.pathToLang == nil {
		t.pathToLang = func(string) string { return i18n.DefaultLang }
	}
	if t.translations == nil {
		t.translations = i18n.Default().UseTranslations
	}
	if t.icons == nil {
		t.icons = icons.Default()
	}
	if t.log == nil {
		t.log = slog.New(slog.DiscardHandler)
	}
	return t
}

func (t *Transformer) Name() string { return "callouts" }

// Transform rewrites every unclaimed callout directive in doc. Documents
// without a path are left untouched: their language, and so their default
// labels, cannot be known.
func (t *Transformer) Transform(doc *mdtree.Document) error {
	if doc.Path == "" {
		return nil
	}
	lang := t.pathToLang(doc.Path)
	tr := t.translations(lang)
	log := t.log.With("path", doc.Path, "lang", lang)

	return mdtree.Walk(doc.Tree, func(parent *mdtree.Node, index int) error {
		node := parent.Children[index]
		if !directive.IsContainer(node) || node.Claimed() {
			return nil
		}
		variant, ok := ParseVariant(node.Name)
		if !ok {
			return nil
		}
		aside, err := t.build(node, variant, tr)
		if err != nil {
			return err
		}
		parent.Children[index] = aside
		log.Debug("callout transformed", "variant", variant.String())
		return nil
	})
}

func (t *Transformer) build(node *mdtree.Node, variant Variant, tr i18n.Translator) (*mdtree.Node, error) {
	title := []*mdtree.Node{mdtree.Text(tr(variant.TranslationKey()))}
	body := node.Children
	if label, ok := directive.Label(node); ok {
		title = label.Children
		body = body[1:]
	}

	prims, err := t.icon(node, variant)
	if err != nil {
		return nil, err
	}
	paths := make([]*mdtree.Node, len(prims))
	for i, p := range prims {
		paths[i] = mdtree.Element("path", p.Attributes())
	}
	svg := mdtree.Element("svg", mdtree.Attrs(
		"viewBox", "0 0 24 24",
		"width", "16",
		"height", "16",
		"fill", "currentColor",
		"class", "callout__icon",
	), paths...)

	heading := mdtree.Element("p",
		mdtree.Attrs("class", "callout__title", "aria-hidden", "true"),
		append([]*mdtree.Node{svg}, title...)...,
	)
	content := mdtree.Element("div", mdtree.Attrs("class", "callout__content"), body...)

	return mdtree.Element("aside", mdtree.Attrs(
		"aria-label", mdtree.ToString(title...),
		"class", "callout callout--"+variant.String(),
	), heading, content), nil
}

func (t *Transformer) icon(node *mdtree.Node, variant Variant) ([]icons.Primitive, error) {
	if name, ok := node.Attributes.Get("icon"); ok && name != "" {
		prims, ok := t.icons.Lookup(name)
		if !ok {
			return nil, &InvalidIconError{Name: name, Valid: t.icons.Names()}
		}
		return prims, nil
	}
	prims, ok := t.icons.VariantDefault(variant.String())
	if !ok {
		return nil, fmt.Errorf("no default icon for %s callouts", variant)
	}
	return prims, nil
}
