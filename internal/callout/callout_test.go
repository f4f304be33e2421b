package callout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/calloutmd/internal/i18n"
	"github.com/dgallion1/calloutmd/internal/icons"
	"github.com/dgallion1/calloutmd/internal/mdtree"
	"github.com/dgallion1/calloutmd/internal/parser"
)

const docPath = "src/content/docs/guide.md"

func transform(t *testing.T, src string) *mdtree.Node {
	t.Helper()
	doc := parser.Parse([]byte(src), docPath)
	require.NoError(t, New(Options{}).Transform(doc))
	return doc.Tree
}

// parts returns the title paragraph and content div of a callout.
func parts(t *testing.T, aside *mdtree.Node) (title, content *mdtree.Node) {
	t.Helper()
	require.Equal(t, mdtree.KindElement, aside.Kind)
	require.Equal(t, "aside", aside.Hint.Element)
	require.Len(t, aside.Children, 2)
	return aside.Children[0], aside.Children[1]
}

func TestParseVariant(t *testing.T) {
	for _, v := range Variants {
		got, ok := ParseVariant(v.String())
		assert.True(t, ok)
		assert.Equal(t, v, got)
	}
	for _, name := range []string{"Note", "info", "", "warning"} {
		_, ok := ParseVariant(name)
		assert.False(t, ok, name)
	}
	assert.Equal(t, "callout.caution", Caution.TranslationKey())
}

func TestTransform_Structure(t *testing.T) {
	root := transform(t, ":::note\nSome text\n:::\n")

	aside := root.Children[0]
	assert.Equal(t, mdtree.Attrs("aria-label", "Note", "class", "callout callout--note"), aside.Hint.Attributes)

	title, content := parts(t, aside)
	assert.Equal(t, "p", title.Hint.Element)
	assert.Equal(t, mdtree.Attrs("class", "callout__title", "aria-hidden", "true"), title.Hint.Attributes)
	require.Len(t, title.Children, 2)

	svg := title.Children[0]
	assert.Equal(t, "svg", svg.Hint.Element)
	assert.Equal(t, []string{"viewBox", "width", "height", "fill", "class"}, svg.Hint.Attributes.Keys())
	require.Len(t, svg.Children, 1)
	assert.Equal(t, "path", svg.Children[0].Hint.Element)
	assert.Equal(t, "Note", title.Children[1].Value)

	assert.Equal(t, "div", content.Hint.Element)
	assert.Equal(t, mdtree.Attrs("class", "callout__content"), content.Hint.Attributes)
	require.Len(t, content.Children, 1)
	assert.Equal(t, "Some text", mdtree.ToString(content.Children...))
}

func TestTransform_LabelConsumedOnce(t *testing.T) {
	root := transform(t, ":::tip[Did you know?]\nFirst.\n\nSecond.\n:::\n")

	title, content := parts(t, root.Children[0])
	assert.Equal(t, "Did you know?", mdtree.ToString(title.Children[1:]...))
	require.Len(t, content.Children, 2)
	for _, c := range content.Children {
		assert.False(t, c.Label)
	}
	assert.Equal(t, "First.", mdtree.ToString(content.Children[0]))
}

func TestTransform_EmptyLabelUsesDefault(t *testing.T) {
	root := transform(t, ":::danger[]\nBody\n:::\n")

	aside := root.Children[0]
	label, _ := aside.Hint.Attributes.Get("aria-label")
	assert.Equal(t, "Danger", label)
	_, content := parts(t, aside)
	assert.Len(t, content.Children, 1)
}

func TestTransform_TranslatedLabels(t *testing.T) {
	site := i18n.Site{DocsDir: "docs", Locales: map[string]i18n.Locale{"en": {}, "fr": {}}, DefaultLocale: "en"}
	tr := New(Options{PathToLang: site.PathToLang})

	doc := parser.Parse([]byte(":::tip\nx\n:::\n"), "docs/fr/page.md")
	require.NoError(t, tr.Transform(doc))
	label, _ := doc.Tree.Children[0].Hint.Attributes.Get("aria-label")
	assert.Equal(t, "Astuce", label)

	doc = parser.Parse([]byte(":::tip\nx\n:::\n"), "docs/xx/page.md")
	require.NoError(t, tr.Transform(doc))
	label, _ = doc.Tree.Children[0].Hint.Attributes.Get("aria-label")
	assert.Equal(t, "Tip", label)
}

func TestTransform_CustomIcon(t *testing.T) {
	root := transform(t, ":::caution{icon=\"external\"}\nx\n:::\n")

	title, _ := parts(t, root.Children[0])
	paths := title.Children[0].Children
	want, ok := icons.Default().Lookup("external")
	require.True(t, ok)
	require.Len(t, paths, len(want))
	for i, p := range paths {
		assert.Equal(t, want[i].Attributes(), p.Hint.Attributes)
	}
}

func TestTransform_EmptyIconAttributeUsesDefault(t *testing.T) {
	root := transform(t, ":::tip{icon=\"\"}\nx\n:::\n")

	title, _ := parts(t, root.Children[0])
	want, _ := icons.Default().VariantDefault("tip")
	assert.Len(t, title.Children[0].Children, len(want))
}

func TestTransform_InvalidIcon(t *testing.T) {
	for _, v := range Variants {
		doc := parser.Parse([]byte(":::"+v.String()+"{icon=\"invalid-icon-name\"}\nx\n:::\n"), docPath)
		err := New(Options{}).Transform(doc)

		var iconErr *InvalidIconError
		require.True(t, errors.As(err, &iconErr), v.String())
		assert.Equal(t, "invalid-icon-name", iconErr.Name)
		assert.Equal(t, icons.Default().Names(), iconErr.Valid)
		assert.Equal(t, `invalid callout icon "invalid-icon-name"`, err.Error())
		assert.Contains(t, iconErr.Hint(), "Valid icons: ")
	}
}

func TestTransform_SkipsDocumentsWithoutPath(t *testing.T) {
	doc := parser.Parse([]byte(":::note\nx\n:::\n"), "")
	before := doc.Tree.Clone()

	require.NoError(t, New(Options{}).Transform(doc))
	assert.Equal(t, before, doc.Tree)
}

func TestTransform_LeavesOtherDirectives(t *testing.T) {
	root := transform(t, ":::unknown\nx\n:::\n\n::note[leaf]\n\nA :tip[text] directive.\n")

	assert.Equal(t, mdtree.KindContainerDirective, root.Children[0].Kind)
	assert.Equal(t, mdtree.KindLeafDirective, root.Children[1].Kind)
	assert.Equal(t, mdtree.KindTextDirective, root.Children[2].Children[1].Kind)
	for _, n := range root.Children {
		assert.False(t, n.Claimed())
	}
}

func TestTransform_SkipsClaimedContainers(t *testing.T) {
	doc := parser.Parse([]byte(":::note\nx\n:::\n"), docPath)
	node := doc.Tree.Children[0]
	require.True(t, node.Claim("section", mdtree.Attrs("class", "mine")))

	require.NoError(t, New(Options{}).Transform(doc))
	assert.Same(t, node, doc.Tree.Children[0])
	assert.Equal(t, "section", node.Hint.Element)
}

func TestTransform_NestedLabels(t *testing.T) {
	root := transform(t, `:::::caution[Caution with a custom title]
Nested caution.

::::note
Nested note.

:::tip[Tip with a custom title]
Nested tip.
:::

::::

:::::
`)
	var labels []string
	err := mdtree.Walk(root, func(parent *mdtree.Node, index int) error {
		n := parent.Children[index]
		if n.Claimed() && n.Hint.Element == "aside" {
			l, _ := n.Hint.Attributes.Get("aria-label")
			labels = append(labels, l)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Caution with a custom title", "Note", "Tip with a custom title"}, labels)
}

func TestTransform_OrderIndependent(t *testing.T) {
	src := []byte("::::note[Outer]\nA\n\n:::tip[Inner]\nB\n:::\n\n::::\n")
	tr := New(Options{})

	outerFirst := parser.Parse(src, docPath)
	require.NoError(t, tr.Transform(outerFirst))

	// Transform the inner callout on its own first, then the whole tree.
	innerFirst := parser.Parse(src, docPath)
	outer := innerFirst.Tree.Children[0]
	require.NoError(t, tr.Transform(&mdtree.Document{Path: docPath, Tree: outer}))
	require.Equal(t, mdtree.KindElement, outer.Children[2].Kind)
	require.NoError(t, tr.Transform(innerFirst))

	assert.Equal(t, outerFirst.Tree, innerFirst.Tree)
}
