package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/calloutmd/internal/callout"
	"github.com/dgallion1/calloutmd/internal/i18n"
	"github.com/dgallion1/calloutmd/internal/mdtree"
	"github.com/dgallion1/calloutmd/internal/parser"
)

const indexPath = "src/content/docs/index.md"

var site = i18n.Site{
	DocsDir:       "src/content/docs",
	DefaultLocale: "en",
	Locales: map[string]i18n.Locale{
		"en": {Label: "English"},
		"fr": {Label: "French"},
	},
}

func newPipeline(s i18n.Site, extra ...Stage) *Pipeline {
	core := []Stage{callout.New(callout.Options{PathToLang: s.PathToLang})}
	return New(core, WithStages(extra...))
}

func renderWith(t *testing.T, p *Pipeline, path, markdown string) (string, error) {
	t.Helper()
	w := NewWorker(p, slog.New(slog.DiscardHandler), 2)
	r := w.Render(context.Background(), Source{Path: path, Markdown: markdown})
	return r.HTML, r.Err
}

func renderMarkdown(t *testing.T, markdown string) string {
	t.Helper()
	out, err := renderWith(t, newPipeline(site), indexPath, markdown)
	require.NoError(t, err)
	return out
}

// stageFunc adapts a function to the Stage interface.
type stageFunc struct {
	name string
	fn   func(doc *mdtree.Document) error
}

func (s stageFunc) Name() string                         { return s.name }
func (s stageFunc) Transform(doc *mdtree.Document) error { return s.fn(doc) }

func TestGeneratesAside(t *testing.T) {
	out := renderMarkdown(t, "\n:::note\nSome text\n:::\n")

	assert.True(t, strings.HasPrefix(out,
		`<aside aria-label="Note" class="callout callout--note">`+
			`<p class="callout__title" aria-hidden="true">`+
			`<svg viewBox="0 0 24 24" width="16" height="16" fill="currentColor" class="callout__icon">`+
			`<path d="M12 11C`), out)
	assert.True(t, strings.HasSuffix(out,
		`</path></svg>Note</p><div class="callout__content"><p>Some text</p></div></aside>`), out)
}

func TestDefaultLabels(t *testing.T) {
	for _, tc := range []struct{ variant, label string }{
		{"note", "Note"}, {"tip", "Tip"}, {"caution", "Caution"}, {"danger", "Danger"},
	} {
		t.Run(tc.variant, func(t *testing.T) {
			out := renderMarkdown(t, fmt.Sprintf("\n:::%s\nSome text\n:::\n", tc.variant))
			assert.Contains(t, out, `aria-label="`+tc.label+`"`)
			assert.Contains(t, out, `</svg>`+tc.label+`</p>`)
			assert.Contains(t, out, `class="callout callout--`+tc.variant+`"`)
		})
	}
}

func TestCustomLabels(t *testing.T) {
	cases := []struct{ label, flat, html string }{
		{"Custom Label", "Custom Label", "Custom Label"},
		{"Custom `code` Label", "Custom code Label", "Custom <code>code</code> Label"},
		{
			"Custom **strong with _emphasis_** Label",
			"Custom strong with emphasis Label",
			"Custom <strong>strong with <em>emphasis</em></strong> Label",
		},
	}
	for _, variant := range []string{"note", "tip", "caution", "danger"} {
		for _, tc := range cases {
			out := renderMarkdown(t, fmt.Sprintf("\n:::%s[%s]\nSome text\n:::\n  ", variant, tc.label))
			assert.Contains(t, out, `aria-label="`+tc.flat+`"`, variant)
			assert.Contains(t, out, `</svg>`+tc.html+`</p>`, variant)
			assert.Contains(t, out, `<div class="callout__content"><p>Some text</p></div>`, variant)
		}
	}
}

func TestCustomIcons(t *testing.T) {
	for _, variant := range []string{"note", "tip", "caution", "danger"} {
		out := renderMarkdown(t, fmt.Sprintf("\n:::%s{icon=\"heart\"}\nSome text\n:::\n  ", variant))
		assert.Contains(t, out, `<path d="M12 21.35 `, variant)
		assert.Equal(t, 2, strings.Count(out, "path"), variant)
		assert.Contains(t, out, `</svg>`+strings.ToUpper(variant[:1])+variant[1:]+`</p>`)
	}
}

func TestCustomLabelWithCustomIcon(t *testing.T) {
	out := renderMarkdown(t, "\n:::tip[Custom Label]{icon=\"heart\"}\nSome text\n:::\n")
	assert.Contains(t, out, `aria-label="Custom Label"`)
	assert.Contains(t, out, `</svg>Custom Label</p>`)
	assert.Contains(t, out, `<path d="M12 21.35 `)
}

func TestInvalidCustomIcon(t *testing.T) {
	for _, variant := range []string{"note", "tip", "caution", "danger"} {
		out, err := renderWith(t, newPipeline(site), indexPath,
			fmt.Sprintf("\n:::%s{icon=\"invalid-icon-name\"}\nSome text\n:::\n", variant))
		require.Error(t, err, variant)
		assert.Empty(t, out)

		var iconErr *callout.InvalidIconError
		require.True(t, errors.As(err, &iconErr), variant)
		assert.Equal(t, "invalid-icon-name", iconErr.Name)
		assert.Contains(t, iconErr.Hint(), "but received `invalid-icon-name`")
		assert.Contains(t, iconErr.Valid, "heart")

		var stageErr *StageError
		require.True(t, errors.As(err, &stageErr))
		assert.Equal(t, "callouts", stageErr.Stage)
		assert.Equal(t, indexPath, stageErr.Path)
	}
}

func TestCustomIconWithMultiplePaths(t *testing.T) {
	out := renderMarkdown(t, "\n:::note{icon=\"external\"}\nSome text\n:::\n  ")
	// Two opening and two closing path tags.
	assert.Equal(t, 4, strings.Count(out, "path"))
}

func TestIgnoresUnknownDirectiveVariants(t *testing.T) {
	out := renderMarkdown(t, "\n:::unknown\nSome text\n:::\n")
	assert.Equal(t, "<div><p>Some text</p></div>", out)
}

func TestHandlesComplexChildren(t *testing.T) {
	out := renderMarkdown(t, `
:::note
Paragraph [link](/href/).

![alt](/img.jpg)

<details>
<summary>See more</summary>

More.

</details>
:::
`)
	assert.Contains(t, out, `<p>Paragraph <a href="/href/">link</a>.</p>`)
	assert.Contains(t, out, `<p><img src="/img.jpg" alt="alt"/></p>`)
	assert.Contains(t, out, "<details>\n<summary>See more</summary>")
	assert.Contains(t, out, "<p>More.</p>")
	assert.True(t, strings.HasSuffix(out, "</details></div></aside>"), out)
}

var ariaLabel = regexp.MustCompile(`aria-label="([^"]+)"`)

func labels(html string) []string {
	var out []string
	for _, m := range ariaLabel.FindAllStringSubmatch(html, -1) {
		out = append(out, m[1])
	}
	return out
}

func TestNestedAsides(t *testing.T) {
	out := renderMarkdown(t, `
::::note
Note contents.

:::tip
Nested tip.
:::

::::
`)
	assert.Equal(t, []string{"Note", "Tip"}, labels(out))
	assert.Contains(t, out, `<div class="callout__content"><p>Note contents.</p><aside aria-label="Tip"`)
}

func TestNestedAsidesWithCustomTitles(t *testing.T) {
	out := renderMarkdown(t, `
:::::caution[Caution with a custom title]
Nested caution.

::::note
Nested note.

:::tip[Tip with a custom title]
Nested tip.
:::

::::

:::::
`)
	assert.Equal(t, []string{"Caution with a custom title", "Note", "Tip with a custom title"}, labels(out))
}

func TestTranslatedLabelsInFrench(t *testing.T) {
	for _, tc := range []struct{ variant, label string }{
		{"note", "Note"}, {"tip", "Astuce"}, {"caution", "Attention"}, {"danger", "Danger"},
	} {
		out, err := renderWith(t, newPipeline(site), "src/content/docs/fr/index.md",
			fmt.Sprintf("\n:::%s\nSome text\n:::\n", tc.variant))
		require.NoError(t, err)
		assert.Contains(t, out, `aria-label="`+tc.label+`"`)
		assert.Contains(t, out, `</svg>`+tc.label+`</p>`)
	}
}

func TestRunsWithoutLocalesConfig(t *testing.T) {
	out, err := renderWith(t, newPipeline(i18n.Site{}), indexPath, ":::note\nTest\n::")
	require.NoError(t, err)
	assert.Contains(t, out, `aria-label="Note"`)
}

func TestTransformsBackUnhandledTextDirectives(t *testing.T) {
	out := renderMarkdown(t, `This is a:test of a sentence with a text:name[content]{key=val} directive.`)
	assert.Equal(t, `<p>This is a:test of a sentence with a text:name[content]{key="val"} directive.</p>`, out)
}

func TestTransformsBackUnhandledLeafDirectives(t *testing.T) {
	out := renderMarkdown(t, `::video[Title]{v=xxxxxxxxxxx}`)
	assert.Equal(t, `<p>::video[Title]{v="xxxxxxxxxxx"}</p>`, out)
}

func TestNoWhitespaceAfterUnhandledDirective(t *testing.T) {
	out := renderMarkdown(t, `## Environment variables (astro:env)`)
	assert.Equal(t, `<h2 id="environment-variables-astroenv">Environment variables (astro:env)</h2>`, out)
	assert.NotContains(t, out, "\n")
}

func TestInjectedStagesHandleDirectivesBeforeRestoration(t *testing.T) {
	abbr := stageFunc{name: "abbr", fn: func(doc *mdtree.Document) error {
		return mdtree.Walk(doc.Tree, func(parent *mdtree.Node, index int) error {
			node := parent.Children[index]
			if node.Kind == mdtree.KindTextDirective && node.Name == "abbr" {
				parent.Children[index] = mdtree.Text("TEXT FROM ANOTHER STAGE")
			}
			return nil
		})
	}}
	p := newPipeline(site, abbr)
	assert.Equal(t, []string{"callouts", "abbr", "restore-directives"}, p.Stages())

	out, err := renderWith(t, p, indexPath,
		`This is a:test of a sentence with a :abbr[SL]{name="Starlight"} directive handled by another stage and some other text:name[content]{key=val} directives not handled by any stage.`)
	require.NoError(t, err)
	assert.Equal(t, `<p>This is a:test of a sentence with a TEXT FROM ANOTHER STAGE directive handled by another stage and some other text:name[content]{key="val"} directives not handled by any stage.</p>`, out)
}

func TestClaimedDirectivesAreNotRestored(t *testing.T) {
	api := stageFunc{name: "api", fn: func(doc *mdtree.Document) error {
		return mdtree.Walk(doc.Tree, func(parent *mdtree.Node, index int) error {
			if node := parent.Children[index]; node.Kind == mdtree.KindTextDirective {
				node.Claim("span", mdtree.Attrs("class", "api"))
			}
			return nil
		})
	}}
	out, err := renderWith(t, newPipeline(site, api), indexPath, `This method is available in the :api[thing] API.`)
	require.NoError(t, err)
	assert.Equal(t, `<p>This method is available in the <span class="api">thing</span> API.</p>`, out)
}

func TestNoAsidesWithoutFilePath(t *testing.T) {
	out, err := renderWith(t, newPipeline(site), "", "\n:::note\nSome text\n:::\n")
	require.NoError(t, err)
	assert.NotContains(t, out, "aside")
	assert.NotContains(t, out, "</svg>Note</p>")
	assert.Equal(t, "<div><p>Some text</p></div>", out)
}

func TestProcessLeavesInputUntouched(t *testing.T) {
	doc := parser.Parse([]byte(":::tip\nBody a:b\n:::\n"), indexPath)
	before := doc.Tree.Clone()

	tree, err := newPipeline(site).Process(*doc)
	require.NoError(t, err)
	assert.Equal(t, before, doc.Tree)
	assert.Equal(t, mdtree.KindElement, tree.Children[0].Kind)
}

func TestProcessReturnsNoTreeOnFailure(t *testing.T) {
	failing := stageFunc{name: "broken", fn: func(*mdtree.Document) error { return errors.New("boom") }}
	doc := parser.Parse([]byte("text"), indexPath)

	tree, err := newPipeline(site, failing).Process(*doc)
	assert.Nil(t, tree)
	var stageErr *StageError
	require.True(t, errors.As(err, &stageErr))
	assert.Equal(t, "broken", stageErr.Stage)
	assert.EqualError(t, err, "stage broken: "+indexPath+": boom")
}

func TestRenderAllIsolatesFailures(t *testing.T) {
	w := NewWorker(newPipeline(site), slog.New(slog.DiscardHandler), 3)
	sources := []Source{
		{Path: indexPath, Markdown: ":::note\nA\n:::"},
		{Path: indexPath, Markdown: ":::note{icon=\"nope\"}\nB\n:::"},
		{Path: "src/content/docs/fr/c.md", Markdown: ":::tip\nC\n:::"},
	}
	results := w.RenderAll(context.Background(), sources)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Contains(t, results[0].HTML, `aria-label="Note"`)
	assert.Error(t, results[1].Err)
	assert.Empty(t, results[1].HTML)
	assert.NoError(t, results[2].Err)
	assert.Contains(t, results[2].HTML, `aria-label="Astuce"`)
	assert.Equal(t, ContentHashHex([]byte(sources[2].Markdown)), results[2].Hash)
}

func TestRenderCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w := NewWorker(newPipeline(site), slog.New(slog.DiscardHandler), 1)
	r := w.Render(ctx, Source{Path: indexPath, Markdown: "x"})
	assert.ErrorIs(t, r.Err, context.Canceled)
}
