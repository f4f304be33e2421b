package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dgallion1/calloutmd/internal/mdtree"
)

func root(children ...*mdtree.Node) *mdtree.Node {
	return &mdtree.Node{Kind: mdtree.KindRoot, Children: children}
}

func para(children ...*mdtree.Node) *mdtree.Node {
	return &mdtree.Node{Kind: mdtree.KindParagraph, Children: children}
}

func TestHTML_Blocks(t *testing.T) {
	tree := root(
		&mdtree.Node{Kind: mdtree.KindHeading, Level: 2, Attributes: mdtree.Attrs("id", "intro"), Children: []*mdtree.Node{mdtree.Text("Intro")}},
		para(mdtree.Text(`Say "hi" & <wave>`)),
		&mdtree.Node{Kind: mdtree.KindCode, Lang: "go", Value: "x := 1\n"},
	)

	got, err := HTML(tree)
	require.NoError(t, err)
	assert.Equal(t,
		"<h2 id=\"intro\">Intro</h2>\n"+
			"<p>Say \"hi\" &amp; &lt;wave&gt;</p>\n"+
			"<pre><code class=\"language-go\">x := 1\n</code></pre>",
		got)
}

func TestHTML_SingleHeadingHasNoNewline(t *testing.T) {
	got, err := HTML(root(&mdtree.Node{Kind: mdtree.KindHeading, Level: 1, Children: []*mdtree.Node{mdtree.Text("Title")}}))
	require.NoError(t, err)
	assert.Equal(t, "<h1>Title</h1>", got)
}

func TestHTML_Inlines(t *testing.T) {
	tree := root(para(
		&mdtree.Node{Kind: mdtree.KindStrong, Children: []*mdtree.Node{mdtree.Text("bold")}},
		mdtree.Text(" "),
		&mdtree.Node{Kind: mdtree.KindEmphasis, Children: []*mdtree.Node{mdtree.Text("em")}},
		mdtree.Text(" "),
		&mdtree.Node{Kind: mdtree.KindInlineCode, Value: "a<b"},
		mdtree.Text(" "),
		&mdtree.Node{Kind: mdtree.KindLink, Attributes: mdtree.Attrs("href", "/href/"), Children: []*mdtree.Node{mdtree.Text("link")}},
		&mdtree.Node{Kind: mdtree.KindImage, Attributes: mdtree.Attrs("src", "/img.jpg", "alt", "alt")},
	))

	got, err := HTML(tree)
	require.NoError(t, err)
	assert.Equal(t, `<p><strong>bold</strong> <em>em</em> <code>a&lt;b</code> <a href="/href/">link</a><img src="/img.jpg" alt="alt"/></p>`, got)
}

func TestHTML_TightList(t *testing.T) {
	item := func(s string) *mdtree.Node {
		return &mdtree.Node{Kind: mdtree.KindListItem, Children: []*mdtree.Node{para(mdtree.Text(s))}}
	}
	got, err := HTML(root(&mdtree.Node{Kind: mdtree.KindList, Tight: true, Children: []*mdtree.Node{item("one"), item("two")}}))
	require.NoError(t, err)
	assert.Equal(t, "<ul>\n<li>one</li>\n<li>two</li>\n</ul>", got)
}

func TestHTML_ClaimedNodesUseHint(t *testing.T) {
	d := &mdtree.Node{Kind: mdtree.KindTextDirective, Name: "abbr", Children: []*mdtree.Node{mdtree.Text("SL")}}
	d.Claim("abbr", mdtree.Attrs("title", "Starlight"))

	got, err := HTML(root(para(d)))
	require.NoError(t, err)
	assert.Equal(t, `<p><abbr title="Starlight">SL</abbr></p>`, got)
}

func TestHTML_UnclaimedDirectivesFallBack(t *testing.T) {
	container := &mdtree.Node{Kind: mdtree.KindContainerDirective, Name: "unknown", Children: []*mdtree.Node{para(mdtree.Text("Some text"))}}
	got, err := HTML(root(container))
	require.NoError(t, err)
	assert.Equal(t, "<div><p>Some text</p></div>", got)

	text := &mdtree.Node{Kind: mdtree.KindTextDirective, Name: "x", Children: []*mdtree.Node{mdtree.Text("y")}}
	got, err = HTML(root(para(text)))
	require.NoError(t, err)
	assert.Equal(t, "<p><span>y</span></p>", got)
}

func TestHTML_RawHTMLPassesThrough(t *testing.T) {
	got, err := HTML(root(&mdtree.Node{Kind: mdtree.KindHTML, Value: "<details>\n<summary>See more</summary>"}))
	require.NoError(t, err)
	assert.Equal(t, "<details>\n<summary>See more</summary>", got)
}

func TestHTML_NilTree(t *testing.T) {
	got, err := HTML(nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}
