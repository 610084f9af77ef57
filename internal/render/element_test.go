package render

import (
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orqui/orqui/internal/contract"
)

func TestElementAppendSkipsNil(t *testing.T) {
	el := NewElement("div").Append(nil, NewElement("span"), nil)
	assert.Len(t, el.Children, 1)
}

func TestElementFind(t *testing.T) {
	tree := NewElement("div").Append(
		NewElement("span").SetAttr("id", "a"),
		NewElement("p").Append(
			NewElement("span").SetAttr("id", "b"),
		),
	)

	found := tree.Find(func(e *Element) bool { return e.Attr("id") == "b" })
	require.NotNil(t, found)
	assert.Equal(t, "span", found.Tag)

	assert.Nil(t, tree.Find(func(e *Element) bool { return e.Tag == "table" }))

	var nilEl *Element
	assert.Nil(t, nilEl.Find(func(e *Element) bool { return true }))
}

func TestElementTextContent(t *testing.T) {
	tree := NewElement("div").Append(
		NewElement("span").withText("a"),
		NewElement("p").Append(NewElement("em").withText("b")),
	)
	tree.Text = ""
	assert.Equal(t, "ab", tree.TextContent())
}

func TestWriteHTMLEscapes(t *testing.T) {
	el := NewElement("span").
		SetAttr("title", `<script>"x"`).
		withText("a < b & c")

	html := el.HTML()
	assert.Contains(t, html, "&lt;script&gt;&#34;x&#34;")
	assert.Contains(t, html, "a &lt; b &amp; c")
}

func TestWriteHTMLVoidTags(t *testing.T) {
	html := NewElement("hr").HTML()
	assert.Equal(t, "<hr>\n", html)

	img := NewElement("img").SetAttr("src", "/x.png").HTML()
	assert.Equal(t, "<img src=\"/x.png\">\n", img)
}

func TestWriteHTMLDeterministicAttrOrder(t *testing.T) {
	el := NewElement("div").
		SetAttr("b", "2").
		SetAttr("a", "1").
		SetStyle("z-index", "1").
		SetStyle("color", "red")

	want := "<div a=\"1\" b=\"2\" style=\"color: red; z-index: 1\"></div>\n"
	assert.Equal(t, want, el.HTML())
	assert.Equal(t, want, el.HTML())
}

func TestWriteHTMLNilElement(t *testing.T) {
	var el *Element
	assert.Equal(t, "", el.HTML())
}

func TestRenderedPageGolden(t *testing.T) {
	r, _ := newTestRenderer(nil)

	node := contract.NodeDef{
		Type: "stack",
		Children: []contract.NodeDef{
			{Type: "heading", Props: map[string]any{"content": "{{app.name}}"}},
			{Type: "badge", Props: map[string]any{"content": "{{status | badge:green}}"}},
		},
	}

	el := r.Render(node, Context{Data: map[string]any{"status": "PASS"}})
	require.NotNil(t, el)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "status_page", []byte(el.HTML()))
}
