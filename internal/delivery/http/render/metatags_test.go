package render

import (
	"strings"
	"testing"
	"testing/fstest"

	"biolink/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const placeholder = "<title>Neji?</title>"

func newRenderer(page string) *MetaTagRenderer {
	fsys := fstest.MapFS{"card.html": &fstest.MapFile{Data: []byte(page)}}

	return NewMetaTagRenderer(fsys, "card.html", placeholder)
}

func TestMetaTagRenderer_ReplacesOnlyPlaceholder(t *testing.T) {
	head := "<!doctype html>\n<html>\n<head>\n  <meta charset=\"utf-8\">\n  "
	tail := "\n  <script src=\"/script.js\"></script>\n</head>\n<body><p>Neji?</p></body>\n</html>\n"

	cards := []entity.Card{
		{Title: "Ann", Description: "hello", Image: "https://cdn.example.com/a.png"},
		{Title: `<script>alert("x")</script>`, Description: `Tom & "Jerry" <3`, Image: `https://cdn.example.com/a.png?x=1&y="2"`},
		{Title: "", Description: "", Image: ""},
	}

	for _, card := range cards {
		r := newRenderer(head + placeholder + tail)

		got, err := r.Render(card)
		require.NoError(t, err)

		block, err := r.MetaBlock(card)
		require.NoError(t, err)

		assert.Equal(t, head+string(block)+tail, string(got))
		assert.NotContains(t, string(got), placeholder)
	}
}

func TestMetaTagRenderer_EscapesValues(t *testing.T) {
	r := newRenderer(placeholder)

	got, err := r.Render(entity.Card{
		Title:       `Ann <b>&"`,
		Description: `a "quoted" <bio> & more`,
		Image:       "https://cdn.example.com/a.png",
	})
	require.NoError(t, err)

	html := string(got)
	assert.Contains(t, html, "<title>Ann &lt;b&gt;&amp;&#34;</title>")
	assert.Contains(t, html, `<meta property="og:title" content="Ann &lt;b&gt;&amp;&#34;" />`)
	assert.Contains(t, html, `<meta property="og:description" content="a &#34;quoted&#34; &lt;bio&gt; &amp; more" />`)
	assert.Contains(t, html, `<meta property="og:image" content="https://cdn.example.com/a.png" />`)
	assert.NotContains(t, html, "<b>")
	assert.NotContains(t, html, "<bio>")
}

func TestMetaTagRenderer_ReplacesFirstPlaceholderOnly(t *testing.T) {
	r := newRenderer(placeholder + "\n" + placeholder)

	got, err := r.Render(entity.Card{Title: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(got), placeholder))
	assert.True(t, strings.HasSuffix(string(got), "\n"+placeholder))
}

func TestMetaTagRenderer_MissingPlaceholder(t *testing.T) {
	page := "<html><head><title>Other</title></head></html>"
	got, err := newRenderer(page).Render(entity.Card{Title: "Ann"})
	require.NoError(t, err)
	assert.Equal(t, page, string(got))
}

func TestMetaTagRenderer_MissingTemplate(t *testing.T) {
	r := NewMetaTagRenderer(fstest.MapFS{}, "card.html", placeholder)

	_, err := r.Render(entity.Card{Title: "Ann"})
	assert.Error(t, err)
}
