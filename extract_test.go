package indices

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func parsePanels(t *testing.T, input string) []*html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(input))
	require.NoError(t, err)

	panels, err := FindPanels(doc, DefaultSelectors)
	require.NoError(t, err)
	return panels
}

func TestFindPanels(t *testing.T) {
	t.Run("fixture", func(t *testing.T) {
		f, err := os.Open("testdata/indices.html")
		require.NoError(t, err)
		defer f.Close()

		doc, err := html.Parse(f)
		require.NoError(t, err)

		panels, err := FindPanels(doc, Selectors{})
		assert.NoError(t, err)
		assert.Len(t, panels, 3)
	})

	t.Run("no panels", func(t *testing.T) {
		doc, err := html.Parse(strings.NewReader(`<html><body><div class="panel">x</div></body></html>`))
		require.NoError(t, err)

		panels, err := FindPanels(doc, DefaultSelectors)
		assert.ErrorIs(t, err, ErrNoPanels)
		assert.Nil(t, panels)
	})

	t.Run("custom selector", func(t *testing.T) {
		doc, err := html.Parse(strings.NewReader(`<html><body><article class="item"></article><article class="item"></article></body></html>`))
		require.NoError(t, err)

		panels, err := FindPanels(doc, Selectors{Panel: "article.item"})
		assert.NoError(t, err)
		assert.Len(t, panels, 2)
	})
}

func TestExtractTitle(t *testing.T) {
	panels := parsePanels(t, `
		<div class="panel-body"><h4 class="media-heading">  Índice de Competitividad  </h4></div>
		<div class="panel-body"><h4 class="other">Not a title</h4></div>
		<div class="panel-body"><h4 class="media-heading">   </h4></div>`)

	title, err := ExtractTitle(panels[0], DefaultSelectors)
	assert.NoError(t, err)
	assert.Equal(t, "Índice de Competitividad", title)

	_, err = ExtractTitle(panels[1], DefaultSelectors)
	assert.ErrorIs(t, err, ErrNoTitle)

	_, err = ExtractTitle(panels[2], DefaultSelectors)
	assert.ErrorIs(t, err, ErrNoTitle)
}

func TestExtractCoverURL(t *testing.T) {
	panels := parsePanels(t, `
		<div class="panel-body"><img src="/logo.png"><img bo-src="indice.portada" src="https://imco.org.mx/portada.jpg"></div>
		<div class="panel-body"><img bo-src="indice.portada"></div>
		<div class="panel-body"><img src="/logo.png"></div>`)

	src, err := ExtractCoverURL(panels[0], DefaultSelectors)
	assert.NoError(t, err)
	assert.Equal(t, "https://imco.org.mx/portada.jpg", src)

	_, err = ExtractCoverURL(panels[1], DefaultSelectors)
	assert.ErrorIs(t, err, ErrNoCover)

	_, err = ExtractCoverURL(panels[2], DefaultSelectors)
	assert.ErrorIs(t, err, ErrNoCover)
}

func TestExtractSummary(t *testing.T) {
	panels := parsePanels(t, `
		<div class="panel-body"><p class="abstract ng-binding">
			El índice mide la capacidad de los estados.
		</p></div>
		<div class="panel-body"><p class="abstract">Only one class</p></div>`)

	summary, err := ExtractSummary(panels[0], DefaultSelectors)
	assert.NoError(t, err)
	assert.Equal(t, "El índice mide la capacidad de los estados.", summary)

	summary, err = ExtractSummary(panels[1], DefaultSelectors)
	assert.ErrorIs(t, err, ErrNoSummary)
	assert.Equal(t, "", summary)
}

func TestExtractDownloadLinks(t *testing.T) {
	panels := parsePanels(t, `
		<div class="panel-body"><ul class="descargar list-unstyled">
			<li><a href="/a.pdf">A</a></li>
			<li><a name="anchor">no href</a></li>
			<li><a href="https://imco.org.mx/b.xlsx">B</a></li>
		</ul></div>
		<div class="panel-body"><ul class="descargar list-unstyled"></ul></div>
		<div class="panel-body"><a href="/outside.pdf">outside</a></div>`)

	links, err := ExtractDownloadLinks(panels[0], DefaultSelectors)
	assert.NoError(t, err)
	assert.Equal(t, []string{"/a.pdf", "https://imco.org.mx/b.xlsx"}, links)

	links, err = ExtractDownloadLinks(panels[1], DefaultSelectors)
	assert.NoError(t, err)
	assert.Empty(t, links)

	links, err = ExtractDownloadLinks(panels[2], DefaultSelectors)
	assert.ErrorIs(t, err, ErrNoDownloads)
	assert.Nil(t, links)
}

func TestSelectorsWithDefaults(t *testing.T) {
	sel := Selectors{Title: "h3.title"}.withDefaults()
	assert.Equal(t, "h3.title", sel.Title)
	assert.Equal(t, DefaultSelectors.Panel, sel.Panel)
	assert.Equal(t, DefaultSelectors.Link, sel.Link)
}
