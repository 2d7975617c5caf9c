package indices

import (
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Selectors are the CSS selectors used to locate panels and their fields.
// Empty fields fall back to DefaultSelectors.
type Selectors struct {
	Panel     string
	Title     string
	Cover     string
	Summary   string
	Downloads string
	Link      string // queried inside the Downloads element
}

// DefaultSelectors matches the markup of the IMCO index listing.
var DefaultSelectors = Selectors{
	Panel:     "div.panel-body",
	Title:     "h4.media-heading",
	Cover:     `img[bo-src="indice.portada"]`,
	Summary:   "p.abstract.ng-binding",
	Downloads: "ul.descargar.list-unstyled",
	Link:      "a[href]",
}

func (sel Selectors) withDefaults() Selectors {
	def := DefaultSelectors
	if sel.Panel == "" {
		sel.Panel = def.Panel
	}
	if sel.Title == "" {
		sel.Title = def.Title
	}
	if sel.Cover == "" {
		sel.Cover = def.Cover
	}
	if sel.Summary == "" {
		sel.Summary = def.Summary
	}
	if sel.Downloads == "" {
		sel.Downloads = def.Downloads
	}
	if sel.Link == "" {
		sel.Link = def.Link
	}
	return sel
}

// FindPanels returns every panel in doc, in document order.
// A document without panels is an error, not an empty result.
func FindPanels(doc *html.Node, sel Selectors) ([]*html.Node, error) {
	panels := dom.QuerySelectorAll(doc, sel.withDefaults().Panel)
	if len(panels) == 0 {
		return nil, ErrNoPanels
	}
	return panels, nil
}

// ExtractTitle returns the trimmed heading text of panel.
func ExtractTitle(panel *html.Node, sel Selectors) (string, error) {
	node := dom.QuerySelector(panel, sel.withDefaults().Title)
	if node == nil {
		return "", ErrNoTitle
	}

	title := strings.TrimSpace(dom.TextContent(node))
	if title == "" {
		return "", ErrNoTitle
	}
	return title, nil
}

// ExtractCoverURL returns the src of the cover image, as written in the page.
func ExtractCoverURL(panel *html.Node, sel Selectors) (string, error) {
	node := dom.QuerySelector(panel, sel.withDefaults().Cover)
	if node == nil {
		return "", ErrNoCover
	}

	src := strings.TrimSpace(dom.GetAttribute(node, "src"))
	if src == "" {
		return "", ErrNoCover
	}
	return src, nil
}

// ExtractSummary returns the trimmed abstract text of panel.
func ExtractSummary(panel *html.Node, sel Selectors) (string, error) {
	node := dom.QuerySelector(panel, sel.withDefaults().Summary)
	if node == nil {
		return "", ErrNoSummary
	}
	return strings.TrimSpace(dom.TextContent(node)), nil
}

// ExtractDownloadLinks returns the href of every link in the download
// list, in document order. A list without links gives an empty slice
// and no error.
func ExtractDownloadLinks(panel *html.Node, sel Selectors) ([]string, error) {
	sel = sel.withDefaults()
	list := dom.QuerySelector(panel, sel.Downloads)
	if list == nil {
		return nil, ErrNoDownloads
	}

	links := []string{}
	for _, a := range dom.QuerySelectorAll(list, sel.Link) {
		links = append(links, dom.GetAttribute(a, "href"))
	}
	return links, nil
}
