package templates

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"zignexweb/models"
)

// CatalogData backs the Services and Planning pages, which differ only in
// copy and in which catalog they show.
type CatalogData struct {
	Title        string
	Intro        string
	FeatureLabel string
	Catalog      models.ServiceCatalog
}

func catalogView(data CatalogData) g.Node {
	return g.Group{
		h.Section(
			h.Class("page-hero"),
			h.H1(g.Text(data.Title)),
			h.P(g.Text(data.Intro)),
		),
		h.Section(
			h.Class("catalog"),
			g.Map(data.Catalog.Entries(), func(s models.ServiceEntry) g.Node {
				return h.Div(
					h.ID(s.Key),
					h.Class("catalog-entry"),
					g.If(s.Image != "", h.Img(h.Src(s.Image), h.Alt(s.Title))),
					h.Div(
						h.H2(g.Text(s.Title)),
						h.P(g.Text(s.Description)),
						g.If(len(s.Features) > 0, g.Group{
							h.H3(g.Text(data.FeatureLabel)),
							h.Ul(g.Map(s.Features, func(f string) g.Node {
								return h.Li(g.Text(f))
							})),
						}),
					),
				)
			}),
		),
	}
}

// CatalogContent is the fragment returned to HTMX requests.
func CatalogContent(data CatalogData) templ.Component {
	return component(catalogView(data))
}

// CatalogPage is the full-page variant.
func CatalogPage(data CatalogData, header HeaderData) templ.Component {
	return component(layout(data.Title, header, catalogView(data)))
}
