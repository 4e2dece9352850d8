package templates

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"zignexweb/models"
)

type AboutData struct {
	Company    models.CompanyInfo
	Leadership models.Leadership
}

func aboutView(data AboutData) g.Node {
	ceo := data.Leadership.CEO
	return g.Group{
		h.Section(
			h.Class("page-hero"),
			h.H1(g.Text("About "+data.Company.Name)),
			h.P(g.Text(data.Company.Description)),
		),
		h.Section(
			h.Class("vision"),
			h.H2(g.Text("Our Vision")),
			h.P(g.Text(data.Company.Vision)),
			g.If(len(data.Company.Technologies) > 0, h.Ul(
				h.Class("tags"),
				g.Map(data.Company.Technologies, func(t string) g.Node {
					return h.Li(g.Text(t))
				}),
			)),
		),
		h.Section(
			h.Class("leadership"),
			h.H2(g.Text("Leadership")),
			h.Div(
				h.Class("leader"),
				g.If(ceo.Image != "", h.Img(h.Src(ceo.Image), h.Alt(ceo.Name))),
				h.Div(
					h.H3(g.Text(ceo.Name)),
					h.P(h.Class("leader-title"), g.Text(ceo.Title)),
					h.P(g.Text(ceo.Bio)),
					g.If(ceo.Credentials != "", h.P(h.Class("credentials"), g.Text(ceo.Credentials))),
				),
			),
		),
		h.Section(
			h.Class("headquarters"),
			h.H2(g.Text("Headquarters")),
			h.P(g.Text(data.Company.Headquarters)),
		),
	}
}

// AboutContent is the fragment returned to HTMX requests.
func AboutContent(data AboutData) templ.Component {
	return component(aboutView(data))
}

// AboutPage is the full-page variant.
func AboutPage(data AboutData, header HeaderData) templ.Component {
	return component(layout("About", header, aboutView(data)))
}
