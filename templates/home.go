package templates

import (
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"zignexweb/models"
)

// HomeData is everything the home page needs; it is only built from a
// fully loaded batch.
type HomeData struct {
	Company      models.CompanyInfo
	Services     models.ServiceCatalog
	Testimonials []models.Testimonial
	Stats        []models.Stat
}

func homeView(data HomeData) g.Node {
	return g.Group{
		h.Section(
			h.Class("hero"),
			h.H1(g.Text(data.Company.Tagline)),
			g.If(data.Company.Motto != "", h.P(h.Class("motto"), g.Text(data.Company.Motto))),
			h.P(g.Text(data.Company.Description)),
			h.Div(
				h.Class("hero-actions"),
				h.A(h.Href("/contact"), h.Class("btn btn-primary"), g.Text("Get Started")),
				h.A(h.Href("/services"), h.Class("btn btn-outline"), g.Text("Our Services")),
			),
		),
		h.Section(
			h.Class("stats"),
			g.Map(data.Stats, func(s models.Stat) g.Node {
				// Values are display strings and are rendered as sent.
				return h.Div(
					h.Class("stat"),
					h.Span(h.Class("stat-value"), g.Text(s.Value)),
					h.Span(h.Class("stat-label"), g.Text(s.Label)),
				)
			}),
		),
		h.Section(
			h.Class("services-preview"),
			h.H2(g.Text("Our Services")),
			h.Div(
				h.Class("card-grid"),
				g.Map(data.Services.Entries(), func(s models.ServiceEntry) g.Node {
					return h.Div(
						h.Class("card"),
						g.If(s.Image != "", h.Img(h.Src(s.Image), h.Alt(s.Title))),
						h.H3(g.Text(s.Title)),
						h.P(g.Text(s.Description)),
						h.A(h.Href("/services#"+s.Key), g.Text("Learn more")),
					)
				}),
			),
		),
		h.Section(
			h.Class("testimonials"),
			h.H2(g.Text("What Our Clients Say")),
			h.Div(
				h.Class("card-grid"),
				g.Map(data.Testimonials, testimonialCard),
			),
		),
		h.Section(
			h.Class("cta"),
			h.H2(g.Text("Ready to optimize your operations?")),
			h.A(h.Href("/contact"), h.Class("btn btn-primary"), g.Text("Contact Us")),
		),
	}
}

func testimonialCard(t models.Testimonial) g.Node {
	return h.Div(
		h.Class("card testimonial"),
		h.Div(
			h.Class("stars"),
			g.Text(strings.Repeat("★", t.Stars())+strings.Repeat("☆", 5-t.Stars())),
		),
		g.El("blockquote", g.Text(t.Quote)),
		h.P(h.Class("author"), g.Text(t.Author)),
		h.P(h.Class("company"), g.Text(t.Company)),
	)
}

// HomeContent is the fragment returned to HTMX requests.
func HomeContent(data HomeData) templ.Component {
	return component(homeView(data))
}

// HomePage is the full-page variant.
func HomePage(data HomeData, header HeaderData) templ.Component {
	return component(layout("", header, homeView(data)))
}
