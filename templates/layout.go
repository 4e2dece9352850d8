package templates

import (
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const contentID = "page-content"

// layout wraps page content with the document shell, header and footer.
func layout(title string, header HeaderData, content g.Node) g.Node {
	fullTitle := header.CompanyName
	if title != "" {
		fullTitle = title + " | " + header.CompanyName
	}
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				g.El("title", g.Text(fullTitle)),
				h.Link(h.Rel("stylesheet"), h.Href("/static/site.css")),
				h.Script(h.Src("https://unpkg.com/htmx.org@2.0.4")),
				h.Script(h.Src("/static/toast.js")),
			),
			h.Body(
				siteHeader(header),
				h.Main(h.ID(contentID), h.Class("content"), content),
				siteFooter(header),
				h.Div(h.ID("toast-container"), h.Class("toast-container")),
			),
		),
	)
}

func siteHeader(header HeaderData) g.Node {
	return h.Header(
		h.Class("site-header"),
		h.Div(
			h.Class("topbar"),
			h.Span(g.Text(`Powered By "Your Imagination and Your Need"`)),
			h.A(h.Href("tel:"+header.Phone), g.Text(header.Phone)),
		),
		h.Nav(
			h.Class("navbar"),
			h.A(
				h.Href("/"),
				h.Class("brand"),
				h.Span(h.Class("brand-name"), g.Text(header.CompanyName)),
				h.Span(h.Class("brand-sub"), g.Text("Logistics Solutions")),
			),
			h.Ul(
				h.Class("nav-links"),
				g.Map(header.Links, func(l NavLink) g.Node {
					return h.Li(
						h.A(
							h.Href(l.Href),
							h.Class(classes("nav-link", activeClass(l.Active))),
							g.Text(l.Label),
						),
					)
				}),
			),
		),
	)
}

func siteFooter(header HeaderData) g.Node {
	return h.Footer(
		h.Class("site-footer"),
		h.Div(
			h.Class("footer-grid"),
			h.Div(
				h.H3(g.Text(header.CompanyName)),
				h.P(g.Text("Route planning, execution and analytics for waste and logistics fleets.")),
			),
			h.Div(
				h.H3(g.Text("Quick Links")),
				h.Ul(
					g.Map(header.Links, func(l NavLink) g.Node {
						return h.Li(h.A(h.Href(l.Href), g.Text(l.Label)))
					}),
					g.If(header.AdminEnabled, h.Li(h.A(h.Href("/admin/contact-submissions"), g.Text("Submissions")))),
				),
			),
			h.Div(
				h.H3(g.Text("Contact")),
				contactLines(header),
			),
		),
	)
}

func contactLines(header HeaderData) g.Node {
	return h.Ul(
		h.Class("contact-lines"),
		g.If(header.Phone != "", h.Li(h.A(h.Href("tel:"+header.Phone), g.Text(header.Phone)))),
		g.If(header.Email != "", h.Li(h.A(h.Href("mailto:"+header.Email), g.Text(header.Email)))),
		g.If(header.Address != "", h.Li(g.Text(header.Address))),
		g.If(header.Hours != "", h.Li(g.Text(header.Hours))),
	)
}

func activeClass(active bool) string {
	if active {
		return "active"
	}
	return ""
}
