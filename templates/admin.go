package templates

import (
	"fmt"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"zignexweb/models"
)

// SubmissionRow is a contact record with its display timestamps.
type SubmissionRow struct {
	models.ContactRecord
	Received string
	Age      string
}

type SubmissionsData struct {
	Rows []SubmissionRow
}

func submissionsView(data SubmissionsData) g.Node {
	return g.Group{
		h.Section(
			h.Class("page-hero admin"),
			h.H1(g.Text("Contact Submissions")),
			h.P(g.Text(fmt.Sprintf("%d most recent submissions", len(data.Rows)))),
			h.Div(
				h.Class("admin-actions"),
				h.A(h.Href("/admin/contact-submissions/export/excel"), h.Class("btn btn-outline"), g.Text("Export Excel")),
				h.A(h.Href("/admin/contact-submissions/export/pdf"), h.Class("btn btn-outline"), g.Text("Export PDF")),
			),
		),
		g.If(len(data.Rows) == 0, h.P(h.Class("empty"), g.Text("No submissions yet."))),
		g.If(len(data.Rows) > 0, h.Table(
			h.Class("submissions"),
			h.THead(
				h.Tr(
					h.Th(g.Text("Received")),
					h.Th(g.Text("Name")),
					h.Th(g.Text("Email")),
					h.Th(g.Text("Company")),
					h.Th(g.Text("Phone")),
					h.Th(g.Text("Service")),
					h.Th(g.Text("Message")),
					h.Th(g.Text("Status")),
				),
			),
			h.TBody(
				g.Map(data.Rows, func(r SubmissionRow) g.Node {
					return h.Tr(
						h.Td(
							h.Span(g.Attr("title", r.Received), g.Text(r.Age)),
						),
						h.Td(g.Text(r.Name)),
						h.Td(h.A(h.Href("mailto:"+r.Email), g.Text(r.Email))),
						h.Td(g.Text(r.Company)),
						h.Td(g.Text(r.Phone)),
						h.Td(g.Text(r.Service)),
						h.Td(h.Class("message"), g.Text(r.Message)),
						h.Td(h.Span(h.Class("badge"), g.Text(r.Status))),
					)
				}),
			),
		)),
	}
}

// SubmissionsContent is the fragment returned to HTMX requests.
func SubmissionsContent(data SubmissionsData) templ.Component {
	return component(submissionsView(data))
}

// SubmissionsPage is the full-page variant.
func SubmissionsPage(data SubmissionsData, header HeaderData) templ.Component {
	return component(layout("Contact Submissions", header, submissionsView(data)))
}
