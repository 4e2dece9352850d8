package templates

import (
	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LoadErrorMessage is the generic text of a failed page.
const LoadErrorMessage = "Failed to load page data"

// ErrorData describes a page whose data batch failed.
type ErrorData struct {
	Title string
	Path  string // re-requested by the retry button
}

// errorView shows the generic failure and a retry button. Retrying
// requests the page again, which reissues every fetch.
func errorView(data ErrorData) g.Node {
	return h.Section(
		h.Class("page-error"),
		h.P(h.Class("error-text"), g.Text(LoadErrorMessage)),
		h.Button(
			h.Type("button"),
			h.Class("btn btn-primary"),
			g.Attr("hx-get", data.Path),
			g.Attr("hx-target", "#"+contentID),
			g.Attr("hx-swap", "innerHTML"),
			g.Attr("hx-indicator", "#retry-indicator"),
			g.Text("Retry"),
		),
		h.Span(h.ID("retry-indicator"), h.Class("htmx-indicator"), g.Text("Loading...")),
		g.El("noscript", h.A(h.Href(data.Path), g.Text("Reload page"))),
	)
}

// ErrorContent is the fragment returned to HTMX requests.
func ErrorContent(data ErrorData) templ.Component {
	return component(errorView(data))
}

// ErrorPage is the full-page variant.
func ErrorPage(data ErrorData, header HeaderData) templ.Component {
	return component(layout(data.Title, header, errorView(data)))
}
