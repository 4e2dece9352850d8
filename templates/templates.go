// Package templates renders the site's pages. Views are gomponents trees;
// every exported constructor returns a templ.Component so handlers can
// render them uniformly.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// NavLink is one entry of the header navigation.
type NavLink struct {
	Label  string
	Href   string
	Active bool
}

// HeaderData is built per request by the navigation middleware and shared
// by the header and footer.
type HeaderData struct {
	CompanyName  string
	Phone        string
	Email        string
	Address      string
	Hours        string
	Links        []NavLink
	AdminEnabled bool
}

// component adapts a gomponents node to templ.Component.
func component(n g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return n.Render(w)
	})
}

// classes joins the non-empty class names.
func classes(names ...string) string {
	out := ""
	for _, n := range names {
		if n == "" {
			continue
		}
		if out != "" {
			out += " "
		}
		out += n
	}
	return out
}
