package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase/core"

	"zignexweb/config"
	"zignexweb/templates"
)

type contextKey string

const HeaderDataKey contextKey = "headerData"

var navLinks = []templates.NavLink{
	{Label: "Home", Href: "/"},
	{Label: "Services", Href: "/services"},
	{Label: "Planning", Href: "/planning"},
	{Label: "About", Href: "/about"},
	{Label: "Contact", Href: "/contact"},
}

// GetHeaderData extracts the pre-built HeaderData from the request context.
func GetHeaderData(r *http.Request) templates.HeaderData {
	if val, ok := r.Context().Value(HeaderDataKey).(templates.HeaderData); ok {
		return val
	}
	return templates.HeaderData{}
}

// BuildHeaderData marks the link matching path as active.
func BuildHeaderData(site config.SiteInfo, adminEnabled bool, path string) templates.HeaderData {
	links := make([]templates.NavLink, len(navLinks))
	copy(links, navLinks)
	for i := range links {
		links[i].Active = isActivePath(links[i].Href, path)
	}
	return templates.HeaderData{
		CompanyName:  site.CompanyName,
		Phone:        site.Phone,
		Email:        site.Email,
		Address:      site.Address,
		Hours:        site.Hours,
		Links:        links,
		AdminEnabled: adminEnabled,
	}
}

func isActivePath(href, path string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}

// NavMiddleware stores the header data for the current path in the request
// context so handlers and layouts can use it.
func NavMiddleware(cfg config.Config) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		header := BuildHeaderData(cfg.Site, cfg.AdminEnabled, e.Request.URL.Path)
		ctx := context.WithValue(e.Request.Context(), HeaderDataKey, header)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}
