package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase/core"

	"zignexweb/api"
	"zignexweb/metrics"
	"zignexweb/models"
	"zignexweb/page"
	"zignexweb/templates"
)

func isHTMX(e *core.RequestEvent) bool {
	return e.Request.Header.Get("HX-Request") == "true"
}

// loadBatch runs a fresh loader for one page request. Every request,
// including an HTMX retry, gets its own loader so all fetches are reissued.
func loadBatch(e *core.RequestEvent, batch PageBatch, timeout time.Duration) *page.Loader {
	loader := page.NewLoader(batch.Resources...)
	loader.Timeout = timeout
	state := loader.Load(e.Request.Context())
	metrics.PageLoads.WithLabelValues(batch.Name, state.String()).Inc()
	if state == page.Failed {
		log.Printf("%s: page data failed: %v", batch.Name, loader.Err())
	}
	return loader
}

// renderPage writes the HTMX fragment or the full page.
func renderPage(e *core.RequestEvent, status int, fragment, full templ.Component) error {
	component := full
	if isHTMX(e) {
		component = fragment
	}
	if status != http.StatusOK {
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		e.Response.WriteHeader(status)
	}
	return component.Render(e.Request.Context(), e.Response)
}

// renderFailed shows the generic error with a retry affordance. HTMX only
// swaps 2xx responses, so fragments are sent with 200.
func renderFailed(e *core.RequestEvent, title string, batch PageBatch) error {
	data := templates.ErrorData{Title: title, Path: batch.Path}
	status := http.StatusBadGateway
	if isHTMX(e) {
		status = http.StatusOK
		SetToast(e, "error", templates.LoadErrorMessage)
	}
	return renderPage(e, status, templates.ErrorContent(data), templates.ErrorPage(data, GetHeaderData(e.Request)))
}

// HandleHome renders the landing page once company, services, testimonials
// and stats have all loaded.
func HandleHome(src api.Source, timeout time.Duration) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		batch := homeBatch(src)
		loader := loadBatch(e, batch, timeout)
		if loader.State() != page.Ready {
			return renderFailed(e, "Home", batch)
		}

		company, _ := page.Get[models.CompanyInfo](loader, resCompany)
		services, _ := page.Get[models.ServiceCatalog](loader, resServices)
		testimonials, _ := page.Get[[]models.Testimonial](loader, resTestimonials)
		stats, _ := page.Get[[]models.Stat](loader, resStats)

		data := templates.HomeData{
			Company:      company,
			Services:     services,
			Testimonials: testimonials,
			Stats:        stats,
		}
		return renderPage(e, http.StatusOK, templates.HomeContent(data), templates.HomePage(data, GetHeaderData(e.Request)))
	}
}

// HandleServices renders the service catalog.
func HandleServices(src api.Source, timeout time.Duration) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		batch := servicesBatch(src)
		loader := loadBatch(e, batch, timeout)
		if loader.State() != page.Ready {
			return renderFailed(e, "Services", batch)
		}

		catalog, _ := page.Get[models.ServiceCatalog](loader, resServices)
		data := templates.CatalogData{
			Title:        "Our Services",
			Intro:        "Comprehensive waste and logistics solutions designed around your fleet.",
			FeatureLabel: "Key Features:",
			Catalog:      catalog,
		}
		return renderPage(e, http.StatusOK, templates.CatalogContent(data), templates.CatalogPage(data, GetHeaderData(e.Request)))
	}
}

// HandlePlanning renders the planning catalog.
func HandlePlanning(src api.Source, timeout time.Duration) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		batch := planningBatch(src)
		loader := loadBatch(e, batch, timeout)
		if loader.State() != page.Ready {
			return renderFailed(e, "Planning", batch)
		}

		catalog, _ := page.Get[models.ServiceCatalog](loader, resPlanning)
		data := templates.CatalogData{
			Title:        "Planning Solutions",
			Intro:        "AI-powered planning from strategy through post-execution analytics.",
			FeatureLabel: "Core Capabilities:",
			Catalog:      catalog,
		}
		return renderPage(e, http.StatusOK, templates.CatalogContent(data), templates.CatalogPage(data, GetHeaderData(e.Request)))
	}
}

// HandleAbout renders the company profile and leadership.
func HandleAbout(src api.Source, timeout time.Duration) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		batch := aboutBatch(src)
		loader := loadBatch(e, batch, timeout)
		if loader.State() != page.Ready {
			return renderFailed(e, "About", batch)
		}

		company, _ := page.Get[models.CompanyInfo](loader, resCompany)
		leadership, _ := page.Get[models.Leadership](loader, resLeadership)
		data := templates.AboutData{Company: company, Leadership: leadership}
		return renderPage(e, http.StatusOK, templates.AboutContent(data), templates.AboutPage(data, GetHeaderData(e.Request)))
	}
}
