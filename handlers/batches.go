package handlers

import (
	"context"

	"zignexweb/api"
	"zignexweb/page"
)

// Resource names used as loader keys.
const (
	resCompany      = "company"
	resServices     = "services"
	resPlanning     = "planning"
	resTestimonials = "testimonials"
	resStats        = "stats"
	resLeadership   = "leadership"
	resSubmissions  = "submissions"
)

// PageBatch is the set of resources one page needs before it can render.
type PageBatch struct {
	Name      string
	Path      string
	Resources []page.Resource
}

// fetch adapts a typed Source call to a page.Resource.
func fetch[T any](name string, call func(context.Context) (T, error)) page.Resource {
	return page.Resource{
		Name: name,
		Fetch: func(ctx context.Context) (any, error) {
			return call(ctx)
		},
	}
}

func homeBatch(src api.Source) PageBatch {
	return PageBatch{Name: "home", Path: "/", Resources: []page.Resource{
		fetch(resCompany, src.CompanyInfo),
		fetch(resServices, src.Services),
		fetch(resTestimonials, src.Testimonials),
		fetch(resStats, src.Stats),
	}}
}

func servicesBatch(src api.Source) PageBatch {
	return PageBatch{Name: "services", Path: "/services", Resources: []page.Resource{
		fetch(resServices, src.Services),
	}}
}

func planningBatch(src api.Source) PageBatch {
	return PageBatch{Name: "planning", Path: "/planning", Resources: []page.Resource{
		fetch(resPlanning, src.PlanningServices),
	}}
}

func aboutBatch(src api.Source) PageBatch {
	return PageBatch{Name: "about", Path: "/about", Resources: []page.Resource{
		fetch(resCompany, src.CompanyInfo),
		fetch(resLeadership, src.Leadership),
	}}
}

func contactBatch(src api.Source) PageBatch {
	return PageBatch{Name: "contact", Path: "/contact", Resources: []page.Resource{
		fetch(resCompany, src.CompanyInfo),
	}}
}

func submissionsBatch(src api.Source) PageBatch {
	return PageBatch{Name: "admin_submissions", Path: "/admin/contact-submissions", Resources: []page.Resource{
		fetch(resSubmissions, src.ContactSubmissions),
	}}
}

// PublicBatches lists the batches of every public page in navigation order.
func PublicBatches(src api.Source) []PageBatch {
	return []PageBatch{
		homeBatch(src),
		servicesBatch(src),
		planningBatch(src),
		aboutBatch(src),
		contactBatch(src),
	}
}
