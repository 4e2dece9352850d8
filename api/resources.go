package api

import (
	"context"
	"net/http"

	"zignexweb/models"
)

// Resource paths, relative to the client's base URL.
const (
	PathCompanyInfo        = "/company-info"
	PathServices           = "/services"
	PathPlanningServices   = "/planning-services"
	PathTestimonials       = "/testimonials"
	PathLeadership         = "/leadership"
	PathStats              = "/stats"
	PathContact            = "/contact"
	PathContactSubmissions = "/contact-submissions"
)

// Source is everything the pages read from or send to the backend.
type Source interface {
	CompanyInfo(ctx context.Context) (models.CompanyInfo, error)
	Services(ctx context.Context) (models.ServiceCatalog, error)
	PlanningServices(ctx context.Context) (models.ServiceCatalog, error)
	Testimonials(ctx context.Context) ([]models.Testimonial, error)
	Leadership(ctx context.Context) (models.Leadership, error)
	Stats(ctx context.Context) ([]models.Stat, error)
	SubmitContact(ctx context.Context, sub models.ContactSubmission) (models.ContactAck, error)
	ContactSubmissions(ctx context.Context) ([]models.ContactRecord, error)
}

var _ Source = (*Client)(nil)

func (c *Client) CompanyInfo(ctx context.Context) (models.CompanyInfo, error) {
	out, err := getResource[models.CompanyInfo](ctx, c, PathCompanyInfo)
	if err != nil {
		return models.CompanyInfo{}, err
	}
	return *out, nil
}

func (c *Client) Services(ctx context.Context) (models.ServiceCatalog, error) {
	out, err := getResource[models.ServiceCatalog](ctx, c, PathServices)
	if err != nil {
		return models.ServiceCatalog{}, err
	}
	return *out, nil
}

func (c *Client) PlanningServices(ctx context.Context) (models.ServiceCatalog, error) {
	out, err := getResource[models.ServiceCatalog](ctx, c, PathPlanningServices)
	if err != nil {
		return models.ServiceCatalog{}, err
	}
	return *out, nil
}

func (c *Client) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	out, err := getResource[[]models.Testimonial](ctx, c, PathTestimonials)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (c *Client) Leadership(ctx context.Context) (models.Leadership, error) {
	out, err := getResource[models.Leadership](ctx, c, PathLeadership)
	if err != nil {
		return models.Leadership{}, err
	}
	return *out, nil
}

func (c *Client) Stats(ctx context.Context) ([]models.Stat, error) {
	out, err := getResource[[]models.Stat](ctx, c, PathStats)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

func (c *Client) SubmitContact(ctx context.Context, sub models.ContactSubmission) (models.ContactAck, error) {
	var ack models.ContactAck
	if err := c.Submit(ctx, PathContact, sub, &ack); err != nil {
		return models.ContactAck{}, err
	}
	return ack, nil
}

func (c *Client) ContactSubmissions(ctx context.Context) ([]models.ContactRecord, error) {
	out, err := getResource[[]models.ContactRecord](ctx, c, PathContactSubmissions)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// getResource decodes path into a fresh *T. Client.do already rejects a
// null body; the nil check covers Sources that bypass it.
func getResource[T any](ctx context.Context, c *Client, path string) (*T, error) {
	var out *T
	if err := c.Get(ctx, path, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, &TransportError{Method: http.MethodGet, Path: path, Err: ErrResourceMissing}
	}
	return out, nil
}
