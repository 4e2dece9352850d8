package api

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"zignexweb/models"
)

//go:embed demo_content.json
var demoContent []byte

// maxDemoSubmissions mirrors the backend's admin read limit.
const maxDemoSubmissions = 100

// DemoContent is the bundled copy of every published resource.
type DemoContent struct {
	CompanyInfo      models.CompanyInfo    `json:"company_info"`
	Services         models.ServiceCatalog `json:"services"`
	PlanningServices models.ServiceCatalog `json:"planning_services"`
	Testimonials     []models.Testimonial  `json:"testimonials"`
	Leadership       models.Leadership     `json:"leadership"`
	Stats            []models.Stat         `json:"stats"`
}

// DemoSource serves bundled content without a backend. Contact submissions
// are kept in memory, newest first, and are lost on restart.
type DemoSource struct {
	content DemoContent
	now     func() time.Time

	mu          sync.Mutex
	submissions []models.ContactRecord
}

var _ Source = (*DemoSource)(nil)

// NewDemoSource parses the bundled content.
func NewDemoSource() (*DemoSource, error) {
	var content DemoContent
	if err := json.Unmarshal(demoContent, &content); err != nil {
		return nil, fmt.Errorf("parse demo content: %w", err)
	}
	return &DemoSource{content: content, now: time.Now}, nil
}

func (d *DemoSource) CompanyInfo(ctx context.Context) (models.CompanyInfo, error) {
	if err := ctx.Err(); err != nil {
		return models.CompanyInfo{}, err
	}
	return d.content.CompanyInfo, nil
}

func (d *DemoSource) Services(ctx context.Context) (models.ServiceCatalog, error) {
	if err := ctx.Err(); err != nil {
		return models.ServiceCatalog{}, err
	}
	return d.content.Services, nil
}

func (d *DemoSource) PlanningServices(ctx context.Context) (models.ServiceCatalog, error) {
	if err := ctx.Err(); err != nil {
		return models.ServiceCatalog{}, err
	}
	return d.content.PlanningServices, nil
}

func (d *DemoSource) Testimonials(ctx context.Context) ([]models.Testimonial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Testimonial(nil), d.content.Testimonials...), nil
}

func (d *DemoSource) Leadership(ctx context.Context) (models.Leadership, error) {
	if err := ctx.Err(); err != nil {
		return models.Leadership{}, err
	}
	return d.content.Leadership, nil
}

func (d *DemoSource) Stats(ctx context.Context) ([]models.Stat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return append([]models.Stat(nil), d.content.Stats...), nil
}

func (d *DemoSource) SubmitContact(ctx context.Context, sub models.ContactSubmission) (models.ContactAck, error) {
	if err := ctx.Err(); err != nil {
		return models.ContactAck{}, err
	}
	rec := models.ContactRecord{
		ID:        uuid.NewString(),
		Name:      sub.Name,
		Email:     sub.Email,
		Company:   sub.Company,
		Phone:     sub.Phone,
		Service:   sub.Service,
		Message:   sub.Message,
		CreatedAt: d.now().UTC().Format(time.RFC3339Nano),
		Status:    "new",
	}

	d.mu.Lock()
	d.submissions = append([]models.ContactRecord{rec}, d.submissions...)
	if len(d.submissions) > maxDemoSubmissions {
		d.submissions = d.submissions[:maxDemoSubmissions]
	}
	d.mu.Unlock()

	return models.ContactAck{
		Success: true,
		Message: "Contact form submitted successfully",
		ID:      rec.ID,
	}, nil
}

func (d *DemoSource) ContactSubmissions(ctx context.Context) ([]models.ContactRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]models.ContactRecord(nil), d.submissions...), nil
}
