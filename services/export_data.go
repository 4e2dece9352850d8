package services

import (
	"time"

	"zignexweb/models"
)

// SubmissionRow is one contact submission as it appears in an export.
type SubmissionRow struct {
	Index    int
	Received string // "2006-01-02 15:04" UTC, or the raw value if unparseable
	Name     string
	Email    string
	Company  string
	Phone    string
	Service  string
	Message  string
	Status   string
}

// SubmissionExport holds everything an Excel or PDF export needs.
type SubmissionExport struct {
	Title       string
	GeneratedAt string
	Rows        []SubmissionRow
	ByStatus    map[string]int
	ByService   map[string]int
}

// BuildSubmissionExport flattens records in the order the backend returned
// them (newest first).
func BuildSubmissionExport(records []models.ContactRecord, now time.Time) SubmissionExport {
	data := SubmissionExport{
		Title:       "Contact Submissions",
		GeneratedAt: now.UTC().Format("2006-01-02 15:04 MST"),
		Rows:        make([]SubmissionRow, 0, len(records)),
		ByStatus:    make(map[string]int),
		ByService:   make(map[string]int),
	}

	for i, r := range records {
		received := r.CreatedAt
		if ts, err := ParseTimestamp(r.CreatedAt); err == nil {
			received = ts.UTC().Format("2006-01-02 15:04")
		}
		status := r.Status
		if status == "" {
			status = "new"
		}
		data.Rows = append(data.Rows, SubmissionRow{
			Index:    i + 1,
			Received: received,
			Name:     r.Name,
			Email:    r.Email,
			Company:  r.Company,
			Phone:    r.Phone,
			Service:  r.Service,
			Message:  r.Message,
			Status:   status,
		})
		data.ByStatus[status]++
		service := r.Service
		if service == "" {
			service = "Unspecified"
		}
		data.ByService[service]++
	}
	return data
}
