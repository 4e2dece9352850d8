package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"zignexweb/api"
	"zignexweb/models"
	"zignexweb/page"
	"zignexweb/services"
	"zignexweb/templates"
)

func submissionRows(records []models.ContactRecord, now time.Time) []templates.SubmissionRow {
	rows := make([]templates.SubmissionRow, 0, len(records))
	for _, r := range records {
		received := r.CreatedAt
		if ts, err := services.ParseTimestamp(r.CreatedAt); err == nil {
			received = ts.UTC().Format("02 Jan 2006 15:04 MST")
		}
		rows = append(rows, templates.SubmissionRow{
			ContactRecord: r,
			Received:      received,
			Age:           services.FormatAge(r.CreatedAt, now),
		})
	}
	return rows
}

// HandleAdminSubmissions lists the most recent contact submissions.
func HandleAdminSubmissions(src api.Source, timeout time.Duration, now func() time.Time) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		batch := submissionsBatch(src)
		loader := loadBatch(e, batch, timeout)
		if loader.State() != page.Ready {
			return renderFailed(e, "Contact Submissions", batch)
		}

		records, _ := page.Get[[]models.ContactRecord](loader, resSubmissions)
		data := templates.SubmissionsData{Rows: submissionRows(records, now())}
		return renderPage(e, http.StatusOK, templates.SubmissionsContent(data), templates.SubmissionsPage(data, GetHeaderData(e.Request)))
	}
}
