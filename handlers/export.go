package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"zignexweb/api"
	"zignexweb/services"
)

func buildSubmissionExport(e *core.RequestEvent, src api.Source, now time.Time) (services.SubmissionExport, error) {
	records, err := src.ContactSubmissions(e.Request.Context())
	if err != nil {
		return services.SubmissionExport{}, fmt.Errorf("load submissions: %w", err)
	}
	return services.BuildSubmissionExport(records, now), nil
}

// exportFilename names a download after the export date.
func exportFilename(now time.Time, ext string) string {
	return fmt.Sprintf("contact-submissions_%s.%s", now.UTC().Format("2006-01-02"), ext)
}

// HandleSubmissionsExportExcel downloads the submissions as an .xlsx file.
func HandleSubmissionsExportExcel(src api.Source, now func() time.Time) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ts := now()
		data, err := buildSubmissionExport(e, src, ts)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return e.String(http.StatusBadGateway, "Failed to load submissions")
		}

		xlsxBytes, err := services.GenerateSubmissionsExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(ts, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleSubmissionsExportPDF downloads the submissions as a PDF table.
func HandleSubmissionsExportPDF(src api.Source, now func() time.Time) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		ts := now()
		data, err := buildSubmissionExport(e, src, ts)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return e.String(http.StatusBadGateway, "Failed to load submissions")
		}

		pdfBytes, err := services.GenerateSubmissionsPDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(ts, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}
