package handlers

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"zignexweb/testhelpers"
)

func fixedNow() time.Time {
	return time.Date(2026, 3, 2, 13, 30, 0, 0, time.UTC)
}

func TestHandleAdminSubmissions(t *testing.T) {
	_, src := newBackendSource(t)

	rec := serveGET(t, HandleAdminSubmissions(src, time.Second, fixedNow), "/admin/contact-submissions", false)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	testhelpers.AssertHTMLContains(t, rec.Body.String(),
		"Priya", "mailto:priya@example.com", "3 hours ago", "02 Mar 2026 10:30 UTC", "Export Excel")
}

func TestHandleAdminSubmissions_Failed(t *testing.T) {
	fb, src := newBackendSource(t)
	fb.Fail("GET /contact-submissions")

	rec := serveGET(t, HandleAdminSubmissions(src, time.Second, fixedNow), "/admin/contact-submissions", false)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rec.Code)
	}
	testhelpers.AssertHTMLNotContains(t, rec.Body.String(), "Priya")
}

func TestHandleSubmissionsExportExcel(t *testing.T) {
	_, src := newBackendSource(t)

	rec := serveGET(t, HandleSubmissionsExportExcel(src, fixedNow), "/admin/contact-submissions/export/excel", false)

	if got := rec.Header().Get("Content-Type"); got != "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet" {
		t.Errorf("unexpected Content-Type %q", got)
	}
	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="contact-submissions_2026-03-02.xlsx"` {
		t.Errorf("unexpected Content-Disposition %q", got)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("response is not valid Excel: %v", err)
	}
	defer f.Close()
	name, _ := f.GetCellValue("Submissions", "C5")
	if name != "Priya" {
		t.Errorf("expected Priya in C5, got %q", name)
	}
}

func TestHandleSubmissionsExportPDF(t *testing.T) {
	_, src := newBackendSource(t)

	rec := serveGET(t, HandleSubmissionsExportPDF(src, fixedNow), "/admin/contact-submissions/export/pdf", false)

	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Errorf("unexpected Content-Type %q", got)
	}
	body := rec.Body.Bytes()
	if len(body) < 5 || string(body[:5]) != "%PDF-" {
		t.Error("response does not start with a PDF header")
	}
}

func TestHandleSubmissionsExport_BackendDown(t *testing.T) {
	fb, src := newBackendSource(t)
	fb.Fail("GET /contact-submissions")

	rec := serveGET(t, HandleSubmissionsExportPDF(src, fixedNow), "/admin/contact-submissions/export/pdf", false)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", rec.Code)
	}
}
