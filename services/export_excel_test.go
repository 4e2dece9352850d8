package services

import (
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func TestGenerateSubmissionsExcel(t *testing.T) {
	data := BuildSubmissionExport(sampleRecords(), time.Date(2026, 3, 3, 8, 0, 0, 0, time.UTC))

	result, err := GenerateSubmissionsExcel(data)
	if err != nil {
		t.Fatalf("GenerateSubmissionsExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateSubmissionsExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Submissions" || sheets[1] != "Summary" {
		t.Fatalf("unexpected sheets %v", sheets)
	}

	title, _ := f.GetCellValue("Submissions", "A1")
	if title != "Contact Submissions" {
		t.Errorf("expected title 'Contact Submissions', got %q", title)
	}
	header, _ := f.GetCellValue("Submissions", "C4")
	if header != "Name" {
		t.Errorf("expected header 'Name' in C4, got %q", header)
	}
	name, _ := f.GetCellValue("Submissions", "C5")
	if name != "Priya" {
		t.Errorf("expected first row name 'Priya', got %q", name)
	}
	msg, _ := f.GetCellValue("Submissions", "H6")
	if msg != "'=HYPERLINK(\"x\")" {
		t.Errorf("formula-like message should be escaped, got %q", msg)
	}
}

func TestGenerateSubmissionsExcel_Empty(t *testing.T) {
	data := BuildSubmissionExport(nil, time.Now())

	result, err := GenerateSubmissionsExcel(data)
	if err != nil {
		t.Fatalf("GenerateSubmissionsExcel() error = %v", err)
	}
	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	total, _ := f.GetCellValue("Summary", "A5")
	count, _ := f.GetCellValue("Summary", "B5")
	if total != "Total" || count != "0" {
		t.Errorf("expected Total 0 at row 5, got %q %q", total, count)
	}
}

func TestSanitizeExcelCell(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"hello", "hello"},
		{"=SUM(A1)", "'=SUM(A1)"},
		{"+1 555", "'+1 555"},
		{"-x", "'-x"},
		{"@cmd", "'@cmd"},
	}
	for _, tt := range tests {
		if got := sanitizeExcelCell(tt.in); got != tt.want {
			t.Errorf("sanitizeExcelCell(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
