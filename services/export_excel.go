package services

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"
)

// GenerateSubmissionsExcel renders the export as an .xlsx workbook with a
// submissions sheet and a summary sheet.
func GenerateSubmissionsExcel(data SubmissionExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Submissions"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	columns := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}
	lastCol := columns[len(columns)-1]
	widths := []float64{5, 18, 22, 28, 22, 16, 30, 60, 10}
	for i, col := range columns {
		if err := f.SetColWidth(sheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#1D4ED8"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	// Messages wrap so long enquiries stay readable.
	rowStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Size: 10},
		Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create row style: %w", err)
	}

	if err := f.MergeCell(sheet, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheet, "A1", lastCol+"1", titleStyle)
	f.SetCellValue(sheet, "A2", "Generated: "+data.GeneratedAt)

	headers := []string{"#", "Received", "Name", "Email", "Company", "Phone", "Service", "Message", "Status"}
	for i, h := range headers {
		f.SetCellValue(sheet, fmt.Sprintf("%s4", columns[i]), h)
	}
	f.SetCellStyle(sheet, "A4", lastCol+"4", headerStyle)

	row := 5
	for _, r := range data.Rows {
		values := []any{
			r.Index,
			sanitizeExcelCell(r.Received),
			sanitizeExcelCell(r.Name),
			sanitizeExcelCell(r.Email),
			sanitizeExcelCell(r.Company),
			sanitizeExcelCell(r.Phone),
			sanitizeExcelCell(r.Service),
			sanitizeExcelCell(r.Message),
			sanitizeExcelCell(r.Status),
		}
		for i, v := range values {
			f.SetCellValue(sheet, fmt.Sprintf("%s%d", columns[i], row), v)
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("%s%d", lastCol, row), rowStyle)
		row++
	}

	if err := writeSummarySheet(f, data, headerStyle); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// writeSummarySheet adds per-status and per-service counts.
func writeSummarySheet(f *excelize.File, data SubmissionExport, headerStyle int) error {
	sheet := "Summary"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}
	f.SetColWidth(sheet, "A", "A", 34)
	f.SetColWidth(sheet, "B", "B", 10)

	row := 1
	writeCounts := func(title string, counts map[string]int) {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), title)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), "Count")
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("B%d", row), headerStyle)
		row++
		for _, k := range sortedKeys(counts) {
			f.SetCellValue(sheet, fmt.Sprintf("A%d", row), sanitizeExcelCell(k))
			f.SetCellValue(sheet, fmt.Sprintf("B%d", row), counts[k])
			row++
		}
		row++
	}
	writeCounts("Status", data.ByStatus)
	writeCounts("Service Interest", data.ByService)

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("B%d", row), len(data.Rows))
	return nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// sanitizeExcelCell neutralises values Excel would evaluate as formulas.
// Contact forms are public input, so every free-text cell goes through it.
func sanitizeExcelCell(s string) string {
	if s == "" {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin black borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
