package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// pdfMessageLimit caps the message column; the workbook carries full text.
const pdfMessageLimit = 160

// GenerateSubmissionsPDF renders the export as a landscape A4 table.
func GenerateSubmissionsPDF(data SubmissionExport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Horizontal).
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).
		WithTopMargin(10).
		WithRightMargin(10).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} of {total}",
			Place:   props.RightBottom,
			Size:    7,
			Color:   &props.Color{Red: 120, Green: 120, Blue: 120},
		}).
		Build()

	m := maroto.New(cfg)

	addHeader(m, data)
	addTableHeader(m)
	for _, r := range data.Rows {
		addTableRow(m, r)
	}
	addSummary(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func addHeader(m core.Maroto, data SubmissionExport) {
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Align: align.Center,
				}),
			),
		),
		row.New(6).Add(
			col.New(6).Add(
				text.New(fmt.Sprintf("Submissions: %d", len(data.Rows)), props.Text{
					Size:  9,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
			col.New(6).Add(
				text.New("Generated: "+data.GeneratedAt, props.Text{
					Size:  9,
					Align: align.Right,
					Color: &props.Color{Red: 80, Green: 80, Blue: 80},
				}),
			),
		),
		row.New(4),
	)
}

func addTableHeader(m core.Maroto) {
	headerText := props.Text{
		Size:  8,
		Style: fontstyle.Bold,
		Align: align.Left,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerCell := &props.Cell{BackgroundColor: &props.Color{Red: 29, Green: 78, Blue: 216}}

	labels := []string{"Received", "Name", "Email", "Service", "Message", "Status"}
	sizes := []int{2, 2, 2, 2, 3, 1}
	cols := make([]core.Col, len(labels))
	for i, label := range labels {
		cols[i] = col.New(sizes[i]).Add(text.New(label, headerText)).WithStyle(headerCell)
	}
	m.AddRows(row.New(8).Add(cols...))
}

// addTableRow adds one submission; odd rows are shaded.
func addTableRow(m core.Maroto, r SubmissionRow) {
	cellText := props.Text{Size: 7, Align: align.Left}

	contact := r.Name
	if r.Company != "" {
		contact += " (" + r.Company + ")"
	}
	email := r.Email
	if r.Phone != "" {
		email += " / " + r.Phone
	}

	cols := []core.Col{
		col.New(2).Add(text.New(r.Received, cellText)),
		col.New(2).Add(text.New(contact, cellText)),
		col.New(2).Add(text.New(email, cellText)),
		col.New(2).Add(text.New(r.Service, cellText)),
		col.New(3).Add(text.New(Truncate(r.Message, pdfMessageLimit), cellText)),
		col.New(1).Add(text.New(r.Status, cellText)),
	}
	if r.Index%2 == 1 {
		shade := &props.Cell{BackgroundColor: &props.Color{Red: 245, Green: 245, Blue: 245}}
		for i := range cols {
			cols[i] = cols[i].WithStyle(shade)
		}
	}
	m.AddRows(row.New(10).Add(cols...))
}

func addSummary(m core.Maroto, data SubmissionExport) {
	m.AddRows(row.New(6))

	summaryCell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	labelStyle := props.Text{Size: 9, Style: fontstyle.Bold, Align: align.Right}
	valueStyle := props.Text{Size: 9, Align: align.Right}

	for _, status := range sortedKeys(data.ByStatus) {
		m.AddRows(
			row.New(7).Add(
				col.New(10).Add(text.New("Status: "+status, labelStyle)).WithStyle(summaryCell),
				col.New(2).Add(text.New(fmt.Sprintf("%d", data.ByStatus[status]), valueStyle)).WithStyle(summaryCell),
			),
		)
	}
	m.AddRows(
		row.New(7).Add(
			col.New(10).Add(text.New("Total", labelStyle)).WithStyle(summaryCell),
			col.New(2).Add(text.New(fmt.Sprintf("%d", len(data.Rows)), labelStyle)).WithStyle(summaryCell),
		),
	)
}
