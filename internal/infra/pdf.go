package infra

import (
	"bytes"
	"fmt"
	"time"

	"github.com/campneus/auditoria-campneus/internal/dto"

	"github.com/go-pdf/fpdf"
)

// RenderLastVisitPDF renders the last-visit-by-branch report as a landscape A4
// table and returns the document bytes.
func RenderLastVisitPDF(rows []dto.LastVisitRow) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.SetAutoPageBreak(true, 14)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFooterFunc(func() {
		pdf.SetY(-10)
		pdf.SetFont("Helvetica", "I", 7)
		pdf.CellFormat(0, 5, fmt.Sprintf("Página %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 20

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(contentW, 8, tr("Última Visita por Filial"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, tr(fmt.Sprintf("Gerado em %s", time.Now().Format("02/01/2006 15:04"))), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	cols := []struct {
		title string
		width float64
	}{
		{"Código", 0.08},
		{"Filial", 0.24},
		{"UF", 0.04},
		{"Cidade", 0.16},
		{"Última Visita", 0.10},
		{"Nota", 0.06},
		{"Resumo", 0.14},
		{"Auditor", 0.08},
		{"Situação", 0.10},
	}

	header := func() {
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetFillColor(230, 230, 230)
		for _, col := range cols {
			pdf.CellFormat(contentW*col.width, 6, tr(col.title), "1", 0, "C", true, 0, "")
		}
		pdf.Ln(-1)
	}
	header()

	pdf.SetFont("Helvetica", "", 7)
	for _, row := range rows {
		if pdf.GetY() > 180 {
			pdf.AddPage()
			header()
			pdf.SetFont("Helvetica", "", 7)
		}

		lastVisit := "-"
		if row.LastVisitDate != nil {
			lastVisit = *row.LastVisitDate
		}
		score := "-"
		if row.LastScore != nil {
			score = fmt.Sprintf("%d", *row.LastScore)
		}
		summary := "-"
		if row.LastSummary != nil {
			summary = *row.LastSummary
		}
		auditor := "-"
		if row.LastAuditor != nil {
			auditor = *row.LastAuditor
		}

		values := []struct {
			text  string
			width float64
			align string
		}{
			{row.Code, cols[0].width, "L"},
			{row.Name, cols[1].width, "L"},
			{row.State, cols[2].width, "C"},
			{row.City, cols[3].width, "L"},
			{lastVisit, cols[4].width, "C"},
			{score, cols[5].width, "C"},
			{summary, cols[6].width, "L"},
			{auditor, cols[7].width, "L"},
			{row.VisitStatus, cols[8].width, "C"},
		}
		for _, v := range values {
			pdf.CellFormat(contentW*v.width, 5, tr(v.text), "1", 0, v.align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render report: %w", err)
	}
	return buf.Bytes(), nil
}
