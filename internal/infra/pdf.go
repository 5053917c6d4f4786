package infra

// pdf.go renders the headcount report as a single A4 page using go-pdf/fpdf:
//   - application name header and generation timestamp
//   - totals block (employees, active, inactive, departments)
//   - per-status counts
//   - per-department table

import (
	"fmt"
	"io"
	"time"

	"jhris/internal/dto"

	"github.com/go-pdf/fpdf"
)

// WriteHeadcountPDF writes the report to w.
func WriteHeadcountPDF(w io.Writer, appName string, report *dto.HeadcountReport, generatedAt time.Time) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		SizeStr:        "A4",
	})
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, appName, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Headcount Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, generatedAt.UTC().Format("2006-01-02 15:04 UTC"), "", 1, "C", false, 0, "")
	pdf.Ln(3)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Totals ────────────────────────────────────────────────────────────────
	labelW := contentW * 0.7
	valueW := contentW * 0.3

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, row := range []struct {
		label string
		value int64
	}{
		{"Total employees", report.TotalEmployees},
		{"Active employees", report.ActiveEmployees},
		{"Inactive employees", report.InactiveEmployees},
		{"Total departments", report.TotalDepartments},
	} {
		pdf.CellFormat(labelW, 6, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, fmt.Sprintf("%d", row.value), "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// ── By status ─────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "By employment status", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, status := range statusOrder(report.ByStatus) {
		pdf.CellFormat(labelW, 6, status, "", 0, "L", false, 0, "")
		pdf.CellFormat(valueW, 6, fmt.Sprintf("%d", report.ByStatus[status]), "", 1, "R", false, 0, "")
	}
	pdf.Ln(3)

	// ── By department ─────────────────────────────────────────────────────────
	codeW := contentW * 0.2
	nameW := contentW * 0.55
	countW := contentW * 0.25

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "By department", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(codeW, 6, "Code", "B", 0, "L", false, 0, "")
	pdf.CellFormat(nameW, 6, "Department", "B", 0, "L", false, 0, "")
	pdf.CellFormat(countW, 6, "Employees", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, d := range report.ByDepartment {
		pdf.CellFormat(codeW, 6, d.Code, "", 0, "L", false, 0, "")
		pdf.CellFormat(nameW, 6, truncate(d.Name, 48), "", 0, "L", false, 0, "")
		pdf.CellFormat(countW, 6, fmt.Sprintf("%d", d.Employees), "", 1, "R", false, 0, "")
	}
	if report.Unassigned > 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(codeW+nameW, 6, "No department", "", 0, "L", false, 0, "")
		pdf.CellFormat(countW, 6, fmt.Sprintf("%d", report.Unassigned), "", 1, "R", false, 0, "")
	}

	return pdf.Output(w)
}

// statusOrder lists known statuses first, then any others present.
func statusOrder(counts map[string]int64) []string {
	known := []string{"active", "inactive", "terminated", "on_leave"}
	out := make([]string, 0, len(counts))
	seen := make(map[string]bool, len(known))
	for _, s := range known {
		seen[s] = true
		if _, ok := counts[s]; ok {
			out = append(out, s)
		}
	}
	for s := range counts {
		if !seen[s] {
			out = append(out, s)
		}
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "..."
}
