package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"jhris/internal/infra"
	"jhris/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ReportsHandler struct {
	svc     service.ReportService
	appName string
	now     func() time.Time
}

func NewReportsHandler(svc service.ReportService, appName string) *ReportsHandler {
	return &ReportsHandler{svc: svc, appName: appName, now: time.Now}
}

// Headcount godoc
// @Summary Headcount totals by status and department
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.HeadcountReport
// @Router /reports/headcount [get]
func (h *ReportsHandler) Headcount(c *gin.Context) {
	report, err := h.svc.Headcount(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// HeadcountPDF godoc
// @Summary Headcount report as PDF
// @Tags reports
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} file
// @Router /reports/headcount/pdf [get]
func (h *ReportsHandler) HeadcountPDF(c *gin.Context) {
	report, err := h.svc.Headcount(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	now := h.now()
	var buf bytes.Buffer
	if err := infra.WriteHeadcountPDF(&buf, h.appName, report, now); err != nil {
		_ = c.Error(fmt.Errorf("render headcount pdf: %w", err))
		return
	}

	filename := fmt.Sprintf("headcount_%s.pdf", now.Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// EmployeesXLSX godoc
// @Summary Employee roster as a spreadsheet
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} file
// @Router /reports/employees/xlsx [get]
func (h *ReportsHandler) EmployeesXLSX(c *gin.Context) {
	rows, err := h.svc.Roster(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	f, err := infra.NewRosterWorkbook(rows)
	if err != nil {
		_ = c.Error(fmt.Errorf("build roster workbook: %w", err))
		return
	}
	defer f.Close()

	buf, err := f.WriteToBuffer()
	if err != nil {
		_ = c.Error(fmt.Errorf("write roster workbook: %w", err))
		return
	}

	filename := fmt.Sprintf("employees_%s.xlsx", h.now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
