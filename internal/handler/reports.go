package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/infra"
	"github.com/campneus/auditoria-campneus/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportsHandler struct{ svc service.ReportService }

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// LastVisitByBranch godoc
// @Summary Última visita de cada filial
// @Tags relatorios
// @Produce json
// @Security BearerAuth
// @Success 200 {array} dto.LastVisitRow
// @Router /api/reports/last-visit-by-branch [get]
func (h *ReportsHandler) LastVisitByBranch(c *gin.Context) {
	resp, err := h.svc.LastVisitByBranch(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LastVisitByBranchPDF streams the same report rendered as a PDF document.
func (h *ReportsHandler) LastVisitByBranchPDF(c *gin.Context) {
	rows, err := h.svc.LastVisitByBranch(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	doc, err := infra.RenderLastVisitPDF(rows)
	if err != nil {
		respondError(c, err)
		return
	}
	filename := fmt.Sprintf("ultima-visita-%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}

func (h *ReportsHandler) BranchesToAudit(c *gin.Context) {
	months, _ := strconv.Atoi(c.Query("months"))
	resp, err := h.svc.BranchesToAudit(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) AuditsByPeriod(c *gin.Context) {
	branchID, ok := queryUUID(c, "branch_id")
	if !ok {
		return
	}
	auditorID, ok := queryUUID(c, "auditor_id")
	if !ok {
		return
	}
	filter := dto.ReportPeriodFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		BranchID:  branchID,
		AuditorID: auditorID,
	}
	resp, err := h.svc.AuditsByPeriod(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) AuditorPerformance(c *gin.Context) {
	filter := dto.ReportPeriodFilter{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	resp, err := h.svc.AuditorPerformance(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ReportsHandler) ScoresByState(c *gin.Context) {
	months, _ := strconv.Atoi(c.Query("months"))
	resp, err := h.svc.ScoresByState(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
