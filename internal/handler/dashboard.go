package handler

import (
	"net/http"
	"strconv"

	"github.com/campneus/auditoria-campneus/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Overview godoc
// @Summary Indicadores gerais do painel
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	resp, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) MonthlyScores(c *gin.Context) {
	months, _ := strconv.Atoi(c.Query("months"))
	resp, err := h.svc.MonthlyScores(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *DashboardHandler) SummaryDistribution(c *gin.Context) {
	months, _ := strconv.Atoi(c.Query("months"))
	resp, err := h.svc.SummaryDistribution(c.Request.Context(), months)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
