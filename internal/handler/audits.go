package handler

import (
	"net/http"
	"strconv"

	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/middleware"
	"github.com/campneus/auditoria-campneus/internal/service"

	"github.com/gin-gonic/gin"
)

type AuditsHandler struct{ svc service.AuditService }

func NewAuditsHandler(svc service.AuditService) *AuditsHandler { return &AuditsHandler{svc: svc} }

// Create godoc
// @Summary Registra uma auditoria
// @Tags auditorias
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateAuditRequest true "Dados da auditoria"
// @Success 201 {object} dto.AuditResponse
// @Failure 404 {object} apierror.APIError
// @Router /api/audits [post]
func (h *AuditsHandler) Create(c *gin.Context) {
	var req dto.CreateAuditRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user := middleware.CurrentUser(c)
	resp, err := h.svc.Create(c.Request.Context(), user.ID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *AuditsHandler) List(c *gin.Context) {
	branchID, ok := queryUUID(c, "branch_id")
	if !ok {
		return
	}
	auditorID, ok := queryUUID(c, "auditor_id")
	if !ok {
		return
	}
	filter := dto.AuditFilter{
		BranchID:  branchID,
		AuditorID: auditorID,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))
	filter.Offset, _ = strconv.Atoi(c.Query("offset"))

	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuditsHandler) GetByID(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	resp, err := h.svc.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuditsHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	var req dto.UpdateAuditRequest
	if !bindAndValidate(c, &req) {
		return
	}
	user := middleware.CurrentUser(c)
	resp, err := h.svc.Update(c.Request.Context(), user, id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuditsHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
