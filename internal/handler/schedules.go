package handler

import (
	"net/http"

	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/service"

	"github.com/gin-gonic/gin"
)

type SchedulesHandler struct{ svc service.ScheduleService }

func NewSchedulesHandler(svc service.ScheduleService) *SchedulesHandler {
	return &SchedulesHandler{svc: svc}
}

// Create godoc
// @Summary Agenda uma visita
// @Tags agendamentos
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateScheduleRequest true "Dados do agendamento"
// @Success 201 {object} dto.ScheduleResponse
// @Failure 409 {object} apierror.APIError
// @Router /api/schedules [post]
func (h *SchedulesHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *SchedulesHandler) List(c *gin.Context) {
	branchID, ok := queryUUID(c, "branch_id")
	if !ok {
		return
	}
	filter := dto.ScheduleFilter{
		BranchID:  branchID,
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
	resp, err := h.svc.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SchedulesHandler) GetByID(c *gin.Context) {
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

func (h *SchedulesHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	var req dto.UpdateScheduleRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SchedulesHandler) Delete(c *gin.Context) {
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
