package handler

import (
	"net/http"

	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/service"

	"github.com/gin-gonic/gin"
)

type BranchesHandler struct{ svc service.BranchService }

func NewBranchesHandler(svc service.BranchService) *BranchesHandler {
	return &BranchesHandler{svc: svc}
}

// Create godoc
// @Summary Cadastra uma filial
// @Tags filiais
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.CreateBranchRequest true "Dados da filial"
// @Success 201 {object} dto.BranchResponse
// @Failure 409 {object} apierror.APIError
// @Router /api/branches [post]
func (h *BranchesHandler) Create(c *gin.Context) {
	var req dto.CreateBranchRequest
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

func (h *BranchesHandler) List(c *gin.Context) {
	resp, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *BranchesHandler) GetByID(c *gin.Context) {
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

func (h *BranchesHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c)
	if !ok {
		return
	}
	var req dto.UpdateBranchRequest
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

func (h *BranchesHandler) Delete(c *gin.Context) {
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
