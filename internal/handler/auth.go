package handler

import (
	"net/http"
	"time"

	"github.com/campneus/auditoria-campneus/internal/dto"
	"github.com/campneus/auditoria-campneus/internal/middleware"
	"github.com/campneus/auditoria-campneus/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct{ svc service.AuthService }

func NewAuthHandler(svc service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

// Login godoc
// @Summary Autentica um usuário
// @Tags auth
// @Accept json
// @Produce json
// @Param body body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Verify godoc
// @Summary Valida o token atual e retorna o usuário autenticado
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.VerifyResponse
// @Failure 401 {object} apierror.APIError
// @Router /api/auth/verify [get]
func (h *AuthHandler) Verify(c *gin.Context) {
	user := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, dto.VerifyResponse{
		Valid: true,
		User: dto.UserResponse{
			ID:        user.ID.String(),
			Username:  user.Username,
			Role:      string(user.Role),
			Email:     user.Email,
			CreatedAt: user.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
}
