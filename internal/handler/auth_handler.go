package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salesdesk/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /api/v1/auth/login
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body service.LoginInput true "Credentials"
// @Success      200 {object} APIResponse{data=service.LoginResult}
// @Failure      400 {object} APIResponse
// @Failure      401 {object} APIResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, result)
}

// Register handles POST /api/v1/auth/register
// @Summary      Register an operator
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body service.RegisterInput true "Operator details"
// @Success      201 {object} APIResponse{data=domain.User}
// @Failure      400 {object} APIResponse
// @Failure      409 {object} APIResponse
// @Security     BearerAuth
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondCreated(c, user)
}
