package handlers

import (
	"github.com/gin-gonic/gin"

	"kontora/internal/domain/auth"
	"kontora/internal/domain/user"
	"kontora/internal/infrastructure/http/v1/dto"
)

// AuthHandler serves registration and sign-in.
type AuthHandler struct {
	*BaseHandler
	users *user.Service
	auth  *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, users *user.Service, authService *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, users: users, auth: authService}
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	account, err := h.users.Register(c.Request.Context(), user.RegisterParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, account.UID().String())
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	account, tokens, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.LoginResponse{
		AccessToken: tokens.AccessToken,
		ExpiresAt:   dto.FormatTimestamp(tokens.ExpiresAt),
		User:        dto.FromUser(account),
	})
}
