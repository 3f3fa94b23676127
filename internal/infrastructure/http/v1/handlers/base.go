// Package handlers provides HTTP request handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kontora/internal/core/apperror"
	appctx "kontora/internal/core/context"
	"kontora/internal/infrastructure/http/v1/dto"
)

// BaseHandler provides common handler utilities.
type BaseHandler struct{}

// NewBaseHandler creates a new base handler.
func NewBaseHandler() *BaseHandler {
	return &BaseHandler{}
}

// BindJSON binds and validates the JSON request body.
func (h *BaseHandler) BindJSON(c *gin.Context, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		h.Error(c, apperror.NewValidation("invalid request body").WithDetail("error", err.Error()))
		return false
	}
	return true
}

// Error registers the error on the gin context and aborts the request.
// The JSON response is produced by middleware.ErrorHandler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// NotFound aborts with a 404 for the named entity.
func (h *BaseHandler) NotFound(c *gin.Context, entity, uid string) {
	h.Error(c, apperror.NewNotFound(entity, uid))
}

// ActorUID extracts the authenticated user's uid, nil when anonymous.
func (h *BaseHandler) ActorUID(c *gin.Context) *string {
	uid := appctx.GetUserUID(c.Request.Context())
	if uid == "" {
		return nil
	}
	return &uid
}

// Created sends a 201 response with the new uid.
func (h *BaseHandler) Created(c *gin.Context, uid string) {
	c.JSON(http.StatusCreated, dto.UIDResponse{UID: uid})
}

// OK sends a 200 response with data.
func (h *BaseHandler) OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// NoContent sends a 204 response.
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
