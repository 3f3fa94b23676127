package handlers

import (
	"github.com/gin-gonic/gin"

	"kontora/internal/domain/legalentity"
	"kontora/internal/infrastructure/http/v1/dto"
)

// LegalEntityHandler serves the company endpoints.
type LegalEntityHandler struct {
	*BaseHandler
	service *legalentity.Service
}

// NewLegalEntityHandler creates a new legal entity handler.
func NewLegalEntityHandler(base *BaseHandler, service *legalentity.Service) *LegalEntityHandler {
	return &LegalEntityHandler{BaseHandler: base, service: service}
}

// Create handles POST /api/v1/legal-entities.
func (h *LegalEntityHandler) Create(c *gin.Context) {
	var req dto.CreateLegalEntityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entity, err := h.service.Create(c.Request.Context(), legalentity.CreateParams{
		ShortName:    req.ShortName,
		FullName:     req.FullName,
		OGRN:         req.OGRN,
		INN:          req.INN,
		KPP:          req.KPP,
		LegalAddress: req.LegalAddress,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		CreatorUID:   h.ActorUID(c),
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, entity.UID().String())
}

// Get handles GET /api/v1/legal-entities/:uid.
func (h *LegalEntityHandler) Get(c *gin.Context) {
	uid := c.Param("uid")
	entity, err := h.service.Get(c.Request.Context(), uid)
	if err != nil {
		h.Error(c, err)
		return
	}
	if entity == nil {
		h.NotFound(c, "legal entity", uid)
		return
	}
	h.OK(c, dto.FromLegalEntity(entity))
}

// List handles GET /api/v1/legal-entities.
func (h *LegalEntityHandler) List(c *gin.Context) {
	filters := legalentity.Filters{
		ShortName:  c.Query("shortName"),
		INN:        c.Query("inn"),
		CuratorUID: c.Query("curatorUid"),
		CreatorUID: c.Query("creatorUid"),
	}

	list, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(dto.FromLegalEntities(list)))
}

// Update handles PATCH /api/v1/legal-entities/:uid.
func (h *LegalEntityHandler) Update(c *gin.Context) {
	var req dto.UpdateLegalEntityRequest
	if !h.BindJSON(c, &req) {
		return
	}

	uid := c.Param("uid")
	entity, err := h.service.Update(c.Request.Context(), uid, legalentity.UpdateParams{
		LegalAddress: req.LegalAddress,
		PhoneNumber:  req.PhoneNumber,
		Email:        req.Email,
		CuratorUID:   req.CuratorUID,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	if entity == nil {
		h.NotFound(c, "legal entity", uid)
		return
	}
	h.OK(c, dto.FromLegalEntity(entity))
}

// Delete handles DELETE /api/v1/legal-entities/:uid.
func (h *LegalEntityHandler) Delete(c *gin.Context) {
	uid := c.Param("uid")
	deleted, err := h.service.Delete(c.Request.Context(), uid)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !deleted {
		h.NotFound(c, "legal entity", uid)
		return
	}
	h.NoContent(c)
}
