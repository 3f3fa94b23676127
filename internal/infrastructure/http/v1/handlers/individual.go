package handlers

import (
	"github.com/gin-gonic/gin"

	"kontora/internal/domain/individual"
	"kontora/internal/infrastructure/http/v1/dto"
)

// IndividualHandler serves the physical-person endpoints.
type IndividualHandler struct {
	*BaseHandler
	service *individual.Service
}

// NewIndividualHandler creates a new individual handler.
func NewIndividualHandler(base *BaseHandler, service *individual.Service) *IndividualHandler {
	return &IndividualHandler{BaseHandler: base, service: service}
}

// Create handles POST /api/v1/individuals.
func (h *IndividualHandler) Create(c *gin.Context) {
	var req dto.CreateIndividualRequest
	if !h.BindJSON(c, &req) {
		return
	}

	person, err := h.service.Create(c.Request.Context(), individual.CreateParams{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		MiddleName:        req.MiddleName,
		Status:            req.Status,
		CreatorUID:        h.ActorUID(c),
		PositionID:        req.PositionID,
		Login:             req.Login,
		IsCompanyEmployee: req.IsCompanyEmployee,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, person.UID().String())
}

// Get handles GET /api/v1/individuals/:uid.
func (h *IndividualHandler) Get(c *gin.Context) {
	uid := c.Param("uid")
	person, err := h.service.Get(c.Request.Context(), uid)
	if err != nil {
		h.Error(c, err)
		return
	}
	if person == nil {
		h.NotFound(c, "individual", uid)
		return
	}
	h.OK(c, dto.FromIndividual(person))
}

// List handles GET /api/v1/individuals.
func (h *IndividualHandler) List(c *gin.Context) {
	filters := individual.Filters{
		FirstName: c.Query("firstName"),
		LastName:  c.Query("lastName"),
		Status:    c.Query("status"),
		Login:     c.Query("login"),
	}
	if v := c.Query("isCompanyEmployee"); v != "" {
		b := v == "true"
		filters.IsCompanyEmployee = &b
	}

	list, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(dto.FromIndividuals(list)))
}

// Update handles PATCH /api/v1/individuals/:uid.
func (h *IndividualHandler) Update(c *gin.Context) {
	var req dto.UpdateIndividualRequest
	if !h.BindJSON(c, &req) {
		return
	}

	uid := c.Param("uid")
	person, err := h.service.Update(c.Request.Context(), uid, individual.UpdateParams{
		Status:            req.Status,
		PositionID:        req.PositionID,
		Login:             req.Login,
		IsCompanyEmployee: req.IsCompanyEmployee,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	if person == nil {
		h.NotFound(c, "individual", uid)
		return
	}
	h.OK(c, dto.FromIndividual(person))
}

// AddContact handles POST /api/v1/individuals/:uid/contacts.
func (h *IndividualHandler) AddContact(c *gin.Context) {
	var req dto.AddContactRequest
	if !h.BindJSON(c, &req) {
		return
	}

	actor := h.ActorUID(c)
	addedBy := ""
	if actor != nil {
		addedBy = *actor
	}

	uid := c.Param("uid")
	person, err := h.service.AddContact(c.Request.Context(), uid, individual.ContactParams{
		Phone:       req.Phone,
		Email:       req.Email,
		IsPrimary:   req.IsPrimary,
		HasTelegram: req.HasTelegram,
		HasWhatsApp: req.HasWhatsApp,
		AddedBy:     addedBy,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	if person == nil {
		h.NotFound(c, "individual", uid)
		return
	}
	h.OK(c, dto.FromIndividual(person))
}

// Delete handles DELETE /api/v1/individuals/:uid.
func (h *IndividualHandler) Delete(c *gin.Context) {
	uid := c.Param("uid")
	deleted, err := h.service.Delete(c.Request.Context(), uid)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !deleted {
		h.NotFound(c, "individual", uid)
		return
	}
	h.NoContent(c)
}
