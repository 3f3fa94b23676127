package handlers

import (
	"github.com/gin-gonic/gin"

	"kontora/internal/domain/equipment"
	"kontora/internal/infrastructure/http/v1/dto"
)

// EquipmentHandler serves the equipment endpoints.
type EquipmentHandler struct {
	*BaseHandler
	service *equipment.Service
}

// NewEquipmentHandler creates a new equipment handler.
func NewEquipmentHandler(base *BaseHandler, service *equipment.Service) *EquipmentHandler {
	return &EquipmentHandler{BaseHandler: base, service: service}
}

// Create handles POST /api/v1/equipment.
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req dto.CreateEquipmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entity, err := h.service.Create(c.Request.Context(), equipment.CreateParams{
		Name:       req.Name,
		Status:     req.Status,
		Warehouse:  req.Warehouse,
		CreatorUID: h.ActorUID(c),
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, entity.UID().String())
}

// Get handles GET /api/v1/equipment/:uid.
func (h *EquipmentHandler) Get(c *gin.Context) {
	uid := c.Param("uid")
	entity, err := h.service.Get(c.Request.Context(), uid)
	if err != nil {
		h.Error(c, err)
		return
	}
	if entity == nil {
		h.NotFound(c, "equipment", uid)
		return
	}
	h.OK(c, dto.FromEquipment(entity))
}

// List handles GET /api/v1/equipment.
func (h *EquipmentHandler) List(c *gin.Context) {
	filters := equipment.Filters{
		Name:      c.Query("name"),
		Status:    c.Query("status"),
		Warehouse: c.Query("warehouse"),
	}

	list, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(dto.FromEquipmentList(list)))
}

// ChangeStatus handles PATCH /api/v1/equipment/:uid/status.
func (h *EquipmentHandler) ChangeStatus(c *gin.Context) {
	var req dto.ChangeEquipmentStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	uid := c.Param("uid")
	entity, err := h.service.ChangeStatus(c.Request.Context(), uid, req.Status, h.ActorUID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	if entity == nil {
		h.NotFound(c, "equipment", uid)
		return
	}
	h.OK(c, dto.FromEquipment(entity))
}

// Update handles PATCH /api/v1/equipment/:uid.
func (h *EquipmentHandler) Update(c *gin.Context) {
	var req dto.UpdateEquipmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	mountingDate, skziFrom, skziTo, err := req.Dates()
	if err != nil {
		h.Error(c, err)
		return
	}

	uid := c.Param("uid")
	entity, err := h.service.Update(c.Request.Context(), uid, equipment.UpdateParams{
		TransportUID:       req.TransportUID,
		Warehouse:          req.Warehouse,
		IssuedToUID:        req.IssuedToUID,
		PurchaseInvoiceUID: req.PurchaseInvoiceUID,
		SupplierUID:        req.SupplierUID,
		IssueDocUID:        req.IssueDocUID,
		MountingDate:       mountingDate,
		ShipmentInvoiceUID: req.ShipmentInvoiceUID,
		CustomerUID:        req.CustomerUID,
		SkziFrom:           skziFrom,
		SkziTo:             skziTo,
		UpdaterUID:         h.ActorUID(c),
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	if entity == nil {
		h.NotFound(c, "equipment", uid)
		return
	}
	h.OK(c, dto.FromEquipment(entity))
}

// Delete handles DELETE /api/v1/equipment/:uid.
func (h *EquipmentHandler) Delete(c *gin.Context) {
	uid := c.Param("uid")
	deleted, err := h.service.Delete(c.Request.Context(), uid)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !deleted {
		h.NotFound(c, "equipment", uid)
		return
	}
	h.NoContent(c)
}
