package handlers

import (
	"github.com/gin-gonic/gin"

	"kontora/internal/domain/product"
	"kontora/internal/infrastructure/http/v1/dto"
)

// ProductHandler serves the catalog endpoints.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// Create handles POST /api/v1/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	entity, err := h.service.Create(c.Request.Context(), product.CreateParams{
		Name:                req.Name,
		Status:              req.Status,
		Type:                req.Type,
		Unit:                req.Unit,
		Sku:                 req.Sku,
		GroupName:           req.GroupName,
		SubgroupName:        req.SubgroupName,
		Code1C:              req.Code1C,
		SalePrice:           req.SalePrice,
		AvgPurchaseCostYear: req.AvgPurchaseCostYear,
		LastPurchaseCost:    req.LastPurchaseCost,
		CreatorUID:          h.ActorUID(c),
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, entity.UID().String())
}

// Get handles GET /api/v1/products/:uid.
func (h *ProductHandler) Get(c *gin.Context) {
	uid := c.Param("uid")
	entity, err := h.service.Get(c.Request.Context(), uid)
	if err != nil {
		h.Error(c, err)
		return
	}
	if entity == nil {
		h.NotFound(c, "product", uid)
		return
	}
	h.OK(c, dto.FromProduct(entity))
}

// List handles GET /api/v1/products.
func (h *ProductHandler) List(c *gin.Context) {
	filters := product.Filters{
		Name:      c.Query("name"),
		Status:    c.Query("status"),
		Type:      c.Query("type"),
		Sku:       c.Query("sku"),
		Code1C:    c.Query("code1c"),
		GroupName: c.Query("groupName"),
	}

	list, err := h.service.List(c.Request.Context(), filters)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, dto.NewListResponse(dto.FromProducts(list)))
}

// Update handles PATCH /api/v1/products/:uid.
func (h *ProductHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	uid := c.Param("uid")
	entity, err := h.service.Update(c.Request.Context(), uid, product.UpdateParams{
		Name:                req.Name,
		Status:              req.Status,
		Type:                req.Type,
		Unit:                req.Unit,
		GroupName:           req.GroupName,
		SubgroupName:        req.SubgroupName,
		Code1C:              req.Code1C,
		SalePrice:           req.SalePrice,
		AvgPurchaseCostYear: req.AvgPurchaseCostYear,
		LastPurchaseCost:    req.LastPurchaseCost,
		UpdaterUID:          h.ActorUID(c),
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	if entity == nil {
		h.NotFound(c, "product", uid)
		return
	}
	h.OK(c, dto.FromProduct(entity))
}

// Delete handles DELETE /api/v1/products/:uid.
func (h *ProductHandler) Delete(c *gin.Context) {
	uid := c.Param("uid")
	deleted, err := h.service.Delete(c.Request.Context(), uid)
	if err != nil {
		h.Error(c, err)
		return
	}
	if !deleted {
		h.NotFound(c, "product", uid)
		return
	}
	h.NoContent(c)
}
