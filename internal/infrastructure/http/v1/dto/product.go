package dto

import (
	"kontora/internal/domain/product"
)

// CreateProductRequest for creating products.
type CreateProductRequest struct {
	Name                string  `json:"name" binding:"required"`
	Status              string  `json:"status" binding:"required"`
	Type                string  `json:"type" binding:"required"`
	Unit                string  `json:"unit" binding:"required"`
	Sku                 string  `json:"sku" binding:"required"`
	GroupName           *string `json:"groupName"`
	SubgroupName        *string `json:"subgroupName"`
	Code1C              *string `json:"code1c"`
	SalePrice           *string `json:"salePrice"`
	AvgPurchaseCostYear *string `json:"avgPurchaseCostYear"`
	LastPurchaseCost    *string `json:"lastPurchaseCost"`
}

// UpdateProductRequest for updating product attributes. Nil leaves a field
// unchanged.
type UpdateProductRequest struct {
	Name                *string `json:"name"`
	Status              *string `json:"status"`
	Type                *string `json:"type"`
	Unit                *string `json:"unit"`
	GroupName           *string `json:"groupName"`
	SubgroupName        *string `json:"subgroupName"`
	Code1C              *string `json:"code1c"`
	SalePrice           *string `json:"salePrice"`
	AvgPurchaseCostYear *string `json:"avgPurchaseCostYear"`
	LastPurchaseCost    *string `json:"lastPurchaseCost"`
}

// ProductResponse is the read projection of a product.
type ProductResponse struct {
	UID                 string  `json:"uid"`
	Name                string  `json:"name"`
	Status              string  `json:"status"`
	Type                string  `json:"type"`
	Unit                string  `json:"unit"`
	GroupName           *string `json:"groupName,omitempty"`
	SubgroupName        *string `json:"subgroupName,omitempty"`
	Code1C              *string `json:"code1c,omitempty"`
	Sku                 string  `json:"sku"`
	SalePrice           *string `json:"salePrice,omitempty"`
	AvgPurchaseCostYear *string `json:"avgPurchaseCostYear,omitempty"`
	LastPurchaseCost    *string `json:"lastPurchaseCost,omitempty"`
	CreatorUID          *string `json:"creatorUid,omitempty"`
	CreatedAt           string  `json:"createdAt"`
	UpdatedAt           *string `json:"updatedAt,omitempty"`
	UpdatedByUID        *string `json:"updatedByUid,omitempty"`
}

// FromProduct maps the aggregate to its read projection.
func FromProduct(p *product.Product) ProductResponse {
	return ProductResponse{
		UID:                 p.UID().String(),
		Name:                p.Name().Value(),
		Status:              p.Status().String(),
		Type:                p.Type().String(),
		Unit:                p.Unit().Value(),
		GroupName:           p.GroupName(),
		SubgroupName:        p.SubgroupName(),
		Code1C:              p.Code1C(),
		Sku:                 p.Sku().Value(),
		SalePrice:           priceString(p.SalePrice()),
		AvgPurchaseCostYear: priceString(p.AvgPurchaseCostYear()),
		LastPurchaseCost:    priceString(p.LastPurchaseCost()),
		CreatorUID:          UIDString(p.CreatorUID()),
		CreatedAt:           FormatTimestamp(p.CreatedAt()),
		UpdatedAt:           FormatTimestampPtr(p.UpdatedAt()),
		UpdatedByUID:        UIDString(p.UpdatedByUID()),
	}
}

// FromProducts maps a list of aggregates.
func FromProducts(list []*product.Product) []ProductResponse {
	result := make([]ProductResponse, 0, len(list))
	for _, p := range list {
		result = append(result, FromProduct(p))
	}
	return result
}

func priceString(p *product.Price) *string {
	if p == nil {
		return nil
	}
	v := p.Value()
	return &v
}
