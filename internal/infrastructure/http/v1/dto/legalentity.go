package dto

import (
	"kontora/internal/domain/legalentity"
)

// CreateLegalEntityRequest for creating companies.
type CreateLegalEntityRequest struct {
	ShortName    string  `json:"shortName" binding:"required"`
	FullName     string  `json:"fullName" binding:"required"`
	OGRN         string  `json:"ogrn" binding:"required"`
	INN          string  `json:"inn" binding:"required"`
	KPP          string  `json:"kpp" binding:"required"`
	LegalAddress *string `json:"legalAddress"`
	PhoneNumber  *string `json:"phoneNumber"`
	Email        *string `json:"email"`
}

// UpdateLegalEntityRequest for updating company attributes. Nil leaves a
// field unchanged.
type UpdateLegalEntityRequest struct {
	LegalAddress *string `json:"legalAddress"`
	PhoneNumber  *string `json:"phoneNumber"`
	Email        *string `json:"email"`
	CuratorUID   *string `json:"curatorUid"`
}

// LegalEntityResponse is the read projection of a company.
type LegalEntityResponse struct {
	UID          string  `json:"uid"`
	ShortName    string  `json:"shortName"`
	FullName     string  `json:"fullName"`
	OGRN         string  `json:"ogrn"`
	INN          string  `json:"inn"`
	KPP          string  `json:"kpp"`
	LegalAddress *string `json:"legalAddress,omitempty"`
	PhoneNumber  *string `json:"phoneNumber,omitempty"`
	Email        *string `json:"email,omitempty"`
	CreatorUID   *string `json:"creatorUid,omitempty"`
	CuratorUID   *string `json:"curatorUid,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// FromLegalEntity maps the aggregate to its read projection.
func FromLegalEntity(e *legalentity.LegalEntity) LegalEntityResponse {
	return LegalEntityResponse{
		UID:          e.UID().String(),
		ShortName:    e.Name().ShortName(),
		FullName:     e.Name().FullName(),
		OGRN:         e.TaxNumber().OGRN(),
		INN:          e.TaxNumber().INN(),
		KPP:          e.TaxNumber().KPP(),
		LegalAddress: e.LegalAddress(),
		PhoneNumber:  e.PhoneNumber(),
		Email:        e.Email(),
		CreatorUID:   UIDString(e.CreatorUID()),
		CuratorUID:   UIDString(e.CuratorUID()),
		CreatedAt:    FormatTimestamp(e.CreatedAt()),
	}
}

// FromLegalEntities maps a list of aggregates.
func FromLegalEntities(list []*legalentity.LegalEntity) []LegalEntityResponse {
	result := make([]LegalEntityResponse, 0, len(list))
	for _, e := range list {
		result = append(result, FromLegalEntity(e))
	}
	return result
}
