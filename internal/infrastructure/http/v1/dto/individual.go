package dto

import (
	"kontora/internal/domain/individual"
)

// CreateIndividualRequest for creating persons.
type CreateIndividualRequest struct {
	FirstName         string  `json:"firstName" binding:"required"`
	LastName          string  `json:"lastName" binding:"required"`
	MiddleName        string  `json:"middleName"`
	Status            string  `json:"status" binding:"required"`
	PositionID        *int    `json:"positionId"`
	Login             *string `json:"login"`
	IsCompanyEmployee bool    `json:"isCompanyEmployee"`
}

// UpdateIndividualRequest for updating person attributes. Nil leaves a
// field unchanged.
type UpdateIndividualRequest struct {
	Status            *string `json:"status"`
	PositionID        *int    `json:"positionId"`
	Login             *string `json:"login"`
	IsCompanyEmployee *bool   `json:"isCompanyEmployee"`
}

// AddContactRequest for adding a contact to a person.
type AddContactRequest struct {
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	IsPrimary   bool    `json:"isPrimary"`
	HasTelegram bool    `json:"hasTelegram"`
	HasWhatsApp bool    `json:"hasWhatsApp"`
}

// ContactResponse is the read projection of a contact.
type ContactResponse struct {
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	IsPrimary   bool    `json:"isPrimary"`
	HasTelegram bool    `json:"hasTelegram"`
	HasWhatsApp bool    `json:"hasWhatsApp"`
	AddedBy     string  `json:"addedBy"`
	EditedBy    *string `json:"editedBy,omitempty"`
	AddedAt     string  `json:"addedAt"`
	EditedAt    *string `json:"editedAt,omitempty"`
}

// IndividualResponse is the read projection of a person.
type IndividualResponse struct {
	UID               string            `json:"uid"`
	FirstName         string            `json:"firstName"`
	LastName          string            `json:"lastName"`
	MiddleName        string            `json:"middleName"`
	FullName          string            `json:"fullName"`
	ShortName         string            `json:"shortName"`
	Status            string            `json:"status"`
	PositionID        *int              `json:"positionId,omitempty"`
	Login             *string           `json:"login,omitempty"`
	IsCompanyEmployee bool              `json:"isCompanyEmployee"`
	CreatorUID        *string           `json:"creatorUid,omitempty"`
	CreatedAt         string            `json:"createdAt"`
	Contacts          []ContactResponse `json:"contacts"`
}

// FromIndividual maps the aggregate to its read projection.
func FromIndividual(p *individual.Individual) IndividualResponse {
	contacts := make([]ContactResponse, 0, len(p.Contacts()))
	for _, c := range p.Contacts() {
		contacts = append(contacts, fromContact(c))
	}
	return IndividualResponse{
		UID:               p.UID().String(),
		FirstName:         p.Name().First(),
		LastName:          p.Name().Last(),
		MiddleName:        p.Name().Middle(),
		FullName:          p.Name().Full(),
		ShortName:         p.Name().Short(),
		Status:            p.Status().String(),
		PositionID:        p.PositionID(),
		Login:             p.Login().Value(),
		IsCompanyEmployee: p.IsCompanyEmployee(),
		CreatorUID:        UIDString(p.CreatorUID()),
		CreatedAt:         FormatTimestamp(p.CreatedAt()),
		Contacts:          contacts,
	}
}

// FromIndividuals maps a list of aggregates.
func FromIndividuals(list []*individual.Individual) []IndividualResponse {
	result := make([]IndividualResponse, 0, len(list))
	for _, p := range list {
		result = append(result, FromIndividual(p))
	}
	return result
}

func fromContact(c *individual.ContactInfo) ContactResponse {
	var phone, email *string
	if c.Phone() != nil {
		v := c.Phone().Value()
		phone = &v
	}
	if c.Email() != nil {
		v := c.Email().Value()
		email = &v
	}
	return ContactResponse{
		Phone:       phone,
		Email:       email,
		IsPrimary:   c.IsPrimary(),
		HasTelegram: c.HasTelegram(),
		HasWhatsApp: c.HasWhatsApp(),
		AddedBy:     c.AddedBy().String(),
		EditedBy:    UIDString(c.EditedBy()),
		AddedAt:     FormatTimestamp(c.AddedAt()),
		EditedAt:    FormatTimestampPtr(c.EditedAt()),
	}
}
