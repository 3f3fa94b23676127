// Package legalentity provides the legal-entity (company) bounded context:
// the LegalEntity aggregate, CompanyName and TaxNumber value objects and the
// repository contract.
package legalentity

import (
	"strings"
	"time"

	"kontora/internal/core/id"
)

// LegalEntity is the company aggregate. The tax number and name are
// validated by their value objects; INN uniqueness is the creation
// handler's responsibility, checked against the repository before
// construction.
type LegalEntity struct {
	uid          id.ID
	name         CompanyName
	taxNumber    TaxNumber
	legalAddress *string
	phoneNumber  *string
	email        *string
	creatorUID   *id.ID
	curatorUID   *id.ID
	createdAt    time.Time
}

// NewLegalEntity constructs a company with a fresh uid and createdAt = now.
func NewLegalEntity(name CompanyName, taxNumber TaxNumber, creatorUID *id.ID) *LegalEntity {
	return &LegalEntity{
		uid:        id.New(),
		name:       name,
		taxNumber:  taxNumber,
		creatorUID: creatorUID,
		createdAt:  time.Now().UTC(),
	}
}

// State is the flat persisted form of a LegalEntity.
type State struct {
	UID          id.ID
	ShortName    string
	FullName     string
	OGRN         string
	INN          string
	KPP          string
	LegalAddress *string
	PhoneNumber  *string
	Email        *string
	CreatorUID   *id.ID
	CuratorUID   *id.ID
	CreatedAt    time.Time
}

// Restore rehydrates a LegalEntity from its persisted state.
func Restore(s State) *LegalEntity {
	return &LegalEntity{
		uid:          s.UID,
		name:         CompanyName{shortName: s.ShortName, fullName: s.FullName},
		taxNumber:    TaxNumber{ogrn: s.OGRN, inn: s.INN, kpp: s.KPP},
		legalAddress: s.LegalAddress,
		phoneNumber:  s.PhoneNumber,
		email:        s.Email,
		creatorUID:   s.CreatorUID,
		curatorUID:   s.CuratorUID,
		createdAt:    s.CreatedAt,
	}
}

func (e *LegalEntity) UID() id.ID            { return e.uid }
func (e *LegalEntity) Name() CompanyName     { return e.name }
func (e *LegalEntity) TaxNumber() TaxNumber  { return e.taxNumber }
func (e *LegalEntity) LegalAddress() *string { return e.legalAddress }
func (e *LegalEntity) PhoneNumber() *string  { return e.phoneNumber }
func (e *LegalEntity) Email() *string        { return e.email }
func (e *LegalEntity) CreatorUID() *id.ID    { return e.creatorUID }
func (e *LegalEntity) CuratorUID() *id.ID    { return e.curatorUID }
func (e *LegalEntity) CreatedAt() time.Time  { return e.createdAt }

// SetLegalAddress replaces the legal address; input is trimmed, blank maps to nil.
func (e *LegalEntity) SetLegalAddress(address *string) { e.legalAddress = trimOptional(address) }

// SetPhoneNumber replaces the contact phone.
func (e *LegalEntity) SetPhoneNumber(phone *string) { e.phoneNumber = trimOptional(phone) }

// SetEmail replaces the contact e-mail.
func (e *LegalEntity) SetEmail(email *string) { e.email = trimOptional(email) }

// SetCuratorUID replaces the curator reference.
func (e *LegalEntity) SetCuratorUID(curatorUID *id.ID) { e.curatorUID = curatorUID }

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
