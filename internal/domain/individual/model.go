// Package individual provides the physical-person bounded context: the
// Individual aggregate, its value objects and repository contract.
package individual

import (
	"time"

	"kontora/internal/core/id"
)

// Individual is the physical-person aggregate.
type Individual struct {
	uid               id.ID
	name              Name
	positionID        *int
	status            Status
	login             Login
	isCompanyEmployee bool
	creatorUID        *id.ID
	createdAt         time.Time
	contacts          []*ContactInfo
}

// NewIndividual constructs a person with a fresh uid and createdAt = now.
// Name, Status and Login are assumed already validated by their constructors.
func NewIndividual(name Name, status Status, creatorUID *id.ID, positionID *int, login Login, isCompanyEmployee bool) *Individual {
	return &Individual{
		uid:               id.New(),
		name:              name,
		positionID:        positionID,
		status:            status,
		login:             login,
		isCompanyEmployee: isCompanyEmployee,
		creatorUID:        creatorUID,
		createdAt:         time.Now().UTC(),
	}
}

// State is the flat persisted form of an Individual, used by storage
// adapters to rehydrate the aggregate without re-running creation logic.
type State struct {
	UID               id.ID
	FirstName         string
	LastName          string
	MiddleName        string
	PositionID        *int
	Status            Status
	Login             *string
	IsCompanyEmployee bool
	CreatorUID        *id.ID
	CreatedAt         time.Time
	Contacts          []ContactState
}

// Restore rehydrates an Individual from its persisted state.
func Restore(s State) *Individual {
	login := Login{}
	if s.Login != nil {
		login = Login{value: *s.Login}
	}
	contacts := make([]*ContactInfo, 0, len(s.Contacts))
	for _, cs := range s.Contacts {
		contacts = append(contacts, RestoreContact(cs))
	}
	return &Individual{
		uid:               s.UID,
		name:              Name{first: s.FirstName, last: s.LastName, middle: s.MiddleName},
		positionID:        s.PositionID,
		status:            s.Status,
		login:             login,
		isCompanyEmployee: s.IsCompanyEmployee,
		creatorUID:        s.CreatorUID,
		createdAt:         s.CreatedAt,
		contacts:          contacts,
	}
}

func (p *Individual) UID() id.ID              { return p.uid }
func (p *Individual) Name() Name              { return p.name }
func (p *Individual) PositionID() *int        { return p.positionID }
func (p *Individual) Status() Status          { return p.status }
func (p *Individual) Login() Login            { return p.login }
func (p *Individual) HasLogin() bool          { return !p.login.IsEmpty() }
func (p *Individual) IsCompanyEmployee() bool { return p.isCompanyEmployee }
func (p *Individual) CreatorUID() *id.ID      { return p.creatorUID }
func (p *Individual) CreatedAt() time.Time    { return p.createdAt }

// SetStatus replaces the lifecycle status.
func (p *Individual) SetStatus(status Status) { p.status = status }

// SetLogin replaces the login.
func (p *Individual) SetLogin(login Login) { p.login = login }

// SetPositionID replaces the position reference.
func (p *Individual) SetPositionID(positionID *int) { p.positionID = positionID }

// SetIsCompanyEmployee replaces the employee flag.
func (p *Individual) SetIsCompanyEmployee(v bool) { p.isCompanyEmployee = v }

// AddContact appends a contact. If the new contact is primary, any existing
// primary contact is demoted first, so at most one stays primary.
func (p *Individual) AddContact(contact *ContactInfo) {
	if contact.IsPrimary() {
		for _, c := range p.contacts {
			if c.IsPrimary() {
				c.MarkPrimary(false)
			}
		}
	}
	p.contacts = append(p.contacts, contact)
}

// Contacts returns the contact list.
func (p *Individual) Contacts() []*ContactInfo { return p.contacts }

// PrimaryContact returns the primary contact or nil.
func (p *Individual) PrimaryContact() *ContactInfo {
	for _, c := range p.contacts {
		if c.IsPrimary() {
			return c
		}
	}
	return nil
}
