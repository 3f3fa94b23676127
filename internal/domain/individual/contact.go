package individual

import (
	"regexp"
	"strings"
	"time"

	"kontora/internal/core/apperror"
	"kontora/internal/core/id"
)

var (
	phoneRE = regexp.MustCompile(`^\+[0-9]{10,15}$`)
	emailRE = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+\.[A-Za-z0-9.\-]+$`)
)

// PhoneNumber is a contact phone in E.164 form.
type PhoneNumber struct {
	e164 string
}

// NewPhoneNumber validates and constructs a PhoneNumber.
func NewPhoneNumber(value string) (PhoneNumber, error) {
	value = strings.TrimSpace(value)
	if !phoneRE.MatchString(value) {
		return PhoneNumber{}, apperror.NewValidation("Phone must be in E.164 format, e.g. +79991234567").
			WithDetail("field", "phone")
	}
	return PhoneNumber{e164: value}, nil
}

// Value returns the E.164 string.
func (p PhoneNumber) Value() string { return p.e164 }

// EmailAddress is a contact e-mail address.
type EmailAddress struct {
	value string
}

// NewEmailAddress validates and constructs an EmailAddress.
func NewEmailAddress(value string) (EmailAddress, error) {
	value = strings.TrimSpace(value)
	if value == "" || !emailRE.MatchString(value) {
		return EmailAddress{}, apperror.NewValidation("Invalid email address").
			WithDetail("field", "email")
	}
	return EmailAddress{value: value}, nil
}

// Value returns the address string.
func (e EmailAddress) Value() string { return e.value }

// ContactInfo is an in-aggregate contact record of a person: a phone and/or
// e-mail, with messenger flags and its own audit trail. At most one contact
// of a person may be primary; the aggregate enforces that on AddContact.
type ContactInfo struct {
	phone       *PhoneNumber
	email       *EmailAddress
	isPrimary   bool
	hasTelegram bool
	hasWhatsApp bool
	addedBy     id.ID
	editedBy    *id.ID
	addedAt     time.Time
	editedAt    *time.Time
}

// NewContactInfo constructs a contact. Either phone or email may be nil.
func NewContactInfo(phone *PhoneNumber, email *EmailAddress, isPrimary, hasTelegram, hasWhatsApp bool, addedBy id.ID) *ContactInfo {
	return &ContactInfo{
		phone:       phone,
		email:       email,
		isPrimary:   isPrimary,
		hasTelegram: hasTelegram,
		hasWhatsApp: hasWhatsApp,
		addedBy:     addedBy,
		addedAt:     time.Now().UTC(),
	}
}

func (c *ContactInfo) Phone() *PhoneNumber  { return c.phone }
func (c *ContactInfo) Email() *EmailAddress { return c.email }
func (c *ContactInfo) IsPrimary() bool      { return c.isPrimary }
func (c *ContactInfo) HasTelegram() bool    { return c.hasTelegram }
func (c *ContactInfo) HasWhatsApp() bool    { return c.hasWhatsApp }
func (c *ContactInfo) AddedBy() id.ID       { return c.addedBy }
func (c *ContactInfo) EditedBy() *id.ID     { return c.editedBy }
func (c *ContactInfo) AddedAt() time.Time   { return c.addedAt }
func (c *ContactInfo) EditedAt() *time.Time { return c.editedAt }

// ContactState is the flat persisted form of a ContactInfo.
type ContactState struct {
	Phone       *string
	Email       *string
	IsPrimary   bool
	HasTelegram bool
	HasWhatsApp bool
	AddedBy     id.ID
	EditedBy    *id.ID
	AddedAt     time.Time
	EditedAt    *time.Time
}

// RestoreContact rehydrates a ContactInfo from its persisted state.
func RestoreContact(s ContactState) *ContactInfo {
	c := &ContactInfo{
		isPrimary:   s.IsPrimary,
		hasTelegram: s.HasTelegram,
		hasWhatsApp: s.HasWhatsApp,
		addedBy:     s.AddedBy,
		editedBy:    s.EditedBy,
		addedAt:     s.AddedAt,
		editedAt:    s.EditedAt,
	}
	if s.Phone != nil {
		c.phone = &PhoneNumber{e164: *s.Phone}
	}
	if s.Email != nil {
		c.email = &EmailAddress{value: *s.Email}
	}
	return c
}

// MarkPrimary sets or clears the primary flag.
func (c *ContactInfo) MarkPrimary(value bool) { c.isPrimary = value }

// Update replaces the contact data and stamps the editor.
func (c *ContactInfo) Update(phone *PhoneNumber, email *EmailAddress, hasTelegram, hasWhatsApp bool, editor id.ID) {
	c.phone = phone
	c.email = email
	c.hasTelegram = hasTelegram
	c.hasWhatsApp = hasWhatsApp
	c.editedBy = &editor
	now := time.Now().UTC()
	c.editedAt = &now
}
