package user

import (
	"time"

	"kontora/internal/core/id"
)

// User is the account aggregate. The password hash is opaque here; hashing
// and verification are the auth context's concern.
type User struct {
	uid          id.ID
	email        EmailAddress
	status       Status
	passwordHash string
	createdAt    time.Time
	updatedAt    *time.Time
	lastLoginAt  *time.Time
}

// NewUser constructs an active account with a fresh uid and createdAt = now.
func NewUser(email EmailAddress, passwordHash string) *User {
	return &User{
		uid:          id.New(),
		email:        email,
		status:       StatusActive,
		passwordHash: passwordHash,
		createdAt:    time.Now().UTC(),
	}
}

// State is the flat persisted form of a User.
type State struct {
	UID          id.ID
	Email        string
	Status       Status
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	LastLoginAt  *time.Time
}

// Restore rehydrates a User from its persisted state.
func Restore(s State) *User {
	return &User{
		uid:          s.UID,
		email:        EmailAddress{value: s.Email},
		status:       s.Status,
		passwordHash: s.PasswordHash,
		createdAt:    s.CreatedAt,
		updatedAt:    s.UpdatedAt,
		lastLoginAt:  s.LastLoginAt,
	}
}

func (u *User) UID() id.ID              { return u.uid }
func (u *User) Email() EmailAddress     { return u.email }
func (u *User) Status() Status          { return u.status }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() *time.Time   { return u.updatedAt }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }

// SetEmail replaces the login identity.
func (u *User) SetEmail(email EmailAddress) {
	u.email = email
	u.touch()
}

// SetStatus replaces the lifecycle status.
func (u *User) SetStatus(status Status) {
	u.status = status
	u.touch()
}

// SetPasswordHash replaces the stored credential hash.
func (u *User) SetPasswordHash(hash string) {
	u.passwordHash = hash
	u.touch()
}

// StampLogin records a successful sign-in.
func (u *User) StampLogin(at time.Time) {
	t := at.UTC()
	u.lastLoginAt = &t
	u.touch()
}

func (u *User) touch() {
	now := time.Now().UTC()
	u.updatedAt = &now
}
