package individual

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontora/internal/core/id"
)

func mustContact(t *testing.T, phone, email string, primary bool) *ContactInfo {
	t.Helper()
	var p *PhoneNumber
	var e *EmailAddress
	if phone != "" {
		v, err := NewPhoneNumber(phone)
		require.NoError(t, err)
		p = &v
	}
	if email != "" {
		v, err := NewEmailAddress(email)
		require.NoError(t, err)
		e = &v
	}
	return NewContactInfo(p, e, primary, false, false, id.New())
}

func TestIndividual_AddContact_SinglePrimary(t *testing.T) {
	name, err := NewName("Иван", "Иванов", "Иванович")
	require.NoError(t, err)
	person := NewIndividual(name, StatusActive, nil, nil, Login{}, false)

	first := mustContact(t, "+79991234567", "", true)
	second := mustContact(t, "", "ivanov@example.com", true)

	person.AddContact(first)
	person.AddContact(second)

	require.Len(t, person.Contacts(), 2)
	assert.False(t, first.IsPrimary())
	assert.True(t, second.IsPrimary())
	assert.Same(t, second, person.PrimaryContact())
}

func TestIndividual_AddContact_NonPrimaryKeepsExisting(t *testing.T) {
	name, err := NewName("Иван", "Иванов", "Иванович")
	require.NoError(t, err)
	person := NewIndividual(name, StatusActive, nil, nil, Login{}, false)

	primary := mustContact(t, "+79991234567", "", true)
	secondary := mustContact(t, "+79997654321", "", false)

	person.AddContact(primary)
	person.AddContact(secondary)

	assert.True(t, primary.IsPrimary())
	assert.Same(t, primary, person.PrimaryContact())
}

func TestNewPhoneNumber(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid russian", "+79991234567", false},
		{"valid short country", "+4915112345678", false},
		{"missing plus", "79991234567", true},
		{"too short", "+7999123", true},
		{"letters", "+7999ABC4567", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPhoneNumber(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRestore_RebuildsContacts(t *testing.T) {
	phone := "+79991234567"
	addedBy := id.New()
	createdAt := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	person := Restore(State{
		UID:        id.New(),
		FirstName:  "Иван",
		LastName:   "Иванов",
		MiddleName: "Иванович",
		Status:     StatusActive,
		CreatedAt:  createdAt,
		Contacts: []ContactState{
			{Phone: &phone, IsPrimary: true, HasTelegram: true, AddedBy: addedBy, AddedAt: createdAt},
		},
	})

	require.Len(t, person.Contacts(), 1)
	c := person.Contacts()[0]
	require.NotNil(t, c.Phone())
	assert.Equal(t, phone, c.Phone().Value())
	assert.True(t, c.IsPrimary())
	assert.True(t, c.HasTelegram())
	assert.Equal(t, addedBy, c.AddedBy())
	assert.Equal(t, createdAt, person.CreatedAt())
}

func TestFilters_IsEmpty(t *testing.T) {
	assert.True(t, Filters{}.IsEmpty())

	uid := id.New()
	assert.False(t, Filters{UID: &uid}.IsEmpty())
	assert.False(t, Filters{CreatorUID: &uid}.IsEmpty())
	assert.False(t, Filters{LastName: "Иванов"}.IsEmpty())

	employee := true
	assert.False(t, Filters{IsCompanyEmployee: &employee}.IsEmpty())
}
