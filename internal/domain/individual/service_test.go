package individual

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontora/internal/core/apperror"
	"kontora/internal/core/id"
)

// stubRepo is an in-memory Repository for service tests.
type stubRepo struct {
	persons map[id.ID]*Individual
}

func newStubRepo() *stubRepo {
	return &stubRepo{persons: make(map[id.ID]*Individual)}
}

func (r *stubRepo) FindByUID(_ context.Context, uid id.ID) (*Individual, error) {
	return r.persons[uid], nil
}

func (r *stubRepo) FindByLogin(_ context.Context, login string) (*Individual, error) {
	for _, p := range r.persons {
		if p.HasLogin() && p.Login().String() == login {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) FindAll(_ context.Context) ([]*Individual, error) {
	out := make([]*Individual, 0, len(r.persons))
	for _, p := range r.persons {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubRepo) FindByFilters(ctx context.Context, _ Filters) ([]*Individual, error) {
	return r.FindAll(ctx)
}

func (r *stubRepo) Save(_ context.Context, person *Individual) error {
	r.persons[person.UID()] = person
	return nil
}

func (r *stubRepo) Delete(_ context.Context, uid id.ID) (bool, error) {
	if _, ok := r.persons[uid]; !ok {
		return false, nil
	}
	delete(r.persons, uid)
	return true, nil
}

func (r *stubRepo) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	p, err := r.FindByLogin(ctx, login)
	return p != nil, err
}

func (r *stubRepo) FindCompanyEmployees(_ context.Context) ([]*Individual, error) {
	var out []*Individual
	for _, p := range r.persons {
		if p.IsCompanyEmployee() {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubRepo) FindByCreator(_ context.Context, creatorUID id.ID) ([]*Individual, error) {
	var out []*Individual
	for _, p := range r.persons {
		if p.CreatorUID() != nil && *p.CreatorUID() == creatorUID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubRepo) FindByStatus(_ context.Context, status Status) ([]*Individual, error) {
	var out []*Individual
	for _, p := range r.persons {
		if p.Status() == status {
			out = append(out, p)
		}
	}
	return out, nil
}

func validPersonParams() CreateParams {
	return CreateParams{
		FirstName:  "Иван",
		LastName:   "Иванов",
		MiddleName: "Иванович",
		Status:     "active",
	}
}

func TestService_Create(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)

	created, err := svc.Create(context.Background(), validPersonParams())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "Иванов Иван Иванович", created.Name().Full())
	assert.Equal(t, StatusActive, created.Status())
	assert.False(t, created.HasLogin())
	assert.Len(t, repo.persons, 1)
}

func TestService_Create_DuplicateLogin(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	login := "ivanov"
	first := validPersonParams()
	first.Login = &login
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second := validPersonParams()
	second.Login = &login
	_, err = svc.Create(ctx, second)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	assert.Equal(t, "Login already exists", appErr.Message)
	assert.Len(t, repo.persons, 1)
}

func TestService_Update_LoginConflict(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	login := "ivanov"
	first := validPersonParams()
	first.Login = &login
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second, err := svc.Create(ctx, validPersonParams())
	require.NoError(t, err)

	_, err = svc.Update(ctx, second.UID().String(), UpdateParams{Login: &login})
	require.Error(t, err)
	assert.True(t, apperror.IsDuplicate(err))
}

func TestService_Update_KeepOwnLogin(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	login := "ivanov"
	p := validPersonParams()
	p.Login = &login
	created, err := svc.Create(ctx, p)
	require.NoError(t, err)

	// Re-submitting the same login must not trip the uniqueness check.
	updated, err := svc.Update(ctx, created.UID().String(), UpdateParams{Login: &login})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "ivanov", updated.Login().String())
}

func TestService_AddContact(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validPersonParams())
	require.NoError(t, err)

	phone := "+79991234567"
	person, err := svc.AddContact(ctx, created.UID().String(), ContactParams{
		Phone:       &phone,
		IsPrimary:   true,
		HasTelegram: true,
		AddedBy:     id.New().String(),
	})
	require.NoError(t, err)
	require.NotNil(t, person)
	require.Len(t, person.Contacts(), 1)
	assert.True(t, person.Contacts()[0].IsPrimary())
}

func TestService_AddContact_RequiresPhoneOrEmail(t *testing.T) {
	svc := NewService(newStubRepo(), nil, nil)

	_, err := svc.AddContact(context.Background(), id.New().String(), ContactParams{
		AddedBy: id.New().String(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Contact must have a phone or an email")
}

func TestService_AddContact_RequiresAuthor(t *testing.T) {
	svc := NewService(newStubRepo(), nil, nil)

	phone := "+79991234567"
	_, err := svc.AddContact(context.Background(), id.New().String(), ContactParams{
		Phone: &phone,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Contact author is required")
}

func TestService_CompanyEmployees(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	employee := validPersonParams()
	employee.IsCompanyEmployee = true
	_, err := svc.Create(ctx, employee)
	require.NoError(t, err)

	_, err = svc.Create(ctx, validPersonParams())
	require.NoError(t, err)

	employees, err := svc.CompanyEmployees(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	assert.True(t, employees[0].IsCompanyEmployee())
}
