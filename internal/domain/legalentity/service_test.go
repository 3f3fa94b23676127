package legalentity

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
	companies map[id.ID]*LegalEntity
}

func newStubRepo() *stubRepo {
	return &stubRepo{companies: make(map[id.ID]*LegalEntity)}
}

func (r *stubRepo) FindByUID(_ context.Context, uid id.ID) (*LegalEntity, error) {
	return r.companies[uid], nil
}

func (r *stubRepo) FindByINN(_ context.Context, inn string) (*LegalEntity, error) {
	for _, e := range r.companies {
		if e.TaxNumber().INN() == inn {
			return e, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) FindAll(_ context.Context) ([]*LegalEntity, error) {
	out := make([]*LegalEntity, 0, len(r.companies))
	for _, e := range r.companies {
		out = append(out, e)
	}
	return out, nil
}

func (r *stubRepo) FindByFilters(ctx context.Context, _ Filters) ([]*LegalEntity, error) {
	return r.FindAll(ctx)
}

func (r *stubRepo) Save(_ context.Context, entity *LegalEntity) error {
	r.companies[entity.UID()] = entity
	return nil
}

func (r *stubRepo) Delete(_ context.Context, uid id.ID) (bool, error) {
	if _, ok := r.companies[uid]; !ok {
		return false, nil
	}
	delete(r.companies, uid)
	return true, nil
}

func (r *stubRepo) ExistsByINN(ctx context.Context, inn string) (bool, error) {
	e, err := r.FindByINN(ctx, inn)
	return e != nil, err
}

func (r *stubRepo) FindByCurator(_ context.Context, curatorUID id.ID) ([]*LegalEntity, error) {
	var out []*LegalEntity
	for _, e := range r.companies {
		if e.CuratorUID() != nil && *e.CuratorUID() == curatorUID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *stubRepo) FindByCreator(_ context.Context, creatorUID id.ID) ([]*LegalEntity, error) {
	var out []*LegalEntity
	for _, e := range r.companies {
		if e.CreatorUID() != nil && *e.CreatorUID() == creatorUID {
			out = append(out, e)
		}
	}
	return out, nil
}

func validCompanyParams() CreateParams {
	return CreateParams{
		ShortName: `ООО "Ромашка"`,
		FullName:  `Общество с ограниченной ответственностью "Ромашка"`,
		OGRN:      "1107746232593",
		INN:       "7701870742",
		KPP:       "770101001",
	}
}

func TestService_Create(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)

	created, err := svc.Create(context.Background(), validCompanyParams())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "7701870742", created.TaxNumber().INN())
	assert.Equal(t, `ООО "Ромашка"`, created.Name().ShortName())
	assert.Len(t, repo.companies, 1)
}

func TestService_Create_DuplicateINN(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCompanyParams())
	require.NoError(t, err)

	second := validCompanyParams()
	second.ShortName = `ООО "Лютик"`
	_, err = svc.Create(ctx, second)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	assert.Equal(t, "Legal entity with this INN already exists", appErr.Message)
	assert.Len(t, repo.companies, 1)
}

func TestService_Create_InvalidTaxNumber(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)

	p := validCompanyParams()
	p.OGRN = "1107746232594"
	_, err := svc.Create(context.Background(), p)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
	assert.Len(t, repo.companies, 0)
}

func TestService_Update(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCompanyParams())
	require.NoError(t, err)

	address := "г. Москва, ул. Тверская, д. 1"
	curator := id.New().String()
	updated, err := svc.Update(ctx, created.UID().String(), UpdateParams{
		LegalAddress: &address,
		CuratorUID:   &curator,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.NotNil(t, updated.LegalAddress())
	assert.Equal(t, address, *updated.LegalAddress())
	require.NotNil(t, updated.CuratorUID())
	assert.Equal(t, curator, updated.CuratorUID().String())
}

func TestService_Get_UnknownUID(t *testing.T) {
	svc := NewService(newStubRepo(), nil, nil)

	got, err := svc.Get(context.Background(), id.New().String())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestService_Create_DuplicateINN_PaddedInput(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCompanyParams())
	require.NoError(t, err)

	padded := validCompanyParams()
	padded.INN = "  " + padded.INN + "  "
	padded.OGRN = " " + padded.OGRN + " "
	_, err = svc.Create(ctx, padded)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeConflict, appErr.Code)
	assert.Equal(t, "Legal entity with this INN already exists", appErr.Message)
}
