package product

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
	products  map[id.ID]*Product
	saveCalls int
}

func newStubRepo() *stubRepo {
	return &stubRepo{products: make(map[id.ID]*Product)}
}

func (r *stubRepo) FindByUID(_ context.Context, uid id.ID) (*Product, error) {
	return r.products[uid], nil
}

func (r *stubRepo) FindBySKU(_ context.Context, sku string) (*Product, error) {
	for _, p := range r.products {
		if p.Sku().Value() == sku {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) FindByCode1C(_ context.Context, code1C string) (*Product, error) {
	for _, p := range r.products {
		if p.Code1C() != nil && *p.Code1C() == code1C {
			return p, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) FindAll(_ context.Context) ([]*Product, error) {
	out := make([]*Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *stubRepo) FindByFilters(ctx context.Context, _ Filters) ([]*Product, error) {
	return r.FindAll(ctx)
}

func (r *stubRepo) FindByCreator(_ context.Context, creatorUID id.ID) ([]*Product, error) {
	var out []*Product
	for _, p := range r.products {
		if p.CreatorUID() != nil && *p.CreatorUID() == creatorUID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubRepo) Save(_ context.Context, p *Product) error {
	r.saveCalls++
	r.products[p.UID()] = p
	return nil
}

func (r *stubRepo) Delete(_ context.Context, uid id.ID) (bool, error) {
	if _, ok := r.products[uid]; !ok {
		return false, nil
	}
	delete(r.products, uid)
	return true, nil
}

func (r *stubRepo) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	p, err := r.FindBySKU(ctx, sku)
	return p != nil, err
}

func (r *stubRepo) ExistsByCode1C(ctx context.Context, code1C string) (bool, error) {
	p, err := r.FindByCode1C(ctx, code1C)
	return p != nil, err
}

func validCreateParams() CreateParams {
	return CreateParams{
		Name:   "Роутер MikroTik hAP ac2",
		Status: "active",
		Type:   "item",
		Unit:   "шт",
		Sku:    "RT-0001",
	}
}

func TestService_Create(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	sale := "1500,50"
	p := validCreateParams()
	p.SalePrice = &sale

	created, err := svc.Create(ctx, p)
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "RT-0001", created.Sku().Value())
	assert.Equal(t, StatusActive, created.Status())
	assert.Equal(t, TypeItem, created.Type())
	require.NotNil(t, created.SalePrice())
	assert.Equal(t, "1500.50", created.SalePrice().Value())
	assert.Equal(t, 1, repo.saveCalls)
}

func TestService_Create_DuplicateSKU(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateParams())
	require.NoError(t, err)

	_, err = svc.Create(ctx, validCreateParams())
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
	assert.Equal(t, "Product with this SKU already exists", appErr.Message)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestService_Create_Duplicate1CCode(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	code := "НФ-00001234"
	first := validCreateParams()
	first.Code1C = &code
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second := validCreateParams()
	second.Sku = "RT-0002"
	second.Code1C = &code
	_, err = svc.Create(ctx, second)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Product with this 1C code already exists", appErr.Message)
}

func TestService_Create_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateParams)
	}{
		{"blank name", func(p *CreateParams) { p.Name = "  " }},
		{"unknown status", func(p *CreateParams) { p.Status = "deleted" }},
		{"unknown type", func(p *CreateParams) { p.Type = "bundle" }},
		{"blank unit", func(p *CreateParams) { p.Unit = "" }},
		{"blank sku", func(p *CreateParams) { p.Sku = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newStubRepo()
			svc := NewService(repo, nil, nil)

			p := validCreateParams()
			tt.mutate(&p)

			_, err := svc.Create(context.Background(), p)
			require.Error(t, err)
			assert.True(t, apperror.IsValidation(err))
			assert.Equal(t, 0, repo.saveCalls)
		})
	}
}

func TestService_Update(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateParams())
	require.NoError(t, err)

	status := "inactive"
	price := "999"
	actor := id.New().String()
	updated, err := svc.Update(ctx, created.UID().String(), UpdateParams{
		Status:     &status,
		SalePrice:  &price,
		UpdaterUID: &actor,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, StatusInactive, updated.Status())
	require.NotNil(t, updated.SalePrice())
	assert.Equal(t, "999.00", updated.SalePrice().Value())
	require.NotNil(t, updated.UpdatedAt())
	require.NotNil(t, updated.UpdatedByUID())
	assert.Equal(t, actor, updated.UpdatedByUID().String())
}

func TestService_Update_UnknownUID(t *testing.T) {
	svc := NewService(newStubRepo(), nil, nil)

	updated, err := svc.Update(context.Background(), id.New().String(), UpdateParams{})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestService_Delete(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateParams())
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.UID().String())
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(ctx, created.UID().String())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestService_Create_DuplicateSKU_PaddedInput(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, validCreateParams())
	require.NoError(t, err)

	padded := validCreateParams()
	padded.Sku = "  RT-0001  "
	_, err = svc.Create(ctx, padded)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
	assert.Equal(t, 1, repo.saveCalls)
}

func TestService_Update_Code1C(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, validCreateParams())
	require.NoError(t, err)

	code := "НФ-00001234"
	updated, err := svc.Update(ctx, created.UID().String(), UpdateParams{Code1C: &code})
	require.NoError(t, err)
	require.NotNil(t, updated.Code1C())
	assert.Equal(t, code, *updated.Code1C())

	// resubmitting the product's own code is not a conflict
	updated, err = svc.Update(ctx, created.UID().String(), UpdateParams{Code1C: &code})
	require.NoError(t, err)
	require.NotNil(t, updated.Code1C())
	assert.Equal(t, code, *updated.Code1C())
}

func TestService_Update_Code1CConflict(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	code := "НФ-00001234"
	first := validCreateParams()
	first.Code1C = &code
	_, err := svc.Create(ctx, first)
	require.NoError(t, err)

	second := validCreateParams()
	second.Sku = "RT-0002"
	other, err := svc.Create(ctx, second)
	require.NoError(t, err)

	_, err = svc.Update(ctx, other.UID().String(), UpdateParams{Code1C: &code})
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "Product with this 1C code already exists", appErr.Message)
}
