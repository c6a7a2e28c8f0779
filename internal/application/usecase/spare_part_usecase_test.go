package usecase_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCategoryRepo struct {
	categories map[string]*entity.Category // clave: id
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) Create(category *entity.Category) error {
	r.categories[category.ID] = category
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	if c, ok := r.categories[id]; ok {
		return c, nil
	}
	return nil, nil
}

func (r *fakeCategoryRepo) GetByName(name string) (*entity.Category, error) {
	for _, c := range r.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCategoryRepo) List() ([]*entity.Category, error) {
	out := make([]*entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

type fakePartRepo struct {
	parts map[string]*entity.SparePart
}

func newFakePartRepo() *fakePartRepo {
	return &fakePartRepo{parts: map[string]*entity.SparePart{}}
}

func (r *fakePartRepo) Create(part *entity.SparePart) error {
	r.parts[part.ID] = part
	return nil
}

func (r *fakePartRepo) GetByID(id string) (*entity.SparePart, error) {
	if p, ok := r.parts[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

func (r *fakePartRepo) GetByNameAndCategory(name, categoryID string) (*entity.SparePart, error) {
	for _, p := range r.parts {
		if p.Name == name && p.CategoryID == categoryID {
			return p, nil
		}
	}
	return nil, nil
}

func (r *fakePartRepo) GetForUpdate(id string) (*entity.SparePart, error) {
	if p, ok := r.parts[id]; ok {
		return p, nil
	}
	return nil, nil
}

func (r *fakePartRepo) UpdateQuantity(id string, quantity int) error {
	p, ok := r.parts[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Quantity = quantity
	return nil
}

func (r *fakePartRepo) ListWithCategory() ([]repository.SparePartRow, error) {
	rows := make([]repository.SparePartRow, 0, len(r.parts))
	for _, p := range r.parts {
		rows = append(rows, repository.SparePartRow{Part: *p, CategoryName: "frenos"})
	}
	return rows, nil
}

func seedCategory(repo *fakeCategoryRepo, id, name string) {
	repo.categories[id] = &entity.Category{ID: id, Name: name, CreatedAt: time.Now()}
}

// ──────────────────────────────────────────────────────────────────────────────
// SparePartUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestSparePartCreate_OK(t *testing.T) {
	partRepo := newFakePartRepo()
	categoryRepo := newFakeCategoryRepo()
	seedCategory(categoryRepo, "c1", "frenos")
	uc := usecase.NewSparePartUseCase(partRepo, categoryRepo)

	out, err := uc.Create(context.Background(), dto.CreateSparePartRequest{
		Name:       "pastilla delantera",
		CategoryID: "c1",
		Quantity:   10,
		UnitPrice:  decimal.NewFromInt(35),
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "pastilla delantera", out.Name)
	assert.Equal(t, "frenos", out.CategoryName)
	assert.Equal(t, 10, out.Quantity)
	assert.Len(t, partRepo.parts, 1)
}

func TestSparePartCreate_CategoriaInexistente(t *testing.T) {
	uc := usecase.NewSparePartUseCase(newFakePartRepo(), newFakeCategoryRepo())

	_, err := uc.Create(context.Background(), dto.CreateSparePartRequest{
		Name:       "pastilla delantera",
		CategoryID: "no-existe",
		Quantity:   1,
		UnitPrice:  decimal.NewFromInt(35),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSparePartCreate_NombreDuplicadoEnCategoria(t *testing.T) {
	partRepo := newFakePartRepo()
	categoryRepo := newFakeCategoryRepo()
	seedCategory(categoryRepo, "c1", "frenos")
	uc := usecase.NewSparePartUseCase(partRepo, categoryRepo)

	req := dto.CreateSparePartRequest{
		Name:       "pastilla delantera",
		CategoryID: "c1",
		Quantity:   1,
		UnitPrice:  decimal.NewFromInt(35),
	}
	_, err := uc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestSparePartCreate_EntradaInvalida(t *testing.T) {
	categoryRepo := newFakeCategoryRepo()
	seedCategory(categoryRepo, "c1", "frenos")
	uc := usecase.NewSparePartUseCase(newFakePartRepo(), categoryRepo)

	cases := []dto.CreateSparePartRequest{
		{Name: "", CategoryID: "c1", Quantity: 1},
		{Name: "bujía", CategoryID: "", Quantity: 1},
		{Name: "bujía", CategoryID: "c1", Quantity: -1},
		{Name: "bujía", CategoryID: "c1", Quantity: 1, UnitPrice: decimal.NewFromInt(-5)},
	}
	for _, in := range cases {
		_, err := uc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// CategoryUseCase
// ──────────────────────────────────────────────────────────────────────────────

func TestCategoryCreate_OK(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "filtros"})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "filtros", out.Name)
}

func TestCategoryCreate_NombreDuplicado(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "filtros"})
	require.NoError(t, err)

	_, err = uc.Create(context.Background(), dto.CreateCategoryRequest{Name: "filtros"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestCategoryList_OrdenadoPorNombre(t *testing.T) {
	repo := newFakeCategoryRepo()
	seedCategory(repo, "c2", "suspensión")
	seedCategory(repo, "c1", "frenos")
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Equal(t, "frenos", out[0].Name)
	assert.Equal(t, "suspensión", out[1].Name)
}
