package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// SparePartUseCase alta y consulta de repuestos. La cantidad inicial se fija
// al crear; después solo la modifica el motor de stock.
type SparePartUseCase struct {
	partRepo     repository.SparePartRepository
	categoryRepo repository.CategoryRepository
}

// NewSparePartUseCase construye el caso de uso de repuestos.
func NewSparePartUseCase(partRepo repository.SparePartRepository, categoryRepo repository.CategoryRepository) *SparePartUseCase {
	return &SparePartUseCase{partRepo: partRepo, categoryRepo: categoryRepo}
}

// Create valida que la categoría exista y que no haya otro repuesto con el
// mismo nombre en esa categoría, y persiste.
func (uc *SparePartUseCase) Create(ctx context.Context, in dto.CreateSparePartRequest) (*dto.SparePartResponse, error) {
	if in.Name == "" || in.CategoryID == "" || in.Quantity < 0 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	category, err := uc.categoryRepo.GetByID(in.CategoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}
	existing, err := uc.partRepo.GetByNameAndCategory(in.Name, in.CategoryID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	part := &entity.SparePart{
		ID:         uuid.New().String(),
		CategoryID: in.CategoryID,
		Name:       in.Name,
		Quantity:   in.Quantity,
		UnitPrice:  in.UnitPrice,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.partRepo.Create(part); err != nil {
		return nil, err
	}
	return &dto.SparePartResponse{
		ID:           part.ID,
		Name:         part.Name,
		CategoryID:   part.CategoryID,
		CategoryName: category.Name,
		Quantity:     part.Quantity,
		UnitPrice:    part.UnitPrice,
		CreatedAt:    part.CreatedAt,
		UpdatedAt:    part.UpdatedAt,
	}, nil
}

// List devuelve todos los repuestos con el nombre de su categoría.
func (uc *SparePartUseCase) List(ctx context.Context) ([]dto.SparePartResponse, error) {
	rows, err := uc.partRepo.ListWithCategory()
	if err != nil {
		return nil, err
	}
	out := make([]dto.SparePartResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.SparePartResponse{
			ID:           row.Part.ID,
			Name:         row.Part.Name,
			CategoryID:   row.Part.CategoryID,
			CategoryName: row.CategoryName,
			Quantity:     row.Part.Quantity,
			UnitPrice:    row.Part.UnitPrice,
			CreatedAt:    row.Part.CreatedAt,
			UpdatedAt:    row.Part.UpdatedAt,
		})
	}
	return out, nil
}
