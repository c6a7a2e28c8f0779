package repository

import "github.com/jhoicas/repuestos-api/internal/domain/entity"

// SparePartRow fila de repuesto con el nombre de su categoría (para listados).
type SparePartRow struct {
	Part         entity.SparePart
	CategoryName string
}

// SparePartRepository define el puerto de persistencia para SparePart (DIP).
// Quantity solo se modifica vía UpdateQuantity dentro de una transacción del
// motor de stock, con la fila bloqueada por GetForUpdate.
type SparePartRepository interface {
	Create(part *entity.SparePart) error
	GetByID(id string) (*entity.SparePart, error)
	GetByNameAndCategory(name, categoryID string) (*entity.SparePart, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) y la devuelve.
	// Retorna (nil, nil) si el repuesto no existe.
	GetForUpdate(id string) (*entity.SparePart, error)
	UpdateQuantity(id string, quantity int) error
	ListWithCategory() ([]SparePartRow, error)
}
