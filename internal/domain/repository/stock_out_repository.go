package repository

import "github.com/jhoicas/repuestos-api/internal/domain/entity"

// StockOutRow fila de salida con nombres de repuesto y categoría (para listados).
type StockOutRow struct {
	Event        entity.StockOut
	PartName     string
	CategoryName string
}

// StockOutRepository define el puerto de persistencia para StockOut (DIP).
// Update y Delete solo se invocan dentro de una transacción del motor de
// stock, después de revertir el efecto original sobre el repuesto.
type StockOutRepository interface {
	Create(event *entity.StockOut) error
	// GetForUpdate bloquea la fila del evento (SELECT FOR UPDATE).
	// Retorna (nil, nil) si el evento no existe.
	GetForUpdate(id string) (*entity.StockOut, error)
	Update(event *entity.StockOut) error
	Delete(id string) error
	ListWithPart() ([]StockOutRow, error)
}
