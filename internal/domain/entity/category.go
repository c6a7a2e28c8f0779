package entity

import "time"

// Category representa una categoría de repuestos. Entidad de consulta:
// SparePart la referencia vía foreign key y se valida su existencia antes
// de crear un repuesto.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
