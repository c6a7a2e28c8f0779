package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SparePart representa un repuesto del inventario.
// Quantity solo se modifica a través del motor de ajuste de stock
// (entradas suman, salidas restan); nunca puede quedar negativa.
type SparePart struct {
	ID         string
	CategoryID string
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal // precio de venta de referencia
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
