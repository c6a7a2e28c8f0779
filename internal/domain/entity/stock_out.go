package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockOut representa una salida de stock (venta). A diferencia de StockIn
// es editable y borrable: cada edición o borrado revierte primero el efecto
// original sobre el stock antes de aplicar el nuevo.
type StockOut struct {
	ID          string
	SparePartID string
	Quantity    int
	UnitPrice   decimal.Decimal // precio de venta al momento de la salida
	TotalPrice  decimal.Decimal // Quantity × UnitPrice, materializado
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
