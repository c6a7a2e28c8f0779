package entity

import "time"

// StockIn representa una entrada de stock. Es inmutable: el libro de
// entradas es append-only, sin edición ni borrado.
type StockIn struct {
	ID          string
	SparePartID string
	Quantity    int
	Date        time.Time
	CreatedAt   time.Time
}
