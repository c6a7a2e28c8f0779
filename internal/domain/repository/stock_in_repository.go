package repository

import "github.com/jhoicas/repuestos-api/internal/domain/entity"

// StockInRow fila de entrada con el nombre del repuesto (para listados).
type StockInRow struct {
	Event    entity.StockIn
	PartName string
}

// StockInRepository define el puerto de persistencia para StockIn (DIP).
// El libro de entradas es append-only: no hay Update ni Delete.
type StockInRepository interface {
	Create(event *entity.StockIn) error
	ListWithPart() ([]StockInRow, error)
}
