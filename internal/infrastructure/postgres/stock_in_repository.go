package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

var _ repository.StockInRepository = (*StockInRepo)(nil)

// StockInRepo implementación del puerto StockInRepository sobre PostgreSQL (usable con pool o tx).
// La tabla stock_in es append-only: el puerto no expone UPDATE ni DELETE.
type StockInRepo struct {
	q Querier
}

// NewStockInRepository construye el adaptador de entradas. Pasar pool o tx (Querier).
func NewStockInRepository(q Querier) *StockInRepo {
	return &StockInRepo{q: q}
}

// Create persiste un evento de entrada.
func (r *StockInRepo) Create(event *entity.StockIn) error {
	query := `
		INSERT INTO stock_in (id, spare_part_id, quantity, date, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.SparePartID, event.Quantity, event.Date, event.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock in: %w", err)
	}
	return nil
}

// ListWithPart lista las entradas con el nombre del repuesto (fecha desc).
func (r *StockInRepo) ListWithPart() ([]repository.StockInRow, error) {
	query := `
		SELECT s.id, s.spare_part_id, s.quantity, s.date, s.created_at, p.name
		FROM stock_in s
		JOIN spare_parts p ON p.id = s.spare_part_id
		ORDER BY s.date DESC, s.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock in: %w", err)
	}
	defer rows.Close()
	var list []repository.StockInRow
	for rows.Next() {
		var row repository.StockInRow
		if err := rows.Scan(&row.Event.ID, &row.Event.SparePartID, &row.Event.Quantity,
			&row.Event.Date, &row.Event.CreatedAt, &row.PartName); err != nil {
			return nil, fmt.Errorf("scan stock in: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
