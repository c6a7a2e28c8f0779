package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

var _ repository.StockOutRepository = (*StockOutRepo)(nil)

// StockOutRepo implementación del puerto StockOutRepository sobre PostgreSQL (usable con pool o tx).
type StockOutRepo struct {
	q Querier
}

// NewStockOutRepository construye el adaptador de salidas. Pasar pool o tx (Querier).
func NewStockOutRepository(q Querier) *StockOutRepo {
	return &StockOutRepo{q: q}
}

// Create persiste un evento de salida.
func (r *StockOutRepo) Create(event *entity.StockOut) error {
	query := `
		INSERT INTO stock_out (id, spare_part_id, quantity, unit_price, total_price, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		event.ID, event.SparePartID, event.Quantity, event.UnitPrice, event.TotalPrice,
		event.Date, event.CreatedAt, event.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert stock out: %w", err)
	}
	return nil
}

// GetForUpdate obtiene el evento de salida y bloquea su fila (SELECT FOR UPDATE).
// El motor lo usa antes de editar o borrar, para que dos ediciones
// concurrentes del mismo evento se serialicen.
func (r *StockOutRepo) GetForUpdate(id string) (*entity.StockOut, error) {
	query := `
		SELECT id, spare_part_id, quantity, unit_price, total_price, date, created_at, updated_at
		FROM stock_out WHERE id = $1
		FOR UPDATE`
	var e entity.StockOut
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&e.ID, &e.SparePartID, &e.Quantity, &e.UnitPrice, &e.TotalPrice,
		&e.Date, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock out for update: %w", err)
	}
	return &e, nil
}

// Update sobreescribe el evento (repuesto, cantidad, precio y fecha) en el sitio.
func (r *StockOutRepo) Update(event *entity.StockOut) error {
	query := `
		UPDATE stock_out
		SET spare_part_id = $2, quantity = $3, unit_price = $4, total_price = $5, date = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		event.ID, event.SparePartID, event.Quantity, event.UnitPrice, event.TotalPrice,
		event.Date, event.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock out: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina el evento de salida.
func (r *StockOutRepo) Delete(id string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM stock_out WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete stock out: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListWithPart lista las salidas con nombres de repuesto y categoría
// (fecha desc, created_at desc como desempate).
func (r *StockOutRepo) ListWithPart() ([]repository.StockOutRow, error) {
	query := `
		SELECT s.id, s.spare_part_id, s.quantity, s.unit_price, s.total_price, s.date, s.created_at, s.updated_at,
		       p.name, c.name
		FROM stock_out s
		JOIN spare_parts p ON p.id = s.spare_part_id
		JOIN categories  c ON c.id = p.category_id
		ORDER BY s.date DESC, s.created_at DESC`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list stock out: %w", err)
	}
	defer rows.Close()
	var list []repository.StockOutRow
	for rows.Next() {
		var row repository.StockOutRow
		if err := rows.Scan(&row.Event.ID, &row.Event.SparePartID, &row.Event.Quantity,
			&row.Event.UnitPrice, &row.Event.TotalPrice, &row.Event.Date,
			&row.Event.CreatedAt, &row.Event.UpdatedAt, &row.PartName, &row.CategoryName); err != nil {
			return nil, fmt.Errorf("scan stock out: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
