package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de solo lectura para el reporte diario. Trabaja
// directamente sobre el pool, fuera de cualquier transacción de escritura.
type ReportRepo struct {
	pool *pgxpool.Pool
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{pool: pool}
}

// GetDailyTotals agrega entradas, salidas y ventas del libro para una fecha.
// Una fecha sin movimientos devuelve ceros (COALESCE).
func (r *ReportRepo) GetDailyTotals(ctx context.Context, date time.Time) (*repository.DailyTotals, error) {
	var totals repository.DailyTotals

	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM stock_in WHERE date = $1`, date,
	).Scan(&totals.TotalStockIn)
	if err != nil {
		return nil, fmt.Errorf("report: sum stock in: %w", err)
	}

	err = r.pool.QueryRow(ctx,
		`SELECT COALESCE(SUM(quantity), 0), COALESCE(SUM(total_price), 0)
		 FROM stock_out WHERE date = $1`, date,
	).Scan(&totals.TotalStockOut, &totals.TotalSales)
	if err != nil {
		return nil, fmt.Errorf("report: sum stock out: %w", err)
	}

	return &totals, nil
}

// CurrentStock devuelve el snapshot actual de todos los repuestos con su categoría.
func (r *ReportRepo) CurrentStock(ctx context.Context) ([]repository.SparePartRow, error) {
	query := `
		SELECT p.id, p.category_id, p.name, p.quantity, p.unit_price, p.created_at, p.updated_at, c.name
		FROM spare_parts p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("report: current stock: %w", err)
	}
	defer rows.Close()
	var list []repository.SparePartRow
	for rows.Next() {
		var row repository.SparePartRow
		if err := rows.Scan(&row.Part.ID, &row.Part.CategoryID, &row.Part.Name, &row.Part.Quantity,
			&row.Part.UnitPrice, &row.Part.CreatedAt, &row.Part.UpdatedAt, &row.CategoryName); err != nil {
			return nil, fmt.Errorf("report: scan spare part: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}
