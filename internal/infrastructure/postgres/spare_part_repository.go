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

var _ repository.SparePartRepository = (*SparePartRepo)(nil)

// SparePartRepo implementación del puerto SparePartRepository sobre PostgreSQL (usable con pool o tx).
type SparePartRepo struct {
	q Querier
}

// NewSparePartRepository construye el adaptador de repuestos. Pasar pool o tx (Querier).
func NewSparePartRepository(q Querier) *SparePartRepo {
	return &SparePartRepo{q: q}
}

// Create persiste un nuevo repuesto.
func (r *SparePartRepo) Create(part *entity.SparePart) error {
	query := `
		INSERT INTO spare_parts (id, category_id, name, quantity, unit_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		part.ID, part.CategoryID, part.Name, part.Quantity, part.UnitPrice,
		part.CreatedAt, part.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		if isForeignKeyViolation(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("insert spare part: %w", err)
	}
	return nil
}

// GetByID obtiene un repuesto por ID.
func (r *SparePartRepo) GetByID(id string) (*entity.SparePart, error) {
	query := `
		SELECT id, category_id, name, quantity, unit_price, created_at, updated_at
		FROM spare_parts WHERE id = $1`
	return r.scanOne(query, id)
}

// GetByNameAndCategory obtiene un repuesto por nombre y categoría (chequeo de duplicados).
func (r *SparePartRepo) GetByNameAndCategory(name, categoryID string) (*entity.SparePart, error) {
	query := `
		SELECT id, category_id, name, quantity, unit_price, created_at, updated_at
		FROM spare_parts WHERE name = $1 AND category_id = $2`
	return r.scanOne(query, name, categoryID)
}

// GetForUpdate obtiene el repuesto y bloquea la fila (SELECT FOR UPDATE).
// Serializa las operaciones del motor de stock sobre el mismo repuesto.
func (r *SparePartRepo) GetForUpdate(id string) (*entity.SparePart, error) {
	query := `
		SELECT id, category_id, name, quantity, unit_price, created_at, updated_at
		FROM spare_parts WHERE id = $1
		FOR UPDATE`
	return r.scanOne(query, id)
}

// UpdateQuantity fija la cantidad del repuesto (usado solo por el motor de
// stock, con la fila ya bloqueada). El CHECK quantity >= 0 del esquema es la
// última línea de defensa del invariante.
func (r *SparePartRepo) UpdateQuantity(id string, quantity int) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE spare_parts SET quantity = $2, updated_at = now() WHERE id = $1`,
		id, quantity,
	)
	if err != nil {
		return fmt.Errorf("update spare part quantity: %w", err)
	}
	return nil
}

// ListWithCategory lista todos los repuestos con el nombre de su categoría.
func (r *SparePartRepo) ListWithCategory() ([]repository.SparePartRow, error) {
	query := `
		SELECT p.id, p.category_id, p.name, p.quantity, p.unit_price, p.created_at, p.updated_at, c.name
		FROM spare_parts p
		JOIN categories c ON c.id = p.category_id
		ORDER BY p.name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list spare parts: %w", err)
	}
	defer rows.Close()
	var list []repository.SparePartRow
	for rows.Next() {
		var row repository.SparePartRow
		if err := rows.Scan(&row.Part.ID, &row.Part.CategoryID, &row.Part.Name, &row.Part.Quantity,
			&row.Part.UnitPrice, &row.Part.CreatedAt, &row.Part.UpdatedAt, &row.CategoryName); err != nil {
			return nil, fmt.Errorf("scan spare part: %w", err)
		}
		list = append(list, row)
	}
	return list, rows.Err()
}

func (r *SparePartRepo) scanOne(query string, args ...any) (*entity.SparePart, error) {
	var p entity.SparePart
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&p.ID, &p.CategoryID, &p.Name, &p.Quantity, &p.UnitPrice, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get spare part: %w", err)
	}
	return &p, nil
}
