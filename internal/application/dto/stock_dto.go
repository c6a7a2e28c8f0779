package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockInRequest body para POST /api/stockin.
// Date en formato YYYY-MM-DD.
type StockInRequest struct {
	SparePartID string `json:"spare_part_id" validate:"required,uuid"`
	Quantity    int    `json:"quantity" validate:"required,gt=0"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
}

// StockOutRequest body para POST /api/stockout y PUT /api/stockout/:id.
type StockOutRequest struct {
	SparePartID string          `json:"spare_part_id" validate:"required,uuid"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
}

// StockInResponse fila de entrada para listados.
type StockInResponse struct {
	ID          string    `json:"id"`
	SparePartID string    `json:"spare_part_id"`
	PartName    string    `json:"part_name"`
	Quantity    int       `json:"quantity"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// StockOutResponse fila de salida para listados (con nombres de repuesto y categoría).
type StockOutResponse struct {
	ID           string          `json:"id"`
	SparePartID  string          `json:"spare_part_id"`
	PartName     string          `json:"part_name"`
	CategoryName string          `json:"category_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	Date         string          `json:"date"`
	CreatedAt    time.Time       `json:"created_at"`
}
