package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DailyTotals agregados del libro de movimientos para una fecha.
type DailyTotals struct {
	TotalStockIn  int64
	TotalStockOut int64
	TotalSales    decimal.Decimal
}

// ReportRepository consultas de solo lectura para reportes. Se ejecutan
// fuera de cualquier transacción de escritura (snapshot best-effort).
type ReportRepository interface {
	GetDailyTotals(ctx context.Context, date time.Time) (*DailyTotals, error)
	CurrentStock(ctx context.Context) ([]SparePartRow, error)
}
