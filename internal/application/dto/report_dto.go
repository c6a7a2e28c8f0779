package dto

import "github.com/shopspring/decimal"

// DailyReportResponse salida de GET /api/report/daily.
// RemainingStock es el snapshot actual (no histórico) de todos los repuestos.
type DailyReportResponse struct {
	Date           string              `json:"date"`
	TotalStockIn   int64               `json:"total_stock_in"`
	TotalStockOut  int64               `json:"total_stock_out"`
	TotalSales     decimal.Decimal     `json:"total_sales"`
	RemainingStock []SparePartResponse `json:"remaining_stock"`
}
