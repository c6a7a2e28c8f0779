package report

import (
	"context"
	"time"

	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// ReportUseCase genera el reporte diario: totales de entradas, salidas y
// ventas para una fecha, más el snapshot actual de todos los repuestos.
// Solo lectura, sin bloqueos: el snapshot es best-effort frente a escrituras
// concurrentes.
type ReportUseCase struct {
	reportRepo repository.ReportRepository
}

// NewReportUseCase construye el caso de uso de reportes.
func NewReportUseCase(reportRepo repository.ReportRepository) *ReportUseCase {
	return &ReportUseCase{reportRepo: reportRepo}
}

// DailyReport calcula los agregados del día y el stock restante.
// Una fecha sin movimientos devuelve totales en cero y el snapshot intacto.
func (uc *ReportUseCase) DailyReport(ctx context.Context, date time.Time) (*dto.DailyReportResponse, error) {
	totals, err := uc.reportRepo.GetDailyTotals(ctx, date)
	if err != nil {
		return nil, err
	}
	parts, err := uc.reportRepo.CurrentStock(ctx)
	if err != nil {
		return nil, err
	}

	remaining := make([]dto.SparePartResponse, 0, len(parts))
	for _, row := range parts {
		remaining = append(remaining, dto.SparePartResponse{
			ID:           row.Part.ID,
			Name:         row.Part.Name,
			CategoryID:   row.Part.CategoryID,
			CategoryName: row.CategoryName,
			Quantity:     row.Part.Quantity,
			UnitPrice:    row.Part.UnitPrice,
			CreatedAt:    row.Part.CreatedAt,
			UpdatedAt:    row.Part.UpdatedAt,
		})
	}

	return &dto.DailyReportResponse{
		Date:           date.Format("2006-01-02"),
		TotalStockIn:   totals.TotalStockIn,
		TotalStockOut:  totals.TotalStockOut,
		TotalSales:     totals.TotalSales,
		RemainingStock: remaining,
	}, nil
}
