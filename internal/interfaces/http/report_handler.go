package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/report"
	"github.com/jhoicas/repuestos-api/internal/infrastructure/pdf"
)

// ReportHandler maneja las peticiones HTTP del reporte diario (protegido).
type ReportHandler struct {
	uc           *report.ReportUseCase
	pdfGenerator *pdf.ReportPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase, pdfGenerator *pdf.ReportPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdfGenerator: pdfGenerator}
}

// Daily godoc
// @Summary      Reporte diario
// @Description  Totales de entradas, salidas y ventas para la fecha, más el
//               snapshot actual de todos los repuestos.
// @Tags         report
// @Security     Bearer
// @Produce      json
// @Param        date  query  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {object}  dto.DailyReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/report/daily [get]
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	date, ok := parseReportDate(c)
	if !ok {
		return nil
	}
	out, err := h.uc.DailyReport(c.Context(), date)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// DailyPDF godoc
// @Summary      Reporte diario en PDF
// @Tags         report
// @Security     Bearer
// @Produce      application/pdf
// @Param        date  query  string  true  "Fecha YYYY-MM-DD"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/report/daily/pdf [get]
func (h *ReportHandler) DailyPDF(c *fiber.Ctx) error {
	date, ok := parseReportDate(c)
	if !ok {
		return nil
	}
	out, err := h.uc.DailyReport(c.Context(), date)
	if err != nil {
		return internalError(c, err)
	}
	doc, err := h.pdfGenerator.GenerateDailyReportPDF(out)
	if err != nil {
		return internalError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="reporte-%s.pdf"`, out.Date))
	return c.Send(doc)
}

// parseReportDate lee ?date=YYYY-MM-DD. Si retorna ok=false ya escribió la respuesta 400.
func parseReportDate(c *fiber.Ctx) (time.Time, bool) {
	date, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
		return time.Time{}, false
	}
	return date, true
}
