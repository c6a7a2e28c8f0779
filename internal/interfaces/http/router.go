package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/repuestos-api/internal/application/auth"
	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/application/report"
	"github.com/jhoicas/repuestos-api/internal/application/stock"
	"github.com/jhoicas/repuestos-api/internal/application/usecase"
	"github.com/jhoicas/repuestos-api/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	CategoryUC   *usecase.CategoryUseCase
	SparePartUC  *usecase.SparePartUseCase
	StockUC      *stock.StockUseCase
	ReportUC     *report.ReportUseCase
	PDFGenerator *pdf.ReportPDFGenerator
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Categories (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)

	// Spare parts (protegido)
	spareParts := protected.Group("/spareparts")
	sparePartHandler := NewSparePartHandler(deps.SparePartUC)
	spareParts.Post("/", sparePartHandler.Create)
	spareParts.Get("/", sparePartHandler.List)

	// Stock in / stock out (protegido)
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Post("/stockin", stockHandler.StockIn)
	protected.Get("/stockin", stockHandler.ListStockIn)
	protected.Post("/stockout", stockHandler.StockOut)
	protected.Get("/stockout", stockHandler.ListStockOut)
	protected.Put("/stockout/:id", stockHandler.UpdateStockOut)
	protected.Delete("/stockout/:id", stockHandler.DeleteStockOut)

	// Daily report (protegido)
	reportHandler := NewReportHandler(deps.ReportUC, deps.PDFGenerator)
	protected.Get("/report/daily", reportHandler.Daily)
	protected.Get("/report/daily/pdf", reportHandler.DailyPDF)
}

// internalError respuesta 500 con mensaje genérico; el detalle queda en el log.
func internalError(c *fiber.Ctx, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error no esperado")
	if errors.Is(err, domain.ErrStoreUnavailable) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "STORE_UNAVAILABLE", Message: "almacén de datos no disponible"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
