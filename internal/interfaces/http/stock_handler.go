package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/repuestos-api/internal/application/dto"
	"github.com/jhoicas/repuestos-api/internal/application/stock"
	"github.com/jhoicas/repuestos-api/internal/domain"
)

// dateLayout formato de fecha de los movimientos (YYYY-MM-DD).
const dateLayout = "2006-01-02"

// StockHandler maneja las peticiones HTTP de entradas y salidas de stock (protegido).
type StockHandler struct {
	uc *stock.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// StockIn godoc
// @Summary      Registrar entrada de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockInRequest  true  "spare_part_id, quantity, date (YYYY-MM-DD)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stockin [post]
func (h *StockHandler) StockIn(c *fiber.Ctx) error {
	var in dto.StockInRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
	}
	err = h.uc.RecordStockIn(c.Context(), stock.StockInInput{
		SparePartID: in.SparePartID,
		Quantity:    in.Quantity,
		Date:        date,
	})
	if err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "entrada registrada"})
}

// ListStockIn godoc
// @Summary      Listar entradas de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockInResponse
// @Router       /api/stockin [get]
func (h *StockHandler) ListStockIn(c *fiber.Ctx) error {
	rows, err := h.uc.ListStockIn(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	out := make([]dto.StockInResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.StockInResponse{
			ID:          row.Event.ID,
			SparePartID: row.Event.SparePartID,
			PartName:    row.PartName,
			Quantity:    row.Event.Quantity,
			Date:        row.Event.Date.Format(dateLayout),
			CreatedAt:   row.Event.CreatedAt,
		})
	}
	return c.JSON(out)
}

// StockOut godoc
// @Summary      Registrar salida de stock
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.StockOutRequest  true  "spare_part_id, quantity, unit_price, date (YYYY-MM-DD)"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stockout [post]
func (h *StockHandler) StockOut(c *fiber.Ctx) error {
	input, ok := parseStockOutBody(c)
	if !ok {
		return nil
	}
	if err := h.uc.RecordStockOut(c.Context(), input); err != nil {
		return stockError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "salida registrada"})
}

// ListStockOut godoc
// @Summary      Listar salidas de stock
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockOutResponse
// @Router       /api/stockout [get]
func (h *StockHandler) ListStockOut(c *fiber.Ctx) error {
	rows, err := h.uc.ListStockOut(c.Context())
	if err != nil {
		return internalError(c, err)
	}
	out := make([]dto.StockOutResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, dto.StockOutResponse{
			ID:           row.Event.ID,
			SparePartID:  row.Event.SparePartID,
			PartName:     row.PartName,
			CategoryName: row.CategoryName,
			Quantity:     row.Event.Quantity,
			UnitPrice:    row.Event.UnitPrice,
			TotalPrice:   row.Event.TotalPrice,
			Date:         row.Event.Date.Format(dateLayout),
			CreatedAt:    row.Event.CreatedAt,
		})
	}
	return c.JSON(out)
}

// UpdateStockOut godoc
// @Summary      Editar salida de stock
// @Description  Revierte el efecto original sobre el stock y aplica la nueva
//               salida (posiblemente sobre otro repuesto) en una sola transacción.
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la salida"
// @Param        body  body  dto.StockOutRequest  true  "spare_part_id, quantity, unit_price, date"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/stockout/{id} [put]
func (h *StockHandler) UpdateStockOut(c *fiber.Ctx) error {
	input, ok := parseStockOutBody(c)
	if !ok {
		return nil
	}
	if err := h.uc.EditStockOut(c.Context(), c.Params("id"), input); err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "salida actualizada"})
}

// DeleteStockOut godoc
// @Summary      Eliminar salida de stock
// @Description  Borra el evento y restaura la cantidad al repuesto dueño.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la salida"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stockout/{id} [delete]
func (h *StockHandler) DeleteStockOut(c *fiber.Ctx) error {
	if err := h.uc.DeleteStockOut(c.Context(), c.Params("id")); err != nil {
		return stockError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "salida eliminada"})
}

// parseStockOutBody parsea y valida el body común de crear/editar salida.
// Si retorna ok=false ya escribió la respuesta 400.
func parseStockOutBody(c *fiber.Ctx) (stock.StockOutInput, bool) {
	var in dto.StockOutRequest
	if err := c.BodyParser(&in); err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
		return stock.StockOutInput{}, false
	}
	date, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		_ = c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "date debe tener formato YYYY-MM-DD"})
		return stock.StockOutInput{}, false
	}
	return stock.StockOutInput{
		SparePartID: in.SparePartID,
		Quantity:    in.Quantity,
		UnitPrice:   in.UnitPrice,
		Date:        date,
	}, true
}

// stockError mapea los errores del motor de stock a respuestas HTTP.
func stockError(c *fiber.Ctx, err error) error {
	switch err {
	case domain.ErrInvalidInput:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case domain.ErrInsufficientStock:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente"})
	default:
		return internalError(c, err)
	}
}
