package stock

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/repuestos-api/internal/domain"
	"github.com/jhoicas/repuestos-api/internal/domain/entity"
	"github.com/jhoicas/repuestos-api/internal/domain/repository"
)

// StockUseCase es el motor de ajuste de stock: mantiene el invariante
//
//	SparePart.Quantity == Σ entradas − Σ salidas
//
// aplicado de forma incremental dentro de transacciones con bloqueo de fila
// (SELECT FOR UPDATE) y Commit/Rollback. Toda operación de escritura bloquea
// el repuesto afectado durante la secuencia completa; ediciones y borrados de
// salidas revierten primero el efecto original (ajuste compensatorio) antes
// de validar y aplicar el nuevo.
type StockUseCase struct {
	txRunner     TxRunner
	stockInRepo  repository.StockInRepository  // solo listados (pool)
	stockOutRepo repository.StockOutRepository // solo listados (pool)
}

// NewStockUseCase construye el motor de stock.
func NewStockUseCase(txRunner TxRunner, stockInRepo repository.StockInRepository, stockOutRepo repository.StockOutRepository) *StockUseCase {
	return &StockUseCase{txRunner: txRunner, stockInRepo: stockInRepo, stockOutRepo: stockOutRepo}
}

// StockInInput entrada para RecordStockIn.
type StockInInput struct {
	SparePartID string
	Quantity    int
	Date        time.Time
}

// StockOutInput entrada para RecordStockOut y EditStockOut.
type StockOutInput struct {
	SparePartID string
	Quantity    int
	UnitPrice   decimal.Decimal
	Date        time.Time
}

// RecordStockIn registra una entrada: inserta el evento y suma la cantidad
// al repuesto, en una sola transacción. Las entradas son incondicionales
// (no hay tope superior de stock).
func (uc *StockUseCase) RecordStockIn(ctx context.Context, input StockInInput) error {
	if input.SparePartID == "" || input.Quantity <= 0 || input.Date.IsZero() {
		return domain.ErrInvalidInput
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		partRepo repository.SparePartRepository,
		stockInRepo repository.StockInRepository,
		_ repository.StockOutRepository,
	) error {
		part, err := partRepo.GetForUpdate(input.SparePartID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		event := &entity.StockIn{
			ID:          uuid.New().String(),
			SparePartID: input.SparePartID,
			Quantity:    input.Quantity,
			Date:        input.Date,
			CreatedAt:   now,
		}
		if err := stockInRepo.Create(event); err != nil {
			return err
		}
		return partRepo.UpdateQuantity(part.ID, part.Quantity+input.Quantity)
	})
}

// RecordStockOut registra una salida: bloquea el repuesto, verifica que el
// stock alcance, inserta el evento y resta la cantidad. El bloqueo evita que
// dos salidas concurrentes pasen la verificación contra una cantidad obsoleta.
func (uc *StockUseCase) RecordStockOut(ctx context.Context, input StockOutInput) error {
	if err := validateStockOut(input); err != nil {
		return err
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		partRepo repository.SparePartRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		part, err := partRepo.GetForUpdate(input.SparePartID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		if part.Quantity < input.Quantity {
			return domain.ErrInsufficientStock
		}
		event := &entity.StockOut{
			ID:          uuid.New().String(),
			SparePartID: input.SparePartID,
			Quantity:    input.Quantity,
			UnitPrice:   input.UnitPrice,
			TotalPrice:  totalPrice(input.Quantity, input.UnitPrice),
			Date:        input.Date,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := stockOutRepo.Create(event); err != nil {
			return err
		}
		return partRepo.UpdateQuantity(part.ID, part.Quantity-input.Quantity)
	})
}

// EditStockOut modifica una salida existente. Secuencia bajo bloqueo:
// revierte el efecto original sobre el repuesto de origen, bloquea el
// repuesto destino (puede ser otro o el mismo), revalida la suficiencia
// contra la cantidad ya revertida y aplica la nueva salida sobreescribiendo
// el evento. Revertir antes de revalidar permite reducir la cantidad de una
// salida aunque el stock actual sea menor que la nueva cantidad. Cuando la
// edición cruza repuestos, ambas filas se bloquean en orden de ID para que
// dos ediciones cruzadas entre el mismo par nunca se esperen mutuamente.
func (uc *StockUseCase) EditStockOut(ctx context.Context, id string, input StockOutInput) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := validateStockOut(input); err != nil {
		return err
	}
	now := time.Now()
	return uc.txRunner.Run(ctx, func(
		partRepo repository.SparePartRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		record, err := stockOutRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		if input.SparePartID == record.SparePartID {
			origin, err := partRepo.GetForUpdate(record.SparePartID)
			if err != nil {
				return err
			}
			if origin == nil {
				return domain.ErrNotFound
			}
			// Reversión en memoria: stock de origen como si la salida
			// original nunca hubiera ocurrido.
			restored := origin.Quantity + record.Quantity
			if restored < input.Quantity {
				return domain.ErrInsufficientStock
			}
			if err := partRepo.UpdateQuantity(origin.ID, restored-input.Quantity); err != nil {
				return err
			}
		} else {
			// Orden canónico de bloqueo por ID: evita el interbloqueo ABBA
			// entre dos ediciones que mueven salidas en sentidos opuestos.
			firstID, secondID := record.SparePartID, input.SparePartID
			if secondID < firstID {
				firstID, secondID = secondID, firstID
			}
			first, err := partRepo.GetForUpdate(firstID)
			if err != nil {
				return err
			}
			second, err := partRepo.GetForUpdate(secondID)
			if err != nil {
				return err
			}
			if first == nil || second == nil {
				return domain.ErrNotFound
			}
			origin, target := first, second
			if origin.ID != record.SparePartID {
				origin, target = second, first
			}
			if target.Quantity < input.Quantity {
				return domain.ErrInsufficientStock
			}
			// Ambas filas quedan bloqueadas antes de escribir cualquiera
			if err := partRepo.UpdateQuantity(origin.ID, origin.Quantity+record.Quantity); err != nil {
				return err
			}
			if err := partRepo.UpdateQuantity(target.ID, target.Quantity-input.Quantity); err != nil {
				return err
			}
		}

		record.SparePartID = input.SparePartID
		record.Quantity = input.Quantity
		record.UnitPrice = input.UnitPrice
		record.TotalPrice = totalPrice(input.Quantity, input.UnitPrice)
		record.Date = input.Date
		record.UpdatedAt = now
		return stockOutRepo.Update(record)
	})
}

// DeleteStockOut elimina una salida y restaura el stock del repuesto dueño
// sumando la cantidad borrada (ajuste compensatorio).
func (uc *StockUseCase) DeleteStockOut(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.Run(ctx, func(
		partRepo repository.SparePartRepository,
		_ repository.StockInRepository,
		stockOutRepo repository.StockOutRepository,
	) error {
		record, err := stockOutRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if record == nil {
			return domain.ErrNotFound
		}
		part, err := partRepo.GetForUpdate(record.SparePartID)
		if err != nil {
			return err
		}
		if part == nil {
			return domain.ErrNotFound
		}
		if err := stockOutRepo.Delete(record.ID); err != nil {
			return err
		}
		return partRepo.UpdateQuantity(part.ID, part.Quantity+record.Quantity)
	})
}

// ListStockIn lista las entradas con el nombre del repuesto (fecha desc).
func (uc *StockUseCase) ListStockIn(ctx context.Context) ([]repository.StockInRow, error) {
	return uc.stockInRepo.ListWithPart()
}

// ListStockOut lista las salidas con nombres de repuesto y categoría
// (fecha desc, created_at desc como desempate).
func (uc *StockUseCase) ListStockOut(ctx context.Context) ([]repository.StockOutRow, error) {
	return uc.stockOutRepo.ListWithPart()
}

func validateStockOut(input StockOutInput) error {
	if input.SparePartID == "" || input.Quantity <= 0 || input.Date.IsZero() {
		return domain.ErrInvalidInput
	}
	if input.UnitPrice.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return nil
}

func totalPrice(quantity int, unitPrice decimal.Decimal) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}
