// Package inventory implementa el Ledger Manager: alta de compras, bajas y consulta de la despensa.
package inventory

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kondate-api/internal/application/dto"
	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/domain"
	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/domain/inventory"
	"github.com/jhoicas/kondate-api/internal/domain/repository"
)

// Operaciones reportadas a métricas.
const (
	OpAdd    = "add"
	OpRemove = "remove"
)

// LedgerUseCase casos de uso del ledger de ingredientes.
type LedgerUseCase struct {
	repo    repository.LedgerRepository
	metrics ports.MetricsRecorder
	log     zerolog.Logger
}

// NewLedgerUseCase construye el caso de uso. metrics puede ser nil.
func NewLedgerUseCase(repo repository.LedgerRepository, metrics ports.MetricsRecorder, log zerolog.Logger) *LedgerUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &LedgerUseCase{repo: repo, metrics: metrics, log: log}
}

// List devuelve el ledger en orden de inserción.
func (uc *LedgerUseCase) List(ctx context.Context) ([]entity.IngredientStock, error) {
	return uc.repo.Load(ctx)
}

// Add registra una compra. Si (name, unit) ya existe acumula la cantidad y sobrescribe
// el precio unitario con el de esta compra. Devuelve el ledger completo actualizado.
func (uc *LedgerUseCase) Add(ctx context.Context, in dto.AddIngredientRequest) ([]entity.IngredientStock, error) {
	p, err := purchaseFromRequest(in)
	if err != nil {
		return nil, err
	}

	ledger, err := uc.repo.Update(ctx, func(current []entity.IngredientStock) ([]entity.IngredientStock, error) {
		return inventory.ApplyPurchase(current, p), nil
	})
	if err != nil {
		return nil, fmt.Errorf("registrar compra: %w", err)
	}

	uc.metrics.LedgerMutated(OpAdd)
	uc.log.Info().
		Str("name", p.Name).Str("unit", p.Unit).
		Str("quantity", p.Quantity.String()).
		Str("price_per_unit", inventory.UnitPrice(p.Total, p.Quantity).String()).
		Msg("compra registrada")
	return ledger, nil
}

// RemoveResult ledger tras la baja. Removed=false cuando no había coincidencia (no es error).
type RemoveResult struct {
	Ledger  []entity.IngredientStock
	Removed bool
}

// Remove elimina el ingrediente (name, unit). Eliminar uno inexistente es idempotente.
func (uc *LedgerUseCase) Remove(ctx context.Context, in dto.RemoveIngredientRequest) (*RemoveResult, error) {
	name, unit := inventory.NormalizeKey(in.Name, in.Unit)
	if name == "" {
		return nil, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	}
	if unit == "" {
		return nil, fmt.Errorf("%w: unit es obligatorio", domain.ErrInvalidInput)
	}

	var removed bool
	ledger, err := uc.repo.Update(ctx, func(current []entity.IngredientStock) ([]entity.IngredientStock, error) {
		var next []entity.IngredientStock
		next, removed = inventory.Remove(current, name, unit)
		return next, nil
	})
	if err != nil {
		return nil, fmt.Errorf("eliminar ingrediente: %w", err)
	}

	if removed {
		uc.metrics.LedgerMutated(OpRemove)
		uc.log.Info().Str("name", name).Str("unit", unit).Msg("ingrediente eliminado")
	}
	return &RemoveResult{Ledger: ledger, Removed: removed}, nil
}

func purchaseFromRequest(in dto.AddIngredientRequest) (inventory.Purchase, error) {
	name, unit := inventory.NormalizeKey(in.Name, in.Unit)
	switch {
	case name == "":
		return inventory.Purchase{}, fmt.Errorf("%w: name es obligatorio", domain.ErrInvalidInput)
	case unit == "":
		return inventory.Purchase{}, fmt.Errorf("%w: unit es obligatorio", domain.ErrInvalidInput)
	case in.Quantity == nil || !in.Quantity.GreaterThan(decimal.Zero):
		return inventory.Purchase{}, fmt.Errorf("%w: quantity debe ser mayor que 0", domain.ErrInvalidInput)
	case in.TotalPrice == nil:
		return inventory.Purchase{}, fmt.Errorf("%w: totalPrice es obligatorio", domain.ErrInvalidInput)
	case in.TotalPrice.IsNegative():
		return inventory.Purchase{}, fmt.Errorf("%w: totalPrice no puede ser negativo", domain.ErrInvalidInput)
	}
	return inventory.Purchase{Name: name, Unit: unit, Quantity: *in.Quantity, Total: *in.TotalPrice}, nil
}
