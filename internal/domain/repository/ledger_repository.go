package repository

import (
	"context"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
)

// LedgerMutation recibe el ledger actual y devuelve el nuevo. Si devuelve error no se escribe nada.
type LedgerMutation func(ledger []entity.IngredientStock) ([]entity.IngredientStock, error)

// LedgerRepository define el puerto de persistencia del documento de ingredientes (DIP).
// Update mantiene el bloqueo del documento durante todo el ciclo leer-modificar-escribir.
type LedgerRepository interface {
	Load(ctx context.Context) ([]entity.IngredientStock, error)
	Update(ctx context.Context, fn LedgerMutation) ([]entity.IngredientStock, error)
}
