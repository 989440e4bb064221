package document

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/domain/repository"
)

var _ repository.LedgerRepository = (*LedgerRepo)(nil)

// LedgerRepo documento de ingredientes. Es el único punto de escritura del ledger:
// tanto el Ledger Manager como la liquidación de comidas pasan por Update.
type LedgerRepo struct {
	d *doc
}

// NewLedgerRepository construye el repositorio sobre el store indicado.
func NewLedgerRepository(store ports.DocumentStore, log zerolog.Logger) *LedgerRepo {
	return &LedgerRepo{d: newDoc(store, ports.DocIngredients, log)}
}

// Load devuelve una copia del ledger. Fallos de lectura se degradan a ledger vacío.
func (r *LedgerRepo) Load(ctx context.Context) ([]entity.IngredientStock, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	var ledger []entity.IngredientStock
	if _, err := decode(ctx, r.d, &ledger); err != nil {
		r.d.log.Warn().Err(err).Msg("ledger ilegible, se trata como vacío")
		return []entity.IngredientStock{}, nil
	}
	return orEmpty(ledger), nil
}

// Update aplica fn al ledger actual y escribe el resultado bajo bloqueo exclusivo.
// A diferencia de Load, un documento ilegible aborta la operación para no sobrescribirlo.
func (r *LedgerRepo) Update(ctx context.Context, fn repository.LedgerMutation) ([]entity.IngredientStock, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	var ledger []entity.IngredientStock
	if _, err := decode(ctx, r.d, &ledger); err != nil {
		return nil, err
	}
	next, err := fn(orEmpty(ledger))
	if err != nil {
		return nil, err
	}
	next = orEmpty(next)
	if err := encode(ctx, r.d, next); err != nil {
		return nil, err
	}
	return next, nil
}

func orEmpty(ledger []entity.IngredientStock) []entity.IngredientStock {
	if ledger == nil {
		return []entity.IngredientStock{}
	}
	return ledger
}
