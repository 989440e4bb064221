package document

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/domain/repository"
)

var _ repository.HistoryRepository = (*HistoryRepo)(nil)

// HistoryRepo documento del historial de comidas confirmadas (append-only).
type HistoryRepo struct {
	d *doc
}

// NewHistoryRepository construye el repositorio del historial.
func NewHistoryRepository(store ports.DocumentStore, log zerolog.Logger) *HistoryRepo {
	return &HistoryRepo{d: newDoc(store, ports.DocHistory, log)}
}

// Load devuelve el historial en orden de inserción. Fallos de lectura se degradan a vacío.
func (r *HistoryRepo) Load(ctx context.Context) ([]entity.HistoryEntry, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	var entries []entity.HistoryEntry
	if _, err := decode(ctx, r.d, &entries); err != nil {
		r.d.log.Warn().Err(err).Msg("historial ilegible, se trata como vacío")
		return []entity.HistoryEntry{}, nil
	}
	if entries == nil {
		entries = []entity.HistoryEntry{}
	}
	return entries, nil
}

// Append agrega la entrada al final del historial.
func (r *HistoryRepo) Append(ctx context.Context, entry entity.HistoryEntry) error {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	var entries []entity.HistoryEntry
	if _, err := decode(ctx, r.d, &entries); err != nil {
		return err
	}
	return encode(ctx, r.d, append(entries, entry))
}
