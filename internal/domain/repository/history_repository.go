package repository

import (
	"context"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
)

// HistoryRepository define el puerto del historial de comidas (solo anexar).
type HistoryRepository interface {
	Load(ctx context.Context) ([]entity.HistoryEntry, error)
	Append(ctx context.Context, entry entity.HistoryEntry) error
}
