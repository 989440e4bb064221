package repository

import (
	"context"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
)

// ServingConfigRepository define el puerto de la configuración de porciones.
// Get nunca devuelve una configuración inválida: repara al valor por defecto.
type ServingConfigRepository interface {
	Get(ctx context.Context) (entity.ServingConfig, error)
	Save(ctx context.Context, cfg entity.ServingConfig) (entity.ServingConfig, error)
}
