package document

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/domain/repository"
)

var _ repository.ServingConfigRepository = (*ConfigRepo)(nil)

// ConfigRepo documento de configuración de porciones.
type ConfigRepo struct {
	d *doc
}

// NewConfigRepository construye el repositorio de configuración.
func NewConfigRepository(store ports.DocumentStore, log zerolog.Logger) *ConfigRepo {
	return &ConfigRepo{d: newDoc(store, ports.DocConfig, log)}
}

// Get devuelve la configuración; ausente, ilegible o con servings <= 0 se repara a 2.
func (r *ConfigRepo) Get(ctx context.Context) (entity.ServingConfig, error) {
	r.d.mu.RLock()
	defer r.d.mu.RUnlock()

	var cfg entity.ServingConfig
	if _, err := decode(ctx, r.d, &cfg); err != nil {
		r.d.log.Warn().Err(err).Msg("configuración ilegible, se usa el valor por defecto")
		return entity.ServingConfig{Servings: entity.DefaultServings}, nil
	}
	return cfg.Repaired(), nil
}

// Save escribe la configuración completa.
func (r *ConfigRepo) Save(ctx context.Context, cfg entity.ServingConfig) (entity.ServingConfig, error) {
	r.d.mu.Lock()
	defer r.d.mu.Unlock()

	if err := encode(ctx, r.d, cfg); err != nil {
		return entity.ServingConfig{}, err
	}
	return cfg, nil
}
