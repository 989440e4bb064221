package usecase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/kondate-api/internal/domain"
	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/domain/repository"
)

// ServingsUseCase lectura y cambio del número de porciones por defecto.
type ServingsUseCase struct {
	repo repository.ServingConfigRepository
	log  zerolog.Logger
}

// NewServingsUseCase construye el caso de uso.
func NewServingsUseCase(repo repository.ServingConfigRepository, log zerolog.Logger) *ServingsUseCase {
	return &ServingsUseCase{repo: repo, log: log}
}

// Get devuelve la configuración vigente (siempre con servings > 0).
func (uc *ServingsUseCase) Get(ctx context.Context) (entity.ServingConfig, error) {
	return uc.repo.Get(ctx)
}

// Set guarda el número de porciones. Rechaza valores no positivos en lugar de repararlos.
func (uc *ServingsUseCase) Set(ctx context.Context, servings int) (entity.ServingConfig, error) {
	if servings <= 0 {
		return entity.ServingConfig{}, fmt.Errorf("%w: servings debe ser un entero positivo", domain.ErrInvalidInput)
	}
	cfg, err := uc.repo.Save(ctx, entity.ServingConfig{Servings: servings})
	if err != nil {
		return entity.ServingConfig{}, fmt.Errorf("guardar porciones: %w", err)
	}
	uc.log.Info().Int("servings", servings).Msg("porciones actualizadas")
	return cfg, nil
}
