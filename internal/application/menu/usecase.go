// Package menu implementa el Menu Synthesis Adapter: prompt, llamada al servicio generativo,
// extracción tolerante de la respuesta y recálculo de precios contra el ledger.
package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/kondate-api/internal/application/dto"
	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/domain"
	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/domain/menu"
	"github.com/jhoicas/kondate-api/internal/domain/repository"
)

// Options parámetros de generación.
type Options struct {
	Candidates int           // candidatos pedidos al modelo
	Timeout    time.Duration // límite de la llamada al modelo; 0 = sin límite propio
}

// GenerateUseCase orquesta la generación de menús.
type GenerateUseCase struct {
	ledger  repository.LedgerRepository
	config  repository.ServingConfigRepository
	llm     ports.LLMService
	metrics ports.MetricsRecorder
	log     zerolog.Logger
	opts    Options
}

// NewGenerateUseCase construye el caso de uso inyectando repositorios y el puerto LLMService.
func NewGenerateUseCase(
	ledger repository.LedgerRepository,
	config repository.ServingConfigRepository,
	llm ports.LLMService,
	metrics ports.MetricsRecorder,
	log zerolog.Logger,
	opts Options,
) *GenerateUseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if opts.Candidates <= 0 {
		opts.Candidates = 3
	}
	return &GenerateUseCase{ledger: ledger, config: config, llm: llm, metrics: metrics, log: log, opts: opts}
}

// Generate produce los candidatos para servings y mealTime.
//
// Retorna:
//   - domain.ErrInvalidInput  si mealTime está vacío o servings es negativo.
//   - domain.ErrNoInventory   si el ledger está vacío (no se llama al modelo).
//   - domain.ErrGeneration    si el servicio generativo falla.
//
// Una respuesta que no se puede interpretar no es error: se devuelve un candidato genérico.
func (uc *GenerateUseCase) Generate(ctx context.Context, req dto.GenerateMenuRequest) (*dto.GenerateMenuResponse, error) {
	mealTime := strings.TrimSpace(req.MealTime)
	if mealTime == "" {
		return nil, fmt.Errorf("%w: mealTime es obligatorio", domain.ErrInvalidInput)
	}
	if req.Servings < 0 {
		return nil, fmt.Errorf("%w: servings debe ser un entero positivo", domain.ErrInvalidInput)
	}

	// Snapshot del ledger (y de la configuración si hace falta) antes de la llamada al modelo:
	// el bloqueo del documento no se mantiene durante la latencia de red.
	var (
		ledger   []entity.IngredientStock
		servings = req.Servings
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ledger, err = uc.ledger.Load(gctx)
		return err
	})
	if servings == 0 {
		g.Go(func() error {
			cfg, err := uc.config.Get(gctx)
			if err != nil {
				return err
			}
			servings = cfg.Servings
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		uc.metrics.MenuGenerated(ports.MenuResultError)
		return nil, fmt.Errorf("leer estado: %w", err)
	}

	if len(ledger) == 0 {
		uc.metrics.MenuGenerated(ports.MenuResultNoInventory)
		return nil, domain.ErrNoInventory
	}

	prompt := BuildPrompt(ledger, servings, mealTime, uc.opts.Candidates)

	callCtx := ctx
	if uc.opts.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, uc.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	text, err := uc.llm.GenerateText(callCtx, prompt)
	if err != nil {
		uc.metrics.MenuGenerated(ports.MenuResultError)
		uc.log.Error().Err(err).Dur("elapsed", time.Since(start)).Msg("servicio generativo falló")
		return nil, fmt.Errorf("%w: %w", domain.ErrGeneration, err)
	}

	resp := &dto.GenerateMenuResponse{Servings: servings, MealTime: mealTime}
	ext := Extract(text)
	if ext.Fallback {
		uc.metrics.MenuGenerated(ports.MenuResultFallback)
		uc.log.Warn().Str("reason", ext.Reason).Int("reply_len", len(text)).Msg("respuesta del modelo no interpretable, se usa candidato genérico")
		resp.Fallback = true
		resp.Menus = []menu.MenuCandidate{menu.Fallback(mealTime)}
		return resp, nil
	}

	resp.Menus = menu.Reconcile(ext.Drafts, ledger)
	uc.metrics.MenuGenerated(ports.MenuResultStructured)
	uc.log.Info().
		Int("candidates", len(resp.Menus)).
		Int("servings", servings).
		Str("meal_time", mealTime).
		Dur("elapsed", time.Since(start)).
		Msg("menú generado")
	return resp, nil
}
