// Package history implementa el History & Settlement Manager: consulta mensual del historial,
// confirmación de comidas (registro + descuento del ledger) y exportación.
package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/kondate-api/internal/application/dto"
	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/domain"
	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/domain/inventory"
	"github.com/jhoicas/kondate-api/internal/domain/repository"
)

// UseCase casos de uso del historial y la liquidación.
type UseCase struct {
	history   repository.HistoryRepository
	ledger    repository.LedgerRepository
	renderers map[string]ReportRenderer
	metrics   ports.MetricsRecorder
	log       zerolog.Logger

	now   func() time.Time
	newID func() string
}

// NewUseCase construye el caso de uso. renderers indexa los exportadores por formato ("pdf", "xlsx").
func NewUseCase(
	history repository.HistoryRepository,
	ledger repository.LedgerRepository,
	renderers map[string]ReportRenderer,
	metrics ports.MetricsRecorder,
	log zerolog.Logger,
) *UseCase {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	return &UseCase{
		history:   history,
		ledger:    ledger,
		renderers: renderers,
		metrics:   metrics,
		log:       log,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// List devuelve las entradas cuyo date empieza por month (todas si month está vacío)
// y la suma de los precios de sus platos.
func (uc *UseCase) List(ctx context.Context, month string) (*dto.HistoryListResponse, error) {
	all, err := uc.history.Load(ctx)
	if err != nil {
		return nil, err
	}
	entries := Filter(all, month)
	return &dto.HistoryListResponse{
		Month:   month,
		Count:   len(entries),
		Total:   Total(entries),
		Entries: entries,
	}, nil
}

// Confirm registra la comida elegida y descuenta sus ingredientes del ledger.
//
// El historial se escribe primero: si luego falla la escritura del ledger la entrada queda
// registrada y se devuelve un error que envuelve domain.ErrSettlementIncomplete.
// Los ingredientes que no están en el ledger se omiten sin error.
func (uc *UseCase) Confirm(ctx context.Context, req dto.ConfirmMealRequest) (*dto.ConfirmMealResponse, error) {
	if err := validateConfirm(req); err != nil {
		return nil, err
	}

	dish := *req.Dish
	dish.Name = strings.TrimSpace(dish.Name)
	dish.IngredientsUsed = cloneUsages(dish.IngredientsUsed)

	entry := entity.HistoryEntry{
		ID:        uc.newID(),
		Date:      strings.TrimSpace(req.Date),
		MealTime:  strings.TrimSpace(req.MealTime),
		Dish:      dish,
		CreatedAt: uc.now().UTC(),
	}

	// ── 1. Registro durable ───────────────────────────────────────────────────
	if err := uc.history.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("registrar historial: %w", err)
	}

	// ── 2. Descuento del ledger (leer-modificar-escribir bajo bloqueo) ────────
	var res inventory.ConsumeResult
	ledger, err := uc.ledger.Update(ctx, func(current []entity.IngredientStock) ([]entity.IngredientStock, error) {
		res = inventory.Consume(current, dish.IngredientsUsed)
		return res.Ledger, nil
	})
	if err != nil {
		uc.log.Error().Err(err).Str("entry_id", entry.ID).Msg("historial registrado pero el ledger no se actualizó")
		return nil, fmt.Errorf("%w: %w", domain.ErrSettlementIncomplete, err)
	}

	uc.metrics.SettlementApplied(len(res.Applied), len(res.Skipped))
	uc.log.Info().
		Str("entry_id", entry.ID).
		Str("dish", dish.Name).
		Int("applied", len(res.Applied)).
		Int("skipped", len(res.Skipped)).
		Msg("comida confirmada")

	return &dto.ConfirmMealResponse{
		Message:     "comida registrada",
		Entry:       entry,
		Applied:     orEmpty(res.Applied),
		Skipped:     orEmpty(res.Skipped),
		Ingredients: ledger,
	}, nil
}

// Export genera el reporte del mes en el formato pedido.
// Devuelve los bytes, el content-type y el nombre de archivo sugerido.
func (uc *UseCase) Export(ctx context.Context, month, format string) ([]byte, string, string, error) {
	if format == "" {
		format = "pdf"
	}
	r, ok := uc.renderers[format]
	if !ok {
		return nil, "", "", fmt.Errorf("%w: formato no soportado: %s", domain.ErrInvalidInput, format)
	}

	list, err := uc.List(ctx, month)
	if err != nil {
		return nil, "", "", err
	}
	out, err := r.Render(Report{
		Month:       month,
		Entries:     list.Entries,
		Total:       list.Total,
		GeneratedAt: uc.now(),
	})
	if err != nil {
		return nil, "", "", fmt.Errorf("exportar historial: %w", err)
	}

	name := "historial"
	if month != "" {
		name += "-" + month
	}
	return out, r.ContentType(), name + "." + r.Extension(), nil
}

// Filter conserva el orden de inserción. month es un prefijo "YYYY-MM" del date.
func Filter(entries []entity.HistoryEntry, month string) []entity.HistoryEntry {
	out := make([]entity.HistoryEntry, 0, len(entries))
	for _, e := range entries {
		if month == "" || strings.HasPrefix(e.Date, month) {
			out = append(out, e)
		}
	}
	return out
}

// Total suma los precios de los platos.
func Total(entries []entity.HistoryEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Dish.Price
	}
	return total
}

func validateConfirm(req dto.ConfirmMealRequest) error {
	var missing []string
	if strings.TrimSpace(req.Date) == "" {
		missing = append(missing, "date")
	}
	if strings.TrimSpace(req.MealTime) == "" {
		missing = append(missing, "mealTime")
	}
	if req.Dish == nil {
		missing = append(missing, "dish")
	} else if strings.TrimSpace(req.Dish.Name) == "" {
		missing = append(missing, "dish.name")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: campos obligatorios: %s", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}
	if req.Dish.Price < 0 {
		return fmt.Errorf("%w: dish.price no puede ser negativo", domain.ErrInvalidInput)
	}
	return nil
}

func cloneUsages(in []entity.IngredientUsage) []entity.IngredientUsage {
	out := make([]entity.IngredientUsage, len(in))
	copy(out, in)
	return out
}

func orEmpty(u []entity.IngredientUsage) []entity.IngredientUsage {
	if u == nil {
		return []entity.IngredientUsage{}
	}
	return u
}
