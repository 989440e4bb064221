package history

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/jhoicas/kondate-api/internal/application/dto"
	"github.com/jhoicas/kondate-api/internal/application/inventory"
	"github.com/jhoicas/kondate-api/internal/application/ports"
	"github.com/jhoicas/kondate-api/internal/domain"
	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/infrastructure/document"
	"github.com/jhoicas/kondate-api/internal/infrastructure/memstore"
)

// keyFailStore falla solo las escrituras de una clave.
type keyFailStore struct {
	*memstore.Store
	failKey string
	err     error
}

func (s *keyFailStore) Write(ctx context.Context, key string, doc []byte) error {
	if key == s.failKey && s.err != nil {
		return s.err
	}
	return s.Store.Write(ctx, key, doc)
}

type stubRenderer struct{ got Report }

func (r *stubRenderer) Render(rep Report) ([]byte, error) {
	r.got = rep
	return []byte("report"), nil
}
func (r *stubRenderer) ContentType() string { return "text/plain" }
func (r *stubRenderer) Extension() string   { return "txt" }

type historyFixture struct {
	uc       *UseCase
	store    *keyFailStore
	ledger   *document.LedgerRepo
	history  *document.HistoryRepo
	renderer *stubRenderer
}

func newHistoryFixture(t *testing.T) *historyFixture {
	t.Helper()
	log := zerolog.Nop()
	store := &keyFailStore{Store: memstore.New(), failKey: ports.DocIngredients}
	f := &historyFixture{
		store:    store,
		ledger:   document.NewLedgerRepository(store, log),
		history:  document.NewHistoryRepository(store, log),
		renderer: &stubRenderer{},
	}
	f.uc = NewUseCase(f.history, f.ledger, map[string]ReportRenderer{"txt": f.renderer}, nil, log)
	f.uc.now = func() time.Time { return time.Date(2025, 3, 14, 12, 0, 0, 0, time.FixedZone("JST", 9*3600)) }
	f.uc.newID = func() string { return "entry-1" }

	_, err := f.ledger.Update(context.Background(), func([]entity.IngredientStock) ([]entity.IngredientStock, error) {
		return []entity.IngredientStock{
			{Name: "鶏肉", Unit: "g", Quantity: decimal.NewFromInt(300), PricePerUnit: decimal.RequireFromString("2.5")},
			{Name: "卵", Unit: "個", Quantity: decimal.NewFromInt(6), PricePerUnit: decimal.NewFromInt(30)},
		}, nil
	})
	require.NoError(t, err)
	return f
}

func oyakodon() *entity.Dish {
	return &entity.Dish{
		Name:  "親子丼",
		Price: 810,
		IngredientsUsed: []entity.IngredientUsage{
			{Name: "鶏肉", Quantity: decimal.NewFromInt(300), Unit: "g"},
			{Name: "卵", Quantity: decimal.NewFromInt(2), Unit: "個"},
			{Name: "三つ葉", Quantity: decimal.NewFromInt(1), Unit: "束"},
		},
	}
}

func TestConfirm_SettlesLedgerAndAppendsOnce(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()

	resp, err := f.uc.Confirm(ctx, dto.ConfirmMealRequest{Date: "2025-03-14", MealTime: " 夕食 ", Dish: oyakodon()})
	require.NoError(t, err)

	assert.Equal(t, "entry-1", resp.Entry.ID)
	assert.Equal(t, "夕食", resp.Entry.MealTime)
	assert.Equal(t, time.UTC, resp.Entry.CreatedAt.Location())
	assert.Len(t, resp.Applied, 2)
	require.Len(t, resp.Skipped, 1)
	assert.Equal(t, "三つ葉", resp.Skipped[0].Name)

	// El pollo se agotó y desaparece; quedan 4 huevos.
	require.Len(t, resp.Ingredients, 1)
	assert.Equal(t, "卵", resp.Ingredients[0].Name)
	assert.Equal(t, "4", resp.Ingredients[0].Quantity.String())

	entries, err := f.history.Load(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.EqualValues(t, 810, entries[0].Dish.Price)
}

func TestConfirm_NothingMatchesStillRecords(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()

	dish := &entity.Dish{Name: "外食", IngredientsUsed: []entity.IngredientUsage{{Name: "牛肉", Quantity: decimal.NewFromInt(1), Unit: "kg"}}}
	resp, err := f.uc.Confirm(ctx, dto.ConfirmMealRequest{Date: "2025-03-14", MealTime: "昼食", Dish: dish})
	require.NoError(t, err)
	assert.Empty(t, resp.Applied)
	assert.Len(t, resp.Skipped, 1)
	assert.Len(t, resp.Ingredients, 2)

	list, err := f.uc.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, list.Count)
}

func TestConfirm_LedgerFailureKeepsHistory(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()
	f.store.err = errors.New("disco lleno")

	_, err := f.uc.Confirm(ctx, dto.ConfirmMealRequest{Date: "2025-03-14", MealTime: "夕食", Dish: oyakodon()})
	assert.ErrorIs(t, err, domain.ErrSettlementIncomplete)
	assert.ErrorContains(t, err, "disco lleno")

	entries, err := f.history.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	ledger, err := f.ledger.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, ledger, 2)
}

func TestConfirm_Validation(t *testing.T) {
	f := newHistoryFixture(t)

	_, err := f.uc.Confirm(context.Background(), dto.ConfirmMealRequest{MealTime: "夕食", Dish: &entity.Dish{Name: " "}})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorContains(t, err, "date, dish.name")

	_, err = f.uc.Confirm(context.Background(), dto.ConfirmMealRequest{Date: "2025-03-14"})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorContains(t, err, "mealTime, dish")

	entries, err := f.history.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConfirm_RejectsNegativePrice(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()

	_, err := f.uc.Confirm(ctx, dto.ConfirmMealRequest{Date: "2025-03-01", MealTime: "夕食", Dish: &entity.Dish{Name: "X", Price: -99999}})
	require.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.ErrorContains(t, err, "dish.price")

	list, err := f.uc.List(ctx, "2025-03")
	require.NoError(t, err)
	assert.Zero(t, list.Count)
	assert.Zero(t, list.Total)

	ledger, err := f.ledger.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, ledger, 2)
}

// Compras y liquidaciones concurrentes sobre el mismo ingrediente no pierden actualizaciones:
// ambas pasan por LedgerRepo.Update.
func TestConfirm_ConcurrentWithPurchases(t *testing.T) {
	defer goleak.VerifyNone(t)

	f := newHistoryFixture(t)
	ctx := context.Background()
	ledgerUC := inventory.NewLedgerUseCase(f.ledger, nil, zerolog.Nop())
	f.uc.newID = func() string { return "" }

	// 卵: 6 iniciales + 94 = 100.
	qty, total := decimal.NewFromInt(94), decimal.NewFromInt(2820)
	_, err := ledgerUC.Add(ctx, dto.AddIngredientRequest{Name: "卵", Unit: "個", Quantity: &qty, TotalPrice: &total})
	require.NoError(t, err)

	const n = 50
	one, price := decimal.NewFromInt(1), decimal.NewFromInt(30)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := ledgerUC.Add(ctx, dto.AddIngredientRequest{Name: "卵", Unit: "個", Quantity: &one, TotalPrice: &price})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			dish := &entity.Dish{Name: "ゆで卵", Price: 30, IngredientsUsed: []entity.IngredientUsage{{Name: "卵", Quantity: one, Unit: "個"}}}
			_, err := f.uc.Confirm(ctx, dto.ConfirmMealRequest{Date: "2025-03-14", MealTime: "朝食", Dish: dish})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	ledger, err := f.ledger.Load(ctx)
	require.NoError(t, err)
	var eggs *entity.IngredientStock
	for i := range ledger {
		if ledger[i].Name == "卵" {
			eggs = &ledger[i]
		}
	}
	require.NotNil(t, eggs)
	assert.Equal(t, "100", eggs.Quantity.String())

	list, err := f.uc.List(ctx, "2025-03")
	require.NoError(t, err)
	assert.Equal(t, n, list.Count)
	assert.EqualValues(t, n*30, list.Total)
}

func TestFilterAndTotal(t *testing.T) {
	entries := []entity.HistoryEntry{
		{Date: "2025-02-28", Dish: entity.Dish{Name: "A", Price: 500}},
		{Date: "2025-03-01", Dish: entity.Dish{Name: "B", Price: 700}},
		{Date: "2025-03-15", Dish: entity.Dish{Name: "C", Price: 300}},
	}

	march := Filter(entries, "2025-03")
	require.Len(t, march, 2)
	assert.Equal(t, "B", march[0].Dish.Name)
	assert.Equal(t, "C", march[1].Dish.Name)
	assert.EqualValues(t, 1000, Total(march))

	assert.Len(t, Filter(entries, ""), 3)
	assert.Empty(t, Filter(entries, "2024-12"))
	assert.EqualValues(t, 0, Total(nil))
}

func TestExport(t *testing.T) {
	f := newHistoryFixture(t)
	ctx := context.Background()
	_, err := f.uc.Confirm(ctx, dto.ConfirmMealRequest{Date: "2025-03-14", MealTime: "夕食", Dish: oyakodon()})
	require.NoError(t, err)

	out, ct, name, err := f.uc.Export(ctx, "2025-03", "txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("report"), out)
	assert.Equal(t, "text/plain", ct)
	assert.Equal(t, "historial-2025-03.txt", name)
	assert.Len(t, f.renderer.got.Entries, 1)
	assert.EqualValues(t, 810, f.renderer.got.Total)

	_, _, _, err = f.uc.Export(ctx, "", "docx")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, _, err = f.uc.Export(ctx, "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "pdf no está registrado en este fixture")
}
