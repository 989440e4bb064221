package menu

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/domain/inventory"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func usage(name, qty, unit string) entity.IngredientUsage {
	return entity.IngredientUsage{Name: name, Quantity: d(qty), Unit: unit}
}

var ledger = []entity.IngredientStock{
	{Name: "鶏肉", Unit: "g", Quantity: d("500"), PricePerUnit: d("2.5")},
	{Name: "卵", Unit: "個", Quantity: d("6"), PricePerUnit: d("30.25")},
}

// 300 g × 2.5 = 750.
func TestReconcile_PriceFromLedger(t *testing.T) {
	out := Reconcile([]Draft{{Name: "鶏肉のソテー", IngredientsUsed: []entity.IngredientUsage{usage("鶏肉", "300", "g")}}}, ledger)

	require.Len(t, out, 1)
	assert.EqualValues(t, 750, out[0].Price())
}

func TestReconcile_UnmatchedIngredientsPriceZero(t *testing.T) {
	out := Reconcile([]Draft{
		{Name: "サラダ", IngredientsUsed: []entity.IngredientUsage{usage("レタス", "1", "玉"), usage("鶏肉", "1", "kg")}},
		{Name: "水"},
	}, ledger)

	require.Len(t, out, 2)
	assert.Zero(t, out[0].Price(), "misma palabra con otra unidad no coincide")
	assert.Zero(t, out[1].Price())
	assert.NotNil(t, out[1].IngredientsUsed())
}

func TestPrice_RoundsHalfAwayFromZero(t *testing.T) {
	prices := inventory.PriceIndex(ledger)
	// 3 × 30.25 = 90.75 → 91; 1 × 30.25 + 0.2 × 2.5 = 30.75 → 31; 0.2 × 2.5 = 0.5 → 1
	assert.EqualValues(t, 91, Price([]entity.IngredientUsage{usage("卵", "3", "個")}, prices))
	assert.EqualValues(t, 31, Price([]entity.IngredientUsage{usage("卵", "1", "個"), usage("鶏肉", "0.2", "g")}, prices))
	assert.EqualValues(t, 1, Price([]entity.IngredientUsage{usage("鶏肉", "0.2", "g")}, prices))
}

func TestPrice_NonPositiveQuantitiesAddNothing(t *testing.T) {
	out := Reconcile([]Draft{
		{Name: "X", IngredientsUsed: []entity.IngredientUsage{usage("鶏肉", "-300", "g")}},
		{Name: "Y", IngredientsUsed: []entity.IngredientUsage{usage("鶏肉", "-300", "g"), usage("卵", "2", "個"), usage("鶏肉", "0", "g")}},
	}, ledger)

	require.Len(t, out, 2)
	assert.Zero(t, out[0].Price())
	assert.EqualValues(t, 61, out[1].Price())
}

func TestReconcile_SearchURL(t *testing.T) {
	out := Reconcile([]Draft{
		{Name: "親子丼", YoutubeURL: "https://evil.example/?q=1"},
		{Name: "卵焼き", YoutubeURL: SearchURLPrefix + "tamagoyaki"},
	}, ledger)

	assert.Equal(t, SearchURL("親子丼"), out[0].YoutubeURL())
	assert.Equal(t, SearchURLPrefix+"tamagoyaki", out[1].YoutubeURL())
}

func TestFallback(t *testing.T) {
	c := Fallback("夕食")
	assert.Equal(t, FallbackName, c.Name())
	assert.Zero(t, c.Price())
	assert.Empty(t, c.IngredientsUsed())
	assert.Contains(t, c.Description(), "夕食")
}

func TestMenuCandidate_MarshalJSON(t *testing.T) {
	out := Reconcile([]Draft{{Name: "親子丼", Description: "卵でとじる", IngredientsUsed: []entity.IngredientUsage{usage("卵", "2", "個")}}}, ledger)

	raw, err := json.Marshal(out[0])
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m))
	assert.Equal(t, "親子丼", m["name"])
	assert.EqualValues(t, 61, m["price"])
	assert.Equal(t, SearchURL("親子丼"), m["youtubeUrl"])
	assert.Len(t, m["ingredientsUsed"], 1)
}
