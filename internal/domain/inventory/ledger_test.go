package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func stock(name, unit, qty, ppu string) entity.IngredientStock {
	return entity.IngredientStock{Name: name, Unit: unit, Quantity: d(qty), PricePerUnit: d(ppu)}
}

func TestUnitPrice(t *testing.T) {
	assert.True(t, d("2.5").Equal(UnitPrice(d("500"), d("200"))))
	assert.True(t, UnitPrice(d("500"), d("0")).IsZero())
	assert.True(t, UnitPrice(d("500"), d("-1")).IsZero())
}

// 鶏肉/g: 300 @ 2 + compra de 200 por 500 → 500 @ 2.5 (sobrescribe, no promedia).
func TestApplyPurchase_MergeOverwritesPrice(t *testing.T) {
	ledger := []entity.IngredientStock{stock("鶏肉", "g", "300", "2")}

	out := ApplyPurchase(ledger, Purchase{Name: "鶏肉", Unit: "g", Quantity: d("200"), Total: d("500")})

	require.Len(t, out, 1)
	assert.True(t, d("500").Equal(out[0].Quantity))
	assert.True(t, d("2.5").Equal(out[0].PricePerUnit))
	assert.True(t, d("300").Equal(ledger[0].Quantity), "el ledger de entrada no se modifica")
}

func TestApplyPurchase_SameNameOtherUnitIsDistinct(t *testing.T) {
	ledger := []entity.IngredientStock{stock("牛乳", "ml", "500", "0.2")}

	out := ApplyPurchase(ledger, Purchase{Name: "牛乳", Unit: "本", Quantity: d("1"), Total: d("200")})

	require.Len(t, out, 2)
	assert.Equal(t, "ml", out[0].Unit)
	assert.Equal(t, "本", out[1].Unit)
	assert.True(t, d("200").Equal(out[1].PricePerUnit))
}

func TestRemove(t *testing.T) {
	ledger := []entity.IngredientStock{stock("卵", "個", "6", "30"), stock("鶏肉", "g", "300", "2")}

	out, removed := Remove(ledger, "卵", "個")
	assert.True(t, removed)
	require.Len(t, out, 1)
	assert.Equal(t, "鶏肉", out[0].Name)

	out, removed = Remove(ledger, "卵", "パック")
	assert.False(t, removed)
	assert.Equal(t, ledger, out)
}

// Confirmar 300 de 300 elimina la entidad; nunca queda cantidad <= 0.
func TestConsume_ExhaustedEntityIsRemoved(t *testing.T) {
	ledger := []entity.IngredientStock{stock("鶏肉", "g", "300", "2.5"), stock("卵", "個", "6", "30")}

	res := Consume(ledger, []entity.IngredientUsage{
		{Name: "鶏肉", Quantity: d("300"), Unit: "g"},
		{Name: "卵", Quantity: d("2"), Unit: "個"},
	})

	require.Len(t, res.Ledger, 1)
	assert.Equal(t, "卵", res.Ledger[0].Name)
	assert.True(t, d("4").Equal(res.Ledger[0].Quantity))
	assert.Len(t, res.Applied, 2)
	assert.Empty(t, res.Skipped)
}

func TestConsume_OverdrawRemovesAndMissesAreSkipped(t *testing.T) {
	ledger := []entity.IngredientStock{stock("鶏肉", "g", "100", "2.5")}

	res := Consume(ledger, []entity.IngredientUsage{
		{Name: "鶏肉", Quantity: d("250"), Unit: "g"},
		{Name: "玉ねぎ", Quantity: d("1"), Unit: "個"},
		{Name: "鶏肉", Quantity: d("10"), Unit: "g"},
	})

	assert.Empty(t, res.Ledger)
	assert.Len(t, res.Applied, 1)
	assert.Len(t, res.Skipped, 2, "el segundo uso de 鶏肉 ya no encuentra la entidad")
}

func TestConsume_NonPositiveQuantityIsSkipped(t *testing.T) {
	ledger := []entity.IngredientStock{stock("卵", "個", "6", "30")}

	res := Consume(ledger, []entity.IngredientUsage{
		{Name: "卵", Quantity: d("0"), Unit: "個"},
		{Name: "卵", Quantity: d("-2"), Unit: "個"},
	})

	assert.Equal(t, ledger, res.Ledger)
	assert.Len(t, res.Skipped, 2)
}

func TestConsume_MatchesNormalizedKeys(t *testing.T) {
	ledger := []entity.IngredientStock{stock("トマト", "g", "200", "1")}

	res := Consume(ledger, []entity.IngredientUsage{{Name: " ﾄﾏﾄ ", Quantity: d("50"), Unit: "ｇ"}})

	require.Len(t, res.Ledger, 1)
	assert.True(t, d("150").Equal(res.Ledger[0].Quantity))
}

func TestNormalizeKey(t *testing.T) {
	name, unit := NormalizeKey("  ﾀﾏﾈｷﾞ ", "ｋｇ")
	assert.Equal(t, "タマネギ", name)
	assert.Equal(t, "kg", unit)
}
