package menu

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
	"github.com/jhoicas/kondate-api/internal/domain/inventory"
)

// FallbackName nombre del candidato genérico cuando la respuesta del modelo no se pudo interpretar.
const FallbackName = "おまかせ献立（AIの提案を読み取れませんでした）"

// Reconcile calcula el precio de cada borrador a partir del ledger (servicio de dominio).
// Precio = round(Σ cantidadUsada × PricePerUnit(name, unit)); los ingredientes que no están en el
// ledger aportan 0. El candidato no se descarta por no coincidir.
func Reconcile(drafts []Draft, ledger []entity.IngredientStock) []MenuCandidate {
	prices := inventory.PriceIndex(ledger)
	out := make([]MenuCandidate, 0, len(drafts))
	for _, d := range drafts {
		out = append(out, MenuCandidate{
			name:            d.Name,
			description:     d.Description,
			price:           Price(d.IngredientsUsed, prices),
			youtubeURL:      normalizeSearchURL(d.YoutubeURL, d.Name),
			ingredientsUsed: usagesOrEmpty(d.IngredientsUsed),
		})
	}
	return out
}

// Price suma el costo de los usos contra el índice de precios y redondea al entero más cercano
// (mitades se alejan de cero). Usos con cantidad no positiva no aportan: el precio nunca es negativo.
func Price(usages []entity.IngredientUsage, prices map[[2]string]decimal.Decimal) int64 {
	total := decimal.Zero
	for _, u := range usages {
		name, unit := inventory.NormalizeKey(u.Name, u.Unit)
		ppu, ok := prices[[2]string{name, unit}]
		if !ok || !u.Quantity.GreaterThan(decimal.Zero) {
			continue
		}
		total = total.Add(u.Quantity.Mul(ppu))
	}
	return total.Round(0).IntPart()
}

// Fallback candidato genérico: precio 0 y sin ingredientes.
func Fallback(mealTime string) MenuCandidate {
	return MenuCandidate{
		name:            FallbackName,
		description:     "冷蔵庫の食材を使って" + mealTime + "を自由に組み立ててください。",
		price:           0,
		youtubeURL:      SearchURL(mealTime + " 献立"),
		ingredientsUsed: []entity.IngredientUsage{},
	}
}

func usagesOrEmpty(u []entity.IngredientUsage) []entity.IngredientUsage {
	if u == nil {
		return []entity.IngredientUsage{}
	}
	return u
}
