package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
)

// Purchase compra de un ingrediente con su precio total pagado.
type Purchase struct {
	Name     string
	Unit     string
	Quantity decimal.Decimal
	Total    decimal.Decimal
}

// ApplyPurchase suma la compra al ledger. Si ya existe (name, unit) acumula la cantidad y
// sobrescribe PricePerUnit con el de esta compra (no se promedia); si no, agrega una entidad nueva al final.
// El slice de entrada no se modifica.
func ApplyPurchase(ledger []entity.IngredientStock, p Purchase) []entity.IngredientStock {
	out := clone(ledger)
	price := UnitPrice(p.Total, p.Quantity)
	for i := range out {
		if out[i].Matches(p.Name, p.Unit) {
			out[i].Quantity = out[i].Quantity.Add(p.Quantity)
			out[i].PricePerUnit = price
			return out
		}
	}
	return append(out, entity.IngredientStock{
		Name:         p.Name,
		Quantity:     p.Quantity,
		Unit:         p.Unit,
		PricePerUnit: price,
	})
}

// Remove elimina todas las entidades con (name, unit). removed=false si no había coincidencias.
func Remove(ledger []entity.IngredientStock, name, unit string) (out []entity.IngredientStock, removed bool) {
	out = make([]entity.IngredientStock, 0, len(ledger))
	for _, s := range ledger {
		if s.Matches(name, unit) {
			removed = true
			continue
		}
		out = append(out, s)
	}
	return out, removed
}

// ConsumeResult detalle de una liquidación contra el ledger.
type ConsumeResult struct {
	Ledger  []entity.IngredientStock
	Applied []entity.IngredientUsage
	Skipped []entity.IngredientUsage
}

// Consume descuenta del ledger cada uso en orden. Usos sin entidad coincidente o con cantidad
// no positiva se omiten. Una entidad que queda con cantidad <= 0 se elimina (nunca queda stock negativo).
func Consume(ledger []entity.IngredientStock, usages []entity.IngredientUsage) ConsumeResult {
	res := ConsumeResult{Ledger: clone(ledger)}
	for _, u := range usages {
		name, unit := NormalizeKey(u.Name, u.Unit)
		idx := indexOf(res.Ledger, name, unit)
		if idx < 0 || !u.Quantity.GreaterThan(decimal.Zero) {
			res.Skipped = append(res.Skipped, u)
			continue
		}
		remaining := res.Ledger[idx].Quantity.Sub(u.Quantity)
		if remaining.LessThanOrEqual(decimal.Zero) {
			res.Ledger = append(res.Ledger[:idx], res.Ledger[idx+1:]...)
		} else {
			res.Ledger[idx].Quantity = remaining
		}
		res.Applied = append(res.Applied, u)
	}
	return res
}

// PriceIndex construye el lookup (name, unit) → PricePerUnit usado por el reconciliador de precios.
func PriceIndex(ledger []entity.IngredientStock) map[[2]string]decimal.Decimal {
	idx := make(map[[2]string]decimal.Decimal, len(ledger))
	for _, s := range ledger {
		idx[[2]string{s.Name, s.Unit}] = s.PricePerUnit
	}
	return idx
}

func indexOf(ledger []entity.IngredientStock, name, unit string) int {
	for i := range ledger {
		if ledger[i].Matches(name, unit) {
			return i
		}
	}
	return -1
}

func clone(ledger []entity.IngredientStock) []entity.IngredientStock {
	out := make([]entity.IngredientStock, len(ledger), len(ledger)+1)
	copy(out, ledger)
	return out
}
