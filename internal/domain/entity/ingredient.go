package entity

import "github.com/shopspring/decimal"

func init() {
	// Los documentos persistidos guardan cantidades y precios como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// IngredientStock representa un ingrediente en la despensa. La identidad es el par (Name, Unit):
// el mismo nombre en otra unidad es otra entidad.
// Quantity siempre es > 0 mientras la entidad exista; PricePerUnit se deriva de la última compra.
type IngredientStock struct {
	Name         string          `json:"name"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	PricePerUnit decimal.Decimal `json:"pricePerUnit"`
}

// Matches indica si el ingrediente corresponde a la clave (name, unit) ya normalizada.
func (s IngredientStock) Matches(name, unit string) bool {
	return s.Name == name && s.Unit == unit
}
