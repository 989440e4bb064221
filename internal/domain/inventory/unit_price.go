package inventory

import "github.com/shopspring/decimal"

// UnitPrice deriva el precio por unidad de una compra (servicio de dominio).
// PrecioUnitario = TotalCompra / CantidadComprada. Con cantidad no positiva devuelve 0.
func UnitPrice(purchasedTotal, purchasedQuantity decimal.Decimal) decimal.Decimal {
	if purchasedQuantity.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return purchasedTotal.Div(purchasedQuantity)
}
