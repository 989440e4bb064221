package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/kondate-api/internal/domain/entity"
)

// AddIngredientRequest body para POST /api/ingredients: una compra con su precio total.
type AddIngredientRequest struct {
	Name       string           `json:"name" validate:"required"`
	Unit       string           `json:"unit" validate:"required"`
	Quantity   *decimal.Decimal `json:"quantity" validate:"required"`
	TotalPrice *decimal.Decimal `json:"totalPrice" validate:"required"`
}

// RemoveIngredientRequest body (o query) para DELETE /api/ingredients.
type RemoveIngredientRequest struct {
	Name string `json:"name" query:"name" validate:"required"`
	Unit string `json:"unit" query:"unit" validate:"required"`
}

// IngredientsResponse ledger completo tras una mutación.
type IngredientsResponse struct {
	Message     string                   `json:"message"`
	Ingredients []entity.IngredientStock `json:"ingredients"`
}
