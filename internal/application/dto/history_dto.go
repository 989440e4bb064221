package dto

import "github.com/jhoicas/kondate-api/internal/domain/entity"

// ConfirmMealRequest body para POST /api/history: el plato elegido y cuándo se come.
type ConfirmMealRequest struct {
	Date     string       `json:"date" validate:"required,datetime=2006-01-02"`
	MealTime string       `json:"mealTime" validate:"required"`
	Dish     *entity.Dish `json:"dish" validate:"required"`
}

// ConfirmMealResponse resultado de la liquidación.
// Skipped lista los ingredientes del plato que no estaban en el ledger.
type ConfirmMealResponse struct {
	Message     string                   `json:"message"`
	Entry       entity.HistoryEntry      `json:"entry"`
	Applied     []entity.IngredientUsage `json:"applied"`
	Skipped     []entity.IngredientUsage `json:"skipped"`
	Ingredients []entity.IngredientStock `json:"ingredients"`
}

// HistoryQuery parámetros de GET /api/history y /api/history/export.
type HistoryQuery struct {
	Month  string `query:"month" validate:"omitempty,datetime=2006-01"`
	Format string `query:"format" validate:"omitempty,oneof=pdf xlsx"`
}

// HistoryListResponse entradas filtradas y la suma de sus precios.
type HistoryListResponse struct {
	Month   string                `json:"month,omitempty"`
	Count   int                   `json:"count"`
	Total   int64                 `json:"total"`
	Entries []entity.HistoryEntry `json:"entries"`
}
