package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// IngredientUsage cantidad de un ingrediente de la despensa que consume un plato.
type IngredientUsage struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// Dish snapshot de un candidato de menú tal como fue elegido por el usuario.
type Dish struct {
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Price           int64             `json:"price" validate:"gte=0"`
	YoutubeURL      string            `json:"youtubeUrl"`
	IngredientsUsed []IngredientUsage `json:"ingredientsUsed"`
}

// HistoryEntry comida confirmada. Inmutable; la identidad es su posición en el historial.
// ID y CreatedAt son asignados por el servidor y pueden faltar en documentos antiguos.
type HistoryEntry struct {
	ID        string    `json:"id,omitempty"`
	Date      string    `json:"date"`
	MealTime  string    `json:"mealTime"`
	Dish      Dish      `json:"dish"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}
