package dto

import "github.com/jhoicas/kondate-api/internal/domain/menu"

// GenerateMenuRequest body para POST /api/menus/generate.
// Servings 0 u omitido usa la configuración persistida.
type GenerateMenuRequest struct {
	Servings int    `json:"servings" validate:"gte=0"`
	MealTime string `json:"mealTime" validate:"required"`
}

// GenerateMenuResponse candidatos con precio calculado en el servidor.
// Fallback indica que la respuesta del modelo no se pudo interpretar.
type GenerateMenuResponse struct {
	Servings int                  `json:"servings"`
	MealTime string               `json:"mealTime"`
	Fallback bool                 `json:"fallback"`
	Menus    []menu.MenuCandidate `json:"menus"`
}
