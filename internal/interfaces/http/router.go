package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kondate-api/internal/application/history"
	"github.com/jhoicas/kondate-api/internal/application/inventory"
	"github.com/jhoicas/kondate-api/internal/application/menu"
	"github.com/jhoicas/kondate-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LedgerUC   *inventory.LedgerUseCase
	ServingsUC *usecase.ServingsUseCase
	MenuUC     *menu.GenerateUseCase
	HistoryUC  *history.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Ingredientes (ledger)
	ingredients := api.Group("/ingredients")
	ingredientHandler := NewIngredientHandler(deps.LedgerUC)
	ingredients.Get("/", ingredientHandler.List)
	ingredients.Post("/", ingredientHandler.Add)
	ingredients.Delete("/", ingredientHandler.Remove)

	// Porciones
	servingsHandler := NewServingsHandler(deps.ServingsUC)
	api.Get("/servings", servingsHandler.Get)
	api.Put("/servings", servingsHandler.Set)

	// Menús
	menuHandler := NewMenuHandler(deps.MenuUC)
	api.Post("/menus/generate", menuHandler.Generate)

	// Historial y liquidación
	hist := api.Group("/history")
	historyHandler := NewHistoryHandler(deps.HistoryUC)
	hist.Get("/", historyHandler.List)
	hist.Post("/", historyHandler.Confirm)
	hist.Get("/export", historyHandler.Export)
}
