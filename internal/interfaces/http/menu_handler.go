package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kondate-api/internal/application/dto"
	"github.com/jhoicas/kondate-api/internal/application/menu"
	"github.com/jhoicas/kondate-api/internal/domain"
)

// MenuHandler generación de menús con IA.
type MenuHandler struct {
	uc *menu.GenerateUseCase
}

// NewMenuHandler construye el handler.
func NewMenuHandler(uc *menu.GenerateUseCase) *MenuHandler {
	return &MenuHandler{uc: uc}
}

// Generate godoc
// @Summary      Generar candidatos de menú
// @Description  Propone platos con los ingredientes del ledger. El precio de cada candidato
//               se recalcula en el servidor. Si la respuesta del modelo no se puede
//               interpretar se devuelve un único candidato genérico (fallback=true).
// @Tags         menus
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateMenuRequest  true  "mealTime obligatorio; servings 0 = configuración"
// @Success      200   {object}  dto.GenerateMenuResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      408   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/menus/generate [post]
func (h *MenuHandler) Generate(c *fiber.Ctx) error {
	var in dto.GenerateMenuRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}

	resp, err := h.uc.Generate(c.Context(), in)
	if err != nil {
		// Sin inventario: error de dominio, pero el cliente recibe una lista vacía de candidatos.
		if errors.Is(err, domain.ErrNoInventory) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"code":    "NO_INVENTORY",
				"message": err.Error(),
				"menus":   []any{},
			})
		}
		return writeError(c, err)
	}
	return c.JSON(resp)
}
