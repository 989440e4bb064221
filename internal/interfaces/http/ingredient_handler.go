package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kondate-api/internal/application/dto"
	"github.com/jhoicas/kondate-api/internal/application/inventory"
)

// IngredientHandler maneja las peticiones HTTP del ledger de ingredientes.
type IngredientHandler struct {
	uc *inventory.LedgerUseCase
}

// NewIngredientHandler construye el handler.
func NewIngredientHandler(uc *inventory.LedgerUseCase) *IngredientHandler {
	return &IngredientHandler{uc: uc}
}

// List godoc
// @Summary      Listar ingredientes
// @Tags         ingredients
// @Produce      json
// @Success      200  {array}   entity.IngredientStock
// @Router       /api/ingredients [get]
func (h *IngredientHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// Add godoc
// @Summary      Registrar compra de un ingrediente
// @Description  Deriva el precio unitario (totalPrice / quantity). Si (name, unit) ya existe
//               acumula la cantidad y sobrescribe el precio unitario.
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddIngredientRequest  true  "name, unit, quantity, totalPrice"
// @Success      200   {object}  dto.IngredientsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ingredients [post]
func (h *IngredientHandler) Add(c *fiber.Ctx) error {
	var in dto.AddIngredientRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	ledger, err := h.uc.Add(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.IngredientsResponse{Message: "ingrediente agregado", Ingredients: ledger})
}

// Remove godoc
// @Summary      Eliminar ingrediente
// @Description  Eliminar un (name, unit) inexistente no es error: responde 200 con mensaje distinto.
// @Tags         ingredients
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RemoveIngredientRequest  false  "name, unit (también aceptados como query)"
// @Success      200   {object}  dto.IngredientsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/ingredients [delete]
func (h *IngredientHandler) Remove(c *fiber.Ctx) error {
	var in dto.RemoveIngredientRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&in); err != nil {
			return invalidBody(c)
		}
	} else if err := c.QueryParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	res, err := h.uc.Remove(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	msg := "ingrediente eliminado"
	if !res.Removed {
		msg = "ingrediente no encontrado"
	}
	return c.JSON(dto.IngredientsResponse{Message: msg, Ingredients: res.Ledger})
}
