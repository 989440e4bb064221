package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kondate-api/internal/application/dto"
	"github.com/jhoicas/kondate-api/internal/application/usecase"
)

// ServingsHandler configuración de porciones.
type ServingsHandler struct {
	uc *usecase.ServingsUseCase
}

// NewServingsHandler construye el handler.
func NewServingsHandler(uc *usecase.ServingsUseCase) *ServingsHandler {
	return &ServingsHandler{uc: uc}
}

// Get godoc
// @Summary      Porciones por defecto
// @Tags         servings
// @Produce      json
// @Success      200  {object}  entity.ServingConfig
// @Router       /api/servings [get]
func (h *ServingsHandler) Get(c *fiber.Ctx) error {
	cfg, err := h.uc.Get(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cfg)
}

// Set godoc
// @Summary      Cambiar porciones por defecto
// @Tags         servings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ServingsRequest  true  "servings > 0"
// @Success      200   {object}  entity.ServingConfig
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/servings [put]
func (h *ServingsHandler) Set(c *fiber.Ctx) error {
	var in dto.ServingsRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	cfg, err := h.uc.Set(c.Context(), in.Servings)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(cfg)
}
