package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/kondate-api/internal/application/dto"
	"github.com/jhoicas/kondate-api/internal/application/history"
	"github.com/jhoicas/kondate-api/internal/domain"
)

// HistoryHandler historial de comidas y liquidación.
type HistoryHandler struct {
	uc *history.UseCase
}

// NewHistoryHandler construye el handler.
func NewHistoryHandler(uc *history.UseCase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// List godoc
// @Summary      Historial de comidas
// @Tags         history
// @Produce      json
// @Param        month  query  string  false  "YYYY-MM"
// @Success      200    {object}  dto.HistoryListResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/history [get]
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	resp, err := h.uc.List(c.Context(), q.Month)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Confirm godoc
// @Summary      Confirmar comida
// @Description  Registra el plato en el historial y descuenta sus ingredientes del ledger.
//               Los ingredientes que no están en el ledger se omiten.
// @Tags         history
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ConfirmMealRequest  true  "date (YYYY-MM-DD), mealTime, dish"
// @Success      201   {object}  dto.ConfirmMealResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/history [post]
func (h *HistoryHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmMealRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	if err := validateStruct(in); err != nil {
		return writeError(c, err)
	}
	resp, err := h.uc.Confirm(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Export godoc
// @Summary      Exportar historial
// @Tags         history
// @Produce      application/pdf
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        month   query  string  false  "YYYY-MM"
// @Param        format  query  string  false  "pdf (por defecto) o xlsx"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/history/export [get]
func (h *HistoryHandler) Export(c *fiber.Ctx) error {
	q, err := h.parseQuery(c)
	if err != nil {
		return writeError(c, err)
	}
	body, contentType, filename, err := h.uc.Export(c.Context(), q.Month, q.Format)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(body)
}

func (h *HistoryHandler) parseQuery(c *fiber.Ctx) (dto.HistoryQuery, error) {
	var q dto.HistoryQuery
	if err := c.QueryParser(&q); err != nil {
		return q, fmt.Errorf("%w: parámetros de consulta inválidos", domain.ErrInvalidInput)
	}
	return q, validateStruct(q)
}
