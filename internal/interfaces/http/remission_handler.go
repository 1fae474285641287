package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvalencia/almacen-api/internal/application/dto"
	"github.com/jdvalencia/almacen-api/internal/application/remission"
)

// RemissionHandler maneja las peticiones HTTP de remisiones de entrada.
type RemissionHandler struct {
	uc *remission.UseCase
}

// NewRemissionHandler construye el handler.
func NewRemissionHandler(uc *remission.UseCase) *RemissionHandler {
	return &RemissionHandler{uc: uc}
}

// Create godoc
// @Summary      Crear remisión
// @Tags         remissions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRemissionRequest  true  "Datos de la remisión"
// @Success      201   {object}  dto.RemissionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/remissions [post]
func (h *RemissionHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRemissionRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener remisión por ID
// @Tags         remissions
// @Produce      json
// @Param        id   path  string  true  "ID de la remisión"
// @Success      200  {object}  dto.RemissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/remissions/{id} [get]
func (h *RemissionHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "remisión no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar remisiones
// @Tags         remissions
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.RemissionListResponse
// @Router       /api/remissions [get]
func (h *RemissionHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receive godoc
// @Summary      Confirmar recepción de una remisión
// @Description  Ingresa la mercancía al inventario de la bodega destino; si
//
//	algún renglón falla no se aplica ninguno.
//
// @Tags         remissions
// @Produce      json
// @Param        id   path  string  true  "ID de la remisión"
// @Success      200  {object}  dto.RemissionResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/remissions/{id}/receive [post]
func (h *RemissionHandler) Receive(c *fiber.Ctx) error {
	out, err := h.uc.MarkReceived(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Anular una remisión
// @Tags         remissions
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la remisión"
// @Param        body  body  dto.CancelRequest  true  "Motivo de anulación"
// @Success      200   {object}  dto.RemissionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/remissions/{id}/cancel [post]
func (h *RemissionHandler) Cancel(c *fiber.Ctx) error {
	var in dto.CancelRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Cancel(c.Context(), c.Params("id"), in.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
