package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jdvalencia/almacen-api/internal/application/dto"
	"github.com/jdvalencia/almacen-api/internal/application/export"
	"github.com/jdvalencia/almacen-api/internal/application/transfer"
)

// TransferHandler maneja las peticiones HTTP de traslados entre bodegas.
type TransferHandler struct {
	uc     *transfer.UseCase
	export *export.UseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *transfer.UseCase, exportUC *export.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc, export: exportUC}
}

// Create godoc
// @Summary      Crear traslado
// @Description  Valida bodegas, responsable y disponibilidad por lote; el traslado
//
//	nace en estado SENT y no mueve inventario hasta recibirse.
//
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "Datos del traslado"
// @Success      201   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
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
// @Summary      Obtener traslado por ID
// @Tags         transfers
// @Produce      json
// @Param        id   path  string  true  "ID del traslado"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id} [get]
func (h *TransferHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "traslado no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar traslados
// @Tags         transfers
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.TransferListResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receive godoc
// @Summary      Confirmar recepción de un traslado
// @Description  Aplica el movimiento de inventario completo o no aplica nada:
//
//	descuenta cada lote en la bodega de origen y lo suma en destino
//	conservando la fecha de vencimiento.
//
// @Tags         transfers
// @Produce      json
// @Param        id   path  string  true  "ID del traslado"
// @Success      200  {object}  dto.TransferResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/receive [post]
func (h *TransferHandler) Receive(c *fiber.Ctx) error {
	out, err := h.uc.MarkReceived(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Anular un traslado
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del traslado"
// @Param        body  body  dto.CancelRequest  true  "Motivo de anulación"
// @Success      200   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/cancel [post]
func (h *TransferHandler) Cancel(c *fiber.Ctx) error {
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

// PDF godoc
// @Summary      Descargar traslado en PDF
// @Tags         transfers
// @Produce      application/pdf
// @Param        id   path  string  true  "ID del traslado"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id}/pdf [get]
func (h *TransferHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.export.TransferPDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=traslado-%s.pdf", c.Params("id")))
	return c.Send(doc)
}

// ExportCSV godoc
// @Summary      Exportar traslados a CSV
// @Tags         transfers
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/transfers/export/csv [get]
func (h *TransferHandler) ExportCSV(c *fiber.Ctx) error {
	out, err := h.export.TransfersCSV()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=traslados-%s.csv", time.Now().Format("2006-01-02")))
	return c.Send(out)
}
