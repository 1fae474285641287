package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jdvalencia/almacen-api/internal/application/dto"
	"github.com/jdvalencia/almacen-api/internal/application/export"
	"github.com/jdvalencia/almacen-api/internal/application/purchasing"
)

// PurchaseOrderHandler maneja las peticiones HTTP de órdenes de compra.
type PurchaseOrderHandler struct {
	uc     *purchasing.UseCase
	export *export.UseCase
}

// NewPurchaseOrderHandler construye el handler.
func NewPurchaseOrderHandler(uc *purchasing.UseCase, exportUC *export.UseCase) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{uc: uc, export: exportUC}
}

// Create godoc
// @Summary      Crear orden de compra
// @Description  Calcula subtotal, IVA por producto y total de la orden.
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "Datos de la orden"
// @Success      201   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener orden de compra por ID
// @Tags         purchase-orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseOrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "orden de compra no encontrada")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar órdenes de compra
// @Tags         purchase-orders
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.PurchaseOrderListResponse
// @Router       /api/purchase-orders [get]
func (h *PurchaseOrderHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Receive godoc
// @Summary      Marcar orden de compra como recibida
// @Tags         purchase-orders
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  dto.PurchaseOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/receive [post]
func (h *PurchaseOrderHandler) Receive(c *fiber.Ctx) error {
	out, err := h.uc.MarkReceived(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Cancel godoc
// @Summary      Anular una orden de compra
// @Tags         purchase-orders
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la orden"
// @Param        body  body  dto.CancelRequest  true  "Motivo de anulación"
// @Success      200   {object}  dto.PurchaseOrderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/cancel [post]
func (h *PurchaseOrderHandler) Cancel(c *fiber.Ctx) error {
	var in dto.CancelRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Cancel(c.Params("id"), in.Reason)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// PDF godoc
// @Summary      Descargar orden de compra en PDF
// @Tags         purchase-orders
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/pdf [get]
func (h *PurchaseOrderHandler) PDF(c *fiber.Ctx) error {
	doc, err := h.export.PurchaseOrderPDF(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=orden-%s.pdf", c.Params("id")))
	return c.Send(doc)
}

// ExportCSV godoc
// @Summary      Exportar órdenes de compra a CSV
// @Tags         purchase-orders
// @Produce      text/csv
// @Success      200  {file}  binary
// @Router       /api/purchase-orders/export/csv [get]
func (h *PurchaseOrderHandler) ExportCSV(c *fiber.Ctx) error {
	out, err := h.export.PurchaseOrdersCSV()
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=ordenes-compra-%s.csv", time.Now().Format("2006-01-02")))
	return c.Send(out)
}
