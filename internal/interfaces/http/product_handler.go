package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvalencia/almacen-api/internal/application/dto"
	"github.com/jdvalencia/almacen-api/internal/application/stock"
	"github.com/jdvalencia/almacen-api/internal/application/usecase"
)

// ProductHandler maneja las peticiones HTTP del catálogo de productos.
type ProductHandler struct {
	uc    *usecase.ProductUseCase
	stock *stock.QueryUseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, stock *stock.QueryUseCase) *ProductHandler {
	return &ProductHandler{uc: uc, stock: stock}
}

// Create godoc
// @Summary      Crear producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
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
// @Summary      Obtener producto por ID
// @Tags         products
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del producto"
// @Param        body  body  dto.UpdateProductRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "producto no encontrado")
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar o buscar productos
// @Description  Con q busca por código, nombre, categoría, lote o fecha de vencimiento
//
//	(sin distinguir mayúsculas ni tildes); warehouse_id limita a una bodega.
//
// @Tags         products
// @Produce      json
// @Param        q             query  string  false  "Término de búsqueda"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.ProductListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	term := c.Query("q")
	warehouseID := c.Query("warehouse_id")

	if term == "" && warehouseID == "" {
		out, err := h.uc.List(limit, offset)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}

	out, err := h.stock.Search(term, warehouseID, limit, offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Lots godoc
// @Summary      Lotes disponibles de un producto
// @Tags         products
// @Produce      json
// @Param        id            path   string  true   "ID del producto"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Success      200  {array}   dto.LotResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/lots [get]
func (h *ProductHandler) Lots(c *fiber.Ctx) error {
	out, err := h.stock.AvailableLots(c.Params("id"), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Stock godoc
// @Summary      Stock agregado de un producto
// @Tags         products
// @Produce      json
// @Param        id            path   string  true   "ID del producto"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *ProductHandler) Stock(c *fiber.Ctx) error {
	out, err := h.stock.StockByWarehouse(c.Params("id"), c.Query("warehouse_id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
