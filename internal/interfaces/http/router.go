package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jdvalencia/almacen-api/internal/application/export"
	"github.com/jdvalencia/almacen-api/internal/application/purchasing"
	"github.com/jdvalencia/almacen-api/internal/application/remission"
	"github.com/jdvalencia/almacen-api/internal/application/stock"
	"github.com/jdvalencia/almacen-api/internal/application/transfer"
	"github.com/jdvalencia/almacen-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC       *usecase.ProductUseCase
	WarehouseUC     *usecase.WarehouseUseCase
	UserUC          *usecase.UserUseCase
	StockQuery      *stock.QueryUseCase
	TransferUC      *transfer.UseCase
	RemissionUC     *remission.UseCase
	PurchaseOrderUC *purchasing.UseCase
	ExportUC        *export.UseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products (catálogo + consulta de stock)
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.StockQuery)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Get("/:id/lots", productHandler.Lots)
	products.Get("/:id/stock", productHandler.Stock)

	// Warehouses
	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Post("/", warehouseHandler.Create)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", warehouseHandler.Update)

	// Users
	users := api.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Get("/:id", userHandler.GetByID)

	// Transfers (la ruta estática de export va antes que las de :id)
	transfers := api.Group("/transfers")
	transferHandler := NewTransferHandler(deps.TransferUC, deps.ExportUC)
	transfers.Get("/export/csv", transferHandler.ExportCSV)
	transfers.Get("/", transferHandler.List)
	transfers.Post("/", transferHandler.Create)
	transfers.Get("/:id", transferHandler.GetByID)
	transfers.Post("/:id/receive", transferHandler.Receive)
	transfers.Post("/:id/cancel", transferHandler.Cancel)
	transfers.Get("/:id/pdf", transferHandler.PDF)

	// Remissions
	remissions := api.Group("/remissions")
	remissionHandler := NewRemissionHandler(deps.RemissionUC)
	remissions.Get("/", remissionHandler.List)
	remissions.Post("/", remissionHandler.Create)
	remissions.Get("/:id", remissionHandler.GetByID)
	remissions.Post("/:id/receive", remissionHandler.Receive)
	remissions.Post("/:id/cancel", remissionHandler.Cancel)

	// Purchase orders
	orders := api.Group("/purchase-orders")
	orderHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC, deps.ExportUC)
	orders.Get("/export/csv", orderHandler.ExportCSV)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/receive", orderHandler.Receive)
	orders.Post("/:id/cancel", orderHandler.Cancel)
	orders.Get("/:id/pdf", orderHandler.PDF)
}
