package remission_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvalencia/almacen-api/internal/application/dto"
	"github.com/jdvalencia/almacen-api/internal/application/remission"
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/infrastructure/memory"
)

func newFixture(t *testing.T) (*remission.UseCase, *memory.ProductRepository, string) {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	warehouses := memory.NewWarehouseRepository(store)
	remissions := memory.NewRemissionRepository(store)
	txRunner := memory.NewTxRunner(store)

	now := time.Now()
	warehouse := &entity.Warehouse{ID: "wh-1", Name: "Bodega Principal", Active: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, warehouses.Create(warehouse))

	product := &entity.Product{
		ID: "prod-1", Code: "ACET-500", Name: "Acetaminofén 500mg",
		Price: decimal.NewFromInt(12500), Active: true,
		CreatedAt: now, UpdatedAt: now,
	}
	require.NoError(t, products.Create(product))

	return remission.NewUseCase(txRunner, products, warehouses, remissions), products, warehouse.ID
}

func createRequest(warehouseID string, expiry time.Time) dto.CreateRemissionRequest {
	return dto.CreateRemissionRequest{
		Supplier:    "Droguería Nacional S.A.",
		WarehouseID: warehouseID,
		Items: []dto.RemissionItemRequest{
			{ProductID: "prod-1", LotNumber: "L-100", Quantity: 60, ExpiryDate: expiry},
		},
	}
}

func TestCreate_NaceEnSentSinIngresarMercancia(t *testing.T) {
	uc, products, warehouseID := newFixture(t)
	expiry := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)

	out, err := uc.Create(context.Background(), createRequest(warehouseID, expiry))
	require.NoError(t, err)

	assert.Equal(t, entity.StatusSent, out.Status)
	assert.Equal(t, "RM-0001", out.Code)
	assert.Equal(t, "Bodega Principal", out.WarehouseName)

	p, _ := products.GetByID("prod-1")
	assert.Empty(t, p.Lots, "crear la remisión no ingresa el lote")
}

func TestCreate_ValidaBodegaYProducto(t *testing.T) {
	uc, _, _ := newFixture(t)
	expiry := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)

	in := createRequest("wh-fantasma", expiry)
	in.Items = append(in.Items, dto.RemissionItemRequest{ProductID: "prod-fantasma", LotNumber: "X", Quantity: 1, ExpiryDate: expiry})

	_, err := uc.Create(context.Background(), in)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	fields := make([]string, 0, len(vErr.Fields))
	for _, fe := range vErr.Fields {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "warehouse_id")
	assert.Contains(t, fields, "items[1].product_id")
}

func TestMarkReceived_CreaElLoteConVencimiento(t *testing.T) {
	uc, products, warehouseID := newFixture(t)
	ctx := context.Background()
	expiry := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)

	created, err := uc.Create(ctx, createRequest(warehouseID, expiry))
	require.NoError(t, err)

	out, err := uc.MarkReceived(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReceived, out.Status)

	p, _ := products.GetByID("prod-1")
	lot := p.FindLot("L-100", warehouseID)
	require.NotNil(t, lot)
	assert.Equal(t, 60, lot.Available)
	assert.True(t, expiry.Equal(lot.ExpiryDate))
}

func TestMarkReceived_SegundaRemisionFusionaElLote(t *testing.T) {
	uc, products, warehouseID := newFixture(t)
	ctx := context.Background()
	expiry := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 2; i++ {
		created, err := uc.Create(ctx, createRequest(warehouseID, expiry))
		require.NoError(t, err)
		_, err = uc.MarkReceived(ctx, created.ID)
		require.NoError(t, err)
	}

	p, _ := products.GetByID("prod-1")
	require.Len(t, p.Lots, 1, "el mismo (lote, bodega) se fusiona en una fila")
	assert.Equal(t, 120, p.Lots[0].Available)
}

func TestMarkReceived_DobleRecepcionRechazada(t *testing.T) {
	uc, products, warehouseID := newFixture(t)
	ctx := context.Background()
	expiry := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)

	created, err := uc.Create(ctx, createRequest(warehouseID, expiry))
	require.NoError(t, err)
	_, err = uc.MarkReceived(ctx, created.ID)
	require.NoError(t, err)

	_, err = uc.MarkReceived(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	p, _ := products.GetByID("prod-1")
	assert.Equal(t, 60, p.FindLot("L-100", warehouseID).Available, "la mercancía no entra dos veces")
}

func TestCancel_SentConMotivo(t *testing.T) {
	uc, products, warehouseID := newFixture(t)
	ctx := context.Background()
	expiry := time.Date(2027, 1, 31, 0, 0, 0, 0, time.UTC)

	created, err := uc.Create(ctx, createRequest(warehouseID, expiry))
	require.NoError(t, err)

	out, err := uc.Cancel(ctx, created.ID, "pedido rechazado en portería")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, out.Status)
	assert.Contains(t, out.Notes, "[ANULADO] pedido rechazado en portería")

	p, _ := products.GetByID("prod-1")
	assert.Empty(t, p.Lots)

	// Una remisión anulada ya no puede recibirse.
	_, err = uc.MarkReceived(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}
