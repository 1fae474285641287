package stock_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvalencia/almacen-api/internal/application/stock"
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/infrastructure/memory"
)

// Catálogo de prueba: tres productos repartidos en dos bodegas. El nombre con
// tilde y las categorías en mayúscula mixta ejercitan el folding.
func newQuery(t *testing.T) (*stock.QueryUseCase, string, string) {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	warehouses := memory.NewWarehouseRepository(store)

	now := time.Now()
	principal := &entity.Warehouse{ID: "wh-1", Name: "Bodega Principal", Active: true, CreatedAt: now, UpdatedAt: now}
	secundaria := &entity.Warehouse{ID: "wh-2", Name: "Bodega Secundaria", Active: true, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, warehouses.Create(principal))
	require.NoError(t, warehouses.Create(secundaria))

	expiry := time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC)
	for _, p := range []*entity.Product{
		{
			ID: "prod-1", Code: "ACET-500", Name: "Acetaminofén 500mg", Category: "Analgésicos",
			Price: decimal.NewFromInt(12500), Active: true,
			Lots: []entity.Lot{
				{ID: "l1", LotNumber: "L-001", Available: 100, ExpiryDate: expiry, WarehouseID: "wh-1"},
			},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "prod-2", Code: "AMOX-250", Name: "Amoxicilina 250mg", Category: "Antibióticos",
			Price: decimal.NewFromInt(23800), Active: true,
			Lots: []entity.Lot{
				{ID: "l2", LotNumber: "AMX-881", Available: 40, ExpiryDate: expiry, WarehouseID: "wh-2"},
			},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "prod-3", Code: "GASA-EST", Name: "Gasa estéril 10x10", Category: "Insumos",
			Price: decimal.NewFromInt(8900), Active: true,
			Lots: []entity.Lot{
				{ID: "l3", LotNumber: "GS-1102", Available: 200, ExpiryDate: expiry, WarehouseID: "wh-1"},
				{ID: "l4", LotNumber: "GS-1102", Available: 50, ExpiryDate: expiry, WarehouseID: "wh-2"},
			},
			CreatedAt: now, UpdatedAt: now,
		},
	} {
		require.NoError(t, products.Create(p))
	}

	return stock.NewQueryUseCase(products, warehouses), principal.ID, secundaria.ID
}

func TestSearch_IgnoraMayusculasYTildes(t *testing.T) {
	uc, _, _ := newQuery(t)

	// "acetaminofen" sin tilde debe encontrar "Acetaminofén".
	out, err := uc.Search("acetaminofen", "", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "prod-1", out.Items[0].ID)

	// Y al revés: término con tilde contra texto sin ella.
	out, err = uc.Search("antibióticos", "", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "prod-2", out.Items[0].ID)
}

func TestSearch_OrEntreCampos(t *testing.T) {
	uc, _, _ := newQuery(t)

	// Por código.
	out, err := uc.Search("amox", "", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "prod-2", out.Items[0].ID)

	// Por número de lote.
	out, err = uc.Search("gs-1102", "", 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "prod-3", out.Items[0].ID)

	// Por texto de vencimiento (todos vencen el mismo día).
	out, err = uc.Search("2027-03", "", 20, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 3)
}

func TestSearch_AndConFiltroDeBodega(t *testing.T) {
	uc, principal, secundaria := newQuery(t)

	// El término matchea por vencimiento a los tres, pero en la bodega
	// principal solo hay lotes de prod-1 y prod-3.
	out, err := uc.Search("2027-03", principal, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "prod-1", out.Items[0].ID)
	assert.Equal(t, "prod-3", out.Items[1].ID)

	// El lote AMX-881 vive en la secundaria: buscarlo en la principal no
	// matchea aunque el producto exista.
	out, err = uc.Search("amx-881", principal, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, out.Items)

	out, err = uc.Search("amx-881", secundaria, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "prod-2", out.Items[0].ID)
}

func TestSearch_SoloFiltroDeBodega(t *testing.T) {
	uc, _, secundaria := newQuery(t)

	out, err := uc.Search("", secundaria, 20, 0)
	require.NoError(t, err)
	require.Len(t, out.Items, 2)

	// Con filtro activo el stock y los lotes mostrados son los de esa bodega.
	for _, item := range out.Items {
		for _, lot := range item.Lots {
			assert.Equal(t, secundaria, lot.WarehouseID)
			assert.Equal(t, "Bodega Secundaria", lot.WarehouseName)
		}
	}
	assert.Equal(t, 50, out.Items[1].StockTotal, "el stock mostrado se restringe a la bodega filtrada")
}

func TestSearch_SinCoincidencias(t *testing.T) {
	uc, _, _ := newQuery(t)

	out, err := uc.Search("ibuprofeno", "", 20, 0)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.Page.Total)
}

func TestSearch_PaginacionConTotalDelFiltrado(t *testing.T) {
	uc, _, _ := newQuery(t)

	out, err := uc.Search("", "", 2, 0)
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
	assert.Equal(t, 3, out.Page.Total)

	out, err = uc.Search("", "", 2, 2)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "prod-3", out.Items[0].ID)

	// Offset más allá del final: página vacía, mismo total.
	out, err = uc.Search("", "", 2, 10)
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, 3, out.Page.Total)
}

func TestStockByWarehouse_AgregadoPorBodegaYGlobal(t *testing.T) {
	uc, principal, _ := newQuery(t)

	out, err := uc.StockByWarehouse("prod-3", principal)
	require.NoError(t, err)
	assert.Equal(t, 200, out.Available)

	out, err = uc.StockByWarehouse("prod-3", "")
	require.NoError(t, err)
	assert.Equal(t, 250, out.Available)
}

func TestStockByWarehouse_BodegaInexistente(t *testing.T) {
	uc, _, _ := newQuery(t)

	_, err := uc.StockByWarehouse("prod-1", "wh-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAvailableLots_ResuelveNombreDeBodega(t *testing.T) {
	uc, principal, _ := newQuery(t)

	lots, err := uc.AvailableLots("prod-3", principal)
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, "GS-1102", lots[0].LotNumber)
	assert.Equal(t, "Bodega Principal", lots[0].WarehouseName)
}
