package ledger_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvalencia/almacen-api/internal/application/ledger"
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixtures: un producto con dos lotes en la bodega principal y uno en la
// secundaria. Los IDs de bodega son opacos para el libro; basta con que sean
// distintos.
// ──────────────────────────────────────────────────────────────────────────────

const (
	bodegaPrincipal  = "wh-principal"
	bodegaSecundaria = "wh-secundaria"
)

func seedProduct(t *testing.T) (*memory.Store, *entity.Product) {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)

	now := time.Now()
	p := &entity.Product{
		ID:      "prod-1",
		Code:    "ACET-500",
		Name:    "Acetaminofén 500mg",
		Price:   decimal.NewFromInt(12500),
		TaxRate: decimal.Zero,
		Active:  true,
		Lots: []entity.Lot{
			{ID: "lot-a", LotNumber: "L-001", Available: 100, ExpiryDate: now.AddDate(1, 0, 0), WarehouseID: bodegaPrincipal},
			{ID: "lot-b", LotNumber: "L-002", Available: 40, ExpiryDate: now.AddDate(0, 6, 0), WarehouseID: bodegaPrincipal},
			{ID: "lot-c", LotNumber: "L-001", Available: 15, ExpiryDate: now.AddDate(1, 0, 0), WarehouseID: bodegaSecundaria},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, products.Create(p))
	return store, p
}

func TestFindAvailableLots_FiltraPorBodegaYDisponibilidad(t *testing.T) {
	store, _ := seedProduct(t)
	uc := ledger.NewUseCase(memory.NewProductRepository(store))

	lots, err := uc.FindAvailableLots("prod-1", bodegaPrincipal)
	require.NoError(t, err)
	require.Len(t, lots, 2)

	// Orden de llegada, sin reordenar por vencimiento.
	assert.Equal(t, "L-001", lots[0].LotNumber)
	assert.Equal(t, "L-002", lots[1].LotNumber)
}

func TestFindAvailableLots_ExcluyeLotesEnCero(t *testing.T) {
	store, _ := seedProduct(t)
	products := memory.NewProductRepository(store)
	uc := ledger.NewUseCase(products)

	require.NoError(t, uc.ReduceQuantity("prod-1", "L-002", bodegaPrincipal, 40))

	lots, err := uc.FindAvailableLots("prod-1", bodegaPrincipal)
	require.NoError(t, err)
	require.Len(t, lots, 1, "un lote en cero no debe listarse como disponible")
	assert.Equal(t, "L-001", lots[0].LotNumber)
}

func TestFindAvailableLots_ProductoInexistente(t *testing.T) {
	store, _ := seedProduct(t)
	uc := ledger.NewUseCase(memory.NewProductRepository(store))

	_, err := uc.FindAvailableLots("no-existe", bodegaPrincipal)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReduceQuantity_DescuentaDelLoteCorrecto(t *testing.T) {
	store, _ := seedProduct(t)
	products := memory.NewProductRepository(store)
	uc := ledger.NewUseCase(products)

	require.NoError(t, uc.ReduceQuantity("prod-1", "L-001", bodegaPrincipal, 30))

	p, err := products.GetByID("prod-1")
	require.NoError(t, err)
	assert.Equal(t, 70, p.FindLot("L-001", bodegaPrincipal).Available)
	// El lote del mismo número en la otra bodega no se toca.
	assert.Equal(t, 15, p.FindLot("L-001", bodegaSecundaria).Available)
}

func TestReduceQuantity_StockInsuficienteNoMuta(t *testing.T) {
	store, _ := seedProduct(t)
	products := memory.NewProductRepository(store)
	uc := ledger.NewUseCase(products)

	err := uc.ReduceQuantity("prod-1", "L-002", bodegaPrincipal, 41)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	p, _ := products.GetByID("prod-1")
	assert.Equal(t, 40, p.FindLot("L-002", bodegaPrincipal).Available, "un descuento rechazado no debe mutar el lote")
}

func TestReduceQuantity_LoteInexistente(t *testing.T) {
	store, _ := seedProduct(t)
	uc := ledger.NewUseCase(memory.NewProductRepository(store))

	err := uc.ReduceQuantity("prod-1", "L-999", bodegaPrincipal, 1)
	assert.ErrorIs(t, err, domain.ErrLotNotFound)

	// Mismo número de lote pero en bodega sin ese lote: también es LotNotFound.
	err = uc.ReduceQuantity("prod-1", "L-002", bodegaSecundaria, 1)
	assert.ErrorIs(t, err, domain.ErrLotNotFound)
}

func TestReduceQuantity_CantidadInvalida(t *testing.T) {
	store, _ := seedProduct(t)
	uc := ledger.NewUseCase(memory.NewProductRepository(store))

	assert.ErrorIs(t, uc.ReduceQuantity("prod-1", "L-001", bodegaPrincipal, 0), domain.ErrInvalidInput)
	assert.ErrorIs(t, uc.ReduceQuantity("prod-1", "L-001", bodegaPrincipal, -5), domain.ErrInvalidInput)
}

func TestIncreaseOrCreateQuantity_SumaSobreLoteExistente(t *testing.T) {
	store, _ := seedProduct(t)
	products := memory.NewProductRepository(store)
	uc := ledger.NewUseCase(products)

	require.NoError(t, uc.IncreaseOrCreateQuantity("prod-1", "L-001", bodegaPrincipal, 20, time.Now().AddDate(2, 0, 0)))

	p, _ := products.GetByID("prod-1")
	lot := p.FindLot("L-001", bodegaPrincipal)
	assert.Equal(t, 120, lot.Available)
	require.Len(t, p.Lots, 3, "sumar sobre un lote existente no debe crear lotes nuevos")
}

func TestIncreaseOrCreateQuantity_CreaLoteConVencimiento(t *testing.T) {
	store, _ := seedProduct(t)
	products := memory.NewProductRepository(store)
	uc := ledger.NewUseCase(products)

	expiry := time.Date(2027, 3, 15, 0, 0, 0, 0, time.UTC)
	require.NoError(t, uc.IncreaseOrCreateQuantity("prod-1", "L-002", bodegaSecundaria, 25, expiry))

	p, _ := products.GetByID("prod-1")
	lot := p.FindLot("L-002", bodegaSecundaria)
	require.NotNil(t, lot)
	assert.Equal(t, 25, lot.Available)
	assert.True(t, expiry.Equal(lot.ExpiryDate), "el lote nuevo debe quedar con el vencimiento dado")
	assert.NotEmpty(t, lot.ID)
	require.Len(t, p.Lots, 4)
}

func TestTotalAvailable_PorBodegaYGlobal(t *testing.T) {
	store, _ := seedProduct(t)
	uc := ledger.NewUseCase(memory.NewProductRepository(store))

	total, err := uc.TotalAvailable("prod-1", bodegaPrincipal)
	require.NoError(t, err)
	assert.Equal(t, 140, total)

	total, err = uc.TotalAvailable("prod-1", "")
	require.NoError(t, err)
	assert.Equal(t, 155, total, "warehouseID vacío suma todas las bodegas")
}
