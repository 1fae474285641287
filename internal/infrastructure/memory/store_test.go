package memory_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/domain/repository"
	"github.com/jdvalencia/almacen-api/internal/infrastructure/memory"
)

func seedProduct(t *testing.T, products *memory.ProductRepository) {
	t.Helper()
	require.NoError(t, products.Create(&entity.Product{
		ID:   "prod-1",
		Code: "ACET-500",
		Name: "Acetaminofén 500mg",
		Lots: []entity.Lot{
			{ID: "lot-a", LotNumber: "L-001", Available: 100, WarehouseID: "wh-1"},
		},
	}))
}

func TestProductRepository_EntregaCopias(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	seedProduct(t, products)

	// Mutar lo leído no debe afectar el almacén hasta hacer Update.
	p, err := products.GetByID("prod-1")
	require.NoError(t, err)
	p.Lots[0].Available = 1
	p.Name = "otro nombre"

	again, err := products.GetByID("prod-1")
	require.NoError(t, err)
	assert.Equal(t, 100, again.Lots[0].Available)
	assert.Equal(t, "Acetaminofén 500mg", again.Name)
}

func TestProductRepository_CodigoDuplicado(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	seedProduct(t, products)

	err := products.Create(&entity.Product{ID: "prod-2", Code: "ACET-500", Name: "Clon"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductRepository_GetInexistenteEsNilNil(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)

	p, err := products.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestWarehouseRepository_NombreUnicoSinMayusculas(t *testing.T) {
	store := memory.NewStore()
	warehouses := memory.NewWarehouseRepository(store)

	require.NoError(t, warehouses.Create(&entity.Warehouse{ID: "wh-1", Name: "Bodega Principal"}))

	err := warehouses.Create(&entity.Warehouse{ID: "wh-2", Name: "bodega principal"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Renombrar otra bodega al nombre tomado también falla.
	require.NoError(t, warehouses.Create(&entity.Warehouse{ID: "wh-3", Name: "Bodega Secundaria"}))
	err = warehouses.Update(&entity.Warehouse{ID: "wh-3", Name: "BODEGA PRINCIPAL"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	// Actualizarse a sí misma con su propio nombre es válido.
	require.NoError(t, warehouses.Update(&entity.Warehouse{ID: "wh-1", Name: "Bodega Principal", Address: "nueva dirección"}))
}

func TestUserRepository_EmailUnico(t *testing.T) {
	store := memory.NewStore()
	users := memory.NewUserRepository(store)

	require.NoError(t, users.Create(&entity.User{ID: "u-1", Name: "Ana", Email: "ana@almacen.co", Role: entity.RoleAdmin}))
	err := users.Create(&entity.User{ID: "u-2", Name: "Otra Ana", Email: "ANA@almacen.co", Role: entity.RoleVendedor})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	u, err := users.GetByEmail("ana@ALMACEN.co")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "u-1", u.ID)
}

func TestTransferRepository_AsignaConsecutivo(t *testing.T) {
	store := memory.NewStore()
	transfers := memory.NewTransferRepository(store)

	for i := 0; i < 2; i++ {
		tr := &entity.Transfer{ID: "tr-" + string(rune('a'+i)), OriginID: "wh-1", DestinationID: "wh-2", Status: entity.StatusSent}
		require.NoError(t, transfers.Create(tr))
	}

	first, err := transfers.GetByID("tr-a")
	require.NoError(t, err)
	assert.Equal(t, "TR-0001", first.Code)

	second, err := transfers.GetByID("tr-b")
	require.NoError(t, err)
	assert.Equal(t, "TR-0002", second.Code)
}

func TestTxRunner_RollbackCompletoEnError(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	transfers := memory.NewTransferRepository(store)
	runner := memory.NewTxRunner(store)
	seedProduct(t, products)

	require.NoError(t, transfers.Create(&entity.Transfer{
		ID: "tr-1", OriginID: "wh-1", DestinationID: "wh-2", Status: entity.StatusSent,
	}))

	boom := errors.New("falla simulada")
	err := runner.Run(context.Background(), func(
		txProducts repository.ProductRepository,
		txTransfers repository.TransferRepository,
	) error {
		p, err := txProducts.GetByID("prod-1")
		require.NoError(t, err)
		p.Lots[0].Available = 0
		require.NoError(t, txProducts.Update(p))

		tr, err := txTransfers.GetByID("tr-1")
		require.NoError(t, err)
		tr.Status = entity.StatusReceived
		require.NoError(t, txTransfers.Update(tr))

		return boom
	})
	require.ErrorIs(t, err, boom)

	// Ninguna de las dos mutaciones sobrevive.
	p, _ := products.GetByID("prod-1")
	assert.Equal(t, 100, p.Lots[0].Available)
	tr, _ := transfers.GetByID("tr-1")
	assert.Equal(t, entity.StatusSent, tr.Status)
}

func TestTxRunner_CommitEnExito(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	runner := memory.NewTxRunner(store)
	seedProduct(t, products)

	err := runner.Run(context.Background(), func(
		txProducts repository.ProductRepository,
		_ repository.TransferRepository,
	) error {
		p, err := txProducts.GetByID("prod-1")
		if err != nil {
			return err
		}
		p.Lots[0].Available = 75
		return txProducts.Update(p)
	})
	require.NoError(t, err)

	p, _ := products.GetByID("prod-1")
	assert.Equal(t, 75, p.Lots[0].Available)
}

func TestList_PaginacionPorOffset(t *testing.T) {
	store := memory.NewStore()
	products := memory.NewProductRepository(store)

	now := time.Now()
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, products.Create(&entity.Product{
			ID: "prod-" + id, Code: "C-" + id, Name: "Producto " + id, CreatedAt: now, UpdatedAt: now,
		}))
	}

	page, err := products.List(2, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "prod-c", page[0].ID)
	assert.Equal(t, "prod-d", page[1].ID)

	// Offset fuera de rango devuelve vacío, no error.
	page, err = products.List(2, 10)
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestSeedDemo_CargaElDatasetCompleto(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, memory.SeedDemo(store))

	warehouses, err := memory.NewWarehouseRepository(store).All()
	require.NoError(t, err)
	assert.Len(t, warehouses, 2)

	products, err := memory.NewProductRepository(store).All()
	require.NoError(t, err)
	require.Len(t, products, 3)
	for _, p := range products {
		assert.NotEmpty(t, p.Lots, "cada producto de demo trae al menos un lote")
	}

	users, err := memory.NewUserRepository(store).List(0, 0)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
