package purchasing_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvalencia/almacen-api/internal/application/dto"
	"github.com/jdvalencia/almacen-api/internal/application/purchasing"
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/domain/entity"
	"github.com/jdvalencia/almacen-api/internal/infrastructure/memory"
)

// Dos productos con tarifas de IVA distintas para verificar la liquidación
// línea a línea.
func newFixture(t *testing.T) (*purchasing.UseCase, *memory.ProductRepository) {
	t.Helper()
	store := memory.NewStore()
	products := memory.NewProductRepository(store)
	orders := memory.NewPurchaseOrderRepository(store)

	now := time.Now()
	for _, p := range []*entity.Product{
		{
			ID: "prod-exento", Code: "ACET-500", Name: "Acetaminofén 500mg",
			Price: decimal.NewFromInt(10000), TaxRate: decimal.Zero,
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: "prod-gravado", Code: "GASA-EST", Name: "Gasa estéril 10x10",
			Price: decimal.NewFromInt(8900), TaxRate: decimal.NewFromFloat(0.19),
			Active: true, CreatedAt: now, UpdatedAt: now,
		},
	} {
		require.NoError(t, products.Create(p))
	}

	return purchasing.NewUseCase(orders, products), products
}

func TestCreate_LiquidaImpuestoPorProducto(t *testing.T) {
	uc, _ := newFixture(t)

	out, err := uc.Create(dto.CreatePurchaseOrderRequest{
		Supplier: "Droguería Nacional S.A.",
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: "prod-exento", Quantity: 10, UnitPrice: decimal.NewFromInt(9500)},
			{ProductID: "prod-gravado", Quantity: 4, UnitPrice: decimal.NewFromInt(8000)},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "OC-0001", out.Code)
	assert.Equal(t, entity.StatusSent, out.Status)
	require.Len(t, out.Items, 2)

	// Línea exenta: 10 x 9500 = 95000, IVA 0.
	assert.True(t, decimal.NewFromInt(95000).Equal(out.Items[0].Subtotal))
	assert.True(t, out.Items[0].Tax.IsZero())

	// Línea gravada: 4 x 8000 = 32000, IVA 19% = 6080.
	assert.True(t, decimal.NewFromInt(32000).Equal(out.Items[1].Subtotal))
	assert.True(t, decimal.NewFromInt(6080).Equal(out.Items[1].Tax))
	assert.True(t, decimal.NewFromInt(38080).Equal(out.Items[1].Total))

	// Totales del documento.
	assert.True(t, decimal.NewFromInt(127000).Equal(out.Subtotal))
	assert.True(t, decimal.NewFromInt(6080).Equal(out.Tax))
	assert.True(t, decimal.NewFromInt(133080).Equal(out.Total))
}

func TestCreate_PrecioCeroTomaElDelProducto(t *testing.T) {
	uc, _ := newFixture(t)

	out, err := uc.Create(dto.CreatePurchaseOrderRequest{
		Supplier: "Droguería Nacional S.A.",
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: "prod-gravado", Quantity: 2},
		},
	})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(8900).Equal(out.Items[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(17800).Equal(out.Items[0].Subtotal))
}

func TestCreate_RechazaLineasInvalidas(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.Create(dto.CreatePurchaseOrderRequest{
		Supplier: "Droguería Nacional S.A.",
		Items: []dto.PurchaseOrderItemRequest{
			{ProductID: "prod-exento", Quantity: 1},
			{ProductID: "prod-exento", Quantity: 2}, // duplicada
			{ProductID: "prod-fantasma", Quantity: 1},
			{ProductID: "prod-gravado", Quantity: 1, UnitPrice: decimal.NewFromInt(-100)},
		},
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	fields := make([]string, 0, len(vErr.Fields))
	for _, fe := range vErr.Fields {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "items[1]")
	assert.Contains(t, fields, "items[2].product_id")
	assert.Contains(t, fields, "items[3].unit_price")

	// Nada se persiste en un create rechazado.
	list, err := uc.List(10, 0)
	require.NoError(t, err)
	assert.Empty(t, list.Items)
}

func TestTransiciones_SoloDesdeSent(t *testing.T) {
	uc, products := newFixture(t)

	created, err := uc.Create(dto.CreatePurchaseOrderRequest{
		Supplier: "Droguería Nacional S.A.",
		Items:    []dto.PurchaseOrderItemRequest{{ProductID: "prod-exento", Quantity: 5}},
	})
	require.NoError(t, err)

	out, err := uc.MarkReceived(created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusReceived, out.Status)

	// La orden es documental: recibirla no ingresa mercancía al libro.
	p, _ := products.GetByID("prod-exento")
	assert.Empty(t, p.Lots)

	_, err = uc.MarkReceived(created.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	_, err = uc.Cancel(created.ID, "ya no se necesita")
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestCancel_ConMotivoObligatorio(t *testing.T) {
	uc, _ := newFixture(t)

	created, err := uc.Create(dto.CreatePurchaseOrderRequest{
		Supplier: "Droguería Nacional S.A.",
		Items:    []dto.PurchaseOrderItemRequest{{ProductID: "prod-exento", Quantity: 5}},
	})
	require.NoError(t, err)

	_, err = uc.Cancel(created.ID, "")
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	out, err := uc.Cancel(created.ID, "proveedor sin inventario")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, out.Status)
	assert.Contains(t, out.Notes, "[ANULADO] proveedor sin inventario")
}
