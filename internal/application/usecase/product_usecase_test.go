package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdvalencia/almacen-api/internal/application/dto"
	"github.com/jdvalencia/almacen-api/internal/application/usecase"
	"github.com/jdvalencia/almacen-api/internal/domain"
	"github.com/jdvalencia/almacen-api/internal/infrastructure/memory"
)

func newProductUC(t *testing.T) *usecase.ProductUseCase {
	t.Helper()
	store := memory.NewStore()
	return usecase.NewProductUseCase(
		memory.NewProductRepository(store),
		memory.NewWarehouseRepository(store),
	)
}

func validCreate() dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Code:     "ACET-500",
		Name:     "Acetaminofén 500mg",
		Category: "Analgésicos",
		Price:    decimal.NewFromInt(12500),
		TaxRate:  decimal.NewFromFloat(0.05),
	}
}

func TestProductCreate_NaceActivoSinLotes(t *testing.T) {
	uc := newProductUC(t)

	out, err := uc.Create(validCreate())
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.True(t, out.Active)
	assert.Equal(t, 0, out.StockTotal, "el stock nace en cero; los lotes entran por remisión")
	assert.Empty(t, out.Lots)
}

func TestProductCreate_TarifaNoAdmitida(t *testing.T) {
	uc := newProductUC(t)

	in := validCreate()
	in.TaxRate = decimal.NewFromFloat(0.16)
	_, err := uc.Create(in)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "tax_rate", vErr.Fields[0].Field)
}

func TestProductCreate_CodigoDuplicado(t *testing.T) {
	uc := newProductUC(t)

	_, err := uc.Create(validCreate())
	require.NoError(t, err)

	in := validCreate()
	in.Name = "Otro nombre"
	_, err = uc.Create(in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductCreate_CamposRequeridos(t *testing.T) {
	uc := newProductUC(t)

	_, err := uc.Create(dto.CreateProductRequest{Code: "X"})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)

	fields := make([]string, 0, len(vErr.Fields))
	for _, fe := range vErr.Fields {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "category")
}

func TestProductUpdate_CamposParciales(t *testing.T) {
	uc := newProductUC(t)

	created, err := uc.Create(validCreate())
	require.NoError(t, err)

	name := "Acetaminofén 500mg x100"
	active := false
	out, err := uc.Update(created.ID, dto.UpdateProductRequest{Name: &name, Active: &active})
	require.NoError(t, err)

	assert.Equal(t, name, out.Name)
	assert.False(t, out.Active)
	assert.Equal(t, "Analgésicos", out.Category, "los campos no enviados no cambian")
}

func TestProductUpdate_Inexistente(t *testing.T) {
	uc := newProductUC(t)

	name := "da igual"
	out, err := uc.Update("no-existe", dto.UpdateProductRequest{Name: &name})
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestWarehouseCreate_NombreDuplicado(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewWarehouseUseCase(memory.NewWarehouseRepository(store))

	_, err := uc.Create(dto.CreateWarehouseRequest{Name: "Bodega Principal", Address: "Calle 10"})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateWarehouseRequest{Name: "bodega PRINCIPAL"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestUserCreate_RolYEmail(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewUserUseCase(memory.NewUserRepository(store))

	out, err := uc.Create(dto.CreateUserRequest{Name: "Ana Rodríguez", Email: "ana@almacen.co", Role: "admin"})
	require.NoError(t, err)
	assert.Equal(t, "admin", out.Role)

	_, err = uc.Create(dto.CreateUserRequest{Name: "Ana Bis", Email: "ana@almacen.co", Role: "vendedor"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	_, err = uc.Create(dto.CreateUserRequest{Name: "Rol Raro", Email: "raro@almacen.co", Role: "gerente"})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
}
