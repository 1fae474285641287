package memory

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jdvalencia/almacen-api/internal/domain/entity"
)

// SeedDemo carga el dataset de demostración: bodegas, usuarios y productos
// con lotes repartidos. Idempotente solo por proceso (pensado para correr una
// vez al arrancar con el almacén vacío).
func SeedDemo(store *Store) error {
	now := time.Now()

	principal := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      "Bodega Principal",
		Address:   "Calle 10 # 25-30, Bogotá",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	secundaria := &entity.Warehouse{
		ID:        uuid.New().String(),
		Name:      "Bodega Secundaria",
		Address:   "Carrera 48 # 12-05, Medellín",
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	warehouses := NewWarehouseRepository(store)
	for _, w := range []*entity.Warehouse{principal, secundaria} {
		if err := warehouses.Create(w); err != nil {
			return err
		}
	}

	users := NewUserRepository(store)
	for _, u := range []*entity.User{
		{ID: uuid.New().String(), Name: "Ana Rodríguez", Email: "ana@almacen.co", Role: entity.RoleAdmin, Active: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New().String(), Name: "Carlos Pérez", Email: "carlos@almacen.co", Role: entity.RoleBodeguero, Active: true, CreatedAt: now, UpdatedAt: now},
	} {
		if err := users.Create(u); err != nil {
			return err
		}
	}

	expiry := func(months int) time.Time {
		return now.AddDate(0, months, 0).Truncate(24 * time.Hour)
	}

	products := NewProductRepository(store)
	for _, p := range []*entity.Product{
		{
			ID:       uuid.New().String(),
			Code:     "ACET-500",
			Name:     "Acetaminofén 500mg x100",
			Category: "Analgésicos",
			Price:    decimal.NewFromInt(12500),
			TaxRate:  decimal.Zero,
			Active:   true,
			Lots: []entity.Lot{
				{ID: uuid.New().String(), LotNumber: "L-2024-031", Available: 180, ExpiryDate: expiry(14), WarehouseID: principal.ID, CreatedAt: now, UpdatedAt: now},
				{ID: uuid.New().String(), LotNumber: "L-2024-047", Available: 60, ExpiryDate: expiry(20), WarehouseID: secundaria.ID, CreatedAt: now, UpdatedAt: now},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:       uuid.New().String(),
			Code:     "AMOX-250",
			Name:     "Amoxicilina 250mg x50",
			Category: "Antibióticos",
			Price:    decimal.NewFromInt(23800),
			TaxRate:  decimal.NewFromFloat(0.05),
			Active:   true,
			Lots: []entity.Lot{
				{ID: uuid.New().String(), LotNumber: "AMX-881", Available: 95, ExpiryDate: expiry(9), WarehouseID: principal.ID, CreatedAt: now, UpdatedAt: now},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:       uuid.New().String(),
			Code:     "GASA-EST",
			Name:     "Gasa estéril 10x10 paquete x25",
			Category: "Insumos",
			Price:    decimal.NewFromInt(8900),
			TaxRate:  decimal.NewFromFloat(0.19),
			Active:   true,
			Lots: []entity.Lot{
				{ID: uuid.New().String(), LotNumber: "GS-1102", Available: 340, ExpiryDate: expiry(36), WarehouseID: principal.ID, CreatedAt: now, UpdatedAt: now},
				{ID: uuid.New().String(), LotNumber: "GS-1102", Available: 110, ExpiryDate: expiry(36), WarehouseID: secundaria.ID, CreatedAt: now, UpdatedAt: now},
			},
			CreatedAt: now,
			UpdatedAt: now,
		},
	} {
		if err := products.Create(p); err != nil {
			return err
		}
	}

	return nil
}
