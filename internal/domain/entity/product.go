package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tarifas de IVA admitidas para un producto: 0, 0.05 (5%) y 0.19 (19%).
var validTaxRates = []decimal.Decimal{
	decimal.Zero,
	decimal.NewFromFloat(0.05),
	decimal.NewFromFloat(0.19),
}

// IsValidTaxRate indica si la tarifa pertenece al conjunto admitido.
func IsValidTaxRate(rate decimal.Decimal) bool {
	for _, r := range validTaxRates {
		if r.Equal(rate) {
			return true
		}
	}
	return false
}

// Product representa un producto del catálogo con su colección de lotes.
// Los lotes son la fuente de verdad del stock: cualquier total es derivado
// (ver StockTotal) y nunca se almacena como dato autoritativo.
type Product struct {
	ID          string
	Code        string // código interno, único
	Name        string
	Category    string
	Description string
	Price       decimal.Decimal // precio de venta
	TaxRate     decimal.Decimal // IVA: 0, 0.05, 0.19
	Active      bool
	Lots        []Lot // orden de llegada; pertenecen en exclusiva a este producto
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// StockTotal suma la cantidad disponible de los lotes del producto.
// warehouseID vacío suma sobre todas las bodegas.
func (p *Product) StockTotal(warehouseID string) int {
	total := 0
	for i := range p.Lots {
		if warehouseID != "" && p.Lots[i].WarehouseID != warehouseID {
			continue
		}
		total += p.Lots[i].Available
	}
	return total
}

// FindLot busca el lote (número, bodega) dentro del producto. El número de
// lote no es único por sí solo: el mismo batch puede estar repartido en
// varias bodegas.
func (p *Product) FindLot(lotNumber, warehouseID string) *Lot {
	for i := range p.Lots {
		if p.Lots[i].LotNumber == lotNumber && p.Lots[i].WarehouseID == warehouseID {
			return &p.Lots[i]
		}
	}
	return nil
}
