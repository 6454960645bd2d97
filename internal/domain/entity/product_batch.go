package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductBatch representa un lote de producción fechado de un producto.
// StoreID nil significa bodega central (lote sin asignar a tienda).
// Ciclo de vida: nace con CurrentQuantity == InitialQuantity, se descuenta
// por ventas y movimientos, y nunca vuelve a superar InitialQuantity.
type ProductBatch struct {
	ID              int64
	BatchCode       string
	ProductID       int64
	StoreID         *int64
	ProductionDate  time.Time
	ExpirationDate  time.Time
	InitialQuantity int
	CurrentQuantity int
	BatchCost       decimal.Decimal
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// IsExpired indica si el lote está vencido respecto al instante dado.
func (b ProductBatch) IsExpired(now time.Time) bool {
	return b.ExpirationDate.Before(now)
}

// ExpiresWithin indica si el lote vence dentro de la ventana dada (y aún no venció).
func (b ProductBatch) ExpiresWithin(now time.Time, window time.Duration) bool {
	return !b.IsExpired(now) && b.ExpirationDate.Before(now.Add(window))
}
