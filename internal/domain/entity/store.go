package entity

import "time"

// Tipos de tienda.
const (
	StoreTypePhysical  = "FISICA"
	StoreTypeOnline    = "MOVIL"
	StoreTypeWarehouse = "BODEGA"
)

// Store representa una tienda o punto de venta donde se mantiene stock.
// Inmutable desde el flujo de movimientos; solo CRUD básico.
type Store struct {
	ID        int64
	Name      string
	Address   string
	Phone     string
	Type      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
