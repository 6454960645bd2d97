package entity

import "time"

// Tipos de movimiento de inventario.
const (
	MovementTypeIN       = "IN"       // entrada (reposición, producción)
	MovementTypeOUT      = "OUT"      // salida (venta, daño, vencimiento)
	MovementTypeTRANSFER = "TRANSFER" // traslado entre tiendas
)

// Motivos de movimiento.
const (
	ReasonProduction = "PRODUCTION"
	ReasonSale       = "SALE"
	ReasonDamage     = "DAMAGE"
	ReasonExpired    = "EXPIRED"
	ReasonTransfer   = "TRANSFER"
	ReasonAdjustment = "ADJUSTMENT"
)

// InventoryMovement es el registro de auditoría de una transacción de
// inventario. Append-only: una vez creado nunca se modifica.
// El significado de FromStoreID/ToStoreID depende del tipo: IN usa solo
// destino, OUT solo origen, TRANSFER ambos. BatchID nil = sin lote específico.
type InventoryMovement struct {
	ID          int64
	Type        string
	ProductID   int64
	BatchID     *int64
	FromStoreID *int64
	ToStoreID   *int64
	Quantity    int
	Reason      string
	UserID      int64
	Notes       string
	CreatedAt   time.Time
}
