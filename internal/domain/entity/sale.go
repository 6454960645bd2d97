package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago aceptados.
const (
	PaymentCash     = "EFECTIVO"
	PaymentCard     = "TARJETA"
	PaymentTransfer = "TRANSFERENCIA"
)

// Sale representa una venta registrada en una tienda.
// Los totales se calculan en el caso de uso; ClientID nil = consumidor final.
type Sale struct {
	ID            int64
	SaleNumber    string
	UserID        int64
	ClientID      *int64
	StoreID       int64
	PaymentMethod string
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
	IsInvoiced    bool
	Notes         string
	CreatedAt     time.Time
}
