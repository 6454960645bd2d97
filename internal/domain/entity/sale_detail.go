package entity

import "github.com/shopspring/decimal"

// SaleDetail es una línea de venta. BatchID nil = sin lote específico.
type SaleDetail struct {
	ID        int64
	SaleID    int64
	ProductID int64
	BatchID   *int64
	Quantity  int
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}
