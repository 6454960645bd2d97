package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea de venta dentro de CreateSaleRequest.
type SaleItemRequest struct {
	ProductID int64           `json:"product_id" validate:"required,gt=0"`
	BatchID   *int64          `json:"batch_id,omitempty"`
	Quantity  int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// CreateSaleRequest body para POST /api/sales. Los totales los calcula el
// servidor; el descuento llega como monto absoluto.
type CreateSaleRequest struct {
	ClientID      *int64            `json:"client_id,omitempty"`
	StoreID       int64             `json:"store_id" validate:"required,gt=0"`
	PaymentMethod string            `json:"payment_method" validate:"required,oneof=EFECTIVO TARJETA TRANSFERENCIA"`
	Discount      decimal.Decimal   `json:"discount"`
	Notes         string            `json:"notes,omitempty"`
	Items         []SaleItemRequest `json:"items" validate:"required,min=1,dive"`
}

// SaleItemResponse línea de venta con subtotal calculado.
type SaleItemResponse struct {
	ProductID int64           `json:"product_id"`
	BatchID   *int64          `json:"batch_id,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse representación de una venta con totales formateados para pantalla.
type SaleResponse struct {
	ID            int64              `json:"id"`
	SaleNumber    string             `json:"sale_number"`
	UserID        int64              `json:"user_id"`
	ClientID      *int64             `json:"client_id,omitempty"`
	StoreID       int64              `json:"store_id"`
	PaymentMethod string             `json:"payment_method"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	TotalDisplay  string             `json:"total_display"`
	IsInvoiced    bool               `json:"is_invoiced"`
	Notes         string             `json:"notes,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	Items         []SaleItemResponse `json:"items,omitempty"`
}
