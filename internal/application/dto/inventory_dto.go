package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Para IN: to_store_id opcional (vacío = stock global). Para OUT: from_store_id
// opcional. Para TRANSFER: from_store_id y to_store_id obligatorios y distintos.
type RegisterMovementRequest struct {
	Type        string `json:"type" validate:"required,oneof=IN OUT TRANSFER"`
	ProductID   int64  `json:"product_id" validate:"required,gt=0"`
	BatchID     *int64 `json:"batch_id,omitempty"`
	FromStoreID *int64 `json:"from_store_id,omitempty"`
	ToStoreID   *int64 `json:"to_store_id,omitempty"`
	Quantity    int    `json:"quantity" validate:"required"`
	Reason      string `json:"reason" validate:"required"`
	Notes       string `json:"notes,omitempty"`
}

// RegisterMovementResponse resultado de un movimiento registrado.
type RegisterMovementResponse struct {
	MovementID    int64    `json:"movement_id"`
	CorrelationID string   `json:"correlation_id"`
	Warnings      []string `json:"warnings,omitempty"`
}

// BatchSummaryDTO lote disponible dentro de un snapshot de stock.
type BatchSummaryDTO struct {
	ID              int64  `json:"id"`
	BatchCode       string `json:"batch_code"`
	StoreID         *int64 `json:"store_id,omitempty"`
	CurrentQuantity int    `json:"current_quantity"`
	ExpirationDate  string `json:"expiration_date"`
}

// StockSnapshotResponse respuesta de GET /api/inventory/stock.
type StockSnapshotResponse struct {
	ProductID        int64             `json:"product_id"`
	StoreID          *int64            `json:"store_id,omitempty"`
	ProductStock     int               `json:"product_stock"`
	StoreStock       int               `json:"store_stock"`
	ReorderThreshold int               `json:"reorder_threshold"`
	AvailableBatches []BatchSummaryDTO `json:"available_batches"`
	TakenAt          time.Time         `json:"taken_at"`
}

// LowStockItemDTO fila del reporte de stock bajo por tienda.
type LowStockItemDTO struct {
	ProductID                 int64           `json:"product_id"`
	ProductName               string          `json:"product_name"`
	StoreID                   int64           `json:"store_id"`
	StoreName                 string          `json:"store_name"`
	CurrentStock              int             `json:"current_stock"`
	Threshold                 int             `json:"threshold"`
	SuggestedOrderQty         int             `json:"suggested_order_qty"`
	EstimatedOrderCost        decimal.Decimal `json:"estimated_order_cost"`
	EstimatedOrderCostDisplay string          `json:"estimated_order_cost_display"`
}
