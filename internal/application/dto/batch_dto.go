package dto

import "github.com/shopspring/decimal"

// CreateBatchRequest body para POST /api/batches. Fechas en formato ISO (YYYY-MM-DD).
type CreateBatchRequest struct {
	BatchCode       string          `json:"batch_code" validate:"required"`
	ProductID       int64           `json:"product_id" validate:"required,gt=0"`
	StoreID         *int64          `json:"store_id,omitempty"`
	ProductionDate  string          `json:"production_date" validate:"required"`
	ExpirationDate  string          `json:"expiration_date" validate:"required"`
	InitialQuantity int             `json:"initial_quantity" validate:"required"`
	BatchCost       decimal.Decimal `json:"batch_cost"`
}

// UpdateBatchRequest body para PUT /api/batches/:id.
// batch_code y product_id son inmutables y por eso no aparecen aquí.
type UpdateBatchRequest struct {
	CurrentQuantity *int             `json:"current_quantity,omitempty"`
	BatchCost       *decimal.Decimal `json:"batch_cost,omitempty"`
	IsActive        *bool            `json:"is_active,omitempty"`
}

// BatchResponse representación de un lote.
type BatchResponse struct {
	ID              int64           `json:"id"`
	BatchCode       string          `json:"batch_code"`
	ProductID       int64           `json:"product_id"`
	StoreID         *int64          `json:"store_id,omitempty"`
	ProductionDate  string          `json:"production_date"`
	ExpirationDate  string          `json:"expiration_date"`
	InitialQuantity int             `json:"initial_quantity"`
	CurrentQuantity int             `json:"current_quantity"`
	BatchCost       decimal.Decimal `json:"batch_cost"`
	IsActive        bool            `json:"is_active"`
}
