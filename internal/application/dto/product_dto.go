package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name           string          `json:"name" validate:"required"`
	Flavor         string          `json:"flavor,omitempty"`
	Size           string          `json:"size,omitempty"`
	CategoryID     int64           `json:"category_id" validate:"required,gt=0"`
	ProductionCost decimal.Decimal `json:"production_cost"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	RetailPrice    decimal.Decimal `json:"retail_price"`
	Barcode        string          `json:"barcode,omitempty"`
	Description    string          `json:"description,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id (campos opcionales).
// El stock global no se edita aquí: lo mueven los movimientos y los lotes.
type UpdateProductRequest struct {
	Name           *string          `json:"name,omitempty"`
	Flavor         *string          `json:"flavor,omitempty"`
	Size           *string          `json:"size,omitempty"`
	CategoryID     *int64           `json:"category_id,omitempty"`
	ProductionCost *decimal.Decimal `json:"production_cost,omitempty"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price,omitempty"`
	RetailPrice    *decimal.Decimal `json:"retail_price,omitempty"`
	Barcode        *string          `json:"barcode,omitempty"`
	Description    *string          `json:"description,omitempty"`
	IsActive       *bool            `json:"is_active,omitempty"`
}

// ProductResponse representación de un producto con precios formateados para pantalla.
type ProductResponse struct {
	ID                 int64           `json:"id"`
	Name               string          `json:"name"`
	Flavor             string          `json:"flavor,omitempty"`
	Size               string          `json:"size,omitempty"`
	CategoryID         int64           `json:"category_id"`
	ProductionCost     decimal.Decimal `json:"production_cost"`
	WholesalePrice     decimal.Decimal `json:"wholesale_price"`
	RetailPrice        decimal.Decimal `json:"retail_price"`
	RetailPriceDisplay string          `json:"retail_price_display"`
	CurrentGlobalStock int             `json:"current_global_stock"`
	Barcode            string          `json:"barcode,omitempty"`
	Description        string          `json:"description,omitempty"`
	IsActive           bool            `json:"is_active"`
}
