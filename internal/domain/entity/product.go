package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo Chocorocks.
// CurrentGlobalStock es el stock global (no asignado a una tienda concreta);
// el backend lo expone en el campo minStockLevel, el mapeo vive en restapi.
// El umbral real de reorden es ProductStore.ReorderThreshold, por tienda.
type Product struct {
	ID                 int64
	Name               string
	Flavor             string
	Size               string
	CategoryID         int64
	ProductionCost     decimal.Decimal
	WholesalePrice     decimal.Decimal
	RetailPrice        decimal.Decimal
	CurrentGlobalStock int
	Barcode            string
	Description        string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
