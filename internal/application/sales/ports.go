package sales

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// ReceiptLine línea de la nota de venta con el nombre del producto resuelto.
type ReceiptLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	Subtotal    decimal.Decimal
}

// ReceiptData todo lo necesario para renderizar una nota de venta.
// Client nil = consumidor final.
type ReceiptData struct {
	Sale   *entity.Sale
	Store  *entity.Store
	Client *entity.Client
	Lines  []ReceiptLine
}

// ReceiptGenerator puerto del generador de la nota de venta en PDF.
type ReceiptGenerator interface {
	GenerateReceiptPDF(ctx context.Context, data ReceiptData) ([]byte, error)
}
