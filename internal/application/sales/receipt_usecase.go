package sales

import (
	"context"
	"fmt"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

// ReceiptUseCase arma los datos de la nota de venta y delega el render al
// generador PDF. Documento informativo, sin valor tributario.
type ReceiptUseCase struct {
	sales     repository.SaleRepository
	stores    repository.StoreRepository
	clients   repository.ClientRepository
	products  repository.ProductRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(
	sales repository.SaleRepository,
	stores repository.StoreRepository,
	clients repository.ClientRepository,
	products repository.ProductRepository,
	generator ReceiptGenerator,
) *ReceiptUseCase {
	return &ReceiptUseCase{
		sales:     sales,
		stores:    stores,
		clients:   clients,
		products:  products,
		generator: generator,
	}
}

// Generate devuelve los bytes del PDF de la nota de venta.
func (uc *ReceiptUseCase) Generate(ctx context.Context, saleID int64) ([]byte, error) {
	sale, err := uc.sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.sales.ListDetails(ctx, saleID)
	if err != nil {
		return nil, fmt.Errorf("consultar líneas de la venta %d: %w", saleID, err)
	}
	store, err := uc.stores.GetByID(ctx, sale.StoreID)
	if err != nil {
		return nil, fmt.Errorf("consultar tienda de la venta %d: %w", saleID, err)
	}

	data := ReceiptData{Sale: sale, Store: store}

	if sale.ClientID != nil {
		client, err := uc.clients.GetByID(ctx, *sale.ClientID)
		if err != nil {
			return nil, fmt.Errorf("consultar cliente de la venta %d: %w", saleID, err)
		}
		data.Client = client
	}

	for _, d := range details {
		name := fmt.Sprintf("Producto %d", d.ProductID)
		if p, err := uc.products.GetByID(ctx, d.ProductID); err == nil && p != nil {
			name = p.Name
			if p.Flavor != "" {
				name = fmt.Sprintf("%s (%s)", p.Name, p.Flavor)
			}
		}
		data.Lines = append(data.Lines, ReceiptLine{
			ProductName: name,
			Quantity:    d.Quantity,
			UnitPrice:   d.UnitPrice,
			Subtotal:    d.Subtotal,
		})
	}

	return uc.generator.GenerateReceiptPDF(ctx, data)
}
