package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/dto"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
	"github.com/Jwerthe/chocorocks-inventory/pkg/money"
)

// TaxRateIVA IVA vigente en Ecuador (15%).
var TaxRateIVA = decimal.NewFromFloat(0.15)

// SaleUseCase registra y consulta ventas. Los totales se calculan aquí con
// decimal; el descuento llega como monto absoluto sobre el subtotal.
type SaleUseCase struct {
	sales    repository.SaleRepository
	products repository.ProductRepository
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(sales repository.SaleRepository, products repository.ProductRepository) *SaleUseCase {
	return &SaleUseCase{sales: sales, products: products}
}

// Create registra una venta. Si una línea no trae precio unitario se usa el
// precio de venta al detalle del producto.
func (uc *SaleUseCase) Create(ctx context.Context, userID int64, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if userID <= 0 {
		return nil, domain.ErrUnauthorized
	}
	if len(in.Items) == 0 || in.Discount.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	details := make([]entity.SaleDetail, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, item := range in.Items {
		if item.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		unitPrice := item.UnitPrice
		if unitPrice.IsZero() {
			p, err := uc.products.GetByID(ctx, item.ProductID)
			if err != nil {
				return nil, err
			}
			if p == nil {
				return nil, domain.ErrNotFound
			}
			unitPrice = p.RetailPrice
		}
		if unitPrice.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		lineSubtotal := unitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
		details = append(details, entity.SaleDetail{
			ProductID: item.ProductID,
			BatchID:   item.BatchID,
			Quantity:  item.Quantity,
			UnitPrice: unitPrice,
			Subtotal:  lineSubtotal,
		})
		subtotal = subtotal.Add(lineSubtotal)
	}

	if in.Discount.GreaterThan(subtotal) {
		return nil, domain.ErrInvalidInput
	}
	taxable := subtotal.Sub(in.Discount)
	tax := taxable.Mul(TaxRateIVA).Round(2)
	total := taxable.Add(tax)

	sale := &entity.Sale{
		SaleNumber:    newSaleNumber(),
		UserID:        userID,
		ClientID:      in.ClientID,
		StoreID:       in.StoreID,
		PaymentMethod: in.PaymentMethod,
		Subtotal:      subtotal,
		Discount:      in.Discount,
		Tax:           tax,
		Total:         total,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}
	created, err := uc.sales.Create(ctx, sale, details)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(created, details), nil
}

// GetByID obtiene una venta con sus líneas.
func (uc *SaleUseCase) GetByID(ctx context.Context, id int64) (*dto.SaleResponse, error) {
	sale, err := uc.sales.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	details, err := uc.sales.ListDetails(ctx, id)
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale, details), nil
}

// List lista las ventas (sin líneas).
func (uc *SaleUseCase) List(ctx context.Context) ([]dto.SaleResponse, error) {
	list, err := uc.sales.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for i := range list {
		items = append(items, *toSaleResponse(&list[i], nil))
	}
	return items, nil
}

// Delete elimina una venta en el backend.
func (uc *SaleUseCase) Delete(ctx context.Context, id int64) error {
	return uc.sales.Delete(ctx, id)
}

// newSaleNumber genera un número legible de venta, p. ej. VEN-9F2C41A7.
func newSaleNumber() string {
	return "VEN-" + strings.ToUpper(uuid.New().String()[:8])
}

func toSaleResponse(s *entity.Sale, details []entity.SaleDetail) *dto.SaleResponse {
	resp := &dto.SaleResponse{
		ID:            s.ID,
		SaleNumber:    s.SaleNumber,
		UserID:        s.UserID,
		ClientID:      s.ClientID,
		StoreID:       s.StoreID,
		PaymentMethod: s.PaymentMethod,
		Subtotal:      s.Subtotal,
		Discount:      s.Discount,
		Tax:           s.Tax,
		Total:         s.Total,
		TotalDisplay:  money.FormatUSD(s.Total),
		IsInvoiced:    s.IsInvoiced,
		Notes:         s.Notes,
		CreatedAt:     s.CreatedAt,
	}
	for _, d := range details {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ProductID: d.ProductID,
			BatchID:   d.BatchID,
			Quantity:  d.Quantity,
			UnitPrice: d.UnitPrice,
			Subtotal:  d.Subtotal,
		})
	}
	return resp
}
