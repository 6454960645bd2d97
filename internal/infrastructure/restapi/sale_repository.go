package restapi

import (
	"context"
	"fmt"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre el backend REST.
type SaleRepo struct {
	c *Client
}

// NewSaleRepository construye el adaptador de ventas.
func NewSaleRepository(c *Client) *SaleRepo {
	return &SaleRepo{c: c}
}

// GetByID devuelve nil, nil cuando la venta no existe.
func (r *SaleRepo) GetByID(ctx context.Context, id int64) (*entity.Sale, error) {
	var payload salePayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payload).
		Get(fmt.Sprintf("/api/sales/%d", id))
	if isNotFound(resp, err) {
		return nil, nil
	}
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("get venta %d: %w", id, err)
	}
	s := payload.toEntity()
	return &s, nil
}

// List devuelve todas las ventas.
func (r *SaleRepo) List(ctx context.Context) ([]entity.Sale, error) {
	var payloads []salePayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payloads).Get("/api/sales")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar ventas: %w", err)
	}
	out := make([]entity.Sale, 0, len(payloads))
	for _, s := range payloads {
		out = append(out, s.toEntity())
	}
	return out, nil
}

// ListDetails devuelve las líneas de una venta.
func (r *SaleRepo) ListDetails(ctx context.Context, saleID int64) ([]entity.SaleDetail, error) {
	var payloads []saleDetailPayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payloads).
		Get(fmt.Sprintf("/api/sales/%d/details", saleID))
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar detalles de venta %d: %w", saleID, err)
	}
	out := make([]entity.SaleDetail, 0, len(payloads))
	for _, d := range payloads {
		out = append(out, d.toEntity())
	}
	return out, nil
}

// Create registra la venta con sus líneas en una sola llamada.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale, details []entity.SaleDetail) (*entity.Sale, error) {
	var created salePayload
	resp, err := r.c.R().SetContext(ctx).
		SetBody(saleToPayload(s, details)).
		SetResult(&created).
		Post("/api/sales")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("crear venta: %w", err)
	}
	out := created.toEntity()
	return &out, nil
}

// Delete elimina la venta.
func (r *SaleRepo) Delete(ctx context.Context, id int64) error {
	resp, err := r.c.R().SetContext(ctx).
		Delete(fmt.Sprintf("/api/sales/%d", id))
	if err := mapError(resp, err); err != nil {
		return fmt.Errorf("eliminar venta %d: %w", id, err)
	}
	return nil
}
