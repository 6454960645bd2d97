package restapi

import (
	"context"
	"fmt"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación de ProductRepository sobre el backend REST.
type ProductRepo struct {
	c *Client
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(c *Client) *ProductRepo {
	return &ProductRepo{c: c}
}

// GetByID devuelve nil, nil cuando el producto no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	var payload productPayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payload).
		Get(fmt.Sprintf("/api/products/%d", id))
	if isNotFound(resp, err) {
		return nil, nil
	}
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("get producto %d: %w", id, err)
	}
	p := payload.toEntity()
	return &p, nil
}

// List devuelve el catálogo completo.
func (r *ProductRepo) List(ctx context.Context) ([]entity.Product, error) {
	var payloads []productPayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payloads).Get("/api/products")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	out := make([]entity.Product, 0, len(payloads))
	for _, p := range payloads {
		out = append(out, p.toEntity())
	}
	return out, nil
}

// Create crea el producto y devuelve la versión con ID asignado.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) (*entity.Product, error) {
	var created productPayload
	resp, err := r.c.R().SetContext(ctx).
		SetBody(productToPayload(p)).
		SetResult(&created).
		Post("/api/products")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("crear producto: %w", err)
	}
	out := created.toEntity()
	return &out, nil
}

// Update sobrescribe el producto completo.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	resp, err := r.c.R().SetContext(ctx).
		SetBody(productToPayload(p)).
		Put(fmt.Sprintf("/api/products/%d", p.ID))
	if err := mapError(resp, err); err != nil {
		return fmt.Errorf("actualizar producto %d: %w", p.ID, err)
	}
	return nil
}

// UpdateGlobalStock sobrescribe solo el stock global (minStockLevel en el wire).
func (r *ProductRepo) UpdateGlobalStock(ctx context.Context, productID int64, stock int) error {
	resp, err := r.c.R().SetContext(ctx).
		SetBody(map[string]int{"minStockLevel": stock}).
		Put(fmt.Sprintf("/api/products/%d/stock", productID))
	if err := mapError(resp, err); err != nil {
		return fmt.Errorf("actualizar stock global del producto %d: %w", productID, err)
	}
	return nil
}
