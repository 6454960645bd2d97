package restapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

var _ repository.ProductStoreRepository = (*ProductStoreRepo)(nil)

// ProductStoreRepo implementación de ProductStoreRepository sobre el backend
// REST. El backend no expone upsert: Find + Create/Update siempre.
type ProductStoreRepo struct {
	c *Client
}

// NewProductStoreRepository construye el adaptador de stock por tienda.
func NewProductStoreRepository(c *Client) *ProductStoreRepo {
	return &ProductStoreRepo{c: c}
}

// List devuelve todas las relaciones producto-tienda.
func (r *ProductStoreRepo) List(ctx context.Context) ([]entity.ProductStore, error) {
	var payloads []productStorePayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payloads).Get("/api/product-stores")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar relaciones producto-tienda: %w", err)
	}
	return toProductStores(payloads), nil
}

// ListByProduct devuelve las relaciones de un producto.
func (r *ProductStoreRepo) ListByProduct(ctx context.Context, productID int64) ([]entity.ProductStore, error) {
	var payloads []productStorePayload
	resp, err := r.c.R().SetContext(ctx).
		SetQueryParam("productId", strconv.FormatInt(productID, 10)).
		SetResult(&payloads).
		Get("/api/product-stores")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar relaciones del producto %d: %w", productID, err)
	}
	return toProductStores(payloads), nil
}

// Find busca la fila del par (producto, tienda); nil, nil cuando no existe.
func (r *ProductStoreRepo) Find(ctx context.Context, productID, storeID int64) (*entity.ProductStore, error) {
	var payloads []productStorePayload
	resp, err := r.c.R().SetContext(ctx).
		SetQueryParam("productId", strconv.FormatInt(productID, 10)).
		SetQueryParam("storeId", strconv.FormatInt(storeID, 10)).
		SetResult(&payloads).
		Get("/api/product-stores")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("buscar relación producto %d tienda %d: %w", productID, storeID, err)
	}
	if len(payloads) == 0 {
		return nil, nil
	}
	ps := payloads[0].toEntity()
	return &ps, nil
}

// Create crea la fila producto-tienda.
func (r *ProductStoreRepo) Create(ctx context.Context, ps *entity.ProductStore) (*entity.ProductStore, error) {
	var created productStorePayload
	resp, err := r.c.R().SetContext(ctx).
		SetBody(productStoreToPayload(ps)).
		SetResult(&created).
		Post("/api/product-stores")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("crear relación producto %d tienda %d: %w", ps.ProductID, ps.StoreID, err)
	}
	out := created.toEntity()
	return &out, nil
}

// Update sobrescribe la fila producto-tienda.
func (r *ProductStoreRepo) Update(ctx context.Context, ps *entity.ProductStore) error {
	resp, err := r.c.R().SetContext(ctx).
		SetBody(productStoreToPayload(ps)).
		Put(fmt.Sprintf("/api/product-stores/%d", ps.ID))
	if err := mapError(resp, err); err != nil {
		return fmt.Errorf("actualizar relación %d: %w", ps.ID, err)
	}
	return nil
}

func toProductStores(payloads []productStorePayload) []entity.ProductStore {
	out := make([]entity.ProductStore, 0, len(payloads))
	for _, ps := range payloads {
		out = append(out, ps.toEntity())
	}
	return out
}
