package restapi

import (
	"context"
	"fmt"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

var _ repository.StoreRepository = (*StoreRepo)(nil)

// StoreRepo implementación de StoreRepository sobre el backend REST.
type StoreRepo struct {
	c *Client
}

// NewStoreRepository construye el adaptador de tiendas.
func NewStoreRepository(c *Client) *StoreRepo {
	return &StoreRepo{c: c}
}

// GetByID devuelve nil, nil cuando la tienda no existe.
func (r *StoreRepo) GetByID(ctx context.Context, id int64) (*entity.Store, error) {
	var payload storePayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payload).
		Get(fmt.Sprintf("/api/stores/%d", id))
	if isNotFound(resp, err) {
		return nil, nil
	}
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("get tienda %d: %w", id, err)
	}
	s := payload.toEntity()
	return &s, nil
}

// List devuelve todas las tiendas.
func (r *StoreRepo) List(ctx context.Context) ([]entity.Store, error) {
	var payloads []storePayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payloads).Get("/api/stores")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar tiendas: %w", err)
	}
	out := make([]entity.Store, 0, len(payloads))
	for _, s := range payloads {
		out = append(out, s.toEntity())
	}
	return out, nil
}

// Create crea la tienda.
func (r *StoreRepo) Create(ctx context.Context, s *entity.Store) (*entity.Store, error) {
	var created storePayload
	resp, err := r.c.R().SetContext(ctx).
		SetBody(storeToPayload(s)).
		SetResult(&created).
		Post("/api/stores")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("crear tienda: %w", err)
	}
	out := created.toEntity()
	return &out, nil
}

// Update sobrescribe la tienda.
func (r *StoreRepo) Update(ctx context.Context, s *entity.Store) error {
	resp, err := r.c.R().SetContext(ctx).
		SetBody(storeToPayload(s)).
		Put(fmt.Sprintf("/api/stores/%d", s.ID))
	if err := mapError(resp, err); err != nil {
		return fmt.Errorf("actualizar tienda %d: %w", s.ID, err)
	}
	return nil
}
