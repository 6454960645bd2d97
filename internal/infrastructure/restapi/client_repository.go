package restapi

import (
	"context"
	"fmt"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

var _ repository.ClientRepository = (*ClientRepo)(nil)

// ClientRepo implementación de ClientRepository sobre el backend REST.
type ClientRepo struct {
	c *Client
}

// NewClientRepository construye el adaptador de clientes.
func NewClientRepository(c *Client) *ClientRepo {
	return &ClientRepo{c: c}
}

// GetByID devuelve nil, nil cuando el cliente no existe.
func (r *ClientRepo) GetByID(ctx context.Context, id int64) (*entity.Client, error) {
	var payload clientPayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payload).
		Get(fmt.Sprintf("/api/clients/%d", id))
	if isNotFound(resp, err) {
		return nil, nil
	}
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("get cliente %d: %w", id, err)
	}
	c := payload.toEntity()
	return &c, nil
}

// List devuelve todos los clientes.
func (r *ClientRepo) List(ctx context.Context) ([]entity.Client, error) {
	var payloads []clientPayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payloads).Get("/api/clients")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar clientes: %w", err)
	}
	out := make([]entity.Client, 0, len(payloads))
	for _, c := range payloads {
		out = append(out, c.toEntity())
	}
	return out, nil
}

// Create crea el cliente.
func (r *ClientRepo) Create(ctx context.Context, c *entity.Client) (*entity.Client, error) {
	var created clientPayload
	resp, err := r.c.R().SetContext(ctx).
		SetBody(clientToPayload(c)).
		SetResult(&created).
		Post("/api/clients")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("crear cliente: %w", err)
	}
	out := created.toEntity()
	return &out, nil
}

// Update sobrescribe el cliente.
func (r *ClientRepo) Update(ctx context.Context, c *entity.Client) error {
	resp, err := r.c.R().SetContext(ctx).
		SetBody(clientToPayload(c)).
		Put(fmt.Sprintf("/api/clients/%d", c.ID))
	if err := mapError(resp, err); err != nil {
		return fmt.Errorf("actualizar cliente %d: %w", c.ID, err)
	}
	return nil
}
