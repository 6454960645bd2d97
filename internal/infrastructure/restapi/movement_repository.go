package restapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación de MovementRepository sobre el backend REST.
// Solo alta y consulta: el registro de auditoría nunca se muta.
type MovementRepo struct {
	c *Client
}

// NewMovementRepository construye el adaptador de movimientos.
func NewMovementRepository(c *Client) *MovementRepo {
	return &MovementRepo{c: c}
}

// Create registra el movimiento y devuelve la versión con ID asignado.
func (r *MovementRepo) Create(ctx context.Context, m *entity.InventoryMovement) (*entity.InventoryMovement, error) {
	var created movementPayload
	resp, err := r.c.R().SetContext(ctx).
		SetBody(movementToPayload(m)).
		SetResult(&created).
		Post("/api/inventory-movements")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("crear movimiento: %w", err)
	}
	out := created.toEntity()
	return &out, nil
}

// ListByProduct devuelve el historial de movimientos de un producto.
func (r *MovementRepo) ListByProduct(ctx context.Context, productID int64) ([]entity.InventoryMovement, error) {
	var payloads []movementPayload
	resp, err := r.c.R().SetContext(ctx).
		SetQueryParam("productId", strconv.FormatInt(productID, 10)).
		SetResult(&payloads).
		Get("/api/inventory-movements")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar movimientos del producto %d: %w", productID, err)
	}
	out := make([]entity.InventoryMovement, 0, len(payloads))
	for _, m := range payloads {
		out = append(out, m.toEntity())
	}
	return out, nil
}
