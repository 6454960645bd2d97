package restapi

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

var _ repository.BatchRepository = (*BatchRepo)(nil)

// BatchRepo implementación de BatchRepository sobre el backend REST.
type BatchRepo struct {
	c *Client
}

// NewBatchRepository construye el adaptador de lotes.
func NewBatchRepository(c *Client) *BatchRepo {
	return &BatchRepo{c: c}
}

// GetByID devuelve nil, nil cuando el lote no existe.
func (r *BatchRepo) GetByID(ctx context.Context, id int64) (*entity.ProductBatch, error) {
	var payload batchPayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payload).
		Get(fmt.Sprintf("/api/batches/%d", id))
	if isNotFound(resp, err) {
		return nil, nil
	}
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("get lote %d: %w", id, err)
	}
	b := payload.toEntity()
	return &b, nil
}

// List devuelve todos los lotes.
func (r *BatchRepo) List(ctx context.Context) ([]entity.ProductBatch, error) {
	var payloads []batchPayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payloads).Get("/api/batches")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar lotes: %w", err)
	}
	return toBatches(payloads), nil
}

// ListByProduct devuelve los lotes de un producto.
func (r *BatchRepo) ListByProduct(ctx context.Context, productID int64) ([]entity.ProductBatch, error) {
	var payloads []batchPayload
	resp, err := r.c.R().SetContext(ctx).
		SetQueryParam("productId", strconv.FormatInt(productID, 10)).
		SetResult(&payloads).
		Get("/api/batches")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar lotes del producto %d: %w", productID, err)
	}
	return toBatches(payloads), nil
}

// Create crea el lote y devuelve la versión con ID asignado.
func (r *BatchRepo) Create(ctx context.Context, b *entity.ProductBatch) (*entity.ProductBatch, error) {
	var created batchPayload
	resp, err := r.c.R().SetContext(ctx).
		SetBody(batchToPayload(b)).
		SetResult(&created).
		Post("/api/batches")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("crear lote %s: %w", b.BatchCode, err)
	}
	out := created.toEntity()
	return &out, nil
}

// Update sobrescribe el lote.
func (r *BatchRepo) Update(ctx context.Context, b *entity.ProductBatch) error {
	resp, err := r.c.R().SetContext(ctx).
		SetBody(batchToPayload(b)).
		Put(fmt.Sprintf("/api/batches/%d", b.ID))
	if err := mapError(resp, err); err != nil {
		return fmt.Errorf("actualizar lote %d: %w", b.ID, err)
	}
	return nil
}

// Delete elimina el lote.
func (r *BatchRepo) Delete(ctx context.Context, id int64) error {
	resp, err := r.c.R().SetContext(ctx).
		Delete(fmt.Sprintf("/api/batches/%d", id))
	if err := mapError(resp, err); err != nil {
		return fmt.Errorf("eliminar lote %d: %w", id, err)
	}
	return nil
}

func toBatches(payloads []batchPayload) []entity.ProductBatch {
	out := make([]entity.ProductBatch, 0, len(payloads))
	for _, b := range payloads {
		out = append(out, b.toEntity())
	}
	return out
}
