package restapi

import (
	"context"
	"fmt"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

var _ repository.CategoryRepository = (*CategoryRepo)(nil)

// CategoryRepo implementación de CategoryRepository sobre el backend REST.
type CategoryRepo struct {
	c *Client
}

// NewCategoryRepository construye el adaptador de categorías.
func NewCategoryRepository(c *Client) *CategoryRepo {
	return &CategoryRepo{c: c}
}

// GetByID devuelve nil, nil cuando la categoría no existe.
func (r *CategoryRepo) GetByID(ctx context.Context, id int64) (*entity.Category, error) {
	var payload categoryPayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payload).
		Get(fmt.Sprintf("/api/categories/%d", id))
	if isNotFound(resp, err) {
		return nil, nil
	}
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("get categoría %d: %w", id, err)
	}
	c := payload.toEntity()
	return &c, nil
}

// List devuelve todas las categorías.
func (r *CategoryRepo) List(ctx context.Context) ([]entity.Category, error) {
	var payloads []categoryPayload
	resp, err := r.c.R().SetContext(ctx).SetResult(&payloads).Get("/api/categories")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("listar categorías: %w", err)
	}
	out := make([]entity.Category, 0, len(payloads))
	for _, c := range payloads {
		out = append(out, c.toEntity())
	}
	return out, nil
}

// Create crea la categoría.
func (r *CategoryRepo) Create(ctx context.Context, c *entity.Category) (*entity.Category, error) {
	var created categoryPayload
	resp, err := r.c.R().SetContext(ctx).
		SetBody(categoryPayload{Name: c.Name, Description: c.Description}).
		SetResult(&created).
		Post("/api/categories")
	if err := mapError(resp, err); err != nil {
		return nil, fmt.Errorf("crear categoría: %w", err)
	}
	out := created.toEntity()
	return &out, nil
}

// Update sobrescribe la categoría.
func (r *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	resp, err := r.c.R().SetContext(ctx).
		SetBody(categoryPayload{Name: c.Name, Description: c.Description}).
		Put(fmt.Sprintf("/api/categories/%d", c.ID))
	if err := mapError(resp, err); err != nil {
		return fmt.Errorf("actualizar categoría %d: %w", c.ID, err)
	}
	return nil
}
