package repository

import (
	"context"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// CategoryRepository define el puerto hacia el backend para Category.
type CategoryRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Create(ctx context.Context, c *entity.Category) (*entity.Category, error)
	Update(ctx context.Context, c *entity.Category) error
}
