package repository

import (
	"context"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// ClientRepository define el puerto hacia el backend para Client.
type ClientRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Client, error)
	List(ctx context.Context) ([]entity.Client, error)
	Create(ctx context.Context, c *entity.Client) (*entity.Client, error)
	Update(ctx context.Context, c *entity.Client) error
}
