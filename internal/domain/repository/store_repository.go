package repository

import (
	"context"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// StoreRepository define el puerto hacia el backend para Store.
type StoreRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Store, error)
	List(ctx context.Context) ([]entity.Store, error)
	Create(ctx context.Context, s *entity.Store) (*entity.Store, error)
	Update(ctx context.Context, s *entity.Store) error
}
