package repository

import (
	"context"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// BatchRepository define el puerto hacia el backend para ProductBatch.
type BatchRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.ProductBatch, error)
	List(ctx context.Context) ([]entity.ProductBatch, error)
	ListByProduct(ctx context.Context, productID int64) ([]entity.ProductBatch, error)
	Create(ctx context.Context, b *entity.ProductBatch) (*entity.ProductBatch, error)
	Update(ctx context.Context, b *entity.ProductBatch) error
	Delete(ctx context.Context, id int64) error
}
