package repository

import (
	"context"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// SaleRepository define el puerto hacia el backend para ventas y sus líneas.
type SaleRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Sale, error)
	List(ctx context.Context) ([]entity.Sale, error)
	ListDetails(ctx context.Context, saleID int64) ([]entity.SaleDetail, error)
	Create(ctx context.Context, s *entity.Sale, details []entity.SaleDetail) (*entity.Sale, error)
	Delete(ctx context.Context, id int64) error
}
