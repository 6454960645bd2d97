package repository

import (
	"context"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// ProductRepository define el puerto hacia el backend para Product (DIP).
// Todas las operaciones son llamadas remotas; el contexto acota la petición.
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Product, error)
	List(ctx context.Context) ([]entity.Product, error)
	Create(ctx context.Context, p *entity.Product) (*entity.Product, error)
	Update(ctx context.Context, p *entity.Product) error
	// UpdateGlobalStock sobrescribe el stock global del producto.
	UpdateGlobalStock(ctx context.Context, productID int64, stock int) error
}
