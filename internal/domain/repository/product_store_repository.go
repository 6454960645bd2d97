package repository

import (
	"context"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// ProductStoreRepository define el puerto para las filas de stock por tienda.
// El backend no expone upsert: el flujo siempre es Find y luego Create o Update.
type ProductStoreRepository interface {
	List(ctx context.Context) ([]entity.ProductStore, error)
	ListByProduct(ctx context.Context, productID int64) ([]entity.ProductStore, error)
	// Find devuelve nil, nil cuando no existe fila para el par (producto, tienda).
	Find(ctx context.Context, productID, storeID int64) (*entity.ProductStore, error)
	Create(ctx context.Context, ps *entity.ProductStore) (*entity.ProductStore, error)
	Update(ctx context.Context, ps *entity.ProductStore) error
}
