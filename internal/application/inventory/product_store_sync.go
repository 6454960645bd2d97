package inventory

import (
	"context"
	"fmt"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

// addToStoreStock suma delta al stock de la tienda para el producto dado.
// El backend no expone upsert: se busca la fila y se actualiza, o se crea
// con el delta como stock inicial si no existe.
func addToStoreStock(ctx context.Context, relations repository.ProductStoreRepository, productID, storeID int64, delta int) error {
	rel, err := relations.Find(ctx, productID, storeID)
	if err != nil {
		return fmt.Errorf("buscar relación producto %d tienda %d: %w", productID, storeID, err)
	}
	if rel == nil {
		_, err = relations.Create(ctx, &entity.ProductStore{
			ProductID:    productID,
			StoreID:      storeID,
			CurrentStock: delta,
		})
		if err != nil {
			return fmt.Errorf("crear relación producto %d tienda %d: %w", productID, storeID, err)
		}
		return nil
	}
	rel.CurrentStock += delta
	if err := relations.Update(ctx, rel); err != nil {
		return fmt.Errorf("actualizar relación producto %d tienda %d: %w", productID, storeID, err)
	}
	return nil
}
