package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/dto"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	dominv "github.com/Jwerthe/chocorocks-inventory/internal/domain/inventory"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
	"github.com/Jwerthe/chocorocks-inventory/pkg/money"
)

// LowStockUseCase genera el reporte de relaciones producto-tienda en o bajo
// su umbral, con cantidad y costo estimado de reposición.
type LowStockUseCase struct {
	products  repository.ProductRepository
	stores    repository.StoreRepository
	relations repository.ProductStoreRepository
	policy    dominv.LowStockPolicy
}

// NewLowStockUseCase construye el caso de uso.
func NewLowStockUseCase(
	products repository.ProductRepository,
	stores repository.StoreRepository,
	relations repository.ProductStoreRepository,
	policy dominv.LowStockPolicy,
) *LowStockUseCase {
	return &LowStockUseCase{products: products, stores: stores, relations: relations, policy: policy}
}

// Report lista las filas bajo umbral, opcionalmente filtradas por tienda,
// ordenadas de más a menos urgente (déficit contra el umbral).
func (uc *LowStockUseCase) Report(ctx context.Context, storeID *int64) ([]dto.LowStockItemDTO, error) {
	relations, err := uc.relations.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("consultar stock por tienda: %w", err)
	}
	products, err := uc.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("consultar productos: %w", err)
	}
	stores, err := uc.stores.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("consultar tiendas: %w", err)
	}

	productByID := make(map[int64]entity.Product, len(products))
	for _, p := range products {
		productByID[p.ID] = p
	}
	storeByID := make(map[int64]entity.Store, len(stores))
	for _, s := range stores {
		storeByID[s.ID] = s
	}

	var items []dto.LowStockItemDTO
	for _, rel := range relations {
		if storeID != nil && rel.StoreID != *storeID {
			continue
		}
		threshold := dominv.DefaultLowStockThreshold
		if uc.policy == dominv.LowStockPerStore && rel.ReorderThreshold > 0 {
			threshold = rel.ReorderThreshold
		}
		if rel.CurrentStock > threshold {
			continue
		}
		product, ok := productByID[rel.ProductID]
		if !ok || !product.IsActive {
			continue
		}
		store := storeByID[rel.StoreID]

		suggested := dominv.SuggestedOrderQuantity(rel.CurrentStock, threshold)
		cost := dominv.EstimatedOrderCost(suggested, product.ProductionCost)
		items = append(items, dto.LowStockItemDTO{
			ProductID:                 rel.ProductID,
			ProductName:               product.Name,
			StoreID:                   rel.StoreID,
			StoreName:                 store.Name,
			CurrentStock:              rel.CurrentStock,
			Threshold:                 threshold,
			SuggestedOrderQty:         suggested,
			EstimatedOrderCost:        cost,
			EstimatedOrderCostDisplay: money.FormatUSD(cost),
		})
	}

	sort.Slice(items, func(i, j int) bool {
		di := items[i].CurrentStock - items[i].Threshold
		dj := items[j].CurrentStock - items[j].Threshold
		return di < dj
	})
	return items, nil
}
