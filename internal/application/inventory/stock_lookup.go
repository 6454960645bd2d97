package inventory

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	dominv "github.com/Jwerthe/chocorocks-inventory/internal/domain/inventory"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

// StockLookup arma snapshots de stock consultando al backend producto, lotes
// y relaciones producto-tienda en paralelo. Nunca muta nada.
type StockLookup struct {
	products  repository.ProductRepository
	batches   repository.BatchRepository
	relations repository.ProductStoreRepository
}

// NewStockLookup construye el lookup.
func NewStockLookup(
	products repository.ProductRepository,
	batches repository.BatchRepository,
	relations repository.ProductStoreRepository,
) *StockLookup {
	return &StockLookup{products: products, batches: batches, relations: relations}
}

// Snapshot consulta las tres fuentes en paralelo y deriva la vista de stock.
// Cualquier fallo devuelve error: el llamador debe bloquear el envío en vez
// de asumir stock ilimitado.
func (l *StockLookup) Snapshot(ctx context.Context, productID int64, storeID *int64) (*dominv.StockSnapshot, error) {
	if productID <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var (
		product   *entity.Product
		batches   []entity.ProductBatch
		relations []entity.ProductStore
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := l.products.GetByID(gctx, productID)
		if err != nil {
			return fmt.Errorf("consultar producto %d: %w", productID, err)
		}
		if p == nil {
			return fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
		}
		product = p
		return nil
	})
	g.Go(func() error {
		bs, err := l.batches.ListByProduct(gctx, productID)
		if err != nil {
			return fmt.Errorf("consultar lotes del producto %d: %w", productID, err)
		}
		batches = bs
		return nil
	})
	g.Go(func() error {
		rs, err := l.relations.ListByProduct(gctx, productID)
		if err != nil {
			return fmt.Errorf("consultar stock por tienda del producto %d: %w", productID, err)
		}
		relations = rs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := &dominv.StockSnapshot{
		ProductID:    productID,
		StoreID:      storeID,
		ProductStock: product.CurrentGlobalStock,
		StoreStock:   product.CurrentGlobalStock, // sin tienda: el global manda
		TakenAt:      time.Now(),
	}

	if storeID != nil {
		// Sin fila producto-tienda el stock de la tienda es cero, no el global.
		snap.StoreStock = 0
		for _, rel := range relations {
			if rel.StoreID == *storeID {
				snap.StoreStock = rel.CurrentStock
				snap.ReorderThreshold = rel.ReorderThreshold
				break
			}
		}
	}

	snap.AvailableBatches = filterBatches(batches, storeID)
	return snap, nil
}

// filterBatches deja solo lotes activos con existencias; con tienda dada se
// limita a los lotes asignados a esa tienda.
func filterBatches(batches []entity.ProductBatch, storeID *int64) []entity.ProductBatch {
	out := make([]entity.ProductBatch, 0, len(batches))
	for _, b := range batches {
		if !b.IsActive || b.CurrentQuantity <= 0 {
			continue
		}
		if storeID != nil && (b.StoreID == nil || *b.StoreID != *storeID) {
			continue
		}
		out = append(out, b)
	}
	return out
}
