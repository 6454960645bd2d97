package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/inventory"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

func newLookupFixture() (*inventory.StockLookup, *fakeBatchRepo) {
	products := newFakeProductRepo(&entity.Product{
		ID: 7, Name: "Chocorocks Clásico", CurrentGlobalStock: 80, IsActive: true,
	})
	relations := newFakeRelationRepo(&entity.ProductStore{
		ID: 1, ProductID: 7, StoreID: 1, CurrentStock: 50, ReorderThreshold: 15,
	})
	batches := newFakeBatchRepo(
		&entity.ProductBatch{
			ID: 40, BatchCode: "LOTE-001", ProductID: 7, StoreID: int64Ptr(1),
			ExpirationDate:  time.Now().AddDate(1, 0, 0),
			CurrentQuantity: 30, InitialQuantity: 30, IsActive: true,
		},
		&entity.ProductBatch{
			ID: 41, BatchCode: "LOTE-002", ProductID: 7, StoreID: nil, // bodega central
			ExpirationDate:  time.Now().AddDate(1, 0, 0),
			CurrentQuantity: 12, InitialQuantity: 12, IsActive: true,
		},
		&entity.ProductBatch{
			ID: 42, BatchCode: "LOTE-003", ProductID: 7, StoreID: int64Ptr(1),
			ExpirationDate:  time.Now().AddDate(1, 0, 0),
			CurrentQuantity: 0, InitialQuantity: 10, IsActive: true, // agotado
		},
		&entity.ProductBatch{
			ID: 43, BatchCode: "LOTE-004", ProductID: 7, StoreID: int64Ptr(1),
			ExpirationDate:  time.Now().AddDate(1, 0, 0),
			CurrentQuantity: 8, InitialQuantity: 10, IsActive: false, // inactivo
		},
	)
	return inventory.NewStockLookup(products, batches, relations), batches
}

// Sin tienda el snapshot refleja la vista global: StoreStock iguala al stock
// global y entran los lotes de todas las ubicaciones con saldo.
func TestSnapshot_VistaGlobal(t *testing.T) {
	lookup, _ := newLookupFixture()

	snap, err := lookup.Snapshot(context.Background(), 7, nil)

	require.NoError(t, err)
	assert.Equal(t, 80, snap.ProductStock)
	assert.Equal(t, 80, snap.StoreStock, "sin tienda el global manda")
	assert.Len(t, snap.AvailableBatches, 2, "solo lotes activos con saldo")
	assert.False(t, snap.TakenAt.IsZero())
}

// Con tienda el stock es el de la fila producto-tienda y los lotes se limitan
// a los asignados a esa tienda.
func TestSnapshot_VistaPorTienda(t *testing.T) {
	lookup, _ := newLookupFixture()

	snap, err := lookup.Snapshot(context.Background(), 7, int64Ptr(1))

	require.NoError(t, err)
	assert.Equal(t, 80, snap.ProductStock)
	assert.Equal(t, 50, snap.StoreStock)
	assert.Equal(t, 15, snap.ReorderThreshold)
	require.Len(t, snap.AvailableBatches, 1)
	assert.Equal(t, int64(40), snap.AvailableBatches[0].ID)
}

// Una tienda sin fila producto-tienda tiene stock cero, nunca el global.
func TestSnapshot_TiendaSinFilaEsCero(t *testing.T) {
	lookup, _ := newLookupFixture()

	snap, err := lookup.Snapshot(context.Background(), 7, int64Ptr(9))

	require.NoError(t, err)
	assert.Zero(t, snap.StoreStock, "sin fila la tienda no tiene stock")
	assert.Empty(t, snap.AvailableBatches)
}

// Un producto inexistente falla con ErrNotFound: el llamador debe bloquear
// el formulario, no asumir stock ilimitado.
func TestSnapshot_ProductoInexistenteFalla(t *testing.T) {
	lookup, _ := newLookupFixture()

	_, err := lookup.Snapshot(context.Background(), 999, nil)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSnapshot_ProductoInvalidoFalla(t *testing.T) {
	lookup, _ := newLookupFixture()

	_, err := lookup.Snapshot(context.Background(), 0, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
