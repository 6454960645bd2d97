package inventory

import (
	"time"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// StockSnapshot es la vista en memoria del stock de un producto, armada por
// el lookup a partir de producto, lotes y relaciones producto-tienda.
// Nunca se muta; un movimiento confirmado obliga a tomar un snapshot nuevo.
type StockSnapshot struct {
	ProductID        int64
	StoreID          *int64
	ProductStock     int // stock global del producto
	StoreStock       int // stock de la tienda; igual a ProductStock si no hay tienda
	ReorderThreshold int // umbral de la relación producto-tienda; 0 si no existe
	AvailableBatches []entity.ProductBatch
	TakenAt          time.Time
}

// FindBatch devuelve el lote disponible con el ID dado, o nil si no está en el snapshot.
func (s *StockSnapshot) FindBatch(batchID int64) *entity.ProductBatch {
	for i := range s.AvailableBatches {
		if s.AvailableBatches[i].ID == batchID {
			return &s.AvailableBatches[i]
		}
	}
	return nil
}
