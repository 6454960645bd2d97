package repository

import (
	"context"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

// MovementRepository define el puerto para el registro de auditoría de
// movimientos. Solo creación y lectura: los movimientos nunca se mutan.
type MovementRepository interface {
	Create(ctx context.Context, m *entity.InventoryMovement) (*entity.InventoryMovement, error)
	ListByProduct(ctx context.Context, productID int64) ([]entity.InventoryMovement, error)
}
