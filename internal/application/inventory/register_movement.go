package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/dto"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	dominv "github.com/Jwerthe/chocorocks-inventory/internal/domain/inventory"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
	"github.com/Jwerthe/chocorocks-inventory/pkg/logger"
)

// RegisterMovementUseCase ejecuta el flujo completo de un movimiento de
// inventario: snapshot fresco, validación y secuencia ordenada de escrituras
// contra el backend. La secuencia no es atómica; ante un fallo parcial se
// devuelve PartialApplyError y el llamador debe refrescar el stock.
type RegisterMovementUseCase struct {
	lookup    *StockLookup
	movements repository.MovementRepository
	products  repository.ProductRepository
	relations repository.ProductStoreRepository
	batches   repository.BatchRepository
	validator dominv.MovementValidator
	log       *logger.Logger
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(
	lookup *StockLookup,
	movements repository.MovementRepository,
	products repository.ProductRepository,
	relations repository.ProductStoreRepository,
	batches repository.BatchRepository,
	validator dominv.MovementValidator,
	log *logger.Logger,
) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		lookup:    lookup,
		movements: movements,
		products:  products,
		relations: relations,
		batches:   batches,
		validator: validator,
		log:       log,
	}
}

// RegisterResult resultado de un movimiento aplicado por completo.
type RegisterResult struct {
	MovementID    int64
	CorrelationID string
	Warnings      []string
}

// RegisterFromRequest adapta el body HTTP al borrador de dominio y registra.
// El userID viene resuelto por el middleware de actor.
func (uc *RegisterMovementUseCase) RegisterFromRequest(ctx context.Context, userID int64, in dto.RegisterMovementRequest) (*RegisterResult, error) {
	return uc.Register(ctx, dominv.MovementDraft{
		Type:        in.Type,
		ProductID:   in.ProductID,
		BatchID:     in.BatchID,
		FromStoreID: in.FromStoreID,
		ToStoreID:   in.ToStoreID,
		Quantity:    in.Quantity,
		Reason:      in.Reason,
		UserID:      userID,
		Notes:       in.Notes,
	})
}

// Register toma un snapshot fresco, revalida justo antes de la escritura
// autoritativa y ejecuta las escrituras en orden fijo:
//  1. crear el registro de movimiento (append-only),
//  2. incrementar el destino (una sola vez),
//  3. decrementar el origen (una sola vez),
//  4. ajustar el lote cuando se usó uno específico.
func (uc *RegisterMovementUseCase) Register(ctx context.Context, draft dominv.MovementDraft) (*RegisterResult, error) {
	snap, err := uc.lookup.Snapshot(ctx, draft.ProductID, uc.lookupStore(draft))
	if err != nil {
		return nil, fmt.Errorf("consultar stock antes del movimiento: %w", err)
	}

	res := uc.validator.Validate(draft, snap)
	if !res.OK() {
		return nil, &ValidationError{Result: res}
	}

	correlationID := uuid.New().String()
	var created *entity.InventoryMovement

	steps := []sagaStep{
		{
			name: "crear-movimiento",
			run: func(ctx context.Context) error {
				m, err := uc.movements.Create(ctx, &entity.InventoryMovement{
					Type:        draft.Type,
					ProductID:   draft.ProductID,
					BatchID:     draft.BatchID,
					FromStoreID: draft.FromStoreID,
					ToStoreID:   draft.ToStoreID,
					Quantity:    draft.Quantity,
					Reason:      draft.Reason,
					UserID:      draft.UserID,
					Notes:       draft.Notes,
					CreatedAt:   time.Now(),
				})
				if err != nil {
					return err
				}
				created = m
				return nil
			},
		},
	}
	steps = append(steps, uc.adjustmentSteps(draft, snap)...)

	if err := runSaga(ctx, uc.log, correlationID, steps); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("correlation_id", correlationID).
		Int64("movement_id", created.ID).
		Str("type", draft.Type).
		Int64("product_id", draft.ProductID).
		Int("quantity", draft.Quantity).
		Msg("movimiento de inventario registrado")

	return &RegisterResult{
		MovementID:    created.ID,
		CorrelationID: correlationID,
		Warnings:      res.Warnings,
	}, nil
}

// lookupStore decide el contexto de tienda del snapshot: el origen para
// salidas y traslados, el destino para entradas.
func (uc *RegisterMovementUseCase) lookupStore(draft dominv.MovementDraft) *int64 {
	switch draft.Type {
	case entity.MovementTypeOUT, entity.MovementTypeTRANSFER:
		return draft.FromStoreID
	case entity.MovementTypeIN:
		return draft.ToStoreID
	}
	return nil
}

// adjustmentSteps arma los ajustes de stock según el tipo. Exactamente un
// incremento en destino y un decremento en origen, nunca duplicados,
// se haya usado lote específico o no.
func (uc *RegisterMovementUseCase) adjustmentSteps(draft dominv.MovementDraft, snap *dominv.StockSnapshot) []sagaStep {
	var steps []sagaStep

	// Incremento en destino: TRANSFER siempre (tiene tienda destino validada),
	// IN hacia tienda o hacia el stock global.
	switch draft.Type {
	case entity.MovementTypeTRANSFER:
		toStore := *draft.ToStoreID
		steps = append(steps, sagaStep{
			name: "incrementar-destino",
			run: func(ctx context.Context) error {
				return addToStoreStock(ctx, uc.relations, draft.ProductID, toStore, draft.Quantity)
			},
		})
	case entity.MovementTypeIN:
		if draft.ToStoreID != nil {
			toStore := *draft.ToStoreID
			steps = append(steps, sagaStep{
				name: "incrementar-destino",
				run: func(ctx context.Context) error {
					return addToStoreStock(ctx, uc.relations, draft.ProductID, toStore, draft.Quantity)
				},
			})
		} else {
			steps = append(steps, sagaStep{
				name: "incrementar-stock-global",
				run: func(ctx context.Context) error {
					return uc.products.UpdateGlobalStock(ctx, draft.ProductID, snap.ProductStock+draft.Quantity)
				},
			})
		}
	}

	// Decremento en origen: fila producto-tienda si existe, si no el global.
	if draft.Type == entity.MovementTypeOUT || draft.Type == entity.MovementTypeTRANSFER {
		steps = append(steps, sagaStep{
			name: "decrementar-origen",
			run: func(ctx context.Context) error {
				return uc.decrementOrigin(ctx, draft, snap)
			},
		})
	}

	// Ajuste del lote usado: el lote nunca baja de cero.
	if draft.BatchID != nil && (draft.Type == entity.MovementTypeOUT || draft.Type == entity.MovementTypeTRANSFER) {
		batchID := *draft.BatchID
		steps = append(steps, sagaStep{
			name: "ajustar-lote",
			run: func(ctx context.Context) error {
				return uc.deductFromBatch(ctx, batchID, draft.Quantity)
			},
		})
	}

	return steps
}

func (uc *RegisterMovementUseCase) decrementOrigin(ctx context.Context, draft dominv.MovementDraft, snap *dominv.StockSnapshot) error {
	if draft.FromStoreID != nil {
		rel, err := uc.relations.Find(ctx, draft.ProductID, *draft.FromStoreID)
		if err != nil {
			return fmt.Errorf("buscar origen: %w", err)
		}
		if rel != nil {
			rel.CurrentStock -= draft.Quantity
			if err := uc.relations.Update(ctx, rel); err != nil {
				return fmt.Errorf("decrementar origen: %w", err)
			}
			return nil
		}
	}
	return uc.products.UpdateGlobalStock(ctx, draft.ProductID, snap.ProductStock-draft.Quantity)
}

func (uc *RegisterMovementUseCase) deductFromBatch(ctx context.Context, batchID int64, quantity int) error {
	b, err := uc.batches.GetByID(ctx, batchID)
	if err != nil {
		return fmt.Errorf("consultar lote %d: %w", batchID, err)
	}
	if b == nil {
		return fmt.Errorf("lote %d: %w", batchID, domain.ErrNotFound)
	}
	b.CurrentQuantity = dominv.ClampQuantity(b.CurrentQuantity-quantity, b.InitialQuantity)
	if err := uc.batches.Update(ctx, b); err != nil {
		return fmt.Errorf("ajustar lote %d: %w", batchID, err)
	}
	return nil
}
