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

// BatchLifecycle maneja la creación y edición de lotes de producción.
// Crear un lote descuenta el stock global del producto; si el lote nace
// asignado a una tienda, además incrementa la fila producto-tienda.
// La edición nunca cascadea hacia Product ni ProductStore.
type BatchLifecycle struct {
	batches   repository.BatchRepository
	products  repository.ProductRepository
	relations repository.ProductStoreRepository
	log       *logger.Logger
	now       func() time.Time
}

// NewBatchLifecycle construye el caso de uso.
func NewBatchLifecycle(
	batches repository.BatchRepository,
	products repository.ProductRepository,
	relations repository.ProductStoreRepository,
	log *logger.Logger,
) *BatchLifecycle {
	return &BatchLifecycle{
		batches:   batches,
		products:  products,
		relations: relations,
		log:       log,
		now:       time.Now,
	}
}

// CreateFromRequest adapta el body HTTP (fechas ISO) al borrador de dominio.
func (uc *BatchLifecycle) CreateFromRequest(ctx context.Context, in dto.CreateBatchRequest) (*entity.ProductBatch, error) {
	prod, err := time.Parse("2006-01-02", in.ProductionDate)
	if err != nil {
		return nil, &ValidationError{Result: fieldError("productionDate", "fecha de producción inválida (se espera YYYY-MM-DD)")}
	}
	exp, err := time.Parse("2006-01-02", in.ExpirationDate)
	if err != nil {
		return nil, &ValidationError{Result: fieldError("expirationDate", "fecha de vencimiento inválida (se espera YYYY-MM-DD)")}
	}
	return uc.Create(ctx, dominv.BatchDraft{
		BatchCode:       in.BatchCode,
		ProductID:       in.ProductID,
		StoreID:         in.StoreID,
		ProductionDate:  prod,
		ExpirationDate:  exp,
		InitialQuantity: in.InitialQuantity,
		BatchCost:       in.BatchCost,
	})
}

// Create valida el lote contra los lotes ya cargados (unicidad advisoria de
// código) y lo crea con CurrentQuantity == InitialQuantity. Los ajustes de
// stock posteriores siguen la misma secuencia no atómica que los movimientos.
func (uc *BatchLifecycle) Create(ctx context.Context, draft dominv.BatchDraft) (*entity.ProductBatch, error) {
	product, err := uc.products.GetByID(ctx, draft.ProductID)
	if err != nil {
		return nil, fmt.Errorf("consultar producto %d: %w", draft.ProductID, err)
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	existing, err := uc.batches.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("consultar lotes existentes: %w", err)
	}

	res := dominv.ValidateNewBatch(draft, existing, uc.now())
	if !res.OK() {
		return nil, &ValidationError{Result: res}
	}

	correlationID := uuid.New().String()
	var created *entity.ProductBatch

	steps := []sagaStep{
		{
			name: "crear-lote",
			run: func(ctx context.Context) error {
				b, err := uc.batches.Create(ctx, &entity.ProductBatch{
					BatchCode:       draft.BatchCode,
					ProductID:       draft.ProductID,
					StoreID:         draft.StoreID,
					ProductionDate:  draft.ProductionDate,
					ExpirationDate:  draft.ExpirationDate,
					InitialQuantity: draft.InitialQuantity,
					CurrentQuantity: draft.InitialQuantity,
					BatchCost:       draft.BatchCost,
					IsActive:        true,
				})
				if err != nil {
					return err
				}
				created = b
				return nil
			},
		},
		{
			name: "descontar-stock-global",
			run: func(ctx context.Context) error {
				return uc.products.UpdateGlobalStock(ctx, draft.ProductID, product.CurrentGlobalStock-draft.InitialQuantity)
			},
		},
	}
	if draft.StoreID != nil {
		storeID := *draft.StoreID
		steps = append(steps, sagaStep{
			name: "asignar-a-tienda",
			run: func(ctx context.Context) error {
				return addToStoreStock(ctx, uc.relations, draft.ProductID, storeID, draft.InitialQuantity)
			},
		})
	}

	if err := runSaga(ctx, uc.log, correlationID, steps); err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("batch_code", created.BatchCode).
		Int64("product_id", created.ProductID).
		Int("initial_quantity", created.InitialQuantity).
		Msg("lote de producción creado")

	return created, nil
}

// Update edita un lote existente. BatchCode y ProductID son inmutables;
// CurrentQuantity se acota a [0, InitialQuantity] y no cascadea a stock.
func (uc *BatchLifecycle) Update(ctx context.Context, id int64, in dto.UpdateBatchRequest) (*entity.ProductBatch, error) {
	b, err := uc.batches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.ErrNotFound
	}

	if in.CurrentQuantity != nil {
		b.CurrentQuantity = dominv.ClampQuantity(*in.CurrentQuantity, b.InitialQuantity)
	}
	if in.BatchCost != nil {
		if in.BatchCost.IsNegative() {
			return nil, &ValidationError{Result: fieldError("batchCost", "el costo del lote no puede ser negativo")}
		}
		b.BatchCost = *in.BatchCost
	}
	if in.IsActive != nil {
		b.IsActive = *in.IsActive
	}

	if err := uc.batches.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Delete elimina el lote en el backend.
func (uc *BatchLifecycle) Delete(ctx context.Context, id int64) error {
	return uc.batches.Delete(ctx, id)
}

// ListByProduct devuelve los lotes de un producto (pantalla de lotes).
func (uc *BatchLifecycle) ListByProduct(ctx context.Context, productID int64) ([]entity.ProductBatch, error) {
	return uc.batches.ListByProduct(ctx, productID)
}

func fieldError(field, msg string) dominv.ValidationResult {
	return dominv.ValidationResult{Errors: map[string]string{field: msg}}
}
