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
	dominv "github.com/Jwerthe/chocorocks-inventory/internal/domain/inventory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Escenario base: producto 7 con 80 de stock global, 50 en la tienda 1,
// nada en la tienda 2, y un lote de 30 unidades asignado a la tienda 1.
// ──────────────────────────────────────────────────────────────────────────────

type movementFixture struct {
	products  *fakeProductRepo
	relations *fakeRelationRepo
	batches   *fakeBatchRepo
	movements *fakeMovementRepo
	uc        *inventory.RegisterMovementUseCase
}

func newMovementFixture() *movementFixture {
	products := newFakeProductRepo(&entity.Product{
		ID: 7, Name: "Chocorocks Clásico", CurrentGlobalStock: 80, IsActive: true,
	})
	relations := newFakeRelationRepo(&entity.ProductStore{
		ID: 1, ProductID: 7, StoreID: 1, CurrentStock: 50, ReorderThreshold: 15,
	})
	batches := newFakeBatchRepo(&entity.ProductBatch{
		ID: 40, BatchCode: "LOTE-001", ProductID: 7, StoreID: int64Ptr(1),
		ProductionDate:  time.Now().AddDate(0, -1, 0),
		ExpirationDate:  time.Now().AddDate(1, 0, 0),
		InitialQuantity: 30, CurrentQuantity: 30, IsActive: true,
	})
	movements := newFakeMovementRepo()

	lookup := inventory.NewStockLookup(products, batches, relations)
	uc := inventory.NewRegisterMovementUseCase(
		lookup, movements, products, relations, batches,
		dominv.MovementValidator{}, testLogger(),
	)
	return &movementFixture{
		products: products, relations: relations, batches: batches,
		movements: movements, uc: uc,
	}
}

func transferDraft(qty int) dominv.MovementDraft {
	return dominv.MovementDraft{
		Type:        entity.MovementTypeTRANSFER,
		ProductID:   7,
		FromStoreID: int64Ptr(1),
		ToStoreID:   int64Ptr(2),
		Quantity:    qty,
		Reason:      entity.ReasonTransfer,
		UserID:      3,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo
// ──────────────────────────────────────────────────────────────────────────────

// Un TRANSFER válido crea el movimiento, incrementa el destino exactamente una
// vez y decrementa el origen exactamente una vez.
func TestRegister_TransferAplicaTodosLosPasos(t *testing.T) {
	f := newMovementFixture()

	res, err := f.uc.Register(context.Background(), transferDraft(10))

	require.NoError(t, err)
	assert.NotZero(t, res.MovementID, "el movimiento debe quedar registrado")
	assert.NotEmpty(t, res.CorrelationID)

	assert.Equal(t, 1, f.movements.count(), "exactamente un registro de movimiento")
	assert.Equal(t, 40, f.relations.stockAt(7, 1), "el origen baja 50-10")
	assert.Equal(t, 10, f.relations.stockAt(7, 2), "el destino nace con el delta")
	assert.Equal(t, 1, f.relations.created, "la fila destino se crea porque no existía")
}

// El destino existente se actualiza, no se duplica la fila.
func TestRegister_TransferDestinoExistenteActualiza(t *testing.T) {
	f := newMovementFixture()
	_, err := f.relations.Create(context.Background(), &entity.ProductStore{
		ProductID: 7, StoreID: 2, CurrentStock: 5,
	})
	require.NoError(t, err)
	f.relations.created = 0

	_, err = f.uc.Register(context.Background(), transferDraft(10))

	require.NoError(t, err)
	assert.Equal(t, 15, f.relations.stockAt(7, 2), "5 + 10")
	assert.Zero(t, f.relations.created, "no debe crearse una segunda fila destino")
}

// Un TRANSFER con lote además ajusta el lote, con piso en cero.
func TestRegister_TransferConLoteAjustaElLote(t *testing.T) {
	f := newMovementFixture()
	draft := transferDraft(10)
	draft.BatchID = int64Ptr(40)

	_, err := f.uc.Register(context.Background(), draft)

	require.NoError(t, err)
	b, _ := f.batches.GetByID(context.Background(), 40)
	assert.Equal(t, 20, b.CurrentQuantity, "el lote baja 30-10")
}

// Un IN sin tienda incrementa el stock global del producto.
func TestRegister_EntradaSinTiendaSubeElGlobal(t *testing.T) {
	f := newMovementFixture()
	draft := dominv.MovementDraft{
		Type:      entity.MovementTypeIN,
		ProductID: 7,
		Quantity:  25,
		Reason:    entity.ReasonProduction,
		UserID:    3,
	}

	_, err := f.uc.Register(context.Background(), draft)

	require.NoError(t, err)
	p, _ := f.products.GetByID(context.Background(), 7)
	assert.Equal(t, 105, p.CurrentGlobalStock, "80 + 25")
}

// Un IN hacia una tienda incrementa la fila producto-tienda, no el global.
func TestRegister_EntradaConTiendaSubeLaTienda(t *testing.T) {
	f := newMovementFixture()
	draft := dominv.MovementDraft{
		Type:      entity.MovementTypeIN,
		ProductID: 7,
		ToStoreID: int64Ptr(1),
		Quantity:  25,
		Reason:    entity.ReasonProduction,
		UserID:    3,
	}

	_, err := f.uc.Register(context.Background(), draft)

	require.NoError(t, err)
	assert.Equal(t, 75, f.relations.stockAt(7, 1), "50 + 25")
	p, _ := f.products.GetByID(context.Background(), 7)
	assert.Equal(t, 80, p.CurrentGlobalStock, "el global no se toca")
}

// Las advertencias de validación viajan en el resultado del movimiento aplicado.
func TestRegister_AdvertenciasViajanEnElResultado(t *testing.T) {
	f := newMovementFixture()

	res, err := f.uc.Register(context.Background(), transferDraft(45)) // quedan 5 < 10

	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "stock bajo tras el movimiento")
}

// ──────────────────────────────────────────────────────────────────────────────
// Rechazo y fallo parcial
// ──────────────────────────────────────────────────────────────────────────────

// Un movimiento rechazado por validación no escribe absolutamente nada.
func TestRegister_ValidacionFallidaNoEscribe(t *testing.T) {
	f := newMovementFixture()

	_, err := f.uc.Register(context.Background(), transferDraft(999))

	var vErr *inventory.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Result.Errors["quantity"], "stock insuficiente")

	assert.Zero(t, f.movements.count(), "sin escritura de movimiento")
	assert.Equal(t, 50, f.relations.stockAt(7, 1), "el origen queda intacto")
	assert.Zero(t, f.relations.created)
	assert.Zero(t, f.relations.updated)
}

// Si falla el primer paso (crear el movimiento) no se ajusta ningún stock.
func TestRegister_FalloEnPrimerPasoNoAjustaStock(t *testing.T) {
	f := newMovementFixture()
	f.movements.failCreate = true

	_, err := f.uc.Register(context.Background(), transferDraft(10))

	var pErr *inventory.PartialApplyError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "crear-movimiento", pErr.Step)
	assert.NotEmpty(t, pErr.CorrelationID)
	assert.ErrorIs(t, err, errBackendDown)

	assert.Equal(t, 50, f.relations.stockAt(7, 1), "ningún ajuste aplicado")
	assert.Equal(t, -1, f.relations.stockAt(7, 2))
}

// Si otro cliente borra el lote entre el snapshot y el ajuste, el paso del
// lote falla con ErrNotFound dentro de un PartialApplyError, nunca con pánico.
func TestRegister_LoteBorradoEnCarreraReportaPasoFallido(t *testing.T) {
	f := newMovementFixture()
	f.batches.vanished = map[int64]bool{40: true}
	draft := transferDraft(10)
	draft.BatchID = int64Ptr(40)

	_, err := f.uc.Register(context.Background(), draft)

	var pErr *inventory.PartialApplyError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "ajustar-lote", pErr.Step)
	assert.NotEmpty(t, pErr.CorrelationID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Equal(t, 1, f.movements.count(), "el movimiento ya quedó registrado")
	assert.Equal(t, 40, f.relations.stockAt(7, 1), "el origen ya quedó decrementado")
}

// Un fallo a mitad de secuencia deja los pasos previos aplicados y lo dice:
// no hay rollback, el error nombra el paso que rompió.
func TestRegister_FalloParcialDejaPasosPreviosAplicados(t *testing.T) {
	f := newMovementFixture()
	// El destino (tienda 2) no existe: el incremento usa Create y pasa.
	// El decremento del origen usa Update y falla.
	f.relations.failUpdate = true

	_, err := f.uc.Register(context.Background(), transferDraft(10))

	var pErr *inventory.PartialApplyError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "decrementar-origen", pErr.Step)

	assert.Equal(t, 1, f.movements.count(), "el movimiento ya quedó registrado")
	assert.Equal(t, 10, f.relations.stockAt(7, 2), "el destino ya quedó incrementado")
	assert.Equal(t, 50, f.relations.stockAt(7, 1), "el origen no llegó a bajar")
}
