package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/dto"
	"github.com/Jwerthe/chocorocks-inventory/internal/application/inventory"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
)

type batchFixture struct {
	products  *fakeProductRepo
	relations *fakeRelationRepo
	batches   *fakeBatchRepo
	uc        *inventory.BatchLifecycle
}

func newBatchFixture() *batchFixture {
	products := newFakeProductRepo(&entity.Product{
		ID: 7, Name: "Chocorocks Clásico", CurrentGlobalStock: 50, IsActive: true,
	})
	relations := newFakeRelationRepo()
	batches := newFakeBatchRepo()
	uc := inventory.NewBatchLifecycle(batches, products, relations, testLogger())
	return &batchFixture{products: products, relations: relations, batches: batches, uc: uc}
}

func createBatchRequest(qty int) dto.CreateBatchRequest {
	today := time.Now()
	return dto.CreateBatchRequest{
		BatchCode:       "CHOCO-2025-06",
		ProductID:       7,
		ProductionDate:  today.AddDate(0, 0, -2).Format("2006-01-02"),
		ExpirationDate:  today.AddDate(0, 6, 0).Format("2006-01-02"),
		InitialQuantity: qty,
		BatchCost:       decimal.NewFromInt(120),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Creación
// ──────────────────────────────────────────────────────────────────────────────

// Crear un lote sin tienda descuenta el stock global y no toca ninguna
// relación producto-tienda.
func TestBatchCreate_SinTiendaDescuentaGlobal(t *testing.T) {
	f := newBatchFixture()

	b, err := f.uc.CreateFromRequest(context.Background(), createBatchRequest(20))

	require.NoError(t, err)
	assert.Equal(t, 20, b.CurrentQuantity, "nace con cantidad actual = inicial")
	assert.Equal(t, 20, b.InitialQuantity)
	assert.True(t, b.IsActive)

	p, _ := f.products.GetByID(context.Background(), 7)
	assert.Equal(t, 30, p.CurrentGlobalStock, "50 - 20")
	assert.Zero(t, f.relations.created, "sin tienda no se toca ninguna relación")
}

// Crear un lote asignado a tienda además incrementa la fila producto-tienda.
func TestBatchCreate_ConTiendaAsignaStock(t *testing.T) {
	f := newBatchFixture()
	in := createBatchRequest(20)
	in.StoreID = int64Ptr(1)

	_, err := f.uc.CreateFromRequest(context.Background(), in)

	require.NoError(t, err)
	p, _ := f.products.GetByID(context.Background(), 7)
	assert.Equal(t, 30, p.CurrentGlobalStock)
	assert.Equal(t, 20, f.relations.stockAt(7, 1), "la tienda recibe el lote completo")
}

// Un código duplicado (ignorando mayúsculas) se rechaza sin escribir nada.
func TestBatchCreate_CodigoDuplicadoRechaza(t *testing.T) {
	f := newBatchFixture()
	_, err := f.uc.CreateFromRequest(context.Background(), createBatchRequest(10))
	require.NoError(t, err)
	stockBefore, _ := f.products.GetByID(context.Background(), 7)

	in := createBatchRequest(10)
	in.BatchCode = "choco-2025-06"
	_, err = f.uc.CreateFromRequest(context.Background(), in)

	var vErr *inventory.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Result.Errors["batchCode"], "ya existe")

	stockAfter, _ := f.products.GetByID(context.Background(), 7)
	assert.Equal(t, stockBefore.CurrentGlobalStock, stockAfter.CurrentGlobalStock)
}

// Una fecha mal formada se rechaza antes de tocar el backend.
func TestBatchCreate_FechaInvalidaRechaza(t *testing.T) {
	f := newBatchFixture()
	in := createBatchRequest(10)
	in.ProductionDate = "15/06/2025"

	_, err := f.uc.CreateFromRequest(context.Background(), in)

	var vErr *inventory.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Contains(t, vErr.Result.Errors["productionDate"], "YYYY-MM-DD")
}

// Un producto inexistente corta el flujo con ErrNotFound.
func TestBatchCreate_ProductoInexistenteFalla(t *testing.T) {
	f := newBatchFixture()
	in := createBatchRequest(10)
	in.ProductID = 999

	_, err := f.uc.CreateFromRequest(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Si falla el descuento de stock global el lote ya quedó creado: fallo
// parcial explícito, sin rollback.
func TestBatchCreate_FalloParcialTrasCrearLote(t *testing.T) {
	f := newBatchFixture()
	f.products.failUpdateStock = true

	_, err := f.uc.CreateFromRequest(context.Background(), createBatchRequest(20))

	var pErr *inventory.PartialApplyError
	require.ErrorAs(t, err, &pErr)
	assert.Equal(t, "descontar-stock-global", pErr.Step)

	all, _ := f.batches.List(context.Background())
	assert.Len(t, all, 1, "el lote ya quedó creado en el backend")
}

// ──────────────────────────────────────────────────────────────────────────────
// Edición
// ──────────────────────────────────────────────────────────────────────────────

// La cantidad editada se acota a [0, inicial] y nunca cascadea a stock.
func TestBatchUpdate_AcotaCantidadSinCascada(t *testing.T) {
	f := newBatchFixture()
	created, err := f.uc.CreateFromRequest(context.Background(), createBatchRequest(20))
	require.NoError(t, err)
	globalBefore, _ := f.products.GetByID(context.Background(), 7)

	tooMany := 500
	updated, err := f.uc.Update(context.Background(), created.ID, dto.UpdateBatchRequest{
		CurrentQuantity: &tooMany,
	})

	require.NoError(t, err)
	assert.Equal(t, 20, updated.CurrentQuantity, "nunca por encima de la cantidad inicial")

	negative := -3
	updated, err = f.uc.Update(context.Background(), created.ID, dto.UpdateBatchRequest{
		CurrentQuantity: &negative,
	})
	require.NoError(t, err)
	assert.Zero(t, updated.CurrentQuantity, "nunca negativa")

	globalAfter, _ := f.products.GetByID(context.Background(), 7)
	assert.Equal(t, globalBefore.CurrentGlobalStock, globalAfter.CurrentGlobalStock,
		"editar un lote no toca el stock del producto")
}

func TestBatchUpdate_CostoNegativoRechaza(t *testing.T) {
	f := newBatchFixture()
	created, err := f.uc.CreateFromRequest(context.Background(), createBatchRequest(20))
	require.NoError(t, err)

	bad := decimal.NewFromInt(-1)
	_, err = f.uc.Update(context.Background(), created.ID, dto.UpdateBatchRequest{BatchCost: &bad})

	var vErr *inventory.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "el costo del lote no puede ser negativo", vErr.Result.Errors["batchCost"])
}

func TestBatchUpdate_LoteInexistenteFalla(t *testing.T) {
	f := newBatchFixture()

	_, err := f.uc.Update(context.Background(), 999, dto.UpdateBatchRequest{})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
