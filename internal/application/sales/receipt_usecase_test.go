package sales_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jwerthe/chocorocks-inventory/internal/application/sales"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs
// ──────────────────────────────────────────────────────────────────────────────

type stubReceiptSales struct {
	repository.SaleRepository
	sale    *entity.Sale
	details []entity.SaleDetail
}

func (s *stubReceiptSales) GetByID(context.Context, int64) (*entity.Sale, error) {
	return s.sale, nil
}

func (s *stubReceiptSales) ListDetails(context.Context, int64) ([]entity.SaleDetail, error) {
	return s.details, nil
}

type stubReceiptStores struct {
	repository.StoreRepository
	store *entity.Store
}

func (s *stubReceiptStores) GetByID(context.Context, int64) (*entity.Store, error) {
	return s.store, nil
}

type stubReceiptClients struct {
	repository.ClientRepository
	client *entity.Client
	calls  int
}

func (s *stubReceiptClients) GetByID(context.Context, int64) (*entity.Client, error) {
	s.calls++
	return s.client, nil
}

type captureGenerator struct {
	data sales.ReceiptData
}

func (g *captureGenerator) GenerateReceiptPDF(_ context.Context, data sales.ReceiptData) ([]byte, error) {
	g.data = data
	return []byte("%PDF-fake"), nil
}

func newReceiptUC(sale *entity.Sale, details []entity.SaleDetail, client *entity.Client) (*sales.ReceiptUseCase, *captureGenerator, *stubReceiptClients) {
	gen := &captureGenerator{}
	clients := &stubReceiptClients{client: client}
	uc := sales.NewReceiptUseCase(
		&stubReceiptSales{sale: sale, details: details},
		&stubReceiptStores{store: &entity.Store{ID: 1, Name: "Chocorocks Centro"}},
		clients,
		&stubProductRepo{product: &entity.Product{ID: 7, Name: "Chocorocks Clásico", Flavor: "Maní"}},
		gen,
	)
	return uc, gen, clients
}

// ──────────────────────────────────────────────────────────────────────────────
// Armado de la nota de venta
// ──────────────────────────────────────────────────────────────────────────────

// El caso de uso resuelve nombres de producto y pasa el cliente al generador.
func TestReceiptGenerate_ArmaLosDatos(t *testing.T) {
	clientID := int64(4)
	sale := &entity.Sale{ID: 9, SaleNumber: "VEN-20250615-0009", StoreID: 1, ClientID: &clientID}
	details := []entity.SaleDetail{
		{SaleID: 9, ProductID: 7, Quantity: 3, UnitPrice: decimal.RequireFromString("2.50"), Subtotal: decimal.RequireFromString("7.50")},
	}
	uc, gen, clients := newReceiptUC(sale, details, &entity.Client{ID: 4, NameLastname: "Ana Pérez"})

	pdf, err := uc.Generate(context.Background(), 9)

	require.NoError(t, err)
	assert.NotEmpty(t, pdf, "debe devolver los bytes del PDF")
	require.Len(t, gen.data.Lines, 1)
	assert.Equal(t, "Chocorocks Clásico (Maní)", gen.data.Lines[0].ProductName, "el nombre incluye el sabor")
	assert.Equal(t, 3, gen.data.Lines[0].Quantity)
	require.NotNil(t, gen.data.Client)
	assert.Equal(t, "Ana Pérez", gen.data.Client.NameLastname)
	assert.Equal(t, 1, clients.calls)
}

// Sin ClientID la nota sale a consumidor final y no se consulta el cliente.
func TestReceiptGenerate_ConsumidorFinal(t *testing.T) {
	sale := &entity.Sale{ID: 9, SaleNumber: "VEN-20250615-0009", StoreID: 1}
	uc, gen, clients := newReceiptUC(sale, nil, nil)

	_, err := uc.Generate(context.Background(), 9)

	require.NoError(t, err)
	assert.Nil(t, gen.data.Client)
	assert.Zero(t, clients.calls, "no debe consultar clientes sin ClientID")
}

// Venta inexistente en el backend.
func TestReceiptGenerate_VentaInexistenteFalla(t *testing.T) {
	uc, _, _ := newReceiptUC(nil, nil, nil)

	_, err := uc.Generate(context.Background(), 99)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
