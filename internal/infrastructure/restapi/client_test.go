package restapi_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/internal/domain/entity"
	"github.com/Jwerthe/chocorocks-inventory/internal/infrastructure/restapi"
	"github.com/Jwerthe/chocorocks-inventory/pkg/config"
	"github.com/Jwerthe/chocorocks-inventory/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func testClient(t *testing.T, handler http.Handler) *restapi.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return restapi.NewClient(config.BackendConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, logger.New(logger.Config{Env: "production", Level: "fatal"}))
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de campos del wire: el backend llama minStockLevel a dos cosas
// distintas según la entidad.
// ──────────────────────────────────────────────────────────────────────────────

// En Product el campo minStockLevel del backend es el stock global.
func TestProductGetByID_MapeaMinStockLevelAStockGlobal(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products/7", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 7, "name": "Chocorocks Clásico", "minStockLevel": 80, "isActive": true,
		})
	}))

	p, err := restapi.NewProductRepository(c).GetByID(context.Background(), 7)

	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 80, p.CurrentGlobalStock)
}

// En ProductStore el mismo nombre de campo es el umbral de reorden.
func TestProductStoreFind_MapeaMinStockLevelAUmbral(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("productId"))
		assert.Equal(t, "1", r.URL.Query().Get("storeId"))
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 3, "productId": 7, "storeId": 1, "currentStock": 50, "minStockLevel": 15},
		})
	}))

	rel, err := restapi.NewProductStoreRepository(c).Find(context.Background(), 7, 1)

	require.NoError(t, err)
	require.NotNil(t, rel)
	assert.Equal(t, 50, rel.CurrentStock)
	assert.Equal(t, 15, rel.ReorderThreshold)
}

// UpdateGlobalStock escribe el stock en el campo minStockLevel del wire.
func TestUpdateGlobalStock_EscribeMinStockLevel(t *testing.T) {
	var body map[string]int
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/products/7/stock", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusOK)
	}))

	err := restapi.NewProductRepository(c).UpdateGlobalStock(context.Background(), 7, 65)

	require.NoError(t, err)
	assert.Equal(t, 65, body["minStockLevel"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Contratos de ausencia y mapeo de errores
// ──────────────────────────────────────────────────────────────────────────────

// Find con lista vacía significa que la fila no existe: nil, nil, sin error.
func TestProductStoreFind_ListaVaciaEsNilNil(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("[]"))
	}))

	rel, err := restapi.NewProductStoreRepository(c).Find(context.Background(), 7, 9)

	require.NoError(t, err)
	assert.Nil(t, rel)
}

// GetByID con 404 también es nil, nil: la ausencia no es un error del flujo.
func TestProductGetByID_404EsNilNil(t *testing.T) {
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	p, err := restapi.NewProductRepository(c).GetByID(context.Background(), 999)

	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestMapeoDeErrores_EstadosHTTP(t *testing.T) {
	cases := []struct {
		status int
		want   error
	}{
		{http.StatusUnauthorized, domain.ErrUnauthorized},
		{http.StatusForbidden, domain.ErrUnauthorized},
		{http.StatusConflict, domain.ErrConflict},
	}
	for _, tc := range cases {
		c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(tc.status)
		}))

		_, err := restapi.NewProductRepository(c).List(context.Background())

		assert.ErrorIs(t, err, tc.want, "estado %d", tc.status)
	}
}

// Una caída de red se reporta como backend no disponible, no como un 500 genérico.
func TestMapeoDeErrores_RedCaida(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	c := restapi.NewClient(config.BackendConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, logger.New(logger.Config{Env: "production", Level: "fatal"}))
	srv.Close() // el backend ya no está

	_, err := restapi.NewProductRepository(c).List(context.Background())

	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
}

// ──────────────────────────────────────────────────────────────────────────────
// Fechas ISO en el wire de lotes
// ──────────────────────────────────────────────────────────────────────────────

func TestBatchCreate_FechasISOEnElWire(t *testing.T) {
	var body map[string]any
	c := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id": 40, "batchCode": "LOTE-001", "productId": 7,
			"productionDate": "2025-06-12", "expirationDate": "2025-12-12",
			"initialQuantity": 20, "currentQuantity": 20, "isActive": true,
		})
	}))

	b, err := restapi.NewBatchRepository(c).Create(context.Background(), &entity.ProductBatch{
		BatchCode:       "LOTE-001",
		ProductID:       7,
		ProductionDate:  time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC),
		ExpirationDate:  time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC),
		InitialQuantity: 20,
		CurrentQuantity: 20,
		IsActive:        true,
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-06-12", body["productionDate"], "la fecha viaja como YYYY-MM-DD")
	assert.Equal(t, "2025-12-12", body["expirationDate"])
	assert.Equal(t, 2025, b.ProductionDate.Year(), "la respuesta se parsea de vuelta")
	assert.Equal(t, time.December, b.ExpirationDate.Month())
}
