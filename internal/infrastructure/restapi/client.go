// Package restapi implementa los puertos de repositorio contra el backend
// REST de inventario (la autoridad sobre los datos). Sin transacciones ni
// reintentos automáticos: los timeouts viven en el cliente HTTP y los fallos
// se propagan como errores de dominio.
package restapi

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/Jwerthe/chocorocks-inventory/internal/domain"
	"github.com/Jwerthe/chocorocks-inventory/pkg/config"
	"github.com/Jwerthe/chocorocks-inventory/pkg/logger"
)

// Client envuelve resty con la configuración común hacia el backend.
type Client struct {
	http *resty.Client
}

// NewClient construye el cliente base del backend.
func NewClient(cfg config.BackendConfig, log *logger.Logger) *Client {
	r := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json")
	if cfg.Token != "" {
		r.SetAuthToken(cfg.Token)
	}
	r.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if resp.IsError() {
			log.Warn().
				Str("method", resp.Request.Method).
				Str("url", resp.Request.URL).
				Int("status", resp.StatusCode()).
				Msg("respuesta de error del backend de inventario")
		}
		return nil
	})
	return &Client{http: r}
}

// R abre una petición nueva.
func (c *Client) R() *resty.Request {
	return c.http.R()
}

// mapError traduce el resultado de una llamada al backend a errores de dominio.
// Errores de red se marcan como backend no disponible; 401/403 se amigan.
func mapError(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrBackendUnavailable, err)
	}
	if resp.IsSuccess() {
		return nil
	}
	switch resp.StatusCode() {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.ErrUnauthorized
	case http.StatusConflict:
		return domain.ErrConflict
	default:
		return fmt.Errorf("backend respondió %d: %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
}

// isNotFound distingue el 404 para los GetByID que devuelven nil, nil.
func isNotFound(resp *resty.Response, err error) bool {
	return err == nil && resp.StatusCode() == http.StatusNotFound
}
