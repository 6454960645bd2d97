package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Backend   BackendConfig
	HTTP      HTTPConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// BackendConfig configuración del backend REST de inventario (la autoridad
// sobre productos, tiendas, lotes y movimientos).
type BackendConfig struct {
	BaseURL string
	Timeout time.Duration
	Token   string // opcional: bearer token estático hacia el backend
}

// HTTPConfig configuración del servidor HTTP propio.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InventoryConfig ajustes del flujo de inventario.
type InventoryConfig struct {
	// LowStockPolicy: "fixed" usa el umbral constante, "per-store" el de cada
	// relación producto-tienda.
	LowStockPolicy string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_BASE_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "chocorocks-inventory"),
		},
		Backend: BackendConfig{
			BaseURL: getString(v, "BACKEND_BASE_URL", "http://localhost:8090"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 10)) * time.Second,
			Token:   getString(v, "BACKEND_TOKEN", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Inventory: InventoryConfig{
			LowStockPolicy: getString(v, "LOW_STOCK_POLICY", "fixed"),
		},
	}

	if cfg.Inventory.LowStockPolicy != "fixed" && cfg.Inventory.LowStockPolicy != "per-store" {
		return nil, fmt.Errorf("LOW_STOCK_POLICY inválida: %q (se espera fixed o per-store)", cfg.Inventory.LowStockPolicy)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
