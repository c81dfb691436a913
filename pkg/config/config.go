package config

import (
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Data      DataConfig
	Session   SessionConfig
	Inventory InventoryConfig
	Report    ReportConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DataConfig ubicación del documento JSON que persiste todo el estado.
type DataConfig struct {
	File string // ruta del documento (igo_data.json por defecto)
}

// SessionConfig firma y vigencia del token de sesión emitido en el login.
type SessionConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// InventoryConfig umbrales por defecto para las consultas de inventario.
type InventoryConfig struct {
	LowStockThreshold int // stock bajo: quantidade <= umbral
	ExpiryWindowDays  int // vencimiento: validade <= hoy + N días
}

// ReportConfig salida de reportes exportados.
type ReportConfig struct {
	Dir string // directorio donde se escriben los PDF
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATA_FILE, SESSION_SECRET, etc.
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
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "sistema-igo"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Data: DataConfig{
			File: getString(v, "DATA_FILE", "igo_data.json"),
		},
		Session: SessionConfig{
			Secret:     getString(v, "SESSION_SECRET", "igo-session-dev"),
			Expiration: getInt(v, "SESSION_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "SESSION_ISSUER", "sistema-igo"),
		},
		Inventory: InventoryConfig{
			LowStockThreshold: getInt(v, "STOCK_LOW_THRESHOLD", 10),
			ExpiryWindowDays:  getInt(v, "EXPIRY_WINDOW_DAYS", 30),
		},
		Report: ReportConfig{
			Dir: getString(v, "REPORT_DIR", "."),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
