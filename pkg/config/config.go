package config

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	HTTP   HTTPConfig
	Upload UploadConfig
	Temp   TempConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UploadConfig límites de los lotes subidos. La validación ocurre en el
// boundary HTTP, antes de que el pipeline vea los bytes.
type UploadConfig struct {
	MaxFileMB int // tamaño máximo por archivo
	MaxFiles  int // archivos máximos por lote
}

// MaxFileBytes límite por archivo en bytes.
func (c UploadConfig) MaxFileBytes() int64 {
	return int64(c.MaxFileMB) * 1024 * 1024
}

// TempConfig almacenamiento temporal de reportes generados.
type TempConfig struct {
	Dir        string // directorio base; vacío = <os temp>/facturas-reportes
	TTLMinutes int    // vida máxima de un reporte antes de la limpieza
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, UPLOAD_MAX_FILE_MB, etc.
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
			Name: getString(v, "APP_NAME", "procesador-facturas-xml"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 5051),
		},
		Upload: UploadConfig{
			MaxFileMB: getInt(v, "UPLOAD_MAX_FILE_MB", 100),
			MaxFiles:  getInt(v, "UPLOAD_MAX_FILES", 100),
		},
		Temp: TempConfig{
			Dir:        getString(v, "TEMP_DIR", ""),
			TTLMinutes: getInt(v, "TEMP_TTL_MINUTES", 60),
		},
	}
	return cfg, nil
}

// TempDir directorio efectivo para los temporales.
func (c *Config) TempDir(osTempDir string) string {
	if c.Temp.Dir != "" {
		return c.Temp.Dir
	}
	return filepath.Join(osTempDir, "facturas-reportes")
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
