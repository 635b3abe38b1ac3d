package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	PDF    PDFConfig
	Output OutputConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// PDFConfig geometría de página y moneda por defecto del documento.
type PDFConfig struct {
	LeftMargin      float64 // milímetros
	RightMargin     float64
	TopMargin       float64
	BottomMargin    float64
	DefaultCurrency string // código de 3 letras
}

// OutputConfig destino de los artefactos generados por el CLI.
type OutputConfig struct {
	Dir string
}

// Load lee la configuración desde variables de entorno y, si existe, un
// archivo .env en el directorio actual.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración .env
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "factura-export"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		PDF: PDFConfig{
			LeftMargin:      getFloat(v, "PDF_MARGIN_LEFT", 10),
			RightMargin:     getFloat(v, "PDF_MARGIN_RIGHT", 10),
			TopMargin:       getFloat(v, "PDF_MARGIN_TOP", 15),
			BottomMargin:    getFloat(v, "PDF_MARGIN_BOTTOM", 15),
			DefaultCurrency: getString(v, "PDF_DEFAULT_CURRENCY", "CNY"),
		},
		Output: OutputConfig{
			Dir: getString(v, "OUTPUT_DIR", "."),
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

func getFloat(v *viper.Viper, key string, def float64) float64 {
	if v.IsSet(key) {
		return v.GetFloat64(key)
	}
	return def
}
