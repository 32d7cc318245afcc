package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrMissingAPIKey = errors.New("CALCOM_API_KEY is required")

// CalCom holds everything the booking translator needs to talk to the scheduling API
type CalCom struct {
	BaseURL       string        `mapstructure:"CALCOM_BASE_URL"`
	APIKey        string        `mapstructure:"CALCOM_API_KEY"`
	APIVersion    string        `mapstructure:"CALCOM_API_VERSION"`
	Timeout       time.Duration `mapstructure:"CALCOM_TIMEOUT"`
	TimeZone      string        `mapstructure:"CALCOM_TIME_ZONE"`
	EventTypeID   int           `mapstructure:"CALCOM_EVENT_TYPE_ID"`
	EventTypeSlug string        `mapstructure:"CALCOM_EVENT_TYPE_SLUG"`
}

type Config struct {
	CalCom CalCom `mapstructure:",squash"`

	Port           string   `mapstructure:"PORT"`
	Env            string   `mapstructure:"ENV"`
	LogLevel       string   `mapstructure:"LOG_LEVEL"`
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
	FunctionName   string   `mapstructure:"RETELL_FUNCTION_NAME"`
	PprofEnabled   bool     `mapstructure:"PPROF_ENABLED"`
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// AllowsAllOrigins reports whether CORS should accept any origin
func (c Config) AllowsAllOrigins() bool {
	if len(c.AllowedOrigins) == 0 {
		return true
	}

	for _, origin := range c.AllowedOrigins {
		if origin == "*" {
			return true
		}
	}

	return false
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("CALCOM_BASE_URL", "https://api.cal.com/v2")
	v.SetDefault("CALCOM_API_KEY", "")
	v.SetDefault("CALCOM_API_VERSION", "2024-08-13")
	v.SetDefault("CALCOM_TIMEOUT", 30*time.Second)
	v.SetDefault("CALCOM_TIME_ZONE", "Asia/Kolkata")
	v.SetDefault("CALCOM_EVENT_TYPE_ID", 2905891)
	v.SetDefault("CALCOM_EVENT_TYPE_SLUG", "advanced")

	v.SetDefault("PORT", "3000")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("ALLOWED_ORIGINS", "*")
	v.SetDefault("RETELL_FUNCTION_NAME", "book_calcom_appointment_custom")
	v.SetDefault("PPROF_ENABLED", false)
}

// Load reads the process configuration once. Values already present in the
// environment win over the ones coming from the optional env file. A missing
// env file is skipped, an unreadable or malformed one is an error.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading env file %s: %w", envFile, err)
		}
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding configuration: %w", err)
	}

	cfg.CalCom.BaseURL = strings.TrimRight(cfg.CalCom.BaseURL, "/")
	cfg.AllowedOrigins = splitOrigins(cfg.AllowedOrigins)

	if strings.TrimSpace(cfg.CalCom.APIKey) == "" {
		return Config{}, ErrMissingAPIKey
	}

	return cfg, nil
}

func splitOrigins(raw []string) []string {
	origins := make([]string, 0, len(raw))
	for _, value := range raw {
		for _, origin := range strings.Split(value, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				origins = append(origins, origin)
			}
		}
	}

	return origins
}
