// Package config reads process-level overrides from the environment and an
// optional .env file. Values found here take precedence over the persisted
// settings in ~/.foodiespot/config.toml.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
)

// DefaultEnvFile is read from the working directory when present.
const DefaultEnvFile = ".env"

// Env holds the environment overrides. Empty fields leave settings untouched.
type Env struct {
	TogetherAPIKey string  `mapstructure:"TOGETHER_API_KEY"`
	LLMProvider    string  `mapstructure:"FOODIESPOT_LLM_PROVIDER"`
	LLMModel       string  `mapstructure:"FOODIESPOT_LLM_MODEL"`
	LLMBaseURL     string  `mapstructure:"FOODIESPOT_LLM_BASE_URL"`
	LLMAPIKey      string  `mapstructure:"FOODIESPOT_LLM_API_KEY"`
	LLMRate        float64 `mapstructure:"FOODIESPOT_LLM_RPS"`
	DataDir        string  `mapstructure:"FOODIESPOT_DATA_DIR"`
	Storage        string  `mapstructure:"FOODIESPOT_STORAGE"`
	RedisAddr      string  `mapstructure:"FOODIESPOT_REDIS_ADDR"`
	AMQPURL        string  `mapstructure:"FOODIESPOT_AMQP_URL"`
	HTTPAddr       string  `mapstructure:"FOODIESPOT_HTTP_ADDR"`
	CORSOrigins    string  `mapstructure:"FOODIESPOT_CORS_ORIGINS"`
}

// keys must list every mapstructure tag so AutomaticEnv can see them.
var keys = []string{
	"TOGETHER_API_KEY",
	"FOODIESPOT_LLM_PROVIDER",
	"FOODIESPOT_LLM_MODEL",
	"FOODIESPOT_LLM_BASE_URL",
	"FOODIESPOT_LLM_API_KEY",
	"FOODIESPOT_LLM_RPS",
	"FOODIESPOT_DATA_DIR",
	"FOODIESPOT_STORAGE",
	"FOODIESPOT_REDIS_ADDR",
	"FOODIESPOT_AMQP_URL",
	"FOODIESPOT_HTTP_ADDR",
	"FOODIESPOT_CORS_ORIGINS",
}

// Load reads envFile (if it exists) and the process environment.
// An empty envFile means DefaultEnvFile.
func Load(envFile string) (Env, error) {
	if envFile == "" {
		envFile = DefaultEnvFile
	}

	v := viper.New()
	v.SetConfigFile(envFile)
	v.SetConfigType("env")
	v.AutomaticEnv()
	for _, key := range keys {
		v.SetDefault(key, "")
	}
	v.SetDefault("FOODIESPOT_LLM_RPS", 0)
	v.SetDefault("FOODIESPOT_CORS_ORIGINS", "*")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, fmt.Errorf("reading %s: %w", envFile, err)
	}

	var env Env
	if err := v.Unmarshal(&env); err != nil {
		return Env{}, fmt.Errorf("decoding environment: %w", err)
	}
	return env, nil
}

// AllowedOrigins splits CORSOrigins on commas.
func (e Env) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(e.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// ApplyTo overlays the non-empty overrides onto settings.
// TOGETHER_API_KEY only applies while Together is the selected provider.
func (e Env) ApplyTo(settings *domain.AppSettings) error {
	if settings == nil {
		return nil
	}

	if e.LLMProvider != "" {
		provider := domain.AIProvider(strings.ToLower(e.LLMProvider))
		if !provider.IsValid() {
			return fmt.Errorf("FOODIESPOT_LLM_PROVIDER: invalid LLM provider %q", e.LLMProvider)
		}
		if provider != settings.LLM.Provider {
			settings.LLM.Provider = provider
			settings.LLM.APIKey = ""
			settings.LLM.BaseURL = ""
			if e.LLMModel == "" {
				settings.LLM.Model = domain.DefaultLLMModels()[provider]
			}
		}
	}
	if e.LLMModel != "" {
		settings.LLM.Model = e.LLMModel
	}
	if e.LLMBaseURL != "" {
		settings.LLM.BaseURL = e.LLMBaseURL
	}
	if e.TogetherAPIKey != "" && settings.LLM.Provider == domain.AIProviderTogether {
		settings.LLM.APIKey = e.TogetherAPIKey
	}
	if e.LLMAPIKey != "" {
		settings.LLM.APIKey = e.LLMAPIKey
	}
	if e.LLMRate < 0 {
		return fmt.Errorf("FOODIESPOT_LLM_RPS must be non-negative, got %v", e.LLMRate)
	}
	if e.LLMRate > 0 {
		settings.LLM.RequestsPerSecond = e.LLMRate
	}

	if e.Storage != "" {
		backend := domain.StorageBackend(strings.ToLower(e.Storage))
		if !backend.IsValid() {
			return fmt.Errorf("FOODIESPOT_STORAGE: invalid storage backend %q", e.Storage)
		}
		settings.Storage.Backend = backend
	}
	if e.DataDir != "" {
		settings.Storage.DataDir = e.DataDir
	}
	if e.RedisAddr != "" {
		settings.Cache.RedisAddr = e.RedisAddr
	}
	if e.AMQPURL != "" {
		settings.Events.AMQPURL = e.AMQPURL
	}
	if e.HTTPAddr != "" {
		settings.Server.Addr = e.HTTPAddr
	}
	return nil
}
