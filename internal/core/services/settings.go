package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/domain"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driven"
	"github.com/AdwaitSalankar/FoodieSpot-Reservation-Assistant/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyLLMProvider   = "llm.provider"
	keyLLMModel      = "llm.model"
	keyLLMBaseURL    = "llm.base_url"
	keyLLMAPIKey     = "llm.api_key"
	keyLLMRate       = "llm.requests_per_second"
	keyStorage       = "storage.backend"
	keyDataDir       = "storage.data_dir"
	keyRedisAddr     = "cache.redis_addr"
	keyCacheTTL      = "cache.ttl_seconds"
	keyAMQPURL       = "events.amqp_url"
	keyServerAddress = "server.addr"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
	aiValidator driven.AIConfigValidator
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore, aiValidator driven.AIConfigValidator) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		aiValidator: aiValidator,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		LLM: domain.LLMSettings{
			Provider:          s.getProvider(keyLLMProvider, defaults.LLM.Provider),
			Model:             s.getString(keyLLMModel, defaults.LLM.Model),
			BaseURL:           s.configStore.GetString(keyLLMBaseURL), // No default - adapters know each endpoint
			APIKey:            s.configStore.GetString(keyLLMAPIKey),
			RequestsPerSecond: s.getFloat(keyLLMRate, defaults.LLM.RequestsPerSecond),
		},
		Storage: domain.StorageSettings{
			Backend: s.getBackend(defaults.Storage.Backend),
			DataDir: s.configStore.GetString(keyDataDir),
		},
		Cache: domain.CacheSettings{
			RedisAddr:  s.configStore.GetString(keyRedisAddr),
			TTLSeconds: s.getInt(keyCacheTTL, defaults.Cache.TTLSeconds),
		},
		Events: domain.EventSettings{
			AMQPURL: s.configStore.GetString(keyAMQPURL),
		},
		Server: domain.ServerSettings{
			Addr: s.getString(keyServerAddress, defaults.Server.Addr),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	// Save LLM settings
	if err := s.configStore.Set(keyLLMProvider, settings.LLM.Provider.String()); err != nil {
		return fmt.Errorf("save llm provider: %w", err)
	}
	if err := s.configStore.Set(keyLLMModel, settings.LLM.Model); err != nil {
		return fmt.Errorf("save llm model: %w", err)
	}
	if err := s.configStore.Set(keyLLMBaseURL, settings.LLM.BaseURL); err != nil {
		return fmt.Errorf("save llm base_url: %w", err)
	}
	if settings.LLM.APIKey != "" {
		if err := s.configStore.Set(keyLLMAPIKey, settings.LLM.APIKey); err != nil {
			return fmt.Errorf("save llm api_key: %w", err)
		}
	}
	if err := s.configStore.Set(keyLLMRate, settings.LLM.RequestsPerSecond); err != nil {
		return fmt.Errorf("save llm requests_per_second: %w", err)
	}

	// Save storage settings
	if err := s.configStore.Set(keyStorage, string(settings.Storage.Backend)); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(keyDataDir, settings.Storage.DataDir); err != nil {
		return fmt.Errorf("save storage data_dir: %w", err)
	}

	// Save cache, event and server settings
	if err := s.configStore.Set(keyRedisAddr, settings.Cache.RedisAddr); err != nil {
		return fmt.Errorf("save cache redis_addr: %w", err)
	}
	if err := s.configStore.Set(keyCacheTTL, settings.Cache.TTLSeconds); err != nil {
		return fmt.Errorf("save cache ttl_seconds: %w", err)
	}
	if err := s.configStore.Set(keyAMQPURL, settings.Events.AMQPURL); err != nil {
		return fmt.Errorf("save events amqp_url: %w", err)
	}
	if err := s.configStore.Set(keyServerAddress, settings.Server.Addr); err != nil {
		return fmt.Errorf("save server addr: %w", err)
	}

	return nil
}

// SetLLMProvider configures the LLM provider.
func (s *SettingsService) SetLLMProvider(provider domain.AIProvider, model, apiKey string) error {
	if !provider.IsValid() {
		return fmt.Errorf("invalid LLM provider: %s", provider)
	}

	// Validate API key if required
	if provider.RequiresAPIKey() && apiKey == "" {
		return fmt.Errorf("API key required for %s", provider)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}

	settings.LLM.Provider = provider

	// Set model - use provided or default
	if model != "" {
		settings.LLM.Model = model
	} else {
		defaults := domain.DefaultLLMModels()
		if defaultModel, ok := defaults[provider]; ok {
			settings.LLM.Model = defaultModel
		}
	}

	// Local providers keep a custom endpoint; hosted ones use their own.
	if provider == domain.AIProviderOllama {
		if settings.LLM.BaseURL == "" {
			settings.LLM.BaseURL = domain.DefaultBaseURLs()[provider]
		}
	} else {
		settings.LLM.BaseURL = ""
	}

	settings.LLM.APIKey = apiKey

	return s.Save(settings)
}

// SetStorageBackend selects where reservations are kept.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend) error {
	if !backend.IsValid() {
		return fmt.Errorf("invalid storage backend: %s", backend)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Storage.Backend = backend
	return s.Save(settings)
}

// Set updates one setting from its textual form.
func (s *SettingsService) Set(key, value string) error {
	switch key {
	case keyLLMProvider:
		if !domain.AIProvider(value).IsValid() {
			return fmt.Errorf("invalid LLM provider: %s", value)
		}
		return s.configStore.Set(key, value)
	case keyStorage:
		return s.SetStorageBackend(domain.StorageBackend(value))
	case keyLLMRate:
		rate, err := strconv.ParseFloat(value, 64)
		if err != nil || rate < 0 {
			return fmt.Errorf("%s must be a non-negative number", key)
		}
		return s.configStore.Set(key, rate)
	case keyCacheTTL:
		ttl, err := strconv.Atoi(value)
		if err != nil || ttl < 0 {
			return fmt.Errorf("%s must be a non-negative whole number", key)
		}
		return s.configStore.Set(key, ttl)
	case keyLLMModel, keyLLMBaseURL, keyLLMAPIKey, keyDataDir, keyRedisAddr, keyAMQPURL, keyServerAddress:
		return s.configStore.Set(key, value)
	default:
		return fmt.Errorf("unknown setting %q (known: %s)", key, strings.Join(SettingKeys(), ", "))
	}
}

// SettingKeys lists every key accepted by Set.
func SettingKeys() []string {
	keys := []string{
		keyLLMProvider, keyLLMModel, keyLLMBaseURL, keyLLMAPIKey, keyLLMRate,
		keyStorage, keyDataDir, keyRedisAddr, keyCacheTTL, keyAMQPURL, keyServerAddress,
	}
	sort.Strings(keys)
	return keys
}

// Validate checks that the current settings are usable.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("invalid storage backend: %s", settings.Storage.Backend)
	}
	if !settings.LLM.IsConfigured() {
		if settings.LLM.Provider == domain.AIProviderTogether {
			return fmt.Errorf("%w: set TOGETHER_API_KEY or run 'foodiespot settings set llm.api_key <key>'",
				domain.ErrLLMUnavailable)
		}
		return fmt.Errorf("%w: %s needs an API key", domain.ErrLLMUnavailable, settings.LLM.Provider.Description())
	}
	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// ValidateLLMConfig validates the current LLM configuration by pinging the provider.
func (s *SettingsService) ValidateLLMConfig() error {
	if s.aiValidator == nil {
		return nil
	}
	settings, err := s.Get()
	if err != nil {
		return err
	}
	return s.aiValidator.ValidateLLM(&settings.LLM)
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val == 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

func (s *SettingsService) getProvider(key string, defaultVal domain.AIProvider) domain.AIProvider {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	provider := domain.AIProvider(val)
	if !provider.IsValid() {
		return defaultVal
	}
	return provider
}

func (s *SettingsService) getBackend(defaultVal domain.StorageBackend) domain.StorageBackend {
	backend := domain.StorageBackend(s.configStore.GetString(keyStorage))
	if !backend.IsValid() {
		return defaultVal
	}
	return backend
}
