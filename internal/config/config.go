package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var ErrMissingAPIKey = errors.New("openrouter.apikey is not set (OPENROUTER_APIKEY)")

type Config struct {
	ListenAddr      string        `mapstructure:"listen_addr"`
	LogLevel        string        `mapstructure:"log_level"`
	LogFormat       string        `mapstructure:"log_format"`
	MaxUploadBytes  int64         `mapstructure:"max_upload_bytes"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
}

type OpenRouterConfig struct {
	APIKey         string `mapstructure:"apikey"`
	URL            string `mapstructure:"url"`
	VisionModel    string `mapstructure:"vision_model"`
	ReasoningModel string `mapstructure:"reasoning_model"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")
	v.SetDefault("max_upload_bytes", 20<<20)
	v.SetDefault("shutdown_timeout", "10s")
	v.SetDefault("openrouter.apikey", "")
	v.SetDefault("openrouter.url", "https://openrouter.ai/api/v1/chat/completions")
	v.SetDefault("openrouter.vision_model", "openai/gpt-4o-mini")
	v.SetDefault("openrouter.reasoning_model", "openai/o1-mini")
}

// Load builds the configuration from defaults, an optional YAML file at path,
// a .env file in the working directory and the process environment, in
// increasing order of precedence.
func Load(path string) (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading .env failed: %w", err)
		}
	}

	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file failed (%s): %w", path, err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	bindAliases(v)

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.WeaklyTypedInput = true
	}); err != nil {
		return nil, fmt.Errorf("parsing config failed: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// bindAliases accepts the ASP.NET style OpenRouter__ApiKey variable alongside
// OPENROUTER_APIKEY.
func bindAliases(v *viper.Viper) {
	_ = v.BindEnv("openrouter.apikey", "OPENROUTER_APIKEY", "OpenRouter__ApiKey")
}

func validate(cfg *Config) error {
	cfg.OpenRouter.APIKey = strings.TrimSpace(cfg.OpenRouter.APIKey)
	if cfg.OpenRouter.APIKey == "" {
		return ErrMissingAPIKey
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", cfg.LogLevel, err)
	}
	switch strings.ToLower(cfg.LogFormat) {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log_format %q: want console or json", cfg.LogFormat)
	}
	if cfg.MaxUploadBytes <= 0 {
		return fmt.Errorf("max_upload_bytes must be positive, got %d", cfg.MaxUploadBytes)
	}
	if cfg.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive, got %s", cfg.ShutdownTimeout)
	}
	return nil
}
