// Package config loads console and gateway settings from flags, environment,
// an optional config file and a local .env file, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const EnvPrefix = "GAAS"

// Keys shared by the CLI flag bindings and the gateway.
const (
	KeyAPIURL       = "api.url"
	KeyAPITimeout   = "api.timeout"
	KeyAPIToken     = "api.token"
	KeyAPIRetries   = "api.retries"
	KeyAPIBreaker   = "api.breaker"
	KeyGatewayPort  = "gateway.port"
	KeyNamespaceTTL = "gateway.namespace_ttl"
	KeyDatabaseURL  = "database.url"
	KeyLogLevel     = "log.level"
	KeyLogFile      = "log.file"
)

type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Gateway  GatewayConfig  `mapstructure:"gateway"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
}

type APIConfig struct {
	URL     string        `mapstructure:"url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
	Token   string        `mapstructure:"token"`
	// Retries is the total number of attempts per request; 1 disables retrying.
	Retries uint `mapstructure:"retries" validate:"gte=1,lte=10"`
	// Breaker is the consecutive-failure threshold; 0 disables the breaker.
	Breaker uint32 `mapstructure:"breaker"`
}

type GatewayConfig struct {
	Port int `mapstructure:"port" validate:"gte=1,lte=65535"`
	// NamespaceTTL caches the namespace list; 0 disables caching.
	NamespaceTTL time.Duration `mapstructure:"namespace_ttl" validate:"gte=0"`
}

type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
}

type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
	File  string `mapstructure:"file"`
}

// SetDefaults registers every key so AutomaticEnv can see it during Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAPIURL, "http://localhost:8080")
	v.SetDefault(KeyAPITimeout, 30*time.Second)
	v.SetDefault(KeyAPIToken, "")
	v.SetDefault(KeyAPIRetries, 1)
	v.SetDefault(KeyAPIBreaker, 0)
	v.SetDefault(KeyGatewayPort, 8081)
	v.SetDefault(KeyNamespaceTTL, 30*time.Second)
	v.SetDefault(KeyDatabaseURL, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
}

// New returns a viper instance with defaults and environment lookup wired.
// DATABASE_URL and PORT are honoured unprefixed for container platforms.
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv(KeyDatabaseURL, EnvPrefix+"_DATABASE_URL", "DATABASE_URL")
	_ = v.BindEnv(KeyGatewayPort, EnvPrefix+"_GATEWAY_PORT", "PORT")
	return v
}

// Load reads .env (if present) and configFile (if non-empty), then decodes and
// validates the result.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("invalid config: %s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
