package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. SPORTFY_DATABASE_HOST.
const EnvPrefix = "SPORTFY"

const defaultConfigPath = "./configs/payment.yaml"

type Config struct {
	Service   ServiceConfig   `yaml:"service"`
	Database  DatabaseConfig  `yaml:"database"`
	Server    ServerConfig    `yaml:"server"`
	Log       LogConfig       `yaml:"log"`
	JWT       JWTConfig       `yaml:"jwt"`
	Midtrans  MidtransConfig  `yaml:"midtrans"`
	Reconcile ReconcileConfig `yaml:"reconcile"`
	Messaging MessagingConfig `yaml:"messaging"`
	Tracing   TracingConfig   `yaml:"tracing"`
}

// LoadConfig loads the file named by CONFIG_PATH, or ./configs/payment.yaml.
func LoadConfig() (*Config, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads a YAML config, applies SPORTFY_* environment
// overrides (a .env file in the working directory is honoured), fills
// defaults and validates the result.
func LoadConfigFrom(configPath string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	absPath, err := filepath.Abs(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the struct tags of the whole tree.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Service.Name == "" {
		c.Service.Name = "sportfy-payment"
	}
	if c.Service.Environment == "" {
		c.Service.Environment = "development"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Midtrans.Environment == "" {
		c.Midtrans.Environment = MidtransSandbox
	}
	if c.Midtrans.OrderPrefix == "" {
		c.Midtrans.OrderPrefix = "SPORTFY"
	}
	if c.Reconcile.TransitionPolicy == "" {
		c.Reconcile.TransitionPolicy = "monotonic"
	}
	if c.Reconcile.ReplayBatch == 0 {
		c.Reconcile.ReplayBatch = 50
	}
	if c.Reconcile.MaxAttempts == 0 {
		c.Reconcile.MaxAttempts = 5
	}
	if c.Messaging.Driver == "" {
		c.Messaging.Driver = "none"
	}
}

// IsProduction reports whether the service runs in production.
func (c *Config) IsProduction() bool {
	return c.Service.Environment == "production"
}
