package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/brokenerd/healthcalc/pkg/health"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App     AppConfig     `yaml:"app"`
	Server  ServerConfig  `yaml:"server"`
	Policy  PolicyConfig  `yaml:"policy"`
	Metrics MetricsConfig `yaml:"metrics"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Environment string `yaml:"environment"`
	Version     string `yaml:"version"`
}

type ServerConfig struct {
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// PolicyConfig is the kcal adjustment from TDEE to the daily target.
type PolicyConfig struct {
	DeficitKcal int `yaml:"deficit_kcal"`
	SurplusKcal int `yaml:"surplus_kcal"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	p := health.DefaultTargetPolicy()
	return &Config{
		App: AppConfig{
			Name:        "healthcalc",
			Environment: "development",
			Version:     "0.1.0",
		},
		Server: ServerConfig{
			Port:            8080,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Policy: PolicyConfig{
			DeficitKcal: p.DeficitKcal,
			SurplusKcal: p.SurplusKcal,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Load reads a YAML config on top of Default. ${VAR} references are expanded
// from the environment after loading an optional .env file.
func Load(configPath string) (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	expanded := []byte(os.ExpandEnv(string(data)))

	cfg := Default()
	if err := yaml.Unmarshal(expanded, cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects values the server cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	if c.Policy.DeficitKcal < 0 {
		return fmt.Errorf("policy.deficit_kcal must not be negative (got %d)", c.Policy.DeficitKcal)
	}
	if c.Policy.SurplusKcal < 0 {
		return fmt.Errorf("policy.surplus_kcal must not be negative (got %d)", c.Policy.SurplusKcal)
	}
	if c.Metrics.Enabled && c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	return nil
}

// TargetPolicy returns the configured policy for health.Calculate.
func (c *Config) TargetPolicy() health.TargetPolicy {
	return health.TargetPolicy{
		DeficitKcal: c.Policy.DeficitKcal,
		SurplusKcal: c.Policy.SurplusKcal,
	}
}
