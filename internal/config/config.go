// Package config loads facadegen settings from a TOML file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Cache backends.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendNone  = "none"
)

// Config holds application configuration.
type Config struct {
	Grammar GrammarConfig
	Catalog CatalogConfig
	Cache   CacheConfig
	Server  ServerConfig
}

// GrammarConfig holds resolution defaults.
type GrammarConfig struct {
	ModuleWidth   int    `mapstructure:"module_width"`
	DefaultModule string `mapstructure:"default_module"`
}

// CatalogConfig points at an optional module/floor size catalog.
type CatalogConfig struct {
	Path string
}

// CacheConfig selects the blueprint cache.
type CacheConfig struct {
	Backend   string
	TTL       time.Duration
	Dir       string
	RedisAddr string `mapstructure:"redis_addr"`

	// Prefix namespaces cache keys so deployments can share one Redis.
	Prefix string
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string

	// MaxModules caps the modules or floors placed per facade or stack.
	MaxModules int `mapstructure:"max_modules"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// FACADEGEN_, e.g. FACADEGEN_CACHE_BACKEND=redis.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("grammar.module_width", 100)
	v.SetDefault("grammar.default_module", "wall")
	v.SetDefault("catalog.path", "")
	v.SetDefault("cache.backend", BackendFile)
	v.SetDefault("cache.ttl", "168h")
	v.SetDefault("cache.dir", "")
	v.SetDefault("cache.redis_addr", "localhost:6379")
	v.SetDefault("cache.prefix", "")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max_modules", 10000)

	v.SetConfigType("toml")

	if cfgPath := os.Getenv("FACADEGEN_CONFIG"); cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(Dir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FACADEGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing default file is fine; an explicit FACADEGEN_CONFIG
		// that does not exist is not.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	switch c.Cache.Backend {
	case BackendFile, BackendRedis, BackendNone:
	default:
		return fmt.Errorf("cache.backend: unknown backend %q (must be file, redis or none)", c.Cache.Backend)
	}
	if c.Grammar.ModuleWidth <= 0 {
		return fmt.Errorf("grammar.module_width must be positive, got %d", c.Grammar.ModuleWidth)
	}
	if c.Server.MaxModules < 0 {
		return fmt.Errorf("server.max_modules must not be negative, got %d", c.Server.MaxModules)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	return nil
}

// Dir returns the configuration directory, $XDG_CONFIG_HOME/facadegen or
// ~/.config/facadegen.
func Dir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "facadegen")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "facadegen")
}
