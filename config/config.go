package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Durable   DurableConfig   `mapstructure:"durable"`
	Cookies   CookieConfig    `mapstructure:"cookies"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Wallet    WalletConfig    `mapstructure:"wallet"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// Storage backend names accepted by durable.backend and cookies.backend.
const (
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
	BackendHTTP     = "http"
)

type DurableConfig struct {
	Backend     string `mapstructure:"backend"`      // redis, postgres, sqlite, memory
	SQLitePath  string `mapstructure:"sqlite_path"`  // database file for the sqlite backend
	MaxSessions int    `mapstructure:"max_sessions"` // memory backend: sessions kept before evicting the least recent
}

type CookieConfig struct {
	Backend  string `mapstructure:"backend"` // http, redis, memory
	Secret   string `mapstructure:"secret"`  // 64-char hex key sealing http cookie values; empty = plain values
	Domain   string `mapstructure:"domain"`
	Path     string `mapstructure:"path"`
	Secure   bool   `mapstructure:"secure"`
	HTTPOnly bool   `mapstructure:"http_only"`
	SameSite string `mapstructure:"same_site"` // lax, strict, none
}

type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// WalletConfig carries the merchant credentials used to sign wallet request JWTs.
type WalletConfig struct {
	Environment    string `mapstructure:"environment"` // sandbox, production
	MerchantID     string `mapstructure:"merchant_id"`
	MerchantSecret string `mapstructure:"merchant_secret"`
	MerchantName   string `mapstructure:"merchant_name"`
	ClientID       string `mapstructure:"client_id"`
	Currency       string `mapstructure:"currency"`
}

// IsSandbox reports whether wallet requests target the sandbox environment.
func (w WalletConfig) IsSandbox() bool {
	return strings.EqualFold(w.Environment, "sandbox")
}

type RateLimitConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: CKP_ (checkout persistence).
// Nested keys use underscore: CKP_REDIS_HOST, CKP_WALLET_MERCHANT_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("durable.backend", BackendRedis)
	v.SetDefault("durable.sqlite_path", "checkout.db")
	v.SetDefault("durable.max_sessions", 10000)
	v.SetDefault("cookies.backend", BackendHTTP)
	v.SetDefault("cookies.secret", "")
	v.SetDefault("cookies.domain", "")
	v.SetDefault("cookies.path", "/")
	v.SetDefault("cookies.secure", false)
	v.SetDefault("cookies.http_only", true)
	v.SetDefault("cookies.same_site", "lax")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "checkout")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.min_conns", 2)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("wallet.environment", "sandbox")
	v.SetDefault("wallet.merchant_id", "")
	v.SetDefault("wallet.merchant_secret", "")
	v.SetDefault("wallet.merchant_name", "Bike Store")
	v.SetDefault("wallet.client_id", "")
	v.SetDefault("wallet.currency", "USD")
	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// CKP_REDIS_HOST -> redis.host
	v.SetEnvPrefix("CKP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A missing config file is fine, env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Durable.Backend {
	case BackendRedis, BackendPostgres, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("unknown durable backend %q", c.Durable.Backend)
	}
	switch c.Cookies.Backend {
	case BackendHTTP, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("unknown cookie backend %q", c.Cookies.Backend)
	}
	return nil
}
