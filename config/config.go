package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Redis     RedisConfig     `mapstructure:"redis"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	AES       AESConfig       `mapstructure:"aes"`
	Integrity IntegrityConfig `mapstructure:"integrity"`
	OTP       OTPConfig       `mapstructure:"otp"`
	StepUp    StepUpConfig    `mapstructure:"step_up"`
	Risk      RiskConfig      `mapstructure:"risk"`
	Kafka     KafkaConfig     `mapstructure:"kafka"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

// StorageConfig selects the ledger/transaction/audit backend.
type StorageConfig struct {
	Driver string `mapstructure:"driver"` // postgres, memory
}

type DatabaseConfig struct {
	Host             string        `mapstructure:"host"`
	Port             int           `mapstructure:"port"`
	User             string        `mapstructure:"user"`
	Password         string        `mapstructure:"password"`
	DBName           string        `mapstructure:"dbname"`
	SSLMode          string        `mapstructure:"sslmode"`
	MaxConns         int32         `mapstructure:"max_conns"`
	MinConns         int32         `mapstructure:"min_conns"`
	ConnMaxLifetime  time.Duration `mapstructure:"conn_max_lifetime"`
	// StatementTimeout and LockTimeout are set per session and per
	// transaction. Zero leaves the server default.
	StatementTimeout time.Duration `mapstructure:"statement_timeout"`
	LockTimeout      time.Duration `mapstructure:"lock_timeout"`
	AutoMigrate      bool          `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

type RedisConfig struct {
	Host        string        `mapstructure:"host"`
	Port        int           `mapstructure:"port"`
	Password    string        `mapstructure:"password"`
	DB          int           `mapstructure:"db"`
	PoolSize    int           `mapstructure:"pool_size"`
	DialTimeout time.Duration `mapstructure:"dial_timeout"`
	// OpTimeout bounds each read and write, including the OTP claim script.
	OpTimeout   time.Duration `mapstructure:"op_timeout"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type JWTConfig struct {
	Secret string        `mapstructure:"secret"`
	Expiry time.Duration `mapstructure:"expiry"`
	Issuer string        `mapstructure:"issuer"`
}

type AESConfig struct {
	Key string `mapstructure:"key"` // 32-byte hex-encoded key for AES-256
}

// IntegrityConfig holds the transaction attestation material.
type IntegrityConfig struct {
	HMACSecret string `mapstructure:"hmac_secret"`
	KeyDir     string `mapstructure:"key_dir"` // holds private.pem / public.pem
}

type OTPConfig struct {
	TTL       time.Duration `mapstructure:"ttl"`
	Retention time.Duration `mapstructure:"retention"` // kept past expiry so Expired differs from NotFound
	DemoEcho  bool          `mapstructure:"demo_echo"`
}

type StepUpConfig struct {
	Issuer string `mapstructure:"issuer"`
}

type RiskConfig struct {
	Timeout  time.Duration `mapstructure:"timeout"`
	PoolSize int           `mapstructure:"pool_size"`
}

type KafkaConfig struct {
	Enabled bool     `mapstructure:"enabled"`
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. Prefix: PSG_.
// Nested keys use underscore: PSG_DATABASE_HOST, PSG_INTEGRITY_HMAC_SECRET, etc.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("storage.driver", "postgres")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.dbname", "paysecure")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 20)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "30m")
	v.SetDefault("database.statement_timeout", "5s")
	v.SetDefault("database.lock_timeout", "3s")
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 20)
	v.SetDefault("redis.dial_timeout", "3s")
	v.SetDefault("redis.op_timeout", "1s")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiry", "1h")
	v.SetDefault("jwt.issuer", "paysecure-gateway")
	v.SetDefault("aes.key", "")
	v.SetDefault("integrity.hmac_secret", "")
	v.SetDefault("integrity.key_dir", "./keys")
	v.SetDefault("otp.ttl", "2m")
	v.SetDefault("otp.retention", "10m")
	v.SetDefault("otp.demo_echo", false)
	v.SetDefault("step_up.issuer", "PaySecure")
	v.SetDefault("risk.timeout", "2s")
	v.SetDefault("risk.pool_size", 64)
	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "paysecure.transactions")
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

	// PSG_DATABASE_HOST -> database.host
	v.SetEnvPrefix("PSG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// A config file is optional; env vars can suffice.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Validate rejects configurations the payment pipeline cannot run with.
func (c *Config) Validate() error {
	var errs []error

	if c.Integrity.HMACSecret == "" {
		errs = append(errs, errors.New("integrity.hmac_secret is required"))
	}
	if c.Integrity.KeyDir == "" {
		errs = append(errs, errors.New("integrity.key_dir is required"))
	}
	if c.JWT.Secret == "" {
		errs = append(errs, errors.New("jwt.secret is required"))
	}
	if key, err := hex.DecodeString(c.AES.Key); err != nil || len(key) != 32 {
		errs = append(errs, errors.New("aes.key must be 64 hex characters"))
	}
	if c.OTP.TTL <= 0 {
		errs = append(errs, errors.New("otp.ttl must be positive"))
	}
	if c.Risk.Timeout <= 0 {
		errs = append(errs, errors.New("risk.timeout must be positive"))
	}
	switch c.Storage.Driver {
	case "postgres", "memory":
	default:
		errs = append(errs, fmt.Errorf("storage.driver %q is not supported", c.Storage.Driver))
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		errs = append(errs, errors.New("kafka.brokers is required when kafka is enabled"))
	}

	return errors.Join(errs...)
}
