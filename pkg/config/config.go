package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Snap    SnapConfig    `mapstructure:"snap"`
	Fee     FeeConfig     `mapstructure:"fee"`
	Cache   CacheConfig   `mapstructure:"cache"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Events  EventsConfig  `mapstructure:"events"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

// SnapConfig addresses the signing/broadcast service.
type SnapConfig struct {
	BitcoinID string `mapstructure:"bitcoin_id"`
	Origin    string `mapstructure:"origin"`
}

type FeeConfig struct {
	DefaultLevel     string `mapstructure:"default_level"`
	ConfirmationTime string `mapstructure:"confirmation_time"`
}

type CacheConfig struct {
	Driver string        `mapstructure:"driver"` // "memory", "redis" or "multi"
	TTL    time.Duration `mapstructure:"ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type EventsConfig struct {
	Driver  string   `mapstructure:"driver"` // "none", "redis" or "kafka"
	Topic   string   `mapstructure:"topic"`
	Brokers []string `mapstructure:"brokers"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var Global Config

func init() {
	Global = Default()
}

// Init loads config.yaml from the given paths (plus "." and "./config"),
// then environment variables, into Global. A missing file is not an error.
func Init(paths ...string) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		if p != "" {
			v.AddConfigPath(p)
		}
	}
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	Global = cfg
	return nil
}

// Default returns the configuration produced by defaults alone.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.env", "development")

	v.SetDefault("snap.bitcoin_id", "npm:@metamask/bitcoin-wallet-snap")
	v.SetDefault("snap.origin", "metamask")

	v.SetDefault("fee.default_level", "average")
	v.SetDefault("fee.confirmation_time", "10 minutes")

	v.SetDefault("cache.driver", "memory")
	v.SetDefault("cache.ttl", 5*time.Minute)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)

	v.SetDefault("events.driver", "none")
	v.SetDefault("events.topic", "multichain_send_events")
	v.SetDefault("events.brokers", []string{"localhost:9092"})

	v.SetDefault("metrics.enabled", false)
}
