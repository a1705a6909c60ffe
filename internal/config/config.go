// Package config loads application settings from config/config.yaml,
// a local .env file and URLPRO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	ClickHouse ClickHouseConfig `mapstructure:"clickhouse"`
	App        AppConfig        `mapstructure:"app"`
	GeoIP      GeoIPConfig      `mapstructure:"geoip"`
	JWT        JWTConfig        `mapstructure:"jwt"`
	Email      EmailConfig      `mapstructure:"email"`
	Telegram   TelegramConfig   `mapstructure:"telegram"`
	Worker     WorkerConfig     `mapstructure:"worker"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port            string        `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"`
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type ClickHouseConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	Addr          string        `mapstructure:"addr"`
	User          string        `mapstructure:"user"`
	Password      string        `mapstructure:"password"`
	Database      string        `mapstructure:"database"`
	BufferSize    int           `mapstructure:"buffer_size"`
	BatchSize     int           `mapstructure:"batch_size"`
	FlushInterval time.Duration `mapstructure:"flush_interval"`
}

type AppConfig struct {
	BaseURL         string        `mapstructure:"base_url"`
	ShortCodeLength int           `mapstructure:"short_code_length"`
	MaxCodeAttempts int           `mapstructure:"max_code_attempts"`
	DefaultAPILimit int64         `mapstructure:"default_api_limit"`
	MetadataTimeout time.Duration `mapstructure:"metadata_timeout"`
	QRSize          int           `mapstructure:"qr_size"`
	AnalyticsDays   int           `mapstructure:"analytics_days"`
}

type GeoIPConfig struct {
	DatabasePath string        `mapstructure:"database_path"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type JWTConfig struct {
	Secret     string        `mapstructure:"secret"`
	Expiration time.Duration `mapstructure:"expiration"`
}

type EmailConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	From     string `mapstructure:"from"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type TelegramConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	BotToken string `mapstructure:"bot_token"`
}

type WorkerConfig struct {
	ExpiryInterval time.Duration `mapstructure:"expiry_interval"`
	QuotaInterval  time.Duration `mapstructure:"quota_interval"`
	ReportInterval time.Duration `mapstructure:"report_interval"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads the yaml file at path (or ./config/config.yaml when path is
// empty). A missing default file is not an error: defaults and environment
// variables still apply.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logrus.WithError(err).Debug("no .env file loaded")
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("URLPRO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath("./config")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "postgres", "sqlite":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	if c.Database.DSN == "" {
		return errors.New("database dsn is required")
	}
	if c.App.ShortCodeLength < 4 {
		return errors.New("app.short_code_length must be at least 4")
	}
	if c.App.MaxCodeAttempts < 1 {
		return errors.New("app.max_code_attempts must be positive")
	}
	if c.JWT.Secret == "" {
		return errors.New("jwt secret is required")
	}
	if c.ClickHouse.Enabled && c.ClickHouse.Addr == "" {
		return errors.New("clickhouse addr is required when clickhouse is enabled")
	}
	if c.Telegram.Enabled && c.Telegram.BotToken == "" {
		return errors.New("telegram bot token is required when telegram is enabled")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.request_timeout", 30*time.Second)
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "file:urlpro.db?_pragma=foreign_keys(1)&_time_format=sqlite")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 5*time.Minute)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.cache_ttl", 10*time.Minute)

	v.SetDefault("clickhouse.enabled", false)
	v.SetDefault("clickhouse.addr", "")
	v.SetDefault("clickhouse.user", "default")
	v.SetDefault("clickhouse.password", "")
	v.SetDefault("clickhouse.database", "default")
	v.SetDefault("clickhouse.buffer_size", 1000)
	v.SetDefault("clickhouse.batch_size", 100)
	v.SetDefault("clickhouse.flush_interval", 5*time.Second)

	v.SetDefault("app.base_url", "http://localhost:8080")
	v.SetDefault("app.short_code_length", 6)
	v.SetDefault("app.max_code_attempts", 10)
	v.SetDefault("app.default_api_limit", 1000)
	v.SetDefault("app.metadata_timeout", 10*time.Second)
	v.SetDefault("app.qr_size", 256)
	v.SetDefault("app.analytics_days", 30)

	v.SetDefault("geoip.database_path", "")
	v.SetDefault("geoip.timeout", 500*time.Millisecond)

	v.SetDefault("jwt.secret", "change-me")
	v.SetDefault("jwt.expiration", 24*time.Hour)

	v.SetDefault("email.enabled", false)
	v.SetDefault("email.from", "noreply@urlpro.local")
	v.SetDefault("email.host", "localhost")
	v.SetDefault("email.port", 587)
	v.SetDefault("email.username", "")
	v.SetDefault("email.password", "")

	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.bot_token", "")

	v.SetDefault("worker.expiry_interval", time.Minute)
	v.SetDefault("worker.quota_interval", time.Hour)
	v.SetDefault("worker.report_interval", 7*24*time.Hour)

	v.SetDefault("log.level", "info")
}
