// Package config читает настройки из окружения и необязательного .env через Viper.
package config

import (
	"errors"
	"net"
	"strings"

	"github.com/spf13/viper"
)

const devSecret = "dev-insecure-secret-change-me-now"

type Config struct {
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Если DATABASE_URL пуст, DSN собирается из отдельных переменных
	PostgresHost     string `mapstructure:"POSTGRES_HOST"`
	PostgresPort     string `mapstructure:"POSTGRES_PORT"`
	PostgresUser     string `mapstructure:"POSTGRES_USER"`
	PostgresPassword string `mapstructure:"POSTGRES_PASSWORD"`
	PostgresDB       string `mapstructure:"POSTGRES_DB"`
	PostgresSSLMode  string `mapstructure:"POSTGRES_SSLMODE"`

	SessionSecret string `mapstructure:"SESSION_SECRET"`
	SessionName   string `mapstructure:"SESSION_NAME"`
	// filesystem (по умолчанию, сессию можно отозвать на сервере) | cookie
	SessionStore  string `mapstructure:"SESSION_STORE"`
	SessionDir    string `mapstructure:"SESSION_DIR"`
	SessionMaxAge int    `mapstructure:"SESSION_MAX_AGE"`
	// старый переключатель, оставлен для совместимости с деплоем за HTTPS-прокси
	AppHTTPS bool `mapstructure:"APP_HTTPS"`

	NodeEnv string `mapstructure:"NODE_ENV"`
	Host    string `mapstructure:"HOST"`
	Port    string `mapstructure:"PORT"`
	WebDir  string `mapstructure:"WEB_DIR"`

	LogLevel string `mapstructure:"LOG_LEVEL"`

	N8NWebhookBaseURL string `mapstructure:"N8N_WEBHOOK_BASE_URL"`
	N8NAPIKey         string `mapstructure:"N8N_API_KEY"`
}

// Load читает .env (если есть), затем окружение. Переменные окружения важнее .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // .env необязателен

	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// без SetDefault Unmarshal не увидит ключи из AutomaticEnv
func setDefaults(v *viper.Viper) {
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("POSTGRES_HOST", "127.0.0.1")
	v.SetDefault("POSTGRES_PORT", "5432")
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "")
	v.SetDefault("POSTGRES_DB", "n8n_admin")
	v.SetDefault("POSTGRES_SSLMODE", "disable")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_NAME", "admin_session")
	v.SetDefault("SESSION_STORE", "filesystem")
	v.SetDefault("SESSION_DIR", "")
	v.SetDefault("SESSION_MAX_AGE", 7*24*60*60)
	v.SetDefault("APP_HTTPS", false)
	v.SetDefault("NODE_ENV", "")
	v.SetDefault("HOST", "")
	v.SetDefault("PORT", "3000")
	v.SetDefault("WEB_DIR", "web")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("N8N_WEBHOOK_BASE_URL", "")
	v.SetDefault("N8N_API_KEY", "")
}

func (c *Config) validate() error {
	if c.Port == "" {
		return errors.New("config: PORT must be set")
	}
	if c.N8NWebhookBaseURL == "" {
		return errors.New("config: N8N_WEBHOOK_BASE_URL must be set")
	}
	switch c.SessionStore {
	case "cookie", "filesystem":
	default:
		return errors.New("config: SESSION_STORE must be cookie or filesystem")
	}
	if c.SessionSecret == "" {
		if c.IsProduction() {
			return errors.New("config: SESSION_SECRET must be set when NODE_ENV=production")
		}
		c.SessionSecret = devSecret
	}
	return nil
}

// IsProduction — NODE_ENV=production.
func (c *Config) IsProduction() bool {
	return c.NodeEnv == "production"
}

// SecureCookie: куку отдаём только по HTTPS.
func (c *Config) SecureCookie() bool {
	return c.IsProduction() || c.AppHTTPS
}

// UsesDevSecret сообщает, что SESSION_SECRET не задан и взят запасной ключ.
func (c *Config) UsesDevSecret() bool {
	return c.SessionSecret == devSecret
}

// Addr — адрес для http.Server.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

// DSN: DATABASE_URL, иначе строка lib/pq в формате key=value.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	parts := []string{
		"host=" + c.PostgresHost,
		"port=" + c.PostgresPort,
		"user=" + c.PostgresUser,
		"dbname=" + c.PostgresDB,
		"sslmode=" + c.PostgresSSLMode,
	}
	if c.PostgresPassword != "" {
		parts = append(parts, "password="+c.PostgresPassword)
	}
	return strings.Join(parts, " ")
}

// SafeDSN — куда подключаемся, без пароля. Только для логов.
func (c *Config) SafeDSN() string {
	if c.DatabaseURL != "" {
		return "DATABASE_URL provided"
	}
	return "host=" + c.PostgresHost + " user=" + c.PostgresUser + " db=" + c.PostgresDB
}
