package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	CORS     CORSConfig     `yaml:"cors"`
	SMTP     SMTPConfig     `yaml:"smtp"`
	App      AppConfig      `yaml:"app"`
	Sweep    SweepConfig    `yaml:"sweep"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"5000"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"2m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SMTPConfig holds outbound mail settings. Username and password keep the
// EMAIL_USER / EMAIL_PASSWORD names existing deployments already export.
type SMTPConfig struct {
	Host     string        `yaml:"host"     env:"SMTP_HOST"     env-default:"smtp.gmail.com"`
	Port     int           `yaml:"port"     env:"SMTP_PORT"     env-default:"465"`
	Username string        `yaml:"username" env:"EMAIL_USER"`
	Password string        `yaml:"password" env:"EMAIL_PASSWORD"`
	From     string        `yaml:"from"     env:"SMTP_FROM"`
	SSL      bool          `yaml:"ssl"      env:"SMTP_SSL"      env-default:"true"`
	Timeout  time.Duration `yaml:"timeout"  env:"SMTP_TIMEOUT"  env-default:"15s"`
}

// AppConfig holds settings for externally visible links.
type AppConfig struct {
	PublicBaseURL string `yaml:"public_base_url" env:"APP_PUBLIC_BASE_URL" env-default:"http://localhost:3000"`
}

// SweepConfig controls the check-and-send pass over pending capsules.
type SweepConfig struct {
	Concurrency int `yaml:"concurrency" env:"SWEEP_CONCURRENCY" env-default:"1"`
}

// Sender returns the envelope sender, falling back to the SMTP username.
func (c SMTPConfig) Sender() string {
	if c.From != "" {
		return c.From
	}
	return c.Username
}

// HasCredentials reports whether both SMTP credentials are present.
func (c SMTPConfig) HasCredentials() bool {
	return c.Username != "" && c.Password != ""
}
