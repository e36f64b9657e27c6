package dbconfig

import (
	"fmt"
	"net/url"

	"github.com/caarlos0/env/v11"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Storage backends
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config selects the storage backend and holds its connection settings.
type Config struct {
	Driver     string `env:"HOCKEYFED_STORE" envDefault:"sqlite"`
	SQLitePath string `env:"HOCKEYFED_SQLITE_PATH" envDefault:"hockeyfed.db"`

	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     int    `env:"DB_PORT" envDefault:"5432"`
	User     string `env:"DB_USER" envDefault:"postgres"`
	Password string `env:"DB_PASSWORD" envDefault:"postgres"`
	Database string `env:"DB_NAME" envDefault:"hockeyfed"`
	SSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
}

// NewConfigFromEnv reads HOCKEYFED_STORE, HOCKEYFED_SQLITE_PATH and the
// DB_* variables, applying defaults.
func NewConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	fields := []*validation.FieldRules{
		validation.Field(&c.Driver, validation.Required, validation.In(DriverSQLite, DriverPostgres, DriverMemory)),
	}
	switch c.Driver {
	case DriverSQLite:
		fields = append(fields, validation.Field(&c.SQLitePath, validation.Required))
	case DriverPostgres:
		fields = append(fields,
			validation.Field(&c.Host, validation.Required),
			validation.Field(&c.Port, validation.Required, validation.Min(1), validation.Max(65535)),
			validation.Field(&c.Database, validation.Required),
		)
	}
	return validation.ValidateStruct(&c, fields...)
}

// DSN returns the Postgres connection URL.
func (c Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: "sslmode=" + url.QueryEscape(c.SSLMode),
	}
	return u.String()
}
