package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/hockeyfed/go/internal/dbconfig"
	"github.com/mcdev12/hockeyfed/go/internal/kvstore"
)

// setupStore opens the configured backend. The returned func releases it.
func setupStore(cfg dbconfig.Config) (kvstore.Store, func() error, error) {
	switch cfg.Driver {
	case dbconfig.DriverMemory:
		log.Warn().Msg("using in-memory storage, nothing will be persisted")
		return kvstore.NewMemory(), func() error { return nil }, nil
	case dbconfig.DriverPostgres:
		store, err := kvstore.OpenPostgres(cfg.DSN())
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("host", cfg.Host).Int("port", cfg.Port).Str("database", cfg.Database).Msg("connected to postgres")
		return store, store.Close, nil
	case dbconfig.DriverSQLite:
		store, err := kvstore.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("opened sqlite store")
		return store, store.Close, nil
	}
	return nil, nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
}
