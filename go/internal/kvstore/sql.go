package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/mcdev12/hockeyfed/go/internal/sqlutil"
)

type dialect struct {
	driver string
	schema string
	get    string
	set    string
	remove string
	clear  string
}

var sqliteDialect = dialect{
	driver: "sqlite",
	schema: `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	);`,
	get: `SELECT value FROM kv WHERE key = ?`,
	set: `
		INSERT INTO kv (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
		value=excluded.value,
		updated_at=excluded.updated_at`,
	remove: `DELETE FROM kv WHERE key = ?`,
	clear:  `DELETE FROM kv`,
}

var postgresDialect = dialect{
	driver: "postgres",
	schema: `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at BIGINT NOT NULL
	);`,
	get: `SELECT value FROM kv WHERE key = $1`,
	set: `
		INSERT INTO kv (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT(key) DO UPDATE SET
		value=excluded.value,
		updated_at=excluded.updated_at`,
	remove: `DELETE FROM kv WHERE key = $1`,
	clear:  `DELETE FROM kv`,
}

// SQL is a Store backed by a single kv table.
type SQL struct {
	db      *sql.DB
	dialect dialect
}

// OpenSQLite opens (creating if needed) a SQLite database file at path.
func OpenSQLite(path string) (*SQL, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	return open(sqliteDialect, dsn)
}

// OpenPostgres opens a Postgres database using a postgres:// URL.
func OpenPostgres(dsn string) (*SQL, error) {
	return open(postgresDialect, dsn)
}

func open(d dialect, dsn string) (*SQL, error) {
	db, err := sql.Open(d.driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", d.driver, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", d.driver, err)
	}

	err = sqlutil.Run(context.Background(), db, func(tx *sql.Tx) error {
		_, err := tx.Exec(d.schema)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create kv table: %w", err)
	}

	log.Debug().Str("driver", d.driver).Msg("kv store ready")
	return &SQL{db: db, dialect: d}, nil
}

func (s *SQL) Close() error {
	return s.db.Close()
}

func (s *SQL) Get(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, s.dialect.get, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, ioError("get", key, err)
	}
	if err := decode(key, []byte(raw), dst); err != nil {
		return false, err
	}
	return true, nil
}

func (s *SQL) Set(ctx context.Context, key string, value any) error {
	raw, err := encode(key, value)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, s.dialect.set, key, string(raw), time.Now().UTC().UnixMilli()); err != nil {
		return ioError("set", key, err)
	}
	return nil
}

func (s *SQL) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.dialect.remove, key); err != nil {
		return ioError("remove", key, err)
	}
	return nil
}

func (s *SQL) Clear(ctx context.Context) error {
	err := sqlutil.Run(ctx, s.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, s.dialect.clear)
		return err
	})
	if err != nil {
		return ioError("clear", "", err)
	}
	return nil
}
