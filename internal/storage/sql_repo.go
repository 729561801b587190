package storage

import (
	"database/sql"
	"fmt"
)

// Dialect holds the statements that differ between SQL engines.
type Dialect struct {
	Name   string
	Schema string
	Select string
	Upsert string
	Delete string
}

var (
	MySQL = Dialect{
		Name: "mysql",
		Schema: "CREATE TABLE IF NOT EXISTS kv_storage (" +
			"storage_key VARCHAR(64) NOT NULL PRIMARY KEY, " +
			"value LONGTEXT NOT NULL)",
		Select: "SELECT value FROM kv_storage WHERE storage_key = ?",
		Upsert: "INSERT INTO kv_storage (storage_key, value) VALUES (?, ?) " +
			"ON DUPLICATE KEY UPDATE value = VALUES(value)",
		Delete: "DELETE FROM kv_storage WHERE storage_key = ?",
	}
	SQLite = Dialect{
		Name: "sqlite3",
		Schema: "CREATE TABLE IF NOT EXISTS kv_storage (" +
			"storage_key TEXT NOT NULL PRIMARY KEY, " +
			"value TEXT NOT NULL)",
		Select: "SELECT value FROM kv_storage WHERE storage_key = ?",
		Upsert: "INSERT INTO kv_storage (storage_key, value) VALUES (?, ?) " +
			"ON CONFLICT (storage_key) DO UPDATE SET value = excluded.value",
		Delete: "DELETE FROM kv_storage WHERE storage_key = ?",
	}
	Postgres = Dialect{
		Name: "postgres",
		Schema: "CREATE TABLE IF NOT EXISTS kv_storage (" +
			"storage_key VARCHAR(64) NOT NULL PRIMARY KEY, " +
			"value TEXT NOT NULL)",
		Select: "SELECT value FROM kv_storage WHERE storage_key = $1",
		Upsert: "INSERT INTO kv_storage (storage_key, value) VALUES ($1, $2) " +
			"ON CONFLICT (storage_key) DO UPDATE SET value = EXCLUDED.value",
		Delete: "DELETE FROM kv_storage WHERE storage_key = $1",
	}
)

func DialectByName(name string) (Dialect, error) {
	switch name {
	case MySQL.Name:
		return MySQL, nil
	case SQLite.Name:
		return SQLite, nil
	case Postgres.Name:
		return Postgres, nil
	}

	return Dialect{}, fmt.Errorf("%w: %q", ErrBadDialect, name)
}

type SQLRepo struct {
	DB      *sql.DB
	Dialect Dialect
}

var _ Storage = (*SQLRepo)(nil)

func NewSQLRepo(db *sql.DB, dialect Dialect) *SQLRepo {
	return &SQLRepo{
		DB:      db,
		Dialect: dialect,
	}
}

func (r *SQLRepo) EnsureSchema() error {
	_, err := r.DB.Exec(r.Dialect.Schema)

	return err
}

func (r *SQLRepo) GetItem(key string) ([]byte, error) {
	row := r.DB.QueryRow(r.Dialect.Select, key)

	var value string
	err := row.Scan(&value)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return []byte(value), nil
}

func (r *SQLRepo) SetItem(key string, value []byte) error {
	_, err := r.DB.Exec(r.Dialect.Upsert, key, string(value))

	return err
}

func (r *SQLRepo) RemoveItem(key string) error {
	_, err := r.DB.Exec(r.Dialect.Delete, key)

	return err
}
