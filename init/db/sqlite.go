package db

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/config"
	_ "github.com/mattn/go-sqlite3"
)

func InitSQLite() (*sql.DB, error) {
	path := config.C.SQLite.Path
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, err
	}

	// sqlite serializes writers anyway
	db.SetMaxOpenConns(1)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
