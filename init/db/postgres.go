package db

import (
	"database/sql"
	"fmt"

	"github.com/chartchai-class/project-01-anti-fakenews-cn-695/config"
	_ "github.com/lib/pq"
)

func InitPostgres() (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		config.C.Postgres.Host,
		config.C.Postgres.Port,
		config.C.Postgres.User,
		config.C.Postgres.Password,
		config.C.Postgres.Name,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(20)
	if err = db.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}
