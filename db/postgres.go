package db

import (
	"database/sql"
	"os"
	"time"

	_ "github.com/lib/pq"
)

var DB *sql.DB

// Connect opens the snapshot history database. An unset DATABASE_URL
// is not an error: DB stays nil and history is disabled.
func Connect() error {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		return nil
	}

	var err error
	DB, err = sql.Open("postgres", connStr)
	if err != nil {
		return err
	}

	DB.SetMaxOpenConns(25)
	DB.SetMaxIdleConns(25)
	DB.SetConnMaxLifetime(5 * time.Minute)

	return DB.Ping()
}

func Close() {
	if DB != nil {
		DB.Close()
	}
}
