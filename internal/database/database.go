package database

import (
	_ "github.com/glebarez/go-sqlite"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/viper"
)

func Connect() (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", viper.GetString("DB_PATH"))
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; one pooled connection keeps
	// concurrent inserts from interleaving.
	db.SetMaxOpenConns(1)
	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS readings (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT,
	current REAL,
	voltage REAL,
	power REAL,
	status TEXT
)`

// Migrate ensures the readings table exists. Safe to call against an
// already-initialized database.
func Migrate(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
