// Package db opens the application's GORM database connection.
package db

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenDB connects to the configured database and returns the GORM handle.
//
// When DATABASE_URL is set it connects to Postgres (retrying for up to 60s so
// the server can start before the database is ready). Otherwise it opens the
// SQLite file at SQLITE_PATH, defaulting to ./app_data.db.
//
// TranslateError is enabled so unique-constraint violations surface as
// gorm.ErrDuplicatedKey across both drivers.
func OpenDB() *gorm.DB {
	cfg := &gorm.Config{TranslateError: true}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "./app_data.db"
		}
		sqliteDB, err := gorm.Open(sqlite.Open(path), cfg)
		if err != nil {
			log.Fatalf("failed to open sqlite database at %s: %v", path, err)
		}
		log.Println("USING_SQLITE:", path)
		return sqliteDB
	}

	var (
		pgDB *gorm.DB
		err  error
	)
	deadline := time.Now().Add(60 * time.Second)
	for {
		pgDB, err = gorm.Open(postgres.Open(dsn), cfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
	return pgDB
}
