package database

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// db holds the application-wide connection pool.
var db *pgxpool.Pool

// InitDB sets up the database connection pool.
func InitDB(databaseURL string) {
	var err error
	db, err = pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v\n", err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatalf("Database ping failed: %v\n", err)
	}

	log.Println("Successfully connected to the database")
}

// GetDB returns the connection pool.
func GetDB() *pgxpool.Pool {
	return db
}

// CloseDB closes the database connection pool.
func CloseDB() {
	if db != nil {
		db.Close()
		log.Println("Database connection pool closed")
	}
}
