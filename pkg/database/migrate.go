package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// DefaultCategories are created on every start if missing.
var DefaultCategories = []string{
	"Charcuterie & Fromages",
	"Boissons & Vins",
	"Épicerie & Conserves",
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id          BIGSERIAL PRIMARY KEY,
		email       VARCHAR(255) NOT NULL UNIQUE,
		password    VARCHAR(255) NOT NULL,
		role        VARCHAR(20)  NOT NULL DEFAULT 'user',
		first_name  VARCHAR(100),
		last_name   VARCHAR(100),
		phone       VARCHAR(30),
		address     TEXT,
		city        VARCHAR(100),
		postal_code VARCHAR(10),
		created_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ  NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS categories (
		id   BIGSERIAL PRIMARY KEY,
		name VARCHAR(100) NOT NULL UNIQUE
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id          BIGSERIAL PRIMARY KEY,
		name        VARCHAR(255)   NOT NULL,
		description TEXT,
		price       NUMERIC(10, 2) NOT NULL,
		stock       INTEGER        NOT NULL DEFAULT 0 CHECK (stock >= 0),
		image       TEXT,
		category_id BIGINT         NOT NULL REFERENCES categories (id),
		created_at  TIMESTAMPTZ    NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ    NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id               BIGSERIAL PRIMARY KEY,
		user_id          BIGINT         NOT NULL REFERENCES users (id),
		status           VARCHAR(20)    NOT NULL DEFAULT 'pending',
		total            NUMERIC(10, 2) NOT NULL,
		items            TEXT           NOT NULL,
		delivery_address TEXT           NOT NULL,
		postal_code      VARCHAR(10)    NOT NULL,
		phone            VARCHAR(30)    NOT NULL,
		notes            TEXT           NOT NULL DEFAULT '',
		created_at       TIMESTAMPTZ    NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_orders_user_created ON orders (user_id, created_at DESC, id DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_products_category ON products (category_id)`,
}

// Migrate creates the schema if needed and seeds the default categories.
// Every statement is idempotent so it runs on each start.
func Migrate(ctx context.Context, db PgxIface, log *zap.Logger) error {
	for i, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}

	for _, name := range DefaultCategories {
		_, err := db.Exec(ctx,
			`INSERT INTO categories (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`, name)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", name, err)
		}
	}

	log.Info("Database schema ready",
		zap.Int("statements", len(schema)),
		zap.Int("categories", len(DefaultCategories)))
	return nil
}
