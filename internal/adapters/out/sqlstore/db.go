package sqlstore

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	// MemoryPath opens a private in-memory SQLite database.
	MemoryPath = ":memory:"
)

// OpenSQLite opens the embedded store. The pool is limited to one connection:
// SQLite allows a single writer, and an in-memory database lives exactly as
// long as its connection.
func OpenSQLite(path string) (*gorm.DB, error) {
	dsn := "file::memory:?_foreign_keys=on&_busy_timeout=5000"
	if path != MemoryPath {
		dsn = fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", path)
	}

	db, err := gorm.Open(sqlite.Open(dsn), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}

// OpenPostgres opens a server-backed store with a DSN in key=value form.
func OpenPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), newGormConfig())
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// PostgresDSN builds a DSN from its parts. Empty parts are left out.
func PostgresDSN(host, port, user, password, name, sslMode string) string {
	parts := make([]string, 0, 6)
	for _, kv := range [][2]string{
		{"host", host}, {"port", port}, {"user", user},
		{"password", password}, {"dbname", name}, {"sslmode", sslMode},
	} {
		if kv[1] != "" {
			parts = append(parts, kv[0]+"="+kv[1])
		}
	}
	return strings.Join(parts, " ")
}

func newGormConfig() *gorm.Config {
	return &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}
}

// Migrate creates the tables and the order_details view if they are missing.
// The layout matches databases written by earlier releases of the bot, so
// archived SQLite files open unchanged.
func Migrate(ctx context.Context, db *gorm.DB) error {
	statements := sqliteSchema
	if db.Dialector.Name() == DriverPostgres {
		statements = postgresSchema
	}

	for _, stmt := range statements {
		if err := db.WithContext(ctx).Exec(stmt).Error; err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS menu (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price DECIMAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer_name TEXT NOT NULL,
		customer_chat_id TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id INTEGER,
		menu_id INTEGER,
		quantity INTEGER NOT NULL,
		FOREIGN KEY (order_id) REFERENCES orders (id) ON DELETE CASCADE,
		FOREIGN KEY (menu_id) REFERENCES menu (id) ON DELETE CASCADE,
		PRIMARY KEY (order_id, menu_id)
	)`,
	`CREATE VIEW IF NOT EXISTS order_details AS
	SELECT
		o.id AS order_id,
		o.customer_name,
		o.status,
		GROUP_CONCAT(m.name || ' (' || oi.quantity || ')', ', ') AS order_contents
	FROM orders o
	JOIN order_items oi ON o.id = oi.order_id
	JOIN menu m ON oi.menu_id = m.id
	GROUP BY o.id, o.customer_name, o.status`,
	`CREATE TABLE IF NOT EXISTS conversations (
		customer_name TEXT PRIMARY KEY,
		customer_chat_id TEXT NOT NULL,
		step TEXT NOT NULL,
		item_id INTEGER NULL,
		order_id INTEGER NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS menu (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		price NUMERIC(10,2) NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		customer_name TEXT NOT NULL,
		customer_chat_id TEXT NOT NULL,
		status TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id BIGINT REFERENCES orders (id) ON DELETE CASCADE,
		menu_id BIGINT REFERENCES menu (id) ON DELETE CASCADE,
		quantity INTEGER NOT NULL,
		PRIMARY KEY (order_id, menu_id)
	)`,
	`CREATE OR REPLACE VIEW order_details AS
	SELECT
		o.id AS order_id,
		o.customer_name,
		o.status,
		string_agg(m.name || ' (' || oi.quantity || ')', ', ' ORDER BY m.id) AS order_contents
	FROM orders o
	JOIN order_items oi ON o.id = oi.order_id
	JOIN menu m ON oi.menu_id = m.id
	GROUP BY o.id, o.customer_name, o.status`,
	`CREATE TABLE IF NOT EXISTS conversations (
		customer_name TEXT PRIMARY KEY,
		customer_chat_id TEXT NOT NULL,
		step TEXT NOT NULL,
		item_id BIGINT NULL,
		order_id BIGINT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
}
