package cmd

import (
	"context"

	"buttery/internal/adapters/out/sqlstore"

	"gorm.io/gorm"
)

// OpenDatabase opens the configured store and brings its schema up to date.
func OpenDatabase(ctx context.Context, cfg Config) (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)
	if cfg.DBDriver == sqlstore.DriverPostgres {
		db, err = sqlstore.OpenPostgres(sqlstore.PostgresDSN(
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSslMode,
		))
	} else {
		db, err = sqlstore.OpenSQLite(cfg.DBPath)
	}
	if err != nil {
		return nil, err
	}

	if err = sqlstore.Migrate(ctx, db); err != nil {
		return nil, err
	}
	return db, nil
}
