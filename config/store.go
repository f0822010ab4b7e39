package config

import (
	"context"
	"fmt"

	"qrattendance/constants"
	"qrattendance/services"

	"gorm.io/gorm"
)

// NewStore connects the backing store selected by STORE_DRIVER.
func NewStore(ctx context.Context, cfg *Config) (services.Store, error) {
	switch cfg.StoreDriver {
	case constants.StoreSheets:
		srv, err := ConnectSheets(ctx, cfg.ServiceAccountPath)
		if err != nil {
			return nil, err
		}
		return services.NewSheetsStore(services.SheetsStoreOptions{
			Service:       srv,
			SpreadsheetID: cfg.SpreadsheetID,
			SheetName:     cfg.SheetName,
		}), nil

	case constants.StoreRedis:
		rdb, err := ConnectRedis(ctx, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		store := services.NewRedisStore(rdb, cfg.RedisPrefix)
		if err := store.Init(ctx); err != nil {
			return nil, err
		}
		return store, nil

	case constants.StorePostgres, constants.StoreSQLite:
		connect := func() (*gorm.DB, error) { return ConnectSQLite(cfg.SQLitePath) }
		if cfg.StoreDriver == constants.StorePostgres {
			connect = func() (*gorm.DB, error) { return ConnectPostgres(cfg.DatabaseURL) }
		}
		db, err := connect()
		if err != nil {
			return nil, err
		}
		store := services.NewGormStore(db)
		if err := store.Init(ctx); err != nil {
			return nil, err
		}
		return store, nil

	case constants.StoreMemory:
		return services.NewMemoryStore(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
