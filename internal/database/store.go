package database

import (
	"context"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository/gormrepo"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository/memory"
	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository/mongorepo"
	"gorm.io/gorm"
)

// Open connects and migrates the backend chosen by cfg.DBDriver. The returned
// *gorm.DB is nil unless the backend is SQL.
func Open(ctx context.Context, cfg *config.Config) (*repository.Store, *gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverMemory:
		return memory.NewStore(), nil, nil

	case config.DriverMongo:
		client, db, err := ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
			_ = client.Disconnect(ctx)
			return nil, nil, err
		}
		return mongorepo.NewStore(client, db), nil, nil
	}

	db, err := Connect(cfg)
	if err != nil {
		return nil, nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, nil, err
	}
	return gormrepo.NewStore(cfg.DBDriver, db), db, nil
}
