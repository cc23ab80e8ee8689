// Package gormrepo implements the repositories on top of GORM. It serves both
// the PostgreSQL and the SQLite drivers.
package gormrepo

import (
	"context"
	"errors"

	"github.com/ahmetcoskunkizilkaya/petfeed-backend/internal/repository"
	"gorm.io/gorm"
)

// NewStore wires all repositories to db.
func NewStore(driver string, db *gorm.DB) *repository.Store {
	return repository.NewStore(driver,
		NewUserRepo(db),
		NewFoodRepo(db),
		NewPetRepo(db),
		func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
		func(context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	)
}

// translate maps GORM errors onto the repository sentinels. The connection
// must be opened with TranslateError so duplicate keys surface as
// gorm.ErrDuplicatedKey.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return repository.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return repository.ErrDuplicate
	}
	return err
}
