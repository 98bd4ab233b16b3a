package sqlite

import (
	"gorm.io/gorm"

	pkgLog "checkey/pkg/log"
)

type implRepository struct {
	l  pkgLog.Logger
	db *gorm.DB
}

// New creates a SQLite-backed task repository.
func New(l pkgLog.Logger, db *gorm.DB) *implRepository {
	return &implRepository{l: l, db: db}
}
