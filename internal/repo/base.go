// Package repo holds the gorm plumbing shared by the domain repositories.
package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base carries the gorm handle the directory repositories query through.
type Base struct {
	db *gorm.DB
}

// NewBase wraps a gorm connection for embedding in a repository.
func NewBase(db *gorm.DB) Base {
	return Base{db: db}
}

// DB returns the handle scoped to ctx so cancellation propagates into
// queries. A nil ctx yields the unscoped handle.
func (b Base) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}
