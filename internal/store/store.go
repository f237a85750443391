package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// scope narrows or extends a query, e.g. to preload an association.
type scope = func(*gorm.DB) *gorm.DB

// findAll loads every row of T in storage order. It never returns a nil slice on success.
func findAll[T any](ctx context.Context, db *gorm.DB, what string, scopes ...scope) ([]T, error) {
	records := make([]T, 0)
	if err := db.WithContext(ctx).Scopes(scopes...).Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", what, err)
	}
	return records, nil
}

// findByID returns nil, nil when no row matches.
func findByID[T any](ctx context.Context, db *gorm.DB, id int64, what string, scopes ...scope) (*T, error) {
	var record T
	err := db.WithContext(ctx).Scopes(scopes...).First(&record, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s %d: %w", what, id, err)
	}
	return &record, nil
}

// save inserts the record when its primary key is zero and replaces it otherwise.
// Associations are never written implicitly: one call is one row write.
func save[T any](ctx context.Context, db *gorm.DB, record *T, what string) error {
	if err := db.WithContext(ctx).Omit(clause.Associations).Save(record).Error; err != nil {
		return fmt.Errorf("failed to save %s: %w", what, err)
	}
	return nil
}
