package store

import (
	"context"

	"gorm.io/gorm"

	"housing-backend/internal/model"
)

// UniversiteStore persists universities.
type UniversiteStore interface {
	FindAll(ctx context.Context) ([]model.Universite, error)
	FindByID(ctx context.Context, id int64) (*model.Universite, error)
	Save(ctx context.Context, u *model.Universite) error
}

type gormUniversiteStore struct {
	db *gorm.DB
}

// NewGormUniversiteStore creates a new GORM-backed university store.
func NewGormUniversiteStore(db *gorm.DB) UniversiteStore {
	return &gormUniversiteStore{db: db}
}

// FindAll retrieves all universities.
func (s *gormUniversiteStore) FindAll(ctx context.Context) ([]model.Universite, error) {
	return findAll[model.Universite](ctx, s.db, "universites")
}

// FindByID retrieves a university by its ID. It returns nil, nil if none exists.
func (s *gormUniversiteStore) FindByID(ctx context.Context, id int64) (*model.Universite, error) {
	return findByID[model.Universite](ctx, s.db, id, "universite")
}

// Save creates or updates a university.
func (s *gormUniversiteStore) Save(ctx context.Context, u *model.Universite) error {
	return save(ctx, s.db, u, "universite")
}
