package store

import (
	"context"

	"gorm.io/gorm"

	"housing-backend/internal/model"
)

// ChambreStore persists rooms.
type ChambreStore interface {
	FindAll(ctx context.Context) ([]model.Chambre, error)
	FindByID(ctx context.Context, id int64) (*model.Chambre, error)
	Save(ctx context.Context, c *model.Chambre) error
}

type gormChambreStore struct {
	db *gorm.DB
}

// NewGormChambreStore creates a new GORM-backed room store.
func NewGormChambreStore(db *gorm.DB) ChambreStore {
	return &gormChambreStore{db: db}
}

// FindAll retrieves all rooms.
func (s *gormChambreStore) FindAll(ctx context.Context) ([]model.Chambre, error) {
	return findAll[model.Chambre](ctx, s.db, "chambres")
}

// FindByID retrieves a room by its ID. It returns nil, nil if none exists.
func (s *gormChambreStore) FindByID(ctx context.Context, id int64) (*model.Chambre, error) {
	return findByID[model.Chambre](ctx, s.db, id, "chambre")
}

// Save creates or updates a room.
func (s *gormChambreStore) Save(ctx context.Context, c *model.Chambre) error {
	return save(ctx, s.db, c, "chambre")
}
