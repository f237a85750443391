package store

import (
	"context"

	"gorm.io/gorm"

	"housing-backend/internal/model"
)

// BlocStore persists housing blocks. Reads preload the linked rooms; Save writes
// the bloc row only, rooms are saved through a ChambreStore.
type BlocStore interface {
	FindAll(ctx context.Context) ([]model.Bloc, error)
	FindByID(ctx context.Context, id int64) (*model.Bloc, error)
	Save(ctx context.Context, b *model.Bloc) error
}

type gormBlocStore struct {
	db *gorm.DB
}

// NewGormBlocStore creates a new GORM-backed bloc store.
func NewGormBlocStore(db *gorm.DB) BlocStore {
	return &gormBlocStore{db: db}
}

func withChambres(db *gorm.DB) *gorm.DB {
	return db.Preload("Chambres")
}

// FindAll retrieves all blocs.
func (s *gormBlocStore) FindAll(ctx context.Context) ([]model.Bloc, error) {
	return findAll[model.Bloc](ctx, s.db, "blocs", withChambres)
}

// FindByID retrieves a bloc by its ID. It returns nil, nil if none exists.
func (s *gormBlocStore) FindByID(ctx context.Context, id int64) (*model.Bloc, error) {
	return findByID[model.Bloc](ctx, s.db, id, "bloc", withChambres)
}

// Save creates or updates a bloc.
func (s *gormBlocStore) Save(ctx context.Context, b *model.Bloc) error {
	return save(ctx, s.db, b, "bloc")
}
